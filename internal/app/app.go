package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/laptopmundo/catalog-backend/internal/cfg"
	v1Http "github.com/laptopmundo/catalog-backend/internal/delivery/v1/http"
	"github.com/laptopmundo/catalog-backend/internal/infrastructure/kafka"
	minioInfra "github.com/laptopmundo/catalog-backend/internal/infrastructure/minio"
	s3Repo "github.com/laptopmundo/catalog-backend/internal/repository/minio"
	"github.com/laptopmundo/catalog-backend/internal/repository/pgdb"
	pgdbConv "github.com/laptopmundo/catalog-backend/internal/repository/pgdb/converter"
	"github.com/laptopmundo/catalog-backend/internal/repository/redis"
	redisConv "github.com/laptopmundo/catalog-backend/internal/repository/redis/converter"
	"github.com/laptopmundo/catalog-backend/internal/usecase"
	"github.com/laptopmundo/catalog-backend/pkg/clients"
	"github.com/laptopmundo/catalog-backend/pkg/closer"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/laptopmundo/catalog-backend/pkg/logger"
	"github.com/laptopmundo/catalog-backend/pkg/postgres"
)

const ensureTopicTimeout = 10 * time.Second

// App собирает зависимости сервиса каталога: PostgreSQL, Redis, MinIO,
// Kafka с outbox-воркером и HTTP-сервер.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	db          *postgres.PgDatabase
	redisClient *clients.RedisClient
	producer    *kafka.Producer
	worker      *kafka.OutboxWorker
	imagesInfra *minioInfra.MinioInfrastructure
	httpSrv     *v1Http.Server

	// infraCancel останавливает фоновые компенсации MinIO при завершении.
	infraCancel context.CancelFunc
	closer      *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.ProductConverter{})
	tenantProductRepo := pgdb.NewTenantProductRepo(db.Pool, pgdbConv.TenantProductConverter{})
	variantRepo := pgdb.NewVariantRepo(db.Pool, pgdbConv.VariantConverter{})
	specRepo := pgdb.NewSpecificationRepo(db.Pool, pgdbConv.SpecificationConverter{})
	imageRepo := pgdb.NewProductImageRepo(db.Pool, pgdbConv.ProductImageConverter{})
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, pgdbConv.CategoryConverter{})
	tenantRepo := pgdb.NewTenantRepo(db.Pool, pgdbConv.TenantConverter{})
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.OutboxEventConverter{})

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	s3ImageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.ProductDetailConverter{}, cfg.Redis, log)

	infraCtx, infraCancel := context.WithCancel(context.Background())
	imagesInfra := minioInfra.NewMinioInfrastructure(s3ImageRepo, cfg.Minio, log, infraCtx)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		infraCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := producer.EnsureTopic(ensureTopicTimeout); err != nil {
		infraCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	catalogUC := usecase.NewCatalogUC(
		productRepo,
		tenantProductRepo,
		variantRepo,
		specRepo,
		imageRepo,
		categoryRepo,
		cacheRepo,
		log,
	)

	adminUC := usecase.NewAdminUC(
		productRepo,
		tenantProductRepo,
		variantRepo,
		specRepo,
		imageRepo,
		categoryRepo,
		outboxRepo,
		cacheRepo,
		imagesInfra,
		db.Pool,
		log,
	)

	tenantUC := usecase.NewTenantUC(tenantRepo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, adminUC, tenantUC)

	return &App{
		cfg:         cfg,
		logger:      log,
		db:          db,
		redisClient: redisClient,
		producer:    producer,
		worker:      worker,
		imagesInfra: imagesInfra,
		httpSrv:     v1Http.NewServer(r, cfg.Http),
		infraCancel: infraCancel,
		closer:      closer.NewCloser(5 * time.Second),
	}, nil
}

// Run запускает outbox-воркер и HTTP-сервер и блокируется до сигнала
// завершения или фатальной ошибки сервера. Ресурсы закрываются в порядке LIFO.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.worker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	a.registerClosers(workerCancel)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

// registerClosers регистрирует закрытие ресурсов: порядок добавления обратен
// порядку остановки — первым гасится HTTP-сервер, последним пул БД.
func (a *App) registerClosers(workerCancel context.CancelFunc) {
	a.closer.Add(func(ctx context.Context) error {
		a.db.Close()
		return nil
	})

	a.closer.Add(func(ctx context.Context) error {
		return a.redisClient.Client.Close()
	})

	a.closer.Add(func(ctx context.Context) error {
		a.infraCancel()
		return nil
	})

	a.closer.Add(func(ctx context.Context) error {
		if err := a.imagesInfra.WaitForCleanup(ctx); err != nil {
			a.logger.Warnf("MinIO cleanup did not finish before shutdown: %v", err)
			return nil
		}

		a.logger.Infof("MinIO cleanup completed")
		return nil
	})

	a.closer.Add(func(ctx context.Context) error {
		return a.producer.Close()
	})

	a.closer.Add(func(ctx context.Context) error {
		workerCancel()
		a.worker.Stop()
		a.logger.Infof("Outbox worker stopped")
		return nil
	})

	a.closer.Add(func(ctx context.Context) error {
		if err := a.httpSrv.Stop(ctx); err != nil {
			return err
		}

		a.logger.Infof("HTTP server stopped")
		return nil
	})
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
