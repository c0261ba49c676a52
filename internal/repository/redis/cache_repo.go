package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	"github.com/laptopmundo/catalog-backend/internal/cfg"
	"github.com/laptopmundo/catalog-backend/internal/repository/redis/converter"
	"github.com/laptopmundo/catalog-backend/internal/usecase"
	"github.com/laptopmundo/catalog-backend/pkg/clients"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/laptopmundo/catalog-backend/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
)

// CacheRepo кэширует собранные карточки товаров по паре (тенант, товар).
// Кэш вспомогательный: любая ошибка Redis логируется и трактуется как промах.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductDetailConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductDetailConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetDetail возвращает закэшированную карточку или nil при промахе.
func (r *CacheRepo) GetDetail(ctx context.Context, tenantID, productID int64) (*usecase.ProductDetail, error) {
	data, err := r.client.Client.Get(ctx, r.detailKey(tenantID, productID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}

		r.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductDetailRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, nil
	}

	return r.conv.ToUseCase(&model), nil
}

// SetDetail кэширует карточку с TTL из конфигурации.
// Ошибки записи логируются и не прерывают вызов.
func (r *CacheRepo) SetDetail(ctx context.Context, tenantID int64, detail *usecase.ProductDetail) error {
	model := r.conv.ToRedisModel(detail)

	data, err := json.Marshal(model)
	if err != nil {
		r.logger.Warnf("Failed to marshal detail for caching (Product ID: %d): %v", detail.ID, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	key := r.detailKey(tenantID, detail.ID)
	if err := r.client.Client.Set(ctx, key, data, r.cfg.ViewTTL).Err(); err != nil {
		r.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteProduct инвалидирует карточки товара у всех тенантов через SCAN по шаблону.
func (r *CacheRepo) DeleteProduct(ctx context.Context, productID int64) error {
	pattern := fmt.Sprintf("view:*:%d", productID)

	iter := r.client.Client.Scan(ctx, 0, pattern, 0).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.logger.Warnf("Redis SCAN failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteTenantProduct инвалидирует карточку товара одного тенанта.
func (r *CacheRepo) DeleteTenantProduct(ctx context.Context, tenantID, productID int64) error {
	if err := r.client.Client.Del(ctx, r.detailKey(tenantID, productID)).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// detailKey возвращает Redis-ключ карточки товара для тенанта.
func (r *CacheRepo) detailKey(tenantID, productID int64) string {
	return fmt.Sprintf("view:%d:%d", tenantID, productID)
}
