package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/laptopmundo/catalog-backend/docs" // Импорт сгенерированных файлов
	"github.com/laptopmundo/catalog-backend/internal/usecase"
	"github.com/laptopmundo/catalog-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, adminUC usecase.AdminUC, tenantUC usecase.TenantUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		adminHandler := NewAdminHandler(adminUC, r.logger)
		tenantHandler := NewTenantHandler(tenantUC, r.logger)

		registerCatalogRoutes(v1, catalogHandler)
		registerAdminRoutes(v1, adminHandler)
		registerTenantRoutes(v1, tenantHandler)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/search", h.searchProducts)
		pr.Get("/featured", h.featuredProducts)
		pr.Get("/{productID}", h.productDetail)
	})

	router.Route("/categories", func(ct chi.Router) {
		ct.Get("/", h.listCategories)
		ct.Get("/{categoryID}", h.categoryByID)
		ct.Get("/{categoryID}/products", h.categoryProducts)
	})
}

func registerAdminRoutes(router chi.Router, h *AdminHandler) {
	router.Route("/admin", func(admin chi.Router) {
		admin.Route("/products", func(pr chi.Router) {
			pr.Post("/", h.createProduct)
			pr.Put("/{productID}", h.updateProduct)
			pr.Delete("/{productID}", h.deleteProduct)
			pr.Post("/{productID}/images/upload", h.uploadProductImages)
		})

		admin.Route("/variants", func(vr chi.Router) {
			vr.Post("/", h.createVariant)
			vr.Put("/{variantID}", h.updateVariant)
			vr.Delete("/{variantID}", h.deleteVariant)
		})

		admin.Route("/specifications", func(sp chi.Router) {
			sp.Post("/", h.createSpecification)
			sp.Put("/{specID}", h.updateSpecification)
			sp.Delete("/{specID}", h.deleteSpecification)
		})

		admin.Route("/images", func(img chi.Router) {
			img.Post("/", h.createImage)
			img.Put("/{imageID}", h.updateImage)
			img.Delete("/{imageID}", h.deleteImage)
		})

		admin.Route("/categories", func(ct chi.Router) {
			ct.Post("/", h.createCategory)
			ct.Put("/{categoryID}", h.updateCategory)
			ct.Delete("/{categoryID}", h.deleteCategory)
		})

		admin.Route("/tenants/{tenantID}/products", func(tp chi.Router) {
			tp.Post("/", h.assignTenantProduct)
			tp.Put("/{productID}", h.updateTenantProduct)
			tp.Delete("/{productID}", h.removeTenantProduct)
		})
	})
}

func registerTenantRoutes(router chi.Router, h *TenantHandler) {
	router.Route("/tenants", func(tn chi.Router) {
		tn.Get("/", h.listTenants)
		tn.Get("/{tenantID}", h.tenantByID)
		tn.Post("/", h.createTenant)
		tn.Put("/{tenantID}", h.updateTenant)
		tn.Delete("/{tenantID}", h.deleteTenant)
	})
}
