package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"product-spec-api/internal/cache"
	"product-spec-api/internal/client"
	"product-spec-api/internal/fieldtype"
	"product-spec-api/internal/handler"
	"product-spec-api/internal/hooks"
	"product-spec-api/internal/metrics"
	"product-spec-api/internal/middleware"
	"product-spec-api/internal/repository"
	"product-spec-api/internal/service"
	"product-spec-api/internal/units"
	"product-spec-api/internal/value"
)

// Config carries everything Setup needs to build the HTTP surface.
// Redis, Metrics, Exporter and Hooks may be nil; CurrencyCode may be
// empty when the platform exposes no currency.
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Exporter       client.ReportExporter
	Hooks          *hooks.Hooks
	JWTSecret      string
	BasePath       string
	Locale         string
	CurrencyCode   string
	CurrencyLabel  string
	AllowedOrigins []string
}

// Setup builds the gin engine with all routes and dependencies wired.
// The format cache registers itself as an invalidation listener so
// every save drops the product's cached formatted values.
func Setup(cfg Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}

	h := cfg.Hooks
	if h == nil {
		h = hooks.New()
	}

	// Registries
	typeRegistry := fieldtype.NewRegistry()
	unitRegistry := units.NewRegistry(cfg.CurrencyCode, cfg.CurrencyLabel)
	locale := value.NewLocaleFormatter(cfg.Locale)

	// Caching
	formatCache := cache.NewFormatCache(cfg.Redis, cfg.Logger)
	h.OnInvalidation(formatCache.Invalidate)

	// Repositories
	productRepo := repository.NewProductRepository(cfg.DB)
	groupRepo := repository.NewGroupRepository(cfg.DB)
	fieldRepo := repository.NewFieldDefinitionRepository(cfg.DB)
	valueRepo := repository.NewSpecValueRepository(cfg.DB)
	termRepo := repository.NewTermRepository(cfg.DB)
	legacyRepo := repository.NewLegacyMetaRepository(cfg.DB)

	// Services
	resolver := service.NewValueResolver(typeRegistry, fieldRepo, valueRepo, termRepo, productRepo, h, cfg.Logger)
	formatter := service.NewValueFormatter(typeRegistry, unitRegistry, fieldRepo, termRepo, resolver, h, formatCache, locale, cfg.BasePath, cfg.Metrics, cfg.Logger)
	saver := service.NewValueSaver(typeRegistry, fieldRepo, valueRepo, termRepo, productRepo, h, cfg.Metrics, cfg.Logger)
	fieldService := service.NewFieldService(typeRegistry, unitRegistry, fieldRepo, groupRepo, productRepo, h)
	specService := service.NewSpecService(fieldService, resolver, formatter, saver, cfg.Logger)
	productService := service.NewProductService(productRepo, groupRepo)
	termService := service.NewTermService(typeRegistry, fieldRepo, termRepo)
	migrationService := service.NewMigrationService(typeRegistry, unitRegistry, fieldRepo, legacyRepo, resolver, saver, cfg.Exporter, cfg.Metrics, cfg.Logger)

	// Handlers
	specValueHandler := handler.NewSpecValueHandler(specService)
	fieldHandler := handler.NewFieldDefinitionHandler(fieldService)
	termHandler := handler.NewTermHandler(termService)
	registryHandler := handler.NewRegistryHandler(typeRegistry, unitRegistry)
	productHandler := handler.NewProductHandler(productService)
	migrationHandler := handler.NewMigrationHandler(migrationService)

	// Health and metrics endpoints live outside the API base path
	router.GET("/health", healthCheck)
	router.GET("/ready", readyCheck(cfg.DB))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group(cfg.BasePath)
	api.GET("/health", healthCheck)
	api.GET("/ready", readyCheck(cfg.DB))
	api.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public read surface
	api.GET("/types", registryHandler.ListTypes)
	api.GET("/units", registryHandler.ListUnits)
	api.GET("/fields", fieldHandler.ListFields)
	api.GET("/fields/:slug", fieldHandler.GetField)
	api.GET("/fields/:slug/terms", termHandler.ListTerms)
	api.GET("/groups", productHandler.ListGroups)
	api.GET("/products/:productId", productHandler.GetProduct)
	api.GET("/products/:productId/variants", productHandler.GetVariants)
	api.GET("/products/:productId/fields", specValueHandler.GetProductSpecs)
	api.GET("/products/:productId/fields/:slug", specValueHandler.GetFieldValue)

	// Admin write surface
	admin := api.Group("")
	admin.Use(middleware.Auth(cfg.JWTSecret), middleware.AdminOnly())
	{
		admin.POST("/fields", fieldHandler.CreateField)
		admin.PATCH("/fields/:slug", fieldHandler.UpdateField)
		admin.DELETE("/fields/:slug", fieldHandler.DeleteField)
		admin.POST("/fields/:slug/terms", termHandler.CreateTerm)
		admin.POST("/groups", productHandler.CreateGroup)
		admin.POST("/products", productHandler.CreateProduct)
		admin.DELETE("/products/:productId", productHandler.DeleteProduct)
		admin.PUT("/products/:productId/fields", specValueHandler.BatchSaveValues)
		admin.PUT("/products/:productId/fields/:slug", specValueHandler.SaveFieldValue)
		admin.POST("/migration/run", migrationHandler.RunMigration)
	}

	return router
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyCheck reports readiness by pinging the database. Without a DB
// handle the service is degraded but still answers ready.
func readyCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Request.Context())
			}
			if err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
