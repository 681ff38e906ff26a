package app

import (
	"time"

	"github.com/bardleycoopster/todos/internal/auth"
	"github.com/bardleycoopster/todos/internal/bus"
	"github.com/bardleycoopster/todos/internal/cache"
	"github.com/bardleycoopster/todos/internal/config"
	"github.com/bardleycoopster/todos/internal/handlers"
	"github.com/bardleycoopster/todos/internal/repo"
	"github.com/bardleycoopster/todos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client, b *bus.Bus) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, 24*time.Hour)
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireSession(sessionStore))

	listRepo := repo.NewPGListRepo(db)
	listSvc := service.NewListService(listRepo, userRepo)
	listHandler := handlers.NewListHandler(listSvc)
	registerListRoutes(protected, listHandler)

	itemRepo := repo.NewPGItemRepo(db)
	itemTx := repo.NewTxScope(db)
	itemCache := cache.NewItemCache(rdb, cfg.Redis.DefaultTTL.Duration())
	itemSvc := service.NewItemService(itemRepo, itemTx, listRepo, b, itemCache)
	itemHandler := handlers.NewItemHandler(itemSvc)
	streamHandler := handlers.NewStreamHandler(itemSvc)
	registerItemRoutes(protected, itemHandler, streamHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Lists API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}

func registerListRoutes(api *gin.RouterGroup, h *handlers.ListHandler) {
	api.GET("/lists", h.Lists)
	api.POST("/lists", h.Create)
	api.DELETE("/lists/:id", h.Delete)
	api.GET("/share", h.SharedUsers)
	api.POST("/share", h.Share)
	api.DELETE("/share/:guestID", h.Unshare)
}

func registerItemRoutes(api *gin.RouterGroup, h *handlers.ItemHandler, s *handlers.StreamHandler) {
	api.GET("/lists/:id/items", h.Items)
	api.POST("/lists/:id/items", h.Create)
	api.DELETE("/lists/:id/items/completed", h.RemoveCompleted)
	api.POST("/items/:id/complete", h.Complete)
	api.GET("/lists/:id/items/events", s.ItemEvents)
	api.GET("/lists/:id/removals/events", s.RemovedEvents)
}
