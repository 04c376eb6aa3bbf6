package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medistaff/staffdir/internal/api/handler"
	"github.com/medistaff/staffdir/internal/api/middleware"
	"github.com/medistaff/staffdir/internal/core/domain"
	"github.com/medistaff/staffdir/internal/core/ports"
	"github.com/medistaff/staffdir/internal/core/service"
	"github.com/medistaff/staffdir/internal/core/token"
	mongodb "github.com/medistaff/staffdir/internal/infrastructure/db/mongo"
	redisdb "github.com/medistaff/staffdir/internal/infrastructure/db/redis"
)

// Deps carries the long-lived process dependencies the router wires into
// repositories, services and handlers.
type Deps struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Codec  *token.Codec
	Hasher ports.PasswordHasher
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The route-to-role mapping is static: every account and role catalog
// operation requires Admin.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("staffdir"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(d.DB)
	roleRepo := mongodb.NewRoleRepository(d.DB)
	roleCache := redisdb.NewRoleCache(d.Redis, d.Log)

	authService := service.NewAuthService(accountRepo, d.Hasher, d.Codec, d.Log)
	accountService := service.NewAccountService(accountRepo, d.Hasher, d.Log)
	roleService := service.NewRoleService(roleRepo, roleCache, d.Log)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	roleHandler := handler.NewRoleHandler(roleService)

	authn := middleware.Auth(d.Codec)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Routes ---
	api := e.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	users := api.Group("/users", authn, adminOnly)
	users.POST("", accountHandler.Create)
	users.GET("", accountHandler.List)
	users.PUT("/:id", accountHandler.Update)

	roles := api.Group("/roles", authn, adminOnly)
	roles.POST("", roleHandler.Create)
	roles.GET("", roleHandler.List)
	roles.PUT("/:id", roleHandler.Update)

	// --- Health probes (no auth required) ---
	api.GET("/health", handler.NewHealthHandler().Liveness)
	api.GET("/health/ready", handler.NewReadinessHandler(d.DB, d.Redis).Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
