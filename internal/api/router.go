package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/conexa/starwars-api/internal/api/handler"
	"github.com/conexa/starwars-api/internal/api/middleware"
	"github.com/conexa/starwars-api/internal/core/domain"
	"github.com/conexa/starwars-api/internal/core/ports"
)

// RouterConfig carries the dependencies the router wires into handlers and
// guards.
type RouterConfig struct {
	Mongo        *mongo.Database
	Redis        *redis.Client
	Tokens       ports.TokenService
	AuthService  ports.AuthService
	MovieService ports.MovieService
	Catalog      ports.CatalogClient
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("starwars"))

	authRequired := middleware.Auth(cfg.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	e.POST("/auth", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth", authHandler.ListUsers, authRequired, adminOnly)
	e.GET("/auth/:id", authHandler.GetUser, authRequired, adminOnly)

	// --- Movie routes ---
	// Listing is public; reading a single movie needs a valid token of any
	// role; writes are admin only.
	movieHandler := handler.NewMovieHandler(cfg.MovieService)
	e.POST("/movies", movieHandler.Create, authRequired, adminOnly)
	e.GET("/movies", movieHandler.FindAll)
	e.GET("/movies/:id", movieHandler.FindOne, authRequired, middleware.RBAC())
	e.PATCH("/movies/:id", movieHandler.Update, authRequired, adminOnly)
	e.DELETE("/movies/:id", movieHandler.Delete, authRequired, adminOnly)

	// --- Star Wars catalog proxy ---
	starwarsHandler := handler.NewStarwarsHandler(cfg.Catalog)
	e.GET("/starwars/films", starwarsHandler.GetFilms)
	e.GET("/starwars/films/:id", starwarsHandler.GetFilmByID)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
