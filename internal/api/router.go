package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pathwise/career-advisor/docs"
	"github.com/pathwise/career-advisor/internal/api/handler"
	"github.com/pathwise/career-advisor/internal/api/middleware"
	"github.com/pathwise/career-advisor/internal/core/ports"
)

// Deps bundles the constructed services the router wires into handlers.
type Deps struct {
	Auth    ports.AuthService
	Profile ports.ProfileService
	Chat    ports.ChatService
	Issuer  ports.TokenIssuer

	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("advisor"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	profileHandler := handler.NewProfileHandler(deps.Profile)
	chatHandler := handler.NewChatHandler(deps.Chat)
	authMiddleware := middleware.Auth(deps.Issuer, deps.Log)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Protected routes ---
	user := e.Group("/user", authMiddleware)
	user.GET("/profile", profileHandler.Get)
	user.POST("/chat", chatHandler.Ask)
	user.GET("/chat/history", chatHandler.History)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
