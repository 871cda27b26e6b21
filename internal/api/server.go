package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyport/internal/auth"
	"skyport/internal/cache"
	"skyport/internal/config"
	"skyport/internal/database"
	"skyport/internal/handlers"
	"skyport/internal/logger"
	"skyport/internal/messaging"
	"skyport/internal/metrics"
	"skyport/internal/middleware"
	"skyport/internal/repository"
	"skyport/internal/search"
	"skyport/internal/service"
	"skyport/internal/storage"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	cache    *cache.Client
	tokens   *auth.Manager
	services *service.Services
	repos    *repository.Repositories
}

func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", "error", err)
	}

	// Cache and search are optional: the API degrades to direct database
	// reads and relational filtering when they are down.
	cacheClient, err := cache.NewClient(cfg.Cache)
	if err != nil {
		logger.Get().Warn("Cache unavailable, continuing without it", "error", err)
		cacheClient = nil
	}

	var repos *repository.Repositories
	esClient, err := search.NewElasticsearchClient(config.LoadElasticsearchConfig())
	if err != nil {
		logger.Get().Warn("Elasticsearch unavailable, flight search disabled", "error", err)
		repos = repository.NewRepositories(db)
	} else {
		repos = repository.NewRepositoriesWithSearch(db, esClient)
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	services := service.NewServices(repos, natsClient, cacheClient, tokens)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(metrics.Middleware())

	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		cache:    cacheClient,
		tokens:   tokens,
		services: services,
		repos:    repos,
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, storage.NewImageStore(s.config.UploadDir), s.config)

	authRequired := middleware.BearerAuth(s.tokens, s.cache)
	staffOnly := middleware.RequireStaff()

	api := s.router.Group("/api")
	{
		// Users endpoints
		users := api.Group("/users")
		{
			users.POST("/register", h.Register)
			users.POST("/token", h.Token)
			users.GET("/me", authRequired, h.Me)
		}

		// Airports endpoints: reads for any authenticated user, writes for staff
		airports := api.Group("/airports", authRequired)
		{
			airports.GET("", h.ListAirports)
			airports.GET("/:id", h.GetAirport)
			airports.POST("", staffOnly, h.CreateAirport)
			airports.PUT("/:id", staffOnly, h.UpdateAirport)
			airports.DELETE("/:id", staffOnly, h.DeleteAirport)
		}

		// Airplane types endpoints
		airplaneTypes := api.Group("/airplane-types", authRequired)
		{
			airplaneTypes.GET("", h.ListAirplaneTypes)
			airplaneTypes.POST("", staffOnly, h.CreateAirplaneType)
			airplaneTypes.DELETE("/:id", staffOnly, h.DeleteAirplaneType)
		}

		// Airplanes endpoints
		airplanes := api.Group("/airplanes", authRequired)
		{
			airplanes.GET("", h.ListAirplanes)
			airplanes.GET("/:id", h.GetAirplane)
			airplanes.POST("", staffOnly, h.CreateAirplane)
			airplanes.PUT("/:id", staffOnly, h.UpdateAirplane)
			airplanes.DELETE("/:id", staffOnly, h.DeleteAirplane)
			airplanes.POST("/:id/image", staffOnly, h.UploadAirplaneImage)
		}

		// Crew endpoints
		crew := api.Group("/crew", authRequired)
		{
			crew.GET("", h.ListCrew)
			crew.GET("/:id", h.GetCrew)
			crew.POST("", staffOnly, h.CreateCrew)
			crew.PUT("/:id", staffOnly, h.UpdateCrew)
			crew.DELETE("/:id", staffOnly, h.DeleteCrew)
		}

		// Routes endpoints
		routes := api.Group("/routes", authRequired)
		{
			routes.GET("", h.ListRoutes)
			routes.GET("/:id", h.GetRoute)
			routes.POST("", staffOnly, h.CreateRoute)
			routes.PUT("/:id", staffOnly, h.UpdateRoute)
			routes.DELETE("/:id", staffOnly, h.DeleteRoute)
		}

		// Flights endpoints
		flights := api.Group("/flights", authRequired)
		{
			flights.GET("", h.ListFlights)
			flights.GET("/search", h.SearchFlights)
			flights.GET("/:id", h.GetFlight)
			flights.POST("", staffOnly, h.CreateFlight)
			flights.PUT("/:id", staffOnly, h.UpdateFlight)
			flights.DELETE("/:id", staffOnly, h.DeleteFlight)
		}

		// Orders endpoints
		orders := api.Group("/orders", authRequired)
		{
			orders.POST("", h.CreateOrder)
			orders.GET("", h.ListOrders)
			orders.GET("/:id", h.GetOrder)
		}
	}

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", metrics.Handler())
}

func (s *Server) healthCheck(c *gin.Context) {
	dbHealth := s.db.HealthCheck(c.Request.Context())

	status := http.StatusOK
	if dbHealth.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   dbHealth.Status,
		"service":  "skyport-api",
		"database": dbHealth,
	})
}

func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) Cleanup() error {
	log := logger.Get()

	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			log.Error("Error closing NATS connection", "error", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			log.Error("Error closing cache connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
