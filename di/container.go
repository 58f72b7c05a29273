package di

import (
	"context"

	"ordering-server/api"
	"ordering-server/api/catalog"
	"ordering-server/api/orders"
	"ordering-server/config"
	"ordering-server/dao/redis"
	"ordering-server/db"
	"ordering-server/geo"
	"ordering-server/ranking"
	"ordering-server/server"
	"ordering-server/server/handlers"
	services "ordering-server/service"

	"github.com/gorilla/mux"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// mock order service reports an order done after this many polls
const MOCK_ORDER_READY_AFTER_POLLS = 3

// Container holds all application dependencies.
type Container struct {
	Config                  *config.Config
	RedisClient             db.RedisClient
	RedisVenueDao           *redis.RedisVenueDAO
	CatalogAPI              catalog.CatalogAPI
	OrdersAPI               orders.OrdersAPI
	VenueService            *services.VenueService
	OrderService            *services.OrderService
	CatalogRefresherService *services.CatalogRefresherService
	Selection               *ranking.Selection
	DefaultLocation         geo.LocationSupplier
	VenueHandler            *handlers.VenueHandler
	OrderHandler            *handlers.OrderHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	OrderingHttpServer      *server.OrderingHttpServer
}

// NewCatalogAPI returns the upstream catalog client in prod and the fixture
// reader elsewhere.
func NewCatalogAPI(cfg *config.Config) catalog.CatalogAPI {
	if cfg.IsProd() {
		zap.L().Info("Using prod catalog api", zap.String("base_url", cfg.Catalog.BaseURL))
		return catalog.NewCatalogApiClient(api.NewHTTPClientWithTimeout(cfg.Catalog.BaseURL, cfg.HTTP.Timeout))
	}
	path := config.GetResourcePath(config.CATALOG_RESOURCE)
	if cfg.Catalog.FixturePath != "" {
		path = config.ResolvePath(cfg.Catalog.FixturePath)
	}
	zap.L().Info("Using mock catalog api", zap.String("fixture", path))
	return catalog.NewCatalogApiClientMock(path)
}

// NewOrdersAPI returns the upstream order client in prod and an in-memory
// stand-in elsewhere.
func NewOrdersAPI(cfg *config.Config) orders.OrdersAPI {
	if cfg.IsProd() {
		zap.L().Info("Using prod orders api", zap.String("base_url", cfg.Orders.BaseURL))
		return orders.NewOrdersApiClient(api.NewHTTPClientWithTimeout(cfg.Orders.BaseURL, cfg.HTTP.Timeout))
	}
	zap.L().Info("Using mock orders api")
	return orders.NewOrdersApiClientMock(MOCK_ORDER_READY_AFTER_POLLS)
}

func newRedisClient(ctx context.Context, cfg config.RedisConfig) (db.RedisClient, error) {
	if cfg.InMemory {
		zap.L().Info("Using in-memory redis")
		return db.NewMockRedisClient(), nil
	}
	return db.NewGeoRedisClient(ctx, db.NewRedis(cfg.Address, cfg.Password, cfg.DB))
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	zap.L().Info("Initializing container", zap.String("env", cfg.Env))

	defaultSort, err := ranking.ParseSortMode(cfg.Ranking.DefaultSort)
	if err != nil {
		return nil, eris.Wrap(err, "ranking.default_sort")
	}

	redisClient, err := newRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	redisVenueDao := redis.NewRedisVenueDAO(redisClient)

	catalogAPI := NewCatalogAPI(cfg)
	ordersAPI := NewOrdersAPI(cfg)

	venueService := services.NewVenueService(redisVenueDao, catalogAPI)
	orderService := services.NewOrderService(redisVenueDao, ordersAPI)
	refresher := services.NewCatalogRefresherService(redisVenueDao, catalogAPI, cfg.HTTP.Timeout)

	selection := ranking.NewSelection(defaultSort)
	location := geo.NewStaticLocation(cfg.Location.Latitude, cfg.Location.Longitude, cfg.Location.Enabled)

	venueHandler := handlers.NewVenueHandler(venueService, selection, location)
	orderHandler := handlers.NewOrderHandler(orderService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, orderHandler, muxRouter)
	httpServer := server.NewOrderingHttpServer(router, cfg.Server.Port)

	return &Container{
		Config:                  cfg,
		RedisClient:             redisClient,
		RedisVenueDao:           redisVenueDao,
		CatalogAPI:              catalogAPI,
		OrdersAPI:               ordersAPI,
		VenueService:            venueService,
		OrderService:            orderService,
		CatalogRefresherService: refresher,
		Selection:               selection,
		DefaultLocation:         location,
		VenueHandler:            venueHandler,
		OrderHandler:            orderHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		OrderingHttpServer:      httpServer,
	}, nil
}
