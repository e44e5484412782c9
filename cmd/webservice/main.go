package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "time/tzdata"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/oceanshop/storefront/config"
	"github.com/oceanshop/storefront/internal/controller"
	"github.com/oceanshop/storefront/internal/infrastructure/cache"
	circuitbreaker "github.com/oceanshop/storefront/internal/infrastructure/circuit-breaker"
	"github.com/oceanshop/storefront/internal/infrastructure/identity"
	"github.com/oceanshop/storefront/internal/infrastructure/message-queue/kafka"
	"github.com/oceanshop/storefront/internal/infrastructure/store"
	"github.com/oceanshop/storefront/internal/infrastructure/tracing"
	localmiddleware "github.com/oceanshop/storefront/internal/middleware"
	"github.com/oceanshop/storefront/internal/repository"
	"github.com/oceanshop/storefront/internal/service"
	"github.com/oceanshop/storefront/pkg/response"
	"github.com/oceanshop/storefront/pkg/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	kafkago "github.com/segmentio/kafka-go"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
	if err != nil {
		fmt.Println(err)
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			fmt.Println(err)
		}
	}()

	tracer := traceProvider.Tracer("storefront")

	e := echo.New()
	e.Validator = validation.CreateRequestValidator()
	g := e.Group("/api/v1")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)
	e.Use(localmiddleware.Session(config.JWTSecret))

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	var kafkaProducer *kafkago.Conn
	if config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer = kafka.CreateKafkaProducer(config)
	}

	redisClient := cache.CreateRedisClient(config.RedisConfig.Addr)

	cb := circuitbreaker.CreateCircuitBreaker("storefront")
	storeClient := store.CreateClient(config.StoreConfig.Host, cb)
	identityClient := identity.CreateClient(config)

	catalogRepo := repository.CreateCatalogRepository(storeClient)
	cartRepo := repository.CreateCartRepository(storeClient)
	orderRepo := repository.CreateOrderRepository(storeClient)
	reviewRepo := repository.CreateReviewRepository(storeClient)

	catalogSvc := service.CreateCatalogService(catalogRepo)
	cartSvc := service.CreateCartService(cartRepo, catalogRepo, redisClient)
	checkoutSvc := service.CreateCheckoutService(cartRepo, orderRepo, config, kafkaProducer)
	reviewSvc := service.CreateReviewService(reviewRepo)
	userSvc := service.CreateUserService(identityClient, config, kafkaProducer)

	isLoggedIn := echo.MiddlewareFunc(localmiddleware.RequireLoggedIn)

	controller.CreateCatalogController(g, catalogSvc)
	controller.CreateCartController(g, cartSvc, checkoutSvc, isLoggedIn)
	controller.CreateReviewController(g, reviewSvc, isLoggedIn)
	controller.CreateUserController(g, userSvc, isLoggedIn)

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	// add a job to the scheduler
	_, err = s.NewJob(
		gocron.DurationJob(
			time.Duration(config.CartCountInterval)*time.Second,
		),
		gocron.NewTask(
			cartSvc.RefreshCartCount,
		),
	)
	if err != nil {
		panic(err)
	}

	s.Start()

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
