package main

import (
	"context"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/oceanshop/storefront/config"
	"github.com/oceanshop/storefront/internal/infrastructure/database/postgres"
	"github.com/oceanshop/storefront/internal/storeapi/controller"
	"github.com/oceanshop/storefront/internal/storeapi/repository"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// storeapi is the development stand-in for the remote data service. It serves
// the same generic collection CRUD the storefront consumes in production.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	db, err := postgres.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		panic(err)
	}

	recordRepo := repository.CreateRecordRepository(db)
	if err := recordRepo.Migrate(context.Background()); err != nil {
		panic(err)
	}

	e := echo.New()
	controller.CreateRecordController(e, recordRepo)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.StoreAPIPort)))
}
