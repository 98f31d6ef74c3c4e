package config

import (
	"os"
	"time"

	"freezer-backend/internal/api/handlers"
	"freezer-backend/internal/api/routes"
	"freezer-backend/internal/middleware"
	"freezer-backend/internal/utils"
	"freezer-backend/internal/utils/storage"
	"freezer-backend/pkg/bootstrap"
	"freezer-backend/pkg/food"
	"freezer-backend/pkg/freezer"
	"freezer-backend/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Madrid",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	bootstrapRepository := bootstrap.NewBootstrapRepository(db)
	freezerRepository := freezer.NewFreezerRepository(db)
	foodRepository := food.NewFoodRepository(db)

	// Service
	tokenService := token.NewTokenService(token.Config{
		Mode:     utils.GetConfig("AUTH_MODE"),
		Secret:   utils.GetConfig("JWT_SECRET"),
		Issuer:   utils.GetConfig("JWT_ISSUER"),
		JWKSURL:  utils.GetConfig("AUTH_JWKS_URL"),
		Audience: utils.GetConfig("AUTH_AUDIENCE"),
	})
	bootstrapService := bootstrap.NewBootstrapService(bootstrapRepository)
	freezerService := freezer.NewFreezerService(freezerRepository, bootstrapService)
	foodService := food.NewFoodService(foodRepository, freezerRepository, bootstrapService, s3)

	// Handler
	bootstrapHandler := handlers.NewBootstrapHandler(bootstrapService)
	freezerHandler := handlers.NewFreezerHandler(freezerService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		BootstrapHandler: bootstrapHandler,
		FreezerHandler:   freezerHandler,
		FoodHandler:      foodHandler,
		Middleware:       middlewares,
		TokenService:     tokenService,
	}
	routesConfig.Setup()
	return app, nil
}
