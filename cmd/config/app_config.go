package config

import (
	"SipMate-Backend/internal/api/handlers"
	"SipMate-Backend/internal/api/routes"
	"SipMate-Backend/internal/middleware"
	"SipMate-Backend/internal/utils"
	"SipMate-Backend/internal/utils/storage"
	"SipMate-Backend/pkg/cellar"
	"SipMate-Backend/pkg/community"
	"SipMate-Backend/pkg/jwt"
	"SipMate-Backend/pkg/premium"
	"SipMate-Backend/pkg/recommend"
	"SipMate-Backend/pkg/user"
	"SipMate-Backend/pkg/wine"
	"os"
	"time"

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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	wineRepository := wine.NewWineRepository(db)
	cellarRepository := cellar.NewCellarRepository(db)
	recommendRepository := recommend.NewRecommendRepository(db)
	communityRepository := community.NewCommunityRepository(db)
	premiumRepository := premium.NewPremiumRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	wineService := wine.NewWineService(wineRepository, s3)
	cellarService := cellar.NewCellarService(cellarRepository, wineRepository, s3)
	recommendService := recommend.NewRecommendService(recommendRepository, wineRepository, s3)
	communityService := community.NewCommunityService(communityRepository, userService, s3)
	premiumService := premium.NewPremiumService(premiumRepository, userService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	wineHandler := handlers.NewWineHandler(wineService, validator)
	cellarHandler := handlers.NewCellarHandler(cellarService, validator)
	recommendHandler := handlers.NewRecommendHandler(recommendService, validator)
	communityHandler := handlers.NewCommunityHandler(communityService, validator)
	premiumHandler := handlers.NewPremiumHandler(premiumService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		WineHandler:      wineHandler,
		CellarHandler:    cellarHandler,
		RecommendHandler: recommendHandler,
		CommunityHandler: communityHandler,
		PremiumHandler:   premiumHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
