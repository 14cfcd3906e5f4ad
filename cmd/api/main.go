package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"staybook/internal/config"
	"staybook/internal/database"
	"staybook/internal/middleware"
	"staybook/internal/modules/auth"
	"staybook/internal/modules/booking"
	"staybook/internal/modules/catalog"
	"staybook/internal/modules/request"
	"staybook/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	cityRepo := repository.NewCityRepository(db)
	accomRepo := repository.NewAccommodationRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	authService := auth.NewService(cfg.OAuth, userRepo)
	authHandler := auth.NewHandler(authService, cfg.FrontendURL)

	catalogService := catalog.NewService(cityRepo, accomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(cityRepo, requestRepo)
	bookingHandler := booking.NewHandler(bookingService)

	requestService := request.NewService(requestRepo)
	requestHandler := request.NewHandler(requestService)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestLogger())

	if cfg.OAuthEnabled() {
		authHandler.RegisterRoutes(r)
	} else {
		log.Println("OAuth settings missing; login routes not mounted")
	}

	api := r.Group("/api")
	{
		authHandler.RegisterUserRoutes(api)
		catalogHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		requestHandler.RegisterRoutes(api.Group("/requests"))
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
