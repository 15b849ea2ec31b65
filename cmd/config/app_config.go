package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibikero/nutributler/internal/api/handlers"
	"github.com/hibikero/nutributler/internal/api/routes"
	"github.com/hibikero/nutributler/internal/middleware"
	"github.com/hibikero/nutributler/internal/tasks"
	"github.com/hibikero/nutributler/internal/utils"
	"github.com/hibikero/nutributler/internal/utils/storage"
	"github.com/hibikero/nutributler/pkg/healthprofile"
	"github.com/hibikero/nutributler/pkg/ingredient"
	"github.com/hibikero/nutributler/pkg/jwt"
	"github.com/hibikero/nutributler/pkg/pantry"
	"github.com/hibikero/nutributler/pkg/user"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, *tasks.ExpiryAlertTask, error) {
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
		TimeZone:   "Asia/Shanghai",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	spoonacular := ingredient.NewSpoonacularClient()

	// Repository
	userRepository := user.NewUserRepository(db)
	profileRepository := healthprofile.NewHealthProfileRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	profileService := healthprofile.NewHealthProfileService(profileRepository, userRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, spoonacular, s3)
	pantryService := pantry.NewPantryService(pantryRepository, ingredientRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	profileHandler := handlers.NewHealthProfileHandler(profileService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)

	// Scheduled sweeps
	alertTask := tasks.NewExpiryAlertTask(userRepository, pantryService)

	// routes
	routesConfig := routes.Config{
		App:                  app,
		UserHandler:          userHandler,
		HealthProfileHandler: profileHandler,
		IngredientHandler:    ingredientHandler,
		PantryHandler:        pantryHandler,
		Middleware:           middlewares,
		JWTService:           jwtService,
	}
	routesConfig.Setup()
	return app, alertTask, nil
}
