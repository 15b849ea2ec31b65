package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hibikero/nutributler/internal/api/handlers"
	"github.com/hibikero/nutributler/internal/middleware"
	"github.com/hibikero/nutributler/pkg/jwt"
)

type Config struct {
	App                  *fiber.App
	UserHandler          handlers.UserHandler
	HealthProfileHandler handlers.HealthProfileHandler
	IngredientHandler    handlers.IngredientHandler
	PantryHandler        handlers.PantryHandler
	Middleware           middleware.Middleware
	JWTService           jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.HealthProfiles()
	c.Ingredients()
	c.Pantry()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
	}
}

func (c *Config) HealthProfiles() {
	profiles := c.App.Group("/api/v1/health-profiles", c.Middleware.AuthMiddleware(c.JWTService))

	profiles.Post("", c.HealthProfileHandler.CreateHealthProfile)
	profiles.Get("/active", c.HealthProfileHandler.GetActiveProfile)
	profiles.Get("/history", c.HealthProfileHandler.GetProfileHistory)
	profiles.Put("/:id", c.HealthProfileHandler.UpdateHealthProfile)
	profiles.Delete("/:id", c.HealthProfileHandler.DeleteHealthProfile)

	// Derived nutrition figures for the active profile
	profiles.Get("/target-calories", c.HealthProfileHandler.GetTargetCalories)
	profiles.Get("/nutrition-ratios", c.HealthProfileHandler.GetNutritionRatios)
	profiles.Get("/meal-distribution", c.HealthProfileHandler.GetMealDistribution)
	profiles.Get("/strategy", c.HealthProfileHandler.GetNutritionStrategy)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))

	ingredients.Post("", c.IngredientHandler.CreateIngredient)
	ingredients.Get("/search", c.IngredientHandler.SearchIngredients)
	ingredients.Get("/category/:category", c.IngredientHandler.GetIngredientsByCategory)
	ingredients.Get("/spoonacular/search", c.IngredientHandler.SearchSpoonacular)
	ingredients.Post("/spoonacular/import", c.IngredientHandler.ImportFromSpoonacular)
	ingredients.Post("/image", c.IngredientHandler.UploadIngredientImage)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetails)
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry", c.Middleware.AuthMiddleware(c.JWTService))

	pantry.Get("/stats", c.PantryHandler.GetPantryStats)
	pantry.Get("/active", c.PantryHandler.GetActivePantry)
	pantry.Get("/expiring", c.PantryHandler.GetExpiringIngredients)
	pantry.Get("/expired", c.PantryHandler.GetExpiredIngredients)
	pantry.Get("/search", c.PantryHandler.SearchPantryItems)
	pantry.Get("/storage/:location", c.PantryHandler.GetPantryByStorageLocation)

	// Basic CRUD operations
	pantry.Post("", c.PantryHandler.AddIngredientToPantry)
	pantry.Get("", c.PantryHandler.GetUserPantry)
	pantry.Get("/:id", c.PantryHandler.GetPantryItemDetails)
	pantry.Put("/:id", c.PantryHandler.UpdatePantryItem)
	pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)

	// Special operations
	pantry.Post("/:id/consume", c.PantryHandler.MarkAsConsumed)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
