package routes

import (
	"freezer-backend/internal/api/handlers"
	"freezer-backend/internal/middleware"
	"freezer-backend/pkg/token"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	BootstrapHandler handlers.BootstrapHandler
	FreezerHandler   handlers.FreezerHandler
	FoodHandler      handlers.FoodHandler
	Middleware       middleware.Middleware
	TokenService     token.TokenService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Bootstrap()
	c.Freezers()
	c.FoodItems()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Bootstrap() {
	c.App.Post("/api/v1/bootstrap", c.Middleware.AuthMiddleware(c.TokenService), c.BootstrapHandler.Bootstrap)
}

func (c *Config) Freezers() {
	freezers := c.App.Group("/api/v1/freezers", c.Middleware.AuthMiddleware(c.TokenService))
	freezers.Get("", c.FreezerHandler.GetFreezers)
	freezers.Put("/:id", c.FreezerHandler.RenameFreezer)
}

func (c *Config) FoodItems() {
	items := c.App.Group("/api/v1/items", c.Middleware.AuthMiddleware(c.TokenService))

	items.Post("", c.FoodHandler.AddFoodItem)
	items.Get("", c.FoodHandler.GetFoodItems)
	items.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	items.Put("/:id", c.FoodHandler.UpdateFoodItem)
	items.Delete("/:id", c.FoodHandler.DeleteFoodItem)

	items.Post("/:id/photo", c.FoodHandler.UploadFoodPhoto)
}
