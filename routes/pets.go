package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petconnect/petconnect/controllers"
	"github.com/petconnect/petconnect/middleware"
)

// SetupPetRoutes configures pet profile routes
func SetupPetRoutes(app *fiber.App) {
	pets := app.Group("/pets")

	// Tag lookup stays public: anyone scanning a collar QR should reach it
	pets.Get("/tag/:tagId", controllers.GetPetByTag)

	pets.Post("/", middleware.Protected(), controllers.CreatePet)
	pets.Get("/owner/:ownerId", middleware.Protected(), controllers.GetPetsByOwner)
	pets.Get("/:id", middleware.Protected(), controllers.GetPet)
	pets.Put("/:id", middleware.Protected(), controllers.UpdatePet)
	pets.Delete("/:id", middleware.Protected(), controllers.DeletePet)
}
