package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petconnect/petconnect/controllers"
	"github.com/petconnect/petconnect/middleware"
)

// SetupLostFoundRoutes configures lost & found report routes
func SetupLostFoundRoutes(app *fiber.App) {
	lostFound := app.Group("/lost-found")

	lostFound.Get("/", controllers.GetAllReports)
	lostFound.Get("/my-reports", middleware.Protected(), controllers.GetMyReports)
	lostFound.Get("/:id", controllers.GetReport)
	lostFound.Post("/", middleware.Protected(), controllers.CreateReport)
	lostFound.Put("/:id", middleware.Protected(), controllers.UpdateReport)
	lostFound.Delete("/:id", middleware.Protected(), controllers.DeleteReport)
}
