package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petconnect/petconnect/controllers"
	"github.com/petconnect/petconnect/middleware"
	"github.com/petconnect/petconnect/models"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointments := app.Group("/appointments")

	appointments.Get("/availability", controllers.GetAvailability)
	appointments.Post("/", middleware.Protected(), controllers.CreateAppointment)
	appointments.Get("/doctor/:doctorId", middleware.Protected(), controllers.GetAppointmentsByDoctor)
	appointments.Get("/user/:userId", middleware.Protected(), controllers.GetAppointmentsByUser)
	appointments.Put("/:id/status", middleware.Protected(),
		middleware.RequireRole(models.RoleVeterinarian, models.RoleAdmin),
		controllers.UpdateAppointmentStatus)
}
