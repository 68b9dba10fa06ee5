package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petconnect/petconnect/controllers"
	"github.com/petconnect/petconnect/middleware"
	"github.com/petconnect/petconnect/models"
)

// SetupDoctorRoutes configures veterinarian profile routes
func SetupDoctorRoutes(app *fiber.App) {
	doctors := app.Group("/doctors")

	doctors.Get("/", controllers.GetAllDoctors)
	doctors.Get("/user/:userId", controllers.GetDoctorByUserID)
	doctors.Get("/:id", controllers.GetDoctor)
	doctors.Put("/:doctorId/availability", middleware.Protected(),
		middleware.RequireRole(models.RoleVeterinarian, models.RoleAdmin),
		controllers.UpdateDoctorAvailability)
}
