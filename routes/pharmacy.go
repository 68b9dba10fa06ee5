package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petconnect/petconnect/controllers"
	"github.com/petconnect/petconnect/middleware"
	"github.com/petconnect/petconnect/models"
)

// SetupPharmacyRoutes configures storefront product and order routes
func SetupPharmacyRoutes(app *fiber.App) {
	pharmacy := app.Group("/pharmacy")

	// Public product browsing
	pharmacy.Get("/products", controllers.GetAllProducts)
	pharmacy.Get("/products/:id", controllers.GetProduct)

	// Product management: pharmacy staff only
	pharmacyOnly := middleware.RequireRole(models.RolePharmacy, models.RoleAdmin)
	pharmacy.Post("/products", middleware.Protected(), pharmacyOnly, controllers.CreateProduct)
	pharmacy.Put("/products/:id", middleware.Protected(), pharmacyOnly, controllers.UpdateProduct)
	pharmacy.Delete("/products/:id", middleware.Protected(), pharmacyOnly, controllers.DeleteProduct)

	// Orders
	pharmacy.Post("/orders", middleware.Protected(), controllers.CreateOrder)
	pharmacy.Get("/orders/user", middleware.Protected(), controllers.GetUserOrders)
	pharmacy.Get("/orders", middleware.Protected(), pharmacyOnly, controllers.GetPharmacyOrders)
	pharmacy.Put("/orders/:id", middleware.Protected(), pharmacyOnly, controllers.UpdateOrderStatus)
}
