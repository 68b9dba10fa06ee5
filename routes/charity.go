package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petconnect/petconnect/controllers"
	"github.com/petconnect/petconnect/middleware"
)

// SetupCharityRoutes configures campaign and donation routes
func SetupCharityRoutes(app *fiber.App) {
	charity := app.Group("/charity")

	// Campaigns
	charity.Get("/campaigns", controllers.GetAllCampaigns)
	charity.Get("/campaigns/my", middleware.Protected(), controllers.GetMyCampaigns)
	charity.Get("/campaigns/stats", middleware.Protected(), controllers.GetShelterStats)
	charity.Get("/campaigns/:id", controllers.GetCampaign)
	charity.Post("/campaigns", middleware.Protected(), controllers.CreateCampaign)

	// Donations
	charity.Get("/my-donations", middleware.Protected(), controllers.GetMyDonations)
	charity.Post("/donate", middleware.Protected(), controllers.InitiateDonation)
	// Gateway callback, arrives unauthenticated
	charity.Post("/verify", controllers.VerifyDonation)
}
