package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/petconnect/petconnect/cron"
	"github.com/petconnect/petconnect/db"
	"github.com/petconnect/petconnect/redis"
	"github.com/petconnect/petconnect/routes"
)

func main() {
	app := fiber.New()
	db.Migrate()

	if os.Getenv("REDIS_ADDR") != "" {
		redis.InitRedis()
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupPetRoutes(app)
	routes.SetupPharmacyRoutes(app)
	routes.SetupCharityRoutes(app)
	routes.SetupLostFoundRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
