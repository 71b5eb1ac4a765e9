package main

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/salonflow/salonflow/cron"
	"github.com/salonflow/salonflow/db"
	"github.com/salonflow/salonflow/redis"
	"github.com/salonflow/salonflow/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("SalonFlow API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupPublicRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
}
