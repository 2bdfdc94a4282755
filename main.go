package main

import (
	"log"
	"os"

	"pngbilling-backend/config"
	"pngbilling-backend/models"
	"pngbilling-backend/routes"
	"pngbilling-backend/services"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Customer{},
		&models.MeterReading{},
		&models.Bill{},
		&models.Assignment{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.NewBillingService(config.DB).StartScheduler()
	services.NewReminderService(config.DB).StartScheduler()

	r := routes.SetupRouter()
	log.Println("Server starting at port", port)
	r.Run(":" + port)
}
