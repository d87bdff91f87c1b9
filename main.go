package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stylegenie-backend/config"
	"stylegenie-backend/controllers"
	"stylegenie-backend/models"
	"stylegenie-backend/repos"
	"stylegenie-backend/routes"
	"stylegenie-backend/services"
	"stylegenie-backend/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Consultation{},
	)

	local, err := storage.NewLocalStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open local storage: %v", err)
	}
	sessionStore := storage.NewSessionStore(local)

	tracker, err := services.NewAppointmentTracker(storage.NewAppointmentStore(local))
	if err != nil {
		log.Fatalf("Failed to load appointments: %v", err)
	}

	memory := services.NewMemoryService(repos.NewClientRepo(db), repos.NewConsultationRepo(db))

	if cfg.TwilioAccountSID != "" {
		reminder := services.NewRebookReminderService(tracker, services.RebookReminderConfig{
			AccountSID:     cfg.TwilioAccountSID,
			AuthToken:      cfg.TwilioAuthToken,
			FromNumber:     cfg.TwilioPhoneNumber,
			WhatsAppNumber: cfg.TwilioWhatsAppNumber,
			OwnerPhone:     cfg.OwnerPhone,
		})
		reminder.StartScheduler()
	}

	// No speech backend is bundled; the dictation affordance reports
	// itself unsupported until one is plugged in here.
	var capture services.SpeechCapture

	r := routes.SetupRouter(cfg, routes.Handlers{
		Auth:          controllers.NewAuthController(db, cfg, sessionStore),
		Clients:       controllers.NewClientController(repos.NewClientRepo(db)),
		Consultations: controllers.NewConsultationController(memory),
		Appointments:  controllers.NewAppointmentController(tracker, capture),
		Session:       controllers.NewSessionController(sessionStore),
		Checkout:      controllers.NewCheckoutController(cfg),
	})
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
