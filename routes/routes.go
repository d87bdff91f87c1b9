package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stylegenie-backend/config"
	"stylegenie-backend/controllers"
	"stylegenie-backend/utils"
)

// Handlers bundles the constructed controllers the router wires up.
type Handlers struct {
	Auth          *controllers.AuthController
	Clients       *controllers.ClientController
	Consultations *controllers.ConsultationController
	Appointments  *controllers.AppointmentController
	Session       *controllers.SessionController
	Checkout      *controllers.CheckoutController
}

func SetupRouter(cfg config.Config, h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)

		auth.Use(utils.AuthMiddleware(cfg.JWTSecret))
		auth.GET("/me", h.Auth.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(cfg.JWTSecret))
	{
		// Client memory routes
		api.GET("/clients", h.Clients.GetClients)

		consultations := api.Group("/consultations")
		{
			consultations.POST("", h.Consultations.SaveAndGenerate)
			consultations.POST("/prefill", h.Consultations.Prefill)
		}

		// Appointment tracker routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", h.Appointments.CreateAppointment)
			appointments.GET("", h.Appointments.GetDashboard)
			appointments.PUT("/:id/status", h.Appointments.UpdateStatus)
			appointments.POST("/:id/timer", h.Appointments.StartTimer)
			appointments.DELETE("/:id/timer", h.Appointments.ClearTimer)
			appointments.POST("/:id/dictate", h.Appointments.Dictate)
			appointments.POST("/:id/summarize", h.Appointments.Summarize)
		}

		api.GET("/service-templates", controllers.TemplateController{}.GetServiceTemplates)
		api.GET("/capabilities", h.Appointments.GetCapabilities)

		// Session display state (pro flag, cached email)
		session := api.Group("/session")
		{
			session.GET("", h.Session.GetSession)
			session.PUT("/pro", h.Session.UpdateProStatus)
		}
	}

	// Checkout relay, same surface the old payment proxy exposed
	r.POST("/create-checkout-session", utils.AuthMiddleware(cfg.JWTSecret), h.Checkout.CreateCheckoutSession)

	return r
}
