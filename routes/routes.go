package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"barberbook/handlers"
	"barberbook/middleware"
)

// RegisterAppointmentRoutes registers the customer-facing booking
// endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		// Public availability and storefront endpoints.
		api.POST("/dates", hb.AvailableDatesHandler)
		api.POST("/times", hb.AvailableTimesHandler)
		api.GET("/types", hb.ListTypesHandler)
		api.GET("/businessName", hb.BusinessNameHandler)
		api.GET("/coverImage", hb.CoverImageHandler)
		api.GET("/logoImage", hb.LogoImageHandler)

		// Booking requires a customer session.
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.CreateAppointmentHandler)
		api.GET("/user/:phone", hb.UserAppointmentsHandler)
		api.DELETE("/:appointmentId", hb.CancelAppointmentHandler)
	}
}

// RegisterAuthRoutes registers customer account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/verify-phone", hb.VerifyPhoneHandler)
		api.POST("/verify-code", hb.VerifyCodeHandler)
		api.POST("/restore-password", hb.RestorePasswordHandler)
		api.POST("/check-phone", hb.CheckPhoneHandler)

		api.Use(middleware.AuthMiddleware())
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/user/:phone", hb.GetUserHandler)
	}
}

// RegisterOwnerRoutes registers the back-office endpoints.
func RegisterOwnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/owner")
	{
		api.POST("/login", hb.OwnerLoginHandler)

		api.Use(middleware.OwnerAuthMiddleware())
		api.POST("/restore-password", hb.OwnerRestorePasswordHandler)

		api.GET("/types", hb.ListTypesHandler)
		api.POST("/types", hb.CreateTypeHandler)
		api.PUT("/types", hb.UpdateTypeHandler)
		api.DELETE("/types/:id", hb.DeleteTypeHandler)

		api.GET("/hours", hb.WorkingHoursHandler)
		api.POST("/hours", hb.AddWorkingHoursHandler)
		api.PUT("/hours", hb.UpdateWorkingHoursHandler)
		api.DELETE("/hours/:id", hb.DeleteWorkingHoursHandler)

		api.GET("/dayoff", hb.DaysOffHandler)
		api.POST("/dayoff", hb.AddDayOffHandler)
		api.DELETE("/dayoff/:day", hb.DeleteDayOffHandler)

		api.GET("/vacation", hb.VacationsHandler)
		api.POST("/vacation", hb.AddVacationHandler)
		api.PUT("/vacation", hb.UpdateVacationHandler)
		api.DELETE("/vacation/:id", hb.DeleteVacationHandler)

		api.GET("/appointments/:date", hb.OwnerAppointmentsByDateHandler)
		api.GET("/canceled-appointments/:date", hb.OwnerCancellationsHandler)
		api.POST("/appointments/count", hb.OwnerCountAppointmentsHandler)
		api.DELETE("/appointments/:id", hb.OwnerDeleteAppointmentHandler)

		api.POST("/message", hb.OwnerBroadcastHandler)

		api.GET("/businessName", hb.BusinessNameHandler)
		api.PUT("/businessName", hb.UpdateBusinessNameHandler)
		api.GET("/coverImage", hb.CoverImageHandler)
		api.POST("/coverImage", hb.UploadCoverImageHandler)
		api.GET("/logoImage", hb.LogoImageHandler)
		api.POST("/logoImage", hb.UploadLogoImageHandler)

		api.GET("/settings", hb.SettingsHandler)
		api.POST("/settings", hb.CreateSettingHandler)
		api.PUT("/settings", hb.UpdateSettingHandler)
		api.DELETE("/settings", hb.DeleteSettingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and global
// middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAppointmentRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterOwnerRoutes(r, hb)
	RegisterHealthRoute(r)
}
