package routes

import (
	"net/http"
	"time"

	userRepo "fittribe/database/repository/user"
	"fittribe/handlers"
	"fittribe/middleware"
	"fittribe/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers and shared dependencies for route registration.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	TrainerHandler *handlers.TrainerHandler
	BookingHandler *handlers.BookingHandler
	UserHandler    *handlers.UserHandler
	StorageHandler *handlers.StorageHandler
}

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterTrainerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm FitTribe",
			"health":  utils.GetHealthStatus(),
		})
	})
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.UserHandler.RegisterHandler)
		api.POST("/login", hb.UserHandler.AuthenticateHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.UserHandler.GetMeHandler)
		api.PUT("/me", hb.UserHandler.UpdateMeHandler)
		api.DELETE("/me", hb.UserHandler.DeleteMeHandler)
		api.DELETE("/revoke", hb.UserHandler.RevokeTokenHandler)
		api.PUT("/me/notifications/read", hb.UserHandler.MarkNotificationsReadHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminOnlyMiddleware())
		admin.GET("", hb.UserHandler.ListUsersHandler)
	}
}

// RegisterTrainerRoutes registers trainer directory endpoints.
func RegisterTrainerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/trainers")
	{
		// Public directory endpoints.
		api.GET("", hb.TrainerHandler.SearchTrainers)
		api.GET("/specialties", hb.TrainerHandler.ListSpecialties)
		api.GET("/featured", hb.TrainerHandler.GetFeaturedTrainers)
		api.GET("/:id", hb.TrainerHandler.GetTrainerByID)

		// Directory management requires an admin account.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminOnlyMiddleware())
		protected.POST("", hb.TrainerHandler.CreateTrainer)
		protected.PUT("/:id", hb.TrainerHandler.UpdateTrainer)
		protected.DELETE("/:id", hb.TrainerHandler.DeleteTrainer)
	}
}

// RegisterBookingRoutes sets up the booking draft pipeline and the confirmed
// booking dashboard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	draft := r.Group("/api/booking")
	{
		draft.GET("/slots", hb.BookingHandler.ListTimeSlots)

		draft.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		draft.POST("/draft", hb.BookingHandler.CreateDraft)
		draft.GET("/draft", hb.BookingHandler.GetDraft)
		draft.POST("/draft/:draftID/pay", hb.BookingHandler.PayDraft)
		draft.DELETE("/draft", hb.BookingHandler.CancelDraft)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		bookings.GET("", hb.BookingHandler.ListBookings)
		bookings.PUT("/:id/cancel", hb.BookingHandler.CancelBooking)
	}
}

// RegisterStorageRoutes registers trainer image endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.GET("/trainers/:id/image", hb.StorageHandler.GetTrainerImageURLHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminOnlyMiddleware())
		protected.POST("/trainers/:id/image", hb.StorageHandler.UploadTrainerImageHandler)
	}
}
