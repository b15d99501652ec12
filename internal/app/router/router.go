package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	bookinghandler "parksarthi_backend/internal/feature/booking/transport/handler"
	chathandler "parksarthi_backend/internal/feature/chat/transport/handler"
	directionshandler "parksarthi_backend/internal/feature/directions/transport/handler"
	documenthandler "parksarthi_backend/internal/feature/documents/transport/handler"
	inquiryhandler "parksarthi_backend/internal/feature/inquiry/transport/handler"
	parkinghandler "parksarthi_backend/internal/feature/parking/transport/handler"
	phoneauthhandler "parksarthi_backend/internal/feature/phoneauth/transport/handler"
	userhandler "parksarthi_backend/internal/feature/users/transport/handler"
	wallethandler "parksarthi_backend/internal/feature/wallet/transport/handler"
	"parksarthi_backend/internal/platform/http/handler"
	jwtmw "parksarthi_backend/internal/platform/jwt"
)

// Handlers bundles every HTTP handler mounted by the router.
type Handlers struct {
	PhoneAuth  *phoneauthhandler.PhoneAuthHandler
	Users      *userhandler.UserHandler
	Wallet     *wallethandler.WalletHandler
	Bookings   *bookinghandler.BookingHandler
	Parking    *parkinghandler.ParkingHandler
	Directions *directionshandler.DirectionsHandler
	Chat       *chathandler.ChatHandler
	Documents  *documenthandler.DocumentHandler
	Inquiries  *inquiryhandler.InquiryHandler
}

// NewRouter mounts all routes. Everything a visitor can reach before logging
// in (auth, parking discovery, directions, the chatbot, inquiries) is public;
// anything touching a user's own records requires a session token.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	r.POST("/auth/phone", h.PhoneAuth.SendOTP)
	r.POST("/auth/verify", h.PhoneAuth.VerifyOTP)

	api := r.Group("/api")
	{
		api.GET("/parking/spots", h.Parking.ListSpots)
		api.GET("/parking/spots/nearest", h.Parking.NearestSpot)
		api.GET("/ev-stations", h.Parking.ListStations)
		api.GET("/directions", h.Directions.Get)

		api.POST("/chat", h.Chat.Send)
		api.GET("/chat/history", h.Chat.History)
		api.DELETE("/chat/history", h.Chat.ClearHistory)

		api.POST("/business-inquiries", h.Inquiries.Create)
		api.GET("/service-history", h.Documents.ServiceHistory)
	}

	auth := r.Group("/api")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/users", h.Users.GetByPhone)
		auth.POST("/users", h.Users.Create)
		auth.GET("/users/:id", h.Users.Get)

		auth.GET("/users/:id/wallet", h.Wallet.Get)
		auth.POST("/users/:id/points", h.Wallet.AddPoints)
		auth.POST("/users/:id/redeem", h.Wallet.Redeem)
		auth.POST("/users/:id/achievements/:achievementID", h.Wallet.UnlockAchievement)

		auth.POST("/bookings", h.Bookings.Create)
		auth.GET("/bookings", h.Bookings.List)
		auth.GET("/bookings/:id", h.Bookings.Get)
		auth.POST("/bookings/:id/complete", h.Bookings.Complete)
		auth.POST("/bookings/:id/cancel", h.Bookings.Cancel)

		auth.POST("/documents", h.Documents.Add)
		auth.GET("/documents", h.Documents.List)

		auth.GET("/business-inquiries", h.Inquiries.List)
	}

	return r
}
