package server

import (
	admin "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/adminService"
	auction "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/auctionService"
	identity "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/identityService"
	notification "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/notificationService"
	payment "github.com/rakshithkumar1040/ancient-treasures-auction-platform/internal/paymentService"
	handler "github.com/rakshithkumar1040/ancient-treasures-auction-platform/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the router exposes over HTTP
type Services struct {
	Identity     *identity.IdentityService
	Auction      *auction.AuctionService
	Payment      *payment.PaymentService
	Admin        *admin.AdminService
	Notification *notification.NotificationService
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	authHandler := handler.NewAuthHandler(svc.Identity)
	auctionHandler := handler.NewAuctionHandler(svc.Auction, svc.Identity)
	paymentHandler := handler.NewPaymentHandler(svc.Payment, svc.Identity)
	adminHandler := handler.NewAdminHandler(svc.Admin, svc.Identity, svc.Identity)
	notificationHandler := handler.NewNotificationHandler(svc.Notification, svc.Identity)

	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.SignupHandler)
		auth.POST("/login", authHandler.LoginHandler)
		auth.POST("/logout", authHandler.LogoutHandler)
		auth.GET("/session", authHandler.SessionHandler)
	}

	items := router.Group("/items")
	{
		items.GET("", auctionHandler.ListItemsHandler)
		items.POST("", auctionHandler.CreateListingHandler)
		items.GET("/:item_id", auctionHandler.GetItemHandler)
		items.GET("/:item_id/bids", auctionHandler.GetItemBidsHandler)
		items.POST("/:item_id/bids", auctionHandler.PlaceBidHandler)
	}

	profile := router.Group("/profile")
	{
		profile.GET("/bids", auctionHandler.BidHistoryHandler)
		profile.GET("/wins", auctionHandler.WonItemsHandler)
	}

	sold := router.Group("/sold")
	{
		sold.POST("/:item_id/payment", paymentHandler.PayHandler)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("", notificationHandler.ListNotificationsHandler)
		notifications.GET("/unread-count", notificationHandler.UnreadCountHandler)
		notifications.POST("/read", notificationHandler.MarkReadHandler)
		notifications.GET("/wins", notificationHandler.UnseenWinsHandler)
		notifications.POST("/wins/ack", notificationHandler.AcknowledgeWinsHandler)
	}

	adminRoutes := router.Group("/admin")
	{
		adminRoutes.GET("/stats", adminHandler.StatsHandler)
		adminRoutes.GET("/users", adminHandler.ListUsersHandler)
		adminRoutes.GET("/auctions", adminHandler.LiveAuctionsHandler)
		adminRoutes.GET("/sold", adminHandler.SoldItemsHandler)
		adminRoutes.POST("/users/:email/ban", adminHandler.ToggleBanHandler)
		adminRoutes.DELETE("/users/:email", adminHandler.DeleteUserHandler)
		adminRoutes.DELETE("/items/:item_id", adminHandler.DeleteItemHandler)
		adminRoutes.POST("/items/:item_id/hide", adminHandler.HideItemHandler)
		adminRoutes.POST("/items/:item_id/unhide", adminHandler.UnhideItemHandler)
	}

	return router
}
