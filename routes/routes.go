package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/artistycode/studio-api/handlers"
	"github.com/artistycode/studio-api/middleware"
	"github.com/artistycode/studio-api/services"
)

// SetupAuthRoutes sets up the staff authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/login", authHandler.Login)
	rg.POST("/auth/refresh", authHandler.Refresh)
	rg.POST("/auth/logout", authHandler.Logout)
}

// SetupPublicRoutes sets up the endpoints backing the marketing site. The
// write endpoints (contact, checkout, volunteer sign-up) carry the strict
// rate limit.
func SetupPublicRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	emailService := services.NewEmailService()

	publicHandler := &handlers.PublicHandler{
		Banners:   services.NewBannerService(db),
		Projects:  services.NewProjectService(db),
		Resources: services.NewResourceService(db),
		Reviews:   services.NewReviewService(db),
		Notices:   services.NewNoticeService(db),
		Events:    services.NewEventService(db),
	}
	contactHandler := handlers.NewContactHandler(emailService, ws)
	checkoutHandler := &handlers.CheckoutHandler{
		Orders: services.NewOrderService(db),
		Email:  emailService,
		WS:     ws,
	}
	registrationHandler := &handlers.RegistrationHandler{
		Service: services.NewRegistrationService(db),
		WS:      ws,
	}

	rg.GET("/banners", publicHandler.GetBanners)
	rg.GET("/projects", publicHandler.GetProjects)
	rg.GET("/projects/:id", publicHandler.GetProject)
	rg.GET("/resources", publicHandler.GetResources)
	rg.GET("/resources/:id", publicHandler.GetResource)
	rg.GET("/reviews", publicHandler.GetReviews)
	rg.GET("/notices", publicHandler.GetNotices)
	rg.GET("/events", publicHandler.GetEvents)
	rg.GET("/orders/lookup", checkoutHandler.MyOrders)

	strict := rg.Group("/")
	strict.Use(middleware.StrictRateLimiter())
	{
		strict.POST("/contact", contactHandler.Submit)
		strict.POST("/orders", checkoutHandler.PlaceOrder)
		strict.POST("/registrations", registrationHandler.Submit)
	}
}

// SetupAccountRoutes sets up the signed-in staff member's own account routes.
func SetupAccountRoutes(rg *gin.RouterGroup, db *sql.DB) {
	accountHandler := &handlers.AccountHandler{DB: db}

	rg.GET("/account", accountHandler.Me)
	rg.POST("/account/password", accountHandler.ChangePassword)
	rg.POST("/account/2fa/setup", accountHandler.SetupTOTP)
	rg.POST("/account/2fa/verify", accountHandler.VerifyTOTP)
	rg.POST("/account/2fa/disable", accountHandler.DisableTOTP)
}

// SetupDashboardRoutes sets up the back-office routes. The whole group sits
// behind AuthMiddleware; content management requires moderator, while staff
// accounts and the ledger require admin.
func SetupDashboardRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	emailService := services.NewEmailService()
	orderService := services.NewOrderService(db)
	registrationService := services.NewRegistrationService(db)
	transactionService := services.NewTransactionService(db)

	contentHandler := &handlers.ContentHandler{
		Banners: services.NewBannerService(db),
		Notices: services.NewNoticeService(db),
		Events:  services.NewEventService(db),
	}
	catalogHandler := &handlers.CatalogHandler{
		Projects:  services.NewProjectService(db),
		Resources: services.NewResourceService(db),
		Reviews:   services.NewReviewService(db),
	}
	registrationHandler := &handlers.RegistrationHandler{Service: registrationService, WS: ws}
	orderHandler := &handlers.OrderHandler{Service: orderService, Email: emailService}
	staffHandler := &handlers.StaffHandler{Service: services.NewStaffService(db)}
	transactionHandler := &handlers.TransactionHandler{Service: transactionService}
	exportHandler := &handlers.ExportHandler{
		Orders:        orderService,
		Registrations: registrationService,
		Transactions:  transactionService,
	}

	moderator := rg.Group("/")
	moderator.Use(middleware.RequireModerator())
	{
		moderator.GET("/banners", contentHandler.ListBanners)
		moderator.POST("/banners", contentHandler.CreateBanner)
		moderator.PUT("/banners/:id", contentHandler.UpdateBanner)
		moderator.DELETE("/banners/:id", contentHandler.DeleteBanner)

		moderator.GET("/notices", contentHandler.ListNotices)
		moderator.POST("/notices", contentHandler.CreateNotice)
		moderator.PUT("/notices/:id", contentHandler.UpdateNotice)
		moderator.DELETE("/notices/:id", contentHandler.DeleteNotice)

		moderator.GET("/events", contentHandler.ListEvents)
		moderator.POST("/events", contentHandler.CreateEvent)
		moderator.PUT("/events/:id", contentHandler.UpdateEvent)
		moderator.DELETE("/events/:id", contentHandler.DeleteEvent)

		moderator.GET("/projects", catalogHandler.ListProjects)
		moderator.POST("/projects", catalogHandler.CreateProject)
		moderator.PUT("/projects/:id", catalogHandler.UpdateProject)
		moderator.DELETE("/projects/:id", catalogHandler.DeleteProject)

		moderator.GET("/resources", catalogHandler.ListResources)
		moderator.POST("/resources", catalogHandler.CreateResource)
		moderator.PUT("/resources/:id", catalogHandler.UpdateResource)
		moderator.DELETE("/resources/:id", catalogHandler.DeleteResource)

		moderator.GET("/reviews", catalogHandler.ListReviews)
		moderator.POST("/reviews", catalogHandler.CreateReview)
		moderator.PUT("/reviews/:id", catalogHandler.UpdateReview)
		moderator.DELETE("/reviews/:id", catalogHandler.DeleteReview)

		moderator.GET("/registrations", registrationHandler.List)
		moderator.GET("/registrations/:id", registrationHandler.Get)
		moderator.PUT("/registrations/:id/status", registrationHandler.UpdateStatus)
		moderator.DELETE("/registrations/:id", registrationHandler.Delete)

		moderator.GET("/orders", orderHandler.List)
		moderator.GET("/orders/:id", orderHandler.Get)
		moderator.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		moderator.DELETE("/orders/:id", orderHandler.Delete)

		moderator.GET("/export/orders", exportHandler.ExportOrders)
		moderator.GET("/export/registrations", exportHandler.ExportRegistrations)
	}

	admin := rg.Group("/")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/staff/admins", staffHandler.ListAdmins)
		admin.GET("/staff/moderators", staffHandler.ListModerators)
		admin.POST("/staff", staffHandler.Create)
		admin.PUT("/staff/:id", staffHandler.Update)
		admin.DELETE("/staff/:id", staffHandler.Delete)

		admin.GET("/transactions", transactionHandler.List)
		admin.POST("/transactions", transactionHandler.Create)
		admin.PUT("/transactions/:id", transactionHandler.Update)
		admin.DELETE("/transactions/:id", transactionHandler.Delete)
		admin.GET("/transactions/overview", transactionHandler.Overview)

		admin.GET("/export/transactions", exportHandler.ExportTransactions)
	}
}
