package routes

import (
	"phishing-simulator-backend/internal/api/handlers"
	"phishing-simulator-backend/internal/api/middleware"
	"phishing-simulator-backend/internal/auth"
	"phishing-simulator-backend/internal/config"
	"phishing-simulator-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services are the application services the HTTP layer exposes
type Services struct {
	Users         service.UserServiceInterface
	Organizations service.OrganizationServiceInterface
	Targets       service.TargetServiceInterface
	Campaigns     service.CampaignServiceInterface
	Tracking      service.TrackingServiceInterface
	Emails        service.EmailServiceInterface
	Reports       service.ReportServiceInterface
	Notifications service.NotificationServiceInterface
	Billing       service.BillingServiceInterface
}

// Infrastructure is what the router needs beyond the services
type Infrastructure struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Auth    *auth.AuthService
	Sockets handlers.SocketServer
	Version string
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, services *Services, infra *Infrastructure) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Sentry())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())
	router.Use(middleware.NewRateLimiter(infra.Auth, cfg.RateLimitAuthenticated, cfg.RateLimitAnonymous).Middleware())
	router.NoRoute(middleware.NotFound())

	authMiddleware := auth.NewAuthMiddleware(infra.Auth)

	healthHandler := handlers.NewHealthHandler(infra.DB, infra.Redis, infra.Version)
	userHandler := handlers.NewUserHandler(services.Users)
	organizationHandler := handlers.NewOrganizationHandler(services.Organizations)
	targetHandler := handlers.NewTargetHandler(services.Targets)
	campaignHandler := handlers.NewCampaignHandler(services.Campaigns)
	trackingHandler := handlers.NewTrackingHandler(services.Tracking)
	emailHandler := handlers.NewEmailHandler(services.Emails)
	reportHandler := handlers.NewReportHandler(services.Reports)
	notificationHandler := handlers.NewNotificationHandler(services.Notifications, authMiddleware, infra.Sockets)
	billingHandler := handlers.NewBillingHandler(services.Billing)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public tracking endpoints embedded in campaign emails
	track := router.Group("/track/:token")
	{
		track.GET("/open", trackingHandler.Open)
		track.GET("/click", trackingHandler.Click)
		track.POST("/submit", trackingHandler.Submit)
		track.POST("/report", trackingHandler.Report)
	}

	router.GET("/ws/notifications", notificationHandler.Socket)

	v1 := router.Group("/api/v1")

	// Public API routes
	v1.POST("/auth/login", userHandler.Login)
	v1.POST("/auth/refresh", userHandler.Refresh)
	v1.POST("/users", authMiddleware.OptionalAuth(), userHandler.CreateUser)
	v1.POST("/organizations", organizationHandler.CreateOrganization)
	v1.POST("/billing/webhooks/stripe", billingHandler.StripeWebhook)

	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/auth/logout", userHandler.Logout)
		protected.PUT("/auth/change-password", userHandler.ChangePassword)
		protected.GET("/profile", userHandler.GetProfile)
		protected.PUT("/profile", userHandler.UpdateProfile)

		users := protected.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}
		protected.GET("/statistics", userHandler.Statistics)

		organizations := protected.Group("/organizations")
		organizations.Use(authMiddleware.RequireManager())
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", authMiddleware.RequireAdmin(), organizationHandler.DeleteOrganization)
		}

		targets := protected.Group("/targets")
		targets.Use(authMiddleware.RequireManager())
		{
			targets.GET("", targetHandler.ListTargets)
			targets.POST("", targetHandler.CreateTarget)
			targets.POST("/bulk-create", targetHandler.BulkCreateTargets)
			targets.GET("/statistics", targetHandler.Statistics)
			targets.GET("/imports", targetHandler.ListImports)

			targets.GET("/groups", targetHandler.ListGroups)
			targets.POST("/groups", targetHandler.CreateGroup)
			targets.GET("/groups/:id", targetHandler.GetGroup)
			targets.PUT("/groups/:id", targetHandler.UpdateGroup)
			targets.DELETE("/groups/:id", targetHandler.DeleteGroup)

			targets.GET("/tags", targetHandler.ListTags)
			targets.POST("/tags", targetHandler.CreateTag)
			targets.GET("/tags/:id", targetHandler.GetTag)
			targets.PUT("/tags/:id", targetHandler.UpdateTag)
			targets.DELETE("/tags/:id", targetHandler.DeleteTag)

			targets.GET("/:id", targetHandler.GetTarget)
			targets.PUT("/:id", targetHandler.UpdateTarget)
			targets.DELETE("/:id", targetHandler.DeleteTarget)
		}

		campaigns := protected.Group("/campaigns")
		campaigns.Use(authMiddleware.RequireManager())
		{
			campaigns.GET("/templates", campaignHandler.ListTemplates)
			campaigns.POST("/templates", campaignHandler.CreateTemplate)
			campaigns.GET("/templates/:id", campaignHandler.GetTemplate)
			campaigns.PUT("/templates/:id", campaignHandler.UpdateTemplate)
			campaigns.DELETE("/templates/:id", campaignHandler.DeleteTemplate)

			campaigns.GET("/landing-pages", campaignHandler.ListLandingPages)
			campaigns.POST("/landing-pages", campaignHandler.CreateLandingPage)
			campaigns.GET("/landing-pages/:id", campaignHandler.GetLandingPage)
			campaigns.PUT("/landing-pages/:id", campaignHandler.UpdateLandingPage)
			campaigns.DELETE("/landing-pages/:id", campaignHandler.DeleteLandingPage)

			campaigns.GET("/statistics", campaignHandler.Statistics)
			campaigns.GET("", campaignHandler.ListCampaigns)
			campaigns.POST("", campaignHandler.CreateCampaign)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
			campaigns.PUT("/:id", campaignHandler.UpdateCampaign)
			campaigns.DELETE("/:id", campaignHandler.DeleteCampaign)
			campaigns.POST("/:id/action", campaignHandler.CampaignAction)
			campaigns.GET("/:id/reports", campaignHandler.CampaignReports)
			campaigns.GET("/:id/targets", campaignHandler.CampaignTargets)
		}

		emails := protected.Group("/emails")
		emails.Use(authMiddleware.RequireManager())
		{
			emails.GET("/smtp-configs", emailHandler.ListSMTPConfigs)
			emails.POST("/smtp-configs", emailHandler.CreateSMTPConfig)
			emails.GET("/smtp-configs/:id", emailHandler.GetSMTPConfig)
			emails.PUT("/smtp-configs/:id", emailHandler.UpdateSMTPConfig)
			emails.DELETE("/smtp-configs/:id", emailHandler.DeleteSMTPConfig)
			emails.GET("/queue", emailHandler.ListQueue)
			emails.GET("/events", emailHandler.ListEvents)
			emails.GET("/statistics", emailHandler.Statistics)
		}

		reports := protected.Group("/reports")
		reports.Use(authMiddleware.RequireManager())
		{
			reports.GET("/campaigns", reportHandler.ListCampaignReports)
			reports.GET("/campaigns/:id", reportHandler.GetCampaignReport)
			reports.GET("/departments", reportHandler.ListDepartmentReports)
			reports.GET("/scheduled", reportHandler.ListScheduledReports)
			reports.POST("/scheduled", reportHandler.CreateScheduledReport)
			reports.GET("/scheduled/:id", reportHandler.GetScheduledReport)
			reports.PUT("/scheduled/:id", reportHandler.UpdateScheduledReport)
			reports.DELETE("/scheduled/:id", reportHandler.DeleteScheduledReport)
			reports.GET("/statistics", reportHandler.Statistics)
		}

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("/mark-all-read", notificationHandler.MarkAllRead)
			notifications.GET("/statistics", notificationHandler.Statistics)
			notifications.GET("/preferences", notificationHandler.GetPreferences)
			notifications.PUT("/preferences", notificationHandler.UpdatePreferences)

			rules := notifications.Group("/alert-rules")
			rules.Use(authMiddleware.RequireManager())
			{
				rules.GET("", notificationHandler.ListAlertRules)
				rules.POST("", notificationHandler.CreateAlertRule)
				rules.GET("/:id", notificationHandler.GetAlertRule)
				rules.PUT("/:id", notificationHandler.UpdateAlertRule)
				rules.DELETE("/:id", notificationHandler.DeleteAlertRule)
			}

			notifications.GET("/:id", notificationHandler.GetNotification)
			notifications.PUT("/:id", notificationHandler.UpdateNotification)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}

		billing := protected.Group("/billing")
		billing.Use(authMiddleware.RequireManager())
		{
			billing.GET("/subscription", billingHandler.GetSubscription)
			billing.PUT("/subscription", billingHandler.UpdateSubscription)
			billing.GET("/overview", billingHandler.Overview)
			billing.GET("/invoices", billingHandler.ListInvoices)
			billing.GET("/invoices/:id", billingHandler.GetInvoice)
			billing.GET("/usage", billingHandler.ListUsage)
			billing.GET("/payment-methods", billingHandler.ListPaymentMethods)
			billing.POST("/payment-methods", billingHandler.CreatePaymentMethod)
			billing.GET("/payment-methods/:id", billingHandler.GetPaymentMethod)
			billing.PUT("/payment-methods/:id", billingHandler.UpdatePaymentMethod)
			billing.DELETE("/payment-methods/:id", billingHandler.DeletePaymentMethod)
		}
	}

	return router
}
