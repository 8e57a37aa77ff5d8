package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phishing-simulator-backend/internal/api/routes"
	"phishing-simulator-backend/internal/auth"
	"phishing-simulator-backend/internal/config"
	"phishing-simulator-backend/internal/database"
	"phishing-simulator-backend/internal/jobs"
	"phishing-simulator-backend/internal/logger"
	"phishing-simulator-backend/internal/mailer"
	"phishing-simulator-backend/internal/payments"
	"phishing-simulator-backend/internal/realtime"
	"phishing-simulator-backend/internal/repository"
	"phishing-simulator-backend/internal/service"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const version = "1.0.0"

//	@title			Phishing Simulator API
//	@version		1.0
//	@description	Backend API for running phishing awareness campaigns: organizations, users, targets, campaigns, email delivery, tracking, reports, notifications and billing.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Release:     version,
		}); err != nil {
			logrus.WithError(err).Warn("Failed to initialize sentry")
		}
		defer sentry.Flush(2 * time.Second)
	}

	db, err := database.Initialize(cfg.DSN(), &database.Options{Driver: cfg.DatabaseDriver})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Fatal("Invalid REDIS_URL:", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := buildApplication(ctx, cfg, db, redisClient)
	if err != nil {
		logrus.Fatal("Failed to build application:", err)
	}

	if cfg.JobsEnabled {
		go func() {
			if err := app.scheduler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logrus.WithError(err).Error("Scheduler stopped unexpectedly")
			}
		}()
	}

	router := routes.SetupRoutes(cfg, app.services, app.infra)

	port := cfg.Port
	if port == "" {
		port = "8000"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}
}

type application struct {
	services  *routes.Services
	infra     *routes.Infrastructure
	scheduler *jobs.Scheduler
}

func buildApplication(ctx context.Context, cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*application, error) {
	validate := validator.New()

	// Auth
	revokedRepo := repository.NewRevokedTokenRepository(db)
	var blacklist auth.Blacklist = auth.NewDBBlacklist(revokedRepo)
	if redisClient != nil {
		blacklist = auth.NewRedisBlacklist(redisClient)
	}
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), blacklist)
	if err != nil {
		return nil, err
	}

	// Realtime notifications; with redis every instance relays to its local sockets
	hub := realtime.NewHub()
	var publisher realtime.Publisher = hub
	if redisClient != nil {
		relay := realtime.NewRedisRelay(redisClient, hub)
		publisher = relay
		go func() {
			if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logrus.WithError(err).Error("Realtime relay stopped")
			}
		}()
	}

	// Outbound email
	var fallback mailer.Sender
	if cfg.EmailProvider == "resend" && cfg.ResendAPIKey != "" {
		resend, err := mailer.NewResendSender(cfg.ResendAPIKey, cfg.DefaultFromEmail)
		if err != nil {
			return nil, err
		}
		fallback = resend
	}

	// Billing plans
	plans := service.DefaultPlanCatalog()
	if cfg.PlansFile != "" {
		loaded, err := service.LoadPlanCatalog(cfg.PlansFile)
		if err != nil {
			logrus.WithError(err).Warnf("Failed to load plans from %s, using built-in catalog", cfg.PlansFile)
		} else {
			plans = loaded
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	groupRepo := repository.NewTargetGroupRepository(db)
	tagRepo := repository.NewTargetTagRepository(db)
	importRepo := repository.NewTargetImportRepository(db)
	templateRepo := repository.NewEmailTemplateRepository(db)
	pageRepo := repository.NewLandingPageRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	recipientRepo := repository.NewCampaignTargetRepository(db)
	smtpRepo := repository.NewSMTPConfigurationRepository(db)
	queueRepo := repository.NewEmailQueueRepository(db)
	eventRepo := repository.NewEmailEventRepository(db)
	reportRepo := repository.NewCampaignReportRepository(db)
	departmentRepo := repository.NewDepartmentReportRepository(db)
	scheduledRepo := repository.NewScheduledReportRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	preferenceRepo := repository.NewNotificationPreferenceRepository(db)
	ruleRepo := repository.NewAlertRuleRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	usageRepo := repository.NewUsageMetricRepository(db)
	paymentMethodRepo := repository.NewPaymentMethodRepository(db)

	// Services
	notificationService := service.NewNotificationService(notificationRepo, preferenceRepo, ruleRepo, userRepo, publisher, validate)
	usageTracker := service.NewUsageTracker(usageRepo, notificationService)
	billingService := service.NewBillingService(subscriptionRepo, invoiceRepo, usageRepo, paymentMethodRepo, orgRepo, plans,
		payments.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret), notificationService, validate)
	organizationService := service.NewOrganizationService(orgRepo, billingService, validate)
	userService := service.NewUserService(userRepo, organizationService, authService, validate)
	targetService := service.NewTargetService(targetRepo, groupRepo, tagRepo, importRepo, usageTracker, validate)
	reportService := service.NewReportService(reportRepo, departmentRepo, scheduledRepo, campaignRepo, recipientRepo,
		eventRepo, queueRepo, targetRepo, notificationService, validate)
	campaignService := service.NewCampaignService(campaignRepo, recipientRepo, templateRepo, pageRepo, groupRepo,
		targetRepo, queueRepo, notificationService, reportService, usageTracker, validate)
	trackingService := service.NewTrackingService(recipientRepo, eventRepo, notificationService)
	emailService := service.NewEmailService(smtpRepo, queueRepo, eventRepo, campaignRepo, recipientRepo,
		mailer.NewRouter(fallback), usageTracker, validate, service.EmailOptions{
			TrackingBaseURL: cfg.TrackingBaseURL,
			MaxRetries:      cfg.EmailMaxRetries,
			UseFallback:     fallback != nil,
		})

	// Background jobs
	scheduler := jobs.NewScheduler()
	scheduler.Register(jobs.NewCampaignDispatchJob(campaignService, cfg.CampaignJobInterval))
	scheduler.Register(jobs.NewEmailSenderJob(emailService, cfg.EmailJobInterval))
	scheduler.Register(jobs.NewScheduledReportsJob(reportService, cfg.ReportJobInterval))
	scheduler.Register(jobs.NewTokenCleanupJob(revokedRepo, time.Hour))

	return &application{
		services: &routes.Services{
			Users:         userService,
			Organizations: organizationService,
			Targets:       targetService,
			Campaigns:     campaignService,
			Tracking:      trackingService,
			Emails:        emailService,
			Reports:       reportService,
			Notifications: notificationService,
			Billing:       billingService,
		},
		infra: &routes.Infrastructure{
			DB:      db,
			Redis:   redisClient,
			Auth:    authService,
			Sockets: hub,
			Version: version,
		},
		scheduler: scheduler,
	}, nil
}
