package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	"barberbook/database/repository/appointment"
	"barberbook/database/repository/catalog"
	"barberbook/database/repository/schedule"
	"barberbook/database/repository/store"
	"barberbook/database/repository/user"
	"barberbook/handlers"
	"barberbook/routes"
	"barberbook/services/availability"
	"barberbook/services/booking"
	catalogSvc "barberbook/services/catalog"
	ownerSvc "barberbook/services/owner"
	scheduleSvc "barberbook/services/schedule"
	"barberbook/services/sms"
	storeSvc "barberbook/services/store"
	"barberbook/services/tasks"
	userSvc "barberbook/services/user"
	"barberbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	location, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid business timezone %q: %v",
			config.AppConfig.BusinessTimezone, err)
	}

	var imageStorage storeSvc.ImageStorage = storeSvc.DisabledStorage{}
	if config.AppConfig.CloudinaryURL != "" {
		imageStorage, err = storeSvc.NewCloudinaryStorage(config.AppConfig.CloudinaryURL)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
		}
	} else {
		logger.Sugar().Warn("main: cloudinary not configured, storefront images disabled")
	}

	var sender sms.Sender = sms.NoopSender{}
	if config.AppConfig.SMSWebhookURL != "" {
		sender = sms.NewWebhookSender(config.AppConfig.SMSWebhookURL, config.AppConfig.SMSWebhookToken)
	}

	reminderRedis := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
	asynqClient := asynq.NewClient(reminderRedis)
	defer asynqClient.Close()

	// Repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	typeRepo := catalogRepo.NewMongoAppointmentTypeRepo()
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	usrRepo := userRepo.NewMongoUserRepo()
	stRepo := storeRepo.NewMongoStoreRepo()

	// Services.
	availabilityEngine := &availability.DefaultAvailabilityEngine{
		Schedule:     schedRepo,
		Types:        typeRepo,
		Appointments: apptRepo,
		Location:     location,
	}

	bookingService := &booking.DefaultBookingService{
		Appointments: apptRepo,
		Types:        typeRepo,
		Users:        usrRepo,
		Locker:       &booking.RedisDateLocker{Client: utils.GetCacheClient()},
		Reminders:    &tasks.ReminderScheduler{Client: asynqClient, Location: location},
		Location:     location,
	}

	userService := &userSvc.DefaultUserService{
		Repo:     usrRepo,
		Sender:   sender,
		Messages: stRepo,
	}

	ownerService := &ownerSvc.DefaultOwnerService{
		Users:        usrRepo,
		Appointments: apptRepo,
		Sender:       sender,
		Messages:     stRepo,
		Location:     location,
	}

	catalogService := &catalogSvc.DefaultCatalogService{Repo: typeRepo}

	scheduleService := &scheduleSvc.DefaultScheduleService{
		Repo:     schedRepo,
		Location: location,
	}

	storeService := &storeSvc.DefaultStoreService{
		Repo:   stRepo,
		Images: imageStorage,
	}

	// The reminder worker runs inside the API process.
	cron.InitReminderWorker(cron.ReminderDeps{
		Appointments: apptRepo,
		Sender:       sender,
		Messages:     stRepo,
	})

	handlerBundle := &handlers.HandlerBundle{
		Availability: availabilityEngine,
		Booking:      bookingService,
		Users:        userService,
		Owner:        ownerService,
		Catalog:      catalogService,
		Schedule:     scheduleService,
		Store:        storeService,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
