package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-management/config"
	deliveryHttp "hospital-management/internal/delivery/http"
	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/infrastructure/cache"
	"hospital-management/internal/infrastructure/database"
	"hospital-management/internal/scheduler"
	"hospital-management/internal/service"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/jwt"
	"hospital-management/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Scheduler   *scheduler.Scheduler
}

// New loads configuration from the environment and wires the application.
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig wires the application from an already loaded configuration.
func NewWithConfig(cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Log:    newLogger(cfg.App.LogLevel),
	}
	app.Log.WithFields(logrus.Fields{
		"env":     cfg.App.Env,
		"storage": cfg.App.StorageDriver,
	}).Info("Configuration loaded successfully")

	var repos Repositories
	switch cfg.App.StorageDriver {
	case config.StorageDriverMemory:
		repos = newMemoryRepositories()
		app.Log.Warn("Using in-memory storage, data will not survive a restart")
	default:
		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		repos = newPostgresRepositories(db)
		app.Log.Info("Database connected successfully")
	}

	tokenStore := service.NewMemoryTokenStore(time.Now)
	statsCache := service.NewNoopStatsCache()
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		tokenStore = service.NewRedisTokenStore(redisClient)
		statsCache = service.NewRedisStatsCache(redisClient, app.Log, cfg.Redis.StatsTTL)
		app.Log.Info("Redis connected successfully")
	}

	app.Server, app.Scheduler = initializeServer(cfg, app.Log, repos, tokenStore, statsCache)
	return app, nil
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// initializeServer builds every layer on top of repos and returns the HTTP
// server together with the (optional) job scheduler.
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	repos Repositories,
	tokenStore service.TokenStore,
	statsCache service.StatsCache,
) (*http.Server, *scheduler.Scheduler) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	now := time.Now

	// Services
	auditService := service.NewAuditService(log, repos.AuditLogs)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, repos.Users, jwtService, tokenStore, auditService)
	patientUsecase := usecase.NewPatientUsecase(log, repos.Patients, auditService, statsCache)
	doctorUsecase := usecase.NewDoctorUsecase(log, repos.Doctors, auditService, statsCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, repos.Appointments, repos.Patients, repos.Doctors, auditService, statsCache, now)
	admissionUsecase := usecase.NewAdmissionUsecase(log, repos.Admissions, repos.Patients, repos.Doctors, auditService, now)
	medicineUsecase := usecase.NewMedicineUsecase(log, repos.Medicines, auditService, cfg.Pharmacy.LowStockThreshold, now)
	labReportUsecase := usecase.NewLabReportUsecase(log, repos.LabReports, repos.Patients, repos.Doctors, auditService, now)
	staffUsecase := usecase.NewStaffUsecase(log, repos.Staff, auditService, now)
	billingUsecase := usecase.NewBillingUsecase(log, repos.Billing, repos.Patients, auditService, now)
	dashboardUsecase := usecase.NewDashboardUsecase(log, repos.Patients, repos.Doctors, repos.Appointments, repos.Billing, statsCache, now)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, repos.AuditLogs)

	// Handlers
	handlers := deliveryHttp.Handlers{
		Auth:        handler.NewAuthHandler(authUsecase, customValidator),
		Patient:     handler.NewPatientHandler(patientUsecase, customValidator),
		Doctor:      handler.NewDoctorHandler(doctorUsecase, customValidator),
		Appointment: handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		Admission:   handler.NewAdmissionHandler(admissionUsecase, customValidator),
		Medicine:    handler.NewMedicineHandler(medicineUsecase, customValidator),
		LabReport:   handler.NewLabReportHandler(labReportUsecase, customValidator),
		Staff:       handler.NewStaffHandler(staffUsecase, customValidator),
		Billing:     handler.NewBillingHandler(billingUsecase, customValidator),
		Dashboard:   handler.NewDashboardHandler(dashboardUsecase),
		AuditLog:    handler.NewAuditLogHandler(auditLogUsecase),
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Middleware
	middlewares := deliveryHttp.Middlewares{
		Auth:      middleware.NewAuthMiddleware(jwtService, tokenStore),
		CORS:      middleware.NewCORSMiddleware(),
		Logging:   middleware.NewLoggingMiddleware(log),
		Metrics:   middleware.NewMetricsMiddleware(registry),
		RateLimit: middleware.NewRateLimitMiddleware(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst),
	}

	router := deliveryHttp.NewRouter(handlers, middlewares, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobs = scheduler.New(log, dashboardUsecase, billingUsecase, cfg.Redis.StatsTTL)
	}

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, jobs
}

// Run starts the HTTP server and the scheduler, then blocks until SIGINT or
// SIGTERM and shuts both down.
func (app *App) Run() error {
	if app.Scheduler != nil {
		if err := app.Scheduler.RegisterJobs(); err != nil {
			return err
		}
		app.Scheduler.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
	case runErr = <-errCh:
		app.Log.Errorf("Server failed: %v", runErr)
	}

	app.shutdown()
	return runErr
}

func (app *App) shutdown() {
	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}
	if app.Scheduler != nil {
		app.Scheduler.Stop()
	}

	app.Close()
	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
