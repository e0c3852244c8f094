package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xbl/lead-tracker/docs"
	"github.com/xbl/lead-tracker/internal/config"
	"github.com/xbl/lead-tracker/internal/database"
	"github.com/xbl/lead-tracker/internal/http/handler"
	"github.com/xbl/lead-tracker/internal/http/middleware"
	"github.com/xbl/lead-tracker/internal/http/router"
	"github.com/xbl/lead-tracker/internal/jobs"
	"github.com/xbl/lead-tracker/internal/logger"
	"github.com/xbl/lead-tracker/internal/repository"
	"github.com/xbl/lead-tracker/internal/service"
	"go.uber.org/zap"
)

// @title XBL Lead Tracker API
// @version 1.0
// @description Lead tracking for XBL: master data, offer numbering, serial numbers and follow-ups

// @contact.name XBL Sales Operations

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("Database schema migrated")
	}

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	offerNumberRepo := repository.NewOfferNumberRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	// Initialize services
	employeeService := service.NewEmployeeService(employeeRepo, log)
	customerService := service.NewCustomerService(customerRepo, log)
	offerNumberService := service.NewOfferNumberService(offerNumberRepo, log)
	leadService := service.NewLeadService(leadRepo, customerRepo, offerNumberRepo, offerNumberService, db, log)
	dashboardService := service.NewDashboardService(leadRepo, customerRepo, employeeRepo, log)
	exportService := service.NewLeadExportService(leadService, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	employeeHandler := handler.NewEmployeeHandler(employeeService, log)
	customerHandler := handler.NewCustomerHandler(customerService, log)
	offerNumberHandler := handler.NewOfferNumberHandler(offerNumberService, log)
	leadHandler := handler.NewLeadHandler(leadService, exportService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		employeeHandler,
		customerHandler,
		offerNumberHandler,
		leadHandler,
		dashboardHandler,
	)

	// Initialize and start scheduler for background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.FollowUpReminderEnabled {
		scheduler = jobs.NewScheduler(log)

		if err := jobs.RegisterFollowUpReminderJob(
			scheduler,
			leadService,
			log,
			cfg.Jobs.FollowUpReminderCron,
			jobs.DefaultFollowUpReminderTimeout,
			false,
		); err != nil {
			log.Error("Failed to register follow-up reminder job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with follow-up reminder job",
				zap.String("cron_expr", cfg.Jobs.FollowUpReminderCron),
			)
		}
	} else {
		log.Info("Follow-up reminder job disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
