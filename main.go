// File: garagedesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"garagedesk/config"
	"garagedesk/cron"
	"garagedesk/database"
	accountRepo "garagedesk/database/repository/account"
	appointmentRepo "garagedesk/database/repository/appointment"
	reportRepo "garagedesk/database/repository/report"
	technicianRepo "garagedesk/database/repository/technician"
	"garagedesk/handlers"
	"garagedesk/middleware"
	"garagedesk/routes"
	"garagedesk/services/appointment"
	"garagedesk/services/report"
	"garagedesk/services/scheduling"
	"garagedesk/services/technician"
	"garagedesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	techRepo := technicianRepo.NewMongoTechnicianRepo()
	acctRepo := accountRepo.NewMongoAccountRepo()
	rollupRepo := reportRepo.NewMongoRollupRepo()

	// The scheduling engine is pure: one calendar instance serves every
	// request concurrently.
	calendar := scheduling.NewCalendar(scheduling.DefaultSlotTable(), scheduling.IrishHolidays())

	// services.
	directory := technician.NewDirectory(
		techRepo,
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.DirectoryCacheTTLMinutes)*time.Minute,
	)

	appointmentService := &appointment.DefaultService{
		Repo:      apptRepo,
		Directory: directory,
		Calendar:  calendar,
	}

	reportService := &report.Service{
		Repo:      apptRepo,
		Rollups:   rollupRepo,
		Directory: directory,
	}

	// Nightly technician-hours rollup.
	cron.InitRollupWorker(reportService)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Appointments: handlers.NewAppointmentHandler(appointmentService, logger),
		Technicians:  handlers.NewTechnicianHandler(directory),
		Accounts:     handlers.NewAccountHandler(acctRepo),
		Reports:      handlers.NewReportHandler(reportService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
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

	// Wait for an OS signal to gracefully shutdown.
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
