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

	"concierge/config"
	"concierge/cron"
	"concierge/database"
	"concierge/database/repository"
	"concierge/handlers"
	"concierge/middleware"
	"concierge/routes"
	"concierge/services/agents"
	conciergeSvc "concierge/services/concierge"
	"concierge/services/tasks"
	"concierge/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	pipelineCfg := agents.FromAppConfig(config.AppConfig)
	appointmentRepo := repository.NewMongoAppointmentRepo(pipelineCfg.DefaultDurationMin)
	contactRepo := repository.NewMongoContactRepo(appointmentRepo, repository.SlotWindow{
		StartMinute: pipelineCfg.BusinessStartMinute,
		EndMinute:   pipelineCfg.BusinessEndMinute,
		StepMinutes: pipelineCfg.SlotStepMinutes,
	})
	serviceRepo := repository.NewMongoServiceRepo()
	traceRepo := repository.NewMongoTraceRepo()

	// background trace persistence.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTraceQueueDB,
	})
	defer asynqClient.Close()
	cron.InitTraceWorker(traceRepo)

	// services.
	orchestrator := agents.NewOrchestrator(pipelineCfg, agents.Stores{
		Contacts: contactRepo,
		Services: serviceRepo,
		Ledger:   appointmentRepo,
	})
	service := &conciergeSvc.DefaultConciergeService{
		Orchestrator:    orchestrator,
		ContactRepo:     contactRepo,
		ServiceRepo:     serviceRepo,
		AppointmentRepo: appointmentRepo,
		TraceRepo:       traceRepo,
		TraceQueue:      tasks.NewTraceEnqueuer(asynqClient),
		Cache:           conciergeSvc.NewContactCache(utils.GetCacheClient()),
	}

	conciergeHandler := handlers.NewConciergeHandler(service)
	handlerBundle := handlers.NewHandlerBundle(conciergeHandler)

	// Register routes with the assembled handler bundle.
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
