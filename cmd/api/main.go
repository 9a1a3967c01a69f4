package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"connectvault/internal/client"
	"connectvault/internal/config"
	"connectvault/internal/repository"
	"connectvault/internal/server"
	"connectvault/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.Database.Path)

	userRepo := repository.NewUserRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)
	contactRepo := repository.NewContactRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	promoLinkRepo := repository.NewPromoLinkRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)

	authService := service.NewAuthService(
		userRepo, resetRepo,
		cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.ResetTTL,
	)
	contactService := service.NewContactService(contactRepo)
	taskService := service.NewTaskService(taskRepo)
	promoLinkService := service.NewPromoLinkService(promoLinkRepo)
	commissionService := service.NewCommissionService(commissionRepo)
	dashboardService := service.NewDashboardService(
		contactRepo, taskRepo, promoLinkRepo, commissionService,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(
		db, cfg.Auth.JWTSecret,
		authService,
		contactService,
		taskService,
		promoLinkService,
		commissionService,
		dashboardService,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
