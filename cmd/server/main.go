package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	handler "github.com/BG-legacy/HabitChain-sub001/internal/adapters/handler/http"
	"github.com/BG-legacy/HabitChain-sub001/internal/adapters/repository/postgres"
	"github.com/BG-legacy/HabitChain-sub001/internal/config"
	"github.com/BG-legacy/HabitChain-sub001/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	db, err := openDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	authRepo := postgres.NewAuthRepository(db)
	habitRepo := postgres.NewHabitRepository(db)
	checkInRepo := postgres.NewCheckInRepository(db)
	badgeRepo := postgres.NewBadgeRepository(db)
	encouragementRepo := postgres.NewEncouragementRepository(db)

	tokenSvc, err := services.NewTokenService(authRepo, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	authSvc := services.NewAuthService(userRepo, authRepo, tokenSvc)
	badgeSvc := services.NewBadgeService(userRepo, habitRepo, badgeRepo)
	habitSvc := services.NewHabitService(habitRepo)
	checkInSvc := services.NewCheckInService(habitRepo, checkInRepo, badgeSvc)
	encouragementSvc := services.NewEncouragementService(encouragementRepo, userRepo)
	userSvc := services.NewUserService(userRepo)

	router := handler.NewHandler(
		tokenSvc,
		handler.NewAuthHandler(authSvc),
		handler.NewUserHandler(userSvc, badgeSvc),
		handler.NewHabitHandler(habitSvc),
		handler.NewCheckInHandler(checkInSvc),
		handler.NewBadgeHandler(badgeSvc),
		handler.NewEncouragementHandler(encouragementSvc),
	)

	server := &stdhttp.Server{Addr: cfg.ListenAddr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func openDB(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
