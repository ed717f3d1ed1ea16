package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gadgetmart-auth/internal/config"
	"gadgetmart-auth/internal/handler"
	"gadgetmart-auth/internal/repository"
	"gadgetmart-auth/internal/router"
	"gadgetmart-auth/internal/service/captcha"
	"gadgetmart-auth/internal/service/mailer"
	"gadgetmart-auth/internal/service/otp"
	"gadgetmart-auth/internal/service/sms"
	"gadgetmart-auth/internal/service/throttle"
	"gadgetmart-auth/internal/usecase"
	"gadgetmart-auth/pkg/cache"
	"gadgetmart-auth/pkg/id"
	"gadgetmart-auth/pkg/jwtutil"
	"gadgetmart-auth/pkg/kafka"
	"gadgetmart-auth/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

const (
	jwtIssuer      = "gadgetmart-auth"
	tokenLifetime  = 24 * time.Hour
	throttleMax    = 5
	throttleWindow = 60 * time.Second
)

func NewServer(cfg config.AppConfig) {
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)

	sf, err := id.NewSnowflake(8)
	if err != nil {
		log.Fatalf("failed to init snowflake: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})
	redisCache := cache.NewCacheWithClient(rdb)

	loginThrottle := throttle.NewLoginThrottle(redisCache, throttleMax, throttleWindow)
	otpGen := otp.NewGenerator(cfg.OTPSecret)
	signer := jwtutil.NewSigner([]byte(cfg.JWTSecret), jwtIssuer, tokenLifetime)
	verifier := jwtutil.NewVerifier([]byte(cfg.JWTSecret), jwtIssuer)

	emailCli := mailer.NewEmailSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass)
	smsCli := sms.NewSMSSender(cfg.SMS.BaseURL, cfg.SMS.SenderID, cfg.SMS.UserID, cfg.SMS.Password)
	captchaCli := captcha.NewRecaptchaVerifier(cfg.RecaptchaSecret)

	// The interface stays nil when no brokers are configured so the activity
	// middleware skips publishing entirely.
	var publisher middleware.ActivityPublisher
	var producer *kafka.ActivityProducer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = kafka.NewActivityProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("Failed to create Kafka producer: %v", err)
		}
		publisher = producer
	}

	userUC := usecase.NewUserUsecase(userRepo, sf, otpGen, signer, loginThrottle, emailCli, smsCli)

	authHandler := handler.NewAuthHandler(userUC, captchaCli)
	authMW := middleware.NewAuthMiddleware(verifier)

	r := chi.NewRouter()
	router.SetupRoutes(r, authHandler, authMW, userRepo, publisher, rdb)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Shutdown signal received, initiating graceful shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP shutdown error: %v", err)
		}

		if producer != nil {
			log.Println("Stopping Kafka producer...")
			producer.Close()
		}

		log.Println("Closing Redis connection...")
		if err := rdb.Close(); err != nil {
			log.Printf("Error closing Redis: %v", err)
		}

		log.Println("Closing database connection...")
		db.Close()

		log.Println("Graceful shutdown complete")
	}()

	log.Printf("Auth HTTP server listening at %s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("HTTP server error: %v", err)
	}
}
