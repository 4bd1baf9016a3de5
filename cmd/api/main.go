package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hestialabs/leadgate/internal/infra/cache"
	"github.com/hestialabs/leadgate/internal/infra/database"
	"github.com/hestialabs/leadgate/internal/infra/http/handlers"
	"github.com/hestialabs/leadgate/internal/infra/http/middleware"
	"github.com/hestialabs/leadgate/internal/infra/integration/crm"
	"github.com/hestialabs/leadgate/internal/infra/integration/resend"
	"github.com/hestialabs/leadgate/internal/infra/integration/twilio"
	"github.com/hestialabs/leadgate/internal/infra/mail"
	"github.com/hestialabs/leadgate/internal/infra/queue"
	"github.com/hestialabs/leadgate/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := LoadConfig()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it the seat widget just loses its stale
	// snapshot and falls straight to the fixed number on DB outages.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	seatCache := cache.NewSeatCache(redisClient)

	// RabbitMQ is optional too; without it enrichment publishing is skipped.
	var (
		rabbitConn *amqp.Connection
		producer   usecase.QueueProducerInterface
	)
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("rabbitmq connection failed: %v", err)
		}
		defer rabbitMQ.Close()
		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		var crmSink queue.CRMClient
		if crmClient := crm.NewClient(cfg.CRMWebhookURL); crmClient.Configured() {
			crmSink = crmClient
		}
		worker := queue.NewWorker(rabbitMQ.Ch, crmSink)
		go worker.Start(queue.QueueName)
	}

	// Repositories
	signupRepo := database.NewSignupRepository(db)
	seatRepo := database.NewSeatRepository(db)
	leadRepo := database.NewLeadRepository(db)

	// Notification channels, in preference order
	dispatcher := mail.NewDispatcher(cfg.NotifyEmail,
		&mail.ResendChannel{
			Client: resend.NewClient(cfg.ResendAPIKey),
			From:   cfg.MailFrom,
		},
		&mail.SMTPChannel{
			Host:     cfg.MailHost,
			Port:     cfg.MailPort,
			User:     cfg.MailUser,
			Password: cfg.MailPass,
			From:     cfg.MailFrom,
		},
		&mail.LogChannel{},
	)

	smsSender := mail.NewSMSSender(
		twilio.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber),
		cfg.AlertPhone,
	)

	// Use cases
	signupUC := usecase.NewSignupIntakeUseCase(
		signupRepo, seatRepo, leadRepo, dispatcher, producer, cfg.DefaultSeatCapacity,
	)
	contactUC := usecase.NewContactIntakeUseCase(
		leadRepo, dispatcher, smsSender, producer,
	)

	// Handlers
	signupHandler := handlers.NewSignupHandler(signupUC)
	contactHandler := handlers.NewContactHandler(contactUC)
	seatsHandler := handlers.NewSeatsHandler(seatRepo, seatCache, cfg.DefaultSeatCapacity)
	adminHandler := handlers.NewAdminHandler(signupRepo, seatRepo)
	healthHandler := handlers.NewHealthHandler(db, redisClient, rabbitConn)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Post("/api/signup", signupHandler.Handle)
	r.Post("/api/contact", contactHandler.Handle)
	r.Get("/api/seats", seatsHandler.Handle)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminAuth(cfg.AdminToken))
		r.Post("/seats", adminHandler.SetSeats)
		r.Get("/applicants", adminHandler.ListApplicants)
		r.Patch("/applicants", adminHandler.PatchApplicant)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("leadgate API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
