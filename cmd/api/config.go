package main

import (
	"os"
	"strconv"
)

// Config gathers every env-driven option once at startup; nothing else in
// the process reads the environment.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	RabbitMQURL string

	AdminToken string

	ResendAPIKey string
	MailHost     string
	MailPort     int
	MailUser     string
	MailPass     string
	MailFrom     string
	NotifyEmail  string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	AlertPhone       string

	CRMWebhookURL string

	DefaultSeatCapacity int
}

func LoadConfig() *Config {
	return &Config{
		Port:        envOr("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),

		AdminToken: os.Getenv("ADMIN_API_TOKEN"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		MailHost:     os.Getenv("MAIL_HOST"),
		MailPort:     envIntOr("MAIL_PORT", 587),
		MailUser:     os.Getenv("MAIL_USER"),
		MailPass:     os.Getenv("MAIL_PASS"),
		MailFrom:     envOr("MAIL_FROM", "no-reply@hestialabs.io"),
		NotifyEmail:  os.Getenv("NOTIFY_EMAIL"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		AlertPhone:       os.Getenv("ALERT_PHONE"),

		CRMWebhookURL: os.Getenv("CRM_WEBHOOK_URL"),

		DefaultSeatCapacity: envIntOr("DEFAULT_SEAT_CAPACITY", 10),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
