package config

import (
	"os"
	"strings"
)

type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
}

type SMSConfig struct {
	BaseURL  string
	SenderID string
	UserID   string
	Password string
}

type AppConfig struct {
	HTTPAddr        string
	RedisAddr       string
	RedisPass       string
	JWTSecret       string
	OTPSecret       string
	RecaptchaSecret string
	SMTP            SMTPConfig
	SMS             SMSConfig
	KafkaBrokers    []string
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8001"),
		RedisAddr:       getEnv("REDIS_ADDR", "redis:6379"),
		RedisPass:       getEnv("REDIS_PASS", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		OTPSecret:       getEnv("OTP_SECRET", ""),
		RecaptchaSecret: getEnv("RECAPTCHA_SECRET_KEY", ""),
		SMTP: SMTPConfig{
			Host: getEnv("SMTP_HOST", ""),
			Port: getEnv("SMTP_PORT", "465"),
			User: getEnv("SMTP_USER", ""),
			Pass: getEnv("SMTP_PASS", ""),
		},
		SMS: SMSConfig{
			BaseURL:  getEnv("SMS_BASE_URL", ""),
			SenderID: getEnv("SMS_SENDER_ID", ""),
			UserID:   getEnv("SMS_USER_ID", ""),
			Password: getEnv("SMS_PASSWORD", ""),
		},
		// Empty means no brokers configured; activity logging stays off.
		KafkaBrokers: getEnvSlice("KAFKA_BROKERS", nil),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
