package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr     = ":8080"
	defaultJWTAccessTTL = "24h"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultGatewayURL   = "https://pay.joy-it.example/checkout"
	defaultGatewayTest  = "1"
)

type Gateway struct {
	MerchantID string
	Secret     string
	BaseURL    string
	ResultURL  string
	SuccessURL string
	IsTest     string
}

type Config struct {
	AppEnv       string
	HTTPAddr     string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration
	Gateway      Gateway

	// Origins allowed to open the notification websocket. Empty means any
	// origin (local development).
	WSAllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.WSAllowedOrigins = splitCSVEnv("WS_ALLOWED_ORIGINS")

	cfg.Gateway = Gateway{
		MerchantID: os.Getenv("PAYMENT_MERCHANT_ID"),
		Secret:     os.Getenv("PAYMENT_SECRET"),
		BaseURL:    getEnv("PAYMENT_BASE_URL", defaultGatewayURL),
		ResultURL:  os.Getenv("PAYMENT_RESULT_URL"),
		SuccessURL: os.Getenv("PAYMENT_SUCCESS_URL"),
		IsTest:     getEnv("PAYMENT_IS_TEST", defaultGatewayTest),
	}

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func splitCSVEnv(name string) []string {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", name, raw, err)
	}
	return d, nil
}
