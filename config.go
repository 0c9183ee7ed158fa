package main

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all environment variables for the service. Secrets are
// loaded here once and injected into constructors; business logic never
// reads the environment.
type Config struct {
	Port         string
	Env          string
	MongoURI     string
	MongoDB      string
	RedisURL     string
	JWTSecret    string
	StripeKey    string
	KafkaBrokers []string // optional; order events disabled when empty
	KafkaTopic   string
}

// LoadConfig loads environment variables into a Config struct and
// validates the required fields.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:       os.Getenv("PORT"),
		Env:        os.Getenv("APP_ENV"),
		MongoURI:   os.Getenv("MONGO_URI"),
		MongoDB:    os.Getenv("MONGO_DB"),
		RedisURL:   os.Getenv("REDIS_URL"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		StripeKey:  os.Getenv("STRIPE_SECRET_KEY"),
		KafkaTopic: os.Getenv("KAFKA_ORDER_TOPIC"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "flipkart"
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379"
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "orders.events"
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.StripeKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}

	return cfg, nil
}
