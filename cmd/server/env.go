package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	SecretKey      string
	DatabaseURL    string
	MigrationsPath string
	RedisAddress   string
	RedisUsername  string
	RedisPassword  string
	MQTTBrokerURL  string
	PollInterval   time.Duration
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	// .env is optional; real deployments set the variables directly
	_ = godotenv.Load()

	env := Environment{
		Environment:   os.Getenv("APP_ENV"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SecretKey:     os.Getenv("JWT_SECRET"),
		ServerAddress: os.Getenv("SERVER_ADDRESS"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),

		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		PollInterval: time.Minute,
	}

	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}
	if raw := os.Getenv("REMINDER_POLL_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid REMINDER_POLL_INTERVAL: %v", err)
		}
		env.PollInterval = parsed
	}

	// Basic validation
	if env.DatabaseURL == "" || env.SecretKey == "" {
		log.Fatal("Missing required environment variables")
	}

	return env
}
