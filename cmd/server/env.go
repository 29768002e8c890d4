package main

import (
	"log"
	"os"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	DatabaseURL    string
	MigrationsPath string
	RedisAddress   string
	RedisUsername  string
	RedisPassword  string
	FeedURL        string
	ReportDir      string
	ReportCron     string
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	env := Environment{
		Environment:   os.Getenv("APP_ENV"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		ServerAddress: os.Getenv("SERVER_ADDRESS"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		FeedURL:    os.Getenv("TALK_FEED_URL"),
		ReportDir:  os.Getenv("REPORT_DIR"),
		ReportCron: os.Getenv("REPORT_CRON"),
	}

	// Basic validation
	if env.DatabaseURL == "" || env.ServerAddress == "" {
		log.Fatal("Missing required environment variables")
	}

	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}
	if env.ReportDir == "" {
		env.ReportDir = "./reports"
	}
	if env.ReportCron == "" {
		// weekly, after the weekend meeting has been saved
		env.ReportCron = "0 3 * * MON"
	}

	return env
}
