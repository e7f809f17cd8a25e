package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
}

func Load() Config {
	// Local development keeps overrides in a .env file; absent is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] .env not loaded: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		// sqlite file in project root; WAL + busy_timeout to avoid
		// "database is locked" under concurrent requests
		dsn = "libreria.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
