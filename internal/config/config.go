package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// DBDriver selects the storage backend: "sqlite3" or "mysql".
	DBDriver     string
	DatabasePath string
	DBUser       string
	DBPassword   string
	DBHost       string
	DBName       string

	JWTSecret     string
	TokenTTLHours int
}

func LoadConfig() *Config {
	// Missing .env is fine, plain env vars still apply.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite3"
	}

	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = "zametki.db"
	}

	tokenTTL := 72
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			tokenTTL = parsed
		}
	}

	return &Config{
		Port:         port,
		DBDriver:     driver,
		DatabasePath: databasePath,
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBHost:       os.Getenv("DB_HOST"),
		DBName:       os.Getenv("DB_NAME"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTLHours: tokenTTL,
	}
}
