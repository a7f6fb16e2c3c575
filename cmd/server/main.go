package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/vkozyrev/zametki/internal/auth"
	"github.com/vkozyrev/zametki/internal/config"
	"github.com/vkozyrev/zametki/internal/db"
	"github.com/vkozyrev/zametki/internal/handlers"
	"github.com/vkozyrev/zametki/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	var dbConn *sql.DB
	switch cfg.DBDriver {
	case "mysql":
		dbConn = db.InitMySQL(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBName)
	default:
		dbConn = db.InitSQLite(cfg.DatabasePath)
	}
	defer dbConn.Close()

	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	rnd, err := handlers.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	st := store.New(dbConn)
	r := handlers.NewRouter(st, jwtService, rnd)

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
