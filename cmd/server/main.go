package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4"            // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in request logging and panic recovery

	"github.com/iliyamo/user-admin-panel/internal/config"     // Internal config loader
	"github.com/iliyamo/user-admin-panel/internal/database"   // MySQL connection and schema bootstrap
	"github.com/iliyamo/user-admin-panel/internal/handler"    // HTTP handlers
	"github.com/iliyamo/user-admin-panel/internal/repository" // User store
	"github.com/iliyamo/user-admin-panel/internal/router"     // Route registration
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("database schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	h := handler.NewUserHandler(cfg, users)

	e := echo.New()
	e.Use(echomw.Logger())  // request log line per call
	e.Use(echomw.Recover()) // convert panics into 500s instead of crashing

	router.RegisterRoutes(e)
	router.RegisterUsers(e, h, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
