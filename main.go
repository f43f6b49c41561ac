// @title Lernraum Backend API
// @version 1.0
// @description Backend der geschlossenen Lernplattform: News, Lehrplan, Forum, Q&A, Projekte, Tools, Vorträge und Umfragen.

// @contact.name API-Support
// @contact.email support@lernraum.dev

// @license.name MIT

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"lernraum_backend/internal/app"
	"lernraum_backend/internal/config"
	"lernraum_backend/pkg/configwatcher"
	"lernraum_backend/pkg/logger"
)

func main() {
	// Kommandozeilenparameter
	migrateOnly := flag.Bool("migrate-only", false, "nur die Datenbankmigration ausführen und danach beenden")
	migrate := flag.Bool("migrate", false, "Datenbankmigration beim Start erzwingen (auch im Release-Modus)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Migrationsflags setzen
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// Nach abgeschlossener Migration direkt beenden
	if *migrateOnly {
		log.Println("Datenbankmigration abgeschlossen, Programm wird beendet")
		return
	}

	// Dynamische Einstellungen bei Änderungen an der Konfigurationsdatei neu laden
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		if updated, ok := newCfg.(*config.Config); ok {
			cfg.Ideas = updated.Ideas
			cfg.RateLimit = updated.RateLimit
			cfg.CORS = updated.CORS
			logger.Log.Info("Config reloaded")
		}
	})

	application.Run()
}
