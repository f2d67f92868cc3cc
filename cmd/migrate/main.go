package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jonbud2010/football-card-manager/internal/engine"
	"github.com/jonbud2010/football-card-manager/internal/models"
	"github.com/jonbud2010/football-card-manager/pkg/config"
	"github.com/jonbud2010/football-card-manager/pkg/database"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|seed]")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	command := os.Args[1]

	switch command {
	case "up":
		if err := runMigrations(db); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		logrus.Info("Migrations completed successfully")

	case "down":
		if err := dropTables(db); err != nil {
			logrus.Fatalf("Failed to drop tables: %v", err)
		}
		logrus.Info("Tables dropped successfully")

	case "seed":
		if err := seedData(db); err != nil {
			logrus.Fatalf("Failed to seed data: %v", err)
		}
		logrus.Info("Data seeded successfully")

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func runMigrations(db *database.DB) error {
	// Enable UUID extension for PostgreSQL
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Auto migrate all models
	if err := db.AutoMigrate(
		&models.User{},
		&models.Player{},
		&models.Formation{},
		&models.Team{},
		&models.TeamSlot{},
		&models.Lobby{},
		&models.LobbyMember{},
		&models.League{},
		&models.LeagueMember{},
		&models.MatchRecord{},
	); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}
	return nil
}

func dropTables(db *database.DB) error {
	return db.Migrator().DropTable(
		&models.MatchRecord{},
		&models.LeagueMember{},
		&models.League{},
		&models.LobbyMember{},
		&models.Lobby{},
		&models.TeamSlot{},
		&models.Team{},
		&models.Formation{},
		&models.Player{},
		&models.User{},
	)
}

func seedData(db *database.DB) error {
	formation := models.Formation{Name: "4-4-2"}
	layout := []string{"GK", "LB", "CB", "CB", "RB", "LM", "CM", "CM", "RM", "ST", "ST"}
	if err := formation.SetPositions(layout); err != nil {
		return err
	}
	if err := db.FirstOrCreate(&formation, models.Formation{Name: formation.Name}).Error; err != nil {
		return fmt.Errorf("failed to seed formation: %w", err)
	}

	seedPlayers := []models.Player{
		{Name: "Viktor Hansen", Points: 88, Position: "ST", Color: engine.ColorRed, MarketPrice: 950},
		{Name: "Luca Moretti", Points: 84, Position: "ST", Color: engine.ColorRed, MarketPrice: 820},
		{Name: "Jonas Weber", Points: 81, Position: "CM", Color: engine.ColorBlue, MarketPrice: 700},
		{Name: "Pavel Novak", Points: 79, Position: "CM", Color: engine.ColorBlue, MarketPrice: 640},
		{Name: "Diego Alvarez", Points: 77, Position: "LM", Color: engine.ColorGreen, MarketPrice: 590},
		{Name: "Tomas Lindgren", Points: 76, Position: "RM", Color: engine.ColorGreen, MarketPrice: 560},
		{Name: "Karim Benali", Points: 74, Position: "CB", Color: engine.ColorYellow, MarketPrice: 480},
		{Name: "Mateusz Kowal", Points: 73, Position: "CB", Color: engine.ColorYellow, MarketPrice: 460},
		{Name: "Felix Bauer", Points: 71, Position: "LB", Color: engine.ColorPurple, MarketPrice: 400},
		{Name: "Andre Silva", Points: 70, Position: "RB", Color: engine.ColorPurple, MarketPrice: 390},
		{Name: "Marco Visser", Points: 75, Position: "GK", Color: engine.ColorBlack, MarketPrice: 520},
	}
	for _, player := range seedPlayers {
		if err := player.Validate(); err != nil {
			return fmt.Errorf("invalid seed player %s: %w", player.Name, err)
		}
		if err := db.Where(models.Player{Name: player.Name}).FirstOrCreate(&player).Error; err != nil {
			return fmt.Errorf("failed to seed player %s: %w", player.Name, err)
		}
	}

	admin := models.User{Username: "admin", PasswordHash: "dev-only", Role: models.RoleAdmin}
	if err := db.Where(models.User{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}
