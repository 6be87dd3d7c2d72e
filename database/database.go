package database

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/slight125/FarmFlow/config"
	"github.com/slight125/FarmFlow/models"
)

var DB *gorm.DB

// ConnectDB opens the store and migrates the schema. A postgres DSN wins;
// anything else falls back to a local sqlite file so development needs
// zero setup.
func ConnectDB(dsn string) {
	log := config.GetLogger()

	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		dialector = postgres.Open(dsn)
	case dsn != "":
		// assume a bare postgres DSN without the scheme prefix
		dialector = postgres.Open(dsn)
	default:
		dsn = "farmflow.db"
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	DB = db
	log.Infof("📦 database connected and migrated on %s", dsn)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Crop{},
		&models.Livestock{},
		&models.InventoryItem{},
		&models.FinancialTransaction{},
		&models.Task{},
		&models.Activity{},
		&models.WeatherData{},
	)
}
