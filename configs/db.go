package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectDB opens the database named by the config. sqlite is the dev/test
// driver; postgres is what production runs on. sqlite needs foreign_keys
// switched on or the cascade constraints are silently ignored.
func ConnectDB(cfg *Config) error {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource + "?_foreign_keys=1")
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	database, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}
