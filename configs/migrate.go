package configs

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

// SchemaMigration records one applied migration step.
type SchemaMigration struct {
	ID        string `gorm:"primaryKey"`
	AppliedAt time.Time
}

func (SchemaMigration) TableName() string { return "schema_migrations" }

// MigrationStep is one additive schema change. Steps run in declaration
// order, each exactly once, each inside its own transaction.
type MigrationStep struct {
	ID  string
	Run func(tx *gorm.DB) error
}

func automigrate(models ...any) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		return tx.AutoMigrate(models...)
	}
}

// Steps is the ordered forward history of the schema. New changes append;
// existing entries never change.
func Steps() []MigrationStep {
	return []MigrationStep{
		{ID: "0001_accounts", Run: automigrate(&entity.User{})},
		{ID: "0002_profiles", Run: automigrate(&entity.Customer{}, &entity.Restaurant{})},
		{ID: "0003_dishes", Run: automigrate(&entity.Dish{})},
		{ID: "0004_carts", Run: automigrate(&entity.CartItem{})},
		{ID: "0005_addresses_orders", Run: automigrate(&entity.Address{}, &entity.Order{})},
		{ID: "0006_favorite", Run: automigrate(&entity.Favorite{})},
	}
}

// Migrate applies every pending step. Re-running it is a no-op.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return err
	}
	for _, step := range Steps() {
		var applied int64
		if err := db.Model(&SchemaMigration{}).Where("id = ?", step.ID).Count(&applied).Error; err != nil {
			return err
		}
		if applied > 0 {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := step.Run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{ID: step.ID, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			return err
		}
	}
	return nil
}
