package infra

import (
	"gift-registry/models"

	"gorm.io/gorm"
)

// EnsureSchema provisions the users, guests and items tables together with
// their unique, foreign-key and index constraints. It is idempotent and safe
// to run on every start; existing tables and data are never dropped or
// altered. All statements run in one transaction so a failure leaves the
// schema untouched.
func EnsureSchema(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// 依存順: users → guests → items
		return tx.AutoMigrate(
			&models.User{},
			&models.Guest{},
			&models.Item{},
		)
	})
}
