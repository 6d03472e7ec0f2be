package services

import (
	"testing"

	"gift-registry/infra"
	"gift-registry/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, infra.EnsureSchema(db))
	return db
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Name: "Test User"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedGuest(t *testing.T, db *gorm.DB, name string, number string) models.Guest {
	t.Helper()
	guest := models.Guest{Name: name, Number: number}
	require.NoError(t, db.Create(&guest).Error)
	return guest
}
