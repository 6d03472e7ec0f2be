package repositories

import (
	"testing"

	"gift-registry/apperrors"
	"gift-registry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuestRepository(db)
	user := seedUser(t, db, "host@example.com")

	created, err := repo.Create(models.Guest{
		Name:      "Alice",
		Number:    "+1-555-0100",
		UserEmail: &user.Email,
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.FindByKey("Alice", "+1-555-0100")
	require.NoError(t, err)
	require.NotNil(t, found.UserEmail)
	assert.Equal(t, "host@example.com", *found.UserEmail)
}

func TestGuestRepository_CreateWithoutUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuestRepository(db)

	created, err := repo.Create(models.Guest{Name: "Alice", Number: "+1-555-0100"})
	require.NoError(t, err)
	assert.Nil(t, created.UserEmail)
}

func TestGuestRepository_CreateDuplicateKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuestRepository(db)
	seedGuest(t, db, "Alice", "+1-555-0100", nil)

	_, err := repo.Create(models.Guest{Name: "Alice", Number: "+1-555-0100"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGuestRepository_SameNameDifferentNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuestRepository(db)
	seedGuest(t, db, "Alice", "+1-555-0100", nil)

	// 複合キーなので name だけの重複は許される
	_, err := repo.Create(models.Guest{Name: "Alice", Number: "+1-555-0199"})
	assert.NoError(t, err)
}

func TestGuestRepository_CreateDanglingUserEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuestRepository(db)

	_, err := repo.Create(models.Guest{
		Name:      "Alice",
		Number:    "+1-555-0100",
		UserEmail: strPtr("nobody@example.com"),
	})
	assert.ErrorIs(t, err, apperrors.ErrForeignKey)

	// 失敗時は行が残らない
	_, err = repo.FindByKey("Alice", "+1-555-0100")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGuestRepository_UpdatePartialMerge(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuestRepository(db)
	user := seedUser(t, db, "host@example.com")
	seedGuest(t, db, "Alice", "+1-555-0100", &user.Email)

	updated, err := repo.Update("Alice", "+1-555-0100", map[string]interface{}{"claimed_item": "Blender"})
	require.NoError(t, err)
	require.NotNil(t, updated.ClaimedItem)
	assert.Equal(t, "Blender", *updated.ClaimedItem)
	require.NotNil(t, updated.UserEmail)
	assert.Equal(t, "host@example.com", *updated.UserEmail)
}

func TestGuestRepository_UpdateDanglingUserEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuestRepository(db)
	seedGuest(t, db, "Alice", "+1-555-0100", nil)

	_, err := repo.Update("Alice", "+1-555-0100", map[string]interface{}{"user_email": "nobody@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrForeignKey)
}

func TestGuestRepository_DeleteReleasesClaimedItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuestRepository(db)
	itemRepo := NewItemRepository(db)

	seedGuest(t, db, "Alice", "+1-555-0100", nil)
	seedItem(t, db, "Blender")
	_, err := itemRepo.Claim("Blender", "Alice", "+1-555-0100")
	require.NoError(t, err)

	deleted, err := repo.Delete("Alice", "+1-555-0100")
	require.NoError(t, err)
	assert.Equal(t, "Alice", deleted.Name)

	// アイテム自体は残り、参照と claimed がリセットされる
	item, err := itemRepo.FindByName("Blender")
	require.NoError(t, err)
	assert.False(t, item.Claimed)
	assert.Nil(t, item.GuestName)
	assert.Nil(t, item.GuestNumber)
}

func TestGuestRepository_DeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuestRepository(db)

	_, err := repo.Delete("Nobody", "+1-555-0000")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGuestRepository_FindByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuestRepository(db)
	user := seedUser(t, db, "host@example.com")
	seedGuest(t, db, "Alice", "+1-555-0100", &user.Email)
	seedGuest(t, db, "Bob", "+1-555-0101", nil)

	guests, err := repo.FindByUser("host@example.com")
	require.NoError(t, err)
	require.Len(t, *guests, 1)
	assert.Equal(t, "Alice", (*guests)[0].Name)
}

func TestGuestRepository_FindWithItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGuestRepository(db)
	itemRepo := NewItemRepository(db)

	seedGuest(t, db, "Alice", "+1-555-0100", nil)
	seedItem(t, db, "Blender")
	seedItem(t, db, "Toaster")
	_, err := itemRepo.Claim("Blender", "Alice", "+1-555-0100")
	require.NoError(t, err)

	guest, err := repo.FindWithItems("Alice", "+1-555-0100")
	require.NoError(t, err)
	require.Len(t, guest.Items, 1)
	assert.Equal(t, "Blender", guest.Items[0].ItemName)
}
