package services

import (
	"testing"

	"gift-registry/apperrors"
	"gift-registry/dto"
	"gift-registry/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestService_CreateWithDanglingUser(t *testing.T) {
	db := setupTestDB(t)
	service := NewGuestService(repositories.NewGuestRepository(db))

	_, err := service.Create(dto.CreateGuestInput{
		Name:      "Alice",
		Number:    "+1-555-0100",
		UserEmail: strPtr("nobody@example.com"),
	})
	assert.ErrorIs(t, err, apperrors.ErrForeignKey)
}

func TestGuestService_UpdateClearsUserEmailWithEmptyString(t *testing.T) {
	db := setupTestDB(t)
	service := NewGuestService(repositories.NewGuestRepository(db))
	user := seedUser(t, db, "host@example.com")

	_, err := service.Create(dto.CreateGuestInput{
		Name:      "Alice",
		Number:    "+1-555-0100",
		UserEmail: &user.Email,
	})
	require.NoError(t, err)

	updated, err := service.Update("Alice", "+1-555-0100", dto.UpdateGuestInput{UserEmail: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.UserEmail)
}

func TestGuestService_FindWithItemsEmptyListNotNil(t *testing.T) {
	db := setupTestDB(t)
	service := NewGuestService(repositories.NewGuestRepository(db))

	_, err := service.Create(dto.CreateGuestInput{Name: "Alice", Number: "+1-555-0100"})
	require.NoError(t, err)

	result, err := service.FindWithItems("Alice", "+1-555-0100")
	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestGuestService_FindWithItemsNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewGuestService(repositories.NewGuestRepository(db))

	_, err := service.FindWithItems("Nobody", "+1-555-0000")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGuestService_FindWithItemsProjection(t *testing.T) {
	db := setupTestDB(t)
	service := NewGuestService(repositories.NewGuestRepository(db))
	itemService := NewItemService(repositories.NewItemRepository(db))

	_, err := service.Create(dto.CreateGuestInput{Name: "Alice", Number: "+1-555-0100"})
	require.NoError(t, err)
	_, err = itemService.Create(dto.CreateItemInput{
		ItemName: "Blender",
		ItemLink: strPtr("https://example.com/blender"),
	})
	require.NoError(t, err)
	_, err = itemService.Claim("Blender", "Alice", "+1-555-0100")
	require.NoError(t, err)

	result, err := service.FindWithItems("Alice", "+1-555-0100")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Blender", result.Items[0].ItemName)
	assert.True(t, result.Items[0].Claimed)
	require.NotNil(t, result.Items[0].ItemLink)
	assert.Equal(t, "https://example.com/blender", *result.Items[0].ItemLink)
}
