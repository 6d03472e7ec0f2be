package repositories

import (
	"gift-registry/apperrors"
	"gift-registry/models"

	"gorm.io/gorm"
)

type IItemRepository interface {
	FindAll() (*[]models.Item, error)
	FindByName(itemName string) (*models.Item, error)
	FindByGuest(guestName string, guestNumber string) (*[]models.Item, error)
	FindClaimed() (*[]models.Item, error)
	FindUnclaimed() (*[]models.Item, error)
	Create(newItem models.Item) (*models.Item, error)
	Update(itemName string, updates map[string]interface{}) (*models.Item, error)
	Claim(itemName string, guestName string, guestNumber string) (*models.Item, error)
	Unclaim(itemName string) (*models.Item, error)
	Delete(itemName string) (*models.Item, error)
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindAll() (*[]models.Item, error) {
	var items []models.Item
	result := r.db.Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &items, nil
}

func (r *ItemRepository) FindByName(itemName string) (*models.Item, error) {
	var item models.Item
	result := r.db.First(&item, "item_name = ?", itemName)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &item, nil
}

func (r *ItemRepository) FindByGuest(guestName string, guestNumber string) (*[]models.Item, error) {
	var items []models.Item
	result := r.db.Where("guest_name = ? AND guest_number = ?", guestName, guestNumber).
		Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &items, nil
}

func (r *ItemRepository) FindClaimed() (*[]models.Item, error) {
	var items []models.Item
	result := r.db.Where("claimed = ?", true).Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &items, nil
}

func (r *ItemRepository) FindUnclaimed() (*[]models.Item, error) {
	var items []models.Item
	result := r.db.Where("claimed = ?", false).Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &items, nil
}

func (r *ItemRepository) Create(newItem models.Item) (*models.Item, error) {
	result := r.db.Create(&newItem)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &newItem, nil
}

func (r *ItemRepository) Update(itemName string, updates map[string]interface{}) (*models.Item, error) {
	result := r.db.Model(&models.Item{}).
		Where("item_name = ?", itemName).
		Updates(updates)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	var updatedItem models.Item
	if err := r.db.First(&updatedItem, "item_name = ?", itemName).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &updatedItem, nil
}

// Claim sets the claimed flag and both guest reference columns in a single
// UPDATE; the composite foreign key rejects a guest that does not exist. An
// already-claimed item is silently reassigned to the new guest.
func (r *ItemRepository) Claim(itemName string, guestName string, guestNumber string) (*models.Item, error) {
	result := r.db.Model(&models.Item{}).
		Where("item_name = ?", itemName).
		Updates(map[string]interface{}{
			"claimed":      true,
			"guest_name":   guestName,
			"guest_number": guestNumber,
		})
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	var item models.Item
	if err := r.db.First(&item, "item_name = ?", itemName).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &item, nil
}

// Unclaim resets the claimed flag and nulls both reference columns in a
// single UPDATE. Unclaiming an already-unclaimed item is a no-op write.
func (r *ItemRepository) Unclaim(itemName string) (*models.Item, error) {
	result := r.db.Model(&models.Item{}).
		Where("item_name = ?", itemName).
		Updates(map[string]interface{}{
			"claimed":      false,
			"guest_name":   nil,
			"guest_number": nil,
		})
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	var item models.Item
	if err := r.db.First(&item, "item_name = ?", itemName).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &item, nil
}

func (r *ItemRepository) Delete(itemName string) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "item_name = ?", itemName).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	result := r.db.Delete(&models.Item{}, "item_name = ?", itemName)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &item, nil
}
