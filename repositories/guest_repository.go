package repositories

import (
	"gift-registry/apperrors"
	"gift-registry/models"

	"gorm.io/gorm"
)

type IGuestRepository interface {
	FindAll() (*[]models.Guest, error)
	FindByKey(name string, number string) (*models.Guest, error)
	FindByUser(userEmail string) (*[]models.Guest, error)
	FindWithItems(name string, number string) (*models.Guest, error)
	Create(newGuest models.Guest) (*models.Guest, error)
	Update(name string, number string, updates map[string]interface{}) (*models.Guest, error)
	Delete(name string, number string) (*models.Guest, error)
}

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) IGuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) FindAll() (*[]models.Guest, error) {
	var guests []models.Guest
	result := r.db.Order("created_at DESC").Find(&guests)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &guests, nil
}

func (r *GuestRepository) FindByKey(name string, number string) (*models.Guest, error) {
	var guest models.Guest
	result := r.db.First(&guest, "name = ? AND number = ?", name, number)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &guest, nil
}

func (r *GuestRepository) FindByUser(userEmail string) (*[]models.Guest, error) {
	var guests []models.Guest
	result := r.db.Where("user_email = ?", userEmail).Order("created_at DESC").Find(&guests)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &guests, nil
}

func (r *GuestRepository) FindWithItems(name string, number string) (*models.Guest, error) {
	var guest models.Guest
	result := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("items.created_at DESC")
	}).First(&guest, "name = ? AND number = ?", name, number)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &guest, nil
}

func (r *GuestRepository) Create(newGuest models.Guest) (*models.Guest, error) {
	result := r.db.Create(&newGuest)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &newGuest, nil
}

func (r *GuestRepository) Update(name string, number string, updates map[string]interface{}) (*models.Guest, error) {
	result := r.db.Model(&models.Guest{}).
		Where("name = ? AND number = ?", name, number).
		Updates(updates)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	var updatedGuest models.Guest
	if err := r.db.First(&updatedGuest, "name = ? AND number = ?", name, number).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &updatedGuest, nil
}

// Delete releases any items the guest had claimed (claimed flag and both
// reference columns together) before removing the guest row, all in one
// transaction. The schema-level ON DELETE SET NULL remains as a backstop.
func (r *GuestRepository) Delete(name string, number string) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&guest, "name = ? AND number = ?", name, number).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Item{}).
			Where("guest_name = ? AND guest_number = ?", name, number).
			Updates(map[string]interface{}{"claimed": false, "guest_name": nil, "guest_number": nil}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Guest{}, "name = ? AND number = ?", name, number).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &guest, nil
}
