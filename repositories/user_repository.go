package repositories

import (
	"gift-registry/apperrors"
	"gift-registry/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	FindAll() (*[]models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindWithGuests(email string) (*models.User, error)
	Create(newUser models.User) (*models.User, error)
	Update(email string, updates map[string]interface{}) (*models.User, error)
	Delete(email string) (*models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll() (*[]models.User, error) {
	var users []models.User
	result := r.db.Order("created_at DESC").Find(&users)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &users, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindWithGuests(email string) (*models.User, error) {
	var user models.User
	result := r.db.Preload("Guests", func(db *gorm.DB) *gorm.DB {
		return db.Order("guests.created_at DESC")
	}).First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &user, nil
}

func (r *UserRepository) Create(newUser models.User) (*models.User, error) {
	result := r.db.Create(&newUser)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	return &newUser, nil
}

func (r *UserRepository) Update(email string, updates map[string]interface{}) (*models.User, error) {
	result := r.db.Model(&models.User{}).
		Where("email = ?", email).
		Updates(updates)
	if result.Error != nil {
		return nil, apperrors.FromDB(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	var updatedUser models.User
	if err := r.db.First(&updatedUser, "email = ?", email).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &updatedUser, nil
}

// Delete removes the user and, via the schema cascade, all of their guests.
// Items those guests had claimed are unclaimed in the same transaction so the
// claimed flag never outlives its guest reference.
func (r *UserRepository) Delete(email string) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "email = ?", email).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Item{}).
			Where("EXISTS (SELECT 1 FROM guests WHERE guests.name = items.guest_name AND guests.number = items.guest_number AND guests.user_email = ?)", email).
			Updates(map[string]interface{}{"claimed": false, "guest_name": nil, "guest_number": nil}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "email = ?", email).Error
	})
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return &user, nil
}
