package services

import (
	"gift-registry/apperrors"
	"gift-registry/dto"
	"gift-registry/models"
	"gift-registry/repositories"
)

type IUserService interface {
	FindAll() (*[]models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindWithGuests(email string) (*dto.UserWithGuestsResponse, error)
	Create(createUserInput dto.CreateUserInput) (*models.User, error)
	Update(email string, updateUserInput dto.UpdateUserInput) (*models.User, error)
	Delete(email string) (*models.User, error)
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) FindAll() (*[]models.User, error) {
	return s.repository.FindAll()
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	return s.repository.FindByEmail(email)
}

func (s *UserService) FindWithGuests(email string) (*dto.UserWithGuestsResponse, error) {
	user, err := s.repository.FindWithGuests(email)
	if err != nil {
		return nil, err
	}

	guests := make([]dto.GuestSummary, 0, len(user.Guests))
	for _, guest := range user.Guests {
		guests = append(guests, dto.GuestSummary{
			Name:        guest.Name,
			Number:      guest.Number,
			ClaimedItem: guest.ClaimedItem,
		})
	}
	return &dto.UserWithGuestsResponse{User: *user, Guests: guests}, nil
}

func (s *UserService) Create(createUserInput dto.CreateUserInput) (*models.User, error) {
	newUser := models.User{
		Email: createUserInput.Email,
		Name:  createUserInput.Name,
		Role:  createUserInput.Role,
		Photo: createUserInput.Photo,
	}
	return s.repository.Create(newUser)
}

// Update applies only the keys present in the input; omitted fields keep
// their stored values, an explicit empty string clears the field.
func (s *UserService) Update(email string, updateUserInput dto.UpdateUserInput) (*models.User, error) {
	updates := map[string]interface{}{}
	if updateUserInput.Name != nil {
		if *updateUserInput.Name == "" {
			return nil, apperrors.ErrInvalidInput
		}
		updates["name"] = *updateUserInput.Name
	}
	if updateUserInput.Role != nil {
		updates["role"] = *updateUserInput.Role
	}
	if updateUserInput.Photo != nil {
		updates["photo"] = *updateUserInput.Photo
	}
	if len(updates) == 0 {
		return s.repository.FindByEmail(email)
	}
	return s.repository.Update(email, updates)
}

func (s *UserService) Delete(email string) (*models.User, error) {
	return s.repository.Delete(email)
}
