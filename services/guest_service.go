package services

import (
	"gift-registry/dto"
	"gift-registry/models"
	"gift-registry/repositories"
)

type IGuestService interface {
	FindAll() (*[]models.Guest, error)
	FindByKey(name string, number string) (*models.Guest, error)
	FindByUser(userEmail string) (*[]models.Guest, error)
	FindWithItems(name string, number string) (*dto.GuestWithItemsResponse, error)
	Create(createGuestInput dto.CreateGuestInput) (*models.Guest, error)
	Update(name string, number string, updateGuestInput dto.UpdateGuestInput) (*models.Guest, error)
	Delete(name string, number string) (*models.Guest, error)
}

type GuestService struct {
	repository repositories.IGuestRepository
}

func NewGuestService(repository repositories.IGuestRepository) IGuestService {
	return &GuestService{repository: repository}
}

func (s *GuestService) FindAll() (*[]models.Guest, error) {
	return s.repository.FindAll()
}

func (s *GuestService) FindByKey(name string, number string) (*models.Guest, error) {
	return s.repository.FindByKey(name, number)
}

func (s *GuestService) FindByUser(userEmail string) (*[]models.Guest, error) {
	return s.repository.FindByUser(userEmail)
}

func (s *GuestService) FindWithItems(name string, number string) (*dto.GuestWithItemsResponse, error) {
	guest, err := s.repository.FindWithItems(name, number)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ItemSummary, 0, len(guest.Items))
	for _, item := range guest.Items {
		items = append(items, dto.ItemSummary{
			ItemName:  item.ItemName,
			ItemPhoto: item.ItemPhoto,
			ItemLink:  item.ItemLink,
			Claimed:   item.Claimed,
			ItemCount: item.ItemCount,
		})
	}
	return &dto.GuestWithItemsResponse{Guest: *guest, Items: items}, nil
}

func (s *GuestService) Create(createGuestInput dto.CreateGuestInput) (*models.Guest, error) {
	newGuest := models.Guest{
		Name:        createGuestInput.Name,
		Number:      createGuestInput.Number,
		UserEmail:   createGuestInput.UserEmail,
		ClaimedItem: createGuestInput.ClaimedItem,
	}
	return s.repository.Create(newGuest)
}

func (s *GuestService) Update(name string, number string, updateGuestInput dto.UpdateGuestInput) (*models.Guest, error) {
	updates := map[string]interface{}{}
	if updateGuestInput.UserEmail != nil {
		// 空文字は所有ユーザーの解除として扱う
		if *updateGuestInput.UserEmail == "" {
			updates["user_email"] = nil
		} else {
			updates["user_email"] = *updateGuestInput.UserEmail
		}
	}
	if updateGuestInput.ClaimedItem != nil {
		updates["claimed_item"] = *updateGuestInput.ClaimedItem
	}
	if len(updates) == 0 {
		return s.repository.FindByKey(name, number)
	}
	return s.repository.Update(name, number, updates)
}

func (s *GuestService) Delete(name string, number string) (*models.Guest, error) {
	return s.repository.Delete(name, number)
}
