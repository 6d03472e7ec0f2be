package services

import (
	"gift-registry/apperrors"
	"gift-registry/dto"
	"gift-registry/models"
	"gift-registry/repositories"
)

type IItemService interface {
	FindAll() (*[]models.Item, error)
	FindByName(itemName string) (*models.Item, error)
	FindByGuest(guestName string, guestNumber string) (*[]models.Item, error)
	FindClaimed() (*[]models.Item, error)
	FindUnclaimed() (*[]models.Item, error)
	Create(createItemInput dto.CreateItemInput) (*models.Item, error)
	Update(itemName string, updateItemInput dto.UpdateItemInput) (*models.Item, error)
	Claim(itemName string, guestName string, guestNumber string) (*models.Item, error)
	Unclaim(itemName string) (*models.Item, error)
	Delete(itemName string) (*models.Item, error)
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindAll() (*[]models.Item, error) {
	return s.repository.FindAll()
}

func (s *ItemService) FindByName(itemName string) (*models.Item, error) {
	return s.repository.FindByName(itemName)
}

func (s *ItemService) FindByGuest(guestName string, guestNumber string) (*[]models.Item, error) {
	return s.repository.FindByGuest(guestName, guestNumber)
}

func (s *ItemService) FindClaimed() (*[]models.Item, error) {
	return s.repository.FindClaimed()
}

func (s *ItemService) FindUnclaimed() (*[]models.Item, error) {
	return s.repository.FindUnclaimed()
}

// Create accepts an optional guest reference; supplying it creates the item
// pre-claimed. The reference must be complete, a lone name or number is
// rejected before it reaches the database.
func (s *ItemService) Create(createItemInput dto.CreateItemInput) (*models.Item, error) {
	hasName := createItemInput.GuestName != nil && *createItemInput.GuestName != ""
	hasNumber := createItemInput.GuestNumber != nil && *createItemInput.GuestNumber != ""
	if hasName != hasNumber {
		return nil, apperrors.ErrInvalidInput
	}

	newItem := models.Item{
		ItemName:  createItemInput.ItemName,
		ItemPhoto: createItemInput.ItemPhoto,
		ItemLink:  createItemInput.ItemLink,
		Claimed:   hasName,
	}
	if createItemInput.ItemCount != nil {
		newItem.ItemCount = *createItemInput.ItemCount
	}
	if hasName {
		newItem.GuestName = createItemInput.GuestName
		newItem.GuestNumber = createItemInput.GuestNumber
	}
	return s.repository.Create(newItem)
}

func (s *ItemService) Update(itemName string, updateItemInput dto.UpdateItemInput) (*models.Item, error) {
	updates := map[string]interface{}{}
	if updateItemInput.ItemPhoto != nil {
		updates["item_photo"] = *updateItemInput.ItemPhoto
	}
	if updateItemInput.ItemLink != nil {
		updates["item_link"] = *updateItemInput.ItemLink
	}
	if updateItemInput.ItemCount != nil {
		updates["item_count"] = *updateItemInput.ItemCount
	}
	if len(updates) == 0 {
		return s.repository.FindByName(itemName)
	}
	return s.repository.Update(itemName, updates)
}

func (s *ItemService) Claim(itemName string, guestName string, guestNumber string) (*models.Item, error) {
	if guestName == "" || guestNumber == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repository.Claim(itemName, guestName, guestNumber)
}

func (s *ItemService) Unclaim(itemName string) (*models.Item, error) {
	return s.repository.Unclaim(itemName)
}

func (s *ItemService) Delete(itemName string) (*models.Item, error) {
	return s.repository.Delete(itemName)
}
