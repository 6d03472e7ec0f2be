package dto

import "gift-registry/models"

type CreateGuestInput struct {
	Name        string  `json:"name" binding:"required"`
	Number      string  `json:"number" binding:"required"`
	UserEmail   *string `json:"user_email"`
	ClaimedItem *string `json:"claimed_item"`
}

// 複合キー(name, number)は作成後に変更できないため、更新対象に含めない
type UpdateGuestInput struct {
	UserEmail   *string `json:"user_email"`
	ClaimedItem *string `json:"claimed_item"`
}

type ItemSummary struct {
	ItemName  string  `json:"item_name"`
	ItemPhoto *string `json:"item_photo"`
	ItemLink  *string `json:"item_link"`
	Claimed   bool    `json:"claimed"`
	ItemCount int     `json:"item_count"`
}

type GuestWithItemsResponse struct {
	models.Guest
	Items []ItemSummary `json:"items"`
}
