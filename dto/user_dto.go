package dto

import "gift-registry/models"

type CreateUserInput struct {
	Email string  `json:"email" binding:"required,email"`
	Name  string  `json:"name" binding:"required"`
	Role  *string `json:"role"`
	Photo *string `json:"photo"`
}

// UpdateUserInput はポインタのフィールドのみ更新する（nil = 変更なし）
type UpdateUserInput struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Photo *string `json:"photo"`
}

type GuestSummary struct {
	Name        string  `json:"name"`
	Number      string  `json:"number"`
	ClaimedItem *string `json:"claimed_item"`
}

type UserWithGuestsResponse struct {
	models.User
	Guests []GuestSummary `json:"guests"`
}
