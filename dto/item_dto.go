package dto

// CreateItemInput has no claimed field: the flag is derived from the guest
// reference, so a caller cannot create an item whose claim state and guest
// reference disagree.
type CreateItemInput struct {
	ItemName    string  `json:"item_name" binding:"required"`
	ItemPhoto   *string `json:"item_photo"`
	ItemLink    *string `json:"item_link"`
	ItemCount   *int    `json:"item_count"`
	GuestName   *string `json:"guest_name"`
	GuestNumber *string `json:"guest_number"`
}

// UpdateItemInput deliberately excludes claimed and the guest reference;
// claim state changes go through Claim/Unclaim only.
type UpdateItemInput struct {
	ItemPhoto *string `json:"item_photo"`
	ItemLink  *string `json:"item_link"`
	ItemCount *int    `json:"item_count"`
}

type ClaimItemInput struct {
	GuestName   string `json:"guest_name"`
	GuestNumber string `json:"guest_number"`
}
