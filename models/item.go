package models

import "time"

// Item claim state is the Claimed flag paired with both guest reference
// columns: claimed items carry a resolvable (GuestName, GuestNumber), unclaimed
// items carry neither. Only the claim/unclaim paths write these three columns.
type Item struct {
	ItemName    string    `gorm:"primaryKey;size:255" json:"item_name"`
	ItemPhoto   *string   `json:"item_photo"`
	ItemLink    *string   `json:"item_link"`
	Claimed     bool      `gorm:"not null;default:false" json:"claimed"`
	ItemCount   int       `gorm:"not null;default:0" json:"item_count"`
	GuestName   *string   `gorm:"size:255;index:idx_items_guest" json:"guest_name"`
	GuestNumber *string   `gorm:"size:50;index:idx_items_guest" json:"guest_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
