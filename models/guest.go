package models

import "time"

// Guest is identified by its (name, number) pair. The pair is immutable once
// created; items reference it as a composite foreign key.
type Guest struct {
	Name        string    `gorm:"primaryKey;size:255" json:"name"`
	Number      string    `gorm:"primaryKey;size:50" json:"number"`
	UserEmail   *string   `gorm:"size:255;index:idx_guests_user_email" json:"user_email"`
	ClaimedItem *string   `gorm:"size:255" json:"claimed_item"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Items       []Item    `gorm:"foreignKey:GuestName,GuestNumber;references:Name,Number;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
