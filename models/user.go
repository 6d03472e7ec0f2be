package models

import "time"

type User struct {
	Email     string    `gorm:"primaryKey;size:255" json:"email"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Role      *string   `gorm:"size:100" json:"role"`
	Photo     *string   `json:"photo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Guests    []Guest   `gorm:"foreignKey:UserEmail;references:Email;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
