package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is an identity-provider-side record. It is not part of the
// blog domain: posts, comments, and likes carry an Author snapshot, not
// a foreign key to this table.
type Account struct {
	Key      string `gorm:"primaryKey;size:36" json:"key"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate issues the store key.
func (a *Account) BeforeCreate(*gorm.DB) error {
	if a.Key == "" {
		a.Key = uuid.NewString()
	}
	return nil
}

// Snapshot returns the Author value embedded into records created by
// this account.
func (a *Account) Snapshot() Author {
	return Author{Identity: a.Key, Email: a.Email}
}
