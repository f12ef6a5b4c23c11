package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like represents a user's like on a post.
// The combination of author identity and post key must be unique; the
// composite index lives in the database package because the identity
// column comes from the embedded Author.
type Like struct {
	Key     string `gorm:"primaryKey;size:36" json:"key"`
	Author  Author `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	PostKey string `gorm:"size:36;not null;index" json:"post_key"`
	Post    Post   `gorm:"foreignKey:PostKey;constraint:OnDelete:CASCADE" json:"post,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate issues the store key.
func (l *Like) BeforeCreate(*gorm.DB) error {
	if l.Key == "" {
		l.Key = uuid.NewString()
	}
	return nil
}
