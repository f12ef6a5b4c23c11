package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment represents a comment on a post. Comments are immutable after
// creation; there is no edit or delete path.
type Comment struct {
	Key     string `gorm:"primaryKey;size:36" json:"key"`
	Author  Author `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	PostKey string `gorm:"size:36;not null;index" json:"post_key"`
	Post    Post   `gorm:"foreignKey:PostKey;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	Text    string `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate issues the store key.
func (c *Comment) BeforeCreate(*gorm.DB) error {
	if c.Key == "" {
		c.Key = uuid.NewString()
	}
	return nil
}
