package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a blog post. The Key is an opaque, URL-safe token
// issued by the store layer at insert time and is the sole address of
// the record.
type Post struct {
	Key     string `gorm:"primaryKey;size:36" json:"key"`
	Author  Author `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate issues the store key.
func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.Key == "" {
		p.Key = uuid.NewString()
	}
	return nil
}
