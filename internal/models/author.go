// Package models contains data structures for the application's domain models.
package models

// Author is the identity snapshot embedded by value into every Post,
// Comment, and Like. It is never persisted as a top-level record: the
// identity and email are frozen at creation time, so a later change to
// an account's email is not reflected in past records. This
// denormalization is intentional.
type Author struct {
	Identity string `gorm:"size:36;index" json:"identity"`
	Email    string `json:"email"`
}
