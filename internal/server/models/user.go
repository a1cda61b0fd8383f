// Package models holds the persisted record shapes and the helpers that
// coerce raw form input into them.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// User is a registered account. The JSON field names are the on-disk format.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// HasEmail reports whether u's email equals email, ignoring case.
func (u User) HasEmail(email string) bool {
	return strings.EqualFold(u.Email, strings.TrimSpace(email))
}

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}
