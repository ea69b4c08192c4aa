package model

import (
	"errors"
	"strings"
	"time"
)

// ContactMessage represents a contact-form submission. Read starts
// false and only ever transitions to true via the mark-read operation.
type ContactMessage struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageInput is the insert shape for contact messages. The
// read flag is not settable on creation.
type ContactMessageInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// Validate checks the insert shape for required fields.
func (in *ContactMessageInput) Validate() error {
	if in.FirstName == "" {
		return errors.New("firstName required")
	}
	if in.LastName == "" {
		return errors.New("lastName required")
	}
	if in.Email == "" {
		return errors.New("email required")
	}
	if !strings.Contains(in.Email, "@") {
		return errors.New("email is not valid")
	}
	if in.Message == "" {
		return errors.New("message required")
	}
	return nil
}
