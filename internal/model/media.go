package model

import (
	"fmt"
	"time"
)

// Media represents an uploaded image stored in the database. The blob
// itself is served at URL and never included in JSON responses.
type Media struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	MIME      string    `json:"mime"`
	CreatedAt time.Time `json:"createdAt"`
}

// URL returns the public path the full-size image is served at.
func (m *Media) URL() string {
	return fmt.Sprintf("/media/%d", m.ID)
}

// ThumbURL returns the public path the thumbnail is served at.
func (m *Media) ThumbURL() string {
	return fmt.Sprintf("/media/%d/thumb", m.ID)
}
