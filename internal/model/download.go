package model

import (
	"errors"
	"time"
)

// Download represents a downloadable file such as a brochure or house plan.
type Download struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FileURL     string    `json:"fileUrl"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DownloadInput is the insert shape for downloads.
type DownloadInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	Category    string `json:"category"`
}

// Validate checks the insert shape for required fields.
func (in *DownloadInput) Validate() error {
	if in.Title == "" {
		return errors.New("title required")
	}
	if in.FileURL == "" {
		return errors.New("fileUrl required")
	}
	if in.Category == "" {
		return errors.New("category required")
	}
	return nil
}
