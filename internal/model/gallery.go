package model

import (
	"errors"
	"time"
)

// GalleryImage represents a photo in the site gallery. Category is free
// text used for grouping on the gallery page.
type GalleryImage struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GalleryImageInput is the insert shape for gallery images.
type GalleryImageInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

// Validate checks the insert shape for required fields.
func (in *GalleryImageInput) Validate() error {
	if in.Title == "" {
		return errors.New("title required")
	}
	if in.Category == "" {
		return errors.New("category required")
	}
	if in.ImageURL == "" {
		return errors.New("imageUrl required")
	}
	return nil
}
