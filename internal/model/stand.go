package model

import (
	"errors"
	"strconv"
	"time"
)

// Stand represents a parcel of land offered for sale.
type Stand struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Size        string    `json:"size"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Features    []string  `json:"features"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Stand statuses.
const (
	StandAvailable = "available"
	StandReserved  = "reserved"
	StandSold      = "sold"
)

// ValidStandStatus reports whether status is one of the known sale statuses.
func ValidStandStatus(status string) bool {
	return status == StandAvailable || status == StandReserved || status == StandSold
}

// StandInput is the insert shape for stands. Status defaults to
// "available" when empty.
type StandInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Size        string   `json:"size"`
	Location    string   `json:"location"`
	Status      string   `json:"status"`
	Features    []string `json:"features"`
	ImageURL    string   `json:"imageUrl"`
}

// Validate checks the insert shape for required fields and value constraints.
func (in *StandInput) Validate() error {
	if in.Title == "" {
		return errors.New("title required")
	}
	if in.Description == "" {
		return errors.New("description required")
	}
	if in.Price == "" {
		return errors.New("price required")
	}
	if _, err := strconv.ParseFloat(in.Price, 64); err != nil {
		return errors.New("price must be a decimal number")
	}
	if in.Size == "" {
		return errors.New("size required")
	}
	if in.Location == "" {
		return errors.New("location required")
	}
	if in.Status != "" && !ValidStandStatus(in.Status) {
		return errors.New("status must be available, reserved or sold")
	}
	return nil
}

// StandPatch is the partial-update shape for stands. Nil fields are
// left untouched by the merge.
type StandPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *string   `json:"price"`
	Size        *string   `json:"size"`
	Location    *string   `json:"location"`
	Status      *string   `json:"status"`
	Features    *[]string `json:"features"`
	ImageURL    *string   `json:"imageUrl"`
}

// Validate checks every supplied field against the same constraints as
// the insert shape.
func (p *StandPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return errors.New("title cannot be empty")
	}
	if p.Description != nil && *p.Description == "" {
		return errors.New("description cannot be empty")
	}
	if p.Price != nil {
		if _, err := strconv.ParseFloat(*p.Price, 64); err != nil {
			return errors.New("price must be a decimal number")
		}
	}
	if p.Size != nil && *p.Size == "" {
		return errors.New("size cannot be empty")
	}
	if p.Location != nil && *p.Location == "" {
		return errors.New("location cannot be empty")
	}
	if p.Status != nil && !ValidStandStatus(*p.Status) {
		return errors.New("status must be available, reserved or sold")
	}
	return nil
}
