package model

import (
	"errors"
	"time"
)

// BlogPost represents a news article. Only published posts are visible
// on public routes.
type BlogPost struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlogPostInput is the insert shape for blog posts.
type BlogPostInput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Category  string `json:"category"`
	ImageURL  string `json:"imageUrl"`
	Published bool   `json:"published"`
}

// Validate checks the insert shape for required fields.
func (in *BlogPostInput) Validate() error {
	if in.Title == "" {
		return errors.New("title required")
	}
	if in.Content == "" {
		return errors.New("content required")
	}
	if in.Excerpt == "" {
		return errors.New("excerpt required")
	}
	if in.Category == "" {
		return errors.New("category required")
	}
	return nil
}

// BlogPostPatch is the partial-update shape for blog posts.
type BlogPostPatch struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	Category  *string `json:"category"`
	ImageURL  *string `json:"imageUrl"`
	Published *bool   `json:"published"`
}

// Validate checks every supplied field.
func (p *BlogPostPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return errors.New("title cannot be empty")
	}
	if p.Content != nil && *p.Content == "" {
		return errors.New("content cannot be empty")
	}
	if p.Excerpt != nil && *p.Excerpt == "" {
		return errors.New("excerpt cannot be empty")
	}
	if p.Category != nil && *p.Category == "" {
		return errors.New("category cannot be empty")
	}
	return nil
}
