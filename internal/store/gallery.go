package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smkhize/erfsite/internal/model"
)

// CreateGalleryImage creates a new gallery image.
func (s *SQLite) CreateGalleryImage(ctx context.Context, in model.GalleryImageInput) (*model.GalleryImage, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO gallery_images (title, description, category, image_url)
		 VALUES (?, ?, ?, ?)`,
		in.Title, nullString(in.Description), in.Category, in.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("creating gallery image: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting gallery image id: %w", err)
	}

	return s.getGalleryImage(ctx, id)
}

func (s *SQLite) getGalleryImage(ctx context.Context, id int64) (*model.GalleryImage, error) {
	img := &model.GalleryImage{}
	var description sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, category, image_url, created_at
		 FROM gallery_images WHERE id = ?`, id,
	).Scan(&img.ID, &img.Title, &description, &img.Category, &img.ImageURL, &img.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting gallery image: %w", err)
	}
	img.Description = description.String
	return img, nil
}

// ListGalleryImages returns all gallery images, optionally filtered by
// category. The filtered listing keeps the same relative order as the
// unfiltered one.
func (s *SQLite) ListGalleryImages(ctx context.Context, category string) ([]model.GalleryImage, error) {
	var rows *sql.Rows
	var err error

	if category != "" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, title, description, category, image_url, created_at
			 FROM gallery_images WHERE category = ? ORDER BY id`, category,
		)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, title, description, category, image_url, created_at
			 FROM gallery_images ORDER BY id`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing gallery images: %w", err)
	}
	defer rows.Close()

	var images []model.GalleryImage
	for rows.Next() {
		var img model.GalleryImage
		var description sql.NullString
		if err := rows.Scan(&img.ID, &img.Title, &description, &img.Category, &img.ImageURL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning gallery image: %w", err)
		}
		img.Description = description.String
		images = append(images, img)
	}
	return images, rows.Err()
}

// DeleteGalleryImage removes a gallery image. Returns false if the id
// was unknown.
func (s *SQLite) DeleteGalleryImage(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting gallery image: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting gallery image: %w", err)
	}
	return affected > 0, nil
}
