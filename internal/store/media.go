package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smkhize/erfsite/internal/model"
)

// CreateMedia stores an uploaded image and its thumbnail.
func (s *SQLite) CreateMedia(ctx context.Context, filename, mime string, data, thumb []byte) (*model.Media, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO media (filename, mime, data, thumb) VALUES (?, ?, ?, ?)`,
		filename, mime, data, thumb,
	)
	if err != nil {
		return nil, fmt.Errorf("creating media: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting media id: %w", err)
	}

	return s.GetMedia(ctx, id)
}

// GetMedia returns media metadata by ID, without the blob.
func (s *SQLite) GetMedia(ctx context.Context, id int64) (*model.Media, error) {
	m := &model.Media{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, filename, mime, created_at FROM media WHERE id = ?`, id,
	).Scan(&m.ID, &m.Filename, &m.MIME, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting media: %w", err)
	}
	return m, nil
}

// GetMediaData returns the stored blob and MIME type. When thumb is
// true the thumbnail blob is returned instead of the full image.
func (s *SQLite) GetMediaData(ctx context.Context, id int64, thumb bool) ([]byte, string, error) {
	column := "data"
	if thumb {
		column = "thumb"
	}

	var data []byte
	var mime string
	err := s.db.QueryRowContext(ctx,
		`SELECT `+column+`, mime FROM media WHERE id = ?`, id,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting media data: %w", err)
	}

	// Thumbnails are always re-encoded as JPEG.
	if thumb && data != nil {
		mime = "image/jpeg"
	}
	return data, mime, nil
}
