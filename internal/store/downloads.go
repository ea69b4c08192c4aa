package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smkhize/erfsite/internal/model"
)

// CreateDownload creates a new download entry.
func (s *SQLite) CreateDownload(ctx context.Context, in model.DownloadInput) (*model.Download, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO downloads (title, description, file_url, category)
		 VALUES (?, ?, ?, ?)`,
		in.Title, nullString(in.Description), in.FileURL, in.Category,
	)
	if err != nil {
		return nil, fmt.Errorf("creating download: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting download id: %w", err)
	}

	return s.getDownload(ctx, id)
}

func (s *SQLite) getDownload(ctx context.Context, id int64) (*model.Download, error) {
	d := &model.Download{}
	var description sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, file_url, category, created_at
		 FROM downloads WHERE id = ?`, id,
	).Scan(&d.ID, &d.Title, &description, &d.FileURL, &d.Category, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting download: %w", err)
	}
	d.Description = description.String
	return d, nil
}

// ListDownloads returns all downloads, optionally filtered by category.
func (s *SQLite) ListDownloads(ctx context.Context, category string) ([]model.Download, error) {
	var rows *sql.Rows
	var err error

	if category != "" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, title, description, file_url, category, created_at
			 FROM downloads WHERE category = ? ORDER BY id`, category,
		)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, title, description, file_url, category, created_at
			 FROM downloads ORDER BY id`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing downloads: %w", err)
	}
	defer rows.Close()

	var downloads []model.Download
	for rows.Next() {
		var d model.Download
		var description sql.NullString
		if err := rows.Scan(&d.ID, &d.Title, &description, &d.FileURL, &d.Category, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning download: %w", err)
		}
		d.Description = description.String
		downloads = append(downloads, d)
	}
	return downloads, rows.Err()
}

// DeleteDownload removes a download. Returns false if the id was unknown.
func (s *SQLite) DeleteDownload(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM downloads WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting download: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting download: %w", err)
	}
	return affected > 0, nil
}
