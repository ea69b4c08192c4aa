package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smkhize/erfsite/internal/model"
)

// CreateStand creates a new stand. An empty status defaults to "available".
func (s *SQLite) CreateStand(ctx context.Context, in model.StandInput) (*model.Stand, error) {
	status := in.Status
	if status == "" {
		status = model.StandAvailable
	}

	features, err := marshalFeatures(in.Features)
	if err != nil {
		return nil, fmt.Errorf("encoding features: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO stands (title, description, price, size, location, status, features, image_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Title, in.Description, in.Price, in.Size, in.Location, status, features, nullString(in.ImageURL),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stand: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting stand id: %w", err)
	}

	return s.GetStand(ctx, id)
}

// GetStand returns a stand by ID.
func (s *SQLite) GetStand(ctx context.Context, id int64) (*model.Stand, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, price, size, location, status, features, image_url, created_at
		 FROM stands WHERE id = ?`, id,
	)
	stand, err := scanStand(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting stand: %w", err)
	}
	return stand, nil
}

// ListStands returns all stands, optionally filtered by status.
func (s *SQLite) ListStands(ctx context.Context, status string) ([]model.Stand, error) {
	var rows *sql.Rows
	var err error

	if status != "" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, title, description, price, size, location, status, features, image_url, created_at
			 FROM stands WHERE status = ? ORDER BY id`, status,
		)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, title, description, price, size, location, status, features, image_url, created_at
			 FROM stands ORDER BY id`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing stands: %w", err)
	}
	defer rows.Close()

	var stands []model.Stand
	for rows.Next() {
		stand, err := scanStand(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stand: %w", err)
		}
		stands = append(stands, *stand)
	}
	return stands, rows.Err()
}

// UpdateStand merges the supplied fields onto an existing stand.
// Returns (nil, nil) if the id is unknown. Never touches the id or
// creation timestamp.
func (s *SQLite) UpdateStand(ctx context.Context, id int64, patch model.StandPatch) (*model.Stand, error) {
	stand, err := s.GetStand(ctx, id)
	if err != nil || stand == nil {
		return nil, err
	}

	applyString(&stand.Title, patch.Title)
	applyString(&stand.Description, patch.Description)
	applyString(&stand.Price, patch.Price)
	applyString(&stand.Size, patch.Size)
	applyString(&stand.Location, patch.Location)
	applyString(&stand.Status, patch.Status)
	applyString(&stand.ImageURL, patch.ImageURL)
	if patch.Features != nil {
		stand.Features = *patch.Features
	}

	features, err := marshalFeatures(stand.Features)
	if err != nil {
		return nil, fmt.Errorf("encoding features: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE stands SET title = ?, description = ?, price = ?, size = ?, location = ?,
		        status = ?, features = ?, image_url = ?
		 WHERE id = ?`,
		stand.Title, stand.Description, stand.Price, stand.Size, stand.Location,
		stand.Status, features, nullString(stand.ImageURL), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating stand: %w", err)
	}

	return s.GetStand(ctx, id)
}

// DeleteStand removes a stand. Returns false if the id was unknown.
func (s *SQLite) DeleteStand(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM stands WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting stand: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting stand: %w", err)
	}
	return affected > 0, nil
}

// scanStand reads one stand row from either a *sql.Row or *sql.Rows.
func scanStand(row interface{ Scan(...any) error }) (*model.Stand, error) {
	stand := &model.Stand{}
	var features string
	var imageURL sql.NullString
	err := row.Scan(&stand.ID, &stand.Title, &stand.Description, &stand.Price, &stand.Size,
		&stand.Location, &stand.Status, &features, &imageURL, &stand.CreatedAt)
	if err != nil {
		return nil, err
	}
	stand.ImageURL = imageURL.String
	stand.Features, err = unmarshalFeatures(features)
	if err != nil {
		return nil, fmt.Errorf("decoding features: %w", err)
	}
	return stand, nil
}

// nullString maps "" to NULL for optional TEXT columns.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// applyString overwrites dst when the patch field was supplied.
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
