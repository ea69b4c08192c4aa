package store

import (
	"database/sql"
	"encoding/json"
)

// SQLite is the durable Store backend over a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite returns a Store backed by the given database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

var _ Store = (*SQLite)(nil)

// marshalFeatures encodes a feature list for the TEXT column. A nil
// list is stored as an empty JSON array so scans never see NULL.
func marshalFeatures(features []string) (string, error) {
	if features == nil {
		features = []string{}
	}
	data, err := json.Marshal(features)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// unmarshalFeatures decodes the TEXT column back into a feature list.
func unmarshalFeatures(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var features []string
	if err := json.Unmarshal([]byte(raw), &features); err != nil {
		return nil, err
	}
	return features, nil
}
