package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: speed up the published-only public blog listing.
	`CREATE INDEX IF NOT EXISTS idx_blog_posts_published ON blog_posts(published)`,

	// Migration 2: speed up category filtering on the gallery and
	// downloads pages.
	`CREATE INDEX IF NOT EXISTS idx_gallery_images_category ON gallery_images(category)`,
	`CREATE INDEX IF NOT EXISTS idx_downloads_category ON downloads(category)`,

	// Migration 3: the admin dashboard counts unread messages on every load.
	`CREATE INDEX IF NOT EXISTS idx_contact_messages_read ON contact_messages(read)`,
}

// Migrate ensures the schema exists and runs the migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
