package db

import (
	"testing"
)

func TestOpenAndMigrate(t *testing.T) {
	sdb, err := OpenAndMigrate(":memory:")
	if err != nil {
		t.Fatalf("OpenAndMigrate: %v", err)
	}
	defer sdb.Close()

	var count int
	err = sdb.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN
		 ('users', 'stands', 'blog_posts', 'gallery_images', 'contact_messages',
		  'downloads', 'media', 'settings', 'revoked_tokens')`,
	).Scan(&count)
	if err != nil {
		t.Fatalf("counting tables: %v", err)
	}
	if count != 9 {
		t.Errorf("expected 9 tables, got %d", count)
	}

	// Re-running migrations is idempotent.
	if err := Migrate(sdb); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
