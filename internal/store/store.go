// Package store provides the data access layer: one uniform CRUD
// contract per entity, backed by either SQLite or process memory.
package store

import (
	"context"
	"time"

	"github.com/smkhize/erfsite/internal/model"
)

// Store is the persistence contract shared by both backends. Getters
// return (nil, nil) when the id is unknown; callers translate absence
// into a not-found response. Deletes report false for unknown ids and
// are safe to repeat.
type Store interface {
	// Users.
	CreateUser(ctx context.Context, username, passwordHash, role string) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateUserPassword(ctx context.Context, id int64, passwordHash string) (bool, error)

	// Stands. An empty status lists all.
	ListStands(ctx context.Context, status string) ([]model.Stand, error)
	GetStand(ctx context.Context, id int64) (*model.Stand, error)
	CreateStand(ctx context.Context, in model.StandInput) (*model.Stand, error)
	UpdateStand(ctx context.Context, id int64, patch model.StandPatch) (*model.Stand, error)
	DeleteStand(ctx context.Context, id int64) (bool, error)

	// Blog posts.
	ListBlogPosts(ctx context.Context) ([]model.BlogPost, error)
	ListPublishedBlogPosts(ctx context.Context) ([]model.BlogPost, error)
	GetBlogPost(ctx context.Context, id int64) (*model.BlogPost, error)
	CreateBlogPost(ctx context.Context, in model.BlogPostInput) (*model.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id int64, patch model.BlogPostPatch) (*model.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id int64) (bool, error)

	// Gallery images. An empty category lists all.
	ListGalleryImages(ctx context.Context, category string) ([]model.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, in model.GalleryImageInput) (*model.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id int64) (bool, error)

	// Contact messages. MarkMessageRead is idempotent: marking an
	// already-read message still reports true.
	ListContactMessages(ctx context.Context) ([]model.ContactMessage, error)
	GetContactMessage(ctx context.Context, id int64) (*model.ContactMessage, error)
	CreateContactMessage(ctx context.Context, in model.ContactMessageInput) (*model.ContactMessage, error)
	MarkMessageRead(ctx context.Context, id int64) (bool, error)
	CountUnreadMessages(ctx context.Context) (int, error)

	// Downloads. An empty category lists all.
	ListDownloads(ctx context.Context, category string) ([]model.Download, error)
	CreateDownload(ctx context.Context, in model.DownloadInput) (*model.Download, error)
	DeleteDownload(ctx context.Context, id int64) (bool, error)

	// Media blobs for uploaded images.
	CreateMedia(ctx context.Context, filename, mime string, data, thumb []byte) (*model.Media, error)
	GetMedia(ctx context.Context, id int64) (*model.Media, error)
	GetMediaData(ctx context.Context, id int64, thumb bool) ([]byte, string, error)

	// Token revocation and the persisted signing secret.
	RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	JWTSecret(ctx context.Context) (string, error)
}
