package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smkhize/erfsite/internal/db"
	"github.com/smkhize/erfsite/internal/model"
)

// backends returns a fresh instance of every Store implementation, so
// each contract test runs against both.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"sqlite": NewSQLite(db.NewTestDB(t)),
		"memory": NewMemory(),
	}
}

func standInput() model.StandInput {
	return model.StandInput{
		Title:       "Plot RS-001",
		Description: "Level corner stand",
		Price:       "7500.00",
		Size:        "800 sqm",
		Location:    "Phase 1",
		Features:    []string{"Corner stand", "Municipal water"},
	}
}

func TestCreateStandAssignsIDAndTimestamp(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			first, err := s.CreateStand(ctx, standInput())
			require.NoError(t, err)
			second, err := s.CreateStand(ctx, standInput())
			require.NoError(t, err)

			assert.Greater(t, second.ID, first.ID, "ids must be strictly increasing")
			assert.False(t, first.CreatedAt.IsZero(), "createdAt must be assigned by the store")
			assert.Equal(t, []string{"Corner stand", "Municipal water"}, first.Features)
		})
	}
}

func TestCreateStandDefaultsStatus(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			stand, err := s.CreateStand(ctx, standInput())
			require.NoError(t, err)
			assert.Equal(t, model.StandAvailable, stand.Status)

			in := standInput()
			in.Status = model.StandSold
			sold, err := s.CreateStand(ctx, in)
			require.NoError(t, err)
			assert.Equal(t, model.StandSold, sold.Status)
		})
	}
}

func TestListStandsByStatus(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.CreateStand(ctx, standInput())
			require.NoError(t, err)
			in := standInput()
			in.Status = model.StandSold
			_, err = s.CreateStand(ctx, in)
			require.NoError(t, err)

			all, err := s.ListStands(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, 2)

			sold, err := s.ListStands(ctx, model.StandSold)
			require.NoError(t, err)
			assert.Len(t, sold, 1)
		})
	}
}

func TestUpdateStandMergesSuppliedFields(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			stand, err := s.CreateStand(ctx, standInput())
			require.NoError(t, err)

			status := model.StandReserved
			updated, err := s.UpdateStand(ctx, stand.ID, model.StandPatch{Status: &status})
			require.NoError(t, err)
			require.NotNil(t, updated)

			assert.Equal(t, model.StandReserved, updated.Status)
			assert.Equal(t, stand.Title, updated.Title, "unsupplied fields stay untouched")
			assert.Equal(t, stand.ID, updated.ID)
			assert.WithinDuration(t, stand.CreatedAt, updated.CreatedAt, 0)
		})
	}
}

func TestUpdateStandUnknownID(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			title := "Ghost"
			updated, err := s.UpdateStand(ctx, 999, model.StandPatch{Title: &title})
			require.NoError(t, err)
			assert.Nil(t, updated)

			// The failed update must not create a record.
			all, err := s.ListStands(ctx, "")
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestDeleteStandIdempotent(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			stand, err := s.CreateStand(ctx, standInput())
			require.NoError(t, err)

			deleted, err := s.DeleteStand(ctx, stand.ID)
			require.NoError(t, err)
			assert.True(t, deleted)

			deleted, err = s.DeleteStand(ctx, stand.ID)
			require.NoError(t, err)
			assert.False(t, deleted, "second delete reports false")

			got, err := s.GetStand(ctx, stand.ID)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStandIDsNeverReused(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			first, err := s.CreateStand(ctx, standInput())
			require.NoError(t, err)
			_, err = s.DeleteStand(ctx, first.ID)
			require.NoError(t, err)

			second, err := s.CreateStand(ctx, standInput())
			require.NoError(t, err)
			assert.Greater(t, second.ID, first.ID, "deleted ids must not be reassigned")
		})
	}
}

func TestPublishedBlogListing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			draft, err := s.CreateBlogPost(ctx, model.BlogPostInput{
				Title: "Draft", Content: "c", Excerpt: "e", Category: "News",
			})
			require.NoError(t, err)
			assert.False(t, draft.Published, "posts default to unpublished")

			_, err = s.CreateBlogPost(ctx, model.BlogPostInput{
				Title: "Live", Content: "c", Excerpt: "e", Category: "News", Published: true,
			})
			require.NoError(t, err)

			published, err := s.ListPublishedBlogPosts(ctx)
			require.NoError(t, err)
			require.Len(t, published, 1)
			assert.Equal(t, "Live", published[0].Title)

			all, err := s.ListBlogPosts(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 2)
		})
	}
}

func TestPublishBlogPostViaPatch(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			post, err := s.CreateBlogPost(ctx, model.BlogPostInput{
				Title: "Draft", Content: "c", Excerpt: "e", Category: "News",
			})
			require.NoError(t, err)

			published := true
			updated, err := s.UpdateBlogPost(ctx, post.ID, model.BlogPostPatch{Published: &published})
			require.NoError(t, err)
			require.NotNil(t, updated)
			assert.True(t, updated.Published)
		})
	}
}

func TestGalleryCategoryFilterPreservesOrder(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			titles := []struct{ title, category string }{
				{"One", "Developments"},
				{"Two", "Scenery"},
				{"Three", "Developments"},
				{"Four", "Developments"},
			}
			for _, tt := range titles {
				_, err := s.CreateGalleryImage(ctx, model.GalleryImageInput{
					Title: tt.title, Category: tt.category, ImageURL: "/img.jpg",
				})
				require.NoError(t, err)
			}

			filtered, err := s.ListGalleryImages(ctx, "Developments")
			require.NoError(t, err)
			require.Len(t, filtered, 3)
			assert.Equal(t, "One", filtered[0].Title)
			assert.Equal(t, "Three", filtered[1].Title)
			assert.Equal(t, "Four", filtered[2].Title)
		})
	}
}

func TestContactMessageLifecycle(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			msg, err := s.CreateContactMessage(ctx, model.ContactMessageInput{
				FirstName: "John",
				LastName:  "Doe",
				Email:     "john@example.com",
				Message:   "Interested in Plot RS-001",
			})
			require.NoError(t, err)
			assert.False(t, msg.Read, "messages start unread")
			assert.False(t, msg.CreatedAt.IsZero())

			unread, err := s.CountUnreadMessages(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, unread)

			ok, err := s.MarkMessageRead(ctx, msg.ID)
			require.NoError(t, err)
			assert.True(t, ok)

			got, err := s.GetContactMessage(ctx, msg.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, got.Read)

			// Marking again still succeeds and changes nothing.
			ok, err = s.MarkMessageRead(ctx, msg.ID)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = s.MarkMessageRead(ctx, 999)
			require.NoError(t, err)
			assert.False(t, ok, "unknown id reports false")
		})
	}
}

func TestDownloadsByCategory(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.CreateDownload(ctx, model.DownloadInput{
				Title: "Brochure", FileURL: "/b.pdf", Category: "Brochures",
			})
			require.NoError(t, err)
			d, err := s.CreateDownload(ctx, model.DownloadInput{
				Title: "Plan A2", FileURL: "/p.pdf", Category: "House Plans",
			})
			require.NoError(t, err)

			plans, err := s.ListDownloads(ctx, "House Plans")
			require.NoError(t, err)
			require.Len(t, plans, 1)
			assert.Equal(t, "Plan A2", plans[0].Title)

			deleted, err := s.DeleteDownload(ctx, d.ID)
			require.NoError(t, err)
			assert.True(t, deleted)
		})
	}
}

func TestUserUniqueness(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			user, err := s.CreateUser(ctx, "admin", "hash", "")
			require.NoError(t, err)
			assert.Equal(t, model.RoleAdmin, user.Role, "role defaults to admin")

			_, err = s.CreateUser(ctx, "admin", "hash2", model.RoleAdmin)
			assert.Error(t, err, "duplicate usernames must be rejected")

			got, err := s.GetUserByUsername(ctx, "admin")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, user.ID, got.ID)

			missing, err := s.GetUserByUsername(ctx, "nobody")
			require.NoError(t, err)
			assert.Nil(t, missing)
		})
	}
}

func TestUpdateUserPassword(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			user, err := s.CreateUser(ctx, "admin", "old-hash", model.RoleAdmin)
			require.NoError(t, err)

			ok, err := s.UpdateUserPassword(ctx, user.ID, "new-hash")
			require.NoError(t, err)
			assert.True(t, ok)

			got, err := s.GetUser(ctx, user.ID)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "new-hash", got.PasswordHash)
			assert.Equal(t, user.Username, got.Username, "only the hash changes")

			ok, err = s.UpdateUserPassword(ctx, 999, "other-hash")
			require.NoError(t, err)
			assert.False(t, ok, "unknown id updates nothing")
		})
	}
}

func TestMediaRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			media, err := s.CreateMedia(ctx, "entrance.jpg", "image/jpeg",
				[]byte("full image"), []byte("thumb image"))
			require.NoError(t, err)
			assert.Equal(t, "/media/1", media.URL())
			assert.Equal(t, "/media/1/thumb", media.ThumbURL())

			data, mime, err := s.GetMediaData(ctx, media.ID, false)
			require.NoError(t, err)
			assert.Equal(t, "full image", string(data))
			assert.Equal(t, "image/jpeg", mime)

			thumb, mime, err := s.GetMediaData(ctx, media.ID, true)
			require.NoError(t, err)
			assert.Equal(t, "thumb image", string(thumb))
			assert.Equal(t, "image/jpeg", mime)

			none, _, err := s.GetMediaData(ctx, 999, false)
			require.NoError(t, err)
			assert.Nil(t, none)
		})
	}
}

func TestTokenRevocation(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			revoked, err := s.IsTokenRevoked(ctx, "jti-1")
			require.NoError(t, err)
			assert.False(t, revoked)

			require.NoError(t, s.RevokeToken(ctx, "jti-1", time.Now().Add(time.Hour)))

			revoked, err = s.IsTokenRevoked(ctx, "jti-1")
			require.NoError(t, err)
			assert.True(t, revoked)
		})
	}
}

func TestJWTSecretStable(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			first, err := s.JWTSecret(ctx)
			require.NoError(t, err)
			require.NotEmpty(t, first)

			second, err := s.JWTSecret(ctx)
			require.NoError(t, err)
			assert.Equal(t, first, second, "secret must survive repeated loads")
		})
	}
}
