package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/smkhize/erfsite/internal/model"
)

// Memory is the process-memory Store backend used for development and
// demos. Each entity owns an independent id sequence; ids are never
// reused. Nothing survives a restart.
type Memory struct {
	mu sync.RWMutex

	users     map[int64]model.User
	stands    map[int64]model.Stand
	posts     map[int64]model.BlogPost
	images    map[int64]model.GalleryImage
	messages  map[int64]model.ContactMessage
	downloads map[int64]model.Download
	media     map[int64]memoryMedia

	nextUserID     int64
	nextStandID    int64
	nextPostID     int64
	nextImageID    int64
	nextMessageID  int64
	nextDownloadID int64
	nextMediaID    int64

	revoked   map[string]time.Time
	jwtSecret string
}

type memoryMedia struct {
	meta  model.Media
	data  []byte
	thumb []byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:     make(map[int64]model.User),
		stands:    make(map[int64]model.Stand),
		posts:     make(map[int64]model.BlogPost),
		images:    make(map[int64]model.GalleryImage),
		messages:  make(map[int64]model.ContactMessage),
		downloads: make(map[int64]model.Download),
		media:     make(map[int64]memoryMedia),
		revoked:   make(map[string]time.Time),
	}
}

var _ Store = (*Memory)(nil)

// sortedValues returns map values in ascending id order, which is
// insertion order because ids only ever increase.
func sortedValues[T any](m map[int64]T, id func(T) int64) []T {
	values := make([]T, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	slices.SortFunc(values, func(a, b T) int {
		return int(id(a) - id(b))
	})
	return values
}

// Users.

func (m *Memory) CreateUser(_ context.Context, username, passwordHash, role string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return nil, fmt.Errorf("creating user: username %q already exists", username)
		}
	}
	if role == "" {
		role = model.RoleAdmin
	}

	m.nextUserID++
	user := model.User{
		ID:           m.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	m.users[user.ID] = user
	return &user, nil
}

func (m *Memory) GetUser(_ context.Context, id int64) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *Memory) UpdateUserPassword(_ context.Context, id int64, passwordHash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return false, nil
	}
	user.PasswordHash = passwordHash
	m.users[id] = user
	return true, nil
}

// Stands.

func (m *Memory) CreateStand(_ context.Context, in model.StandInput) (*model.Stand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := in.Status
	if status == "" {
		status = model.StandAvailable
	}
	features := in.Features
	if features == nil {
		features = []string{}
	}

	m.nextStandID++
	stand := model.Stand{
		ID:          m.nextStandID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Size:        in.Size,
		Location:    in.Location,
		Status:      status,
		Features:    slices.Clone(features),
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	m.stands[stand.ID] = stand
	return &stand, nil
}

func (m *Memory) GetStand(_ context.Context, id int64) (*model.Stand, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stand, ok := m.stands[id]
	if !ok {
		return nil, nil
	}
	return &stand, nil
}

func (m *Memory) ListStands(_ context.Context, status string) ([]model.Stand, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := sortedValues(m.stands, func(s model.Stand) int64 { return s.ID })
	if status == "" {
		return all, nil
	}

	var filtered []model.Stand
	for _, s := range all {
		if s.Status == status {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func (m *Memory) UpdateStand(_ context.Context, id int64, patch model.StandPatch) (*model.Stand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stand, ok := m.stands[id]
	if !ok {
		return nil, nil
	}

	applyString(&stand.Title, patch.Title)
	applyString(&stand.Description, patch.Description)
	applyString(&stand.Price, patch.Price)
	applyString(&stand.Size, patch.Size)
	applyString(&stand.Location, patch.Location)
	applyString(&stand.Status, patch.Status)
	applyString(&stand.ImageURL, patch.ImageURL)
	if patch.Features != nil {
		stand.Features = slices.Clone(*patch.Features)
	}

	m.stands[id] = stand
	return &stand, nil
}

func (m *Memory) DeleteStand(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.stands[id]; !ok {
		return false, nil
	}
	delete(m.stands, id)
	return true, nil
}

// Blog posts.

func (m *Memory) CreateBlogPost(_ context.Context, in model.BlogPostInput) (*model.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextPostID++
	post := model.BlogPost{
		ID:        m.nextPostID,
		Title:     in.Title,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		Category:  in.Category,
		ImageURL:  in.ImageURL,
		Published: in.Published,
		CreatedAt: time.Now().UTC(),
	}
	m.posts[post.ID] = post
	return &post, nil
}

func (m *Memory) GetBlogPost(_ context.Context, id int64) (*model.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (m *Memory) ListBlogPosts(_ context.Context) ([]model.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sortedValues(m.posts, func(p model.BlogPost) int64 { return p.ID }), nil
}

func (m *Memory) ListPublishedBlogPosts(_ context.Context) ([]model.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var published []model.BlogPost
	for _, p := range sortedValues(m.posts, func(p model.BlogPost) int64 { return p.ID }) {
		if p.Published {
			published = append(published, p)
		}
	}
	return published, nil
}

func (m *Memory) UpdateBlogPost(_ context.Context, id int64, patch model.BlogPostPatch) (*model.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}

	applyString(&post.Title, patch.Title)
	applyString(&post.Content, patch.Content)
	applyString(&post.Excerpt, patch.Excerpt)
	applyString(&post.Category, patch.Category)
	applyString(&post.ImageURL, patch.ImageURL)
	if patch.Published != nil {
		post.Published = *patch.Published
	}

	m.posts[id] = post
	return &post, nil
}

func (m *Memory) DeleteBlogPost(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return false, nil
	}
	delete(m.posts, id)
	return true, nil
}

// Gallery images.

func (m *Memory) CreateGalleryImage(_ context.Context, in model.GalleryImageInput) (*model.GalleryImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextImageID++
	img := model.GalleryImage{
		ID:          m.nextImageID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	m.images[img.ID] = img
	return &img, nil
}

func (m *Memory) ListGalleryImages(_ context.Context, category string) ([]model.GalleryImage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := sortedValues(m.images, func(i model.GalleryImage) int64 { return i.ID })
	if category == "" {
		return all, nil
	}

	var filtered []model.GalleryImage
	for _, img := range all {
		if img.Category == category {
			filtered = append(filtered, img)
		}
	}
	return filtered, nil
}

func (m *Memory) DeleteGalleryImage(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.images[id]; !ok {
		return false, nil
	}
	delete(m.images, id)
	return true, nil
}

// Contact messages.

func (m *Memory) CreateContactMessage(_ context.Context, in model.ContactMessageInput) (*model.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextMessageID++
	msg := model.ContactMessage{
		ID:        m.nextMessageID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	m.messages[msg.ID] = msg
	return &msg, nil
}

func (m *Memory) GetContactMessage(_ context.Context, id int64) (*model.ContactMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	msg, ok := m.messages[id]
	if !ok {
		return nil, nil
	}
	return &msg, nil
}

func (m *Memory) ListContactMessages(_ context.Context) ([]model.ContactMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	messages := sortedValues(m.messages, func(c model.ContactMessage) int64 { return c.ID })
	slices.Reverse(messages) // newest first, matching the SQLite backend
	return messages, nil
}

func (m *Memory) MarkMessageRead(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg, ok := m.messages[id]
	if !ok {
		return false, nil
	}
	msg.Read = true
	m.messages[id] = msg
	return true, nil
}

func (m *Memory) CountUnreadMessages(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, msg := range m.messages {
		if !msg.Read {
			count++
		}
	}
	return count, nil
}

// Downloads.

func (m *Memory) CreateDownload(_ context.Context, in model.DownloadInput) (*model.Download, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextDownloadID++
	d := model.Download{
		ID:          m.nextDownloadID,
		Title:       in.Title,
		Description: in.Description,
		FileURL:     in.FileURL,
		Category:    in.Category,
		CreatedAt:   time.Now().UTC(),
	}
	m.downloads[d.ID] = d
	return &d, nil
}

func (m *Memory) ListDownloads(_ context.Context, category string) ([]model.Download, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := sortedValues(m.downloads, func(d model.Download) int64 { return d.ID })
	if category == "" {
		return all, nil
	}

	var filtered []model.Download
	for _, d := range all {
		if d.Category == category {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func (m *Memory) DeleteDownload(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.downloads[id]; !ok {
		return false, nil
	}
	delete(m.downloads, id)
	return true, nil
}

// Media.

func (m *Memory) CreateMedia(_ context.Context, filename, mime string, data, thumb []byte) (*model.Media, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextMediaID++
	meta := model.Media{
		ID:        m.nextMediaID,
		Filename:  filename,
		MIME:      mime,
		CreatedAt: time.Now().UTC(),
	}
	m.media[meta.ID] = memoryMedia{
		meta:  meta,
		data:  slices.Clone(data),
		thumb: slices.Clone(thumb),
	}
	return &meta, nil
}

func (m *Memory) GetMedia(_ context.Context, id int64) (*model.Media, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.media[id]
	if !ok {
		return nil, nil
	}
	meta := entry.meta
	return &meta, nil
}

func (m *Memory) GetMediaData(_ context.Context, id int64, thumb bool) ([]byte, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.media[id]
	if !ok {
		return nil, "", nil
	}
	if thumb {
		return slices.Clone(entry.thumb), "image/jpeg", nil
	}
	return slices.Clone(entry.data), entry.meta.MIME, nil
}

// Auth support.

func (m *Memory) RevokeToken(_ context.Context, jti string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.revoked[jti] = expiresAt
	for id, exp := range m.revoked {
		if exp.Before(time.Now()) {
			delete(m.revoked, id)
		}
	}
	return nil
}

func (m *Memory) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, revoked := m.revoked[jti]
	return revoked, nil
}

func (m *Memory) JWTSecret(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.jwtSecret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generating jwt secret: %w", err)
		}
		m.jwtSecret = hex.EncodeToString(buf)
	}
	return m.jwtSecret, nil
}
