package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smkhize/erfsite/internal/model"
)

// CreateBlogPost creates a new blog post. Posts start unpublished
// unless the input says otherwise.
func (s *SQLite) CreateBlogPost(ctx context.Context, in model.BlogPostInput) (*model.BlogPost, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO blog_posts (title, content, excerpt, category, image_url, published)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.Title, in.Content, in.Excerpt, in.Category, nullString(in.ImageURL), in.Published,
	)
	if err != nil {
		return nil, fmt.Errorf("creating blog post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting blog post id: %w", err)
	}

	return s.GetBlogPost(ctx, id)
}

// GetBlogPost returns a blog post by ID, published or not.
func (s *SQLite) GetBlogPost(ctx context.Context, id int64) (*model.BlogPost, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, excerpt, category, image_url, published, created_at
		 FROM blog_posts WHERE id = ?`, id,
	)
	post, err := scanBlogPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting blog post: %w", err)
	}
	return post, nil
}

// ListBlogPosts returns every blog post, for the admin surface.
func (s *SQLite) ListBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	return s.listBlogPosts(ctx, false)
}

// ListPublishedBlogPosts returns only published posts, for public routes.
func (s *SQLite) ListPublishedBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	return s.listBlogPosts(ctx, true)
}

func (s *SQLite) listBlogPosts(ctx context.Context, publishedOnly bool) ([]model.BlogPost, error) {
	query := `SELECT id, title, content, excerpt, category, image_url, published, created_at
	          FROM blog_posts ORDER BY id`
	if publishedOnly {
		query = `SELECT id, title, content, excerpt, category, image_url, published, created_at
		         FROM blog_posts WHERE published = 1 ORDER BY id`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing blog posts: %w", err)
	}
	defer rows.Close()

	var posts []model.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning blog post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

// UpdateBlogPost merges the supplied fields onto an existing post.
// Returns (nil, nil) if the id is unknown.
func (s *SQLite) UpdateBlogPost(ctx context.Context, id int64, patch model.BlogPostPatch) (*model.BlogPost, error) {
	post, err := s.GetBlogPost(ctx, id)
	if err != nil || post == nil {
		return nil, err
	}

	applyString(&post.Title, patch.Title)
	applyString(&post.Content, patch.Content)
	applyString(&post.Excerpt, patch.Excerpt)
	applyString(&post.Category, patch.Category)
	applyString(&post.ImageURL, patch.ImageURL)
	if patch.Published != nil {
		post.Published = *patch.Published
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE blog_posts SET title = ?, content = ?, excerpt = ?, category = ?,
		        image_url = ?, published = ?
		 WHERE id = ?`,
		post.Title, post.Content, post.Excerpt, post.Category,
		nullString(post.ImageURL), post.Published, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating blog post: %w", err)
	}

	return s.GetBlogPost(ctx, id)
}

// DeleteBlogPost removes a blog post. Returns false if the id was unknown.
func (s *SQLite) DeleteBlogPost(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting blog post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting blog post: %w", err)
	}
	return affected > 0, nil
}

func scanBlogPost(row interface{ Scan(...any) error }) (*model.BlogPost, error) {
	post := &model.BlogPost{}
	var imageURL sql.NullString
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.Excerpt, &post.Category,
		&imageURL, &post.Published, &post.CreatedAt)
	if err != nil {
		return nil, err
	}
	post.ImageURL = imageURL.String
	return post, nil
}
