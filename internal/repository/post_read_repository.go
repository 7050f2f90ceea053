package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bloghub/blog-service/internal/models"
	sharedredis "github.com/bloghub/blog-service/internal/redis"
	goredis "github.com/redis/go-redis/v9"
)

const postViewKeyPrefix = "post:view:"

// PostReadRepository handles all read operations for posts.
// Single-post lookups treat Redis as the primary read store and fall back to
// PostgreSQL transparently, warming the cache on every cold read. The full
// listing always comes straight from PostgreSQL.
type PostReadRepository struct {
	db    *sql.DB
	cache *sharedredis.ViewCache[models.PostView]
}

func NewPostReadRepository(db *sql.DB, redisClient *goredis.Client) *PostReadRepository {
	return &PostReadRepository{
		db:    db,
		cache: sharedredis.NewViewCache[models.PostView](redisClient, 0),
	}
}

// GetByID returns a PostView from Redis first, then PostgreSQL.
func (r *PostReadRepository) GetByID(ctx context.Context, id string) (*models.PostView, error) {
	cacheKey := postViewKeyPrefix + id

	if view, ok := r.cache.Get(ctx, cacheKey); ok {
		return view, nil
	}

	// Fallback: PostgreSQL, joined with the author for display fields.
	query := `
		SELECT p.id, p.title, p.content, p.author_id, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`
	var view models.PostView
	pgErr := r.db.QueryRow(query, id).Scan(
		&view.ID, &view.Title, &view.Content, &view.AuthorID, &view.AuthorName,
	)
	if pgErr == sql.ErrNoRows {
		return nil, fmt.Errorf("post not found")
	}
	if pgErr != nil {
		return nil, fmt.Errorf("failed to get post: %w", pgErr)
	}

	// Warm the cache
	r.CachePostView(ctx, &view)
	return &view, nil
}

// List returns every post joined with its author, newest first.
func (r *PostReadRepository) List(ctx context.Context) ([]models.PostView, error) {
	query := `
		SELECT p.id, p.title, p.content, p.author_id, u.name
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	views := []models.PostView{}
	for rows.Next() {
		var view models.PostView
		if err := rows.Scan(&view.ID, &view.Title, &view.Content, &view.AuthorID, &view.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return views, nil
}

// CachePostView stores or refreshes the Redis read model for a post.
// Called by the command service after every mutation.
func (r *PostReadRepository) CachePostView(ctx context.Context, view *models.PostView) {
	r.cache.Set(ctx, postViewKeyPrefix+view.ID, view)
}

// InvalidatePostView removes the Redis read model entry for a deleted post.
func (r *PostReadRepository) InvalidatePostView(ctx context.Context, postID string) {
	r.cache.Delete(ctx, postViewKeyPrefix+postID)
}
