package repository

import (
	"database/sql"
	"fmt"

	"github.com/bloghub/blog-service/internal/models"
)

// CommentRepository persists comments in the PostgreSQL write store.
// Comments are immutable after creation, so there is no Update operation.
type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, content, author_id, post_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query,
		comment.ID, comment.Content, comment.AuthorID, comment.PostID, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByID fetches the full write model for ownership checks.
func (r *CommentRepository) GetByID(id string) (*models.Comment, error) {
	query := `
		SELECT id, content, author_id, post_id, created_at
		FROM comments
		WHERE id = $1
	`
	var comment models.Comment
	err := r.db.QueryRow(query, id).Scan(
		&comment.ID, &comment.Content, &comment.AuthorID, &comment.PostID, &comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("comment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("comment not found")
	}
	return nil
}
