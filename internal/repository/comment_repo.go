package repository

import (
	"context"
	"fmt"

	"restaurant_api/internal/model"
)

// CommentRepository defines operations for comment data
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindAll(ctx context.Context) ([]model.Comment, error)
}

type commentRepository struct {
	db DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment into the database
func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	sql := `INSERT INTO comments (name, phone, comment, anonymous, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, c.Name, c.Phone, c.Comment, c.Anonymous, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindAll retrieves all comments, newest first
func (r *commentRepository) FindAll(ctx context.Context) ([]model.Comment, error) {
	sql := `SELECT id, name, phone, comment, anonymous, created_at FROM comments ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Comment, &c.Anonymous, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}
	return comments, nil
}
