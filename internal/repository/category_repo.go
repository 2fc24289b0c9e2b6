package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// CategoryRepository defines operations for category data
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	DeleteWithMenus(ctx context.Context, id int) error
}

type categoryRepository struct {
	db DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create inserts a new category into the database
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	sql := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, category.Name).Scan(&category.ID); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// FindAll retrieves all categories
func (r *categoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	sql := `SELECT id, name FROM categories ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	return categories, nil
}

// FindByID retrieves a category by its ID
func (r *categoryRepository) FindByID(ctx context.Context, id int) (*model.Category, error) {
	category := &model.Category{}
	sql := `SELECT id, name FROM categories WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}
	return category, nil
}

// FindByName retrieves a category by its name
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	category := &model.Category{}
	sql := `SELECT id, name FROM categories WHERE name = $1`
	err := r.db.QueryRow(ctx, sql, name).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}
	return category, nil
}

// Update renames a category
func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	sql := `UPDATE categories SET name = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, sql, category.Name, category.ID); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// DeleteWithMenus removes a category and every menu item under it in one
// transaction; the menus go first so the category is never left dangling.
func (r *categoryRepository) DeleteWithMenus(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM menus WHERE category_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete menus for category: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit category delete: %w", err)
	}
	return nil
}
