package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// MenuRepository defines operations for menu item data
type MenuRepository interface {
	Create(ctx context.Context, menu *model.Menu) error
	FindByID(ctx context.Context, id int) (*model.Menu, error)
	FindByCategory(ctx context.Context, categoryID int) ([]model.Menu, error)
	Update(ctx context.Context, menu *model.Menu) error
	Delete(ctx context.Context, id int) error
}

type menuRepository struct {
	db DB
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(db DB) MenuRepository {
	return &menuRepository{db: db}
}

// Create inserts a new menu item into the database
func (r *menuRepository) Create(ctx context.Context, m *model.Menu) error {
	sql := `INSERT INTO menus (name, ingredients, price, image, available, out_of_stock, badge, category_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, sql, m.Name, m.Ingredients, m.Price, m.Image, m.Available, m.OutOfStock, m.Badge, m.CategoryID).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("failed to create menu: %w", err)
	}
	return nil
}

// FindByID retrieves a menu item by its ID
func (r *menuRepository) FindByID(ctx context.Context, id int) (*model.Menu, error) {
	m := &model.Menu{}
	sql := `SELECT id, name, ingredients, price, image, available, out_of_stock, badge, category_id
            FROM menus WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&m.ID, &m.Name, &m.Ingredients, &m.Price, &m.Image,
		&m.Available, &m.OutOfStock, &m.Badge, &m.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find menu by ID: %w", err)
	}
	return m, nil
}

// FindByCategory retrieves all menu items under a category
func (r *menuRepository) FindByCategory(ctx context.Context, categoryID int) ([]model.Menu, error) {
	sql := `SELECT id, name, ingredients, price, image, available, out_of_stock, badge, category_id
            FROM menus WHERE category_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, sql, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus by category: %w", err)
	}
	defer rows.Close()

	menus := []model.Menu{}
	for rows.Next() {
		var m model.Menu
		if err := rows.Scan(&m.ID, &m.Name, &m.Ingredients, &m.Price, &m.Image,
			&m.Available, &m.OutOfStock, &m.Badge, &m.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read menus: %w", err)
	}
	return menus, nil
}

// Update rewrites a menu item row
func (r *menuRepository) Update(ctx context.Context, m *model.Menu) error {
	sql := `UPDATE menus SET name = $1, ingredients = $2, price = $3, image = $4,
            available = $5, out_of_stock = $6, badge = $7, category_id = $8 WHERE id = $9`
	if _, err := r.db.Exec(ctx, sql, m.Name, m.Ingredients, m.Price, m.Image,
		m.Available, m.OutOfStock, m.Badge, m.CategoryID, m.ID); err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}
	return nil
}

// Delete removes a menu item
func (r *menuRepository) Delete(ctx context.Context, id int) error {
	sql := `DELETE FROM menus WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to delete menu: %w", err)
	}
	return nil
}
