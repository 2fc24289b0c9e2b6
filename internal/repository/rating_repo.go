package repository

import (
	"context"
	"fmt"

	"restaurant_api/internal/model"
)

// RatingRepository defines operations for rating data
type RatingRepository interface {
	Create(ctx context.Context, rating *model.Rating) error
	FindByMenu(ctx context.Context, menuID int) ([]model.Rating, error)
	AverageForMenu(ctx context.Context, menuID int) (float64, int, error)
}

type ratingRepository struct {
	db DB
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create inserts a new rating into the database
func (r *ratingRepository) Create(ctx context.Context, rating *model.Rating) error {
	sql := `INSERT INTO ratings (menu_id, stars) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRow(ctx, sql, rating.MenuID, rating.Stars).Scan(&rating.ID)
	if err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// FindByMenu retrieves all ratings for a menu item
func (r *ratingRepository) FindByMenu(ctx context.Context, menuID int) ([]model.Rating, error) {
	sql := `SELECT id, menu_id, stars FROM ratings WHERE menu_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, sql, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings by menu: %w", err)
	}
	defer rows.Close()

	ratings := []model.Rating{}
	for rows.Next() {
		var rt model.Rating
		if err := rows.Scan(&rt.ID, &rt.MenuID, &rt.Stars); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ratings: %w", err)
	}
	return ratings, nil
}

// AverageForMenu computes the average stars and rating count for a menu
// item; an unrated menu yields zero for both.
func (r *ratingRepository) AverageForMenu(ctx context.Context, menuID int) (float64, int, error) {
	sql := `SELECT COALESCE(AVG(stars), 0), COUNT(*) FROM ratings WHERE menu_id = $1`
	var avg float64
	var count int
	if err := r.db.QueryRow(ctx, sql, menuID).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("failed to compute rating average: %w", err)
	}
	return avg, count, nil
}
