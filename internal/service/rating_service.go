package service

import (
	"context"
	"fmt"

	"restaurant_api/internal/model"
	"restaurant_api/internal/repository"
)

// RatingService provides menu rating submission and aggregates
type RatingService interface {
	Create(ctx context.Context, menuID, stars int) (*model.Rating, error)
	ListByMenu(ctx context.Context, menuID int) ([]model.Rating, error)
	AverageForMenu(ctx context.Context, menuID int) (*model.RatingAverage, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	menuRepo   repository.MenuRepository
}

// NewRatingService creates a new RatingService
func NewRatingService(ratingRepo repository.RatingRepository, menuRepo repository.MenuRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo, menuRepo: menuRepo}
}

// Create stores a star rating for an existing menu item
func (s *ratingService) Create(ctx context.Context, menuID, stars int) (*model.Rating, error) {
	if stars < 1 || stars > 5 {
		return nil, &ValidationError{Messages: []string{"Stars must be between 1 and 5"}}
	}

	menu, err := s.menuRepo.FindByID(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}

	rating := &model.Rating{MenuID: menuID, Stars: stars}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}
	return rating, nil
}

// ListByMenu returns all ratings for a menu item
func (s *ratingService) ListByMenu(ctx context.Context, menuID int) ([]model.Rating, error) {
	ratings, err := s.ratingRepo.FindByMenu(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}

// AverageForMenu returns the average stars and count; unrated menus get
// zeroes rather than an error.
func (s *ratingService) AverageForMenu(ctx context.Context, menuID int) (*model.RatingAverage, error) {
	avg, count, err := s.ratingRepo.AverageForMenu(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rating average: %w", err)
	}
	return &model.RatingAverage{AvgRating: avg, Count: count}, nil
}
