package service

import (
	"context"
	"fmt"

	"restaurant_api/internal/model"
	"restaurant_api/internal/repository"
)

// CategoryService provides category management
type CategoryService interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id int, name string) (*model.Category, error)
	Delete(ctx context.Context, id int) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) validateName(ctx context.Context, name string, selfID int) error {
	if name == "" {
		return &ValidationError{Messages: []string{"Name can't be blank"}}
	}
	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return &ValidationError{Messages: []string{"Name has already been taken"}}
	}
	return nil
}

// Create adds a new category with a unique, non-blank name
func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	if err := s.validateName(ctx, name, 0); err != nil {
		return nil, err
	}

	category := &model.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// List returns all categories
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Update renames a category
func (s *categoryService) Update(ctx context.Context, id int, name string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if err := s.validateName(ctx, name, id); err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// Delete removes a category and cascades to every menu item under it
func (s *categoryService) Delete(ctx context.Context, id int) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	if err := s.categoryRepo.DeleteWithMenus(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category with menus: %w", err)
	}
	return nil
}
