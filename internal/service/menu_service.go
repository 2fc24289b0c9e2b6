package service

import (
	"context"
	"fmt"

	"restaurant_api/internal/model"
	"restaurant_api/internal/repository"
)

// MenuService provides menu item management
type MenuService interface {
	CreateUnderCategory(ctx context.Context, categoryID int, req model.CreateMenuRequest) (*model.Menu, error)
	ListByCategory(ctx context.Context, categoryID int) ([]model.Menu, error)
	Update(ctx context.Context, id int, req model.UpdateMenuRequest) (*model.Menu, error)
	Delete(ctx context.Context, id int) error
}

type menuService struct {
	menuRepo     repository.MenuRepository
	categoryRepo repository.CategoryRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(menuRepo repository.MenuRepository, categoryRepo repository.CategoryRepository) MenuService {
	return &menuService{menuRepo: menuRepo, categoryRepo: categoryRepo}
}

// CreateUnderCategory adds a menu item to an existing category. The item is
// available unless the request says otherwise.
func (s *menuService) CreateUnderCategory(ctx context.Context, categoryID int, req model.CreateMenuRequest) (*model.Menu, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name == "" {
		return nil, &ValidationError{Messages: []string{"Name can't be blank"}}
	}

	available := true
	if req.Available != nil {
		available = bool(*req.Available)
	}

	menu := &model.Menu{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Price:       float64(req.Price),
		Image:       req.Image,
		Available:   available,
		OutOfStock:  req.OutOfStockValue(),
		Badge:       req.Badge,
		CategoryID:  categoryID,
	}

	if err := s.menuRepo.Create(ctx, menu); err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}
	return menu, nil
}

// ListByCategory returns all menu items under a category
func (s *menuService) ListByCategory(ctx context.Context, categoryID int) ([]model.Menu, error) {
	menus, err := s.menuRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return menus, nil
}

// Update applies a partial update to a menu item. Absent fields keep their
// stored values; image set to the empty string clears the image.
func (s *menuService) Update(ctx context.Context, id int, req model.UpdateMenuRequest) (*model.Menu, error) {
	menu, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}

	if req.Name != nil && *req.Name != "" {
		menu.Name = *req.Name
	}
	if req.Ingredients != nil {
		menu.Ingredients = *req.Ingredients
	}
	if req.Price != nil {
		menu.Price = float64(*req.Price)
	}
	if req.Image != nil {
		// An explicit empty string removes the image
		menu.Image = *req.Image
	}
	if req.Available != nil {
		menu.Available = bool(*req.Available)
	}
	if v := req.OutOfStockValue(); v != nil {
		menu.OutOfStock = *v
	}
	if req.Badge != nil {
		menu.Badge = *req.Badge
	}
	if v := req.CategoryValue(); v != nil && *v != 0 {
		category, err := s.categoryRepo.FindByID(ctx, *v)
		if err != nil {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		menu.CategoryID = *v
	}

	if err := s.menuRepo.Update(ctx, menu); err != nil {
		return nil, fmt.Errorf("failed to update menu: %w", err)
	}
	return menu, nil
}

// Delete removes a menu item
func (s *menuService) Delete(ctx context.Context, id int) error {
	menu, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find menu: %w", err)
	}
	if menu == nil {
		return ErrMenuNotFound
	}

	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete menu: %w", err)
	}
	return nil
}
