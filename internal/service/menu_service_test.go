package service

import (
	"context"
	"testing"

	"restaurant_api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMenuRepo struct {
	menus  map[int]*model.Menu
	nextID int
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{menus: map[int]*model.Menu{}, nextID: 1}
}

func (r *stubMenuRepo) Create(_ context.Context, m *model.Menu) error {
	m.ID = r.nextID
	r.nextID++
	copy := *m
	r.menus[m.ID] = &copy
	return nil
}

func (r *stubMenuRepo) FindByID(_ context.Context, id int) (*model.Menu, error) {
	if m, ok := r.menus[id]; ok {
		copy := *m
		return &copy, nil
	}
	return nil, nil
}

func (r *stubMenuRepo) FindByCategory(_ context.Context, categoryID int) ([]model.Menu, error) {
	out := []model.Menu{}
	for _, m := range r.menus {
		if m.CategoryID == categoryID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMenuRepo) Update(_ context.Context, m *model.Menu) error {
	copy := *m
	r.menus[m.ID] = &copy
	return nil
}

func (r *stubMenuRepo) Delete(_ context.Context, id int) error {
	delete(r.menus, id)
	return nil
}

func flexFloat(v float64) *model.FlexFloat {
	f := model.FlexFloat(v)
	return &f
}

func strPtr(s string) *string { return &s }

func newMenuFixture(t *testing.T) (MenuService, *stubMenuRepo, *stubCategoryRepo, int) {
	t.Helper()
	menuRepo := newStubMenuRepo()
	categoryRepo := newStubCategoryRepo()
	category := &model.Category{Name: "Mains"}
	require.NoError(t, categoryRepo.Create(context.Background(), category))
	return NewMenuService(menuRepo, categoryRepo), menuRepo, categoryRepo, category.ID
}

func TestMenuService_CreateUnderCategory(t *testing.T) {
	svc, _, _, categoryID := newMenuFixture(t)

	menu, err := svc.CreateUnderCategory(context.Background(), categoryID, model.CreateMenuRequest{
		Name:        "Plov",
		Ingredients: "rice, lamb, carrots",
		Price:       model.FlexFloat(45000),
	})

	require.NoError(t, err)
	assert.Equal(t, "Plov", menu.Name)
	assert.Equal(t, 45000.0, menu.Price)
	assert.Equal(t, categoryID, menu.CategoryID)
	// Available defaults to true, out of stock to false
	assert.True(t, menu.Available)
	assert.False(t, menu.OutOfStock)
}

func TestMenuService_CreateUnderCategory_MissingCategory(t *testing.T) {
	svc := NewMenuService(newStubMenuRepo(), newStubCategoryRepo())

	_, err := svc.CreateUnderCategory(context.Background(), 99, model.CreateMenuRequest{Name: "Plov"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestMenuService_Update_TogglesStock(t *testing.T) {
	svc, _, _, categoryID := newMenuFixture(t)
	menu, err := svc.CreateUnderCategory(context.Background(), categoryID, model.CreateMenuRequest{Name: "Plov"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), menu.ID, model.UpdateMenuRequest{
		OutOfStock: flexBool(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.OutOfStock)
	// Untouched fields stay as stored
	assert.Equal(t, "Plov", updated.Name)
	assert.True(t, updated.Available)
}

func TestMenuService_Update_ClearsImage(t *testing.T) {
	svc, _, _, categoryID := newMenuFixture(t)
	menu, err := svc.CreateUnderCategory(context.Background(), categoryID, model.CreateMenuRequest{
		Name:  "Plov",
		Image: "https://cdn.example/plov.jpg",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), menu.ID, model.UpdateMenuRequest{Image: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Image)
}

func TestMenuService_Update_NotFound(t *testing.T) {
	svc, _, _, _ := newMenuFixture(t)

	_, err := svc.Update(context.Background(), 99, model.UpdateMenuRequest{})
	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestMenuService_Update_MoveToMissingCategory(t *testing.T) {
	svc, _, _, categoryID := newMenuFixture(t)
	menu, err := svc.CreateUnderCategory(context.Background(), categoryID, model.CreateMenuRequest{Name: "Plov"})
	require.NoError(t, err)

	bad := model.FlexInt(42)
	_, err = svc.Update(context.Background(), menu.ID, model.UpdateMenuRequest{CategoryID: &bad})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestMenuService_Delete(t *testing.T) {
	svc, menuRepo, _, categoryID := newMenuFixture(t)
	menu, err := svc.CreateUnderCategory(context.Background(), categoryID, model.CreateMenuRequest{Name: "Plov"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), menu.ID))
	assert.Empty(t, menuRepo.menus)

	assert.ErrorIs(t, svc.Delete(context.Background(), menu.ID), ErrMenuNotFound)
}
