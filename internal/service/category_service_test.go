package service

import (
	"context"
	"testing"

	"restaurant_api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCategoryRepo struct {
	categories map[int]*model.Category
	nextID     int
	deleted    []int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: map[int]*model.Category{}, nextID: 1}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	c.ID = r.nextID
	r.nextID++
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]model.Category, error) {
	out := []model.Category{}
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id int) (*model.Category, error) {
	return r.categories[id], nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) DeleteWithMenus(_ context.Context, id int) error {
	delete(r.categories, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func TestCategoryService_Create(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	category, err := svc.Create(context.Background(), "Salads")
	require.NoError(t, err)
	assert.Equal(t, "Salads", category.Name)
	assert.NotZero(t, category.ID)
}

func TestCategoryService_Create_BlankName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	_, err := svc.Create(context.Background(), "")
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Messages, "Name can't be blank")
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)
	_, err := svc.Create(context.Background(), "Salads")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "Salads")
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Messages, "Name has already been taken")
}

func TestCategoryService_Update_KeepsOwnName(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)
	created, _ := svc.Create(context.Background(), "Salads")

	// Renaming a category to its current name is not a uniqueness clash
	updated, err := svc.Update(context.Background(), created.ID, "Salads")
	require.NoError(t, err)
	assert.Equal(t, "Salads", updated.Name)
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	_, err := svc.Update(context.Background(), 99, "Soups")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryService_Delete_Cascades(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)
	created, _ := svc.Create(context.Background(), "Salads")

	err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{created.ID}, repo.deleted)
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo())

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
