package service

import (
	"context"
	"testing"

	"restaurant_api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommentRepo struct {
	comments []*model.Comment
}

func (r *stubCommentRepo) Create(_ context.Context, c *model.Comment) error {
	c.ID = len(r.comments) + 1
	r.comments = append(r.comments, c)
	return nil
}

func (r *stubCommentRepo) FindAll(_ context.Context) ([]model.Comment, error) {
	out := []model.Comment{}
	for i := len(r.comments) - 1; i >= 0; i-- {
		out = append(out, *r.comments[i])
	}
	return out, nil
}

func flexBool(v bool) *model.FlexBool {
	b := model.FlexBool(v)
	return &b
}

func TestCommentService_Create(t *testing.T) {
	repo := &stubCommentRepo{}
	svc := NewCommentService(repo)

	comment, err := svc.Create(context.Background(), model.CreateCommentRequest{
		Name:    "Olim",
		Phone:   "+998933334455",
		Comment: "great plov",
	})

	require.NoError(t, err)
	assert.Equal(t, "Olim", comment.Name)
	assert.False(t, comment.Anonymous)
}

func TestCommentService_Create_RequiresNameAndPhone(t *testing.T) {
	svc := NewCommentService(&stubCommentRepo{})

	_, err := svc.Create(context.Background(), model.CreateCommentRequest{Comment: "great plov"})
	assert.ErrorIs(t, err, ErrCommentNotAnonymous)

	_, err = svc.Create(context.Background(), model.CreateCommentRequest{Name: "Olim", Comment: "great plov"})
	assert.ErrorIs(t, err, ErrCommentNotAnonymous)
}

func TestCommentService_Create_AnonymousBlanksIdentity(t *testing.T) {
	repo := &stubCommentRepo{}
	svc := NewCommentService(repo)

	comment, err := svc.Create(context.Background(), model.CreateCommentRequest{
		Name:      "Olim",
		Phone:     "+998933334455",
		Comment:   "too salty",
		Anonymous: flexBool(true),
	})

	require.NoError(t, err)
	assert.True(t, comment.Anonymous)
	// Anonymous comments must not retain the submitted identity
	assert.Empty(t, comment.Name)
	assert.Empty(t, comment.Phone)
}

func TestCommentService_List_NewestFirst(t *testing.T) {
	repo := &stubCommentRepo{}
	svc := NewCommentService(repo)

	_, err := svc.Create(context.Background(), model.CreateCommentRequest{Name: "A", Phone: "1", Comment: "first"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), model.CreateCommentRequest{Name: "B", Phone: "2", Comment: "second"})
	require.NoError(t, err)

	comments, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Comment)
}
