package service

import (
	"context"
	"fmt"
	"time"

	"restaurant_api/internal/model"
	"restaurant_api/internal/repository"
)

// CommentService provides customer comment submission and listing
type CommentService interface {
	Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error)
	List(ctx context.Context) ([]model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// Create stores a comment. Non-anonymous comments need a name and phone;
// anonymous comments have both blanked regardless of what was sent.
func (s *commentService) Create(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error) {
	anonymous := req.AnonymousValue()
	name := req.Name
	phone := req.Phone

	if !anonymous && (name == "" || phone == "") {
		return nil, ErrCommentNotAnonymous
	}
	if anonymous {
		name = ""
		phone = ""
	}

	comment := &model.Comment{
		Name:      name,
		Phone:     phone,
		Comment:   req.Comment,
		Anonymous: anonymous,
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// List returns all comments, newest first
func (s *commentService) List(ctx context.Context) ([]model.Comment, error) {
	comments, err := s.commentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
