package model

import "time"

// Comment is customer feedback submitted from the public site
type Comment struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Comment   string    `json:"comment"`
	Anonymous bool      `json:"anonymous"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentResponse is the wire shape consumed by the front-ends
type CommentResponse struct {
	ID        int    `json:"_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Comment   string `json:"comment"`
	Anonymous bool   `json:"anonymous"`
}

// ToResponse maps a comment to its wire shape
func (c *Comment) ToResponse() CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Comment:   c.Comment,
		Anonymous: c.Anonymous,
	}
}

// CreateCommentRequest is the payload for submitting a comment
type CreateCommentRequest struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Comment   string    `json:"comment"`
	Anonymous *FlexBool `json:"anonymous"`
}

// AnonymousValue reports whether the comment was flagged anonymous
func (r *CreateCommentRequest) AnonymousValue() bool {
	return r.Anonymous != nil && bool(*r.Anonymous)
}
