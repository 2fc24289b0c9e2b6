package model

// Category groups menu items on the customer-facing site
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryResponse is the wire shape consumed by the front-ends. The _id
// field name is a fixed external contract and must not change.
type CategoryResponse struct {
	ID   int    `json:"_id"`
	Name string `json:"name"`
}

// ToResponse maps a category to its wire shape
func (c *Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

// CategoryRequest is the payload for creating or renaming a category
type CategoryRequest struct {
	Name string `json:"name"`
}
