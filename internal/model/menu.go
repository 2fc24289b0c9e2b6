package model

// Menu represents a single menu item belonging to a category
type Menu struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Ingredients string  `json:"ingredients"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
	OutOfStock  bool    `json:"out_of_stock"`
	Badge       string  `json:"badge"`
	CategoryID  int     `json:"category_id"`
}

// MenuResponse is the wire shape consumed by the front-ends. Field names
// (_id, outOfStock, category_id) are a fixed external contract.
type MenuResponse struct {
	ID          int     `json:"_id"`
	Name        string  `json:"name"`
	Ingredients string  `json:"ingredients"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
	OutOfStock  bool    `json:"outOfStock"`
	Badge       string  `json:"badge"`
	CategoryID  int     `json:"category_id"`
}

// ToResponse maps a menu item to its wire shape
func (m *Menu) ToResponse() MenuResponse {
	return MenuResponse{
		ID:          m.ID,
		Name:        m.Name,
		Ingredients: m.Ingredients,
		Price:       m.Price,
		Image:       m.Image,
		Available:   m.Available,
		OutOfStock:  m.OutOfStock,
		Badge:       m.Badge,
		CategoryID:  m.CategoryID,
	}
}

// CreateMenuRequest is the payload for creating a menu item. Boolean and
// numeric fields come in loosely typed, and outOfStock/category_id accept a
// snake_case/legacy fallback key with the external camelCase name winning.
type CreateMenuRequest struct {
	Name          string     `json:"name"`
	Ingredients   string     `json:"ingredients"`
	Price         FlexFloat  `json:"price"`
	Image         string     `json:"image"`
	Available     *FlexBool  `json:"available"`
	OutOfStock    *FlexBool  `json:"outOfStock"`
	OutOfStockAlt *FlexBool  `json:"out_of_stock"`
	Badge         string     `json:"badge"`
	CategoryID    *FlexInt   `json:"category_id"`
	CategoryAlt   *FlexInt   `json:"category"`
}

// OutOfStockValue resolves the outOfStock/out_of_stock key pair; the
// external camelCase name takes precedence.
func (r *CreateMenuRequest) OutOfStockValue() bool {
	if r.OutOfStock != nil {
		return bool(*r.OutOfStock)
	}
	if r.OutOfStockAlt != nil {
		return bool(*r.OutOfStockAlt)
	}
	return false
}

// CategoryValue resolves the category_id/category key pair
func (r *CreateMenuRequest) CategoryValue() int {
	if r.CategoryID != nil {
		return int(*r.CategoryID)
	}
	if r.CategoryAlt != nil {
		return int(*r.CategoryAlt)
	}
	return 0
}

// UpdateMenuRequest is the payload for a partial menu update. Pointer fields
// distinguish "absent" from "explicitly set".
type UpdateMenuRequest struct {
	Name          *string    `json:"name"`
	Ingredients   *string    `json:"ingredients"`
	Price         *FlexFloat `json:"price"`
	Image         *string    `json:"image"`
	Available     *FlexBool  `json:"available"`
	OutOfStock    *FlexBool  `json:"outOfStock"`
	OutOfStockAlt *FlexBool  `json:"out_of_stock"`
	Badge         *string    `json:"badge"`
	CategoryID    *FlexInt   `json:"category_id"`
	CategoryAlt   *FlexInt   `json:"category"`
}

// OutOfStockValue resolves the outOfStock/out_of_stock key pair, or nil if
// neither key was sent.
func (r *UpdateMenuRequest) OutOfStockValue() *bool {
	if r.OutOfStock != nil {
		v := bool(*r.OutOfStock)
		return &v
	}
	if r.OutOfStockAlt != nil {
		v := bool(*r.OutOfStockAlt)
		return &v
	}
	return nil
}

// CategoryValue resolves the category_id/category key pair, or nil if
// neither key was sent.
func (r *UpdateMenuRequest) CategoryValue() *int {
	if r.CategoryID != nil {
		v := int(*r.CategoryID)
		return &v
	}
	if r.CategoryAlt != nil {
		v := int(*r.CategoryAlt)
		return &v
	}
	return nil
}
