package model

// Rating is a star rating left for a menu item
type Rating struct {
	ID     int `json:"id"`
	MenuID int `json:"menu_id"`
	Stars  int `json:"stars"`
}

// RatingResponse is the wire shape consumed by the front-ends
type RatingResponse struct {
	ID     int `json:"_id"`
	MenuID int `json:"menu_id"`
	Stars  int `json:"stars"`
}

// ToResponse maps a rating to its wire shape
func (r *Rating) ToResponse() RatingResponse {
	return RatingResponse{
		ID:     r.ID,
		MenuID: r.MenuID,
		Stars:  r.Stars,
	}
}

// CreateRatingRequest is the payload for submitting a rating; the menu id
// comes in under the external "menu" key.
type CreateRatingRequest struct {
	Menu  *FlexInt `json:"menu"`
	Stars *FlexInt `json:"stars"`
}

// RatingAverage is the aggregate returned for a menu item
type RatingAverage struct {
	AvgRating float64 `json:"avgRating"`
	Count     int     `json:"count"`
}
