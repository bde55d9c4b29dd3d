package models

type Venue struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Address     string `json:"address"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description,omitempty"`
	Amenities   string `json:"amenities,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type VenueInput struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`
	Description string `json:"description"`
	Amenities   string `json:"amenities"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

type VenuePatch struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Address     *string `json:"address"`
	Capacity    *int    `json:"capacity"`
	Description *string `json:"description"`
	Amenities   *string `json:"amenities"`
	ImageURL    *string `json:"imageUrl"`
}

type VenueWithConcerts struct {
	Venue
	Concerts []Concert `json:"concerts"`
}
