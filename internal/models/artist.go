package models

type Artist struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Genre    string `json:"genre"`
	Bio      string `json:"bio,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type ArtistInput struct {
	Name     string `json:"name" validate:"required"`
	Genre    string `json:"genre" validate:"required"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

type ArtistPatch struct {
	Name     *string `json:"name"`
	Genre    *string `json:"genre"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"imageUrl"`
}

// ArtistWithConcerts is the artist detail payload: the artist plus every
// concert they are billed on.
type ArtistWithConcerts struct {
	Artist
	Concerts []Concert `json:"concerts"`
}
