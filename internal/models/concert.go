package models

import "time"

// Concert schedule states. Transitions are plain overwrites through the
// generic update path; no transition table is enforced.
const (
	ConcertStatusUpcoming  = "upcoming"
	ConcertStatusOngoing   = "ongoing"
	ConcertStatusCompleted = "completed"
	ConcertStatusCancelled = "cancelled"
)

type Concert struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	VenueID     int64     `json:"venueId"`
	ArtistID    int64     `json:"artistId"`
	IsFeatured  bool      `json:"isFeatured"`
	Status      string    `json:"status"`
}

type ConcertInput struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	ImageURL    string    `json:"imageUrl" validate:"omitempty,url"`
	VenueID     int64     `json:"venueId" validate:"required,gt=0"`
	ArtistID    int64     `json:"artistId" validate:"required,gt=0"`
	IsFeatured  bool      `json:"isFeatured"`
	Status      string    `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type ConcertPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	ImageURL    *string    `json:"imageUrl"`
	VenueID     *int64     `json:"venueId"`
	ArtistID    *int64     `json:"artistId"`
	IsFeatured  *bool      `json:"isFeatured"`
	Status      *string    `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

// ConcertDetail joins a concert with its venue, artist and ticket tiers.
// Venue and artist are pointers: a concert can outlive either (deletes are
// guarded, but seeded or imported data may still dangle).
type ConcertDetail struct {
	Concert
	Venue       *Venue       `json:"venue,omitempty"`
	Artist      *Artist      `json:"artist,omitempty"`
	TicketTypes []TicketType `json:"ticketTypes"`
}

// ConcertSummary is the listing shape for featured/upcoming rails: the
// concert plus joined venue/artist and the price range over its tiers.
type ConcertSummary struct {
	Concert
	Venue    *Venue  `json:"venue,omitempty"`
	Artist   *Artist `json:"artist,omitempty"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}
