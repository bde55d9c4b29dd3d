package models

// TicketType is a priced tier of tickets for one concert. Quantity is the
// advertised pool size; nothing decrements it on purchase.
type TicketType struct {
	ID          int64   `json:"id"`
	ConcertID   int64   `json:"concertId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description,omitempty"`
	Section     string  `json:"section,omitempty"`
	RowStart    int     `json:"rowStart,omitempty"`
	RowEnd      int     `json:"rowEnd,omitempty"`
	SeatsPerRow int     `json:"seatsPerRow,omitempty"`
	IsReserved  bool    `json:"isReserved"`
}

type TicketTypeInput struct {
	ConcertID   int64   `json:"concertId" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Description string  `json:"description"`
	Section     string  `json:"section"`
	RowStart    int     `json:"rowStart" validate:"gte=0"`
	RowEnd      int     `json:"rowEnd" validate:"gte=0"`
	SeatsPerRow int     `json:"seatsPerRow" validate:"gte=0"`
	IsReserved  bool    `json:"isReserved"`
}

type TicketTypePatch struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Description *string  `json:"description"`
	Section     *string  `json:"section"`
	RowStart    *int     `json:"rowStart"`
	RowEnd      *int     `json:"rowEnd"`
	SeatsPerRow *int     `json:"seatsPerRow"`
	IsReserved  *bool    `json:"isReserved"`
}
