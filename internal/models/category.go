package models

type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IconClass string `json:"iconClass"`
}

type CategoryInput struct {
	Name      string `json:"name" validate:"required"`
	IconClass string `json:"iconClass" validate:"required"`
}
