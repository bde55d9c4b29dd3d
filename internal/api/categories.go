package api

import (
	"net/http"

	"ms-concerts/internal/models"
	"ms-concerts/internal/validate"
)

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.GetCategories())
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in models.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if errs := validate.Struct(in); errs != nil {
		respondValidation(w, "Invalid category data", errs)
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateCategory(in))
}
