package api

import (
	"errors"
	"net/http"

	"ms-concerts/internal/models"
	"ms-concerts/internal/store"
	"ms-concerts/internal/validate"
)

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.GetVenues())
}

func (h *Handler) TopVenues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.GetTopVenues(queryLimit(r, 3)))
}

func (h *Handler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	venue, err := h.Store.GetVenue(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Venue not found")
		return
	}
	writeJSON(w, http.StatusOK, models.VenueWithConcerts{
		Venue:    *venue,
		Concerts: h.Store.GetConcertsByVenue(id),
	})
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var in models.VenueInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if errs := validate.Struct(in); errs != nil {
		respondValidation(w, "Invalid venue data", errs)
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateVenue(in))
}

func (h *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var patch models.VenuePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	venue, err := h.Store.UpdateVenue(id, patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "Venue not found")
		return
	}
	writeJSON(w, http.StatusOK, venue)
}

func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	switch err := h.Store.DeleteVenue(id); {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "Venue not found")
	case errors.Is(err, store.ErrInUse):
		respondError(w, http.StatusConflict, "Venue still has concerts scheduled")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
