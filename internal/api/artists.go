package api

import (
	"errors"
	"net/http"

	"ms-concerts/internal/models"
	"ms-concerts/internal/store"
	"ms-concerts/internal/validate"
)

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.GetArtists())
}

func (h *Handler) FeaturedArtists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.GetFeaturedArtists(queryLimit(r, 4)))
}

func (h *Handler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	artist, err := h.Store.GetArtist(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Artist not found")
		return
	}
	writeJSON(w, http.StatusOK, models.ArtistWithConcerts{
		Artist:   *artist,
		Concerts: h.Store.GetConcertsByArtist(id),
	})
}

func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var in models.ArtistInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if errs := validate.Struct(in); errs != nil {
		respondValidation(w, "Invalid artist data", errs)
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateArtist(in))
}

func (h *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var patch models.ArtistPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	artist, err := h.Store.UpdateArtist(id, patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "Artist not found")
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (h *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	switch err := h.Store.DeleteArtist(id); {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "Artist not found")
	case errors.Is(err, store.ErrInUse):
		respondError(w, http.StatusConflict, "Artist still has concerts scheduled")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
