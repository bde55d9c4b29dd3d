package api

import (
	"net/http"

	"ms-concerts/internal/models"
	"ms-concerts/internal/validate"
)

func (h *Handler) ListTicketTypes(w http.ResponseWriter, r *http.Request) {
	concertID, ok := urlID(w, r, "concertId")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.Store.GetTicketTypesByConcert(concertID))
}

func (h *Handler) CreateTicketType(w http.ResponseWriter, r *http.Request) {
	var in models.TicketTypeInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if errs := validate.Struct(in); errs != nil {
		respondValidation(w, "Invalid ticket type data", errs)
		return
	}
	if _, err := h.Store.GetConcert(in.ConcertID); err != nil {
		respondError(w, http.StatusNotFound, "Concert not found")
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateTicketType(in))
}

func (h *Handler) UpdateTicketType(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var patch models.TicketTypePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	tt, err := h.Store.UpdateTicketType(id, patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "Ticket type not found")
		return
	}
	writeJSON(w, http.StatusOK, tt)
}

func (h *Handler) DeleteTicketType(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteTicketType(id); err != nil {
		respondError(w, http.StatusNotFound, "Ticket type not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
