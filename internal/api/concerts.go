package api

import (
	"net/http"

	"ms-concerts/internal/models"
	"ms-concerts/internal/pricing"
	"ms-concerts/internal/validate"
)

func (h *Handler) ListConcerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.GetConcerts())
}

func (h *Handler) FeaturedConcerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.GetFeaturedConcerts(queryLimit(r, 3)))
}

func (h *Handler) UpcomingConcerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.GetUpcomingConcerts(queryLimit(r, 6)))
}

func (h *Handler) GetConcert(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	detail, err := h.Store.GetConcertWithDetails(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Concert not found")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) CreateConcert(w http.ResponseWriter, r *http.Request) {
	var in models.ConcertInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if errs := validate.Struct(in); errs != nil {
		respondValidation(w, "Invalid concert data", errs)
		return
	}
	writeJSON(w, http.StatusCreated, h.Store.CreateConcert(in))
}

func (h *Handler) UpdateConcert(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var patch models.ConcertPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if errs := validate.Struct(patch); errs != nil {
		respondValidation(w, "Invalid concert data", errs)
		return
	}
	concert, err := h.Store.UpdateConcert(id, patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "Concert not found")
		return
	}
	writeJSON(w, http.StatusOK, concert)
}

func (h *Handler) DeleteConcert(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteConcert(id); err != nil {
		respondError(w, http.StatusNotFound, "Concert not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type quoteRequest struct {
	Selections []quoteSelection `json:"selections" validate:"required,min=1,dive"`
}

type quoteSelection struct {
	TicketTypeID int64 `json:"ticketTypeId" validate:"required,gt=0"`
	Quantity     int   `json:"quantity" validate:"gte=0"`
}

// QuoteCheckout prices a prospective ticket selection for a concert so the
// client can show subtotal, fee and total before submitting an order.
func (h *Handler) QuoteCheckout(w http.ResponseWriter, r *http.Request) {
	concertID, ok := urlID(w, r, "concertId")
	if !ok {
		return
	}
	if _, err := h.Store.GetConcert(concertID); err != nil {
		respondError(w, http.StatusNotFound, "Concert not found")
		return
	}
	var req quoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, "Invalid quote request", errs)
		return
	}
	selections := make(map[int64]int, len(req.Selections))
	for _, sel := range req.Selections {
		selections[sel.TicketTypeID] += sel.Quantity
	}
	totals := pricing.CheckoutTotals(h.Store.GetTicketTypesByConcert(concertID), selections)
	writeJSON(w, http.StatusOK, totals)
}
