package api

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"ms-concerts/internal/auth"
	"ms-concerts/internal/models"
	"ms-concerts/internal/order"
	"ms-concerts/internal/store"
	"ms-concerts/internal/validate"
)

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized: Login required")
		return
	}
	writeJSON(w, http.StatusOK, h.Orders.ListOrdersForUser(identity.UserID))
}

// GetOrder returns an order with its items. A foreign order answers 404, same
// as a missing one, so callers cannot probe which order ids exist.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized: Login required")
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	detail, err := h.Orders.GetOrderForUser(id, identity.UserID, identity.IsAdmin)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized: Login required")
		return
	}
	var req models.OrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := validate.Struct(req); errs != nil {
		respondValidation(w, "Invalid order data", errs)
		return
	}

	detail, err := h.Orders.PlaceOrder(identity.UserID, req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, detail)
	case errors.Is(err, order.ErrNoTicketItems):
		respondError(w, http.StatusBadRequest, "Order must contain ticket items")
	case order.IsUnknownTicketType(err):
		respondError(w, http.StatusBadRequest, "Order references an unknown ticket type")
	default:
		h.Logger.Error("API", fmt.Sprintf("CreateOrder: %v", err))
		respondError(w, http.StatusInternalServerError, "Failed to create order")
	}
}

type orderTicketsResponse struct {
	OrderID int64         `json:"orderId"`
	Tickets []orderTicket `json:"tickets"`
}

type orderTicket struct {
	OrderItemID int64  `json:"orderItemId"`
	QRCode      string `json:"qrCode"` // base64 PNG
}

// OrderTickets renders one encrypted QR code per line item of the caller's
// order.
func (h *Handler) OrderTickets(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized: Login required")
		return
	}
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	detail, err := h.Orders.GetOrderForUser(id, identity.UserID, identity.IsAdmin)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, order.ErrForbidden) {
			respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to load order")
		return
	}

	resp := orderTicketsResponse{OrderID: detail.ID, Tickets: make([]orderTicket, 0, len(detail.Items))}
	for _, item := range detail.Items {
		png, err := h.QR.GenerateItemQR(detail.Order, item)
		if err != nil {
			h.Logger.Error("API", fmt.Sprintf("OrderTickets: QR generation failed for item %d: %v", item.ID, err))
			respondError(w, http.StatusInternalServerError, "Failed to generate tickets")
			return
		}
		resp.Tickets = append(resp.Tickets, orderTicket{
			OrderItemID: item.ID,
			QRCode:      base64.StdEncoding.EncodeToString(png),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
