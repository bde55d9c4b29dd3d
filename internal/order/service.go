package order

import (
	"errors"
	"fmt"
	"math"

	"ms-concerts/internal/logger"
	"ms-concerts/internal/models"
	"ms-concerts/internal/pricing"
	"ms-concerts/internal/store"
)

var (
	// ErrNoTicketItems rejects a checkout submission with nothing in it.
	ErrNoTicketItems = errors.New("order must contain ticket items")

	// ErrForbidden means the caller is authenticated but may not see this
	// order.
	ErrForbidden = errors.New("order does not belong to caller")
)

// DBLayer is the slice of the entity store the order service needs.
type DBLayer interface {
	GetTicketType(id int64) (*models.TicketType, error)
	CreateOrderWithItems(userID int64, totalAmount float64, paymentMethod string, items []models.TicketItemInput) (*models.OrderDetail, error)
	GetOrder(id int64) (*models.Order, error)
	GetOrdersByUser(userID int64) []models.Order
	GetOrderItemsByOrder(orderID int64) []models.OrderItem
}

// EventPublisher streams order lifecycle events to downstream consumers.
type EventPublisher interface {
	PublishOrderCreated(detail models.OrderDetail) error
}

// Service assembles orders from checkout submissions and reads them back
// with their line items.
type Service struct {
	DB     DBLayer
	Events EventPublisher
	Logger *logger.Logger
}

func NewService(db DBLayer, events EventPublisher, log *logger.Logger) *Service {
	return &Service{DB: db, Events: events, Logger: log}
}

// PlaceOrder validates the submission, persists the order plus all line items
// atomically, and announces the new order. The supplied totalAmount is stored
// as-is; a disagreement with the recomputed total is logged, not rejected.
// Ticket inventory is never checked or decremented here.
func (s *Service) PlaceOrder(userID int64, req models.OrderRequest) (*models.OrderDetail, error) {
	if len(req.TicketItems) == 0 {
		return nil, ErrNoTicketItems
	}
	for _, item := range req.TicketItems {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("ticket type %d: quantity must be positive", item.TicketTypeID)
		}
	}

	if expected := pricing.OrderTotal(req.TicketItems); math.Abs(expected-req.TotalAmount) > 0.01 {
		s.Logger.Warn("ORDER", fmt.Sprintf(
			"submitted total %.2f differs from computed total %.2f for user %d",
			req.TotalAmount, expected, userID))
	}

	detail, err := s.DB.CreateOrderWithItems(userID, req.TotalAmount, req.PaymentMethod, req.TicketItems)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("ORDER", fmt.Sprintf("order %d created for user %d with %d items", detail.ID, userID, len(detail.Items)))

	if err := s.Events.PublishOrderCreated(*detail); err != nil {
		// Event delivery is best-effort; the order is already committed.
		s.Logger.Error("KAFKA", fmt.Sprintf("failed to publish order created event for order %d: %v", detail.ID, err))
	}
	return detail, nil
}

// GetOrderForUser returns an order with its items when the caller owns it or
// is an admin. The forbidden case is distinct from not-found so the handler
// can choose how much to reveal.
func (s *Service) GetOrderForUser(orderID, callerID int64, isAdmin bool) (*models.OrderDetail, error) {
	o, err := s.DB.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != callerID && !isAdmin {
		return nil, ErrForbidden
	}
	return &models.OrderDetail{Order: *o, Items: s.DB.GetOrderItemsByOrder(o.ID)}, nil
}

// ListOrdersForUser returns the caller's orders, each with its items.
func (s *Service) ListOrdersForUser(userID int64) []models.OrderDetail {
	orders := s.DB.GetOrdersByUser(userID)
	out := make([]models.OrderDetail, 0, len(orders))
	for _, o := range orders {
		out = append(out, models.OrderDetail{Order: o, Items: s.DB.GetOrderItemsByOrder(o.ID)})
	}
	return out
}

// IsUnknownTicketType reports whether err is the store's unknown-ticket-type
// rejection, which handlers surface as a validation failure.
func IsUnknownTicketType(err error) bool {
	return errors.Is(err, store.ErrUnknownTicketType)
}
