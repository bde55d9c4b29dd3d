// Package api is the HTTP surface of the marketplace: public catalog reads,
// admin catalog mutations, and authenticated order operations.
package api

import (
	"ms-concerts/internal/auth"
	"ms-concerts/internal/eticket"
	"ms-concerts/internal/logger"
	"ms-concerts/internal/order"
	"ms-concerts/internal/store"
)

type Handler struct {
	Store   *store.Store
	Orders  *order.Service
	Tokens  *auth.TokenManager
	Revoked auth.RevocationCache
	QR      *eticket.Generator
	Logger  *logger.Logger
}

func NewHandler(
	st *store.Store,
	orders *order.Service,
	tokens *auth.TokenManager,
	revoked auth.RevocationCache,
	qr *eticket.Generator,
	log *logger.Logger,
) *Handler {
	return &Handler{
		Store:   st,
		Orders:  orders,
		Tokens:  tokens,
		Revoked: revoked,
		QR:      qr,
		Logger:  log,
	}
}
