package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ms-concerts/internal/auth"
)

// Router wires every endpoint. Catalog reads are public; catalog writes need
// an admin token; order operations need any valid token.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Route("/api", func(r chi.Router) {
		// Session endpoints
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		// Public catalog
		r.Get("/artists", h.ListArtists)
		r.Get("/artists/featured", h.FeaturedArtists)
		r.Get("/artists/{id}", h.GetArtist)
		r.Get("/venues", h.ListVenues)
		r.Get("/venues/top", h.TopVenues)
		r.Get("/venues/{id}", h.GetVenue)
		r.Get("/concerts", h.ListConcerts)
		r.Get("/concerts/featured", h.FeaturedConcerts)
		r.Get("/concerts/upcoming", h.UpcomingConcerts)
		r.Get("/concerts/{id}", h.GetConcert)
		r.Get("/concerts/{concertId}/tickets", h.ListTicketTypes)
		r.Post("/concerts/{concertId}/quote", h.QuoteCheckout)
		r.Get("/categories", h.ListCategories)

		// Authenticated
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.Tokens, h.Revoked))

			r.Post("/logout", h.Logout)
			r.Get("/user", h.CurrentUser)
			r.Put("/user", h.UpdateCurrentUser)
			r.Put("/user/password", h.ChangePassword)

			r.Get("/orders", h.ListOrders)
			r.Post("/orders", h.CreateOrder)
			r.Get("/orders/{id}", h.GetOrder)
			r.Get("/orders/{id}/tickets", h.OrderTickets)

			// Admin catalog management
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)

				r.Post("/artists", h.CreateArtist)
				r.Put("/artists/{id}", h.UpdateArtist)
				r.Delete("/artists/{id}", h.DeleteArtist)

				r.Post("/venues", h.CreateVenue)
				r.Put("/venues/{id}", h.UpdateVenue)
				r.Delete("/venues/{id}", h.DeleteVenue)

				r.Post("/concerts", h.CreateConcert)
				r.Put("/concerts/{id}", h.UpdateConcert)
				r.Delete("/concerts/{id}", h.DeleteConcert)

				r.Post("/tickets", h.CreateTicketType)
				r.Put("/tickets/{id}", h.UpdateTicketType)
				r.Delete("/tickets/{id}", h.DeleteTicketType)

				r.Post("/categories", h.CreateCategory)
			})
		})
	})
	return r
}
