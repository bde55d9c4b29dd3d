package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-concerts/internal/api"
	"ms-concerts/internal/auth"
	"ms-concerts/internal/eticket"
	"ms-concerts/internal/logger"
	"ms-concerts/internal/models"
	"ms-concerts/internal/order"
	"ms-concerts/internal/store"
)

type fixture struct {
	store  *store.Store
	tokens *auth.TokenManager
	server http.Handler

	concert    *models.Concert
	ticketType *models.TicketType
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := store.New()
	log := logger.Discard()
	tokens := auth.NewTokenManager("api-test-secret", time.Hour)
	revoked := auth.NewMemoryRevocationCache()
	orders := order.NewService(st, order.NoopPublisher{}, log)
	qr := eticket.NewGenerator("api-test-qr")
	h := api.NewHandler(st, orders, tokens, revoked, qr, log)

	artist := st.CreateArtist(models.ArtistInput{Name: "SB19", Genre: "P-pop"})
	venue := st.CreateVenue(models.VenueInput{
		Name:     "Araneta Coliseum",
		Location: "Quezon City",
		Address:  "General Aguinaldo Ave, Cubao",
		Capacity: 15000,
	})
	concert := st.CreateConcert(models.ConcertInput{
		Title:       "Homecoming Night",
		Description: "One night only",
		Date:        time.Now().Add(30 * 24 * time.Hour),
		VenueID:     venue.ID,
		ArtistID:    artist.ID,
		IsFeatured:  true,
		Status:      models.ConcertStatusUpcoming,
	})
	tt := st.CreateTicketType(models.TicketTypeInput{
		ConcertID: concert.ID,
		Name:      "VIP",
		Price:     5000,
		Quantity:  100,
	})

	return &fixture{store: st, tokens: tokens, server: h.Router(), concert: concert, ticketType: tt}
}

// registerUser creates an account through the API and returns its session.
func (f *fixture) registerUser(t *testing.T, username string) (models.User, string) {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/register", "", models.UserInput{
		Username: username,
		Password: "secret123",
		FullName: "Test User",
		Email:    username + "@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var session struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	return session.User, session.Token
}

func (f *fixture) adminToken(t *testing.T, userID int64) string {
	t.Helper()
	require.NoError(t, f.store.PromoteUser(userID))
	token, _, err := f.tokens.Issue(userID, true)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func TestRegisterLoginLogout(t *testing.T) {
	f := newFixture(t)

	user, token := f.registerUser(t, "maria")
	assert.Equal(t, "maria", user.Username)
	assert.False(t, user.IsAdmin)

	// Duplicate usernames are rejected.
	rec := f.do(t, http.MethodPost, "/api/register", "", models.UserInput{
		Username: "maria", Password: "secret123", FullName: "Another", Email: "other@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Login with the right password.
	rec = f.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": "maria", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Wrong password and unknown user answer identically.
	bad := f.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": "maria", "password": "nope12",
	})
	unknown := f.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": "nobody", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
	assert.Equal(t, bad.Body.String(), unknown.Body.String())

	// Logout revokes the token.
	rec = f.do(t, http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = f.do(t, http.MethodGet, "/api/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentUserAndUpdate(t *testing.T) {
	f := newFixture(t)
	_, token := f.registerUser(t, "maria")

	rec := f.do(t, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "maria", user.Username)

	phone := "09171234567"
	rec = f.do(t, http.MethodPut, "/api/user", token, models.UserPatch{Phone: &phone})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, phone, user.Phone)
	assert.Equal(t, "maria", user.Username, "untouched fields survive the patch")
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	_, token := f.registerUser(t, "maria")

	// Wrong current password is rejected.
	rec := f.do(t, http.MethodPut, "/api/user/password", token, map[string]string{
		"currentPassword": "wrong1", "newPassword": "newsecret",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/user/password", token, map[string]string{
		"currentPassword": "secret123", "newPassword": "newsecret",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// Old password stops working, the new one logs in.
	rec = f.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": "maria", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = f.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": "maria", "password": "newsecret",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicCatalog(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/concerts", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var concerts []models.Concert
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &concerts))
	require.Len(t, concerts, 1)

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/api/concerts/%d", f.concert.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail models.ConcertDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	require.NotNil(t, detail.Artist)
	assert.Equal(t, "SB19", detail.Artist.Name)
	require.NotNil(t, detail.Venue)
	require.Len(t, detail.TicketTypes, 1)

	rec = f.do(t, http.MethodGet, "/api/concerts/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/concerts/featured", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var featured []models.ConcertSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &featured))
	require.Len(t, featured, 1)
	assert.Equal(t, float64(5000), featured[0].MinPrice)
	assert.Equal(t, float64(5000), featured[0].MaxPrice)
}

func TestQuoteCheckout(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, fmt.Sprintf("/api/concerts/%d/quote", f.concert.ID), "", map[string]any{
		"selections": []map[string]any{
			{"ticketTypeId": f.ticketType.ID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var quote struct {
		Subtotal    float64 `json:"subtotal"`
		ServiceFee  float64 `json:"serviceFee"`
		Total       float64 `json:"total"`
		TicketCount int     `json:"ticketCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, float64(10000), quote.Subtotal)
	assert.Equal(t, float64(100), quote.ServiceFee)
	assert.Equal(t, float64(10100), quote.Total)
	assert.Equal(t, 2, quote.TicketCount)
}

func TestCreateOrder(t *testing.T) {
	f := newFixture(t)
	user, token := f.registerUser(t, "buyer")

	rec := f.do(t, http.MethodPost, "/api/orders", token, models.OrderRequest{
		TotalAmount:   10100,
		PaymentMethod: "gcash",
		TicketItems: []models.TicketItemInput{
			{TicketTypeID: f.ticketType.ID, Quantity: 2, UnitPrice: 5000},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var detail models.OrderDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, user.ID, detail.UserID)
	assert.Equal(t, models.OrderStatusCompleted, detail.Status)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, 2, detail.Items[0].Quantity)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newFixture(t)
	_, token := f.registerUser(t, "buyer")

	// No payment method, no items.
	rec := f.do(t, http.MethodPost, "/api/orders", token, map[string]any{"totalAmount": 100})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Errors)

	// Unknown ticket type.
	rec = f.do(t, http.MethodPost, "/api/orders", token, models.OrderRequest{
		TotalAmount:   150,
		PaymentMethod: "gcash",
		TicketItems:   []models.TicketItemInput{{TicketTypeID: 9999, Quantity: 1, UnitPrice: 100}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// No token at all.
	rec = f.do(t, http.MethodPost, "/api/orders", "", models.OrderRequest{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderOwnership(t *testing.T) {
	f := newFixture(t)
	_, ownerToken := f.registerUser(t, "owner")
	_, otherToken := f.registerUser(t, "other")
	admin, _ := f.registerUser(t, "admin")
	adminToken := f.adminToken(t, admin.ID)

	rec := f.do(t, http.MethodPost, "/api/orders", ownerToken, models.OrderRequest{
		TotalAmount:   5050,
		PaymentMethod: "card",
		TicketItems:   []models.TicketItemInput{{TicketTypeID: f.ticketType.ID, Quantity: 1, UnitPrice: 5000}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var detail models.OrderDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))

	path := fmt.Sprintf("/api/orders/%d", detail.ID)

	// Owner reads it back.
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, path, ownerToken, nil).Code)

	// A stranger gets the same 404 as a missing order.
	foreign := f.do(t, http.MethodGet, path, otherToken, nil)
	missing := f.do(t, http.MethodGet, "/api/orders/9999", otherToken, nil)
	assert.Equal(t, http.StatusNotFound, foreign.Code)
	assert.Equal(t, missing.Body.String(), foreign.Body.String())

	// Admin sees everything.
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, path, adminToken, nil).Code)

	// The owner's order list contains exactly their order.
	rec = f.do(t, http.MethodGet, "/api/orders", ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.OrderDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, detail.ID, list[0].ID)

	rec = f.do(t, http.MethodGet, "/api/orders", otherToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestOrderTickets(t *testing.T) {
	f := newFixture(t)
	_, token := f.registerUser(t, "buyer")

	rec := f.do(t, http.MethodPost, "/api/orders", token, models.OrderRequest{
		TotalAmount:   5050,
		PaymentMethod: "gcash",
		TicketItems:   []models.TicketItemInput{{TicketTypeID: f.ticketType.ID, Quantity: 1, UnitPrice: 5000}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var detail models.OrderDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%d/tickets", detail.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tickets struct {
		OrderID int64 `json:"orderId"`
		Tickets []struct {
			OrderItemID int64  `json:"orderItemId"`
			QRCode      string `json:"qrCode"`
		} `json:"tickets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tickets))
	assert.Equal(t, detail.ID, tickets.OrderID)
	require.Len(t, tickets.Tickets, 1)
	assert.NotEmpty(t, tickets.Tickets[0].QRCode)
}

func TestAdminCatalogGuard(t *testing.T) {
	f := newFixture(t)
	user, token := f.registerUser(t, "fan")
	adminToken := f.adminToken(t, user.ID)

	in := models.ArtistInput{Name: "Ben&Ben", Genre: "Folk pop"}

	// A plain user token from before the promotion still carries isAdmin=false.
	rec := f.do(t, http.MethodPost, "/api/artists", token, in)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Unauthenticated writes never reach the guard.
	rec = f.do(t, http.MethodPost, "/api/artists", "", in)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/artists", adminToken, in)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var artist models.Artist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &artist))
	assert.Equal(t, "Ben&Ben", artist.Name)

	// Invalid payloads report field failures.
	rec = f.do(t, http.MethodPost, "/api/artists", adminToken, models.ArtistInput{Name: "No Genre"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteArtistGuardedByConcerts(t *testing.T) {
	f := newFixture(t)
	user, _ := f.registerUser(t, "boss")
	adminToken := f.adminToken(t, user.ID)

	// The fixture artist is referenced by the fixture concert.
	rec := f.do(t, http.MethodDelete, fmt.Sprintf("/api/artists/%d", f.concert.ArtistID), adminToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	// An unreferenced artist deletes cleanly.
	loner := f.store.CreateArtist(models.ArtistInput{Name: "Solo Act", Genre: "Acoustic"})
	rec = f.do(t, http.MethodDelete, fmt.Sprintf("/api/artists/%d", loner.ID), adminToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
