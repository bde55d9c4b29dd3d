package store

import (
	"sort"
	"sync"
	"time"

	"ms-concerts/internal/models"
	"ms-concerts/internal/pricing"
)

// Store is the process-lifetime entity store: keyed maps with per-entity
// auto-increment counters behind one RWMutex. It is constructed once at
// startup and handed to every component that needs it; nothing else owns
// entity state. Callers always receive copies, so the only way to persist a
// change is through a write method.
type Store struct {
	mu sync.RWMutex

	users       map[int64]models.User
	artists     map[int64]models.Artist
	venues      map[int64]models.Venue
	concerts    map[int64]models.Concert
	ticketTypes map[int64]models.TicketType
	orders      map[int64]models.Order
	orderItems  map[int64]models.OrderItem
	categories  map[int64]models.Category

	userSeq       int64
	artistSeq     int64
	venueSeq      int64
	concertSeq    int64
	ticketTypeSeq int64
	orderSeq      int64
	orderItemSeq  int64
	categorySeq   int64
}

func New() *Store {
	return &Store{
		users:       make(map[int64]models.User),
		artists:     make(map[int64]models.Artist),
		venues:      make(map[int64]models.Venue),
		concerts:    make(map[int64]models.Concert),
		ticketTypes: make(map[int64]models.TicketType),
		orders:      make(map[int64]models.Order),
		orderItems:  make(map[int64]models.OrderItem),
		categories:  make(map[int64]models.Category),
	}
}

// ---------------- USERS ----------------

func (s *Store) GetUser(id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) CreateUser(in models.UserInput) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == in.Username {
			return nil, ErrUsernameTaken
		}
	}
	s.userSeq++
	u := models.User{
		ID:       s.userSeq,
		Username: in.Username,
		Password: in.Password,
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *Store) UpdateUser(id int64, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Address != nil {
		u.Address = *patch.Address
	}
	s.users[id] = u
	return &u, nil
}

// SetUserPassword stores a new password hash for the user.
func (s *Store) SetUserPassword(id int64, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Password = hash
	s.users[id] = u
	return nil
}

// PromoteUser flips the admin flag; used by seeding and operator tooling.
func (s *Store) PromoteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsAdmin = true
	s.users[id] = u
	return nil
}

// ---------------- ARTISTS ----------------

func (s *Store) GetArtist(id int64) (*models.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.artists[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *Store) GetArtists() []models.Artist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Artist, 0, len(s.artists))
	for _, a := range s.artists {
		out = append(out, a)
	}
	sortByID(out, func(a models.Artist) int64 { return a.ID })
	return out
}

// GetFeaturedArtists returns the first artists in insertion order, capped at
// limit. There is no featured flag on artists; placement follows seeding.
func (s *Store) GetFeaturedArtists(limit int) []models.Artist {
	all := s.GetArtists()
	if limit > 0 && len(all) > limit {
		return all[:limit]
	}
	return all
}

func (s *Store) CreateArtist(in models.ArtistInput) *models.Artist {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artistSeq++
	a := models.Artist{
		ID:       s.artistSeq,
		Name:     in.Name,
		Genre:    in.Genre,
		Bio:      in.Bio,
		ImageURL: in.ImageURL,
	}
	s.artists[a.ID] = a
	return &a
}

func (s *Store) UpdateArtist(id int64, patch models.ArtistPatch) (*models.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.artists[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Genre != nil {
		a.Genre = *patch.Genre
	}
	if patch.Bio != nil {
		a.Bio = *patch.Bio
	}
	if patch.ImageURL != nil {
		a.ImageURL = *patch.ImageURL
	}
	s.artists[id] = a
	return &a, nil
}

// DeleteArtist refuses to delete while concerts still bill the artist, so
// concert→artist references never dangle.
func (s *Store) DeleteArtist(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.artists[id]; !ok {
		return ErrNotFound
	}
	for _, c := range s.concerts {
		if c.ArtistID == id {
			return ErrInUse
		}
	}
	delete(s.artists, id)
	return nil
}

// ---------------- VENUES ----------------

func (s *Store) GetVenue(id int64) (*models.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.venues[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

func (s *Store) GetVenues() []models.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Venue, 0, len(s.venues))
	for _, v := range s.venues {
		out = append(out, v)
	}
	sortByID(out, func(v models.Venue) int64 { return v.ID })
	return out
}

func (s *Store) GetTopVenues(limit int) []models.Venue {
	all := s.GetVenues()
	if limit > 0 && len(all) > limit {
		return all[:limit]
	}
	return all
}

func (s *Store) CreateVenue(in models.VenueInput) *models.Venue {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venueSeq++
	v := models.Venue{
		ID:          s.venueSeq,
		Name:        in.Name,
		Location:    in.Location,
		Address:     in.Address,
		Capacity:    in.Capacity,
		Description: in.Description,
		Amenities:   in.Amenities,
		ImageURL:    in.ImageURL,
	}
	s.venues[v.ID] = v
	return &v
}

func (s *Store) UpdateVenue(id int64, patch models.VenuePatch) (*models.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.venues[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Location != nil {
		v.Location = *patch.Location
	}
	if patch.Address != nil {
		v.Address = *patch.Address
	}
	if patch.Capacity != nil {
		v.Capacity = *patch.Capacity
	}
	if patch.Description != nil {
		v.Description = *patch.Description
	}
	if patch.Amenities != nil {
		v.Amenities = *patch.Amenities
	}
	if patch.ImageURL != nil {
		v.ImageURL = *patch.ImageURL
	}
	s.venues[id] = v
	return &v, nil
}

func (s *Store) DeleteVenue(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[id]; !ok {
		return ErrNotFound
	}
	for _, c := range s.concerts {
		if c.VenueID == id {
			return ErrInUse
		}
	}
	delete(s.venues, id)
	return nil
}

// ---------------- CONCERTS ----------------

func (s *Store) GetConcert(id int64) (*models.Concert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.concerts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *Store) GetConcerts() []models.Concert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Concert, 0, len(s.concerts))
	for _, c := range s.concerts {
		out = append(out, c)
	}
	sortByID(out, func(c models.Concert) int64 { return c.ID })
	return out
}

// GetConcertWithDetails joins the concert with its venue, artist and ticket
// tiers. Venue/artist stay nil when the reference cannot be resolved.
func (s *Store) GetConcertWithDetails(id int64) (*models.ConcertDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.concerts[id]
	if !ok {
		return nil, ErrNotFound
	}
	detail := models.ConcertDetail{
		Concert:     c,
		TicketTypes: s.ticketTypesForConcertLocked(id),
	}
	if v, ok := s.venues[c.VenueID]; ok {
		v := v
		detail.Venue = &v
	}
	if a, ok := s.artists[c.ArtistID]; ok {
		a := a
		detail.Artist = &a
	}
	return &detail, nil
}

// GetFeaturedConcerts returns up to limit featured concerts in insertion
// order, each decorated with venue, artist and tier price range.
func (s *Store) GetFeaturedConcerts(limit int) []models.ConcertSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var featured []models.Concert
	for _, c := range s.concerts {
		if c.IsFeatured {
			featured = append(featured, c)
		}
	}
	sortByID(featured, func(c models.Concert) int64 { return c.ID })
	if limit > 0 && len(featured) > limit {
		featured = featured[:limit]
	}
	return s.summarizeLocked(featured)
}

// GetUpcomingConcerts returns up to limit concerts still marked upcoming,
// soonest first, decorated like GetFeaturedConcerts.
func (s *Store) GetUpcomingConcerts(limit int) []models.ConcertSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var upcoming []models.Concert
	for _, c := range s.concerts {
		if c.Status == models.ConcertStatusUpcoming {
			upcoming = append(upcoming, c)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return s.summarizeLocked(upcoming)
}

func (s *Store) summarizeLocked(concerts []models.Concert) []models.ConcertSummary {
	out := make([]models.ConcertSummary, 0, len(concerts))
	for _, c := range concerts {
		summary := models.ConcertSummary{Concert: c}
		if v, ok := s.venues[c.VenueID]; ok {
			v := v
			summary.Venue = &v
		}
		if a, ok := s.artists[c.ArtistID]; ok {
			a := a
			summary.Artist = &a
		}
		summary.MinPrice, summary.MaxPrice = pricing.PriceRange(s.ticketTypesForConcertLocked(c.ID))
		out = append(out, summary)
	}
	return out
}

func (s *Store) GetConcertsByArtist(artistID int64) []models.Concert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Concert
	for _, c := range s.concerts {
		if c.ArtistID == artistID {
			out = append(out, c)
		}
	}
	sortByID(out, func(c models.Concert) int64 { return c.ID })
	return out
}

func (s *Store) GetConcertsByVenue(venueID int64) []models.Concert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Concert
	for _, c := range s.concerts {
		if c.VenueID == venueID {
			out = append(out, c)
		}
	}
	sortByID(out, func(c models.Concert) int64 { return c.ID })
	return out
}

func (s *Store) CreateConcert(in models.ConcertInput) *models.Concert {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.concertSeq++
	status := in.Status
	if status == "" {
		status = models.ConcertStatusUpcoming
	}
	c := models.Concert{
		ID:          s.concertSeq,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		ImageURL:    in.ImageURL,
		VenueID:     in.VenueID,
		ArtistID:    in.ArtistID,
		IsFeatured:  in.IsFeatured,
		Status:      status,
	}
	s.concerts[c.ID] = c
	return &c
}

func (s *Store) UpdateConcert(id int64, patch models.ConcertPatch) (*models.Concert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.concerts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Date != nil {
		c.Date = *patch.Date
	}
	if patch.ImageURL != nil {
		c.ImageURL = *patch.ImageURL
	}
	if patch.VenueID != nil {
		c.VenueID = *patch.VenueID
	}
	if patch.ArtistID != nil {
		c.ArtistID = *patch.ArtistID
	}
	if patch.IsFeatured != nil {
		c.IsFeatured = *patch.IsFeatured
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	s.concerts[id] = c
	return &c, nil
}

// DeleteConcert removes the concert and cascades to its ticket tiers; a tier
// without a concert is unsellable either way.
func (s *Store) DeleteConcert(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.concerts[id]; !ok {
		return ErrNotFound
	}
	delete(s.concerts, id)
	for ttID, tt := range s.ticketTypes {
		if tt.ConcertID == id {
			delete(s.ticketTypes, ttID)
		}
	}
	return nil
}

// ---------------- TICKET TYPES ----------------

func (s *Store) GetTicketType(id int64) (*models.TicketType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tt, ok := s.ticketTypes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &tt, nil
}

func (s *Store) GetTicketTypesByConcert(concertID int64) []models.TicketType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ticketTypesForConcertLocked(concertID)
}

func (s *Store) ticketTypesForConcertLocked(concertID int64) []models.TicketType {
	out := make([]models.TicketType, 0, 4)
	for _, tt := range s.ticketTypes {
		if tt.ConcertID == concertID {
			out = append(out, tt)
		}
	}
	sortByID(out, func(tt models.TicketType) int64 { return tt.ID })
	return out
}

func (s *Store) CreateTicketType(in models.TicketTypeInput) *models.TicketType {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticketTypeSeq++
	tt := models.TicketType{
		ID:          s.ticketTypeSeq,
		ConcertID:   in.ConcertID,
		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
		Section:     in.Section,
		RowStart:    in.RowStart,
		RowEnd:      in.RowEnd,
		SeatsPerRow: in.SeatsPerRow,
		IsReserved:  in.IsReserved,
	}
	s.ticketTypes[tt.ID] = tt
	return &tt
}

func (s *Store) UpdateTicketType(id int64, patch models.TicketTypePatch) (*models.TicketType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tt, ok := s.ticketTypes[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		tt.Name = *patch.Name
	}
	if patch.Price != nil {
		tt.Price = *patch.Price
	}
	if patch.Quantity != nil {
		tt.Quantity = *patch.Quantity
	}
	if patch.Description != nil {
		tt.Description = *patch.Description
	}
	if patch.Section != nil {
		tt.Section = *patch.Section
	}
	if patch.RowStart != nil {
		tt.RowStart = *patch.RowStart
	}
	if patch.RowEnd != nil {
		tt.RowEnd = *patch.RowEnd
	}
	if patch.SeatsPerRow != nil {
		tt.SeatsPerRow = *patch.SeatsPerRow
	}
	if patch.IsReserved != nil {
		tt.IsReserved = *patch.IsReserved
	}
	s.ticketTypes[id] = tt
	return &tt, nil
}

func (s *Store) DeleteTicketType(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ticketTypes[id]; !ok {
		return ErrNotFound
	}
	delete(s.ticketTypes, id)
	return nil
}

// ---------------- ORDERS ----------------

func (s *Store) GetOrder(id int64) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (s *Store) GetOrdersByUser(userID int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortByID(out, func(o models.Order) int64 { return o.ID })
	return out
}

func (s *Store) GetOrderItemsByOrder(orderID int64) []models.OrderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.OrderItem
	for _, it := range s.orderItems {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	sortByID(out, func(it models.OrderItem) int64 { return it.ID })
	return out
}

// CreateOrderWithItems persists an order and all of its line items in one
// critical section: every ticket type reference is checked before the first
// write, so either the whole order becomes visible or nothing does. Status is
// forced to completed and the order date stamped here; totalAmount is stored
// as supplied by the caller. Inventory is not checked or decremented.
func (s *Store) CreateOrderWithItems(userID int64, totalAmount float64, paymentMethod string, items []models.TicketItemInput) (*models.OrderDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range items {
		if _, ok := s.ticketTypes[it.TicketTypeID]; !ok {
			return nil, ErrUnknownTicketType
		}
	}

	s.orderSeq++
	o := models.Order{
		ID:            s.orderSeq,
		UserID:        userID,
		OrderDate:     time.Now(),
		TotalAmount:   totalAmount,
		Status:        models.OrderStatusCompleted,
		PaymentMethod: paymentMethod,
	}
	s.orders[o.ID] = o

	detail := models.OrderDetail{Order: o, Items: make([]models.OrderItem, 0, len(items))}
	for _, it := range items {
		s.orderItemSeq++
		line := models.OrderItem{
			ID:           s.orderItemSeq,
			OrderID:      o.ID,
			TicketTypeID: it.TicketTypeID,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
		}
		s.orderItems[line.ID] = line
		detail.Items = append(detail.Items, line)
	}
	return &detail, nil
}

// ---------------- CATEGORIES ----------------

func (s *Store) GetCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sortByID(out, func(c models.Category) int64 { return c.ID })
	return out
}

func (s *Store) CreateCategory(in models.CategoryInput) *models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categorySeq++
	c := models.Category{
		ID:        s.categorySeq,
		Name:      in.Name,
		IconClass: in.IconClass,
	}
	s.categories[c.ID] = c
	return &c
}

// sortByID orders a slice ascending by id, which is also insertion order
// since ids are allocated from a monotonic counter.
func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
