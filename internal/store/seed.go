package store

import (
	"time"

	"ms-concerts/internal/models"
)

// Seed loads the demo catalog: categories, artists, venues, concerts and four
// ticket tiers per concert. Intended for fresh stores at process start; ids
// are whatever the counters hand out.
func (s *Store) Seed() {
	for _, c := range []models.CategoryInput{
		{Name: "Pop", IconClass: "fas fa-music"},
		{Name: "Rock", IconClass: "fas fa-guitar"},
		{Name: "Folk", IconClass: "fas fa-drum"},
		{Name: "Hip-Hop", IconClass: "fas fa-microphone-alt"},
		{Name: "Electronic", IconClass: "fas fa-compact-disc"},
		{Name: "Festivals", IconClass: "fas fa-theater-masks"},
	} {
		s.CreateCategory(c)
	}

	artists := []models.ArtistInput{
		{Name: "Sarah Geronimo", Genre: "Pop", Bio: "Sarah Geronimo is a Filipino singer, actress and television personality who debuted in 2003."},
		{Name: "Bamboo", Genre: "Rock", Bio: "Bamboo is one of the most influential rock vocalists in the Philippines, fronting Bamboo and Rivermaya."},
		{Name: "Ben&Ben", Genre: "Folk", Bio: "Ben&Ben is a nine-piece folk-pop band blending traditional Filipino folk with contemporary sounds."},
		{Name: "Gloc-9", Genre: "Hip-Hop", Bio: "Gloc-9 is a rapper, songwriter and producer, among the most respected Filipino rappers."},
		{Name: "Moira Dela Torre", Genre: "Pop", Bio: "Moira Dela Torre is a singer-songwriter known for emotional ballads."},
		{Name: "Eraserheads", Genre: "Rock", Bio: "Eraserheads is one of the most iconic Filipino bands of all time."},
	}
	for _, a := range artists {
		s.CreateArtist(a)
	}

	venues := []models.VenueInput{
		{
			Name:      "Araneta Coliseum",
			Location:  "Quezon City",
			Address:   "Araneta City, General Roxas Avenue, Cubao, Quezon City",
			Capacity:  15000,
			Amenities: "VIP boxes, multiple entrances, food concessionaires, parking facilities",
		},
		{
			Name:      "Mall of Asia Arena",
			Location:  "Pasay City",
			Address:   "Mall of Asia Complex, J.W. Diokno Boulevard, Pasay City",
			Capacity:  20000,
			Amenities: "Premium suites, corporate boxes, digital displays, merchandise stands",
		},
		{
			Name:      "Music Museum",
			Location:  "San Juan",
			Address:   "Greenhills Shopping Center, Greenhills, San Juan City",
			Capacity:  800,
			Amenities: "Theater-style seating, professional sound system, bar service",
		},
	}
	for _, v := range venues {
		s.CreateVenue(v)
	}

	now := time.Now()
	in := func(months, days int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), 20, 0, 0, 0, time.Local).AddDate(0, months, days)
	}

	concerts := []models.ConcertInput{
		{Title: "Pop Explosion", Description: "Sarah Geronimo's biggest concert of the year.", Date: in(1, 0), VenueID: 1, ArtistID: 1, IsFeatured: true},
		{Title: "Rock Legends", Description: "Bamboo returns with a powerful rock set of timeless hits and new material.", Date: in(2, 0), VenueID: 2, ArtistID: 2, IsFeatured: true},
		{Title: "Folk Tales", Description: "Ben&Ben presents an intimate acoustic evening of folk and storytelling.", Date: in(3, 0), VenueID: 3, ArtistID: 3},
		{Title: "Words & Melodies", Description: "Moira Dela Torre performs her ballads in an intimate setting.", Date: in(2, 7), VenueID: 3, ArtistID: 5, IsFeatured: true},
		{Title: "OPM Reunion", Description: "A one-night special featuring the legendary Eraserheads.", Date: in(3, 14), VenueID: 1, ArtistID: 6, IsFeatured: true},
		{Title: "Hip-Hop Night", Description: "Gloc-9 delivers sharp social commentary in a special performance.", Date: in(2, 15), VenueID: 3, ArtistID: 4},
	}
	for _, c := range concerts {
		created := s.CreateConcert(c)
		for _, tt := range []models.TicketTypeInput{
			{ConcertID: created.ID, Name: "VIP", Price: 5000, Quantity: 100, Description: "Best seats with meet & greet", Section: "Front", RowStart: 1, RowEnd: 5, SeatsPerRow: 20, IsReserved: true},
			{ConcertID: created.ID, Name: "Gold", Price: 3500, Quantity: 500, Description: "Premium seating close to stage", Section: "Center", RowStart: 6, RowEnd: 15, SeatsPerRow: 30, IsReserved: true},
			{ConcertID: created.ID, Name: "Silver", Price: 2000, Quantity: 1000, Description: "Good view of the stage", Section: "Rear", RowStart: 16, RowEnd: 30, SeatsPerRow: 35, IsReserved: true},
			{ConcertID: created.ID, Name: "General Admission", Price: 1000, Quantity: 2000, Description: "Standing area", Section: "Floor"},
		} {
			s.CreateTicketType(tt)
		}
	}
}
