package models

import "time"

// Game represents a catalogued video game.
type Game struct {
	// ID is the unique identifier of the game (UUID string).
	ID string `json:"id"`

	// Title is the commercial title of the game.
	Title string `json:"title"`

	// DeveloperID references the studio that developed the game.
	DeveloperID string `json:"developer_id"`

	// GenreID references the genre the game belongs to.
	GenreID string `json:"genre_id"`

	// Platform is the platform the game was released on (e.g. "PC", "PS5").
	Platform string `json:"platform"`

	// ReleaseDate is the date the game was first published.
	ReleaseDate time.Time `json:"release_date"`

	// PEGIRating is the PEGI age classification (e.g. "PEGI 18").
	PEGIRating string `json:"pegi_rating"`

	// ImageURL is an optional URL pointing to cover art.
	ImageURL string `json:"image_url,omitempty"`
}

// TableName returns the name of the database table
// associated with the Game model.
func (g Game) TableName() string {
	return "games"
}
