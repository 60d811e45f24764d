package models

// Genre represents a video-game genre (e.g. "RPG", "Plataformas").
type Genre struct {
	// ID is the unique identifier of the genre (UUID string).
	ID string `json:"id"`

	// Name is the unique display name of the genre.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Genre model.
func (g Genre) TableName() string {
	return "genres"
}
