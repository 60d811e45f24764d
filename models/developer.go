package models

// Developer represents a video-game development studio.
type Developer struct {
	// ID is the unique identifier of the developer (UUID string).
	ID string `json:"id"`

	// StudioName is the unique name of the studio.
	StudioName string `json:"studio_name"`

	// Country is the country the studio originates from.
	Country string `json:"country"`

	// FoundedYear is the year the studio was founded.
	FoundedYear int `json:"founded_year"`
}

// TableName returns the name of the database table
// associated with the Developer model.
func (d Developer) TableName() string {
	return "developers"
}
