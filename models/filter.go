package models

// GameFilter narrows a catalog listing. Zero-valued fields are ignored; the
// Title filter is a case-insensitive substring match.
type GameFilter struct {
	Title       string
	GenreID     string
	DeveloperID string
	Platform    string
}

// Empty reports whether no filter field is set.
func (f GameFilter) Empty() bool {
	return f == GameFilter{}
}
