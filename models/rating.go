package models

// Score bounds accepted for a rating submission.
const (
	MinScore = 1
	MaxScore = 10
)

// Rating represents a user's score for a game. At most one rating may exist
// per (UserID, GameID) pair; the pair is covered by a unique constraint in
// the database, which remains the authoritative duplicate guard under
// concurrent submissions.
type Rating struct {
	// ID is the unique identifier of the rating (UUID string).
	ID string `json:"id"`

	// UserID references the user who submitted the rating.
	UserID string `json:"user_id"`

	// GameID references the rated game.
	GameID string `json:"game_id"`

	// Score is the numeric rating, between MinScore and MaxScore inclusive.
	Score int `json:"score"`

	// Comment is an optional free-text remark.
	Comment string `json:"comment,omitempty"`
}

// TableName returns the name of the database table
// associated with the Rating model.
func (r Rating) TableName() string {
	return "ratings"
}

// ScoreInRange reports whether the rating's score is within the accepted
// bounds.
func (r Rating) ScoreInRange() bool {
	return r.Score >= MinScore && r.Score <= MaxScore
}
