package models

import "time"

// ScoreEntryDB represents a score_entries row.
type ScoreEntryDB struct {
	ID            int64     `db:"id"`
	ScoreValue    int       `db:"score_value"`
	RoundNumber   int       `db:"round_number"`
	ParticipantID int64     `db:"participant_id"`
	CreatedAt     time.Time `db:"created_at"`
}

// ScoreRequest sets the score of one round.
type ScoreRequest struct {
	ScoreValue  *int `json:"scoreValue"`
	RoundNumber *int `json:"roundNumber"`
}

// ScoreEntryResponse is the public view of a score entry.
type ScoreEntryResponse struct {
	ID          int64 `json:"id"`
	ScoreValue  int   `json:"scoreValue"`
	RoundNumber int   `json:"roundNumber"`
}
