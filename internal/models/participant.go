package models

import "time"

// ParticipantDB represents a participant row.
type ParticipantDB struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	BoardID   int64     `db:"board_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ParticipantRequest names a participant on creation or rename.
type ParticipantRequest struct {
	Name string `json:"name"`
}

// ParticipantResponse carries a participant, its entries and the derived total.
type ParticipantResponse struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	TotalScore int                  `json:"totalScore"`
	Scores     []ScoreEntryResponse `json:"scores"`
}
