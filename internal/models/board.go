package models

import "time"

// ScoreCondition tells which end of the ranking wins.
type ScoreCondition string

const (
	HighestWins ScoreCondition = "HIGHEST_WINS"
	LowestWins  ScoreCondition = "LOWEST_WINS"
)

// Valid reports whether c is a known condition.
func (c ScoreCondition) Valid() bool {
	return c == HighestWins || c == LowestWins
}

// OrDefault returns c, or HighestWins when c is empty.
func (c ScoreCondition) OrDefault() ScoreCondition {
	if c == "" {
		return HighestWins
	}
	return c
}

// BoardDB represents a board row joined with its owner's username.
type BoardDB struct {
	ID             int64          `db:"id"`
	Name           string         `db:"name"`
	OwnerID        int64          `db:"owner_id"`
	OwnerUsername  string         `db:"owner_username"`
	TargetScore    *int           `db:"target_score"`
	ScoreCondition ScoreCondition `db:"score_condition"`
	NumberOfRounds *int           `db:"number_of_rounds"`
	DisplayOrder   int            `db:"display_order"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

// BoardRequest carries the editable rules of a board, used for both
// creation and update.
type BoardRequest struct {
	Name           string         `json:"name"`
	TargetScore    *int           `json:"targetScore,omitempty"`
	ScoreCondition ScoreCondition `json:"scoreCondition,omitempty"`
	NumberOfRounds *int           `json:"numberOfRounds,omitempty"`
}

// BoardOrderRequest lists board ids in the order the user wants them displayed.
type BoardOrderRequest struct {
	BoardIDs []int64 `json:"boardIds"`
}

// BoardImportRequest is a complete board graph, typically built offline by a client.
type BoardImportRequest struct {
	Name           string              `json:"name"`
	TargetScore    *int                `json:"targetScore,omitempty"`
	ScoreCondition ScoreCondition      `json:"scoreCondition,omitempty"`
	NumberOfRounds *int                `json:"numberOfRounds,omitempty"`
	Participants   []ParticipantImport `json:"participants"`
}

// ParticipantImport is one participant of an imported board.
type ParticipantImport struct {
	Name   string        `json:"name"`
	Scores []ScoreImport `json:"scores"`
}

// ScoreImport is one score entry of an imported participant.
type ScoreImport struct {
	ScoreValue  int `json:"scoreValue"`
	RoundNumber int `json:"roundNumber"`
}

// BoardResponse is the projection of a board with its ranked participants.
type BoardResponse struct {
	ID             int64                 `json:"id"`
	Name           string                `json:"name"`
	TargetScore    *int                  `json:"targetScore"`
	ScoreCondition ScoreCondition        `json:"scoreCondition"`
	NumberOfRounds *int                  `json:"numberOfRounds"`
	DisplayOrder   int                   `json:"displayOrder"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
	OwnerUsername  string                `json:"ownerUsername"`
	Participants   []ParticipantResponse `json:"participants"`
}
