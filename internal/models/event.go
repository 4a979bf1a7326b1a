package models

// Activity event types published to the event stream.
const (
	EventUserRegistered     = "user.registered"
	EventUserEmailVerified  = "user.email_verified"
	EventPasswordReset      = "user.password_reset"
	EventBoardCreated       = "board.created"
	EventBoardUpdated       = "board.updated"
	EventBoardDeleted       = "board.deleted"
	EventBoardRestarted     = "board.restarted"
	EventBoardImported      = "board.imported"
	EventBoardDuplicated    = "board.duplicated"
	EventBoardsReordered    = "boards.reordered"
	EventParticipantAdded   = "participant.added"
	EventParticipantUpdated = "participant.updated"
	EventParticipantRemoved = "participant.removed"
	EventScoreSet           = "score.set"
	EventScoreDeleted       = "score.deleted"
)

// Event is an activity record: who did what to which board.
type Event struct {
	EventID   string `json:"event_id"`            // EventID is a unique identifier, also used as the message key.
	Type      string `json:"type"`                // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"`           // Timestamp is the Unix time (seconds) of the action.
	UserEmail string `json:"user_email"`          // UserEmail identifies the acting user.
	BoardID   int64  `json:"board_id,omitempty"`  // BoardID is set for board-scoped events.
	EntityID  int64  `json:"entity_id,omitempty"` // EntityID is the participant or score affected, if any.
}
