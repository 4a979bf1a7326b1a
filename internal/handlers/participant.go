package handlers

import (
	"context"
	"net/http"

	"github.com/JP-maker/gamegauge-api/internal/models"
)

//go:generate mockgen -source=participant.go -destination=mock_participant.go -package=handlers

// ParticipantManager edits the participants of a board and their scores.
type ParticipantManager interface {
	AddParticipant(ctx context.Context, email string, boardID int64, req models.ParticipantRequest) (*models.ParticipantResponse, error)
	UpdateParticipant(ctx context.Context, email string, boardID, participantID int64, req models.ParticipantRequest) (*models.ParticipantResponse, error)
	RemoveParticipant(ctx context.Context, email string, boardID, participantID int64) error
	SetScore(ctx context.Context, email string, boardID, participantID int64, value, round int) (*models.ScoreEntryResponse, error)
	DeleteScore(ctx context.Context, email string, boardID, participantID, scoreID int64) error
}

func decodeParticipantRequest(w http.ResponseWriter, r *http.Request) (models.ParticipantRequest, bool) {
	var req models.ParticipantRequest
	if !decodeJSON(w, r, &req) {
		return req, false
	}
	fe := fieldErrors{}
	fe.participantName("name", req.Name)
	if fe.write(w) {
		return req, false
	}
	return req, true
}

// NewAddParticipantHandler returns an HTTP handler adding a participant to a board.
// @Summary Add a participant
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boardID path int true "Board id"
// @Param participant body models.ParticipantRequest true "Participant"
// @Success 201 {object} models.ParticipantResponse
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{boardID}/participants [post]
func NewAddParticipantHandler(svc ParticipantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(w, r, "boardID")
		if !ok {
			return
		}
		req, ok := decodeParticipantRequest(w, r)
		if !ok {
			return
		}

		participant, err := svc.AddParticipant(r.Context(), email, boardID, req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, participant)
	}
}

// NewUpdateParticipantHandler returns an HTTP handler renaming a participant.
// @Summary Rename a participant
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boardID path int true "Board id"
// @Param participantID path int true "Participant id"
// @Param participant body models.ParticipantRequest true "Participant"
// @Success 200 {object} models.ParticipantResponse
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{boardID}/participants/{participantID} [put]
func NewUpdateParticipantHandler(svc ParticipantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(w, r, "boardID")
		if !ok {
			return
		}
		participantID, ok := pathID(w, r, "participantID")
		if !ok {
			return
		}
		req, ok := decodeParticipantRequest(w, r)
		if !ok {
			return
		}

		participant, err := svc.UpdateParticipant(r.Context(), email, boardID, participantID, req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, participant)
	}
}

// NewRemoveParticipantHandler returns an HTTP handler removing a participant and its scores.
// @Summary Remove a participant
// @Tags participants
// @Security BearerAuth
// @Param boardID path int true "Board id"
// @Param participantID path int true "Participant id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{boardID}/participants/{participantID} [delete]
func NewRemoveParticipantHandler(svc ParticipantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(w, r, "boardID")
		if !ok {
			return
		}
		participantID, ok := pathID(w, r, "participantID")
		if !ok {
			return
		}

		if err := svc.RemoveParticipant(r.Context(), email, boardID, participantID); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewSetScoreHandler returns an HTTP handler recording the score of one round.
// @Summary Set the score of a round
// @Description Overwrites the entry of the round when one exists.
// @Tags scores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boardID path int true "Board id"
// @Param participantID path int true "Participant id"
// @Param score body models.ScoreRequest true "Score and round"
// @Success 200 {object} models.ScoreEntryResponse
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{boardID}/participants/{participantID}/scores [put]
func NewSetScoreHandler(svc ParticipantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(w, r, "boardID")
		if !ok {
			return
		}
		participantID, ok := pathID(w, r, "participantID")
		if !ok {
			return
		}

		var req models.ScoreRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		fe := fieldErrors{}
		fe.score("", req.ScoreValue, req.RoundNumber)
		if fe.write(w) {
			return
		}

		entry, err := svc.SetScore(r.Context(), email, boardID, participantID, *req.ScoreValue, *req.RoundNumber)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

// NewDeleteScoreHandler returns an HTTP handler deleting one score entry.
// @Summary Delete a score entry
// @Tags scores
// @Security BearerAuth
// @Param boardID path int true "Board id"
// @Param participantID path int true "Participant id"
// @Param scoreID path int true "Score entry id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{boardID}/participants/{participantID}/scores/{scoreID} [delete]
func NewDeleteScoreHandler(svc ParticipantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(w, r, "boardID")
		if !ok {
			return
		}
		participantID, ok := pathID(w, r, "participantID")
		if !ok {
			return
		}
		scoreID, ok := pathID(w, r, "scoreID")
		if !ok {
			return
		}

		if err := svc.DeleteScore(r.Context(), email, boardID, participantID, scoreID); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
