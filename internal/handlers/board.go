package handlers

import (
	"context"
	"net/http"

	"github.com/JP-maker/gamegauge-api/internal/models"
)

//go:generate mockgen -source=board.go -destination=mock_board.go -package=handlers

// BoardManager covers the CRUD operations on the caller's boards.
type BoardManager interface {
	CreateBoard(ctx context.Context, email string, req models.BoardRequest) (*models.BoardResponse, error)
	ListBoards(ctx context.Context, email string) ([]models.BoardResponse, error)
	GetBoard(ctx context.Context, email string, boardID int64) (*models.BoardResponse, error)
	UpdateBoard(ctx context.Context, email string, boardID int64, req models.BoardRequest) (*models.BoardResponse, error)
	DeleteBoard(ctx context.Context, email string, boardID int64) error
}

// BoardActions covers the whole-board operations.
type BoardActions interface {
	RestartBoard(ctx context.Context, email string, boardID int64) (*models.BoardResponse, error)
	DuplicateBoard(ctx context.Context, email string, boardID int64) (*models.BoardResponse, error)
	ImportBoard(ctx context.Context, email string, req models.BoardImportRequest) (*models.BoardResponse, error)
	UpdateBoardsOrder(ctx context.Context, email string, boardIDs []int64) error
}

// decodeBoardRequest reads and validates a board create or update body.
func decodeBoardRequest(w http.ResponseWriter, r *http.Request) (models.BoardRequest, bool) {
	var req models.BoardRequest
	if !decodeJSON(w, r, &req) {
		return req, false
	}
	fe := fieldErrors{}
	fe.boardRules(req.Name, req.ScoreCondition, req.TargetScore, req.NumberOfRounds)
	if fe.write(w) {
		return req, false
	}
	return req, true
}

// NewListBoardsHandler returns the caller's boards in display order.
// @Summary List boards
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BoardResponse
// @Failure 401 "Unauthorized"
// @Router /api/boards [get]
func NewListBoardsHandler(svc BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}

		boards, err := svc.ListBoards(r.Context(), email)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		if boards == nil {
			boards = []models.BoardResponse{}
		}

		writeJSON(w, http.StatusOK, boards)
	}
}

// NewCreateBoardHandler returns an HTTP handler creating a board.
// @Summary Create a board
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param board body models.BoardRequest true "Board rules"
// @Success 201 {object} models.BoardResponse
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 401 "Unauthorized"
// @Router /api/boards [post]
func NewCreateBoardHandler(svc BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}
		req, ok := decodeBoardRequest(w, r)
		if !ok {
			return
		}

		board, err := svc.CreateBoard(r.Context(), email, req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, board)
	}
}

// NewGetBoardHandler returns one board with its ranked participants.
// @Summary Get a board
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param boardID path int true "Board id"
// @Success 200 {object} models.BoardResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{boardID} [get]
func NewGetBoardHandler(svc BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(w, r, "boardID")
		if !ok {
			return
		}

		board, err := svc.GetBoard(r.Context(), email, boardID)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, board)
	}
}

// NewUpdateBoardHandler returns an HTTP handler overwriting a board's rules.
// @Summary Update a board
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boardID path int true "Board id"
// @Param board body models.BoardRequest true "Board rules"
// @Success 200 {object} models.BoardResponse
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{boardID} [put]
func NewUpdateBoardHandler(svc BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(w, r, "boardID")
		if !ok {
			return
		}
		req, ok := decodeBoardRequest(w, r)
		if !ok {
			return
		}

		board, err := svc.UpdateBoard(r.Context(), email, boardID, req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, board)
	}
}

// NewDeleteBoardHandler returns an HTTP handler deleting a board and its contents.
// @Summary Delete a board
// @Tags boards
// @Security BearerAuth
// @Param boardID path int true "Board id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{boardID} [delete]
func NewDeleteBoardHandler(svc BoardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(w, r, "boardID")
		if !ok {
			return
		}

		if err := svc.DeleteBoard(r.Context(), email, boardID); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewRestartBoardHandler returns an HTTP handler clearing every score of a board.
// @Summary Restart a board
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param boardID path int true "Board id"
// @Success 200 {object} models.BoardResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{boardID}/restart [post]
func NewRestartBoardHandler(svc BoardActions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(w, r, "boardID")
		if !ok {
			return
		}

		board, err := svc.RestartBoard(r.Context(), email, boardID)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, board)
	}
}

// NewDuplicateBoardHandler returns an HTTP handler copying a board without its scores.
// @Summary Duplicate a board
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param boardID path int true "Board id"
// @Success 201 {object} models.BoardResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{boardID}/duplicate [post]
func NewDuplicateBoardHandler(svc BoardActions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}
		boardID, ok := pathID(w, r, "boardID")
		if !ok {
			return
		}

		board, err := svc.DuplicateBoard(r.Context(), email, boardID)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, board)
	}
}

// NewImportBoardHandler returns an HTTP handler creating a full board graph.
// @Summary Import a board
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param board body models.BoardImportRequest true "Board with participants and scores"
// @Success 201 {object} models.BoardResponse
// @Failure 400 {object} handlers.ValidationErrorResponse
// @Router /api/boards/import [post]
func NewImportBoardHandler(svc BoardActions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}

		var req models.BoardImportRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		fe := fieldErrors{}
		fe.boardImport(req)
		if fe.write(w) {
			return
		}

		board, err := svc.ImportBoard(r.Context(), email, req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, board)
	}
}

// NewUpdateBoardsOrderHandler returns an HTTP handler storing the display order.
// @Summary Reorder boards
// @Description Ids that are unknown, foreign or repeated are skipped.
// @Tags boards
// @Accept json
// @Security BearerAuth
// @Param order body models.BoardOrderRequest true "Board ids in display order"
// @Success 200
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/boards/order [put]
func NewUpdateBoardsOrderHandler(svc BoardActions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := subject(w, r)
		if !ok {
			return
		}

		var req models.BoardOrderRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.UpdateBoardsOrder(r.Context(), email, req.BoardIDs); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
