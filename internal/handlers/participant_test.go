package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JP-maker/gamegauge-api/internal/models"
	"github.com/JP-maker/gamegauge-api/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	board := map[string]string{"boardID": "7"}
	participant := map[string]string{"boardID": "7", "participantID": "11"}

	t.Run("add", func(t *testing.T) {
		svc := NewMockParticipantManager(ctrl)
		svc.EXPECT().AddParticipant(gomock.Any(), ownerEmail, int64(7), models.ParticipantRequest{Name: "Ann"}).
			Return(&models.ParticipantResponse{ID: 11, Name: "Ann", Scores: []models.ScoreEntryResponse{}}, nil)

		rr := httptest.NewRecorder()
		NewAddParticipantHandler(svc)(rr, newBoardRequest(http.MethodPost, "/api/boards/7/participants", `{"name":"Ann"}`, board))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"id":11,"name":"Ann","totalScore":0,"scores":[]}`, rr.Body.String())
	})

	t.Run("add with empty name", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewAddParticipantHandler(NewMockParticipantManager(ctrl))(rr,
			newBoardRequest(http.MethodPost, "/api/boards/7/participants", `{"name":""}`, board))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rename on another board", func(t *testing.T) {
		svc := NewMockParticipantManager(ctrl)
		svc.EXPECT().UpdateParticipant(gomock.Any(), ownerEmail, int64(7), int64(11), models.ParticipantRequest{Name: "Anna"}).
			Return(nil, services.ErrNotFound)

		rr := httptest.NewRecorder()
		NewUpdateParticipantHandler(svc)(rr,
			newBoardRequest(http.MethodPut, "/api/boards/7/participants/11", `{"name":"Anna"}`, participant))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("remove", func(t *testing.T) {
		svc := NewMockParticipantManager(ctrl)
		svc.EXPECT().RemoveParticipant(gomock.Any(), ownerEmail, int64(7), int64(11)).Return(nil)

		rr := httptest.NewRecorder()
		NewRemoveParticipantHandler(svc)(rr, newBoardRequest(http.MethodDelete, "/api/boards/7/participants/11", "", participant))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestScoreHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	participant := map[string]string{"boardID": "7", "participantID": "11"}

	t.Run("set", func(t *testing.T) {
		svc := NewMockParticipantManager(ctrl)
		svc.EXPECT().SetScore(gomock.Any(), ownerEmail, int64(7), int64(11), 120, 1).
			Return(&models.ScoreEntryResponse{ID: 5, ScoreValue: 120, RoundNumber: 1}, nil)

		rr := httptest.NewRecorder()
		NewSetScoreHandler(svc)(rr, newBoardRequest(http.MethodPut, "/api/boards/7/participants/11/scores",
			`{"scoreValue":120,"roundNumber":1}`, participant))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":5,"scoreValue":120,"roundNumber":1}`, rr.Body.String())
	})

	t.Run("zero is a valid score", func(t *testing.T) {
		svc := NewMockParticipantManager(ctrl)
		svc.EXPECT().SetScore(gomock.Any(), ownerEmail, int64(7), int64(11), 0, 2).
			Return(&models.ScoreEntryResponse{ID: 6, ScoreValue: 0, RoundNumber: 2}, nil)

		rr := httptest.NewRecorder()
		NewSetScoreHandler(svc)(rr, newBoardRequest(http.MethodPut, "/api/boards/7/participants/11/scores",
			`{"scoreValue":0,"roundNumber":2}`, participant))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing values", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewSetScoreHandler(NewMockParticipantManager(ctrl))(rr,
			newBoardRequest(http.MethodPut, "/api/boards/7/participants/11/scores", `{}`, participant))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, map[string]string{
			"scoreValue":  "must not be null",
			"roundNumber": "must not be null",
		}, resp.Fields)
	})

	t.Run("delete", func(t *testing.T) {
		params := map[string]string{"boardID": "7", "participantID": "11", "scoreID": "5"}
		svc := NewMockParticipantManager(ctrl)
		svc.EXPECT().DeleteScore(gomock.Any(), ownerEmail, int64(7), int64(11), int64(5)).Return(nil)

		rr := httptest.NewRecorder()
		NewDeleteScoreHandler(svc)(rr, newBoardRequest(http.MethodDelete, "/api/boards/7/participants/11/scores/5", "", params))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("delete with bad score id", func(t *testing.T) {
		params := map[string]string{"boardID": "7", "participantID": "11", "scoreID": "-1"}
		rr := httptest.NewRecorder()
		NewDeleteScoreHandler(NewMockParticipantManager(ctrl))(rr,
			newBoardRequest(http.MethodDelete, "/api/boards/7/participants/11/scores/-1", "", params))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestStoredValuesFitColumns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	board := map[string]string{"boardID": "7"}
	participant := map[string]string{"boardID": "7", "participantID": "11"}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		method  string
		target  string
		body    string
		params  map[string]string
		field   string
	}{
		{
			name:    "board name padded past the column",
			handler: NewCreateBoardHandler(NewMockBoardManager(ctrl)),
			method:  http.MethodPost,
			target:  "/api/boards",
			body:    `{"name":" ` + strings.Repeat("n", 100) + `"}`,
			field:   "name",
		},
		{
			name:    "participant name padded past the column",
			handler: NewAddParticipantHandler(NewMockParticipantManager(ctrl)),
			method:  http.MethodPost,
			target:  "/api/boards/7/participants",
			body:    `{"name":"` + strings.Repeat("p", 50) + ` "}`,
			params:  board,
			field:   "name",
		},
		{
			name:    "target score beyond int32",
			handler: NewCreateBoardHandler(NewMockBoardManager(ctrl)),
			method:  http.MethodPost,
			target:  "/api/boards",
			body:    `{"name":"Game Night","targetScore":2147483648}`,
			field:   "targetScore",
		},
		{
			name:    "score beyond int32",
			handler: NewSetScoreHandler(NewMockParticipantManager(ctrl)),
			method:  http.MethodPut,
			target:  "/api/boards/7/participants/11/scores",
			body:    `{"scoreValue":2147483648,"roundNumber":1}`,
			params:  participant,
			field:   "scoreValue",
		},
		{
			name:    "round below int32",
			handler: NewSetScoreHandler(NewMockParticipantManager(ctrl)),
			method:  http.MethodPut,
			target:  "/api/boards/7/participants/11/scores",
			body:    `{"scoreValue":1,"roundNumber":-2147483649}`,
			params:  participant,
			field:   "roundNumber",
		},
		{
			name:    "imported score beyond int32",
			handler: NewImportBoardHandler(NewMockBoardActions(ctrl)),
			method:  http.MethodPost,
			target:  "/api/boards/import",
			body:    `{"name":"Offline game","participants":[{"name":"Ann","scores":[{"scoreValue":9999999999,"roundNumber":1}]}]}`,
			field:   "participants[0].scores[0].scoreValue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.handler(rr, newBoardRequest(tt.method, tt.target, tt.body, tt.params))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			var resp ValidationErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp.Fields, tt.field)
		})
	}
}

func TestSetScoreHandler_Int32Edges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockParticipantManager(ctrl)
	svc.EXPECT().SetScore(gomock.Any(), ownerEmail, int64(7), int64(11), 2147483647, -2147483648).
		Return(&models.ScoreEntryResponse{ID: 1, ScoreValue: 2147483647, RoundNumber: -2147483648}, nil)

	rr := httptest.NewRecorder()
	NewSetScoreHandler(svc)(rr, newBoardRequest(http.MethodPut, "/api/boards/7/participants/11/scores",
		`{"scoreValue":2147483647,"roundNumber":-2147483648}`, map[string]string{"boardID": "7", "participantID": "11"}))

	assert.Equal(t, http.StatusOK, rr.Code)
}
