package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JP-maker/gamegauge-api/internal/middlewares"
	"github.com/JP-maker/gamegauge-api/internal/models"
	"github.com/JP-maker/gamegauge-api/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerEmail = "owner@example.com"

// newBoardRequest builds an authenticated request with chi URL params set.
func newBoardRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middlewares.SetIdentity(ctx, middlewares.Identity{Subject: ownerEmail})
	return req.WithContext(ctx)
}

func sampleBoard(id int64) *models.BoardResponse {
	return &models.BoardResponse{
		ID:             id,
		Name:           "Game Night",
		ScoreCondition: models.HighestWins,
		OwnerUsername:  "owner",
		Participants:   []models.ParticipantResponse{},
	}
}

func TestListBoardsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("empty list is an array", func(t *testing.T) {
		svc := NewMockBoardManager(ctrl)
		svc.EXPECT().ListBoards(gomock.Any(), ownerEmail).Return(nil, nil)

		rr := httptest.NewRecorder()
		NewListBoardsHandler(svc)(rr, newBoardRequest(http.MethodGet, "/api/boards", "", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("boards in service order", func(t *testing.T) {
		svc := NewMockBoardManager(ctrl)
		svc.EXPECT().ListBoards(gomock.Any(), ownerEmail).Return([]models.BoardResponse{*sampleBoard(2), *sampleBoard(1)}, nil)

		rr := httptest.NewRecorder()
		NewListBoardsHandler(svc)(rr, newBoardRequest(http.MethodGet, "/api/boards", "", nil))

		var boards []models.BoardResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &boards))
		require.Len(t, boards, 2)
		assert.Equal(t, int64(2), boards[0].ID)
	})

	t.Run("anonymous", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewListBoardsHandler(NewMockBoardManager(ctrl))(rr, httptest.NewRequest(http.MethodGet, "/api/boards", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCreateBoardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockBoardManager)
		expectedCode int
	}{
		{
			name: "created",
			body: `{"name":"Game Night","scoreCondition":"LOWEST_WINS","targetScore":100}`,
			mockSetup: func(m *MockBoardManager) {
				target := 100
				m.EXPECT().CreateBoard(gomock.Any(), ownerEmail, models.BoardRequest{
					Name: "Game Night", ScoreCondition: models.LowestWins, TargetScore: &target,
				}).Return(sampleBoard(1), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "name too short",
			body:         `{"name":"GN"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown score condition",
			body:         `{"name":"Game Night","scoreCondition":"CLOSEST_WINS"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "owner vanished",
			body: `{"name":"Game Night"}`,
			mockSetup: func(m *MockBoardManager) {
				m.EXPECT().CreateBoard(gomock.Any(), ownerEmail, gomock.Any()).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockBoardManager(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := httptest.NewRecorder()
			NewCreateBoardHandler(svc)(rr, newBoardRequest(http.MethodPost, "/api/boards", tt.body, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestBoardByIDHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params := map[string]string{"boardID": "7"}

	t.Run("get", func(t *testing.T) {
		svc := NewMockBoardManager(ctrl)
		svc.EXPECT().GetBoard(gomock.Any(), ownerEmail, int64(7)).Return(sampleBoard(7), nil)

		rr := httptest.NewRecorder()
		NewGetBoardHandler(svc)(rr, newBoardRequest(http.MethodGet, "/api/boards/7", "", params))

		assert.Equal(t, http.StatusOK, rr.Code)
		var board models.BoardResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &board))
		assert.Equal(t, int64(7), board.ID)
	})

	t.Run("foreign board is not found", func(t *testing.T) {
		svc := NewMockBoardManager(ctrl)
		svc.EXPECT().GetBoard(gomock.Any(), ownerEmail, int64(7)).Return(nil, services.ErrNotFound)

		rr := httptest.NewRecorder()
		NewGetBoardHandler(svc)(rr, newBoardRequest(http.MethodGet, "/api/boards/7", "", params))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewGetBoardHandler(NewMockBoardManager(ctrl))(rr,
			newBoardRequest(http.MethodGet, "/api/boards/abc", "", map[string]string{"boardID": "abc"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("update", func(t *testing.T) {
		svc := NewMockBoardManager(ctrl)
		svc.EXPECT().UpdateBoard(gomock.Any(), ownerEmail, int64(7), models.BoardRequest{Name: "Renamed"}).
			Return(sampleBoard(7), nil)

		rr := httptest.NewRecorder()
		NewUpdateBoardHandler(svc)(rr, newBoardRequest(http.MethodPut, "/api/boards/7", `{"name":"Renamed"}`, params))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		svc := NewMockBoardManager(ctrl)
		svc.EXPECT().DeleteBoard(gomock.Any(), ownerEmail, int64(7)).Return(nil)

		rr := httptest.NewRecorder()
		NewDeleteBoardHandler(svc)(rr, newBoardRequest(http.MethodDelete, "/api/boards/7", "", params))

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("delete storage failure", func(t *testing.T) {
		svc := NewMockBoardManager(ctrl)
		svc.EXPECT().DeleteBoard(gomock.Any(), ownerEmail, int64(7)).Return(errors.New("deadlock detected"))

		rr := httptest.NewRecorder()
		NewDeleteBoardHandler(svc)(rr, newBoardRequest(http.MethodDelete, "/api/boards/7", "", params))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}

func TestBoardActionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params := map[string]string{"boardID": "7"}

	t.Run("restart", func(t *testing.T) {
		svc := NewMockBoardActions(ctrl)
		svc.EXPECT().RestartBoard(gomock.Any(), ownerEmail, int64(7)).Return(sampleBoard(7), nil)

		rr := httptest.NewRecorder()
		NewRestartBoardHandler(svc)(rr, newBoardRequest(http.MethodPost, "/api/boards/7/restart", "", params))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		dup := sampleBoard(8)
		dup.Name = "Game Night (Copy)"
		svc := NewMockBoardActions(ctrl)
		svc.EXPECT().DuplicateBoard(gomock.Any(), ownerEmail, int64(7)).Return(dup, nil)

		rr := httptest.NewRecorder()
		NewDuplicateBoardHandler(svc)(rr, newBoardRequest(http.MethodPost, "/api/boards/7/duplicate", "", params))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"name":"Game Night (Copy)"`)
	})

	t.Run("import", func(t *testing.T) {
		svc := NewMockBoardActions(ctrl)
		svc.EXPECT().ImportBoard(gomock.Any(), ownerEmail, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req models.BoardImportRequest) (*models.BoardResponse, error) {
				require.Len(t, req.Participants, 1)
				assert.Equal(t, "Ann", req.Participants[0].Name)
				assert.Equal(t, []models.ScoreImport{{ScoreValue: 5, RoundNumber: 1}}, req.Participants[0].Scores)
				return sampleBoard(9), nil
			})

		body := `{"name":"Offline game","participants":[{"name":"Ann","scores":[{"scoreValue":5,"roundNumber":1}]}]}`
		rr := httptest.NewRecorder()
		NewImportBoardHandler(svc)(rr, newBoardRequest(http.MethodPost, "/api/boards/import", body, nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("import with blank participant", func(t *testing.T) {
		body := `{"name":"Offline game","participants":[{"name":"  "}]}`
		rr := httptest.NewRecorder()
		NewImportBoardHandler(NewMockBoardActions(ctrl))(rr, newBoardRequest(http.MethodPost, "/api/boards/import", body, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Fields, "participants[0].name")
	})

	t.Run("order", func(t *testing.T) {
		svc := NewMockBoardActions(ctrl)
		svc.EXPECT().UpdateBoardsOrder(gomock.Any(), ownerEmail, []int64{3, 1, 2}).Return(nil)

		rr := httptest.NewRecorder()
		NewUpdateBoardsOrderHandler(svc)(rr, newBoardRequest(http.MethodPut, "/api/boards/order", `{"boardIds":[3,1,2]}`, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
