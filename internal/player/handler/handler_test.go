package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	playerModel "github.com/cricbid/ipl-auction/internal/player/model"
	"github.com/cricbid/ipl-auction/internal/player/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListPlayers(ctx context.Context) (*playerModel.PlayersPage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerModel.PlayersPage), args.Error(1)
}

func (m *mockService) AddPlayer(ctx context.Context, req *playerModel.AddPlayerRequest) (*playerModel.Player, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerModel.Player), args.Error(1)
}

func (m *mockService) AddPlayerForm() *playerModel.AddPlayerForm {
	args := m.Called()
	return args.Get(0).(*playerModel.AddPlayerForm)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/players", h.ListPlayers)
	r.GET("/add", h.AddPlayerForm)
	r.POST("/add", h.AddPlayer)
	return r
}

func TestHandler_ListPlayers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		mockSvc.On("ListPlayers", mock.Anything).Return(&playerModel.PlayersPage{
			Players: []playerModel.PlayerResponse{{ID: 1, Name: "Virat Kohli", Status: playerModel.StatusAvailable}},
			Teams:   []string{"Mumbai Indians (MI)"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/players", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var page playerModel.PlayersPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page.Players, 1)
		assert.Equal(t, "Virat Kohli", page.Players[0].Name)
		assert.Equal(t, []string{"Mumbai Indians (MI)"}, page.Teams)
	})

	t.Run("service failure", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))
		mockSvc.On("ListPlayers", mock.Anything).Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/players", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandler_AddPlayer(t *testing.T) {
	t.Run("form submission", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		mockSvc.On("AddPlayer", mock.Anything, mock.MatchedBy(func(req *playerModel.AddPlayerRequest) bool {
			return req.Name == "Umran Malik" && req.Credits == 7.5
		})).Return(&playerModel.Player{ID: 10, Name: "Umran Malik"}, nil)

		form := url.Values{
			"name":       {"Umran Malik"},
			"role":       {"Bowler"},
			"set_name":   {"Uncapped Bowler"},
			"base_price": {"30 Lakhs"},
			"credits":    {"7.5"},
		}
		req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Player Umran Malik added successfully!")
	})

	t.Run("missing required field", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		form := url.Values{"name": {"X"}}
		req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "AddPlayer")
	})

	t.Run("json submission", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		mockSvc.On("AddPlayer", mock.Anything, mock.Anything).
			Return(&playerModel.Player{ID: 11, Name: "Tilak Varma"}, nil)

		body := `{"name":"Tilak Varma","role":"Batsman","set_name":"Capped Batter","base_price":"2.00 Crore"}`
		req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestHandler_AddPlayerForm(t *testing.T) {
	mockSvc := new(mockService)
	router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))
	mockSvc.On("AddPlayerForm").Return(&playerModel.AddPlayerForm{
		Roles: []string{"Batsman", "Bowler"},
	})

	req := httptest.NewRequest(http.MethodGet, "/add", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Batsman")
}
