package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderalone/middleware"
	"orderalone/mocks"
	"orderalone/models"
	"orderalone/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testUserID uint = 7

func asUser(c *gin.Context) {
	c.Set(middleware.UserIDKey, testUserID)
	c.Next()
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{services.ErrInvalidMenu, http.StatusBadRequest},
		{services.ErrOwnershipMismatch, http.StatusBadRequest},
		{services.ErrNoFieldsToUpdate, http.StatusBadRequest},
		{services.ErrPasswordTooLong, http.StatusBadRequest},
		{errInvalidLimit, http.StatusBadRequest},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{errors.Join(services.ErrInvalidToken, errors.New("expired")), http.StatusUnauthorized},
		{services.ErrGameForbidden, http.StatusForbidden},
		{services.ErrMenuNotFound, http.StatusNotFound},
		{services.ErrGameNotFound, http.StatusNotFound},
		{services.ErrOrderNotFound, http.StatusNotFound},
		{services.ErrUserNotFound, http.StatusNotFound},
		{services.ErrAlreadyScored, http.StatusConflict},
		{services.ErrUserExists, http.StatusConflict},
		{services.ErrStorageDisabled, http.StatusServiceUnavailable},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(c, testCase.err)
			assert.Equal(t, testCase.expected, w.Code)
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		query    string
		expected int
		wantErr  bool
	}{
		{query: "", expected: 10},
		{query: "?limit=1", expected: 1},
		{query: "?limit=100", expected: 100},
		{query: "?limit=0", wantErr: true},
		{query: "?limit=101", wantErr: true},
		{query: "?limit=abc", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/"+testCase.query, nil)

			limit, err := parseLimit(c, defaultTopLimit, maxTopLimit)
			if testCase.wantErr {
				assert.ErrorIs(t, err, errInvalidLimit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, limit)
		})
	}
}

func TestCurrentUserID_Missing(t *testing.T) {
	r := gin.New()
	r.GET("/api/user/me", NewAuthHandler(mocks.NewAuthServiceInterface(t)).GetProfile)

	w := doJSON(t, r, http.MethodGet, "/api/user/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderHandler_ScoreAnswer(t *testing.T) {
	tests := []struct {
		name         string
		body         interface{}
		prepareMocks func(svc *mocks.OrderServiceInterface)
		expected     int
	}{
		{
			name: "correct",
			body: gin.H{"order_id": 3, "game_id": 2, "category": "Coffee", "menu_name": "Latte", "topping_names": []string{"Vanilla"}},
			prepareMocks: func(svc *mocks.OrderServiceInterface) {
				svc.On("ScoreAnswer", mock.Anything, testUserID, mock.MatchedBy(func(req *services.ScoreRequest) bool {
					return req.OrderID == 3 && req.GameID == 2 && len(req.ToppingNames) == 1
				})).Return(&services.ScoreResult{OrderID: 3, Correct: true, ScoreDelta: 2, Score: 2}, nil).Once()
			},
			expected: http.StatusOK,
		},
		{
			name: "already_scored",
			body: gin.H{"order_id": 3, "game_id": 2, "category": "Coffee", "menu_name": "Latte"},
			prepareMocks: func(svc *mocks.OrderServiceInterface) {
				svc.On("ScoreAnswer", mock.Anything, testUserID, mock.Anything).Return(nil, services.ErrAlreadyScored).Once()
			},
			expected: http.StatusConflict,
		},
		{
			name: "order_of_another_game",
			body: gin.H{"order_id": 3, "game_id": 9, "category": "Coffee", "menu_name": "Latte"},
			prepareMocks: func(svc *mocks.OrderServiceInterface) {
				svc.On("ScoreAnswer", mock.Anything, testUserID, mock.Anything).Return(nil, services.ErrOwnershipMismatch).Once()
			},
			expected: http.StatusBadRequest,
		},
		{
			name:         "missing_category_and_item",
			body:         gin.H{"order_id": 3, "game_id": 2, "topping_names": []string{}},
			prepareMocks: func(svc *mocks.OrderServiceInterface) {},
			expected:     http.StatusBadRequest,
		},
		{
			name:         "missing_ids",
			body:         gin.H{"category": "Coffee"},
			prepareMocks: func(svc *mocks.OrderServiceInterface) {},
			expected:     http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := mocks.NewOrderServiceInterface(t)
			testCase.prepareMocks(svc)

			r := gin.New()
			r.POST("/api/order/score", asUser, NewOrderHandler(svc).ScoreAnswer)

			w := doJSON(t, r, http.MethodPost, "/api/order/score", testCase.body)
			assert.Equal(t, testCase.expected, w.Code)
		})
	}
}

func TestOrderHandler_CreateAndList(t *testing.T) {
	svc := mocks.NewOrderServiceInterface(t)
	svc.On("CreateOrder", mock.Anything, testUserID, uint(2)).Return(&models.Order{ID: 5, GameID: 2}, nil).Once()
	svc.On("ListCorrectOrders", mock.Anything, testUserID, uint(2), 100).Return([]models.Order{{ID: 5}}, nil).Once()

	h := NewOrderHandler(svc)
	r := gin.New()
	r.POST("/api/order", asUser, h.CreateOrder)
	r.GET("/api/order/game/:game_id", asUser, h.ListCorrectOrders)

	w := doJSON(t, r, http.MethodPost, "/api/order", gin.H{"game_id": 2})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/order/game/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/order/game/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGameHandler(t *testing.T) {
	svc := mocks.NewGameServiceInterface(t)
	h := NewGameHandler(svc, nil)

	r := gin.New()
	r.POST("/api/game/start", asUser, h.StartGame)
	r.POST("/api/game/end", asUser, h.EndGame)
	r.GET("/api/game", asUser, h.GetUserGames)
	r.GET("/api/game/top", h.GetTopGames)
	r.GET("/api/game/best", asUser, h.GetBestGame)
	r.GET("/api/game/:id/qrcode", asUser, h.GetShareCode)

	t.Run("start", func(t *testing.T) {
		svc.On("StartGame", mock.Anything, testUserID, &services.StartGameRequest{MenuID: 1}).
			Return(&services.StartGameResponse{GameID: 4, Order: &models.Order{ID: 1}}, nil).Once()

		w := doJSON(t, r, http.MethodPost, "/api/game/start", gin.H{"menu_id": 1})
		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.EqualValues(t, 4, body["game_id"])
	})

	t.Run("start_invalid_menu", func(t *testing.T) {
		svc.On("StartGame", mock.Anything, testUserID, &services.StartGameRequest{MenuID: 2}).
			Return(nil, services.ErrInvalidMenu).Once()

		w := doJSON(t, r, http.MethodPost, "/api/game/start", gin.H{"menu_id": 2})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("end_forbidden", func(t *testing.T) {
		svc.On("EndGame", mock.Anything, testUserID, uint(9)).Return(nil, services.ErrGameForbidden).Once()

		w := doJSON(t, r, http.MethodPost, "/api/game/end", gin.H{"game_id": 9})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("list_with_limit", func(t *testing.T) {
		svc.On("ListUserGames", mock.Anything, testUserID, 5).Return([]models.GameSummary{{ID: 1}}, nil).Once()

		w := doJSON(t, r, http.MethodGet, "/api/game?limit=5", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("top_limit_out_of_range", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/game/top?limit=500", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("top_default_limit", func(t *testing.T) {
		svc.On("TopGames", mock.Anything, 10).Return([]models.GameSummary{}, nil).Once()

		w := doJSON(t, r, http.MethodGet, "/api/game/top", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("best_none", func(t *testing.T) {
		svc.On("BestGame", mock.Anything, testUserID).Return(nil, services.ErrGameNotFound).Once()

		w := doJSON(t, r, http.MethodGet, "/api/game/best", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("qrcode", func(t *testing.T) {
		svc.On("ShareCode", mock.Anything, testUserID, uint(4)).Return([]byte("\x89PNG"), nil).Once()

		w := doJSON(t, r, http.MethodGet, "/api/game/4/qrcode", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	})
}

func TestAuthHandler(t *testing.T) {
	svc := mocks.NewAuthServiceInterface(t)
	h := NewAuthHandler(svc)

	r := gin.New()
	r.POST("/api/user/signup", h.Signup)
	r.POST("/api/user/login", h.Login)
	r.POST("/api/user/refresh", h.Refresh)
	r.GET("/api/user/me", asUser, h.GetProfile)

	t.Run("signup_conflict", func(t *testing.T) {
		svc.On("Signup", mock.Anything, mock.Anything).Return(nil, services.ErrUserExists).Once()

		w := doJSON(t, r, http.MethodPost, "/api/user/signup", gin.H{"name": "Bo", "account_id": "bo", "password": "s3cret"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("signup_short_password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/user/signup", gin.H{"name": "Bo", "account_id": "bo", "password": "abc"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login_wrong_password", func(t *testing.T) {
		svc.On("Login", mock.Anything, &services.LoginRequest{AccountID: "bo", Password: "bad"}).
			Return(nil, services.ErrInvalidCredentials).Once()

		w := doJSON(t, r, http.MethodPost, "/api/user/login", gin.H{"account_id": "bo", "password": "bad"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh", func(t *testing.T) {
		svc.On("Refresh", mock.Anything, "rt").Return(&services.AuthResponse{AccessToken: "at", TokenType: "bearer"}, nil).Once()

		w := doJSON(t, r, http.MethodPost, "/api/user/refresh", gin.H{"refresh_token": "rt"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"access_token":"at"`)
	})

	t.Run("me", func(t *testing.T) {
		svc.On("Profile", mock.Anything, testUserID).Return(&models.User{ID: testUserID, Name: "Bo"}, nil).Once()

		w := doJSON(t, r, http.MethodGet, "/api/user/me", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMenuHandler(t *testing.T) {
	svc := mocks.NewMenuServiceInterface(t)
	h := NewMenuHandler(svc)

	r := gin.New()
	r.POST("/api/menu", h.CreateMenu)
	r.GET("/api/menu", h.ListMenus)
	r.GET("/api/menu/summary", h.ListMenuSummaries)
	r.GET("/api/menu/:id", h.GetMenuByID)
	r.PUT("/api/menu/:id", h.UpdateMenu)
	r.DELETE("/api/menu/:id", h.DeleteMenu)
	r.POST("/api/menu/images", h.UploadImage)

	t.Run("create", func(t *testing.T) {
		svc.On("Create", mock.Anything, mock.MatchedBy(func(req *services.CreateMenuRequest) bool {
			return req.Name == "Cafe" && len(req.Data) == 1
		})).Return(&models.Menu{ID: 1, Name: "Cafe"}, nil).Once()

		w := doJSON(t, r, http.MethodPost, "/api/menu", gin.H{
			"name":  "Cafe",
			"level": 2,
			"data":  []gin.H{{"kategorie": "Coffee", "menus": []gin.H{{"name": "Latte"}}}},
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("create_missing_data", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/menu", gin.H{"name": "Cafe"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create_negative_level", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/menu", gin.H{
			"name":  "Cafe",
			"level": -2,
			"data":  []gin.H{{"kategorie": "Coffee", "menus": []gin.H{{"name": "Latte"}}}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update_negative_level", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/menu/1", gin.H{"level": -1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list_limit_too_large", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/menu?limit=1001", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("summaries", func(t *testing.T) {
		svc.On("ListSummaries", mock.Anything, 100).Return([]models.MenuSummary{{ID: 1, Name: "Cafe"}}, nil).Once()

		w := doJSON(t, r, http.MethodGet, "/api/menu/summary", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get_missing", func(t *testing.T) {
		svc.On("FindMenu", mock.Anything, uint(8)).Return(nil, services.ErrMenuNotFound).Once()

		w := doJSON(t, r, http.MethodGet, "/api/menu/8", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update_without_fields", func(t *testing.T) {
		svc.On("Update", mock.Anything, uint(1), &services.UpdateMenuRequest{}).Return(nil, services.ErrNoFieldsToUpdate).Once()

		w := doJSON(t, r, http.MethodPut, "/api/menu/1", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		svc.On("Delete", mock.Anything, uint(1)).Return(nil).Once()

		w := doJSON(t, r, http.MethodDelete, "/api/menu/1", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("upload_without_storage", func(t *testing.T) {
		svc.On("UploadImage", mock.Anything, "latte.png", mock.Anything, int64(3), mock.Anything).
			Return("", services.ErrStorageDisabled).Once()

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("image", "latte.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("img"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/menu/images", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("upload_without_file", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/menu/images", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
