package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderalone/handlers"
	"orderalone/mocks"
	"orderalone/models"
	"orderalone/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	games  *mocks.GameServiceInterface
	hub    *services.Hub
	token  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tokens := services.NewTokenManager("routes-test-secret", time.Hour, time.Hour)
	token, err := tokens.Issue(&models.User{ID: 3, AccountID: "barista"}, services.AccessToken)
	require.NoError(t, err)

	games := mocks.NewGameServiceInterface(t)
	hub := services.NewHub(nil)
	go hub.Run()

	router := gin.New()
	SetupRoutes(router, Handlers{
		Auth:  handlers.NewAuthHandler(mocks.NewAuthServiceInterface(t)),
		Menu:  handlers.NewMenuHandler(mocks.NewMenuServiceInterface(t)),
		Game:  handlers.NewGameHandler(games, hub),
		Order: handlers.NewOrderHandler(mocks.NewOrderServiceInterface(t)),
	}, hub, games, tokens, []string{"http://localhost:3000"})

	return &testEnv{router: router, games: games, hub: hub, token: token}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/menu", "/api/game", "/api/game/top", "/api/user/me", "/api/order/game/1"} {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAuthenticatedRoute(t *testing.T) {
	env := newTestEnv(t)
	env.games.On("TopGames", mock.Anything, 10).Return([]models.GameSummary{{ID: 1, Score: 4}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/game/top", nil)
	req.Header.Set("Authorization", "Bearer "+env.token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGameSocket(t *testing.T) {
	env := newTestEnv(t)
	srv := httptest.NewServer(env.router)
	defer srv.Close()
	base := "ws" + strings.TrimPrefix(srv.URL, "http")

	t.Run("owner_connects", func(t *testing.T) {
		env.games.On("CheckGameOwnership", mock.Anything, uint(5), uint(3)).Return(&models.Game{ID: 5, UserID: 3}, nil).Once()

		conn, _, err := websocket.DefaultDialer.Dial(base+"/ws/games/5?token="+env.token, nil)
		require.NoError(t, err)
		defer conn.Close()

		assert.Eventually(t, func() bool { return env.hub.ConnectedClients(5) == 1 }, time.Second, 10*time.Millisecond)
	})

	t.Run("other_users_game", func(t *testing.T) {
		env.games.On("CheckGameOwnership", mock.Anything, uint(6), uint(3)).Return(nil, services.ErrGameForbidden).Once()

		_, resp, err := websocket.DefaultDialer.Dial(base+"/ws/games/6?token="+env.token, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("missing_token", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(base+"/ws/games/5", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
