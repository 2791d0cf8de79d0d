package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mverbeek/firefight/internal/combat"
	"github.com/mverbeek/firefight/internal/config"
	"github.com/mverbeek/firefight/internal/database"
	"github.com/mverbeek/firefight/internal/engine"
	"github.com/mverbeek/firefight/internal/metrics"
	"github.com/mverbeek/firefight/internal/notifier"
	"github.com/mverbeek/firefight/internal/pubsub"
	"github.com/mverbeek/firefight/internal/resolver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer initializes a new server with a test database and mock clients.
func setupTestServer(t *testing.T) (*Server, combat.CombatStore) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(dbTeardown)

	store := combat.New(db)
	cfg := config.Config{}

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	notif := notifier.NewMock()
	ps := pubsub.NewMock("TEST")
	res := resolver.New(store, notif, metricsSvc, ps, engine.NewSeededSource(1))

	return NewServer(store, metricsSvc, metricsHandler, cfg, notif, res), store
}

func TestHealthCheckHandler(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestAttackHandler(t *testing.T) {
	server, store := setupTestServer(t)

	req := httptest.NewRequest("POST", "/attack?attacker=alice&defender=bob&weapon=akm", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var result resolver.FightResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "alice", result.AttackerID)
	assert.Equal(t, "akm", result.WeaponName)
	assert.GreaterOrEqual(t, result.WinChance, 0.10)
	assert.LessOrEqual(t, result.WinChance, 0.90)

	stats, err := store.GetUserStats("alice")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalFights)
}

func TestAttackHandler_Validation(t *testing.T) {
	server, _ := setupTestServer(t)

	cases := []struct {
		name string
		url  string
		code int
	}{
		{"missing participants", "/attack?attacker=alice", http.StatusBadRequest},
		{"self attack", "/attack?attacker=alice&defender=alice", http.StatusBadRequest},
		{"unknown weapon", "/attack?attacker=alice&defender=bob&weapon=bfg9000", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tc.url, nil)
			rr := httptest.NewRecorder()
			server.ServeHTTP(rr, req)
			assert.Equal(t, tc.code, rr.Code)
		})
	}
}

func TestAttackHandler_MethodNotAllowed(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest("GET", "/attack?attacker=alice&defender=bob", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestAttackHandler_DryRun(t *testing.T) {
	server, store := setupTestServer(t)

	req := httptest.NewRequest("POST", "/attack?attacker=alice&defender=bob&weapon=akm&dry_run=true", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	stats, err := store.GetUserStats("alice")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalFights, "dry run must not record the fight")
}

func TestUserStatsHandler(t *testing.T) {
	server, store := setupTestServer(t)

	require.NoError(t, store.RecordFight("alice", "bob", "akm", true))

	req := httptest.NewRequest("GET", "/stats?user=alice", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var payload struct {
		User       combat.UserStats    `json:"user"`
		WinRate    float64             `json:"win_rate"`
		TopWeapons []combat.WeaponStats `json:"top_weapons"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, 1, payload.User.Wins)
	assert.Equal(t, 1.0, payload.WinRate)
	require.Len(t, payload.TopWeapons, 1)
	assert.Equal(t, "akm", payload.TopWeapons[0].WeaponName)
}

func TestUserStatsHandler_Announce(t *testing.T) {
	server, store := setupTestServer(t)
	notif := server.Notifier.(*notifier.Mock)

	require.NoError(t, store.RecordFight("alice", "bob", "akm", true))

	req := httptest.NewRequest("GET", "/stats?user=alice", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, notif.SendUserStatsCalls, "no announcement without announce=true")

	req = httptest.NewRequest("GET", "/stats?user=alice&announce=true", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	require.Len(t, notif.SendUserStatsCalls, 1)
	assert.Equal(t, "alice", notif.SendUserStatsCalls[0].UserID)
}

func TestUserStatsHandler_MissingUser(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest("GET", "/stats", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLeaderboardHandler(t *testing.T) {
	server, store := setupTestServer(t)

	require.NoError(t, store.RecordFight("alice", "bob", "akm", true))
	require.NoError(t, store.RecordFight("alice", "carol", "akm", true))

	req := httptest.NewRequest("GET", "/leaderboard", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var entries []combat.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "alice", entries[0].UserID)
}

func TestLeaderboardHandler_Announce(t *testing.T) {
	server, store := setupTestServer(t)
	notif := server.Notifier.(*notifier.Mock)

	require.NoError(t, store.RecordFight("alice", "bob", "akm", true))

	req := httptest.NewRequest("GET", "/leaderboard?announce=true", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	require.Len(t, notif.SendLeaderboardCalls, 1)
	require.Len(t, notif.SendLeaderboardCalls[0], 2)
	assert.Equal(t, "alice", notif.SendLeaderboardCalls[0][0].UserID)
}

func TestWeaponsHandler(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest("GET", "/weapons", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var catalog []struct {
		Name    string `json:"name"`
		Faction string `json:"faction"`
		Class   string `json:"class"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &catalog))
	assert.NotEmpty(t, catalog)

	req = httptest.NewRequest("GET", "/weapons?q=mp5", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var suggestions []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &suggestions))
	assert.Contains(t, suggestions, "mp5a5")
}

func TestRecentFightsHandler(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest("POST", "/attack?attacker=alice&defender=bob&weapon=akm", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest("GET", "/fights?limit=5", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var fights []combat.Fight
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fights))
	require.Len(t, fights, 1)
	assert.Equal(t, "akm", fights[0].WeaponName)
}

func TestClearStoreHandler(t *testing.T) {
	server, store := setupTestServer(t)

	require.NoError(t, store.RecordFight("alice", "bob", "akm", true))

	req := httptest.NewRequest("GET", "/clear?user=alice", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	stats, err := store.GetUserStats("alice")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalFights)

	req = httptest.NewRequest("GET", "/clear", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
