package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/padel-live/apiclient"
	"github.com/Dosada05/padel-live/middleware"
	"github.com/Dosada05/padel-live/models"
	"github.com/Dosada05/padel-live/repositories"
	"github.com/Dosada05/padel-live/services"
	"github.com/Dosada05/padel-live/viewers"
)

type memoryDisplayStore struct {
	mu       sync.Mutex
	settings map[int]models.DisplaySettings
}

func newMemoryDisplayStore() *memoryDisplayStore {
	return &memoryDisplayStore{settings: make(map[int]models.DisplaySettings)}
}

func (s *memoryDisplayStore) GetByTournamentID(_ context.Context, id int) (*models.DisplaySettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.settings[id]
	if !ok {
		return nil, repositories.ErrDisplaySettingsNotFound
	}
	return &v, nil
}

func (s *memoryDisplayStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.settings[id]; !ok {
		return repositories.ErrDisplaySettingsNotFound
	}
	delete(s.settings, id)
	return nil
}

func (s *memoryDisplayStore) Upsert(_ context.Context, settings *models.DisplaySettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings.UpdatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.settings[settings.TournamentID] = *settings
	return nil
}

// newFakeBackend serves a tiny tournament API. Tournament 1 is public,
// tournament 2 requires a token, tournament 3 is forbidden for everyone.
// Only "backend-token" may edit tournaments 1 and 2.
func newFakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	one, two := 1, 2
	respond := func(w http.ResponseWriter, status int, body interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}

	r := chi.NewRouter()
	r.Get("/tournaments", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, []models.Tournament{{ID: 1, Name: "Open", IsPublic: true}})
	})
	r.Get("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch chi.URLParam(r, "id") {
		case "1":
			respond(w, http.StatusOK, models.Tournament{ID: 1, Name: "Open", IsPublic: true, CanEdit: isOrganizer(r)})
		case "2":
			if r.Header.Get("Authorization") == "" {
				respond(w, http.StatusUnauthorized, map[string]string{"error": "login required"})
				return
			}
			respond(w, http.StatusOK, models.Tournament{ID: 2, Name: "Members", CanEdit: isOrganizer(r)})
		case "3":
			respond(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		case "500":
			respond(w, http.StatusInternalServerError, map[string]string{"error": "db down"})
		default:
			respond(w, http.StatusNotFound, map[string]string{"error": "not found"})
		}
	})
	r.Get("/tournaments/{id}/player-pairs", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, []models.PlayerPair{
			{ID: 1, Player1Name: "Ana", Player2Name: "Bea"},
			{ID: 2, Player1Name: "Carla", Player2Name: "Dani"},
		})
	})
	r.Get("/tournaments/{id}/rounds", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, []models.Round{{
			ID: 1, Name: "Final", Order: 1,
			Games: []models.Game{{ID: 10, OrderInRound: 1, Pair1ID: &one, Pair2ID: &two}},
		}})
	})
	r.Get("/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "10" {
			respond(w, http.StatusNotFound, map[string]string{"error": "game not found"})
			return
		}
		score := "6-4 7-5"
		respond(w, http.StatusOK, models.Game{ID: 10, TournamentID: 1, Pair1ID: &one, Pair2ID: &two, WinnerPairID: &one, Score: &score, Status: models.GameStatusCompleted})
	})
	r.Get("/match-formats", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, []models.MatchFormat{{ID: 1, Name: "Best of 3"}})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func isOrganizer(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer backend-token"
}

type testEnv struct {
	router http.Handler
	hub    *viewers.Hub
	store  *memoryDisplayStore
	auth   services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	backend := newFakeBackend(t)
	client, err := apiclient.New(apiclient.Config{BaseURL: backend.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)

	hub := viewers.NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.Done()
	})

	auth, err := services.NewAuthService(services.AuthConfig{SessionSecret: "test-session-secret"})
	require.NoError(t, err)

	store := newMemoryDisplayStore()
	tournaments := services.NewTournamentService(client)
	display := services.NewDisplayService(client, store)
	bracket := services.NewBracketService(client, display, nil, nil)
	exports := services.NewExportService(tournaments, nil, nil)
	tv := services.NewTVService(tournaments, bracket, display, hub, nil, nil)

	vh := NewViewerHandler(hub, ViewerHandlerConfig{Heartbeat: time.Minute, Clock: clockwork.NewRealClock()})
	th := NewTournamentHandler(tournaments)
	eh := NewExportHandler(exports)
	bh := NewBracketHandler(bracket, display)
	tvh := NewTVHandler(tv)
	ah := NewAuthHandler(auth, AuthHandlerConfig{})

	r := chi.NewRouter()
	r.Get("/games/{gameID}/viewers/stream", vh.StreamHandler)
	r.Get("/games/{gameID}/viewers", vh.CountHandler)
	r.Get("/ws/games/{gameID}/viewers", vh.WebSocketHandler)
	r.Get("/viewers", vh.SnapshotHandler)
	r.Get("/public/tournaments/{tournamentID}", th.PublicHandler)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(auth))
		r.Get("/tournaments", th.ListHandler)
		r.Get("/tournaments/{tournamentID}", th.GetByIDHandler)
		r.Get("/tournaments/{tournamentID}/pairs", th.PairsHandler)
		r.Get("/tournaments/{tournamentID}/pairs.csv", eh.PairsCSVHandler)
		r.Post("/tournaments/{tournamentID}/exports", eh.UploadHandler)
		r.Get("/tournaments/{tournamentID}/bracket", bh.LayoutHandler)
		r.Get("/tournaments/{tournamentID}/display", bh.GetDisplayHandler)
		r.Put("/tournaments/{tournamentID}/display", bh.UpdateDisplayHandler)
		r.Delete("/tournaments/{tournamentID}/display", bh.ResetDisplayHandler)
		r.Delete("/tournaments/{tournamentID}/exports/{name}", eh.DeleteHandler)
		r.Get("/games/{gameID}", th.GameHandler)
		r.Get("/tv/tournaments/{tournamentID}", tvh.BoardHandler)
		r.Get("/match-formats", th.MatchFormatsHandler)
		r.Get("/auth/login", ah.LoginHandler)
		r.Get("/auth/callback", ah.CallbackHandler)
		r.Post("/auth/logout", ah.LogoutHandler)
		r.Get("/auth/me", ah.MeHandler)
	})

	return &testEnv{router: r, hub: hub, store: store, auth: auth}
}

func (e *testEnv) sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	return e.sessionCookieFor(t, "user-1", "backend-token")
}

func (e *testEnv) sessionCookieFor(t *testing.T, subject, accessToken string) *http.Cookie {
	t.Helper()
	token, err := e.auth.IssueSession(&models.Session{Subject: subject, AccessToken: accessToken})
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

func (e *testEnv) do(t *testing.T, method, target string, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
