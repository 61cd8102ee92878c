package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/padel-live/viewers"
)

const maxGameIDLength = 128

type ViewerHandlerConfig struct {
	Heartbeat      time.Duration
	AllowedOrigins []string
	Clock          clockwork.Clock
}

type ViewerHandler struct {
	hub       *viewers.Hub
	heartbeat time.Duration
	clock     clockwork.Clock
	upgrader  websocket.Upgrader
}

func NewViewerHandler(hub *viewers.Hub, cfg ViewerHandlerConfig) *ViewerHandler {
	heartbeat := cfg.Heartbeat
	if heartbeat <= 0 {
		heartbeat = viewers.DefaultHeartbeatInterval
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ViewerHandler{
		hub:       hub,
		heartbeat: heartbeat,
		clock:     clock,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cfg.AllowedOrigins),
		},
	}
}

// StreamHandler serves GET /games/{gameID}/viewers/stream as Server-Sent
// Events. The request blocks until the client goes away.
func (h *ViewerHandler) StreamHandler(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	transport, err := viewers.NewSSETransport(w, r)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	h.serve(r, gameID, transport)
}

// WebSocketHandler serves GET /ws/games/{gameID}/viewers.
func (h *ViewerHandler) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		logger(r).Warn("websocket upgrade failed", slog.String("game_id", gameID), slog.Any("error", err))
		return
	}

	transport := viewers.NewWebSocketTransport(conn, gameID, h.heartbeat*2)
	defer transport.Close()

	h.serve(r, gameID, transport)
}

func (h *ViewerHandler) serve(r *http.Request, gameID string, transport viewers.Transport) {
	viewer := viewers.NewViewer(transport, h.clock, h.heartbeat)
	err := h.hub.Serve(r.Context(), gameID, viewer)
	switch {
	case err == nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, viewers.ErrStreamClosed),
		errors.Is(err, viewers.ErrHubClosed):
	default:
		logger(r).Info("viewer stream dropped", slog.String("game_id", gameID), slog.Any("error", err))
	}
}

// CountHandler serves GET /games/{gameID}/viewers.
func (h *ViewerHandler) CountHandler(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	count := h.hub.Count(gameID)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"game_id": gameID, "viewers": count}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SnapshotHandler serves GET /viewers.
func (h *ViewerHandler) SnapshotHandler(w http.ResponseWriter, r *http.Request) {
	games := h.hub.Snapshot()
	total := 0
	for _, n := range games {
		total += n
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"games": games, "total": total}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func gameIDFromURL(r *http.Request) (string, error) {
	gameID := strings.TrimSpace(chi.URLParam(r, "gameID"))
	if gameID == "" {
		return "", errors.New("missing gameID in URL")
	}
	if len(gameID) > maxGameIDLength {
		return "", errors.New("gameID is too long")
	}
	return gameID, nil
}

// originChecker allows same-host requests, requests without an Origin
// header and the configured origins. "*" allows everything.
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[strings.TrimRight(o, "/")] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, ok := set["*"]; ok {
			return true
		}
		if _, ok := set[origin]; ok {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}
