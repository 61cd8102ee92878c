package viewers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Dosada05/padel-live/metrics"
)

var ErrHubClosed = errors.New("viewer hub is not running")

type subscription struct {
	gameID string
	viewer *Viewer
}

type countRequest struct {
	gameID string
	reply  chan int
}

// Hub keeps, per game, the set of open viewer streams and pushes the live
// count to all of them whenever the set changes. The games map is owned by
// the Run goroutine; every other method talks to it over channels.
type Hub struct {
	register   chan subscription
	unregister chan subscription
	counts     chan countRequest
	snapshots  chan chan map[string]int

	games map[string]map[*Viewer]struct{}

	logger *slog.Logger
	done   chan struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		register:   make(chan subscription),
		unregister: make(chan subscription),
		counts:     make(chan countRequest),
		snapshots:  make(chan chan map[string]int),
		games:      make(map[string]map[*Viewer]struct{}),
		logger:     logger.With(slog.String("component", "viewer_hub")),
		done:       make(chan struct{}),
	}
}

// Run processes hub events until ctx is cancelled. Events are handled one at
// a time in arrival order.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	h.logger.Info("viewer hub started")

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			h.logger.Info("viewer hub stopped")
			return

		case sub := <-h.register:
			h.add(sub.gameID, sub.viewer)

		case sub := <-h.unregister:
			h.remove(sub.gameID, sub.viewer)

		case req := <-h.counts:
			count, swept := h.sweep(req.gameID)
			if swept > 0 && count > 0 {
				h.push(req.gameID, count)
			}
			req.reply <- count

		case reply := <-h.snapshots:
			reply <- h.snapshot()
		}
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Subscribe registers v under gameID and broadcasts the new count to every
// subscriber of the game, v included.
func (h *Hub) Subscribe(gameID string, v *Viewer) error {
	select {
	case h.register <- subscription{gameID: gameID, viewer: v}:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

// Unsubscribe removes v from gameID. Removing the last viewer deletes the
// game entry; otherwise the remaining viewers get the new count.
func (h *Hub) Unsubscribe(gameID string, v *Viewer) {
	select {
	case h.unregister <- subscription{gameID: gameID, viewer: v}:
	case <-h.done:
	}
}

// Count sweeps closed streams of gameID and returns the live count.
func (h *Hub) Count(gameID string) int {
	reply := make(chan int, 1)
	select {
	case h.counts <- countRequest{gameID: gameID, reply: reply}:
	case <-h.done:
		return 0
	}
	select {
	case n := <-reply:
		return n
	case <-h.done:
		return 0
	}
}

// Snapshot returns the live count of every game that has subscribers.
func (h *Hub) Snapshot() map[string]int {
	reply := make(chan map[string]int, 1)
	select {
	case h.snapshots <- reply:
	case <-h.done:
		return map[string]int{}
	}
	select {
	case m := <-reply:
		return m
	case <-h.done:
		return map[string]int{}
	}
}

// Serve subscribes v to gameID, runs its write/heartbeat loop and
// unsubscribes it when the loop ends. It blocks for the lifetime of the
// connection.
func (h *Hub) Serve(ctx context.Context, gameID string, v *Viewer) error {
	if err := h.Subscribe(gameID, v); err != nil {
		return err
	}
	defer h.Unsubscribe(gameID, v)

	h.logger.Debug("viewer connected", slog.String("game_id", gameID), slog.String("viewer_id", v.ID()))
	err := v.serve(ctx, h.done)
	h.logger.Debug("viewer disconnected",
		slog.String("game_id", gameID),
		slog.String("viewer_id", v.ID()),
		slog.Any("reason", err),
	)
	return err
}

func (h *Hub) add(gameID string, v *Viewer) {
	set, ok := h.games[gameID]
	if !ok {
		set = make(map[*Viewer]struct{})
		h.games[gameID] = set
		metrics.ViewerGamesActive.Inc()
	}
	if _, exists := set[v]; !exists {
		set[v] = struct{}{}
		metrics.ViewerConnectionsActive.Inc()
	}
	h.broadcast(gameID)
}

func (h *Hub) remove(gameID string, v *Viewer) {
	set, ok := h.games[gameID]
	if !ok {
		return
	}
	if _, exists := set[v]; !exists {
		return
	}
	delete(set, v)
	metrics.ViewerConnectionsActive.Dec()

	if len(set) == 0 {
		delete(h.games, gameID)
		metrics.ViewerGamesActive.Dec()
		h.logger.Debug("game has no viewers left", slog.String("game_id", gameID))
		return
	}
	h.broadcast(gameID)
}

// sweep drops viewers whose transport has closed and returns the live count
// together with the number of dropped viewers. An emptied game is deleted.
func (h *Hub) sweep(gameID string) (count int, swept int) {
	set, ok := h.games[gameID]
	if !ok {
		return 0, 0
	}
	for v := range set {
		if v.closed() {
			delete(set, v)
			swept++
		}
	}
	if swept > 0 {
		metrics.ViewerConnectionsActive.Sub(float64(swept))
		metrics.ViewerStreamsSweptTotal.Add(float64(swept))
	}
	if len(set) == 0 {
		delete(h.games, gameID)
		metrics.ViewerGamesActive.Dec()
		return 0, swept
	}
	return len(set), swept
}

func (h *Hub) broadcast(gameID string) {
	count, _ := h.sweep(gameID)
	if count == 0 {
		return
	}
	h.push(gameID, count)
}

func (h *Hub) push(gameID string, count int) {
	for v := range h.games[gameID] {
		v.offer(count)
	}
	metrics.ViewerBroadcastsTotal.Inc()
}

func (h *Hub) snapshot() map[string]int {
	out := make(map[string]int, len(h.games))
	for gameID := range h.games {
		count, swept := h.sweep(gameID)
		if count == 0 {
			continue
		}
		if swept > 0 {
			h.push(gameID, count)
		}
		out[gameID] = count
	}
	return out
}

func (h *Hub) shutdown() {
	var conns int
	for _, set := range h.games {
		conns += len(set)
	}
	metrics.ViewerConnectionsActive.Sub(float64(conns))
	metrics.ViewerGamesActive.Sub(float64(len(h.games)))
	h.games = make(map[string]map[*Viewer]struct{})
}
