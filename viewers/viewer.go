package viewers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/padel-live/metrics"
)

const DefaultHeartbeatInterval = 15 * time.Second

var ErrStreamClosed = errors.New("viewer stream closed")

// Transport is a server-push handle for one viewer: a way to send a count,
// a way to send a keep-alive, and a channel that is closed exactly once
// when the underlying connection ends.
type Transport interface {
	WriteCount(count int) error
	WritePing() error
	Closed() <-chan struct{}
}

// Viewer is one open viewer-count stream.
type Viewer struct {
	id        string
	transport Transport
	clock     clockwork.Clock
	heartbeat time.Duration

	// mailbox holds the latest count not yet written; the hub replaces
	// stale values instead of queueing them.
	mailbox chan int

	failed     chan struct{}
	failedOnce sync.Once
}

func NewViewer(transport Transport, clock clockwork.Clock, heartbeat time.Duration) *Viewer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeatInterval
	}
	return &Viewer{
		id:        uuid.NewString(),
		transport: transport,
		clock:     clock,
		heartbeat: heartbeat,
		mailbox:   make(chan int, 1),
		failed:    make(chan struct{}),
	}
}

func (v *Viewer) ID() string {
	return v.id
}

// offer is only called from the hub goroutine.
func (v *Viewer) offer(count int) {
	select {
	case v.mailbox <- count:
		return
	default:
	}
	select {
	case <-v.mailbox:
	default:
	}
	select {
	case v.mailbox <- count:
	default:
	}
}

func (v *Viewer) closed() bool {
	select {
	case <-v.failed:
		return true
	case <-v.transport.Closed():
		return true
	default:
		return false
	}
}

func (v *Viewer) fail() {
	v.failedOnce.Do(func() { close(v.failed) })
}

func (v *Viewer) serve(ctx context.Context, stop <-chan struct{}) error {
	ticker := v.clock.NewTicker(v.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return ErrHubClosed
		case <-v.transport.Closed():
			return ErrStreamClosed
		case count := <-v.mailbox:
			if err := v.transport.WriteCount(count); err != nil {
				v.fail()
				metrics.ViewerWriteFailuresTotal.WithLabelValues("count").Inc()
				return fmt.Errorf("write viewer count: %w", err)
			}
		case <-ticker.Chan():
			if err := v.transport.WritePing(); err != nil {
				v.fail()
				metrics.ViewerWriteFailuresTotal.WithLabelValues("ping").Inc()
				return fmt.Errorf("write heartbeat: %w", err)
			}
		}
	}
}
