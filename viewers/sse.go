package viewers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const sseWriteWait = 10 * time.Second

var ErrStreamingUnsupported = errors.New("response writer does not support streaming")

// SSETransport writes viewer counts as Server-Sent Events:
// "data: <n>\n\n" for counts and ": ping\n\n" as keep-alive comment.
type SSETransport struct {
	w      http.ResponseWriter
	rc     *http.ResponseController
	closed <-chan struct{}
}

// NewSSETransport sends the streaming headers and lifts the server write
// deadline for the response. The stream closes with the request context.
func NewSSETransport(w http.ResponseWriter, r *http.Request) (*SSETransport, error) {
	rc := http.NewResponseController(w)

	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return nil, fmt.Errorf("clear write deadline: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := rc.Flush(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStreamingUnsupported, err)
	}

	return &SSETransport{w: w, rc: rc, closed: r.Context().Done()}, nil
}

func (t *SSETransport) WriteCount(count int) error {
	return t.write(fmt.Sprintf("data: %d\n\n", count))
}

func (t *SSETransport) WritePing() error {
	return t.write(": ping\n\n")
}

func (t *SSETransport) Closed() <-chan struct{} {
	return t.closed
}

func (t *SSETransport) write(frame string) error {
	if err := t.rc.SetWriteDeadline(time.Now().Add(sseWriteWait)); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return err
	}
	if _, err := io.WriteString(t.w, frame); err != nil {
		return err
	}
	return t.rc.Flush()
}
