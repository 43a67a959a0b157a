package feed

import (
	"errors"
	"net/http"
	"time"

	"github.com/user/quill-go/apperror"
)

const heartbeatInterval = 25 * time.Second

// HandleStream godoc
// @Summary Stream new posts
// @Description Server-sent events; every created post is sent as a `post` event with the post JSON as data.
// @Tags Posts
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /api/posts/stream [get]
func HandleStream(b *Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := http.NewResponseController(w)
		// The server write timeout would otherwise end every stream early.
		if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
			apperror.WriteError(w, r, apperror.NewInternalError("streaming unsupported", err))
			return
		}

		clientID, events := b.Subscribe()
		defer b.Unsubscribe(clientID)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		if err := rc.Flush(); err != nil {
			return
		}

		heartbeat := time.NewTicker(heartbeatInterval)
		defer heartbeat.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				if _, err := event.WriteTo(w); err != nil {
					return
				}
			case <-heartbeat.C:
				if _, err := w.Write([]byte(": ping\n\n")); err != nil {
					return
				}
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
