package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (s server) streamEvents(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /events Dashboard StreamEvents
	//
	// Streams store changes as server-sent events. Slow clients miss events.
	//
	// ---
	// produces:
	// - text/event-stream
	// responses:
	//   '200':
	//     description: Event stream
	//     schema:
	//       "$ref": "#/definitions/Event"

	events, unsubscribe := s.s.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	flush := func() {
		if flusher != nil {
			flusher.Flush()
		}
	}
	flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}

			data, err := json.Marshal(toEvent(e))
			if err != nil {
				log.WithError(err).Error("failed to marshal event")
				return
			}

			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Type, data); err != nil {
				log.WithError(err).Debug("failed to write event")
				return
			}
			flush()
		}
	}
}
