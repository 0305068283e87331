package server

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/calliope/internal/storage"
)

func Test_streamEvents(t *testing.T) {
	s, _, router := newTestRouter(t)

	events := make(chan storage.Event, 1)
	unsubscribed := make(chan struct{})

	s.EXPECT().Subscribe().Return((<-chan storage.Event)(events), func() { close(unsubscribed) })

	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(r)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events <- storage.Event{Type: storage.PostAddedEvent, PostID: "1", At: created}

	reader := bufio.NewReader(resp.Body)

	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: post_added\n", line)

	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"post_added","postId":"1","at":"2026-10-01T00:00:00Z"}`, line[len("data: "):])

	cancel()

	select {
	case <-unsubscribed:
	case <-time.After(time.Second):
		t.Fatal("subscription is not released")
	}
}
