package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	name string
	meta interface{}
	err  error
}

func (p stubPinger) Ping(_ context.Context) (interface{}, error) {
	return p.meta, p.err
}

func (p stubPinger) Name() string {
	return p.name
}

func TestHandler(t *testing.T) {
	tt := []struct {
		name   string
		p      []Pinger
		code   int
		errors map[string]string
	}{
		{
			name:   "ok",
			p:      []Pinger{stubPinger{name: "store", meta: 1}, stubPinger{name: "ai"}},
			code:   http.StatusOK,
			errors: map[string]string{},
		},
		{
			name:   "failed",
			p:      []Pinger{stubPinger{name: "store"}, stubPinger{name: "ai", err: errors.New("down")}},
			code:   http.StatusInternalServerError,
			errors: map[string]string{"ai": "down"},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/health", nil)

			Handler(time.Second, tc.p...)(w, r)

			assert.Equal(t, tc.code, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.errors, resp.Errors)
			assert.Equal(t, "dev", resp.Version)
		})
	}
}

func TestGetVersion(t *testing.T) {
	require.Equal(t, "dev-undefined", GetVersion())
}
