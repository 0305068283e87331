// Package health contains code for health checks.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

var log = logrus.WithField("package", "health")

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// VersionResponse ...
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// Response is a body of health check response.
type Response struct {
	VersionResponse
	Meta   map[string]interface{} `json:"meta"`
	Errors map[string]string      `json:"errors"`
}

// Pinger pings a dependency of service.
type Pinger interface {
	// Ping returns object with meta information and error
	Ping(ctx context.Context) (interface{}, error)
	// Name returns name of pinger
	Name() string
}

// Handler runs all pingers concurrently and responds with 500 when any of them failed.
func Handler(timeout time.Duration, p ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		gr, ctx := errgroup.WithContext(ctx)

		var mu sync.Mutex
		resp := Response{
			VersionResponse: VersionResponse{Version: version, Commit: commit},
			Meta:            map[string]interface{}{},
			Errors:          map[string]string{},
		}

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				m, err := v.Ping(ctx)

				mu.Lock()
				defer mu.Unlock()

				resp.Meta[v.Name()] = m
				if err != nil {
					log.WithError(err).WithField("pinger", v.Name()).Error("health check failed")
					resp.Errors[v.Name()] = err.Error()
					return err
				}

				return nil
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := gr.Wait(); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}

		data, _ := json.Marshal(resp) // nolint:errchkjson
		_, _ = w.Write(data)
	}
}
