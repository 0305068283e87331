// Package server Calliope
//
// The Calliope is a content planning service which keeps posts, dashboard state and simulated AI assistant.
//
//     Schemes: http
//     BasePath: /v1
//     Version: 0.1.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/calliope/internal/api"
	"github.com/Decentr-net/calliope/internal/entities"
	"github.com/Decentr-net/calliope/internal/metrics"
	mm "github.com/Decentr-net/calliope/internal/middleware"
	"github.com/Decentr-net/calliope/internal/service"
	"github.com/Decentr-net/calliope/internal/storage"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 64 * 1024

const fixedTablesTTL = 10 * time.Minute

var log = logrus.WithField("layer", "server").WithField("package", "server")

var errInvalidRequest = errors.New("invalid request")

type server struct {
	s  storage.Storage
	ai service.Service

	v   *validator.Validate
	now func() time.Time
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s storage.Storage, ai service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		middleware.RequestID,
		api.LoggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		metrics.Middleware,
		middleware.Recoverer,
		api.BodyLimiterMiddleware(maxBodySize),
	)

	srv := server{
		s:   s,
		ai:  ai,
		v:   newValidator(),
		now: time.Now,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/events", srv.streamEvents)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(timeout))

			r.Get("/state", srv.getState)

			r.Route("/ui", func(r chi.Router) {
				r.Post("/dark-mode/toggle", srv.toggleDarkMode)
				r.Post("/sidebar/toggle", srv.toggleSidebar)
				r.Put("/view", srv.setView)
				r.Put("/selection", srv.setSelection)
				r.Put("/post-modal", srv.setPostModal)
				r.Put("/new-post-modal", srv.setNewPostModal)
			})

			r.Route("/filters", func(r chi.Router) {
				r.Put("/platforms", srv.setPlatforms)
				r.Put("/statuses", srv.setStatuses)
				r.Put("/date-range", srv.setDateRange)
				r.Put("/search", srv.setSearch)
			})

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", srv.listPosts)
				r.Post("/", srv.createPost)
				r.Get("/{id}", srv.getPost)
				r.Patch("/{id}", srv.updatePost)
				r.Delete("/{id}", srv.deletePost)
				r.Put("/{id}/date", srv.movePost)
			})

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/upcoming", srv.getUpcoming)
				r.Get("/days/{date}", srv.getDay)
				r.Get("/{year}/{month}", srv.getMonth)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/daily", srv.getDailyAnalytics)
				r.Get("/platforms", mm.Cached(fixedTablesTTL, srv.getPlatformStats))
				r.Get("/content-types", mm.Cached(fixedTablesTTL, srv.getContentTypeStats))
				r.Get("/kpi", mm.Cached(fixedTablesTTL, srv.getKPI))
				r.Get("/colors", mm.Cached(fixedTablesTTL, srv.getColors))
			})

			r.Route("/ai", func(r chi.Router) {
				r.Post("/ideas", srv.generateIdeas)
				r.Post("/hashtags", srv.generateHashtags)
				r.Get("/posting-times/{platform}", srv.getPostingTimes)
			})
		})
	})
}

func newValidator() *validator.Validate {
	v := validator.New()

	for tag, valid := range map[string]func(s string) bool{
		"platform":     func(s string) bool { return entities.Platform(s).Valid() },
		"status":       func(s string) bool { return entities.Status(s).Valid() },
		"content_type": func(s string) bool { return entities.ContentType(s).Valid() },
	} {
		valid := valid
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		}); err != nil {
			panic(fmt.Errorf("failed to register %s validation: %w", tag, err))
		}
	}

	return v
}

// decode reads json body into v and validates it.
func (s server) decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: failed to decode body: %s", errInvalidRequest, err)
	}

	if err := s.v.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", errInvalidRequest, err)
	}

	return nil
}
