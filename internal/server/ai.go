package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/calliope/internal/api"
	"github.com/Decentr-net/calliope/internal/entities"
	"github.com/Decentr-net/calliope/internal/service"
)

func (s server) generateIdeas(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /ai/ideas AI GenerateIdeas
	//
	// Generates 5 content ideas. Suggestions are not stored.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/IdeasRequest"
	// responses:
	//   '200':
	//     description: Suggestions
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/AIContentSuggestion"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req IdeasRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ideas, err := s.ai.GenerateContentIdeas(r.Context(), service.IdeasParams{
		Topic:          req.Topic,
		TargetAudience: req.TargetAudience,
		Platform:       entities.Platform(req.Platform),
	})
	if err != nil {
		writeAIError(w, r, "failed to generate ideas", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toSuggestions(ideas))
}

func (s server) generateHashtags(w http.ResponseWriter, r *http.Request) {
	var req HashtagsRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	hashtags, err := s.ai.GenerateHashtags(r.Context(), req.Topic, entities.Platform(req.Platform))
	if err != nil {
		writeAIError(w, r, "failed to generate hashtags", err)
		return
	}

	api.WriteOK(w, http.StatusOK, HashtagsResponse{Hashtags: hashtags})
}

func (s server) getPostingTimes(w http.ResponseWriter, r *http.Request) {
	times, err := s.ai.GetOptimalPostingTimes(r.Context(), entities.Platform(chi.URLParam(r, "platform")))
	if err != nil {
		writeAIError(w, r, "failed to get posting times", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toPostingTimes(times))
}

func writeAIError(w http.ResponseWriter, r *http.Request, message string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParams), errors.Is(err, service.ErrUnknownPlatform):
		api.WriteError(w, http.StatusBadRequest, err.Error())
	case r.Context().Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		log.WithError(err).WithField("path", r.URL.Path).Debug("ai request cancelled")
	default:
		api.WriteInternalErrorf(r.Context(), w, "%s: %s", message, err.Error())
	}
}
