package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/calliope/internal/api"
	"github.com/Decentr-net/calliope/internal/entities"
	"github.com/Decentr-net/calliope/internal/planner"
	"github.com/Decentr-net/calliope/internal/storage"
)

func (s server) getState(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /state Dashboard GetState
	//
	// Returns snapshot of dashboard state: ui, filters and selected post.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: State
	//     schema:
	//       "$ref": "#/definitions/StateResponse"

	api.WriteOK(w, http.StatusOK, toStateResponse(s.s.State()))
}

func (s server) toggleDarkMode(w http.ResponseWriter, _ *http.Request) {
	api.WriteOK(w, http.StatusOK, DarkModeResponse{IsDarkMode: s.s.ToggleDarkMode()})
}

func (s server) toggleSidebar(w http.ResponseWriter, _ *http.Request) {
	api.WriteOK(w, http.StatusOK, SidebarResponse{IsSidebarCollapsed: s.s.ToggleSidebar()})
}

func (s server) setView(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /ui/view Dashboard SetView
	//
	// Switches current view.
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
	//     "$ref": "#/definitions/ViewRequest"
	// responses:
	//   '200':
	//     description: State
	//     schema:
	//       "$ref": "#/definitions/StateResponse"
	//   '400':
	//     description: unknown view
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req ViewRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.SetCurrentView(entities.View(req.View)); err != nil {
		if errors.Is(err, storage.ErrInvalidView) {
			api.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to set view: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toStateResponse(s.s.State()))
}

func (s server) setSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !s.s.SetSelectedPost(req.PostID) {
		api.WriteError(w, http.StatusNotFound, "post not found")
		return
	}

	api.WriteOK(w, http.StatusOK, toStateResponse(s.s.State()))
}

func (s server) setPostModal(w http.ResponseWriter, r *http.Request) {
	var req ModalRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.s.SetPostModalOpen(req.Open)

	api.WriteOK(w, http.StatusOK, toStateResponse(s.s.State()))
}

func (s server) setNewPostModal(w http.ResponseWriter, r *http.Request) {
	var req ModalRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.s.SetNewPostModalOpen(req.Open)

	api.WriteOK(w, http.StatusOK, toStateResponse(s.s.State()))
}

func (s server) setPlatforms(w http.ResponseWriter, r *http.Request) {
	var req PlatformsRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := make([]entities.Platform, len(req.Platforms))
	for i, v := range req.Platforms {
		p[i] = entities.Platform(v)
	}
	s.s.SetSelectedPlatforms(p)

	api.WriteOK(w, http.StatusOK, toStateResponse(s.s.State()))
}

func (s server) setStatuses(w http.ResponseWriter, r *http.Request) {
	var req StatusesRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	st := make([]entities.Status, len(req.Statuses))
	for i, v := range req.Statuses {
		st[i] = entities.Status(v)
	}
	s.s.SetSelectedStatuses(st)

	api.WriteOK(w, http.StatusOK, toStateResponse(s.s.State()))
}

func (s server) setDateRange(w http.ResponseWriter, r *http.Request) {
	var req DateRange
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.s.SetDateRange(entities.DateRange{Start: req.Start, End: req.End}); err != nil {
		if errors.Is(err, storage.ErrInvalidDateRange) {
			api.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to set date range: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toStateResponse(s.s.State()))
}

func (s server) setSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.s.SetSearchQuery(req.Query)

	api.WriteOK(w, http.StatusOK, toStateResponse(s.s.State()))
}

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Posts ListPosts
	//
	// Returns backlog: posts of the tab in insertion order and count of posts per tab.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: status
	//   description: filters posts by status
	//   in: query
	//   required: false
	//   default: all
	//   type: string
	//   enum: [all, idea, draft, approved, scheduled, published]
	// responses:
	//   '200':
	//     description: Backlog
	//     schema:
	//       "$ref": "#/definitions/BacklogResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	tab, err := planner.ParseTab(r.URL.Query().Get("status"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toBacklogResponse(tab, s.s.ListPosts()))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Creates post from new post form and closes the form.
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
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: post already exists
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreatePostRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := req.toPost()
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err = s.s.AddPost(p)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			api.WriteError(w, http.StatusConflict, err.Error())
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to add post: %s", err.Error())
		return
	}

	s.s.SetNewPostModalOpen(false)

	api.WriteOK(w, http.StatusCreated, toPost(p))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	p, err := s.s.GetPost(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "post not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to get post: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toPost(p))
}

func (s server) updatePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PATCH /posts/{id} Posts UpdatePost
	//
	// Merges given fields into post.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/UpdatePostRequest"
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req UpdatePostRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := req.toPostUpdate()
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, ok := s.s.UpdatePost(chi.URLParam(r, "id"), u)
	if !ok {
		api.WriteError(w, http.StatusNotFound, "post not found")
		return
	}

	api.WriteOK(w, http.StatusOK, toPost(p))
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	if !s.s.DeletePost(chi.URLParam(r, "id")) {
		api.WriteError(w, http.StatusNotFound, "post not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) movePost(w http.ResponseWriter, r *http.Request) {
	var req MovePostRequest
	if err := s.decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, ok := s.s.MovePostToDate(chi.URLParam(r, "id"), req.Date)
	if !ok {
		api.WriteError(w, http.StatusNotFound, "post not found")
		return
	}

	api.WriteOK(w, http.StatusOK, toPost(p))
}
