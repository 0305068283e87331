// Package storage contains an interface of the application state store.
package storage

import (
	"errors"
	"time"

	"github.com/Decentr-net/calliope/internal/entities"
	"github.com/Decentr-net/calliope/internal/health"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

var (
	// ErrNotFound ...
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a post with the same id is already stored.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidView ...
	ErrInvalidView = errors.New("invalid view")
	// ErrInvalidDateRange is returned when range's start is after its end.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Storage is the single source of truth of the dashboard.
// All mutations are applied atomically in the order they are invoked.
type Storage interface {
	// State returns a snapshot of the whole state. Posts are not included.
	State() State

	ToggleDarkMode() bool
	ToggleSidebar() bool
	SetCurrentView(v entities.View) error

	ListPosts() []entities.Post
	GetPost(id string) (entities.Post, error)
	// AddPost appends the post. Empty id is replaced with a generated one, zero timestamps are set to now.
	AddPost(p entities.Post) (entities.Post, error)
	// UpdatePost merges u into the post with id. It returns false when nothing matched.
	UpdatePost(id string, u entities.PostUpdate) (entities.Post, bool)
	// DeletePost removes all posts with id. It returns false when nothing matched.
	DeletePost(id string) bool
	MovePostToDate(id string, date time.Time) (entities.Post, bool)

	SetSelectedPlatforms(p []entities.Platform)
	SetSelectedStatuses(s []entities.Status)
	SetDateRange(r entities.DateRange) error
	SetSearchQuery(q string)

	// SetSelectedPost selects post for detail editing, empty id clears selection.
	// It returns false when there is no post with id.
	SetSelectedPost(id string) bool
	SetPostModalOpen(open bool)
	SetNewPostModalOpen(open bool)

	// Subscribe returns channel of change events and function to unsubscribe.
	Subscribe() (<-chan Event, func())

	health.Pinger
}

// State is a snapshot of the UI, filter and selection state.
type State struct {
	CurrentView        entities.View
	IsSidebarCollapsed bool
	IsDarkMode         bool

	// Filters are kept as reserved state, nothing filters by them yet.
	SelectedPlatforms []entities.Platform
	SelectedStatuses  []entities.Status
	DateRange         entities.DateRange
	SearchQuery       string

	SelectedPost       *entities.Post
	IsPostModalOpen    bool
	IsNewPostModalOpen bool

	PostsCount int
}

// EventType ...
type EventType string

const (
	// PostAddedEvent ...
	PostAddedEvent EventType = "post_added"
	// PostUpdatedEvent ...
	PostUpdatedEvent EventType = "post_updated"
	// PostDeletedEvent ...
	PostDeletedEvent EventType = "post_deleted"
	// UIChangedEvent is sent on view, theme, sidebar, modal and selection changes.
	UIChangedEvent EventType = "ui_changed"
	// FiltersChangedEvent ...
	FiltersChangedEvent EventType = "filters_changed"
)

// Event notifies subscribers about state change.
type Event struct {
	Type   EventType
	PostID string
	At     time.Time
}
