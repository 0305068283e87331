// Package memory is in-memory implementation of storage interface.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/calliope/internal/entities"
	"github.com/Decentr-net/calliope/internal/metrics"
	"github.com/Decentr-net/calliope/internal/planner"
	"github.com/Decentr-net/calliope/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "memory")

const defaultSubscriberBuffer = 32

// Option configures store.
type Option func(m *memory)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *memory) {
		m.now = now
	}
}

// WithIDGenerator replaces generator of ids for posts added without one.
func WithIDGenerator(f func() string) Option {
	return func(m *memory) {
		m.newID = f
	}
}

// WithSubscriberBuffer sets size of subscribers' channels.
func WithSubscriberBuffer(n int) Option {
	return func(m *memory) {
		if n > 0 {
			m.buffer = n
		}
	}
}

// WithSeed fills store with sample posts.
func WithSeed() Option {
	return func(m *memory) {
		m.seed = true
	}
}

type ui struct {
	currentView        entities.View
	isSidebarCollapsed bool
	isDarkMode         bool

	selectedPlatforms []entities.Platform
	selectedStatuses  []entities.Status
	dateRange         entities.DateRange
	searchQuery       string

	selectedPostID     string
	isPostModalOpen    bool
	isNewPostModalOpen bool
}

type memory struct {
	mu sync.RWMutex

	now    func() time.Time
	newID  func() string
	buffer int
	seed   bool

	posts []entities.Post
	ui    ui

	subscribers    map[uint64]chan storage.Event
	nextSubscriber uint64
}

// New creates new instance of store.
func New(opts ...Option) storage.Storage {
	m := &memory{
		now:         time.Now,
		newID:       func() string { return fmt.Sprintf("post-%s", uuid.New().String()) },
		buffer:      defaultSubscriberBuffer,
		subscribers: map[uint64]chan storage.Event{},
	}

	for _, o := range opts {
		o(m)
	}

	now := m.now()

	m.ui = ui{
		currentView: entities.CalendarView,
		isDarkMode:  true,
		dateRange: entities.DateRange{
			Start: planner.StartOfWeek(now),
			End:   planner.EndOfWeek(now.AddDate(0, 0, 14)),
		},
		selectedPlatforms: []entities.Platform{},
		selectedStatuses:  []entities.Status{},
	}

	m.posts = []entities.Post{}
	if m.seed {
		m.posts = SamplePosts(now)
	}

	return m
}

func (m *memory) Name() string {
	return "store"
}

func (m *memory) Ping(_ context.Context) (interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]int{"posts": len(m.posts)}, nil
}

func (m *memory) State() storage.State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := storage.State{
		CurrentView:        m.ui.currentView,
		IsSidebarCollapsed: m.ui.isSidebarCollapsed,
		IsDarkMode:         m.ui.isDarkMode,
		SelectedPlatforms:  append([]entities.Platform{}, m.ui.selectedPlatforms...),
		SelectedStatuses:   append([]entities.Status{}, m.ui.selectedStatuses...),
		DateRange:          m.ui.dateRange,
		SearchQuery:        m.ui.searchQuery,
		IsPostModalOpen:    m.ui.isPostModalOpen,
		IsNewPostModalOpen: m.ui.isNewPostModalOpen,
		PostsCount:         len(m.posts),
	}

	if i := m.indexOf(m.ui.selectedPostID); i >= 0 {
		p := m.posts[i].Clone()
		s.SelectedPost = &p
	}

	return s
}

func (m *memory) ToggleDarkMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ui.isDarkMode = !m.ui.isDarkMode
	m.publish(storage.UIChangedEvent, "")

	return m.ui.isDarkMode
}

func (m *memory) ToggleSidebar() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ui.isSidebarCollapsed = !m.ui.isSidebarCollapsed
	m.publish(storage.UIChangedEvent, "")

	return m.ui.isSidebarCollapsed
}

func (m *memory) SetCurrentView(v entities.View) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %s", storage.ErrInvalidView, v)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ui.currentView = v
	m.publish(storage.UIChangedEvent, "")

	return nil
}

func (m *memory) ListPosts() []entities.Post {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.Post, len(m.posts))
	for i, v := range m.posts {
		out[i] = v.Clone()
	}

	return out
}

func (m *memory) GetPost(id string) (entities.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return entities.Post{}, fmt.Errorf("%w: post id=%s", storage.ErrNotFound, id)
	}

	return m.posts[i].Clone(), nil
}

func (m *memory) AddPost(p entities.Post) (entities.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == "" {
		p.ID = m.newID()
	}

	if m.indexOf(p.ID) >= 0 {
		metrics.ObserveMutation("add_post", false)
		return entities.Post{}, fmt.Errorf("%w: post id=%s", storage.ErrAlreadyExists, p.ID)
	}

	now := m.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() || p.UpdatedAt.Before(p.CreatedAt) {
		p.UpdatedAt = maxTime(now, p.CreatedAt)
	}

	p = p.Clone()
	m.posts = append(m.posts, p)

	metrics.ObserveMutation("add_post", true)
	m.publish(storage.PostAddedEvent, p.ID)

	return p.Clone(), nil
}

func (m *memory) UpdatePost(id string, u entities.PostUpdate) (entities.Post, bool) {
	return m.update("update_post", id, u)
}

func (m *memory) MovePostToDate(id string, date time.Time) (entities.Post, bool) {
	return m.update("move_post", id, entities.PostUpdate{ScheduledDate: &date})
}

func (m *memory) update(operation string, id string, u entities.PostUpdate) (entities.Post, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var (
		out     entities.Post
		matched bool
	)

	now := m.now()
	for i, v := range m.posts {
		if v.ID != id {
			continue
		}

		p := u.Apply(v)
		p.UpdatedAt = maxTime(now, p.CreatedAt)
		m.posts[i] = p

		out, matched = p.Clone(), true
	}

	metrics.ObserveMutation(operation, matched)
	if !matched {
		log.WithField("id", id).WithField("operation", operation).Debug("post not found")
		return entities.Post{}, false
	}

	m.publish(storage.PostUpdatedEvent, id)

	return out, true
}

func (m *memory) DeletePost(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(id) < 0 {
		metrics.ObserveMutation("delete_post", false)
		return false
	}

	posts := make([]entities.Post, 0, len(m.posts))
	for _, v := range m.posts {
		if v.ID != id {
			posts = append(posts, v)
		}
	}
	m.posts = posts

	metrics.ObserveMutation("delete_post", true)
	m.publish(storage.PostDeletedEvent, id)

	return true
}

func (m *memory) SetSelectedPlatforms(p []entities.Platform) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ui.selectedPlatforms = append([]entities.Platform{}, p...)
	m.publish(storage.FiltersChangedEvent, "")
}

func (m *memory) SetSelectedStatuses(s []entities.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ui.selectedStatuses = append([]entities.Status{}, s...)
	m.publish(storage.FiltersChangedEvent, "")
}

func (m *memory) SetDateRange(r entities.DateRange) error {
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: start=%s end=%s", storage.ErrInvalidDateRange, r.Start, r.End)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.ui.dateRange = r
	m.publish(storage.FiltersChangedEvent, "")

	return nil
}

func (m *memory) SetSearchQuery(q string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ui.searchQuery = q
	m.publish(storage.FiltersChangedEvent, "")
}

func (m *memory) SetSelectedPost(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" && m.indexOf(id) < 0 {
		return false
	}

	m.ui.selectedPostID = id
	m.publish(storage.UIChangedEvent, id)

	return true
}

func (m *memory) SetPostModalOpen(open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ui.isPostModalOpen = open
	m.publish(storage.UIChangedEvent, "")
}

func (m *memory) SetNewPostModalOpen(open bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ui.isNewPostModalOpen = open
	m.publish(storage.UIChangedEvent, "")
}

func (m *memory) Subscribe() (<-chan storage.Event, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubscriber
	m.nextSubscriber++

	ch := make(chan storage.Event, m.buffer)
	m.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()

			delete(m.subscribers, id)
			close(ch)
		})
	}
}

// publish must be called with locked mu.
func (m *memory) publish(t storage.EventType, postID string) {
	e := storage.Event{
		Type:   t,
		PostID: postID,
		At:     m.now(),
	}

	for id, ch := range m.subscribers {
		select {
		case ch <- e:
		default:
			metrics.DroppedEvents.Inc()
			log.WithField("subscriber", id).WithField("event", t).Warn("subscriber is too slow, event dropped")
		}
	}
}

// indexOf must be called with locked mu.
func (m *memory) indexOf(id string) int {
	if id == "" {
		return -1
	}

	for i, v := range m.posts {
		if v.ID == id {
			return i
		}
	}

	return -1
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
