package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/calliope/internal/entities"
	"github.com/Decentr-net/calliope/internal/planner"
	"github.com/Decentr-net/calliope/internal/storage"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) add(d time.Duration) {
	c.t = c.t.Add(d)
}

func newClock() *clock {
	return &clock{t: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
}

func testPost(id string, c *clock) entities.Post {
	sd := c.now().AddDate(0, 0, 3)

	return entities.Post{
		ID:            id,
		Title:         "title",
		Description:   "description",
		Platform:      entities.Instagram,
		Status:        entities.ScheduledStatus,
		ContentType:   entities.ReelContentType,
		ScheduledDate: &sd,
		Tags:          []string{"a", "B", "a"},
		CreatedAt:     c.now().Add(-time.Hour),
		UpdatedAt:     c.now().Add(-time.Hour),
	}
}

func TestNew_Defaults(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now)).State()

	assert.Equal(t, entities.CalendarView, s.CurrentView)
	assert.True(t, s.IsDarkMode)
	assert.False(t, s.IsSidebarCollapsed)
	assert.Empty(t, s.SelectedPlatforms)
	assert.Empty(t, s.SelectedStatuses)
	assert.Empty(t, s.SearchQuery)
	assert.Nil(t, s.SelectedPost)
	assert.False(t, s.IsPostModalOpen)
	assert.False(t, s.IsNewPostModalOpen)
	assert.Zero(t, s.PostsCount)

	// Wednesday 2026-10-14: from Sunday 10-11 through Saturday 10-31.
	assert.Equal(t, time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC), s.DateRange.Start)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), s.DateRange.End)
}

func TestNew_Independent(t *testing.T) {
	a, b := New(), New()

	a.ToggleDarkMode()
	_, err := a.AddPost(entities.Post{Title: "a"})
	require.NoError(t, err)

	assert.False(t, a.State().IsDarkMode)
	assert.True(t, b.State().IsDarkMode)
	assert.Empty(t, b.ListPosts())
}

func TestWithSeed(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now), WithSeed())

	posts := s.ListPosts()
	require.Len(t, posts, 10)

	for i, p := range posts {
		assert.NotEmpty(t, p.Title)
		assert.True(t, p.Platform.Valid(), p.ID)
		assert.True(t, p.Status.Valid(), p.ID)
		assert.True(t, p.ContentType.Valid(), p.ID)
		assert.False(t, p.UpdatedAt.Before(p.CreatedAt), p.ID)
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}[i], p.ID)
	}

	day := planner.PostsForDay(posts, c.now().AddDate(0, 0, 2))
	require.Len(t, day, 1)
	assert.Equal(t, "1", day[0].ID)
}

func TestToggles(t *testing.T) {
	s := New()

	assert.False(t, s.ToggleDarkMode())
	assert.True(t, s.ToggleDarkMode())
	assert.True(t, s.ToggleSidebar())
	assert.True(t, s.State().IsSidebarCollapsed)
	assert.True(t, s.State().IsDarkMode)
}

func TestSetCurrentView(t *testing.T) {
	s := New()

	for _, v := range entities.Views {
		require.NoError(t, s.SetCurrentView(v))
		assert.Equal(t, v, s.State().CurrentView)
	}

	err := s.SetCurrentView("settings")
	require.True(t, errors.Is(err, storage.ErrInvalidView))
	assert.Equal(t, entities.BacklogView, s.State().CurrentView)
}

func TestAddPost(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	p := testPost("p1", c)
	added, err := s.AddPost(p)
	require.NoError(t, err)
	assert.Equal(t, p, added)

	posts := s.ListPosts()
	require.Len(t, posts, 1)
	assert.Equal(t, p, posts[0])

	got, err := s.GetPost("p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestAddPost_AppendsInOrder(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	for _, id := range []string{"c", "a", "b"} {
		_, err := s.AddPost(testPost(id, c))
		require.NoError(t, err)
	}

	var ids []string
	for _, p := range s.ListPosts() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestAddPost_GeneratesID(t *testing.T) {
	c := newClock()
	n := 0
	s := New(WithClock(c.now), WithIDGenerator(func() string {
		n++
		return []string{"x", "y"}[n-1]
	}))

	a, err := s.AddPost(entities.Post{Title: "a"})
	require.NoError(t, err)
	b, err := s.AddPost(entities.Post{Title: "b"})
	require.NoError(t, err)

	assert.Equal(t, "x", a.ID)
	assert.Equal(t, "y", b.ID)
	assert.Equal(t, c.now(), a.CreatedAt)
	assert.Equal(t, c.now(), a.UpdatedAt)
}

func TestAddPost_DefaultIDsAreUnique(t *testing.T) {
	s := New()

	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		p, err := s.AddPost(entities.Post{Title: "t"})
		require.NoError(t, err)
		require.Contains(t, p.ID, "post-")

		_, ok := seen[p.ID]
		require.False(t, ok)
		seen[p.ID] = struct{}{}
	}
}

func TestAddPost_Duplicate(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	_, err := s.AddPost(testPost("p1", c))
	require.NoError(t, err)

	_, err = s.AddPost(testPost("p1", c))
	require.True(t, errors.Is(err, storage.ErrAlreadyExists))
	assert.Len(t, s.ListPosts(), 1)
}

func TestAddPost_CopiesInput(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	p := testPost("p1", c)
	_, err := s.AddPost(p)
	require.NoError(t, err)

	p.Tags[0] = "changed"
	*p.ScheduledDate = time.Time{}

	got, err := s.GetPost("p1")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Tags[0])
	assert.False(t, got.ScheduledDate.IsZero())
}

func TestUpdatePost(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	p := testPost("p1", c)
	_, err := s.AddPost(p)
	require.NoError(t, err)
	_, err = s.AddPost(testPost("p2", c))
	require.NoError(t, err)

	c.add(time.Minute)

	title := "X"
	updated, ok := s.UpdatePost("p1", entities.PostUpdate{Title: &title})
	require.True(t, ok)

	expected := p
	expected.Title = "X"
	expected.UpdatedAt = c.now()

	assert.Equal(t, expected, updated)

	posts := s.ListPosts()
	require.Len(t, posts, 2)
	assert.Equal(t, expected, posts[0])
	assert.Equal(t, "p2", posts[1].ID)
	assert.Equal(t, "title", posts[1].Title)
}

func TestUpdatePost_AnyStatusTransition(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	_, err := s.AddPost(testPost("p1", c))
	require.NoError(t, err)

	for _, from := range entities.Statuses {
		for _, to := range entities.Statuses {
			from, to := from, to

			_, ok := s.UpdatePost("p1", entities.PostUpdate{Status: &from})
			require.True(t, ok)

			p, ok := s.UpdatePost("p1", entities.PostUpdate{Status: &to})
			require.True(t, ok)
			assert.Equal(t, to, p.Status)
		}
	}
}

func TestUpdatePost_KeepsUpdatedAtAfterCreatedAt(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	p := testPost("p1", c)
	p.CreatedAt = c.now().Add(time.Hour)
	p.UpdatedAt = p.CreatedAt
	_, err := s.AddPost(p)
	require.NoError(t, err)

	title := "t"
	updated, ok := s.UpdatePost("p1", entities.PostUpdate{Title: &title})
	require.True(t, ok)
	assert.Equal(t, p.CreatedAt, updated.UpdatedAt)
}

func TestUpdatePost_NotFound(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	_, err := s.AddPost(testPost("p1", c))
	require.NoError(t, err)
	before := s.ListPosts()

	title := "X"
	_, ok := s.UpdatePost("unknown", entities.PostUpdate{Title: &title})
	assert.False(t, ok)
	_, ok = s.MovePostToDate("unknown", c.now())
	assert.False(t, ok)

	assert.Equal(t, before, s.ListPosts())
}

func TestMovePostToDate(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	p := testPost("p1", c)
	_, err := s.AddPost(p)
	require.NoError(t, err)

	c.add(time.Second)
	date := c.now().AddDate(0, 1, 0)

	moved, ok := s.MovePostToDate("p1", date)
	require.True(t, ok)

	expected := p
	expected.ScheduledDate = &date
	expected.UpdatedAt = c.now()
	assert.Equal(t, expected, moved)
}

func TestDeletePost(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := s.AddPost(testPost(id, c))
		require.NoError(t, err)
	}

	assert.True(t, s.DeletePost("p2"))
	once := s.ListPosts()

	assert.False(t, s.DeletePost("p2"))
	assert.Equal(t, once, s.ListPosts())
	require.Len(t, once, 2)
	assert.Equal(t, "p1", once[0].ID)
	assert.Equal(t, "p3", once[1].ID)

	_, err := s.GetPost("p2")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestFilters(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	s.SetSelectedPlatforms([]entities.Platform{entities.TikTok})
	s.SetSelectedStatuses([]entities.Status{entities.DraftStatus, entities.IdeaStatus})
	s.SetSearchQuery("launch")

	r := entities.DateRange{Start: c.now(), End: c.now().AddDate(0, 0, 1)}
	require.NoError(t, s.SetDateRange(r))

	err := s.SetDateRange(entities.DateRange{Start: r.End, End: r.Start})
	require.True(t, errors.Is(err, storage.ErrInvalidDateRange))

	st := s.State()
	assert.Equal(t, []entities.Platform{entities.TikTok}, st.SelectedPlatforms)
	assert.Equal(t, []entities.Status{entities.DraftStatus, entities.IdeaStatus}, st.SelectedStatuses)
	assert.Equal(t, "launch", st.SearchQuery)
	assert.Equal(t, r, st.DateRange)

	st.SelectedPlatforms[0] = entities.YouTube
	assert.Equal(t, entities.TikTok, s.State().SelectedPlatforms[0])
}

func TestSelection(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	_, err := s.AddPost(testPost("p1", c))
	require.NoError(t, err)

	assert.False(t, s.SetSelectedPost("unknown"))
	assert.Nil(t, s.State().SelectedPost)

	require.True(t, s.SetSelectedPost("p1"))
	s.SetPostModalOpen(true)

	title := "new"
	_, ok := s.UpdatePost("p1", entities.PostUpdate{Title: &title})
	require.True(t, ok)

	st := s.State()
	require.NotNil(t, st.SelectedPost)
	assert.Equal(t, "new", st.SelectedPost.Title)
	assert.True(t, st.IsPostModalOpen)

	require.True(t, s.DeletePost("p1"))
	assert.Nil(t, s.State().SelectedPost)

	s.SetNewPostModalOpen(true)
	assert.True(t, s.State().IsNewPostModalOpen)

	assert.True(t, s.SetSelectedPost(""))
}

func TestSubscribe(t *testing.T) {
	c := newClock()
	s := New(WithClock(c.now))

	ch, unsubscribe := s.Subscribe()

	_, err := s.AddPost(testPost("p1", c))
	require.NoError(t, err)
	title := "t"
	_, ok := s.UpdatePost("p1", entities.PostUpdate{Title: &title})
	require.True(t, ok)
	_, ok = s.UpdatePost("unknown", entities.PostUpdate{Title: &title})
	require.False(t, ok)
	require.True(t, s.DeletePost("p1"))
	s.ToggleSidebar()
	s.SetSearchQuery("q")

	expected := []storage.Event{
		{Type: storage.PostAddedEvent, PostID: "p1", At: c.now()},
		{Type: storage.PostUpdatedEvent, PostID: "p1", At: c.now()},
		{Type: storage.PostDeletedEvent, PostID: "p1", At: c.now()},
		{Type: storage.UIChangedEvent, At: c.now()},
		{Type: storage.FiltersChangedEvent, At: c.now()},
	}

	for _, e := range expected {
		assert.Equal(t, e, <-ch)
	}

	unsubscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)
}

func TestSubscribe_SlowSubscriber(t *testing.T) {
	s := New(WithSubscriberBuffer(1))

	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	s.ToggleSidebar()
	s.ToggleSidebar()
	s.ToggleDarkMode()

	assert.Equal(t, storage.UIChangedEvent, (<-ch).Type)
	select {
	case e := <-ch:
		t.Fatalf("unexpected event %v", e)
	default:
	}
}

func TestPing(t *testing.T) {
	s := New(WithSeed())

	m, err := s.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"posts": 10}, m)
	assert.Equal(t, "store", s.Name())
}
