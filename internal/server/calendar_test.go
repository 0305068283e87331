package server

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/calliope/internal/entities"
)

func Test_getMonth(t *testing.T) {
	s, _, router := newTestRouter(t)

	posts := make([]entities.Post, 5)
	for i := range posts {
		posts[i] = testPost()
	}
	s.EXPECT().ListPosts().Return(posts)

	w := serve(t, router, http.MethodGet, "/v1/calendar/2026/10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp CalendarMonthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 10, resp.Month)
	require.Len(t, resp.Days, 35)
	assert.Equal(t, "2026-09-27", resp.Days[0].Date)
	assert.False(t, resp.Days[0].InMonth)
	assert.Equal(t, "2026-10-31", resp.Days[34].Date)

	for _, d := range resp.Days {
		if d.Date == "2026-10-20" {
			assert.Len(t, d.Posts, 3)
			assert.Equal(t, 2, d.Overflow)
			continue
		}
		assert.Empty(t, d.Posts)
		assert.Zero(t, d.Overflow)
	}
}

func Test_getMonth_BadRequest(t *testing.T) {
	_, _, router := newTestRouter(t)

	for _, path := range []string{"/v1/calendar/2026/13", "/v1/calendar/2026/0", "/v1/calendar/year/1"} {
		assert.Equal(t, http.StatusBadRequest, serve(t, router, http.MethodGet, path, "").Code, path)
	}
}

func Test_getDay(t *testing.T) {
	s, _, router := newTestRouter(t)

	s.EXPECT().ListPosts().Return([]entities.Post{testPost()}).Times(2)

	w := serve(t, router, http.MethodGet, "/v1/calendar/days/2026-10-20", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[`+testPostJSON+`]`, w.Body.String())

	w = serve(t, router, http.MethodGet, "/v1/calendar/days/2026-10-21", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = serve(t, router, http.MethodGet, "/v1/calendar/days/20-10-2026", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_getUpcoming(t *testing.T) {
	s, _, router := newTestRouter(t)

	var posts []entities.Post
	for i, d := range []int{3, -1, 1, 7, 2, 5, 4} {
		p := testPost()
		p.ID = string(rune('a' + i))
		sd := time.Now().AddDate(0, 0, d)
		p.ScheduledDate = &sd
		posts = append(posts, p)
	}
	s.EXPECT().ListPosts().Return(posts)

	w := serve(t, router, http.MethodGet, "/v1/calendar/upcoming", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	ids := make([]string, len(resp))
	for i, v := range resp {
		ids[i] = v.ID
	}
	assert.Equal(t, []string{"c", "e", "a", "g", "f"}, ids)
}
