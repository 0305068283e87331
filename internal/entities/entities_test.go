package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	scheduled = time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	published = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
)

func testPost() Post {
	sd, pd := scheduled, published

	return Post{
		ID:            "1",
		Title:         "t",
		Platform:      Instagram,
		Status:        PublishedStatus,
		ContentType:   ReelContentType,
		ScheduledDate: &sd,
		PublishedDate: &pd,
		Tags:          []string{"a", "b"},
		Engagement:    &Engagement{Likes: 1, Comments: 2, Shares: 3, Views: 4},
	}
}

func TestPost_Clone(t *testing.T) {
	p := testPost()

	c := p.Clone()
	assert.Equal(t, p, c)

	c.Tags[0] = "changed"
	*c.ScheduledDate = c.ScheduledDate.Add(time.Hour)
	*c.PublishedDate = c.PublishedDate.Add(time.Hour)
	c.Engagement.Likes = 100

	assert.Equal(t, testPost(), p)
}

func TestPost_Clone_Nil(t *testing.T) {
	c := Post{ID: "1"}.Clone()

	assert.Nil(t, c.ScheduledDate)
	assert.Nil(t, c.PublishedDate)
	assert.Nil(t, c.Tags)
	assert.Nil(t, c.Engagement)
}

func TestPostUpdate_Apply(t *testing.T) {
	p := testPost()

	title := "new"
	status := ScheduledStatus
	sd := scheduled.AddDate(0, 0, 1)
	tags := []string{"x"}
	e := Engagement{Likes: 10}

	u := PostUpdate{
		Title:         &title,
		Status:        &status,
		ScheduledDate: &sd,
		Tags:          &tags,
		Engagement:    &e,
	}

	out := u.Apply(p)
	assert.Equal(t, "new", out.Title)
	assert.Equal(t, ScheduledStatus, out.Status)
	assert.Equal(t, sd, *out.ScheduledDate)
	assert.Equal(t, []string{"x"}, out.Tags)
	assert.Equal(t, Engagement{Likes: 10}, *out.Engagement)
	assert.Equal(t, p.PublishedDate, out.PublishedDate)
	assert.Equal(t, p.ContentType, out.ContentType)

	assert.Equal(t, testPost(), p)

	out.Tags[0] = "changed"
	*out.ScheduledDate = out.ScheduledDate.Add(time.Hour)
	out.Engagement.Likes = 100
	*out.PublishedDate = out.PublishedDate.Add(time.Hour)

	assert.Equal(t, []string{"x"}, tags)
	assert.Equal(t, scheduled.AddDate(0, 0, 1), sd)
	assert.Equal(t, uint64(10), e.Likes)
	assert.Equal(t, testPost(), p)
}
