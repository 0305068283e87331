// Package planner contains calendar and backlog queries over posts.
package planner

import (
	"sort"
	"time"

	"github.com/Decentr-net/calliope/internal/entities"
)

// MaxPostsPerDay is count of posts shown in a calendar cell, the rest goes to Overflow.
const MaxPostsPerDay = 3

// UpcomingLimit is count of posts in upcoming list.
const UpcomingLimit = 5

// Day is a calendar grid cell.
type Day struct {
	Date     time.Time
	InMonth  bool
	IsToday  bool
	Posts    []entities.Post
	Overflow int
}

// StartOfDay ...
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns beginning of Sunday of t's week.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// EndOfWeek returns the last nanosecond of Saturday of t's week.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfMonth ...
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth ...
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// SameDay reports whether a falls on the same calendar day as b in b's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// PostsForDay returns posts placed on the day.
// A post is placed by its scheduled date, or by its published date when it has no scheduled one.
func PostsForDay(posts []entities.Post, day time.Time) []entities.Post {
	out := []entities.Post{}

	for _, p := range posts {
		switch {
		case p.ScheduledDate != nil:
			if SameDay(*p.ScheduledDate, day) {
				out = append(out, p)
			}
		case p.PublishedDate != nil:
			if SameDay(*p.PublishedDate, day) {
				out = append(out, p)
			}
		}
	}

	return out
}

// MonthGrid returns whole weeks covering the month, starting from Sunday.
func MonthGrid(posts []entities.Post, month time.Time, now time.Time) []Day {
	start := StartOfWeek(StartOfMonth(month))
	end := EndOfWeek(EndOfMonth(month))

	var out []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		p := PostsForDay(posts, d)

		overflow := 0
		if len(p) > MaxPostsPerDay {
			overflow = len(p) - MaxPostsPerDay
		}

		out = append(out, Day{
			Date:     d,
			InMonth:  d.Month() == month.Month() && d.Year() == month.Year(),
			IsToday:  SameDay(now, d),
			Posts:    p,
			Overflow: overflow,
		})
	}

	return out
}

// Upcoming returns first limit posts scheduled after now, the nearest first.
func Upcoming(posts []entities.Post, now time.Time, limit int) []entities.Post {
	out := []entities.Post{}

	for _, p := range posts {
		if p.ScheduledDate != nil && p.ScheduledDate.After(now) {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledDate.Before(*out[j].ScheduledDate)
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}
