package planner

import (
	"errors"
	"fmt"

	"github.com/Decentr-net/calliope/internal/entities"
)

// ErrInvalidTab ...
var ErrInvalidTab = errors.New("invalid tab")

// Tab is a backlog filter: all posts or posts with a status.
type Tab string

// AllTab ...
const AllTab Tab = "all"

// Tabs returns tabs in display order.
func Tabs() []Tab {
	out := []Tab{AllTab}
	for _, s := range entities.Statuses {
		out = append(out, Tab(s))
	}

	return out
}

// ParseTab ...
func ParseTab(s string) (Tab, error) {
	if s == "" {
		return AllTab, nil
	}

	for _, v := range Tabs() {
		if string(v) == s {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidTab, s)
}

// Backlog returns posts matching the tab in collection order.
func Backlog(posts []entities.Post, tab Tab) []entities.Post {
	if tab == AllTab {
		return append([]entities.Post{}, posts...)
	}

	out := []entities.Post{}
	for _, p := range posts {
		if Tab(p.Status) == tab {
			out = append(out, p)
		}
	}

	return out
}

// TabCounts returns count of posts per tab.
func TabCounts(posts []entities.Post) map[Tab]int {
	out := make(map[Tab]int, len(entities.Statuses)+1)
	for _, t := range Tabs() {
		out[t] = 0
	}

	for _, p := range posts {
		out[AllTab]++
		out[Tab(p.Status)]++
	}

	return out
}
