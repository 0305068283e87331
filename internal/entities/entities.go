// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Platform is a target social network of a post.
type Platform string

const (
	Instagram Platform = "instagram"
	Twitter   Platform = "twitter"
	YouTube   Platform = "youtube"
	LinkedIn  Platform = "linkedin"
	TikTok    Platform = "tiktok"
)

// Platforms lists all platforms in display order.
// nolint:gochecknoglobals
var Platforms = []Platform{Instagram, Twitter, YouTube, LinkedIn, TikTok}

// Valid ...
func (p Platform) Valid() bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

// Status is a lifecycle stage of a post.
// Any status may be set to any other one, there is no enforced workflow.
type Status string

const (
	IdeaStatus      Status = "idea"
	DraftStatus     Status = "draft"
	ApprovedStatus  Status = "approved"
	ScheduledStatus Status = "scheduled"
	PublishedStatus Status = "published"
)

// Statuses lists all statuses in workflow order.
// nolint:gochecknoglobals
var Statuses = []Status{IdeaStatus, DraftStatus, ApprovedStatus, ScheduledStatus, PublishedStatus}

// Valid ...
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// ContentType is a format of a post.
type ContentType string

const (
	PostContentType    ContentType = "post"
	ReelContentType    ContentType = "reel"
	StoryContentType   ContentType = "story"
	ShortContentType   ContentType = "short"
	VideoContentType   ContentType = "video"
	ArticleContentType ContentType = "article"
)

// ContentTypes lists all content types.
// nolint:gochecknoglobals
var ContentTypes = []ContentType{
	PostContentType,
	ReelContentType,
	StoryContentType,
	ShortContentType,
	VideoContentType,
	ArticleContentType,
}

// Valid ...
func (c ContentType) Valid() bool {
	for _, v := range ContentTypes {
		if v == c {
			return true
		}
	}
	return false
}

// View is a dashboard screen. Exactly one view is current at a time.
type View string

const (
	CalendarView  View = "calendar"
	AIView        View = "ai"
	AnalyticsView View = "analytics"
	BacklogView   View = "backlog"
)

// Views lists all views.
// nolint:gochecknoglobals
var Views = []View{CalendarView, AIView, AnalyticsView, BacklogView}

// Valid ...
func (v View) Valid() bool {
	for _, x := range Views {
		if x == v {
			return true
		}
	}
	return false
}

// Engagement ...
type Engagement struct {
	Likes    uint64
	Comments uint64
	Shares   uint64
	Views    uint64
}

// Post is a unit of plannable content.
type Post struct {
	ID            string
	Title         string
	Description   string
	Platform      Platform
	Status        Status
	ContentType   ContentType
	ScheduledDate *time.Time
	PublishedDate *time.Time
	Tags          []string
	Engagement    *Engagement
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Clone returns a deep copy of the post.
func (p Post) Clone() Post {
	out := p

	if p.ScheduledDate != nil {
		t := *p.ScheduledDate
		out.ScheduledDate = &t
	}
	if p.PublishedDate != nil {
		t := *p.PublishedDate
		out.PublishedDate = &t
	}
	if p.Tags != nil {
		out.Tags = append(make([]string, 0, len(p.Tags)), p.Tags...)
	}
	if p.Engagement != nil {
		e := *p.Engagement
		out.Engagement = &e
	}

	return out
}

// PostUpdate is a set of fields to be merged into a post. Nil fields are left untouched.
type PostUpdate struct {
	Title         *string
	Description   *string
	Platform      *Platform
	Status        *Status
	ContentType   *ContentType
	ScheduledDate *time.Time
	PublishedDate *time.Time
	Tags          *[]string
	Engagement    *Engagement
}

// Apply returns a copy of p with the update merged in.
func (u PostUpdate) Apply(p Post) Post {
	out := p.Clone()

	if u.Title != nil {
		out.Title = *u.Title
	}
	if u.Description != nil {
		out.Description = *u.Description
	}
	if u.Platform != nil {
		out.Platform = *u.Platform
	}
	if u.Status != nil {
		out.Status = *u.Status
	}
	if u.ContentType != nil {
		out.ContentType = *u.ContentType
	}
	if u.ScheduledDate != nil {
		t := *u.ScheduledDate
		out.ScheduledDate = &t
	}
	if u.PublishedDate != nil {
		t := *u.PublishedDate
		out.PublishedDate = &t
	}
	if u.Tags != nil {
		out.Tags = append(make([]string, 0, len(*u.Tags)), *u.Tags...)
	}
	if u.Engagement != nil {
		e := *u.Engagement
		out.Engagement = &e
	}

	return out
}

// DateRange ...
type DateRange struct {
	Start time.Time
	End   time.Time
}

// AIContentSuggestion is an ephemeral content idea. It is never stored as a post.
type AIContentSuggestion struct {
	ID                 string
	Title              string
	Caption            string
	Platform           Platform
	ContentType        ContentType
	SuggestedDateRange DateRange
	Hashtags           []string
}

// PostingTime ...
type PostingTime struct {
	Day  string
	Time string
}

// AnalyticsData is a single day of synthetic analytics.
type AnalyticsData struct {
	Date       string
	Engagement uint64
	Views      uint64
	Posts      uint64
}

// PlatformStats ...
type PlatformStats struct {
	Platform   Platform
	Posts      uint64
	Engagement uint64
}

// ContentTypeStats ...
// Percentages are rounded independently and may not sum up to 100.
type ContentTypeStats struct {
	Type       ContentType
	Count      uint64
	Percentage uint8
}

// KPIData ...
type KPIData struct {
	ScheduledThisWeek  uint64
	PublishedThisMonth uint64
	BestPlatform       Platform
	TotalEngagement    uint64
	GrowthPercentage   float64
}
