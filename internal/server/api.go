package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/Decentr-net/calliope/internal/analytics"
	"github.com/Decentr-net/calliope/internal/entities"
	"github.com/Decentr-net/calliope/internal/planner"
	"github.com/Decentr-net/calliope/internal/storage"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Engagement ...
// swagger:model
type Engagement struct {
	Likes    uint64 `json:"likes"`
	Comments uint64 `json:"comments"`
	Shares   uint64 `json:"shares"`
	Views    uint64 `json:"views"`
}

// Post ...
// swagger:model
type Post struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Platform      string      `json:"platform"`
	Status        string      `json:"status"`
	ContentType   string      `json:"contentType"`
	ScheduledDate *time.Time  `json:"scheduledDate,omitempty"`
	PublishedDate *time.Time  `json:"publishedDate,omitempty"`
	Tags          []string    `json:"tags"`
	Engagement    *Engagement `json:"engagement,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// DateRange ...
// swagger:model
type DateRange struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required"`
}

// StateResponse is a snapshot of the dashboard state.
// swagger:model
type StateResponse struct {
	CurrentView        string    `json:"currentView"`
	IsSidebarCollapsed bool      `json:"isSidebarCollapsed"`
	IsDarkMode         bool      `json:"isDarkMode"`
	SelectedPlatforms  []string  `json:"selectedPlatforms"`
	SelectedStatuses   []string  `json:"selectedStatuses"`
	DateRange          DateRange `json:"dateRange"`
	SearchQuery        string    `json:"searchQuery"`
	SelectedPost       *Post     `json:"selectedPost"`
	IsPostModalOpen    bool      `json:"isPostModalOpen"`
	IsNewPostModalOpen bool      `json:"isNewPostModalOpen"`
	PostsCount         int       `json:"postsCount"`
}

// DarkModeResponse ...
// swagger:model
type DarkModeResponse struct {
	IsDarkMode bool `json:"isDarkMode"`
}

// SidebarResponse ...
// swagger:model
type SidebarResponse struct {
	IsSidebarCollapsed bool `json:"isSidebarCollapsed"`
}

// ViewRequest ...
// swagger:model
type ViewRequest struct {
	View string `json:"view" validate:"required"`
}

// SelectionRequest selects a post, empty postId clears selection.
// swagger:model
type SelectionRequest struct {
	PostID string `json:"postId"`
}

// ModalRequest ...
// swagger:model
type ModalRequest struct {
	Open bool `json:"open"`
}

// PlatformsRequest ...
// swagger:model
type PlatformsRequest struct {
	Platforms []string `json:"platforms" validate:"dive,platform"`
}

// StatusesRequest ...
// swagger:model
type StatusesRequest struct {
	Statuses []string `json:"statuses" validate:"dive,status"`
}

// SearchRequest ...
// swagger:model
type SearchRequest struct {
	Query string `json:"query"`
}

// CreatePostRequest is the new post form.
// Tags are comma separated. Post is scheduled only when both date and time are set.
// swagger:model
type CreatePostRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	Platform      string `json:"platform" validate:"omitempty,platform"`
	Status        string `json:"status" validate:"omitempty,oneof=idea draft approved scheduled"`
	ContentType   string `json:"contentType" validate:"omitempty,content_type"`
	Tags          string `json:"tags"`
	ScheduledDate string `json:"scheduledDate" validate:"omitempty,datetime=2006-01-02"`
	ScheduledTime string `json:"scheduledTime" validate:"omitempty,datetime=15:04"`
}

// UpdatePostRequest contains fields to be changed, absent fields are kept.
// swagger:model
type UpdatePostRequest struct {
	Title         *string     `json:"title"`
	Description   *string     `json:"description"`
	Platform      *string     `json:"platform"`
	Status        *string     `json:"status"`
	ContentType   *string     `json:"contentType"`
	ScheduledDate *time.Time  `json:"scheduledDate"`
	Tags          *[]string   `json:"tags"`
	Engagement    *Engagement `json:"engagement"`
}

// MovePostRequest ...
// swagger:model
type MovePostRequest struct {
	Date time.Time `json:"date" validate:"required"`
}

// BacklogResponse ...
// swagger:model
type BacklogResponse struct {
	Tab    string         `json:"tab"`
	Posts  []Post         `json:"posts"`
	Counts map[string]int `json:"counts"`
}

// CalendarDay is a calendar cell. Posts contains the first 3 posts of the day.
// swagger:model
type CalendarDay struct {
	Date     string `json:"date"`
	InMonth  bool   `json:"inMonth"`
	IsToday  bool   `json:"isToday"`
	Posts    []Post `json:"posts"`
	Overflow int    `json:"overflow"`
}

// CalendarMonthResponse ...
// swagger:model
type CalendarMonthResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// AnalyticsData ...
// swagger:model
type AnalyticsData struct {
	Date       string `json:"date"`
	Engagement uint64 `json:"engagement"`
	Views      uint64 `json:"views"`
	Posts      uint64 `json:"posts"`
}

// PlatformStats ...
// swagger:model
type PlatformStats struct {
	Platform   string `json:"platform"`
	Posts      uint64 `json:"posts"`
	Engagement uint64 `json:"engagement"`
}

// ContentTypeStats ...
// swagger:model
type ContentTypeStats struct {
	Type       string `json:"type"`
	Count      uint64 `json:"count"`
	Percentage uint8  `json:"percentage"`
}

// KPIData ...
// swagger:model
type KPIData struct {
	ScheduledThisWeek  uint64  `json:"scheduledThisWeek"`
	PublishedThisMonth uint64  `json:"publishedThisMonth"`
	BestPlatform       string  `json:"bestPlatform"`
	TotalEngagement    uint64  `json:"totalEngagement"`
	GrowthPercentage   float64 `json:"growthPercentage"`
}

// ColorsResponse ...
// swagger:model
type ColorsResponse struct {
	Platforms    map[string]string `json:"platforms"`
	ContentTypes map[string]string `json:"contentTypes"`
}

// IdeasRequest ...
// swagger:model
type IdeasRequest struct {
	Topic          string `json:"topic" validate:"required"`
	TargetAudience string `json:"targetAudience" validate:"required"`
	Platform       string `json:"platform" validate:"required,platform"`
}

// HashtagsRequest ...
// swagger:model
type HashtagsRequest struct {
	Topic    string `json:"topic" validate:"required"`
	Platform string `json:"platform" validate:"required,platform"`
}

// AIContentSuggestion ...
// swagger:model
type AIContentSuggestion struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Caption            string    `json:"caption"`
	Platform           string    `json:"platform"`
	ContentType        string    `json:"contentType"`
	SuggestedDateRange DateRange `json:"suggestedDateRange"`
	Hashtags           []string  `json:"hashtags"`
}

// HashtagsResponse ...
// swagger:model
type HashtagsResponse struct {
	Hashtags []string `json:"hashtags"`
}

// PostingTime ...
// swagger:model
type PostingTime struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// Event is a store change notification sent over the events stream.
// swagger:model
type Event struct {
	Type   string    `json:"type"`
	PostID string    `json:"postId,omitempty"`
	At     time.Time `json:"at"`
}

func toPost(p entities.Post) Post {
	out := Post{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Platform:      string(p.Platform),
		Status:        string(p.Status),
		ContentType:   string(p.ContentType),
		ScheduledDate: p.ScheduledDate,
		PublishedDate: p.PublishedDate,
		Tags:          p.Tags,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if out.Tags == nil {
		out.Tags = []string{}
	}

	if p.Engagement != nil {
		out.Engagement = &Engagement{
			Likes:    p.Engagement.Likes,
			Comments: p.Engagement.Comments,
			Shares:   p.Engagement.Shares,
			Views:    p.Engagement.Views,
		}
	}

	return out
}

func toPosts(p []entities.Post) []Post {
	out := make([]Post, len(p))
	for i, v := range p {
		out[i] = toPost(v)
	}
	return out
}

func toStateResponse(s storage.State) StateResponse {
	out := StateResponse{
		CurrentView:        string(s.CurrentView),
		IsSidebarCollapsed: s.IsSidebarCollapsed,
		IsDarkMode:         s.IsDarkMode,
		SelectedPlatforms:  make([]string, len(s.SelectedPlatforms)),
		SelectedStatuses:   make([]string, len(s.SelectedStatuses)),
		DateRange:          DateRange{Start: s.DateRange.Start, End: s.DateRange.End},
		SearchQuery:        s.SearchQuery,
		IsPostModalOpen:    s.IsPostModalOpen,
		IsNewPostModalOpen: s.IsNewPostModalOpen,
		PostsCount:         s.PostsCount,
	}

	for i, v := range s.SelectedPlatforms {
		out.SelectedPlatforms[i] = string(v)
	}
	for i, v := range s.SelectedStatuses {
		out.SelectedStatuses[i] = string(v)
	}

	if s.SelectedPost != nil {
		p := toPost(*s.SelectedPost)
		out.SelectedPost = &p
	}

	return out
}

func toBacklogResponse(tab planner.Tab, posts []entities.Post) BacklogResponse {
	counts := map[string]int{}
	for k, v := range planner.TabCounts(posts) {
		counts[string(k)] = v
	}

	return BacklogResponse{
		Tab:    string(tab),
		Posts:  toPosts(planner.Backlog(posts, tab)),
		Counts: counts,
	}
}

func toCalendarMonthResponse(month time.Time, days []planner.Day) CalendarMonthResponse {
	out := CalendarMonthResponse{
		Year:  month.Year(),
		Month: int(month.Month()),
		Days:  make([]CalendarDay, len(days)),
	}

	for i, d := range days {
		shown := d.Posts
		if len(shown) > planner.MaxPostsPerDay {
			shown = shown[:planner.MaxPostsPerDay]
		}

		out.Days[i] = CalendarDay{
			Date:     d.Date.Format(dateLayout),
			InMonth:  d.InMonth,
			IsToday:  d.IsToday,
			Posts:    toPosts(shown),
			Overflow: d.Overflow,
		}
	}

	return out
}

func toAnalyticsData(d []entities.AnalyticsData) []AnalyticsData {
	out := make([]AnalyticsData, len(d))
	for i, v := range d {
		out[i] = AnalyticsData{
			Date:       v.Date,
			Engagement: v.Engagement,
			Views:      v.Views,
			Posts:      v.Posts,
		}
	}
	return out
}

func toPlatformStats(s []entities.PlatformStats) []PlatformStats {
	out := make([]PlatformStats, len(s))
	for i, v := range s {
		out[i] = PlatformStats{
			Platform:   string(v.Platform),
			Posts:      v.Posts,
			Engagement: v.Engagement,
		}
	}
	return out
}

func toContentTypeStats(s []entities.ContentTypeStats) []ContentTypeStats {
	out := make([]ContentTypeStats, len(s))
	for i, v := range s {
		out[i] = ContentTypeStats{
			Type:       string(v.Type),
			Count:      v.Count,
			Percentage: v.Percentage,
		}
	}
	return out
}

func toKPIData(k entities.KPIData) KPIData {
	return KPIData{
		ScheduledThisWeek:  k.ScheduledThisWeek,
		PublishedThisMonth: k.PublishedThisMonth,
		BestPlatform:       string(k.BestPlatform),
		TotalEngagement:    k.TotalEngagement,
		GrowthPercentage:   k.GrowthPercentage,
	}
}

func toColorsResponse() ColorsResponse {
	out := ColorsResponse{
		Platforms:    make(map[string]string, len(analytics.PlatformColors)),
		ContentTypes: make(map[string]string, len(analytics.ContentTypeColors)),
	}

	for k, v := range analytics.PlatformColors {
		out.Platforms[string(k)] = v
	}
	for k, v := range analytics.ContentTypeColors {
		out.ContentTypes[string(k)] = v
	}

	return out
}

func toSuggestions(s []entities.AIContentSuggestion) []AIContentSuggestion {
	out := make([]AIContentSuggestion, len(s))
	for i, v := range s {
		out[i] = AIContentSuggestion{
			ID:          v.ID,
			Title:       v.Title,
			Caption:     v.Caption,
			Platform:    string(v.Platform),
			ContentType: string(v.ContentType),
			SuggestedDateRange: DateRange{
				Start: v.SuggestedDateRange.Start,
				End:   v.SuggestedDateRange.End,
			},
			Hashtags: v.Hashtags,
		}
	}
	return out
}

func toPostingTimes(t []entities.PostingTime) []PostingTime {
	out := make([]PostingTime, len(t))
	for i, v := range t {
		out[i] = PostingTime{Day: v.Day, Time: v.Time}
	}
	return out
}

func toEvent(e storage.Event) Event {
	return Event{
		Type:   string(e.Type),
		PostID: e.PostID,
		At:     e.At,
	}
}

func (r CreatePostRequest) toPost() (entities.Post, error) {
	p := entities.Post{
		Title:       r.Title,
		Description: r.Description,
		Platform:    entities.Instagram,
		Status:      entities.DraftStatus,
		ContentType: entities.PostContentType,
		Tags:        splitTags(r.Tags),
	}

	if r.Platform != "" {
		p.Platform = entities.Platform(r.Platform)
	}
	if r.Status != "" {
		p.Status = entities.Status(r.Status)
	}
	if r.ContentType != "" {
		p.ContentType = entities.ContentType(r.ContentType)
	}

	if r.ScheduledDate != "" && r.ScheduledTime != "" {
		t, err := time.ParseInLocation(dateLayout+"T"+timeLayout, r.ScheduledDate+"T"+r.ScheduledTime, time.UTC)
		if err != nil {
			return entities.Post{}, err
		}
		p.ScheduledDate = &t
	}

	return p, nil
}

func (r UpdatePostRequest) toPostUpdate() (entities.PostUpdate, error) {
	u := entities.PostUpdate{
		Title:         r.Title,
		Description:   r.Description,
		ScheduledDate: r.ScheduledDate,
	}

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return entities.PostUpdate{}, fmt.Errorf("%w: title is empty", errInvalidRequest)
	}
	if r.Platform != nil {
		v := entities.Platform(*r.Platform)
		if !v.Valid() {
			return entities.PostUpdate{}, fmt.Errorf("%w: invalid platform %s", errInvalidRequest, v)
		}
		u.Platform = &v
	}
	if r.Status != nil {
		v := entities.Status(*r.Status)
		if !v.Valid() {
			return entities.PostUpdate{}, fmt.Errorf("%w: invalid status %s", errInvalidRequest, v)
		}
		u.Status = &v
	}
	if r.ContentType != nil {
		v := entities.ContentType(*r.ContentType)
		if !v.Valid() {
			return entities.PostUpdate{}, fmt.Errorf("%w: invalid content type %s", errInvalidRequest, v)
		}
		u.ContentType = &v
	}
	if r.Tags != nil {
		tags := cleanTags(*r.Tags)
		u.Tags = &tags
	}
	if r.Engagement != nil {
		u.Engagement = &entities.Engagement{
			Likes:    r.Engagement.Likes,
			Comments: r.Engagement.Comments,
			Shares:   r.Engagement.Shares,
			Views:    r.Engagement.Views,
		}
	}

	return u, nil
}

// splitTags splits comma separated tags.
func splitTags(s string) []string {
	return cleanTags(strings.Split(s, ","))
}

// cleanTags trims tags and drops empty ones.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, v := range tags {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
