package memory

import (
	"time"

	"github.com/Decentr-net/calliope/internal/entities"
)

// SamplePosts returns sample posts with dates relative to now.
func SamplePosts(now time.Time) []entities.Post {
	day := func(n int) *time.Time {
		t := now.AddDate(0, 0, n)
		return &t
	}

	return []entities.Post{
		{
			ID:            "1",
			Title:         "Product Launch Announcement",
			Description:   "Exciting news about our new feature release! Get ready for something amazing.",
			Platform:      entities.Instagram,
			Status:        entities.ScheduledStatus,
			ContentType:   entities.ReelContentType,
			ScheduledDate: day(2),
			Tags:          []string{"product", "launch", "announcement"},
			Engagement:    &entities.Engagement{},
			CreatedAt:     *day(-5),
			UpdatedAt:     now,
		},
		{
			ID:          "2",
			Title:       "Behind the Scenes",
			Description: "Take a peek at how we create magic in our studio.",
			Platform:    entities.TikTok,
			Status:      entities.DraftStatus,
			ContentType: entities.ShortContentType,
			Tags:        []string{"bts", "creative", "team"},
			CreatedAt:   *day(-3),
			UpdatedAt:   *day(-1),
		},
		{
			ID:            "3",
			Title:         "Weekly Tips Thread",
			Description:   "Share your best productivity tips with our community.",
			Platform:      entities.Twitter,
			Status:        entities.PublishedStatus,
			ContentType:   entities.PostContentType,
			ScheduledDate: day(-2),
			PublishedDate: day(-2),
			Tags:          []string{"tips", "productivity", "community"},
			Engagement:    &entities.Engagement{Likes: 234, Comments: 45, Shares: 89, Views: 5600},
			CreatedAt:     *day(-7),
			UpdatedAt:     *day(-2),
		},
		{
			ID:            "4",
			Title:         "Tutorial: Getting Started Guide",
			Description:   "Complete walkthrough of our platform features.",
			Platform:      entities.YouTube,
			Status:        entities.ScheduledStatus,
			ContentType:   entities.VideoContentType,
			ScheduledDate: day(5),
			Tags:          []string{"tutorial", "guide", "beginners"},
			CreatedAt:     *day(-10),
			UpdatedAt:     now,
		},
		{
			ID:          "5",
			Title:       "Industry Insights Report",
			Description: "Our analysis of the latest market trends and what they mean for creators.",
			Platform:    entities.LinkedIn,
			Status:      entities.ApprovedStatus,
			ContentType: entities.ArticleContentType,
			Tags:        []string{"insights", "market", "trends"},
			CreatedAt:   *day(-4),
			UpdatedAt:   *day(-1),
		},
		{
			ID:            "6",
			Title:         "Customer Success Story",
			Description:   "How our client increased engagement by 300%.",
			Platform:      entities.Instagram,
			Status:        entities.PublishedStatus,
			ContentType:   entities.PostContentType,
			PublishedDate: day(-4),
			Tags:          []string{"success", "testimonial", "growth"},
			Engagement:    &entities.Engagement{Likes: 567, Comments: 78, Shares: 123, Views: 8900},
			CreatedAt:     *day(-8),
			UpdatedAt:     *day(-4),
		},
		{
			ID:            "7",
			Title:         "Quick Poll: Favorite Feature",
			Description:   "Let us know which feature you love most!",
			Platform:      entities.Twitter,
			Status:        entities.ScheduledStatus,
			ContentType:   entities.PostContentType,
			ScheduledDate: day(1),
			Tags:          []string{"poll", "engagement", "community"},
			CreatedAt:     *day(-2),
			UpdatedAt:     now,
		},
		{
			ID:          "8",
			Title:       "Morning Motivation",
			Description: "Start your day with an inspirational quote.",
			Platform:    entities.Instagram,
			Status:      entities.IdeaStatus,
			ContentType: entities.StoryContentType,
			Tags:        []string{"motivation", "quotes", "morning"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:            "9",
			Title:         "Live Q&A Session",
			Description:   "Join us for a live session answering your questions.",
			Platform:      entities.YouTube,
			Status:        entities.ApprovedStatus,
			ContentType:   entities.VideoContentType,
			ScheduledDate: day(7),
			Tags:          []string{"live", "qa", "community"},
			CreatedAt:     *day(-6),
			UpdatedAt:     *day(-2),
		},
		{
			ID:          "10",
			Title:       "Trending Sound Challenge",
			Description: "Join the viral challenge and show your creativity!",
			Platform:    entities.TikTok,
			Status:      entities.DraftStatus,
			ContentType: entities.ShortContentType,
			Tags:        []string{"challenge", "viral", "trending"},
			CreatedAt:   *day(-1),
			UpdatedAt:   now,
		},
	}
}
