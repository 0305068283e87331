// Package analytics contains generators of synthetic analytics shown on the dashboard.
package analytics

import (
	"math"
	"math/rand"
	"time"

	"github.com/Decentr-net/calliope/internal/entities"
)

// Days is count of daily records returned by AnalyticsData.
const Days = 30

// DateLayout is layout of AnalyticsData.Date.
const DateLayout = "Jan 02"

// nolint:gochecknoglobals
var (
	// PlatformColors ...
	PlatformColors = map[entities.Platform]string{
		entities.Instagram: "#E4405F",
		entities.Twitter:   "#1DA1F2",
		entities.YouTube:   "#FF0000",
		entities.LinkedIn:  "#0A66C2",
		entities.TikTok:    "#00F2EA",
	}

	// ContentTypeColors ...
	ContentTypeColors = map[entities.ContentType]string{
		entities.PostContentType:    "#8B5CF6",
		entities.ReelContentType:    "#EC4899",
		entities.StoryContentType:   "#F59E0B",
		entities.ShortContentType:   "#10B981",
		entities.VideoContentType:   "#EF4444",
		entities.ArticleContentType: "#3B82F6",
	}
)

// AnalyticsData returns random daily analytics of the last 30 days, the oldest first.
func AnalyticsData() []entities.AnalyticsData {
	return AnalyticsDataAt(time.Now(), rand.New(rand.NewSource(time.Now().UnixNano()))) // nolint:gosec
}

// AnalyticsDataAt is AnalyticsData with explicit today and random source.
func AnalyticsDataAt(now time.Time, rnd *rand.Rand) []entities.AnalyticsData {
	out := make([]entities.AnalyticsData, 0, Days)

	for i := Days - 1; i >= 0; i-- {
		out = append(out, entities.AnalyticsData{
			Date:       now.AddDate(0, 0, -i).Format(DateLayout),
			Engagement: uint64(1000 + rnd.Intn(5000)),
			Views:      uint64(5000 + rnd.Intn(15000)),
			Posts:      uint64(1 + rnd.Intn(5)),
		})
	}

	return out
}

// PlatformStats returns fixed per-platform totals.
func PlatformStats() []entities.PlatformStats {
	return []entities.PlatformStats{
		{Platform: entities.Instagram, Posts: 45, Engagement: 23500},
		{Platform: entities.Twitter, Posts: 78, Engagement: 15800},
		{Platform: entities.YouTube, Posts: 12, Engagement: 45000},
		{Platform: entities.LinkedIn, Posts: 23, Engagement: 8900},
		{Platform: entities.TikTok, Posts: 34, Engagement: 67000},
	}
}

// ContentTypeStats returns fixed content type distribution.
// Every percentage is rounded on its own, so they may not sum up to 100.
func ContentTypeStats() []entities.ContentTypeStats {
	counts := []uint64{35, 28, 45, 22, 15, 12}

	var total uint64
	for _, v := range counts {
		total += v
	}

	out := make([]entities.ContentTypeStats, len(counts))
	for i, v := range counts {
		out[i] = entities.ContentTypeStats{
			Type:       entities.ContentTypes[i],
			Count:      v,
			Percentage: uint8(math.Round(float64(v) / float64(total) * 100)),
		}
	}

	return out
}

// KPIData ...
func KPIData() entities.KPIData {
	return entities.KPIData{
		ScheduledThisWeek:  12,
		PublishedThisMonth: 47,
		BestPlatform:       entities.TikTok,
		TotalEngagement:    160200,
		GrowthPercentage:   23.5,
	}
}
