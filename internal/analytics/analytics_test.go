package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/calliope/internal/entities"
)

func TestAnalyticsDataAt(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	out := AnalyticsDataAt(now, rand.New(rand.NewSource(1)))
	require.Len(t, out, Days)

	assert.Equal(t, "Sep 15", out[0].Date)
	assert.Equal(t, "Oct 14", out[Days-1].Date)

	for _, v := range out {
		assert.True(t, v.Engagement >= 1000 && v.Engagement < 6000, v.Engagement)
		assert.True(t, v.Views >= 5000 && v.Views < 20000, v.Views)
		assert.True(t, v.Posts >= 1 && v.Posts < 6, v.Posts)
	}

	assert.Equal(t, out, AnalyticsDataAt(now, rand.New(rand.NewSource(1))))
}

func TestAnalyticsData(t *testing.T) {
	a := AnalyticsData()
	require.Len(t, a, Days)
	assert.Equal(t, time.Now().Format(DateLayout), a[Days-1].Date)

	a[0].Views = 0
	assert.NotZero(t, AnalyticsData()[0].Views)
}

func TestPlatformStats(t *testing.T) {
	out := PlatformStats()
	require.Len(t, out, len(entities.Platforms))

	var total uint64
	for i, v := range out {
		assert.Equal(t, entities.Platforms[i], v.Platform)
		total += v.Engagement
	}

	assert.Equal(t, KPIData().TotalEngagement, total)

	out[0].Posts = 0
	assert.EqualValues(t, 45, PlatformStats()[0].Posts)
}

func TestContentTypeStats(t *testing.T) {
	out := ContentTypeStats()
	require.Len(t, out, len(entities.ContentTypes))

	percentages := make([]uint8, len(out))
	for i, v := range out {
		assert.Equal(t, entities.ContentTypes[i], v.Type)
		percentages[i] = v.Percentage
	}

	assert.Equal(t, []uint8{22, 18, 29, 14, 10, 8}, percentages)
}

func TestKPIData(t *testing.T) {
	assert.Equal(t, entities.KPIData{
		ScheduledThisWeek:  12,
		PublishedThisMonth: 47,
		BestPlatform:       entities.TikTok,
		TotalEngagement:    160200,
		GrowthPercentage:   23.5,
	}, KPIData())
}

func TestColors(t *testing.T) {
	for _, p := range entities.Platforms {
		assert.NotEmpty(t, PlatformColors[p], p)
	}

	for _, c := range entities.ContentTypes {
		assert.NotEmpty(t, ContentTypeColors[c], c)
	}
}
