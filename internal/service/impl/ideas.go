package impl

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Decentr-net/calliope/internal/entities"
	"github.com/Decentr-net/calliope/internal/service"
)

// nolint:gochecknoglobals
var postingTimes = map[entities.Platform][]entities.PostingTime{
	entities.Instagram: {
		{Day: "Monday", Time: "11:00 AM"},
		{Day: "Wednesday", Time: "7:00 PM"},
		{Day: "Friday", Time: "12:00 PM"},
	},
	entities.Twitter: {
		{Day: "Tuesday", Time: "9:00 AM"},
		{Day: "Thursday", Time: "12:00 PM"},
		{Day: "Saturday", Time: "10:00 AM"},
	},
	entities.YouTube: {
		{Day: "Saturday", Time: "2:00 PM"},
		{Day: "Sunday", Time: "11:00 AM"},
		{Day: "Thursday", Time: "5:00 PM"},
	},
	entities.LinkedIn: {
		{Day: "Tuesday", Time: "10:00 AM"},
		{Day: "Wednesday", Time: "12:00 PM"},
		{Day: "Thursday", Time: "9:00 AM"},
	},
	entities.TikTok: {
		{Day: "Tuesday", Time: "7:00 PM"},
		{Day: "Thursday", Time: "9:00 PM"},
		{Day: "Friday", Time: "5:00 PM"},
	},
}

// slug removes all whitespaces keeping the case.
func slug(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return s
}

type idea struct {
	title       string
	caption     string
	contentType entities.ContentType
	from, to    int
	hashtags    []string
}

func ideas(p service.IdeasParams, now time.Time) []entities.AIContentSuggestion {
	topic, audience := p.Topic, p.TargetAudience
	tag := "#" + slug(topic)
	year := now.Year()

	guide := entities.PostContentType
	switch p.Platform {
	case entities.YouTube:
		guide = entities.VideoContentType
	case entities.TikTok:
		guide = entities.ShortContentType
	}

	trends := entities.PostContentType
	if p.Platform == entities.LinkedIn {
		trends = entities.ArticleContentType
	}

	templates := []idea{
		{
			title:       fmt.Sprintf("%s: Ultimate Guide for %s", topic, audience),
			caption:     fmt.Sprintf("Discover everything you need to know about %s. This comprehensive guide is perfect for %s looking to level up! 🚀", topic, audience),
			contentType: guide,
			from:        1,
			to:          3,
			hashtags:    []string{tag, "#tips", "#guide", "#viral"},
		},
		{
			title:       fmt.Sprintf("5 Myths About %s Debunked", topic),
			caption:     fmt.Sprintf("Think you know everything about %s? Think again! 🤔 Here are 5 common misconceptions that %s need to stop believing.", topic, audience),
			contentType: entities.ReelContentType,
			from:        3,
			to:          5,
			hashtags:    []string{"#mythbusters", tag, "#facts"},
		},
		{
			title:       fmt.Sprintf("Day in the Life: %s Edition", topic),
			caption:     fmt.Sprintf("Ever wondered what a day looks like when you're deep into %s? Follow along as we show %s the real deal! ✨", topic, audience),
			contentType: entities.StoryContentType,
			from:        4,
			to:          6,
			hashtags:    []string{"#dayinthelife", "#vlog", tag},
		},
		{
			title:       fmt.Sprintf("%s Trends You Can't Ignore in %d", topic, year),
			caption:     fmt.Sprintf("The landscape of %s is changing fast. Here's what %s need to watch out for! 📈", topic, audience),
			contentType: trends,
			from:        5,
			to:          7,
			hashtags:    []string{fmt.Sprintf("#trends%d", year), tag, "#insights"},
		},
		{
			title:       fmt.Sprintf("Quick Tips: Master %s in 60 Seconds", topic),
			caption:     fmt.Sprintf("No time? No problem! ⏱️ Here are rapid-fire tips about %s that every %s should know.", topic, firstWord(audience)),
			contentType: entities.ShortContentType,
			from:        6,
			to:          8,
			hashtags:    []string{"#quicktips", "#60seconds", tag},
		},
	}

	out := make([]entities.AIContentSuggestion, len(templates))
	for i, v := range templates {
		out[i] = entities.AIContentSuggestion{
			ID:          fmt.Sprintf("ai-%d-%d", now.UnixMilli(), i+1),
			Title:       v.title,
			Caption:     v.caption,
			Platform:    p.Platform,
			ContentType: v.contentType,
			SuggestedDateRange: entities.DateRange{
				Start: now.AddDate(0, 0, v.from),
				End:   now.AddDate(0, 0, v.to),
			},
			Hashtags: v.hashtags,
		}
	}

	return out
}
