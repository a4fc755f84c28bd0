package analytics

import (
	"math"
	"sort"

	"github.com/AnshRaj112/mindjournal-backend/internal/models"
)

const (
	MinFontSize = 14
	MaxFontSize = 36
)

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// CloudTag is a tag-cloud word with its display size in pixels.
type CloudTag struct {
	Tag      string `json:"tag"`
	Count    int    `json:"count"`
	FontSize int    `json:"fontSize"`
}

// TagFrequencies counts tags across entries, most used first. Ties keep
// first-seen order.
func TagFrequencies(entries []models.JournalEntry) []TagCount {
	index := make(map[string]int)
	counts := make([]TagCount, 0)
	for _, e := range entries {
		for _, tag := range e.Tags {
			if i, ok := index[tag]; ok {
				counts[i].Count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, TagCount{Tag: tag, Count: 1})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts
}

// FontSize maps count from [min, max] onto [MinFontSize, MaxFontSize].
func FontSize(count, min, max int) int {
	if max == min {
		return (MinFontSize + MaxFontSize) / 2
	}
	ratio := float64(count-min) / float64(max-min)
	return int(math.Round(MinFontSize + ratio*(MaxFontSize-MinFontSize)))
}

func TagCloud(entries []models.JournalEntry) []CloudTag {
	freqs := TagFrequencies(entries)
	cloud := make([]CloudTag, 0, len(freqs))
	if len(freqs) == 0 {
		return cloud
	}

	// freqs is sorted, so the ends carry the extremes.
	max, min := freqs[0].Count, freqs[len(freqs)-1].Count
	for _, f := range freqs {
		cloud = append(cloud, CloudTag{Tag: f.Tag, Count: f.Count, FontSize: FontSize(f.Count, min, max)})
	}
	return cloud
}
