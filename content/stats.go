package content

import (
	"fmt"
	"strings"
)

// Reading speed assumed by the read-time estimate, in words per minute.
const wordsPerMinute = 200

// ContentStats summarises a block sequence. Word counts cover prose blocks
// only; code content is excluded.
type ContentStats struct {
	TotalBlocks       int    `json:"totalBlocks"`
	WordCount         int    `json:"wordCount"`
	CodeBlocks        int    `json:"codeBlocks"`
	Images            int    `json:"images"`
	Videos            int    `json:"videos"`
	Tables            int    `json:"tables"`
	EstimatedReadTime string `json:"estimatedReadTime"`
}

// Stats computes counters and a read-time estimate for the sequence. The
// estimate is ceil(words/200) minutes with a floor of one minute.
func Stats(blocks Blocks) ContentStats {
	stats := ContentStats{TotalBlocks: len(blocks)}

	for _, block := range blocks {
		switch b := block.(type) {
		case Hero:
			stats.WordCount += len(strings.Fields(b.Content))
		case Heading:
			stats.WordCount += len(strings.Fields(b.Content))
		case Subheading:
			stats.WordCount += len(strings.Fields(b.Content))
		case Text:
			stats.WordCount += len(strings.Fields(b.Content))
		case Markdown:
			stats.WordCount += len(strings.Fields(b.Content))
		case Code:
			stats.CodeBlocks++
		case Image:
			stats.Images++
		case Video:
			stats.Videos++
		case Table:
			stats.Tables++
		}
	}

	stats.EstimatedReadTime = formatReadTime(stats.WordCount)
	return stats
}

func formatReadTime(words int) string {
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min", minutes)
}
