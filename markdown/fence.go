package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	fileOptionRe      = regexp.MustCompile(`file:([^\s,]+)`)
	highlightOptionRe = regexp.MustCompile(`highlight:([0-9,-]+)`)
)

// parseFenceOptions reads the bracketed options string of a fence opener,
// e.g. "file:client.ts,highlight:1,3-5". Only the file and highlight keys
// are recognised; anything else is ignored.
func parseFenceOptions(options string) (fileName string, highlights []int) {
	if strings.TrimSpace(options) == "" {
		return "", nil
	}

	if m := fileOptionRe.FindStringSubmatch(options); m != nil {
		fileName = m[1]
	}

	if m := highlightOptionRe.FindStringSubmatch(options); m != nil {
		highlights = expandHighlightRanges(m[1])
	}

	return fileName, highlights
}

// expandHighlightRanges turns "1,3-5,7" into [1 3 4 5 7]. Line numbers are
// 1-based; malformed parts and inverted ranges are skipped.
func expandHighlightRanges(spec string) []int {
	var lines []int

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if start, end, ok := strings.Cut(part, "-"); ok {
			from, errFrom := strconv.Atoi(start)
			to, errTo := strconv.Atoi(end)
			if errFrom != nil || errTo != nil {
				continue
			}
			for n := from; n <= to; n++ {
				lines = append(lines, n)
			}
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		lines = append(lines, n)
	}

	return lines
}
