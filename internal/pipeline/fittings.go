package pipeline

import (
	"regexp"
	"strings"

	"ventspec/internal"
	"ventspec/internal/patterns"
)

// ExtractFittings flags lines as named fittings and searches nearby lines
// for an associated size.
//
// A rule matches a line when any of its keywords occurs case-insensitively.
// The size is then taken from the first size-regex match found in the
// neighbourhood of up to window lines before and after the matching line,
// clamped at the sequence bounds. Line order wins over regex order. When the
// neighbourhood carries no size at all, the fitting is still emitted with an
// empty dimension: a missing size must not hide the fitting itself. Exactly
// one item is produced per (line, rule) pair.
func ExtractFittings(lines []string, set *patterns.Set, window int) []internal.ExtractedItem {
	if window < 0 {
		window = 0
	}

	items := make([]internal.ExtractedItem, 0)
	for idx, line := range lines {
		lowerLine := strings.ToLower(line)
		for _, rule := range set.Fittings {
			if !containsAnyKeyword(lowerLine, rule.Keywords) {
				continue
			}
			start := idx - window
			if start < 0 {
				start = 0
			}
			end := idx + window + 1
			if end > len(lines) {
				end = len(lines)
			}
			size := firstSizeMatch(lines[start:end], rule.SizeRegex)
			items = append(items, internal.ExtractedItem{Element: rule.Element, Dimension: size})
		}
	}
	return items
}

func firstSizeMatch(neighbourhood []string, regexes []*regexp.Regexp) string {
	for _, text := range neighbourhood {
		for _, re := range regexes {
			if match := re.FindString(text); match != "" {
				return strings.TrimSpace(match)
			}
		}
	}
	return ""
}
