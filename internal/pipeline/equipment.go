package pipeline

import (
	"strings"

	"ventspec/internal"
	"ventspec/internal/patterns"
)

// ExtractEquipment flags lines as named equipment.
//
// For each rule, every model-code regex match on a line yields one item with
// the matched substring as its dimension; several model codes on one line
// yield several items. A regex hit suppresses keyword matching for that
// line/rule pair, since an extracted code is the stronger signal. Without a
// regex hit, a case-insensitive keyword occurrence yields exactly one item
// carrying the whole trimmed line as its dimension.
func ExtractEquipment(lines []string, set *patterns.Set) []internal.ExtractedItem {
	items := make([]internal.ExtractedItem, 0)
	for _, rule := range set.Equipment {
		for _, line := range lines {
			if line == "" {
				continue
			}

			matchedRegex := false
			for _, re := range rule.ModelRegex {
				for _, match := range re.FindAllString(line, -1) {
					value := strings.TrimSpace(match)
					if value == "" {
						continue
					}
					items = append(items, internal.ExtractedItem{Element: rule.Element, Dimension: value})
					matchedRegex = true
				}
			}
			if matchedRegex {
				continue
			}

			if containsAnyKeyword(strings.ToLower(line), rule.Keywords) {
				items = append(items, internal.ExtractedItem{Element: rule.Element, Dimension: strings.TrimSpace(line)})
			}
		}
	}
	return items
}

func containsAnyKeyword(lowerLine string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerLine, kw) {
			return true
		}
	}
	return false
}
