package pipeline

import "strings"

// Combine merges the two text sources into one ordered line sequence.
//
// Every non-empty primary (vector text) line is kept in its original order,
// duplicates included: repeated labels on a drawing are real repetitions and
// must keep their counts. Secondary (OCR) lines are only a supplement and are
// appended after the primary pass, skipping any line whose exact text already
// appeared in the primary, so OCR cannot double-count content the vector text
// already captured. Comparison is exact string equality after trimming.
func Combine(primary, secondary []string) []string {
	out := make([]string, 0, len(primary)+len(secondary))
	seen := make(map[string]struct{}, len(primary))

	for _, line := range primary {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		seen[line] = struct{}{}
	}

	for _, line := range secondary {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		out = append(out, line)
	}

	return out
}

// SplitLines splits text into trimmed non-empty lines, preserving order.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
