package pipeline

import (
	"sort"
	"strings"

	"ventspec/internal"
)

// Aggregate groups items by exact (element, dimension) pair into
// count-bearing rows. An empty dimension is a valid key of its own. Rows
// come out in first-encounter order; quantity is the number of items in the
// group; distinct notes are deduplicated, sorted and comma-joined so output
// is deterministic.
func Aggregate(items []internal.ExtractedItem) []internal.Row {
	type key struct {
		element   string
		dimension string
	}

	rows := make([]internal.Row, 0)
	notes := make([]map[string]struct{}, 0)
	index := map[key]int{}

	for _, item := range items {
		k := key{element: item.Element, dimension: item.Dimension}
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, internal.Row{Element: item.Element, Dimension: item.Dimension})
			notes = append(notes, map[string]struct{}{})
		}
		rows[i].Quantity++
		if item.Note != "" {
			notes[i][item.Note] = struct{}{}
		}
	}

	for i := range rows {
		rows[i].Notes = joinNotes(notes[i])
	}
	return rows
}

func joinNotes(set map[string]struct{}) string {
	if len(set) == 0 {
		return ""
	}
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
