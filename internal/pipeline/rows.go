package pipeline

import (
	"sort"

	"ventspec/internal"
)

const (
	roundElementLabel = "Rura SPIRO"
	rectElementLabel  = "Kanał prostokątny"

	// Tallies count drawing labels, they say nothing about duct lengths.
	sizeRowNote = "Etykiety; bez długości"
)

// BuildRoundRows renders a round-size tally as presentation rows, sorted by
// canonical size label.
func BuildRoundRows(tally internal.SizeTally) []internal.Row {
	return buildSizeRows(roundElementLabel, tally)
}

// BuildRectRows renders a rectangular-size tally as presentation rows,
// sorted by canonical size label.
func BuildRectRows(tally internal.SizeTally) []internal.Row {
	return buildSizeRows(rectElementLabel, tally)
}

func buildSizeRows(element string, tally internal.SizeTally) []internal.Row {
	labels := make([]string, 0, len(tally))
	for label := range tally {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([]internal.Row, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, internal.Row{
			Element:   element,
			Dimension: label + " mm",
			Quantity:  tally[label],
			Notes:     sizeRowNote,
		})
	}
	return rows
}
