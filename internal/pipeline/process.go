package pipeline

import (
	"log/slog"
	"strings"

	"ventspec/internal"
	"ventspec/internal/patterns"
)

// Service runs the full extraction pipeline for one document. It holds only
// immutable state (the compiled rule set), so one Service may process any
// number of documents concurrently.
type Service struct {
	set    *patterns.Set
	window int
	log    *slog.Logger
}

func NewService(set *patterns.Set, fittingsWindow int, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{set: set, window: fittingsWindow, log: log}
}

// Result is the complete outcome for one document: the ordered row set
// (equipment, fittings, round sizes, rect sizes) and its summary.
type Result struct {
	Rows    []internal.Row   `json:"rows"`
	Summary internal.Summary `json:"summary"`
}

// Process turns the two raw text sources of one document into the final
// bill-of-materials rows. Pure and deterministic: identical input and rule
// set give byte-identical rows.
func (s *Service) Process(ex internal.Extraction) Result {
	combined := Combine(ex.VectorLines, ex.OCRLines)
	normalized := Normalize(strings.Join(combined, "\n"))
	lines := SplitLines(normalized)

	equipmentItems := ExtractEquipment(lines, s.set)
	fittingItems := ExtractFittings(lines, s.set, s.window)
	roundTally, rectTally := ExtractDuctSizes(normalized, s.set)

	equipmentRows := Aggregate(equipmentItems)
	fittingRows := Aggregate(fittingItems)
	roundRows := BuildRoundRows(roundTally)
	rectRows := BuildRectRows(rectTally)

	rows := make([]internal.Row, 0, len(equipmentRows)+len(fittingRows)+len(roundRows)+len(rectRows))
	rows = append(rows, equipmentRows...)
	rows = append(rows, fittingRows...)
	rows = append(rows, roundRows...)
	rows = append(rows, rectRows...)

	summary := internal.Summary{
		Counts: internal.Counts{
			Equipment:  sumQuantities(equipmentRows),
			Fittings:   sumQuantities(fittingRows),
			RoundSizes: sumQuantities(roundRows),
			RectSizes:  sumQuantities(rectRows),
		},
		Notes: ex.Notes,
		Stats: ex.Stats,
	}

	s.log.Info("pipeline done",
		"lines", len(lines),
		"equipment", summary.Counts.Equipment,
		"fittings", summary.Counts.Fittings,
		"round_sizes", summary.Counts.RoundSizes,
		"rect_sizes", summary.Counts.RectSizes,
		"notes", ex.Notes,
	)

	return Result{Rows: rows, Summary: summary}
}

func sumQuantities(rows []internal.Row) int {
	total := 0
	for _, row := range rows {
		total += row.Quantity
	}
	return total
}
