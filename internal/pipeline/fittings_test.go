package pipeline

import (
	"reflect"
	"testing"

	"ventspec/internal"
)

func TestExtractFittingsSizeFromNeighbourLine(t *testing.T) {
	set := testPatterns(t)
	lines := []string{"Rura Ø200", "Kolano 90°", "inny tekst"}

	items := ExtractFittings(lines, set, 1)

	want := []internal.ExtractedItem{{Element: "Kolano", Dimension: "Ø200"}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("got %+v, want %+v", items, want)
	}
}

func TestExtractFittingsFirstLineWins(t *testing.T) {
	set := testPatterns(t)
	// Both neighbours carry a size; the earlier line in the neighbourhood
	// supplies the dimension.
	lines := []string{"Ø100", "Kolano", "Ø250"}

	items := ExtractFittings(lines, set, 1)

	want := []internal.ExtractedItem{{Element: "Kolano", Dimension: "Ø100"}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("got %+v, want %+v", items, want)
	}
}

func TestExtractFittingsPatternOrderWithinLine(t *testing.T) {
	set := testPatterns(t)
	// The rect token appears first in the text, but the round regex is
	// configured first and wins on the same line.
	lines := []string{"Kolano 300x200 Ø160"}

	items := ExtractFittings(lines, set, 1)

	want := []internal.ExtractedItem{{Element: "Kolano", Dimension: "Ø160"}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("got %+v, want %+v", items, want)
	}
}

func TestExtractFittingsEmptyDimensionStillEmitted(t *testing.T) {
	set := testPatterns(t)
	lines := []string{"bez wymiaru", "Kolano nastawne", "nadal bez wymiaru"}

	items := ExtractFittings(lines, set, 1)

	want := []internal.ExtractedItem{{Element: "Kolano", Dimension: ""}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("missing size must not suppress the fitting, got %+v", items)
	}
}

func TestExtractFittingsWindowClamping(t *testing.T) {
	set := testPatterns(t)

	// Keyword on the first line: the window must not reach before index 0.
	items := ExtractFittings([]string{"Kolano", "Ø125"}, set, 1)
	want := []internal.ExtractedItem{{Element: "Kolano", Dimension: "Ø125"}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("got %+v, want %+v", items, want)
	}

	// Keyword on the last line: the window must not reach past the end.
	items = ExtractFittings([]string{"Ø125", "Kolano"}, set, 1)
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("got %+v, want %+v", items, want)
	}

	// Window zero only sees the keyword line itself.
	items = ExtractFittings([]string{"Ø125", "Kolano"}, set, 0)
	want = []internal.ExtractedItem{{Element: "Kolano", Dimension: ""}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("got %+v, want %+v", items, want)
	}
}

func TestExtractFittingsMultipleRulesFanOut(t *testing.T) {
	set := testPatterns(t)
	lines := []string{"Kolano i trójnik Ø160"}

	items := ExtractFittings(lines, set, 1)

	want := []internal.ExtractedItem{
		{Element: "Kolano", Dimension: "Ø160"},
		{Element: "Trójnik", Dimension: "Ø160"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("each matching rule emits its own item, got %+v", items)
	}
}
