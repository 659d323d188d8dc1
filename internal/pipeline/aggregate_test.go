package pipeline

import (
	"reflect"
	"testing"

	"ventspec/internal"
)

func TestAggregateGroupsAndCounts(t *testing.T) {
	items := []internal.ExtractedItem{
		{Element: "Kolano", Dimension: "Ø160"},
		{Element: "Kolano", Dimension: "Ø160"},
		{Element: "Kolano", Dimension: "Ø200"},
		{Element: "Trójnik", Dimension: "Ø160"},
	}

	rows := Aggregate(items)

	want := []internal.Row{
		{Element: "Kolano", Dimension: "Ø160", Quantity: 2},
		{Element: "Kolano", Dimension: "Ø200", Quantity: 1},
		{Element: "Trójnik", Dimension: "Ø160", Quantity: 1},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("got %+v, want %+v", rows, want)
	}
}

func TestAggregateConservesQuantities(t *testing.T) {
	items := []internal.ExtractedItem{
		{Element: "a", Dimension: "1"},
		{Element: "a", Dimension: "1"},
		{Element: "a", Dimension: ""},
		{Element: "b", Dimension: "1"},
		{Element: "b", Dimension: "2"},
	}

	total := 0
	for _, row := range Aggregate(items) {
		total += row.Quantity
	}
	if total != len(items) {
		t.Fatalf("sum of quantities %d != item count %d", total, len(items))
	}
}

func TestAggregateEmptyDimensionIsDistinctGroup(t *testing.T) {
	items := []internal.ExtractedItem{
		{Element: "Kolano", Dimension: "Ø160"},
		{Element: "Kolano", Dimension: ""},
	}

	rows := Aggregate(items)
	if len(rows) != 2 {
		t.Fatalf("expected 2 groups, got %+v", rows)
	}
}

func TestAggregateMergesNotesSortedAndDeduplicated(t *testing.T) {
	items := []internal.ExtractedItem{
		{Element: "a", Dimension: "1", Note: "zzz"},
		{Element: "a", Dimension: "1", Note: "aaa"},
		{Element: "a", Dimension: "1", Note: "zzz"},
	}

	rows := Aggregate(items)
	if len(rows) != 1 || rows[0].Notes != "aaa, zzz" {
		t.Fatalf("got %+v", rows)
	}
}

func TestBuildSizeRowsSortedWithLabels(t *testing.T) {
	rows := BuildRoundRows(internal.SizeTally{"Ø200": 3, "Ø100": 1})

	want := []internal.Row{
		{Element: "Rura SPIRO", Dimension: "Ø100 mm", Quantity: 1, Notes: "Etykiety; bez długości"},
		{Element: "Rura SPIRO", Dimension: "Ø200 mm", Quantity: 3, Notes: "Etykiety; bez długości"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("got %+v, want %+v", rows, want)
	}

	rectRows := BuildRectRows(internal.SizeTally{"300x200": 2})
	if rectRows[0].Element != "Kanał prostokątny" || rectRows[0].Dimension != "300x200 mm" {
		t.Fatalf("got %+v", rectRows)
	}
}
