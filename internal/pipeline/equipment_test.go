package pipeline

import (
	"reflect"
	"testing"

	"ventspec/internal"
)

func TestExtractEquipmentModelCodeWins(t *testing.T) {
	set := testPatterns(t)
	lines := []string{"Centrala nawiewna VS-400"}

	items := ExtractEquipment(lines, set)

	// The line also carries the "centrala" keyword, but the model-code match
	// suppresses it for this line/rule pair.
	want := []internal.ExtractedItem{{Element: "Centrala wentylacyjna", Dimension: "VS-400"}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("got %+v, want %+v", items, want)
	}
}

func TestExtractEquipmentMultipleCodesPerLine(t *testing.T) {
	set := testPatterns(t)
	lines := []string{"VS-200, VS-400"}

	items := ExtractEquipment(lines, set)

	want := []internal.ExtractedItem{
		{Element: "Centrala wentylacyjna", Dimension: "VS-200"},
		{Element: "Centrala wentylacyjna", Dimension: "VS-400"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("got %+v, want %+v", items, want)
	}
}

func TestExtractEquipmentKeywordUsesWholeLine(t *testing.T) {
	set := testPatterns(t)
	lines := []string{"Centrala dachowa bez oznaczenia"}

	items := ExtractEquipment(lines, set)

	want := []internal.ExtractedItem{{Element: "Centrala wentylacyjna", Dimension: "Centrala dachowa bez oznaczenia"}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("got %+v, want %+v", items, want)
	}
}

func TestExtractEquipmentKeywordCaseInsensitive(t *testing.T) {
	set := testPatterns(t)
	items := ExtractEquipment([]string{"CENTRALA DACHOWA"}, set)
	if len(items) != 1 || items[0].Element != "Centrala wentylacyjna" {
		t.Fatalf("expected one keyword hit, got %+v", items)
	}
}

func TestExtractEquipmentNoMatch(t *testing.T) {
	set := testPatterns(t)
	items := ExtractEquipment([]string{"Kanał 300x200"}, set)
	if len(items) != 0 {
		t.Fatalf("expected no items, got %+v", items)
	}
}
