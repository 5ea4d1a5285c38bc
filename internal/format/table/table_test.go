package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Tiramisu", "$7.99"},
		{"Spaghetti Carbonara", "$15.99"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"Tiramisu              $7.99",
		"Spaghetti Carbonara  $15.99",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatWidthPushesLastColumnRight(t *testing.T) {
	rows := [][]string{{"Soup", "$1.00"}}
	got := FormatWidth(rows, []Alignment{AlignLeft, AlignRight}, 20)
	if got[0] != "Soup           $1.00" {
		t.Fatalf("unexpected row %q", got[0])
	}
	if n := len([]rune(got[0])); n != 20 {
		t.Fatalf("expected width 20, got %d", n)
	}
	narrow := FormatWidth(rows, []Alignment{AlignLeft, AlignRight}, 5)
	if narrow[0] != "Soup  $1.00" {
		t.Fatalf("expected natural width when too narrow, got %q", narrow[0])
	}
}

func TestFormatCountsRunes(t *testing.T) {
	rows := [][]string{{"Crème", "a"}, {"Cream", "b"}}
	got := Format(rows, nil)
	if got[0] != "Crème  a" || got[1] != "Cream  b" {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

func TestFormatShortRows(t *testing.T) {
	got := Format([][]string{{"a", "bb"}, {"ccc"}}, nil)
	if got[0] != "a    bb" || got[1] != "ccc  " {
		t.Fatalf("unexpected rows %q", got)
	}
}
