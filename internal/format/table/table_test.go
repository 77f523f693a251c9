package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"NAME", "FRAMES", "PERIOD"},
		{"arrow", "❯", ""},
		{"spin", "⠋⠙⠹", "100ms"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"NAME   FRAMES  PERIOD",
		"arrow  ❯",
		"spin   ⠋⠙⠹      100ms",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatUsesDisplayWidth(t *testing.T) {
	got := Format([][]string{{"日本", "x"}, {"ab", "y"}}, nil)
	want := []string{"日本  x", "ab    y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a", "b", "c"}, {"dd"}}, nil)
	want := []string{"a   b  c", "dd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
