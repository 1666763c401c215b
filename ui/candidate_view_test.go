package ui

import (
	"strings"
	"testing"
)

func TestPadOrTrim(t *testing.T) {
	if got := PadOrTrim("abc", 5); got != "abc  " {
		t.Fatalf("expected padded value, got %q", got)
	}
	if got := PadOrTrim("abcdef", 4); got != "abc…" {
		t.Fatalf("expected truncated value, got %q", got)
	}
	if got := PadOrTrim("abc", 0); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}

func TestJoinHelp_SkipsEmpty(t *testing.T) {
	got := JoinHelp("Tab: Autocomplete", "", "Enter: Select")
	if got != "Tab: Autocomplete | Enter: Select" {
		t.Fatalf("unexpected help line %q", got)
	}
}

func TestRenderCandidateList_MarksFirstRowSelected(t *testing.T) {
	styles := Styles{
		Selected: func(s string) string { return ">" + strings.TrimSpace(s) },
		Normal:   func(s string) string { return " " + strings.TrimSpace(s) },
	}
	got := RenderCandidateList([]CandidateRow{{Label: "feature-a"}, {Label: "feature-b"}}, 20, styles)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != ">feature-a" || lines[1] != " feature-b" {
		t.Fatalf("unexpected rows %q", lines)
	}
}

func TestRenderCandidateList_CreateRowUsesCreateStyle(t *testing.T) {
	styles := Styles{Create: func(s string) string { return "+" + strings.TrimSpace(s) }}
	got := RenderCandidateList([]CandidateRow{{Label: "new", Create: true}}, 10, styles)
	if got != "+new" {
		t.Fatalf("expected create style, got %q", got)
	}
}
