package renderer

import (
	"strings"
	"testing"
)

func TestParseMarkup(t *testing.T) {
	got := ParseMarkup("ROUND{Round 2} cleared in TIME{14s}.")
	want := []Segment{
		{"Round 2", StyleRound},
		{" cleared in ", StyleNormal},
		{"14s", StyleTime},
		{".", StyleNormal},
	}
	if len(got) != len(want) {
		t.Fatalf("ParseMarkup() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseMarkup_PlainAndEmpty(t *testing.T) {
	if got := ParseMarkup("no markup"); len(got) != 1 || got[0].Text != "no markup" {
		t.Errorf("ParseMarkup(plain) = %v", got)
	}
	if got := ParseMarkup(""); len(got) != 0 {
		t.Errorf("ParseMarkup(\"\") = %v, want no segments", got)
	}
}

func TestParseMarkup_UnknownFunctionKeepsText(t *testing.T) {
	got := ParseMarkup("BOGUS{x}")
	if len(got) != 1 || got[0] != (Segment{"x", StyleNormal}) {
		t.Errorf("ParseMarkup(BOGUS{x}) = %v", got)
	}
}

func TestStripMarkup(t *testing.T) {
	if got := StripMarkup("reach the GOAL{goal} now"); got != "reach the goal now" {
		t.Errorf("StripMarkup() = %q", got)
	}
}

func TestRender(t *testing.T) {
	got := Render("ACTION{go} home", func(text string, s TextStyle) string {
		if s == StyleAction {
			return strings.ToUpper(text)
		}
		return text
	})
	if got != "GO home" {
		t.Errorf("Render() = %q, want %q", got, "GO home")
	}
}
