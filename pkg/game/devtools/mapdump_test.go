package devtools

import (
	"bytes"
	"strings"
	"testing"

	"mazeescape/pkg/engine/world"
	"mazeescape/pkg/game/catalog"
)

func TestDumpCatalog(t *testing.T) {
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default(): %v", err)
	}

	var buf bytes.Buffer
	DumpCatalog(&buf, c)
	out := buf.String()

	for _, want := range []string{
		"mazes: 2",
		"--- Maze 1: switchback ---",
		"--- Maze 2: long-way-down ---",
		"goal: (8,8)",
		"goal: (1,8)",
		"##########\n#S..#....#\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "warning:") {
		t.Errorf("bundled catalog produced a warning:\n%s", out)
	}
}

func TestDumpCatalog_WarnsWhenGoalIsStart(t *testing.T) {
	c, err := catalog.New(world.MustFromRows("tiny", [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}))
	if err != nil {
		t.Fatalf("catalog.New(): %v", err)
	}

	var buf bytes.Buffer
	DumpCatalog(&buf, c)
	if !strings.Contains(buf.String(), "warning: the goal is the start; the first key press completes the round") {
		t.Errorf("dump of a single-cell maze has no goal-is-start warning:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "###\n#S#\n###\n") {
		t.Errorf("dump drew the maze wrong:\n%s", buf.String())
	}
}

func TestDumpBindings(t *testing.T) {
	var buf bytes.Buffer
	DumpBindings(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if len(lines) != 6 {
		t.Fatalf("got %d binding lines, want 6:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Move North:") || !strings.Contains(lines[0], "arrow_up") {
		t.Errorf("first line = %q, want Move North bound to arrow_up", lines[0])
	}
	if !strings.HasPrefix(lines[5], "Quit:") || !strings.Contains(lines[5], "escape") {
		t.Errorf("last line = %q, want Quit bound to escape", lines[5])
	}
}
