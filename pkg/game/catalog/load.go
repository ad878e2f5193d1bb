package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"mazeescape/pkg/engine/world"
)

const headerKeyword = "maze"

// pendingMaze collects rows until the maze is complete
type pendingMaze struct {
	name string
	line int
	rows [][]int
}

// LoadFile reads a catalog from a text file on disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadBytes reads a catalog from memory
func LoadBytes(data []byte) (*Catalog, error) {
	return Load(bytes.NewReader(data))
}

// Load parses the catalog text format:
//
//	# comment
//	maze <name>
//	1 1 1
//	1 0 1
//	1 1 1
//
// Cells may be separated by spaces, commas or nothing. A blank line or the
// next header ends a maze. Every maze is validated before it is accepted.
func Load(r io.Reader) (*Catalog, error) {
	var (
		mazes   []*world.Grid
		names   = mapset.New[string]()
		current *pendingMaze
		lineNo  int
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		m, err := buildMaze(current)
		if err != nil {
			return fmt.Errorf("maze %q (line %d): %w", current.name, current.line, err)
		}
		mazes = append(mazes, m)
		current = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "#"):
			continue

		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}

		case line == headerKeyword || strings.HasPrefix(line, headerKeyword+" "):
			if err := flush(); err != nil {
				return nil, err
			}
			name := strings.TrimSpace(strings.TrimPrefix(line, headerKeyword))
			if name == "" {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingName)
			}
			if names.Has(name) {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, name, ErrDuplicateName)
			}
			names.Put(name)
			current = &pendingMaze{name: name, line: lineNo}

		default:
			if current == nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingHeader)
			}
			row, err := parseRow(line)
			if err != nil {
				return nil, fmt.Errorf("maze %q line %d: %w", current.name, lineNo, err)
			}
			current.rows = append(current.rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return New(mazes...)
}

func buildMaze(p *pendingMaze) (*world.Grid, error) {
	if len(p.rows) == 0 {
		return nil, ErrEmptyMaze
	}
	return world.FromRows(p.name, p.rows)
}

// parseRow reads one row of cells, ignoring separators
func parseRow(line string) ([]int, error) {
	row := make([]int, 0, len(line))
	for i, ch := range line {
		switch ch {
		case ' ', '\t', ',':
			continue
		case '0':
			row = append(row, int(world.Open))
		case '1':
			row = append(row, int(world.Wall))
		default:
			return nil, fmt.Errorf("column %d %q: %w", i, ch, ErrInvalidCell)
		}
	}
	return row, nil
}
