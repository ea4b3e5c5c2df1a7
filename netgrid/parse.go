package netgrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a puzzle: net rows up to the first blank line, then the
// instruction line. Leading blank lines are skipped and a trailing '\r'
// is dropped from every line.
func Parse(r io.Reader) (*Puzzle, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows []string
	path := ""
	inNet := true
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if inNet {
			if strings.TrimSpace(line) == "" {
				if len(rows) > 0 {
					inNet = false
				}
				continue
			}
			rows = append(rows, line)
			continue
		}
		if strings.TrimSpace(line) != "" {
			path = strings.TrimSpace(line)
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("netgrid: read puzzle: %w", err)
	}
	g, err := ParseGrid(rows)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, ErrMissingInstructions
	}

	return &Puzzle{Grid: g, Path: path}, nil
}
