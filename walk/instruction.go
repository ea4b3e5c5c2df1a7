package walk

import (
	"fmt"
	"strconv"
	"strings"
)

// maxSteps bounds a single MoveForward count.
const maxSteps = 1 << 30

// ParseInstructions parses path notation such as "10R5L5": runs of digits
// are MoveForward counts, 'L' and 'R' are turns. Surrounding whitespace is
// ignored; anything else is ErrBadInstruction.
func ParseInstructions(path string) ([]Instruction, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrBadInstruction)
	}
	var out []Instruction
	for i := 0; i < len(path); {
		switch c := path[i]; {
		case c == 'L':
			out = append(out, Left())
			i++
		case c == 'R':
			out = append(out, Right())
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(path) && path[j] >= '0' && path[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(path[i:j])
			if err != nil || n > maxSteps {
				return nil, fmt.Errorf("%w: step count %q at offset %d", ErrBadInstruction, path[i:j], i)
			}
			out = append(out, Forward(n))
			i = j
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrBadInstruction, c, i)
		}
	}
	return out, nil
}

// FormatInstructions renders a program back into path notation.
func FormatInstructions(program []Instruction) string {
	var b strings.Builder
	for _, ins := range program {
		b.WriteString(ins.String())
	}
	return b.String()
}
