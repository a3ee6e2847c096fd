// Package rle implements the Run-Length-Encoded Life pattern loader
// described in spec §6, grounded on the original implementation's
// simulator.rs::read_pattern state machine.
package rle

import (
	"bufio"
	"io"

	"github.com/kestrelsim/hashlife"
	"github.com/kestrelsim/hashlife/pkg/hlerr"
)

// Load parses the RLE body read from r and issues SetCell calls against u,
// placing the pattern's own (0,0) at (offsetX, offsetY). Lines beginning
// with '#' or 'x' are treated as header/comment lines and skipped
// entirely. Spaces, tabs and carriage returns in the body are ignored; any
// other rune in the body other than a digit, 'b', 'o', '$' or '!' is a
// parse error reported with its 1-based line and column and the
// offending rune.
func Load(r io.Reader, u *hashlife.Universe, offsetX, offsetY int64) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	x, y := int64(0), int64(0)
	argument := int64(0)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if len(line) > 0 && (line[0] == '#' || line[0] == 'x') {
			continue
		}

		for col, c := range line {
			parameter := argument
			if parameter == 0 {
				parameter = 1
			}

			switch {
			case c == 'b':
				x += parameter
				argument = 0
			case c == 'o':
				for i := int64(0); i < parameter; i++ {
					u.SetCell(hashlife.Position{X: offsetX + x, Y: offsetY + y}, hashlife.Alive)
					x++
				}
				argument = 0
			case c == '$':
				y += parameter
				x = 0
				argument = 0
			case c == '!':
				return nil
			case c >= '0' && c <= '9':
				argument = 10*argument + int64(c-'0')
			case c == ' ' || c == '\t' || c == '\r':
				// whitespace within the body is ignored
			default:
				return hlerr.Newf(hlerr.CodeParseError, "unexpected rune %q at line %d, column %d", c, lineNo, col+1)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return hlerr.Wrap(hlerr.CodeIO, "failed reading RLE input", err)
	}
	return nil
}
