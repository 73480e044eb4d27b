// Copyright (C) 2023 Lifelab, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package pattern

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lifelab/hashlife/life"
)

// RLE tokens: 'b' dead run, 'o' live run, '$' end of row,
// '!' end of pattern, each with an optional leading count.
// '#' lines are comments; an "x = W, y = H" header line is
// tolerated and ignored.

var (
	// ErrUnterminated reports RLE input that ends without
	// the '!' terminator.
	ErrUnterminated = errors.New("pattern: RLE input without '!' terminator")
)

// upper bound on a single run; anything larger is taken
// for corrupt input rather than a real pattern
const maxRun = 1 << 20

func isRLEToken(ch byte) bool {
	return ch == 'b' || ch == 'o' || ch == '$' || ch == '!' ||
		(ch >= '0' && ch <= '9')
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// DecodeRLE parses RLE input into its live-cell list.
func DecodeRLE(data []byte) ([]Coord, error) {
	var cells []Coord
	var x, y uint64
	i := 0
	for {
		// skip whitespace and non-token lines (comments
		// and the size header)
		for i < len(data) {
			if isSpace(data[i]) {
				i++
				continue
			}
			if isRLEToken(data[i]) {
				break
			}
			for i < len(data) && data[i] != '\n' {
				i++
			}
		}
		if i >= len(data) {
			return nil, ErrUnterminated
		}
		count := uint64(1)
		if data[i] >= '0' && data[i] <= '9' {
			start := i
			for i < len(data) && data[i] >= '0' && data[i] <= '9' {
				i++
			}
			n, err := strconv.ParseUint(string(data[start:i]), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("pattern: bad RLE count %q: %w", data[start:i], err)
			}
			if n == 0 || n > maxRun {
				return nil, fmt.Errorf("pattern: RLE count %d out of range", n)
			}
			count = n
			if i >= len(data) || !isRLEToken(data[i]) || (data[i] >= '0' && data[i] <= '9') {
				return nil, fmt.Errorf("pattern: RLE count %d without a token", count)
			}
		}
		switch tok := data[i]; tok {
		case 'b':
			x += count
		case 'o':
			for n := uint64(0); n < count; n++ {
				cells = append(cells, Coord{X: x, Y: y})
				x++
			}
		case '$':
			y += count
			x = 0
		case '!':
			return cells, nil
		}
		i++
	}
}

// FromRLE decodes RLE input and interns it, returning the
// root of the smallest power-of-two square containing the
// pattern. On error the table is untouched.
func FromRLE(t *life.Table, data []byte) (life.ID, error) {
	cells, err := DecodeRLE(data)
	if err != nil {
		return life.Unused, err
	}
	return FromCells(t, cells), nil
}

// EncodeRLE renders the live cells of id as RLE with a
// size header. Runs of length 1 omit the count; rows
// beyond the last live cell are omitted.
func EncodeRLE(t *life.Table, id life.ID) []byte {
	size := uint64(1) << t.Level(id)
	out := []byte(fmt.Sprintf("x = %d, y = %d, rule = B3/S23\n", size, size))
	cells := Cells(t, id)

	emit := func(count uint64, tok byte) {
		if count == 0 {
			return
		}
		if count > 1 {
			out = strconv.AppendUint(out, count, 10)
		}
		out = append(out, tok)
	}
	var row, col uint64 // next unemitted position
	for i := 0; i < len(cells); {
		c := cells[i]
		if c.Y != row {
			emit(c.Y-row, '$')
			row, col = c.Y, 0
		}
		emit(c.X-col, 'b')
		run := uint64(1)
		for i++; i < len(cells) && cells[i].Y == row && cells[i].X == c.X+run; i++ {
			run++
		}
		emit(run, 'o')
		col = c.X + run
	}
	out = append(out, '!', '\n')
	return out
}
