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
	"fmt"

	"github.com/lifelab/hashlife/life"
)

// Plain text: 'O' live, '.' dead, '\n' ends a row.

// DecodeText parses a plain-text grid into its live-cell
// list. Carriage returns are tolerated; any other byte is
// an error.
func DecodeText(data []byte) ([]Coord, error) {
	var cells []Coord
	var x, y uint64
	for i, ch := range data {
		switch ch {
		case 'O':
			cells = append(cells, Coord{X: x, Y: y})
			x++
		case '.':
			x++
		case '\n':
			y++
			x = 0
		case '\r':
		default:
			return nil, fmt.Errorf("pattern: unexpected byte %q at offset %d", ch, i)
		}
	}
	return cells, nil
}

// FromText decodes a plain-text grid and interns it. On
// error the table is untouched.
func FromText(t *life.Table, data []byte) (life.ID, error) {
	cells, err := DecodeText(data)
	if err != nil {
		return life.Unused, err
	}
	return FromCells(t, cells), nil
}

// EncodeText renders the full 2^level x 2^level grid of
// id, one '\n'-terminated row per line.
func EncodeText(t *life.Table, id life.ID) []byte {
	size := uint64(1) << t.Level(id)
	out := make([]byte, 0, size*(size+1))
	for y := uint64(0); y < size; y++ {
		for x := uint64(0); x < size; x++ {
			if t.GetCell(id, x, y, 0) > 0.5 {
				out = append(out, 'O')
			} else {
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return out
}
