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

// Package pattern converts between Life pattern encodings
// and interned quadtree roots. The run-length encoding
// (RLE) and plain-text formats are supported, optionally
// wrapped in a compression layer selected by file suffix.
//
// Decoders parse completely before touching the node
// table, so a decode error never interns garbage.
package pattern

import (
	"slices"

	"github.com/lifelab/hashlife/ints"
	"github.com/lifelab/hashlife/life"
)

// Coord addresses one live cell. Decoded patterns are
// anchored at the top-left: x grows right, y grows down.
type Coord struct {
	X, Y uint64
}

// compareCoord orders cells row-major, the order both
// encoders emit.
func compareCoord(a, b Coord) int {
	if a.Y != b.Y {
		if a.Y < b.Y {
			return -1
		}
		return 1
	}
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

// FromCells interns the given live cells into t and
// returns the root, sized to the smallest power-of-two
// square (at least 4x4) containing them.
func FromCells(t *life.Table, cells []Coord) life.ID {
	var maxdim uint64
	for _, c := range cells {
		maxdim = max(maxdim, c.X+1, c.Y+1)
	}
	level := uint64(2)
	if maxdim > 4 {
		level = uint64(ints.Log2Ceil(maxdim))
	}
	id := t.Zero(level)
	for _, c := range cells {
		id = t.SetCell(id, c.X, c.Y, true)
	}
	return id
}

// Cells returns the live cells of id in row-major order.
func Cells(t *life.Table, id life.ID) []Coord {
	var out []Coord
	appendCells(t, id, 0, 0, &out)
	slices.SortFunc(out, compareCoord)
	return out
}

func appendCells(t *life.Table, id life.ID, x, y uint64, out *[]Coord) {
	if t.Pop(id) == 0 {
		return
	}
	if t.Level(id) == 0 {
		*out = append(*out, Coord{X: x, Y: y})
		return
	}
	half := uint64(1) << (t.Level(id) - 1)
	a, b, c, d := t.Children(id)
	appendCells(t, a, x, y, out)
	appendCells(t, b, x+half, y, out)
	appendCells(t, c, x, y+half, out)
	appendCells(t, d, x+half, y+half, out)
}
