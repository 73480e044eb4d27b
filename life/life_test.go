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

package life

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

// fromCells builds a pattern by setting each (x, y) live
// in an initially empty level-2 root.
func fromCells(t *Table, cells [][2]uint64) ID {
	id := t.Zero(2)
	for _, c := range cells {
		id = t.SetCell(id, c[0], c[1], true)
	}
	return id
}

func appendCells(t *Table, id ID, x, y uint64, out *[][2]uint64) {
	if t.Pop(id) == 0 {
		return
	}
	if t.Level(id) == 0 {
		*out = append(*out, [2]uint64{x, y})
		return
	}
	half := uint64(1) << (t.Level(id) - 1)
	a, b, c, d := t.Children(id)
	appendCells(t, a, x, y, out)
	appendCells(t, b, x+half, y, out)
	appendCells(t, c, x, y+half, out)
	appendCells(t, d, x+half, y+half, out)
}

// shape renders the live-cell set of id translated to the
// origin, in row-major order, so patterns can be compared
// independently of where padding and cropping left them.
func shape(t *Table, id ID) string {
	var cells [][2]uint64
	appendCells(t, id, 0, 0, &cells)
	if len(cells) == 0 {
		return ""
	}
	minx, miny := cells[0][0], cells[0][1]
	for _, c := range cells {
		minx = min(minx, c[0])
		miny = min(miny, c[1])
	}
	for i := range cells {
		cells[i][0] -= minx
		cells[i][1] -= miny
	}
	slices.SortFunc(cells, func(a, b [2]uint64) int {
		if a[1] != b[1] {
			return int(a[1]) - int(b[1])
		}
		return int(a[0]) - int(b[0])
	})
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d,%d", c[0], c[1])
	}
	return sb.String()
}

var (
	blinkerH = [][2]uint64{{0, 0}, {1, 0}, {2, 0}}
	glider   = [][2]uint64{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	block    = [][2]uint64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
)

func TestShapeHelper(t *testing.T) {
	tbl := New(1 << 10)
	id := fromCells(tbl, blinkerH)
	if got := shape(tbl, id); got != "0,0 1,0 2,0" {
		t.Fatalf("unexpected blinker shape %q", got)
	}
	// translation-invariant
	shifted := fromCells(tbl, [][2]uint64{{5, 7}, {6, 7}, {7, 7}})
	if shape(tbl, shifted) != shape(tbl, id) {
		t.Fatal("shape should ignore translation")
	}
}
