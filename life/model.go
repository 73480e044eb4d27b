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
	"math"
)

// Coordinates address cells within a node's region:
// (0, 0) is the top-left corner, x grows to the right and
// y grows downward. The NW child of a level-k node covers
// x, y in [0, 2^(k-1)).

// Zero returns the canonical all-off node at level k,
// interning the missing prefix by repeated self-join.
func (t *Table) Zero(k uint64) ID {
	for uint64(len(t.zeros)) <= k {
		z := t.zeros[len(t.zeros)-1]
		t.zeros = append(t.zeros, t.Join(z, z, z, z))
	}
	return t.zeros[k]
}

// Centre embeds id in the centre of a node one level
// larger whose outer ring is all dead. A leaf has no exact
// centre one level up, so it is first widened into a 2x2
// tile with the live cell at its top-left.
func (t *Table) Centre(id ID) ID {
	n := *t.node(id)
	if n.level == 0 {
		id = t.Join(id, Off, Off, Off)
		n = *t.node(id)
	}
	z := t.Zero(n.level - 1)
	a := t.Join(z, z, z, n.a)
	b := t.Join(z, z, n.b, z)
	c := t.Join(z, n.c, z, z)
	d := t.Join(n.d, z, z, z)
	return t.Join(a, b, c, d)
}

// Inner returns the centre sub-node one level below id:
// the four innermost grandchildren re-joined. It inverts
// Centre. id must be at least level 2.
func (t *Table) Inner(id ID) ID {
	n := *t.node(id)
	if n.level < 2 {
		panic("life: Inner of a node below level 2")
	}
	a := *t.node(n.a)
	b := *t.node(n.b)
	c := *t.node(n.c)
	d := *t.node(n.d)
	return t.Join(a.d, b.c, c.b, d.a)
}

// IsPadded reports whether the outer ring of id holds no
// live cells, i.e. all population sits in the centre
// half-sized region. id must be at least level 2.
func (t *Table) IsPadded(id ID) bool {
	n := *t.node(id)
	if n.level < 2 {
		panic("life: IsPadded on a node below level 2")
	}
	a := *t.node(n.a)
	b := *t.node(n.b)
	c := *t.node(n.c)
	d := *t.node(n.d)
	return a.pop == t.node(a.d).pop &&
		b.pop == t.node(b.c).pop &&
		c.pop == t.node(c.b).pop &&
		d.pop == t.node(d.a).pop
}

// Crop repeatedly strips zero padding, taking the inner
// node while the level exceeds 3 and the node is padded.
func (t *Table) Crop(id ID) ID {
	for t.node(id).level > 3 && t.IsPadded(id) {
		id = t.Inner(id)
	}
	return id
}

// Pad repeatedly centres id until it is at least level 3
// and its outer ring is dead, so that every live cell lies
// in the centre region a following Successor returns.
func (t *Table) Pad(id ID) ID {
	for t.node(id).level < 3 || !t.IsPadded(id) {
		id = t.Centre(id)
	}
	return id
}

// SetCell returns a node identical to id except that the
// cell at (x, y) has the given state. If (x, y) falls
// outside the node's region, the node is first grown with
// dead space on the right and bottom until it fits.
func (t *Table) SetCell(id ID, x, y uint64, alive bool) ID {
	n := *t.node(id)
	if n.level == 0 && x == 0 && y == 0 {
		if alive {
			return On
		}
		return Off
	}
	for x >= 1<<n.level || y >= 1<<n.level {
		z := t.Zero(n.level)
		id = t.Join(id, z, z, z)
		n = *t.node(id)
	}
	half := uint64(1) << (n.level - 1)
	a, b, c, d := n.a, n.b, n.c, n.d
	switch {
	case x < half && y < half:
		a = t.SetCell(a, x, y, alive)
	case x >= half && y < half:
		b = t.SetCell(b, x-half, y, alive)
	case x < half && y >= half:
		c = t.SetCell(c, x, y-half, alive)
	default:
		d = t.SetCell(d, x-half, y-half, alive)
	}
	return t.Join(a, b, c, d)
}

// GetCell samples the region at (x, y), descending to
// minLevel. The result is pop/4^level of the terminal
// node: {0, 1} at minLevel 0, a grey average above it.
// Coordinates outside the node's region read as 0.
func (t *Table) GetCell(id ID, x, y, minLevel uint64) float64 {
	n := *t.node(id)
	size := uint64(1) << n.level
	if x >= size || y >= size {
		return 0
	}
	if n.level == 0 || n.level == minLevel {
		return math.Ldexp(float64(n.pop), -2*int(n.level))
	}
	half := size >> 1
	switch {
	case x < half && y < half:
		return t.GetCell(n.a, x, y, minLevel)
	case x >= half && y < half:
		return t.GetCell(n.b, x-half, y, minLevel)
	case x < half && y >= half:
		return t.GetCell(n.c, x, y-half, minLevel)
	default:
		return t.GetCell(n.d, x-half, y-half, minLevel)
	}
}
