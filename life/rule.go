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

// baseLife applies rule B3/S23 to the 3x3 neighbourhood
//
//	a b c
//	d e f
//	g h i
//
// where each argument is a level-0 leaf, and returns the
// next state of the centre cell e. The neighbour sum runs
// over the eight cells around e, excluding e itself.
func baseLife(a, b, c, d, e, f, g, h, i ID) ID {
	sum := 0
	for _, v := range [8]ID{a, b, c, d, f, g, h, i} {
		if v == On {
			sum++
		}
	}
	if sum == 3 || (sum == 2 && e == On) {
		return On
	}
	return Off
}

// life4x4 evolves the level-2 tile id by one generation
// and returns the centre 2x2 as a level-1 node. Each
// output cell is baseLife over its 3x3 window drawn from
// the tile's grandchildren.
func (t *Table) life4x4(id ID) ID {
	n := *t.node(id)
	a := *t.node(n.a)
	b := *t.node(n.b)
	c := *t.node(n.c)
	d := *t.node(n.d)
	na := baseLife(a.a, a.b, b.a, a.c, a.d, b.c, c.a, c.b, d.a)
	nb := baseLife(a.b, b.a, b.b, a.d, b.c, b.d, c.b, d.a, d.b)
	nc := baseLife(a.c, a.d, b.c, c.a, c.b, d.a, c.c, c.d, d.c)
	nd := baseLife(a.d, b.c, b.d, c.b, d.a, d.b, c.d, d.c, d.d)
	return t.Join(na, nb, nc, nd)
}
