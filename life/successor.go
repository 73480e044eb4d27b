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

// Natural requests the maximal step a node can take,
// 2^(level-2) generations; any j >= level-2 is equivalent.
const Natural = ^uint64(0)

// Successor returns the centre 2^(k-1) x 2^(k-1) region of
// the level-k node id evolved 2^j generations forward.
// j is clamped to the natural step exponent k-2, so
// Successor(id, Natural) takes the largest step the node
// supports without reading outside its borders. id must be
// at least level 2.
//
// Results are memoized per (id, j) in the successor cache;
// a cache miss costs at most one recursion over the
// distinct sub-nodes of id.
func (t *Table) Successor(id ID, j uint64) ID {
	n := *t.node(id)
	if n.level < 2 {
		panic("life: Successor of a node below level 2")
	}
	if j > n.level-2 {
		j = n.level - 2
	}
	if n.pop == 0 {
		// all quadrants are the same zero node
		return n.a
	}
	if n.level == 2 {
		return t.life4x4(id)
	}
	if next := t.cachedNext(id, j); next != Unused {
		t.stats.CacheHits++
		return next
	}
	t.stats.CacheMisses++

	// Copy the child records out before recursing: any
	// recursive call may resize the table and move them.
	a := *t.node(n.a)
	b := *t.node(n.b)
	c := *t.node(n.c)
	d := *t.node(n.d)

	// Nine overlapping level-(k-1) sub-nodes covering id,
	// each advanced by 2^j (or less if clamped one level
	// down, which only happens on the natural step).
	c1 := t.Successor(n.a, j)
	c2 := t.sucJoin(a.b, b.a, a.d, b.c, j)
	c3 := t.Successor(n.b, j)
	c4 := t.sucJoin(a.c, a.d, c.a, c.b, j)
	c5 := t.sucJoin(a.d, b.c, c.b, d.a, j)
	c6 := t.sucJoin(b.c, b.d, d.a, d.b, j)
	c7 := t.Successor(n.c, j)
	c8 := t.sucJoin(c.b, d.a, c.d, d.c, j)
	c9 := t.Successor(n.d, j)

	var next ID
	if j < n.level-2 {
		// Sub-maximal step: the nine advanced parts already
		// carry the full 2^j generations; recombining their
		// inner quadrants yields the advanced centre.
		c1n := *t.node(c1)
		c2n := *t.node(c2)
		c3n := *t.node(c3)
		c4n := *t.node(c4)
		c5n := *t.node(c5)
		c6n := *t.node(c6)
		c7n := *t.node(c7)
		c8n := *t.node(c8)
		c9n := *t.node(c9)
		next = t.Join(
			t.Join(c1n.d, c2n.c, c4n.b, c5n.a),
			t.Join(c2n.d, c3n.c, c5n.b, c6n.a),
			t.Join(c4n.d, c5n.c, c7n.b, c8n.a),
			t.Join(c5n.d, c6n.c, c8n.b, c9n.a))
	} else {
		// Natural step: a second round of successors over
		// the recombined parts doubles the advancement to
		// 2^(k-2) generations in this single call.
		next = t.Join(
			t.sucJoin(c1, c2, c4, c5, j),
			t.sucJoin(c2, c3, c5, c6, j),
			t.sucJoin(c4, c5, c7, c8, j),
			t.sucJoin(c5, c6, c8, c9, j))
	}
	t.cacheNext(id, next, j)
	return next
}

func (t *Table) sucJoin(a, b, c, d ID, j uint64) ID {
	return t.Successor(t.Join(a, b, c, d), j)
}
