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

// Advance evolves id by exactly steps generations and
// returns the cropped result. The step count is decomposed
// into powers of two; each set bit b of steps contributes
// one Successor call with j = b, re-padded beforehand so
// the pattern never reaches the boundary. Every operation
// here is concentric, so equal universe states always
// crop to equal ids: Advance(n, a+b) returns the id
// Advance(Advance(n, a), b) does.
func (t *Table) Advance(id ID, steps uint64) ID {
	if steps == 0 {
		return t.Crop(id)
	}
	for j := uint64(0); steps > 0; j, steps = j+1, steps>>1 {
		if steps&1 == 0 {
			continue
		}
		// pad twice over: with the pattern inside the centre
		// quarter and j at most level-3, even light-speed
		// growth over 2^j generations stays within the
		// centre region Successor returns
		id = t.Centre(t.Pad(id))
		for t.node(id).level < j+3 {
			id = t.Centre(id)
		}
		id = t.Successor(id, j)
	}
	return t.Crop(id)
}

// Ffwd takes iters natural steps, padding before each so
// no information is lost at the boundary, and returns the
// resulting node together with the number of generations
// covered. Because each natural step advances by
// 2^(level-2), Ffwd races ahead of any fixed step budget;
// use Advance to hit an exact generation count.
func (t *Table) Ffwd(id ID, iters int) (ID, uint64) {
	var gens uint64
	for i := 0; i < iters; i++ {
		id = t.Centre(t.Pad(id))
		gens += 1 << (t.node(id).level - 2)
		id = t.Successor(id, Natural)
	}
	return id, gens
}
