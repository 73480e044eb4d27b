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
	"encoding/binary"
	"slices"

	"github.com/dchest/siphash"

	"github.com/lifelab/hashlife/life"
)

// fixed fingerprint keys; changing them changes every
// published fingerprint
const (
	fpKey0 = 0x6c69666567726964
	fpKey1 = 0x686173686c696665
)

// Fingerprint digests a live-cell set, invariant under
// translation: the cells are re-anchored to their bounding
// box and hashed in row-major order. Two patterns share a
// fingerprint exactly when they are equal up to
// translation (modulo hash collisions).
func Fingerprint(cells []Coord) (lo, hi uint64) {
	if len(cells) == 0 {
		return siphash.Hash128(fpKey0, fpKey1, nil)
	}
	minx, miny := cells[0].X, cells[0].Y
	for _, c := range cells {
		minx = min(minx, c.X)
		miny = min(miny, c.Y)
	}
	norm := make([]Coord, len(cells))
	for i, c := range cells {
		norm[i] = Coord{X: c.X - minx, Y: c.Y - miny}
	}
	slices.SortFunc(norm, compareCoord)
	buf := make([]byte, 0, 16*len(norm))
	for _, c := range norm {
		buf = binary.LittleEndian.AppendUint64(buf, c.X)
		buf = binary.LittleEndian.AppendUint64(buf, c.Y)
	}
	return siphash.Hash128(fpKey0, fpKey1, buf)
}

// FingerprintNode digests the live cells of an interned
// node. Structurally equal nodes always agree; so do nodes
// that differ only by zero padding.
func FingerprintNode(t *life.Table, id life.ID) (lo, hi uint64) {
	return Fingerprint(Cells(t, id))
}
