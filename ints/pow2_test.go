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

package ints

import (
	"testing"
)

func TestIsPow2(t *testing.T) {
	for _, v := range []uint64{1, 2, 4, 1024, 1 << 63} {
		if !IsPow2(v) {
			t.Errorf("IsPow2(%d) = false", v)
		}
	}
	for _, v := range []uint64{0, 3, 6, 1000, 1<<63 + 1} {
		if IsPow2(v) {
			t.Errorf("IsPow2(%d) = true", v)
		}
	}
}

func TestNextPow2(t *testing.T) {
	cases := [][2]uint64{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8},
		{1000, 1024}, {1024, 1024}, {1025, 2048},
	}
	for _, c := range cases {
		if got := NextPow2(c[0]); got != c[1] {
			t.Errorf("NextPow2(%d) = %d, want %d", c[0], got, c[1])
		}
	}
}

func TestLog2(t *testing.T) {
	cases := [][2]uint64{
		{1, 0}, {2, 1}, {3, 1}, {4, 2}, {255, 7}, {256, 8},
	}
	for _, c := range cases {
		if got := Log2(c[0]); got != uint(c[1]) {
			t.Errorf("Log2(%d) = %d, want %d", c[0], got, c[1])
		}
	}
}

func TestLog2Ceil(t *testing.T) {
	cases := [][2]uint64{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {36, 6}, {64, 6}, {65, 7},
	}
	for _, c := range cases {
		if got := Log2Ceil(c[0]); got != uint(c[1]) {
			t.Errorf("Log2Ceil(%d) = %d, want %d", c[0], got, c[1])
		}
	}
}
