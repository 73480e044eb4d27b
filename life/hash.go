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

// mix64 is the SplitMix64 finalizer.
// Every bit of the input influences every bit
// of the output, which makes it suitable for
// deriving table positions from node ids.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// hashQuad mixes four 64-bit values into one.
// The accumulation is order-sensitive, so
// (a, b, c, d) and any permutation of it
// hash differently.
func hashQuad(a, b, c, d uint64) uint64 {
	const phi uint64 = 0x9e3779b97f4a7c15
	one, two, three, four := uint64(1), uint64(2), uint64(3), uint64(4)
	h := uint64(0x243f6a8885a308d3)
	h ^= mix64(a + phi*one)
	h = (h * phi) ^ (h >> 32)
	h ^= mix64(b + phi*two)
	h = (h * phi) ^ (h >> 32)
	h ^= mix64(c + phi*three)
	h = (h * phi) ^ (h >> 32)
	h ^= mix64(d + phi*four)
	h = (h * phi) ^ (h >> 32)
	return mix64(h)
}
