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
	"testing"

	"github.com/lifelab/hashlife/life"
)

func TestDecodeText(t *testing.T) {
	cells, err := DecodeText([]byte(".O.\r\n..O\nOOO\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Coord{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for i, c := range want {
		if cells[i] != c {
			t.Fatalf("cell %d: got %v, want %v", i, cells[i], c)
		}
	}
}

func TestDecodeTextBadByte(t *testing.T) {
	if _, err := DecodeText([]byte(".O.\n..X\n")); err == nil {
		t.Fatal("expected an error on unknown byte")
	}
}

func TestTextRoundTrip(t *testing.T) {
	tbl := life.New(0)
	glider, err := FromText(tbl, []byte(".O..\n..O.\nOOO.\n....\n"))
	if err != nil {
		t.Fatal(err)
	}
	again, err := FromText(tbl, EncodeText(tbl, glider))
	if err != nil {
		t.Fatal(err)
	}
	if again != glider {
		t.Fatal("text round trip changed the root")
	}
	// text and RLE decode to the same interned node
	viaRLE, err := FromRLE(tbl, []byte("bo$2bo$3o!"))
	if err != nil {
		t.Fatal(err)
	}
	if viaRLE != glider {
		t.Fatal("RLE and text disagree on the glider")
	}
}

func TestEncodeTextGrid(t *testing.T) {
	tbl := life.New(0)
	id := FromCells(tbl, []Coord{{0, 0}, {3, 3}})
	got := string(EncodeText(tbl, id))
	want := "O...\n....\n....\n...O\n"
	if got != want {
		t.Fatalf("grid:\n%s\nwant:\n%s", got, want)
	}
}
