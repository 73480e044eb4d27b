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
	"os"
	"path/filepath"
	"testing"

	"github.com/lifelab/hashlife/life"
)

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	tbl := life.New(0)
	gun, err := FromRLE(tbl, []byte(gunRLE))
	if err != nil {
		t.Fatal(err)
	}
	names := []string{
		"gun.rle",
		"gun.cells",
		"gun.rle.zst",
		"gun.rle.s2",
		"gun.cells.zst",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name)
			if err := WriteFile(tbl, gun, p); err != nil {
				t.Fatal(err)
			}
			got, err := ReadFile(tbl, p)
			if err != nil {
				t.Fatal(err)
			}
			if got != gun {
				t.Fatalf("file round trip changed root %d -> %d", gun, got)
			}
		})
	}
}

func TestCompressedSmaller(t *testing.T) {
	dir := t.TempDir()
	tbl := life.New(0)
	// a sparse diagonal produces a highly compressible grid
	var cells []Coord
	for i := uint64(0); i < 64; i++ {
		cells = append(cells, Coord{X: i, Y: i})
	}
	id := FromCells(tbl, cells)
	plain := filepath.Join(dir, "diag.cells")
	packed := filepath.Join(dir, "diag.cells.zst")
	if err := WriteFile(tbl, id, plain); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(tbl, id, packed); err != nil {
		t.Fatal(err)
	}
	ps, _ := os.Stat(plain)
	zs, _ := os.Stat(packed)
	if zs.Size() >= ps.Size() {
		t.Fatalf("compressed %d >= plain %d", zs.Size(), ps.Size())
	}
}

func TestReadFileErrors(t *testing.T) {
	tbl := life.New(0)
	if _, err := ReadFile(tbl, filepath.Join(t.TempDir(), "missing.rle")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.rle.zst")
	if err := os.WriteFile(bad, []byte("not zstd at all"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(tbl, bad); err == nil {
		t.Fatal("expected an error for corrupt compressed data")
	}
}
