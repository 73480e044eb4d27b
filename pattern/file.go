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
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/lifelab/hashlife/compr"
	"github.com/lifelab/hashlife/life"
)

// File names select their encoding by extension: ".rle"
// for run-length encoding, ".cells" or ".txt" for plain
// text. A trailing compression suffix recognized by
// package compr ("gun.rle.zst") wraps either encoding.

func splitName(name string) (format, algo string) {
	if c := compr.BySuffix(name); c != nil {
		algo = c.Name()
		name = strings.TrimSuffix(name, path.Ext(name))
	}
	format = strings.TrimPrefix(path.Ext(name), ".")
	return format, algo
}

// ReadFile loads the pattern file at name and interns it
// into t. Unknown extensions decode as RLE, the dominant
// interchange format.
func ReadFile(t *life.Table, name string) (life.ID, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return life.Unused, err
	}
	format, algo := splitName(name)
	if algo != "" {
		data, err = compr.ByName(algo).Decompress(data, nil)
		if err != nil {
			return life.Unused, fmt.Errorf("%s: %w", name, err)
		}
	}
	switch format {
	case "cells", "txt":
		return FromText(t, data)
	default:
		return FromRLE(t, data)
	}
}

// WriteFile encodes id per the extension of name and
// writes it, compressing when the name asks for it.
func WriteFile(t *life.Table, id life.ID, name string) error {
	format, algo := splitName(name)
	var data []byte
	switch format {
	case "cells", "txt":
		data = EncodeText(t, id)
	default:
		data = EncodeRLE(t, id)
	}
	if algo != "" {
		data = compr.ByName(algo).Compress(data, nil)
	}
	return os.WriteFile(name, data, 0644)
}
