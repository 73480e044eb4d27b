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

// Package raster samples node regions into row-major
// float buffers for display.
package raster

import (
	"fmt"

	"github.com/lifelab/hashlife/life"
)

// Window fills buf (laid out bufW x bufH, row-major) with
// samples of id over the region [x, x+w) x [y, y+h),
// downsampled so one sample covers a 2^minLevel square
// block. At minLevel 0 samples are {0, 1}; above it they
// are grey averages in [0, 1]. Regions outside the node
// read as 0.
func Window(t *life.Table, id life.ID, buf []float64, bufW, bufH int, x, y, w, h, minLevel uint64) error {
	pw := w >> minLevel
	ph := h >> minLevel
	if pw > uint64(bufW) || ph > uint64(bufH) {
		return fmt.Errorf("raster: %dx%d samples exceed %dx%d buffer", pw, ph, bufW, bufH)
	}
	if len(buf) < bufW*bufH {
		return fmt.Errorf("raster: buffer holds %d samples, need %d", len(buf), bufW*bufH)
	}
	for j := uint64(0); j < ph; j++ {
		for i := uint64(0); i < pw; i++ {
			buf[j*uint64(bufW)+i] = t.GetCell(id, x+(i<<minLevel), y+(j<<minLevel), minLevel)
		}
	}
	return nil
}
