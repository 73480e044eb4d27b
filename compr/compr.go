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

// Package compr selects the compression algorithm used
// for compressed pattern files, wrapping third-party
// compression libraries behind one interface.
package compr

import (
	"path"
	"runtime"
	"strings"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// Codec compresses and decompresses whole pattern
// payloads. Pattern files are small, so the interface
// works on complete buffers rather than streams.
type Codec interface {
	// Name is the name of the compression algorithm,
	// which is also its file suffix.
	Name() string
	// Compress appends the compressed src to dst
	// and returns the result.
	Compress(src, dst []byte) []byte
	// Decompress appends the decompressed src to dst
	// and returns the result. The encoded stream carries
	// its own framing, so no output size is needed.
	Decompress(src, dst []byte) ([]byte, error)
}

type zstdCodec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func (z *zstdCodec) Name() string { return "zst" }

func (z *zstdCodec) Compress(src, dst []byte) []byte {
	return z.enc.EncodeAll(src, dst)
}

func (z *zstdCodec) Decompress(src, dst []byte) ([]byte, error) {
	return z.dec.DecodeAll(src, dst)
}

var zstdGlobal *zstdCodec

func init() {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		panic(err)
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(runtime.GOMAXPROCS(0)))
	if err != nil {
		panic(err)
	}
	zstdGlobal = &zstdCodec{enc: enc, dec: dec}
}

type s2Codec struct{}

func (s2Codec) Name() string { return "s2" }

func (s2Codec) Compress(src, dst []byte) []byte {
	got := s2.Encode(nil, src)
	if len(dst) == 0 {
		return got
	}
	return append(dst, got...)
}

func (s2Codec) Decompress(src, dst []byte) ([]byte, error) {
	got, err := s2.Decode(nil, src)
	if err != nil {
		return nil, err
	}
	if len(dst) == 0 {
		return got, nil
	}
	return append(dst, got...), nil
}

// ByName selects a codec by algorithm name, or nil if the
// name is unknown.
func ByName(name string) Codec {
	switch name {
	case "zst", "zstd":
		return zstdGlobal
	case "s2":
		return s2Codec{}
	default:
		return nil
	}
}

// BySuffix selects the codec implied by a file name
// ("pattern.rle.zst" selects zstd), or nil if the file
// carries no recognized compression suffix.
func BySuffix(name string) Codec {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	return ByName(ext)
}
