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

// Command hashlife advances a Life pattern by a number of
// generations and writes the result as RLE:
//
//	hashlife [-o out] [-text] [-S] <pattern-file> <generations>
//
// The input format is chosen by file extension (.rle,
// .cells, .txt), optionally with a .zst or .s2 compression
// suffix.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/lifelab/hashlife/life"
	"github.com/lifelab/hashlife/pattern"
)

var (
	dasho       string
	dashtext    bool
	dashfp      bool
	printStats  bool
	dashvacuum  bool
	initialSize int
)

func init() {
	flag.StringVar(&dasho, "o", "", "file for output (default is stdout; extension selects the format)")
	flag.BoolVar(&dashtext, "text", false, "write plain text instead of RLE")
	flag.BoolVar(&dashfp, "fingerprint", false, "print the result fingerprint on stderr")
	flag.BoolVar(&printStats, "S", false, "print engine statistics on stderr")
	flag.BoolVar(&dashvacuum, "vacuum", false, "compact the node table before writing output")
	flag.IntVar(&initialSize, "table", 1<<20, "initial node table size (slots)")
}

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] <pattern-file> <generations>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	generations, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		log.Fatalf("bad generation count %q: %s", args[1], err)
	}

	tbl := life.New(initialSize)
	root, err := pattern.ReadFile(tbl, args[0])
	if err != nil {
		log.Fatalf("reading %s: %s", args[0], err)
	}
	root = tbl.Advance(root, generations)
	if dashvacuum {
		tbl.Vacuum(root)
	}

	if dasho != "" {
		if err := pattern.WriteFile(tbl, root, dasho); err != nil {
			log.Fatalf("writing %s: %s", dasho, err)
		}
	} else {
		var out []byte
		if dashtext {
			out = pattern.EncodeText(tbl, root)
		} else {
			out = pattern.EncodeRLE(tbl, root)
		}
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatalf("writing output: %s", err)
		}
	}
	if dashfp {
		lo, hi := pattern.FingerprintNode(tbl, root)
		fmt.Fprintf(os.Stderr, "fingerprint: %016x%016x\n", hi, lo)
	}
	if printStats {
		st := tbl.Stats()
		fmt.Fprintf(os.Stderr, "population:  %d\n", tbl.Pop(root))
		fmt.Fprintf(os.Stderr, "nodes:       %d live, %d interned\n", tbl.Count(), st.Interned)
		fmt.Fprintf(os.Stderr, "table:       %d slots, %d resizes, %d vacuums\n", tbl.Size(), st.Resizes, st.Vacuums)
		fmt.Fprintf(os.Stderr, "joins:       %d\n", st.Joins)
		fmt.Fprintf(os.Stderr, "cache:       %d hits, %d misses\n", st.CacheHits, st.CacheMisses)
	}
}
