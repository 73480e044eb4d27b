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

// Command lifebench runs a YAML-described suite of Life
// patterns through the engine and reports timings, node
// counts and result fingerprints:
//
//	lifebench [-table N] <suite.yaml>
//
// A suite file looks like (pattern files resolve relative
// to the suite file):
//
//	patterns:
//	  - name: gun
//	    file: gun.rle
//	    generations: 1000000
//	    vacuumEvery: 4
//	    expect:
//	      population: 166713
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/cpu"
	"sigs.k8s.io/yaml"

	"github.com/lifelab/hashlife/life"
	"github.com/lifelab/hashlife/pattern"
)

// Suite is the top-level benchmark description.
type Suite struct {
	Patterns []Run `json:"patterns"`
}

// Run is one pattern plus the horizon to advance it over.
type Run struct {
	// Name labels the run in the report; defaults to File.
	Name string `json:"name,omitempty"`
	// File is the pattern file, relative to the suite file.
	File string `json:"file"`
	// Generations is the total advancement horizon.
	Generations uint64 `json:"generations"`
	// Chunks splits the horizon into that many near-equal
	// Advance calls (default 1); with VacuumEvery it
	// exercises compaction under load.
	Chunks uint64 `json:"chunks,omitempty"`
	// VacuumEvery vacuums after every n-th chunk; 0
	// disables compaction.
	VacuumEvery uint64 `json:"vacuumEvery,omitempty"`
	// Expect optionally pins down the result.
	Expect *Expect `json:"expect,omitempty"`
}

// Expect is a checked prediction about a run's result.
type Expect struct {
	Population  uint64 `json:"population,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

var initialSize int

func init() {
	flag.IntVar(&initialSize, "table", 1<<22, "initial node table size (slots)")
}

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] <suite.yaml>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	buf, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading suite: %s", err)
	}
	var suite Suite
	if err := yaml.Unmarshal(buf, &suite); err != nil {
		log.Fatalf("parsing %s: %s", flag.Arg(0), err)
	}
	if len(suite.Patterns) == 0 {
		log.Fatalf("%s: no patterns", flag.Arg(0))
	}

	fmt.Printf("run:  %s\n", uuid.New())
	fmt.Printf("host: %s/%s %s\n", runtime.GOOS, runtime.GOARCH, cpuFeatures())
	base := filepath.Dir(flag.Arg(0))
	failed := 0
	for i := range suite.Patterns {
		if err := runOne(base, &suite.Patterns[i]); err != nil {
			log.Printf("%s: %s", suite.Patterns[i].name(), err)
			failed++
		}
	}
	if failed > 0 {
		log.Fatalf("%d of %d runs failed", failed, len(suite.Patterns))
	}
}

func (r *Run) name() string {
	if r.Name != "" {
		return r.Name
	}
	return r.File
}

func runOne(base string, r *Run) error {
	tbl := life.New(initialSize)
	file := r.File
	if !filepath.IsAbs(file) {
		file = filepath.Join(base, file)
	}
	root, err := pattern.ReadFile(tbl, file)
	if err != nil {
		return err
	}
	chunks := r.Chunks
	if chunks == 0 {
		chunks = 1
	}
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	allocs := mem.TotalAlloc
	start := time.Now()

	remaining := r.Generations
	for i := uint64(0); i < chunks && remaining > 0; i++ {
		step := remaining / (chunks - i)
		if i == chunks-1 {
			step = remaining
		}
		root = tbl.Advance(root, step)
		remaining -= step
		if r.VacuumEvery != 0 && (i+1)%r.VacuumEvery == 0 {
			tbl.Vacuum(root)
		}
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&mem)

	lo, hi := pattern.FingerprintNode(tbl, root)
	fp := fmt.Sprintf("%016x%016x", hi, lo)
	st := tbl.Stats()
	fmt.Printf("%s: %d gens in %s (pop %d, %d nodes, %d joins, %d/%d cache, %d MiB)\n",
		r.name(), r.Generations, elapsed, tbl.Pop(root), tbl.Count(),
		st.Joins, st.CacheHits, st.CacheHits+st.CacheMisses,
		(mem.TotalAlloc-allocs)>>20)
	fmt.Printf("%s: fingerprint %s\n", r.name(), fp)

	if r.Expect != nil {
		if r.Expect.Population != 0 && tbl.Pop(root) != r.Expect.Population {
			return fmt.Errorf("population %d, expected %d", tbl.Pop(root), r.Expect.Population)
		}
		if r.Expect.Fingerprint != "" && fp != r.Expect.Fingerprint {
			return fmt.Errorf("fingerprint %s, expected %s", fp, r.Expect.Fingerprint)
		}
	}
	return nil
}

// cpuFeatures summarizes the host vector extensions; node
// hashing is scalar, so this is for report context only.
func cpuFeatures() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "avx512"
	case cpu.X86.HasAVX2:
		return "avx2"
	case cpu.ARM64.HasASIMD:
		return "asimd"
	default:
		return "baseline"
	}
}
