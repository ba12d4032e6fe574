package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"slices"
	"time"

	"FifthPowers/common"
	"FifthPowers/quintic"
)

/*
Parallel exhaustive search for counterexamples to Euler's sum-of-powers
conjecture for k=5 below a bound.

The pair-sum index is built once up front and is read-only from then on,
so the outer loop of the O(m^3) scan shards cleanly: a dispatcher hands
batches of pair-sum keys to workers over a channel, each worker probes the
shared index for complements, and results are merged with no ordering
guarantees and deduplicated at the end.

An optional residue sieve (produced by the residue tool) prunes the inner
loop: fifth powers occupy few residue classes modulo primes like 11, so a
complement whose residue is unachievable cannot be in the index and is
skipped before the hash probe.
*/

// ResidueFilter mirrors the JSON exported by the residue tool.
type ResidueFilter struct {
	Modulus       uint64
	PowerResidues []uint64
	PairResidues  []uint64
	Density       float64
	Gain          float64
}

// Result is one worker's contribution.
type Result struct {
	ID        int
	Success   bool
	Solutions []quintic.Solution
	Tests     int
}

const batchSize = 512 // keys per dispatched batch

func main() {
	verbose := flag.Bool("verbose", false, "verbose output")
	threads := flag.Int("threads", runtime.NumCPU()/2, "Number of threads to use in search")
	sieve := flag.String("sieve", "", "JSON file containing a residue filter (optional)")
	out := flag.String("out", "solutions.json", "File to write the deduplicated solutions to")
	boundString := flag.String("bound", "1K", "Exclusive upper limit on the five bases. Can use K and M as powers of ten")
	cpuProfile := flag.String("cpuprofile", "", "write cpu profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile to file")
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
			return
		}
		defer pprof.StopCPUProfile()
	}
	defer func() {
		if *memProfile != "" {
			f, err := os.Create(*memProfile)
			if err != nil {
				log.Fatal(err)
			}
			runtime.GC()
			err = pprof.WriteHeapProfile(f)
			if err != nil {
				log.Fatal(err)
			}
			_ = f.Close()
		}
	}()

	bound := common.DecodeBound(boundString, verbose)

	var accept func(sum uint64) bool
	if *sieve != "" {
		filter, err := readFilter(*sieve)
		if err != nil {
			log.Fatal(err)
		}
		accept = filter.predicate()
		if *verbose {
			log.Printf("residue sieve mod %d, expected gain %.2f", filter.Modulus, filter.Gain)
		}
	}

	searcher, err := quintic.NewSearcher(bound)
	if err != nil {
		log.Fatal(err)
	}

	t0 := time.Now()
	totalBatches := (searcher.KeyCount() + batchSize - 1) / batchSize

	dispatch := make(chan int, *threads)
	go dispatcher(totalBatches, dispatch, *verbose)

	fmt.Printf("%d threads\n", *threads)
	results := make(chan Result, *threads)
	for i := 0; i < *threads; i++ {
		go worker(i, dispatch, searcher, accept, results)
	}

	tests := 0
	solutions := []quintic.Solution{}
	for i := 0; i < *threads; i++ {
		r, ok := <-results
		if !ok {
			log.Fatalf("Results channel closed ... should be impossible")
		}
		if *verbose {
			log.Printf("thread %d result (%d solutions)\n", r.ID, len(r.Solutions))
		}
		if !r.Success {
			log.Fatalf("Worker %d failed", r.ID)
		}
		solutions = append(solutions, r.Solutions...)
		tests += r.Tests
	}

	distinct := dedupe(solutions)
	fr, err := os.OpenFile(*out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		log.Fatal(err)
	}
	defer func(fr *os.File) {
		_ = fr.Close()
	}(fr)
	txt, err := json.MarshalIndent(distinct, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	_, _ = fr.Write(txt)
	_ = fr.Close()

	combos := searcher.Combinations()
	dt := time.Since(t0).Seconds()
	fmt.Printf("%.1f probes/s, total time %.1f s\n", float64(tests)/dt, dt)
	fmt.Printf("Bound: %d\nProbes: %d\n", bound, tests)
	if tests > 0 {
		fmt.Printf("Gain over unsieved: %.1f\n", float64(combos)/float64(tests))
	}
	for _, s := range distinct {
		fmt.Printf("%v\n", s)
	}
	fmt.Printf("%d distinct solutions\n", len(distinct))
}

// worker is where the actual probing happens
func worker(thread int, dispatch chan int, searcher *quintic.Searcher, accept func(uint64) bool, results chan Result) {
	r := Result{
		ID:        thread,
		Success:   false,
		Solutions: []quintic.Solution{},
		Tests:     0,
	}
	defer func() {
		results <- r
	}()

	for {
		batch, ok := <-dispatch
		if !ok {
			break
		}
		lo := batch * batchSize
		sols, tests := searcher.ScanShard(lo, lo+batchSize, accept)
		r.Solutions = append(r.Solutions, sols...)
		r.Tests += tests
	}
	r.Success = true
}

// dispatcher sends batches of pair-sum keys to the workers via a channel.
func dispatcher(totalBatches int, dispatch chan int, verbose bool) {
	step := (totalBatches + 19) / 20
	t0 := time.Now()
	for i := 0; i < totalBatches; i++ {
		if verbose && step > 0 && i%step == 0 && i > 0 {
			total := time.Since(t0).Seconds()
			dt := total / float64(i)
			log.Printf(
				"sender: %6d (%.0f%%) %.1f seconds remaining",
				i,
				float64(i*100)/float64(totalBatches),
				float64(totalBatches-i)*dt,
			)
		}
		dispatch <- i
	}
	if verbose {
		log.Printf("sender: completed")
	}
	close(dispatch)
}

func readFilter(name string) (ResidueFilter, error) {
	filter := ResidueFilter{}

	f, err := os.Open(name)
	if err != nil {
		return filter, err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	txt, err := io.ReadAll(f)
	if err != nil {
		return filter, err
	}
	err = json.Unmarshal(txt, &filter)
	return filter, err
}

// predicate compiles the filter into an O(1) membership test on the
// complement sum.
func (filter ResidueFilter) predicate() func(sum uint64) bool {
	allowed := make([]bool, filter.Modulus)
	for _, r := range filter.PairResidues {
		allowed[r] = true
	}
	m := filter.Modulus
	return func(sum uint64) bool {
		return allowed[sum%m]
	}
}

func dedupe(solutions []quintic.Solution) []quintic.Solution {
	seen := map[quintic.Solution]bool{}
	for _, s := range solutions {
		seen[s] = true
	}
	out := make([]quintic.Solution, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	slices.SortFunc(out, quintic.CompareSolutions)
	return out
}
