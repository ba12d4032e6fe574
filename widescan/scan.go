package main

import (
	"flag"
	"time"

	"FifthPowers/common"
	"FifthPowers/quintic"

	"golang.org/x/text/message"
)

/*
Searches for counterexamples to Euler's sum-of-powers conjecture for k=5
with all arithmetic in 128 bits. The uint64 scan tops out near a bound of
6200 because pair sums of fifth powers stop fitting in a machine word; this
variant carries powers and sums in mp.UInt128 and has no practical bound
ceiling, at the price of a constant-factor slowdown and the O(m^2) index
memory, which becomes the real limit long before the arithmetic does.
*/

func main() {
	verbose := flag.Bool("verbose", false, "verbose output")
	all := flag.Bool("all", false, "exhaust the bound instead of stopping at the first solution")
	boundString := flag.String(
		"bound",
		"10K",
		"Exclusive upper limit on the five bases. Can use K and M as powers of ten",
	)
	flag.Parse()
	bound := common.DecodeBound(boundString, verbose)

	p := message.NewPrinter(message.MatchLanguage("en"))

	t0 := time.Now()
	searcher := quintic.NewWideSearcher(bound)
	_, _ = p.Printf("index built in %.1fs\n", time.Since(t0).Seconds())

	found := 0
	seen := map[quintic.Solution]bool{}
	for {
		s, ok := searcher.Next()
		if !ok {
			break
		}
		if !seen[s] {
			seen[s] = true
			found++
			_, _ = p.Printf("%v\n", s)
		}
		if !*all {
			break
		}
	}
	if found == 0 {
		_, _ = p.Printf("no solutions below %d\n", bound)
	}
	_, _ = p.Printf("total time %.1fs\n", time.Since(t0).Seconds())
}
