package main

import (
	"flag"
	"log"
	"time"

	"FifthPowers/common"
	"FifthPowers/quintic"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
)

/*
Searches for counterexamples to Euler's sum-of-powers conjecture for k=5,
i.e. solutions of a^5 + b^5 + c^5 + d^5 = e^5 with all bases below a bound.

A brute force scan of all quadruples is O(m^4). Splitting the left side
into two pair sums and indexing every achievable pair sum by value turns
the question into "is e^5 - pairsum also a pair sum", which is one hash
probe, so the whole search is O(m^3). The first solution below 500 is the
Lander-Parkin counterexample 27^5 + 84^5 + 110^5 + 133^5 = 144^5; below
1000 the search finds exactly that solution and its integer multiples.

Finding the first solution is cheap because the enumerator is lazy and
visits pair sums in ascending order. Exhausting a bound of 1000 costs
roughly a hundred times more than finding the first solution at 500.
*/

func main() {
	verbose := flag.Bool("verbose", false, "verbose output")
	all := flag.Bool("all", false, "exhaust the bound instead of stopping at the first solution")
	boundString := flag.String(
		"bound",
		"500",
		"Exclusive upper limit on the five bases. Can use K and M as powers of ten",
	)
	flag.Parse()
	bound := common.DecodeBound(boundString, verbose)

	p := message.NewPrinter(message.MatchLanguage("en"))

	t0 := time.Now()
	if *all {
		solutions, err := quintic.All(bound)
		if err != nil {
			log.Fatal(err)
		}
		for _, s := range solutions {
			crossCheck(s)
			_, _ = p.Printf("%v\n", s)
		}
		_, _ = p.Printf("%d distinct solutions below %d in %.3fs\n",
			len(solutions), bound, time.Since(t0).Seconds())
	} else {
		s, ok, err := quintic.First(bound)
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			_, _ = p.Printf("no solutions below %d (%.3fs)\n", bound, time.Since(t0).Seconds())
			return
		}
		crossCheck(s)
		_, _ = p.Printf("%v\n", s)
		_, _ = p.Printf("found in %.3fs\n", time.Since(t0).Seconds())
	}
}

// crossCheck recomputes the identity in decimal arithmetic, independent of
// the uint64 path that produced it. A mismatch means the index or the root
// decoding is broken, so it is fatal.
func crossCheck(s quintic.Solution) {
	five := decimal.NewFromInt(5)
	pow := func(n uint64) decimal.Decimal {
		return decimal.NewFromInt(int64(n)).Pow(five)
	}
	lhs := pow(s.A).Add(pow(s.B)).Add(pow(s.C)).Add(pow(s.D))
	if !lhs.Equal(pow(s.E)) {
		log.Fatalf("cross-check failed for %v: %v != %v", s, lhs, pow(s.E))
	}
}
