package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"slices"

	"golang.org/x/text/message"
)

/*
Tabulates the residue classes that fifth powers, and sums of two fifth
powers, can occupy modulo small numbers. Moduli where few classes are
achievable make good sieves for the counterexample search: a complement
value whose residue is unachievable as a pair sum cannot be in the pair-sum
index, so the scan can skip the hash probe entirely. The classic case is
mod 11, where n^5 is always 0, 1 or 10.

Moduli with a worthwhile gain are exported as residue-NNN.json for the
parscan -sieve flag.
*/
func main() {
	p := message.NewPrinter(message.MatchLanguage("en"))

	exports := map[uint64]bool{
		11:  true,
		25:  true,
		31:  true,
		41:  true,
		61:  true,
		71:  true,
		101: true,
	}

	fmt.Printf("%8s %8s %8s %9s %7s\n", "modulus", "powers", "pairs", "density", "gain")
	for m := uint64(2); m <= 101; m++ {
		powers := powerResidues(m)
		pairs := pairResidues(m, powers)
		density := float64(len(pairs)) / float64(m)
		gain := 1 / density

		if exports[m] {
			output := struct {
				Modulus       uint64
				PowerResidues []uint64
				PairResidues  []uint64
				Density       float64
				Gain          float64
			}{
				Modulus:       m,
				PowerResidues: powers,
				PairResidues:  pairs,
				Density:       density,
				Gain:          gain,
			}

			f, err := os.OpenFile(fmt.Sprintf("residue-%03d.json", m), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
			if err != nil {
				log.Fatal(err)
			}
			defer func(f *os.File) {
				_ = f.Close()
			}(f)
			txt, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				log.Fatal(err)
			}
			_, err = f.Write(txt)
			if err != nil {
				log.Fatal(err)
			}
			_ = f.Close()
		}
		_, _ = p.Printf("%8d %8d %8d %9.3f %7.2f\n", m, len(powers), len(pairs), density, gain)
	}
}

// powerResidues returns the sorted distinct values of n^5 mod m.
func powerResidues(m uint64) []uint64 {
	seen := map[uint64]bool{}
	for n := uint64(0); n < m; n++ {
		r := n % m
		r5 := r * r % m
		r5 = r5 * r5 % m
		r5 = r5 * r % m
		seen[r5] = true
	}
	return sorted(seen)
}

// pairResidues returns the sorted distinct values of x+y mod m where x and
// y are both fifth-power residues.
func pairResidues(m uint64, powers []uint64) []uint64 {
	seen := map[uint64]bool{}
	for _, x := range powers {
		for _, y := range powers {
			seen[(x+y)%m] = true
		}
	}
	return sorted(seen)
}

func sorted(seen map[uint64]bool) []uint64 {
	out := make([]uint64, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}
