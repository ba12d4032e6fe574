package common

import (
	"log"
	"regexp"
	"strconv"
	"strings"
)

// DecodeBound parses a search bound such as "1000", "2_500", "5K" or "1M".
// K and M scale by powers of ten; underscores group digits.
func DecodeBound(boundString *string, verbose *bool) uint64 {
	decoder := regexp.MustCompile(`([0-9_]+)([KM]*)`)
	pieces := decoder.FindStringSubmatch(*boundString)
	bx, err := strconv.ParseInt(strings.Replace(pieces[1], "_", "", -1), 10, 64)
	bound := uint64(bx)
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range pieces[2] {
		switch s {
		case 'K':
			bound *= 1_000
		case 'M':
			bound *= 1_000_000
		default:
			log.Fatalf(`Unrecognized bound format '%c' from "%s", can't happen`, s, pieces[2])
		}
	}
	if *verbose {
		if bound >= 1_000_000 {
			log.Printf(`Bound: %.1fM`, float64(bound)/1e6)
		} else if bound >= 1_000 {
			log.Printf(`Bound: %.1fK`, float64(bound)/1e3)
		} else {
			log.Printf("Bound: %d", bound)
		}
	}
	return bound
}
