package dataprep

import (
	"strconv"

	"github.com/asaskevich/govalidator"
)

// ToInts parses the tokens made up entirely of decimal digits and
// drops everything else. There is no fallback parsing: signs, spaces,
// or any trailing text disqualify the whole token.
func ToInts(tokens []string) []int {
	ints := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		// govalidator treats "" as numeric, so guard it explicitly.
		if tok == "" || !govalidator.IsNumeric(tok) {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue // out of int range
		}
		ints = append(ints, n)
	}
	return ints
}
