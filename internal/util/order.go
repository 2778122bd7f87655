package util

import (
	"strconv"
	"strings"
	"unicode"
)

// CompareStates gives the ordering of two state identifiers. Identifiers made
// of a common alphabetic prefix followed by a decimal number, such as "q2" and
// "q10", are ordered by the number so that "q2" comes before "q10". All other
// pairs fall back to plain lexical comparison.
//
// Returns a negative number if a sorts before b, a positive number if a sorts
// after b, and 0 if they are the same.
func CompareStates(a, b string) int {
	aPre, aNum, aOK := splitNumericSuffix(a)
	bPre, bNum, bOK := splitNumericSuffix(b)

	if aOK && bOK && aPre == bPre {
		if aNum != bNum {
			if aNum < bNum {
				return -1
			}
			return 1
		}
	}

	return strings.Compare(a, b)
}

// splitNumericSuffix splits s into its leading non-digit prefix and trailing
// number. ok is false if s does not end in digits or has digits anywhere
// before the suffix.
func splitNumericSuffix(s string) (prefix string, num uint64, ok bool) {
	idx := strings.IndexFunc(s, unicode.IsDigit)
	if idx < 0 {
		return "", 0, false
	}

	n, err := strconv.ParseUint(s[idx:], 10, 64)
	if err != nil {
		return "", 0, false
	}

	return s[:idx], n, true
}
