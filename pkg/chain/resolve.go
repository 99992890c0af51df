package chain

import (
	"strconv"
	"strings"

	// Packages
	toolchain "github.com/mutablelogic/go-toolchain"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Back-references take the form RESULT_<n> where n is a 1-based step index
const refPrefix = "RESULT_"

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ResolveRef substitutes a back-reference value with the output recorded
// for the referenced step. Values which are not back-references pass
// through unchanged. A referenced output is substituted as-is, without
// further decomposition.
func ResolveRef(value any, prior map[int]any) (any, error) {
	str, ok := value.(string)
	if !ok || !strings.HasPrefix(str, refPrefix) {
		return value, nil
	}
	index, err := strconv.Atoi(strings.TrimPrefix(str, refPrefix))
	if err != nil {
		return nil, toolchain.ErrBadReference.Withf("invalid back-reference %q", str)
	}
	output, exists := prior[index]
	if !exists {
		return nil, toolchain.ErrBadReference.Withf("%q does not refer to a completed step", str)
	}
	return output, nil
}

// IsRef reports whether a value is a back-reference token
func IsRef(value any) bool {
	str, ok := value.(string)
	return ok && strings.HasPrefix(str, refPrefix)
}

// CoerceNumber converts a numeric-looking string to a number: a string
// containing a decimal point becomes a float, otherwise an integer is
// attempted. Values which do not parse pass through unchanged.
func CoerceNumber(value any) any {
	str, ok := value.(string)
	if !ok {
		return value
	}
	if strings.Contains(str, ".") {
		if number, err := strconv.ParseFloat(str, 64); err == nil {
			return number
		}
	} else if number, err := strconv.ParseInt(str, 10, 64); err == nil {
		return number
	}
	return value
}
