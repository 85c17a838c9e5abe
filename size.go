package bookseek

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// sizeTokenRE matches a size token at the start of a string: a decimal
// number followed by optional whitespace and a unit. MB is listed before B
// so the longer unit wins.
var sizeTokenRE = regexp.MustCompile(`(?i)^([\d.]+)\s*(MB|KB|GB|B)`)

// byteMultipliers maps upper-cased units to their byte multiplier.
var byteMultipliers = map[string]float64{
	"B":  1,
	"KB": 1024,
	"MB": 1024 * 1024,
	"GB": 1024 * 1024 * 1024,
}

// ParseSize converts a human-readable size token such as "2.5MB" into an
// exact byte count, string-encoded. Fractional byte counts are truncated.
// Empty or unparseable tokens yield "0", never an error: a missing size is
// an expected outcome of best-effort extraction, not a failure.
func ParseSize(token string) string {
	m := sizeTokenRE.FindStringSubmatch(token)
	if m == nil {
		return "0"
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		// Matched digits-and-dots can still be malformed, e.g. "1.2.3".
		return "0"
	}

	multiplier := byteMultipliers[strings.ToUpper(m[2])]
	total := math.Floor(value * multiplier)
	// The digit run is unbounded, so the product can exceed int64 range;
	// converting an out-of-range float is undefined, so clamp first.
	if total >= math.MaxInt64 {
		return strconv.FormatInt(math.MaxInt64, 10)
	}
	return strconv.FormatInt(int64(total), 10)
}
