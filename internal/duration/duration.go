// Package duration converts compact duration tokens such as "2h", "50m" or
// "600" into whole seconds for downtime scheduling.
package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	monerrors "github.com/concave-dev/monctl/internal/errors"
)

// Unit multipliers in seconds.
const (
	Second int64 = 1
	Minute       = 60 * Second
	Hour         = 60 * Minute
	Day          = 24 * Hour
	Week         = 7 * Day
)

var tokenRegex = regexp.MustCompile(`^(\d+)([wdhms])?$`)

var multipliers = map[string]int64{
	"":  Second,
	"s": Second,
	"m": Minute,
	"h": Hour,
	"d": Day,
	"w": Week,
}

// Parse converts text into seconds. A missing unit suffix means seconds.
// Negative values, decimals, unknown suffixes and empty input fail with
// InvalidFormat. No upper bound is enforced beyond int64 range.
func Parse(text string) (int64, error) {
	m := tokenRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, invalid(text)
	}

	value, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, invalid(text)
	}

	mult := multipliers[m[2]]
	if value > math.MaxInt64/mult {
		return 0, invalid(text)
	}
	return value * mult, nil
}

// Format renders seconds using the largest unit that divides them exactly.
func Format(seconds int64) string {
	if seconds <= 0 {
		return "0s"
	}
	for _, u := range []struct {
		suffix string
		size   int64
	}{
		{"w", Week}, {"d", Day}, {"h", Hour}, {"m", Minute},
	} {
		if seconds%u.size == 0 {
			return fmt.Sprintf("%d%s", seconds/u.size, u.suffix)
		}
	}
	return fmt.Sprintf("%ds", seconds)
}

func invalid(text string) error {
	return monerrors.Newf(monerrors.InvalidFormat, "invalid duration %q", text).
		WithSuggestion("use a whole number with an optional unit: w, d, h, m or s (e.g. 2h, 50m, 600)")
}
