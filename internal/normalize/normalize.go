package normalize

import (
	"strconv"
	"strings"
)

// CleanString trims surrounding whitespace and returns nil when the result is
// empty, so downstream absence checks never see a blank-but-present value.
func CleanString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ParseNumber coerces a cell's text to a number. Decimal commas are accepted
// ("5,8" parses as 5.8) since exports from Chilean systems use them.
// Returns nil when the input is blank or not a number; never 0 by default.
func ParseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
