package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidDays = errors.New("invalid day count")

// Checked in this order, each stripped as many times as it repeats.
var daySuffixes = []string{"days", "day", "d"}

// ParseDays reads a day count such as "69", "69d", "69day" or "69days".
// Surrounding whitespace is ignored.
func ParseDays(s string) (int, error) {
	num := s
	for _, suffix := range daySuffixes {
		for strings.HasSuffix(num, suffix) {
			num = strings.TrimSuffix(num, suffix)
		}
	}
	num = strings.TrimSpace(num)

	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDays, s)
	}
	return n, nil
}
