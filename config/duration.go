package config

import (
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ttlPattern matches compact lifetimes like "15m" or "30d".
var ttlPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// ParseTTL parses a token lifetime expressed in the compact form
// "<number><unit>" where unit is one of s, m, h, d. A bare number is
// interpreted as seconds. time.ParseDuration is not used because it has
// no day unit and refresh lifetimes are commonly written as "30d".
func ParseTTL(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.New("ttl is empty")
	}

	if m := ttlPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "parse ttl %q", s)
		}

		var unit time.Duration
		switch m[2] {
		case "s":
			unit = time.Second
		case "m":
			unit = time.Minute
		case "h":
			unit = time.Hour
		case "d":
			unit = 24 * time.Hour
		}

		return time.Duration(n) * unit, nil
	}

	// Fallback: plain seconds.
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid ttl %q", s)
	}
	if n < 0 {
		return 0, errors.Errorf("negative ttl %q", s)
	}

	return time.Duration(n) * time.Second, nil
}
