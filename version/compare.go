package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// parse reads "v1.2.3", "1.2" or "1.2.3-rc.1" into its numeric parts.
// Pre-release and build suffixes are ignored.
func parse(s string) ([3]int, error) {
	var parts [3]int

	core, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(s), "v"), "-")
	core, _, _ = strings.Cut(core, "+")

	fields := strings.Split(core, ".")
	if len(fields) == 0 || len(fields) > 3 || lo.Contains(fields, "") {
		return parts, fmt.Errorf("invalid version %q", s)
	}

	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return parts, fmt.Errorf("invalid version %q", s)
		}
		parts[i] = n
	}

	return parts, nil
}

// Compare returns 1 when a is newer than b, -1 when older and 0 when equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}

	return 0, nil
}
