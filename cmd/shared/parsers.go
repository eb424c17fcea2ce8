package shared

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSeed parses a coin seed given as a decimal, 0x hex, 0o octal or 0b
// binary unsigned 64 bit number. Zero is rejected because it stands for a
// random seed.
func ParseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil || seed == 0 {
		return 0, parsingError(s)
	}

	return seed, nil
}

func parsingError(s string) error {
	return fmt.Errorf("parsing seed %q: must be a non-zero unsigned 64 bit number", s)
}
