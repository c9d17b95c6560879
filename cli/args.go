package cli

import (
	"strconv"
)

// parseItemArgs reads the item arguments as integers when every one of
// them is an integer, and as strings otherwise.
func parseItemArgs(args []string) (ints []int, strs []string) {
	ints = make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, append([]string(nil), args...)
		}
		ints = append(ints, n)
	}
	return ints, nil
}
