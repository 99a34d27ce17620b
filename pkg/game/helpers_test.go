package game

import (
	"strconv"
	"strings"
)

func intList(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}

	return strings.Join(s, ",")
}
