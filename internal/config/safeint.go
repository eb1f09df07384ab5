package config

import (
	"strconv"
	"strings"
)

// SafeInt parses raw as a base-10 integer. Blank or unparseable input yields def.
// Single underscores between digits are accepted as separators ("1_000").
func SafeInt(raw string, def int64) int64 {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, "_") {
		if !digitSeparatorsOK(s) {
			return def
		}
		s = strings.ReplaceAll(s, "_", "")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}

// digitSeparatorsOK reports whether every underscore in s sits between two digits.
func digitSeparatorsOK(s string) bool {
	s = strings.TrimLeft(s, "+-")
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
