package handlers

import "strconv"

// string -> int with a fallback when it doesn't parse
func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func strPtr(s string) *string { return &s }
