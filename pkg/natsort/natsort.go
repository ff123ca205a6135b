// Package natsort implements a locale-independent, numeric-aware string
// ordering: runs of decimal digits compare by their numeric value, everything
// else byte by byte. Under this ordering "GMT+2" sorts before "GMT+10".
package natsort

import (
	"sort"
	"strings"
)

// Less reports whether a orders before b under natural sort.
func Less(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			digitsA, restA := takeDigits(a)
			digitsB, restB := takeDigits(b)
			less, equal := compareDigits(digitsA, digitsB)
			if !equal {
				return less
			}
			a, b = restA, restB
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

// Strings sorts list in place under natural order. The sort is stable so
// inputs that compare equal (for example "01" and "1") keep their relative
// positions.
func Strings(list []string) {
	sort.SliceStable(list, func(i, j int) bool {
		return Less(list[i], list[j])
	})
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func takeDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// compareDigits compares two digit runs by numeric value. Leading zeros are
// insignificant, so a longer trimmed run is always the larger number.
func compareDigits(a, b string) (less, equal bool) {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) < len(b), false
	}
	if a == b {
		return false, true
	}
	return a < b, false
}
