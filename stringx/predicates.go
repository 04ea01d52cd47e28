// SPDX-License-Identifier: MIT
// Package: tenjinx/stringx
//
// predicates.go — empty/blank string predicates.
//
// Blank means "empty or white space only" (unicode.IsSpace). Empty means
// len(s)==0. Callers pick the one that matches their contract: a palette of
// spaces is not empty, but it is blank.

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty reports whether s has zero length.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty reports whether s has at least one byte.
func IsNotEmpty(s string) bool {
	return len(s) != 0
}

// IsBlank reports whether s is empty or consists only of white space.
// Complexity: O(len(s)).
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// IsNotBlank reports whether s holds at least one non white space rune.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}
