// SPDX-License-Identifier: MIT

package core

import (
	"strings"

	"golang.org/x/text/cases"
)

// Key returns the identity key for an actor name.
//
// Identity is case-insensitive: leading and trailing whitespace is dropped,
// inner whitespace runs collapse to a single space, and the result is Unicode
// case-folded. "Kevin  Bacon", " kevin bacon" and "KEVIN BACON" share one key.
// Every lookup, deduplication and equality check in the module goes through Key.
//
// Complexity: O(len(name)).
func Key(name string) string {
	collapsed := collapseSpaces(name)
	if collapsed == "" {
		return ""
	}
	// A Caser carries state and must not be shared between goroutines.
	return cases.Fold().String(collapsed)
}

// Title normalizes a movie title. Titles are compared exactly after trimming.
func Title(title string) string {
	return strings.TrimSpace(title)
}

// SameActor reports whether a and b name the same actor under the Key policy.
func SameActor(a, b string) bool {
	ka := Key(a)
	return ka != "" && ka == Key(b)
}

// DisplayName is name with surrounding whitespace trimmed and inner runs
// collapsed, the form an actor's Name is stored in.
func DisplayName(name string) string {
	return collapseSpaces(name)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
