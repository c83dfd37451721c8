// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dcid

import (
	"cmp"
	"slices"
)

// String serializes the ID into its canonical `vendor:name` form.
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return id.Vendor + separator + id.Name
}

// Compare orders identifiers by vendor, then by name. It returns -1, 0 or +1.
func Compare(a, b ID) int {
	if c := cmp.Compare(a.Vendor, b.Vendor); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// Less reports whether a sorts before b.
func Less(a, b ID) bool {
	return Compare(a, b) < 0
}

// Sort orders ids in place.
func Sort(ids []ID) {
	slices.SortFunc(ids, Compare)
}

// Strings returns the canonical representation of every id, in order.
func Strings(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
