// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dcid

// ID is the structured identity of a development component. It is a
// comparable value type and can be used directly as a map key.
type ID struct {
	Vendor string
	Name   string
}

// New creates an ID from its parts without validation.
func New(vendor, name string) ID {
	return ID{Vendor: vendor, Name: name}
}

// IsZero reports whether both parts of the identifier are empty.
func (id ID) IsZero() bool {
	return id.Vendor == "" && id.Name == ""
}
