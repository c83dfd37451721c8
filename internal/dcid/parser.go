// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dcid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidID is returned when a raw identifier cannot be parsed.
var ErrInvalidID = errors.New("invalid component identifier")

const separator = ":"

// Parse creates an ID from its canonical `vendor:name` representation.
func Parse(rawID string) (ID, error) {
	if rawID == "" {
		return ID{}, fmt.Errorf("%w: identifier cannot be empty", ErrInvalidID)
	}

	vendor, name, found := strings.Cut(rawID, separator)
	if !found {
		return ID{}, fmt.Errorf("%w: %q is missing the %q separator", ErrInvalidID, rawID, separator)
	}
	if strings.TrimSpace(vendor) == "" {
		return ID{}, fmt.Errorf("%w: %q has an empty vendor", ErrInvalidID, rawID)
	}
	if strings.TrimSpace(name) == "" {
		return ID{}, fmt.Errorf("%w: %q has an empty name", ErrInvalidID, rawID)
	}

	return New(vendor, name), nil
}

// ParseAll parses every raw identifier, skipping blank entries. The first
// malformed entry aborts parsing.
func ParseAll(rawIDs []string) ([]ID, error) {
	ids := make([]ID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests
// and static tables.
func MustParse(rawID string) ID {
	id, err := Parse(rawID)
	if err != nil {
		panic(err)
	}
	return id
}
