// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package component

import (
	"fmt"
	"strings"
)

// PublicPartType tells consumers how a public part is meant to be used.
type PublicPartType int

const (
	// Compilation public parts provide classes to compile against.
	Compilation PublicPartType = iota
	// Assembly public parts are packaged into the consuming component.
	Assembly
)

// String returns the configuration spelling of the type.
func (t PublicPartType) String() string {
	switch t {
	case Compilation:
		return "compilation"
	case Assembly:
		return "assembly"
	default:
		return fmt.Sprintf("PublicPartType(%d)", int(t))
	}
}

// ParsePublicPartType parses the configuration spelling of a public part
// type. An empty string means Compilation.
func ParsePublicPartType(s string) (PublicPartType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compilation", "compile":
		return Compilation, nil
	case "assembly":
		return Assembly, nil
	default:
		return Compilation, fmt.Errorf("unknown public part type %q: must be 'compilation' or 'assembly'", s)
	}
}

// PublicPart is a named interface a component exposes to others. The name
// is unique within its component.
type PublicPart struct {
	Name    string
	Caption string
	Type    PublicPartType
}
