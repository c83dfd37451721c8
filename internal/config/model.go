// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

// Model is the unified, format-agnostic representation of a development
// track: descriptive metadata plus every compartment with its components.
// Enumerations (states, kinds, public part types) are kept as the strings
// found in the source; the registry interprets them.
type Model struct {
	Configuration *Configuration
	Compartments  []*Compartment
}

// Configuration is the descriptive metadata of the track.
type Configuration struct {
	Name         string
	Caption      string
	Description  string
	BuildVariant *BuildVariant
}

// BuildVariant is the variant components are built with.
type BuildVariant struct {
	Name    string
	Options map[string]string
}

// Compartment is the format-agnostic representation of a `compartment` block.
type Compartment struct {
	Vendor            string
	SoftwareComponent string
	Caption           string
	Kind              string
	State             string
	Uses              []string
	Components        []*Component

	// FilePath is the file the compartment was declared in, for error messages.
	FilePath string
}

// Component is the format-agnostic representation of a `component` block.
type Component struct {
	Vendor       string
	Name         string
	Type         string
	Caption      string
	Description  string
	PublicParts  []*PublicPart
	Dependencies []*Dependency
}

// PublicPart is an interface exposed by a component.
type PublicPart struct {
	Name    string
	Caption string
	Type    string
}

// Dependency is a reference from a component to a public part of another.
// Target is the canonical `vendor:name` identifier of the used component.
type Dependency struct {
	Target     string
	PublicPart string
	BuildTime  bool
	RunTime    bool
	DeployTime bool
}

// ComponentCount returns the number of component declarations in the model.
func (m *Model) ComponentCount() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, c := range m.Compartments {
		n += len(c.Components)
	}
	return n
}
