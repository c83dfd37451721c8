// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package component

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/dcorder/internal/dcid"
)

// State tells whether the components of a compartment may be rebuilt.
type State int

const (
	// Source compartments hold buildable, mutable components.
	Source State = iota
	// Archive compartments hold prebuilt components supplied from outside.
	Archive
)

// String returns the configuration spelling of the state.
func (s State) String() string {
	switch s {
	case Source:
		return "source"
	case Archive:
		return "archive"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState parses "source" or "archive" (case-insensitive). An empty
// string means Source.
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "source":
		return Source, nil
	case "archive":
		return Archive, nil
	default:
		return Source, fmt.Errorf("unknown compartment state %q: must be 'source' or 'archive'", s)
	}
}

// CompartmentName derives the canonical compartment name from the vendor
// and the software component it represents, e.g. "sap.com_SAP_BUILDT_1".
func CompartmentName(vendor, softwareComponent string) string {
	return fmt.Sprintf("%s_%s_1", vendor, softwareComponent)
}

// Compartment owns a set of components and tags them with a State.
type Compartment struct {
	name string

	Vendor            string
	SoftwareComponent string
	Caption           string
	// Kind is a free-form classification carried from configuration.
	Kind string

	state State

	members map[dcid.ID]*Component
	// uses holds names of compartments this one declares a dependency on.
	uses map[string]struct{}
}

// NewCompartment creates an empty compartment whose name is derived from
// vendor and softwareComponent.
func NewCompartment(vendor, softwareComponent string, state State) *Compartment {
	return &Compartment{
		name:              CompartmentName(vendor, softwareComponent),
		Vendor:            vendor,
		SoftwareComponent: softwareComponent,
		state:             state,
		members:           make(map[dcid.ID]*Component),
		uses:              make(map[string]struct{}),
	}
}

// Name returns the derived compartment name.
func (c *Compartment) Name() string {
	return c.name
}

// State returns whether the compartment is Source or Archive.
func (c *Compartment) State() State {
	return c.state
}

// SetState switches the compartment between Source and Archive.
func (c *Compartment) SetState(s State) {
	c.state = s
}

// Add makes the compartment the owner of comp. If comp was owned by another
// compartment it is removed from there first.
func (c *Compartment) Add(comp *Component) {
	if comp.compartment == c {
		return
	}
	if comp.compartment != nil {
		comp.compartment.Remove(comp)
	}
	c.members[comp.id] = comp
	comp.compartment = c
}

// Remove drops comp from the compartment and clears its back-reference.
// Removing a component that is not a member does nothing.
func (c *Compartment) Remove(comp *Component) {
	if member, ok := c.members[comp.id]; !ok || member != comp {
		return
	}
	delete(c.members, comp.id)
	comp.compartment = nil
}

// Contains reports whether comp is a member.
func (c *Compartment) Contains(comp *Component) bool {
	member, ok := c.members[comp.id]
	return ok && member == comp
}

// Len returns the number of members.
func (c *Compartment) Len() int {
	return len(c.members)
}

// Components returns the members ordered by identity.
func (c *Compartment) Components() []*Component {
	out := make([]*Component, 0, len(c.members))
	for _, comp := range c.members {
		out = append(out, comp)
	}
	SortByID(out)
	return out
}

// Use declares a coarse dependency on another compartment by name. It is
// informational and not consulted by the component-level graph.
func (c *Compartment) Use(name string) {
	c.uses[name] = struct{}{}
}

// UsedCompartments returns the declared compartment dependencies, sorted.
func (c *Compartment) UsedCompartments() []string {
	names := make([]string, 0, len(c.uses))
	for name := range c.uses {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
