// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/dcorder/internal/component"
	"github.com/specialistvlad/dcorder/internal/dcid"
)

// ErrUnknownComponent is matched by errors reporting changed identifiers
// that are not registered.
var ErrUnknownComponent = errors.New("unknown component")

// UnknownComponentsError lists every changed identifier that could not be
// resolved against the registry.
type UnknownComponentsError struct {
	IDs []dcid.ID
}

// Error implements the error interface.
func (e *UnknownComponentsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownComponent, strings.Join(dcid.Strings(e.IDs), ", "))
}

// Is makes errors.Is(err, ErrUnknownComponent) succeed.
func (e *UnknownComponentsError) Is(target error) bool {
	return target == ErrUnknownComponent
}

// CircularDependency is a pair of components that could not be ordered.
// OnCycle tells whether Dependency depends back on Component, or whether
// Component merely waits behind a cycle.
type CircularDependency struct {
	Component  *component.Component
	Dependency *component.Component
	OnCycle    bool
}

// String renders the pair as "component -> dependency".
func (cd CircularDependency) String() string {
	return fmt.Sprintf("%s -> %s", cd.Component, cd.Dependency)
}

// Order is the result of BuildOrder.
type Order struct {
	// Components lists the buildable components, dependencies first.
	Components []*component.Component
	// CircularDependencies explains every Source component missing from
	// Components.
	CircularDependencies []CircularDependency
	// Skipped lists input components that are not in a Source compartment
	// and therefore not part of the sortable working set.
	Skipped []*component.Component
}

// Excluded returns the distinct components that could not be ordered,
// sorted by identity.
func (o Order) Excluded() []*component.Component {
	seen := make(map[dcid.ID]bool)
	var out []*component.Component
	for _, cd := range o.CircularDependencies {
		if seen[cd.Component.ID()] {
			continue
		}
		seen[cd.Component.ID()] = true
		out = append(out, cd.Component)
	}
	component.SortByID(out)
	return out
}

// Plan is the complete answer for a set of changed components: what has to
// be rebuilt, in which order, and what cannot be built.
type Plan struct {
	// ID correlates log lines and reports of one resolution.
	ID string
	// Changed are the identifiers the plan was computed for.
	Changed []dcid.ID
	// RebuildSet is every component affected by the change, sorted by identity.
	RebuildSet []*component.Component

	Order
}
