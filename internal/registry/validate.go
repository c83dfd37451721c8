// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"fmt"

	"github.com/specialistvlad/dcorder/internal/component"
	"github.com/specialistvlad/dcorder/internal/dcid"
)

// IssueKind classifies a configuration finding reported by Validate.
type IssueKind string

const (
	// DanglingReference is a dependency on a component that is not registered.
	DanglingReference IssueKind = "dangling-reference"
	// UnknownPublicPart is a dependency on a public part its target does not expose.
	UnknownPublicPart IssueKind = "unknown-public-part"
	// Unowned is a registered component that belongs to no compartment.
	Unowned IssueKind = "unowned-component"
)

// Issue is a single finding about the shape of the registered graph. Issues
// are informational; none of them prevents resolution.
type Issue struct {
	Kind       IssueKind
	Component  dcid.ID
	Dependency component.Dependency
}

// String renders the issue for humans.
func (i Issue) String() string {
	switch i.Kind {
	case DanglingReference:
		return fmt.Sprintf("%s: uses %s which is not registered", i.Component, i.Dependency.Target)
	case UnknownPublicPart:
		return fmt.Sprintf("%s: uses public part %q of %s which does not expose it", i.Component, i.Dependency.PublicPart, i.Dependency.Target)
	case Unowned:
		return fmt.Sprintf("%s: not owned by any compartment", i.Component)
	default:
		return fmt.Sprintf("%s: %s", i.Component, i.Kind)
	}
}

// Validate inspects every registered component and reports dangling
// references, references to public parts the target does not expose, and
// components without a compartment. Results are ordered by component.
func (r *Registry) Validate() []Issue {
	var issues []Issue
	for _, c := range r.All() {
		if c.Compartment() == nil {
			issues = append(issues, Issue{Kind: Unowned, Component: c.ID()})
		}
		for _, dep := range c.Dependencies() {
			target, ok := r.Resolve(dep)
			if !ok {
				issues = append(issues, Issue{Kind: DanglingReference, Component: c.ID(), Dependency: dep})
				continue
			}
			if dep.PublicPart == "" {
				continue
			}
			if _, ok := target.PublicPart(dep.PublicPart); !ok {
				issues = append(issues, Issue{Kind: UnknownPublicPart, Component: c.ID(), Dependency: dep})
			}
		}
	}
	return issues
}
