// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package component

import (
	"slices"
	"strings"

	"github.com/specialistvlad/dcorder/internal/dcid"
)

// Component is a single vertex of the build graph: a development component
// with its exposed public parts and declared dependencies.
//
// The identity is immutable. Two components are the same entity iff their
// IDs match; a registry never holds two components with the same ID.
type Component struct {
	// id is the unique (vendor, name) identity.
	id dcid.ID
	// kind is the categorical type; set once on creation.
	kind Kind

	Caption     string
	Description string

	// publicParts is keyed by public part name.
	publicParts map[string]PublicPart
	// dependencies is the set of forward edges declared by this component.
	dependencies map[Dependency]struct{}

	// needsRebuild is set for changed components and everything affected by them.
	needsRebuild bool

	// compartment is the owning compartment, nil when unowned.
	compartment *Compartment
}

// New creates a standalone component. An empty kind becomes KindUnknown.
// Components are normally obtained from a registry rather than created
// directly.
func New(id dcid.ID, kind Kind) *Component {
	if strings.TrimSpace(string(kind)) == "" {
		kind = KindUnknown
	}
	return &Component{
		id:           id,
		kind:         kind,
		publicParts:  make(map[string]PublicPart),
		dependencies: make(map[Dependency]struct{}),
	}
}

// ID returns the identity of the component.
func (c *Component) ID() dcid.ID {
	return c.id
}

// Vendor is shorthand for ID().Vendor.
func (c *Component) Vendor() string {
	return c.id.Vendor
}

// Name is shorthand for ID().Name.
func (c *Component) Name() string {
	return c.id.Name
}

// String returns the canonical identifier.
func (c *Component) String() string {
	return c.id.String()
}

// Kind returns the categorical type of the component.
func (c *Component) Kind() Kind {
	return c.kind
}

// AddPublicPart registers a public part. A public part with the same name
// is replaced.
func (c *Component) AddPublicPart(pp PublicPart) {
	c.publicParts[pp.Name] = pp
}

// PublicPart looks up an exposed public part by name.
func (c *Component) PublicPart(name string) (PublicPart, bool) {
	pp, ok := c.publicParts[name]
	return pp, ok
}

// PublicParts returns the exposed public parts ordered by name.
func (c *Component) PublicParts() []PublicPart {
	parts := make([]PublicPart, 0, len(c.publicParts))
	for _, pp := range c.publicParts {
		parts = append(parts, pp)
	}
	slices.SortFunc(parts, func(a, b PublicPart) int {
		return strings.Compare(a.Name, b.Name)
	})
	return parts
}

// AddDependency declares a forward edge. Adding an identical descriptor
// twice has no effect. The reverse index of a registry holding this
// component is stale until it is rebuilt.
func (c *Component) AddDependency(dep Dependency) {
	c.dependencies[dep] = struct{}{}
}

// RemoveDependency drops a previously declared forward edge.
func (c *Component) RemoveDependency(dep Dependency) {
	delete(c.dependencies, dep)
}

// Dependencies returns the declared forward edges in a stable order.
func (c *Component) Dependencies() []Dependency {
	deps := make([]Dependency, 0, len(c.dependencies))
	for dep := range c.dependencies {
		deps = append(deps, dep)
	}
	slices.SortFunc(deps, compareDependencies)
	return deps
}

// DependsOn reports whether any declared edge points at target.
func (c *Component) DependsOn(target dcid.ID) bool {
	for dep := range c.dependencies {
		if dep.Target == target {
			return true
		}
	}
	return false
}

// NeedsRebuild reports whether the component is flagged for rebuilding.
func (c *Component) NeedsRebuild() bool {
	return c.needsRebuild
}

// SetNeedsRebuild sets or clears the rebuild flag.
func (c *Component) SetNeedsRebuild(v bool) {
	c.needsRebuild = v
}

// Compartment returns the owning compartment, or nil.
func (c *Component) Compartment() *Compartment {
	return c.compartment
}

// IsSource reports whether the component is owned by a compartment in
// Source state. Unowned components are never buildable.
func (c *Component) IsSource() bool {
	return c.compartment != nil && c.compartment.State() == Source
}

// Compare orders components by identity.
func Compare(a, b *Component) int {
	return dcid.Compare(a.id, b.id)
}

// SortByID orders components in place by identity.
func SortByID(components []*Component) {
	slices.SortFunc(components, Compare)
}

// IDs returns the identities of components, in the given order.
func IDs(components []*Component) []dcid.ID {
	ids := make([]dcid.ID, len(components))
	for i, c := range components {
		ids[i] = c.id
	}
	return ids
}
