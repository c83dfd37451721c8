// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/specialistvlad/dcorder/internal/component"
	"github.com/specialistvlad/dcorder/internal/dcid"
)

// ErrNotRegistered is returned when an identifier does not name a component
// of the registry.
var ErrNotRegistered = errors.New("component not registered")

// Registry holds all components, compartments and the derived reverse index
// of a single development track.
//
// The maps are guarded by a mutex so lookups may run concurrently. The
// components themselves are not synchronized: mutating the graph while a
// closure or sort is running is undefined and must be prevented by the
// caller.
type Registry struct {
	mu sync.RWMutex

	components   map[dcid.ID]*component.Component
	compartments map[string]*component.Compartment
	// usedBy maps a component to the components whose dependencies resolve to it.
	usedBy map[dcid.ID]map[dcid.ID]*component.Component

	configuration component.Configuration
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		components:   make(map[dcid.ID]*component.Component),
		compartments: make(map[string]*component.Compartment),
		usedBy:       make(map[dcid.ID]map[dcid.ID]*component.Component),
	}
}

// GetOrCreate returns the component registered under id, creating and
// registering an empty one if none exists. kind is only applied on
// creation; an empty kind means component.KindUnknown.
func (r *Registry) GetOrCreate(id dcid.ID, kind component.Kind) *component.Component {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.components[id]; ok {
		return c
	}
	c := component.New(id, kind)
	r.components[id] = c
	return c
}

// Get looks up a component without side effects.
func (r *Registry) Get(id dcid.ID) (*component.Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.components[id]
	return c, ok
}

// Resolve returns the target of a dependency edge. A false result means the
// reference is dangling and must be treated as no dependency.
func (r *Registry) Resolve(dep component.Dependency) (*component.Component, bool) {
	return r.Get(dep.Target)
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.components)
}

// All returns every registered component ordered by identity.
func (r *Registry) All() []*component.Component {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*component.Component, 0, len(r.components))
	for _, c := range r.components {
		out = append(out, c)
	}
	component.SortByID(out)
	return out
}

// NeedingRebuild returns the components currently flagged for rebuilding,
// ordered by identity.
func (r *Registry) NeedingRebuild() []*component.Component {
	var out []*component.Component
	for _, c := range r.All() {
		if c.NeedsRebuild() {
			out = append(out, c)
		}
	}
	return out
}

// Remove deletes c from the registry and from its compartment. Edges of
// other components that point at c are left in place and resolve to nothing
// from now on. It returns false if c is not the registered instance.
func (r *Registry) Remove(c *component.Component) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	registered, ok := r.components[c.ID()]
	if !ok || registered != c {
		return false
	}
	delete(r.components, c.ID())
	if owner := c.Compartment(); owner != nil {
		owner.Remove(c)
	}

	// The index may only ever name registered components.
	delete(r.usedBy, c.ID())
	for _, users := range r.usedBy {
		delete(users, c.ID())
	}
	return true
}

// RebuildReverseIndex recomputes the "used by" relation from the forward
// edges of every registered component. It is idempotent and must be called
// after dependencies change and before UsedBy is trusted.
func (r *Registry) RebuildReverseIndex() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.usedBy = make(map[dcid.ID]map[dcid.ID]*component.Component, len(r.components))
	for _, user := range r.components {
		for _, dep := range user.Dependencies() {
			target, ok := r.components[dep.Target]
			if !ok {
				continue
			}
			users, ok := r.usedBy[target.ID()]
			if !ok {
				users = make(map[dcid.ID]*component.Component)
				r.usedBy[target.ID()] = users
			}
			users[user.ID()] = user
		}
	}
}

// UsedBy returns the components that depend on c according to the last
// RebuildReverseIndex, ordered by identity.
func (r *Registry) UsedBy(c *component.Component) []*component.Component {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := r.usedBy[c.ID()]
	out := make([]*component.Component, 0, len(users))
	for _, u := range users {
		out = append(out, u)
	}
	component.SortByID(out)
	return out
}

// Configuration returns the track metadata.
func (r *Registry) Configuration() component.Configuration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.configuration
}

// SetConfiguration replaces the track metadata.
func (r *Registry) SetConfiguration(cfg component.Configuration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.configuration = cfg
}

// GetOrCreateCompartment returns the compartment derived from vendor and
// softwareComponent, creating it in the given state if it does not exist.
// The state of an existing compartment is left untouched.
func (r *Registry) GetOrCreateCompartment(vendor, softwareComponent string, state component.State) *component.Compartment {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := component.CompartmentName(vendor, softwareComponent)
	if c, ok := r.compartments[name]; ok {
		return c
	}
	c := component.NewCompartment(vendor, softwareComponent, state)
	r.compartments[name] = c
	return c
}

// Compartment looks up a compartment by its derived name.
func (r *Registry) Compartment(name string) (*component.Compartment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.compartments[name]
	return c, ok
}

// Compartments returns every compartment ordered by name.
func (r *Registry) Compartments() []*component.Compartment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*component.Compartment, 0, len(r.compartments))
	for _, c := range r.compartments {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *component.Compartment) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}
