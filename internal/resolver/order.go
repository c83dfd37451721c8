// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package resolver

import (
	"fmt"

	"github.com/specialistvlad/dcorder/internal/component"
	"github.com/specialistvlad/dcorder/internal/dag"
	"github.com/specialistvlad/dcorder/internal/dcid"
)

// BuildOrder orders the Source components among components so that every
// component comes after the components it uses.
//
// An edge only counts when its target is registered, lives in a Source
// compartment and is itself part of the working set. Archived targets are
// prebuilt, dangling ones do not exist, and Source targets outside the set
// are not being rebuilt; none of them holds a component back.
func (r *Resolver) BuildOrder(components []*component.Component) (Order, error) {
	working := make(map[dcid.ID]*component.Component, len(components))
	var skipped []*component.Component

	for _, c := range components {
		if c == nil {
			continue
		}
		if _, dup := working[c.ID()]; dup {
			continue
		}
		if !c.IsSource() {
			skipped = append(skipped, c)
			continue
		}
		working[c.ID()] = c
	}

	g := dag.New()
	for id := range working {
		g.AddNode(id)
	}
	for id, c := range working {
		for _, target := range r.usedSources(c) {
			if _, ok := working[target.ID()]; !ok {
				continue
			}
			if err := g.AddDependency(id, target.ID()); err != nil {
				return Order{}, fmt.Errorf("failed to link %s to %s: %w", id, target.ID(), err)
			}
		}
	}

	sorted := g.Sort()

	order := Order{
		Components: make([]*component.Component, 0, len(sorted.Order)),
		Skipped:    dedupe(skipped),
	}
	for _, id := range sorted.Order {
		order.Components = append(order.Components, working[id])
	}
	for _, cd := range sorted.CircularDependencies {
		order.CircularDependencies = append(order.CircularDependencies, CircularDependency{
			Component:  working[cd.Component],
			Dependency: working[cd.Dependency],
			OnCycle:    cd.OnCycle,
		})
	}
	return order, nil
}

// usedSources returns the registered Source components c has a forward edge
// to. Dangling and archived targets are dropped.
func (r *Resolver) usedSources(c *component.Component) []*component.Component {
	seen := make(map[dcid.ID]bool)
	var out []*component.Component
	for _, dep := range c.Dependencies() {
		target, ok := r.registry.Resolve(dep)
		if !ok || !target.IsSource() || seen[target.ID()] {
			continue
		}
		seen[target.ID()] = true
		out = append(out, target)
	}
	return out
}

func dedupe(components []*component.Component) []*component.Component {
	seen := make(map[dcid.ID]bool, len(components))
	out := components[:0]
	for _, c := range components {
		if seen[c.ID()] {
			continue
		}
		seen[c.ID()] = true
		out = append(out, c)
	}
	component.SortByID(out)
	return out
}
