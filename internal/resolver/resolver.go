// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package resolver

import (
	"context"

	"github.com/google/uuid"
	"github.com/specialistvlad/dcorder/internal/component"
	"github.com/specialistvlad/dcorder/internal/ctxlog"
	"github.com/specialistvlad/dcorder/internal/dcid"
	"github.com/specialistvlad/dcorder/internal/registry"
)

// Resolver computes rebuild sets and build orders over one registry.
type Resolver struct {
	registry *registry.Registry
}

// New creates a resolver for reg.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{registry: reg}
}

// Plan resolves the changed identifiers, expands them into the rebuild set
// and orders it. Unknown identifiers are a caller error: Plan reports all of
// them in an *UnknownComponentsError and computes nothing.
func (r *Resolver) Plan(ctx context.Context, changed []dcid.ID) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	planID := uuid.NewString()
	logger = logger.With("plan_id", planID)

	seeds, err := r.Lookup(changed)
	if err != nil {
		logger.Warn("Changed components are not registered.", "error", err)
		return nil, err
	}
	logger.Debug("Resolved changed components.", "count", len(seeds))

	rebuild := r.RebuildSet(seeds)
	logger.Debug("Computed rebuild set.", "seeds", len(seeds), "affected", len(rebuild))

	order, err := r.BuildOrder(rebuild)
	if err != nil {
		return nil, err
	}
	if len(order.CircularDependencies) > 0 {
		logger.Warn("Circular dependencies detected, components excluded from build.",
			"excluded", len(order.Excluded()),
			"pairs", len(order.CircularDependencies),
		)
	}
	logger.Debug("Computed build order.",
		"ordered", len(order.Components),
		"skipped", len(order.Skipped),
	)

	return &Plan{
		ID:         planID,
		Changed:    component.IDs(seeds),
		RebuildSet: rebuild,
		Order:      order,
	}, nil
}

// SourceComponents returns every registered component in a Source
// compartment, sorted by identity. It is the seed for rebuilding a whole
// track.
func (r *Resolver) SourceComponents() []*component.Component {
	var out []*component.Component
	for _, c := range r.registry.All() {
		if c.IsSource() {
			out = append(out, c)
		}
	}
	return out
}

// Lookup maps identifiers to registered components, preserving order and
// dropping duplicates. All unknown identifiers are reported together in an
// *UnknownComponentsError.
func (r *Resolver) Lookup(ids []dcid.ID) ([]*component.Component, error) {
	seen := make(map[dcid.ID]bool, len(ids))
	var (
		out     []*component.Component
		unknown []dcid.ID
	)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		c, ok := r.registry.Get(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		out = append(out, c)
	}
	if len(unknown) > 0 {
		return nil, &UnknownComponentsError{IDs: unknown}
	}
	return out, nil
}
