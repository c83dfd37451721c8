// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package resolver

import (
	"github.com/specialistvlad/dcorder/internal/component"
	"github.com/specialistvlad/dcorder/internal/dcid"
)

// RebuildSet returns the seeds together with every component that
// transitively uses one of them, sorted by identity, and flags each of them
// as needing a rebuild. Seeds that are not the registered instance of their
// identity are ignored. Running it again on its own result yields the same
// set.
func (r *Resolver) RebuildSet(seeds []*component.Component) []*component.Component {
	visited := make(map[dcid.ID]bool)
	var result []*component.Component
	var stack []*component.Component

	for _, seed := range seeds {
		if seed == nil || visited[seed.ID()] {
			continue
		}
		if registered, ok := r.registry.Get(seed.ID()); !ok || registered != seed {
			continue
		}
		visited[seed.ID()] = true
		stack = append(stack, seed)

		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			result = append(result, current)

			for _, user := range r.registry.UsedBy(current) {
				if visited[user.ID()] {
					continue
				}
				visited[user.ID()] = true
				stack = append(stack, user)
			}
		}
	}

	for _, c := range result {
		c.SetNeedsRebuild(true)
	}
	component.SortByID(result)
	return result
}
