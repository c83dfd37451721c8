// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dag

import "github.com/specialistvlad/dcorder/internal/dcid"

// Graph is a set of nodes and the dependencies among them. It is not safe
// for concurrent use; build it, then sort it.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by their identity.
	nodes map[dcid.ID]*node
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API.
type node struct {
	// id is the unique identifier for the node.
	id dcid.ID
	// deps holds the nodes this node depends on (built before it).
	deps map[dcid.ID]*node
	// dependents holds the nodes that depend on this node.
	dependents map[dcid.ID]*node
}

// CircularDependency is a pair of components that cannot be ordered.
//
// OnCycle is true when Dependency transitively depends back on Component
// (including Component == Dependency for a self-reference). It is false when
// Component is not on a cycle itself but waits on a Dependency that never
// becomes ready because of one.
type CircularDependency struct {
	Component  dcid.ID
	Dependency dcid.ID
	OnCycle    bool
}

// Result is the outcome of Sort.
type Result struct {
	// Order lists the sortable nodes, every dependency before its dependents.
	Order []dcid.ID
	// CircularDependencies lists, for every node missing from Order, the
	// dependencies that kept it from being ordered.
	CircularDependencies []CircularDependency
}

// Excluded returns the distinct components named as the first element of a
// circular dependency, in identifier order.
func (r Result) Excluded() []dcid.ID {
	seen := make(map[dcid.ID]struct{})
	var out []dcid.ID
	for _, cd := range r.CircularDependencies {
		if _, ok := seen[cd.Component]; ok {
			continue
		}
		seen[cd.Component] = struct{}{}
		out = append(out, cd.Component)
	}
	dcid.Sort(out)
	return out
}

// HasCycles reports whether any node could not be ordered.
func (r Result) HasCycles() bool {
	return len(r.CircularDependencies) > 0
}
