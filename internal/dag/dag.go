// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dag

import (
	"fmt"

	"github.com/specialistvlad/dcorder/internal/dcid"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[dcid.ID]*node),
	}
}

// AddNode adds a node with the given ID to the graph. If a node with the
// same ID already exists, the function does nothing.
func (g *Graph) AddNode(id dcid.ID) {
	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{
		id:         id,
		deps:       make(map[dcid.ID]*node),
		dependents: make(map[dcid.ID]*node),
	}
}

// AddDependency records that dependent must be built after dependency. Both
// nodes must exist. A node may depend on itself; such a self-reference can
// never be ordered and is reported by Sort.
func (g *Graph) AddDependency(dependent, dependency dcid.ID) error {
	from, ok := g.nodes[dependent]
	if !ok {
		return fmt.Errorf("dependent node not found: %s", dependent)
	}
	to, ok := g.nodes[dependency]
	if !ok {
		return fmt.Errorf("dependency node not found: %s", dependency)
	}

	from.deps[dependency] = to
	to.dependents[dependent] = from
	return nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id dcid.ID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Dependencies returns the IDs the given node depends on, sorted.
func (g *Graph) Dependencies(id dcid.ID) ([]dcid.ID, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return sortedKeys(n.deps), nil
}

// Dependents returns the IDs of the nodes depending on the given node, sorted.
func (g *Graph) Dependents(id dcid.ID) ([]dcid.ID, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return sortedKeys(n.dependents), nil
}

// IDs returns all node IDs, sorted.
func (g *Graph) IDs() []dcid.ID {
	return sortedKeys(g.nodes)
}

func sortedKeys[V any](m map[dcid.ID]V) []dcid.ID {
	ids := make([]dcid.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	dcid.Sort(ids)
	return ids
}
