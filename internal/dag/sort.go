// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package dag

import (
	"container/heap"

	"github.com/specialistvlad/dcorder/internal/dcid"
)

// Sort computes a build order over the graph. Nodes whose dependencies can
// all be ordered appear in Result.Order, each after everything it depends
// on; among nodes that are ready at the same time the smallest identifier
// goes first. Every other node appears in Result.CircularDependencies and
// never in Order. Sort does not modify the graph and never fails.
func (g *Graph) Sort() Result {
	// pending counts, per unsorted node, the dependencies not yet emitted.
	pending := make(map[dcid.ID]int, len(g.nodes))
	ready := &idHeap{}
	for id, n := range g.nodes {
		pending[id] = len(n.deps)
		if len(n.deps) == 0 {
			*ready = append(*ready, id)
		}
	}
	heap.Init(ready)

	order := make([]dcid.ID, 0, len(g.nodes))
	for ready.Len() > 0 {
		id := heap.Pop(ready).(dcid.ID)
		order = append(order, id)
		delete(pending, id)

		for dependentID := range g.nodes[id].dependents {
			count, ok := pending[dependentID]
			if !ok {
				continue
			}
			count--
			pending[dependentID] = count
			if count == 0 {
				heap.Push(ready, dependentID)
			}
		}
	}

	if len(pending) == 0 {
		return Result{Order: order}
	}

	// Whatever is still pending waits, directly or not, on a cycle.
	stuck := sortedKeys(pending)
	remaining := make(map[dcid.ID][]dcid.ID, len(stuck))
	for _, id := range stuck {
		var deps []dcid.ID
		for _, depID := range sortedKeys(g.nodes[id].deps) {
			if _, ok := pending[depID]; ok {
				deps = append(deps, depID)
			}
		}
		remaining[id] = deps
	}

	return Result{
		Order:                order,
		CircularDependencies: circularDependencies(stuck, remaining),
	}
}

// circularDependencies explains why each of the stuck nodes could not be
// ordered. stuck is sorted; remaining holds, per stuck node, its sorted
// dependencies among the stuck nodes. An edge is on a cycle when its
// dependency reaches back to the node, which holds exactly when both ends
// share a strongly connected component.
func circularDependencies(stuck []dcid.ID, remaining map[dcid.ID][]dcid.ID) []CircularDependency {
	comp := stronglyConnected(stuck, remaining)

	var out []CircularDependency
	for _, root := range stuck {
		var onCycle, blocked []CircularDependency
		for _, dep := range remaining[root] {
			cd := CircularDependency{Component: root, Dependency: dep}
			if dep == root || comp[dep] == comp[root] {
				cd.OnCycle = true
				onCycle = append(onCycle, cd)
				continue
			}
			blocked = append(blocked, cd)
		}

		if len(onCycle) > 0 {
			out = append(out, onCycle...)
			continue
		}
		out = append(out, blocked...)
	}
	return out
}

// stronglyConnected labels every node with the strongly connected component
// it belongs to, using Tarjan's algorithm with an explicit call stack so that
// long chains do not grow the goroutine stack. Runs in O(V+E).
func stronglyConnected(nodes []dcid.ID, edges map[dcid.ID][]dcid.ID) map[dcid.ID]int {
	type frame struct {
		id   dcid.ID
		next int
	}

	index := make(map[dcid.ID]int, len(nodes))
	low := make(map[dcid.ID]int, len(nodes))
	onStack := make(map[dcid.ID]bool, len(nodes))
	comp := make(map[dcid.ID]int, len(nodes))
	var stack []dcid.ID
	counter, components := 0, 0

	visit := func(id dcid.ID) {
		index[id], low[id] = counter, counter
		counter++
		stack = append(stack, id)
		onStack[id] = true
	}

	for _, start := range nodes {
		if _, seen := index[start]; seen {
			continue
		}
		visit(start)
		calls := []frame{{id: start}}

		for len(calls) > 0 {
			top := &calls[len(calls)-1]
			deps := edges[top.id]
			if top.next < len(deps) {
				dep := deps[top.next]
				top.next++
				if _, seen := index[dep]; !seen {
					visit(dep)
					calls = append(calls, frame{id: dep})
				} else if onStack[dep] {
					low[top.id] = min(low[top.id], index[dep])
				}
				continue
			}

			done := top.id
			calls = calls[:len(calls)-1]
			if low[done] == index[done] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = components
					if w == done {
						break
					}
				}
				components++
			}
			if len(calls) > 0 {
				parent := calls[len(calls)-1].id
				low[parent] = min(low[parent], low[done])
			}
		}
	}
	return comp
}

// idHeap is a min-heap of identifiers in dcid order.
type idHeap []dcid.ID

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return dcid.Less(h[i], h[j]) }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *idHeap) Push(x any) {
	*h = append(*h, x.(dcid.ID))
}

func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
