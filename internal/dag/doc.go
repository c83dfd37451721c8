// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package dag orders a dependency graph of components for building and
// isolates the parts of it that cannot be ordered.
//
// The Graph holds only the edges that matter for ordering: callers add the
// components of one working set and the dependencies among them, after
// pruning dangling, archived and out-of-set targets.
//
// # Sorting
//
// Sort removes ready nodes (no unsorted dependencies left) in passes, in the
// style of Kahn's algorithm. Within a pass nodes are visited in identifier
// order, so the result is deterministic. When a pass emits nothing while
// nodes remain, every remaining node is blocked by a cycle; instead of
// failing, Sort reports each of them as a CircularDependency and returns the
// order of everything else.
//
// All walks use explicit stacks and visited sets, so deep or heavily cyclic
// graphs cannot exhaust the goroutine stack.
package dag
