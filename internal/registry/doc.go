// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package registry provides the component store of a development track.
//
// The Registry maps (vendor, name) to exactly one *component.Component.
// Components are created through GetOrCreate, which is idempotent: asking
// for an existing key returns the existing instance and never overwrites its
// kind. The registry also keeps the compartments and the track metadata.
//
// # Reverse Index
//
// Components only declare forward ("uses") edges. The registry derives the
// reverse ("used by") edges in a full pass, RebuildReverseIndex. The index
// is NOT kept current by any other operation: whoever adds or changes
// dependencies must rebuild it before the rebuild closure or the build order
// are computed. A stale index is a caller bug that yields incomplete
// results, not an error.
//
// # Dangling References
//
// A dependency whose target was never registered resolves to nothing. This
// is not an error; such edges are simply ignored by the graph algorithms.
// Validate reports them for diagnostics.
package registry
