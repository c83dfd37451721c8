// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package resolver turns a set of changed components into a build plan.
//
// It has three steps, each usable on its own:
//
//  1. RebuildSet expands the changed components over the reverse ("used
//     by") edges of the registry into everything that must be rebuilt, and
//     flags those components.
//  2. BuildOrder restricts a set of components to those in Source
//     compartments, prunes edges to archived, dangling or out-of-set
//     targets, and sorts the rest with package dag.
//  3. Plan chains both for a list of changed identifiers.
//
// Precondition: the registry's reverse index must be current
// (registry.RebuildReverseIndex) before any of these are called. The
// resolver does not rebuild it, and a stale index silently produces an
// incomplete rebuild set.
package resolver
