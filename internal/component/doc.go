// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package component provides the data model of the build graph: development
// components, the public parts they expose, the dependency references they
// declare, and the compartments that own them.
//
// # Core Concepts
//
//   - Component: a buildable unit identified by (vendor, name). It declares
//     forward edges ("uses") as Dependency values. Reverse edges ("used by")
//     are derived data and are owned by the registry, not by the component.
//
//   - PublicPart: a named interface a component offers to others. A
//     Dependency names the public part it consumes; the name is not
//     validated against the target here.
//
//   - Compartment: a grouping of components in either Source state
//     (buildable) or Archive state (prebuilt). A component belongs to at most
//     one compartment at a time and moving it clears the previous membership.
//
//   - Configuration: descriptive metadata of the development track the
//     compartments belong to, including its build variant.
//
// Nothing in this package is safe for concurrent mutation. Callers populate
// the model on one goroutine and only then hand it to the resolver.
package component
