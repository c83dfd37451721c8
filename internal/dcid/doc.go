// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

/*
Package dcid provides the identity of a development component: the pair
(vendor, name), compared case-sensitively.

The canonical text form is `vendor:name`, e.g. `sap.com:tc/bi/core`. The
vendor may not contain a colon; everything after the first colon is the
name, so component names with slashes are kept intact.

This package centralizes parsing, formatting and ordering of identifiers.
The ordering (vendor first, then name) is the tie-break used everywhere a
deterministic sequence of components is produced.
*/
package dcid
