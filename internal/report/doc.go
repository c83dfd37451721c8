// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package report renders plans and validation findings for people and for
// build tooling. Plans are first flattened into a Document of plain strings,
// which is then written as text, YAML or JSON.
package report
