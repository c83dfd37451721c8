// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic configuration model of a
// development track (its compartments, components, public parts and
// dependency references), along with the Loader interface implemented by
// concrete configuration formats.
//
// The `config.Model` is the only input the registry is populated from.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
