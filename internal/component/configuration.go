// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package component

// BuildVariant names the variant components are built with and carries the
// options handed to the build tool.
type BuildVariant struct {
	Name    string
	Options map[string]string
}

// Configuration describes the development track the compartments of a
// registry belong to.
type Configuration struct {
	Name        string
	Caption     string
	Description string

	BuildVariant BuildVariant
}
