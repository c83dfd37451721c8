// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, decoding of
// `configuration` and `compartment` blocks, and translation into the
// format-agnostic config.Model.
package hcl
