// Package config defines the format-agnostic configuration model for the
// application, along with the error taxonomy shared by every loader.
//
// The `config.Document` is the single source of truth for the explain and
// render packages. Concrete loaders for the individual file formats live in
// the parser package.
package config
