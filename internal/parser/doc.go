// Package parser is the loading layer of the application. It detects a
// configuration file's format from its extension, reads the file, and
// translates it into the format-agnostic config.Document model, flattening
// nested structures into dot-joined key paths in source order.
package parser
