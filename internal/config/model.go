package config

// Format identifies a supported configuration file format.
type Format string

const (
	FormatEnv  Format = "env"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// Entry is a single flattened configuration pair. Keys of nested structures
// are dot-joined paths (e.g. "database.pool.size"); values are the display
// string of the scalar leaf.
type Entry struct {
	Key   string
	Value string
}

// Document is the unified, format-agnostic representation of one parsed
// configuration file. Entries appear in source order, which downstream
// consumers must preserve.
type Document struct {
	Path    string
	Format  Format
	Entries []Entry
}
