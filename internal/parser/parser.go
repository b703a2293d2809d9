package parser

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"github.com/vk/explainmyconfig/internal/config"
	"github.com/vk/explainmyconfig/internal/ctxlog"
)

// loader translates one file's raw bytes into flattened entries.
type loader func(path string, src []byte) ([]config.Entry, error)

// loaders maps each supported format to its loader implementation.
var loaders = map[config.Format]loader{
	config.FormatEnv:  parseEnv,
	config.FormatJSON: parseJSON,
	config.FormatYAML: parseYAML,
	config.FormatHCL:  parseHCL,
}

// extensions maps lower-cased file extensions to their format.
var extensions = map[string]config.Format{
	".env":  config.FormatEnv,
	".json": config.FormatJSON,
	".yaml": config.FormatYAML,
	".yml":  config.FormatYAML,
	".hcl":  config.FormatHCL,
}

// SupportedExtensions returns all recognized file extensions, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Detect resolves a file path to its configuration format based on the
// extension. Matching is case-insensitive.
func Detect(path string) (config.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensions[ext]
	if !ok {
		return "", &config.UnsupportedFormatError{Path: path, Supported: SupportedExtensions()}
	}
	return format, nil
}

// ParseFile reads and parses one configuration file into a Document. The
// returned entries preserve the source order of the file.
func ParseFile(ctx context.Context, path string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)

	format, err := Detect(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration format detected.", "path", path, "format", format)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &config.FileError{Path: path, Err: err}
	}

	entries, err := loaders[format](path, src)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration parsed.", "path", path, "entries", len(entries))

	return &config.Document{Path: path, Format: format, Entries: entries}, nil
}

// joinKey appends a child segment to a dot-joined key path.
func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// scalarString renders a decoded scalar leaf as its display string. Nulls
// render as the empty string.
func scalarString(v any) string {
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}
