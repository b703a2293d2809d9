package parser

import (
	"errors"
	"fmt"

	"github.com/vk/explainmyconfig/internal/config"
	"gopkg.in/yaml.v3"
)

// parseYAML flattens a YAML document into dot-joined entries. It walks the
// yaml.Node tree rather than unmarshalling into a map: node Content slices
// keep mapping keys in source order.
func parseYAML(path string, src []byte) ([]config.Entry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, &config.ParseError{Path: path, Err: fmt.Errorf("invalid YAML: %w", err)}
	}

	// An empty document decodes to a zero node.
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, &config.ParseError{Path: path, Line: doc.Line, Err: errors.New("document root must be a mapping")}
	}

	return flattenYAMLMapping(path, doc, "")
}

func flattenYAMLMapping(path string, node *yaml.Node, prefix string) ([]config.Entry, error) {
	var entries []config.Entry
	// Content holds alternating key and value nodes.
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		sub, err := flattenYAMLValue(path, valNode, joinKey(prefix, keyNode.Value))
		if err != nil {
			return nil, err
		}
		entries = append(entries, sub...)
	}
	return entries, nil
}

func flattenYAMLValue(path string, node *yaml.Node, key string) ([]config.Entry, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return flattenYAMLMapping(path, node, key)
	case yaml.SequenceNode:
		var entries []config.Entry
		for idx, item := range node.Content {
			sub, err := flattenYAMLValue(path, item, fmt.Sprintf("%s.%d", key, idx))
			if err != nil {
				return nil, err
			}
			entries = append(entries, sub...)
		}
		return entries, nil
	case yaml.AliasNode:
		return flattenYAMLValue(path, node.Alias, key)
	case yaml.ScalarNode:
		value := node.Value
		if node.Tag == "!!null" {
			value = ""
		}
		return []config.Entry{{Key: key, Value: value}}, nil
	}
	return nil, &config.ParseError{
		Path: path,
		Line: node.Line,
		Err:  fmt.Errorf("unsupported YAML node kind %d at %q", node.Kind, key),
	}
}
