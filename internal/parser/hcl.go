package parser

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/explainmyconfig/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// parseHCL flattens an HCL document into dot-joined entries. Blocks become
// key segments from their type and labels; attribute expressions are
// evaluated without an EvalContext, so only literal values are accepted.
func parseHCL(path string, src []byte) ([]config.Entry, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, path)
	if diags.HasErrors() {
		line := 0
		if diags[0].Subject != nil {
			line = diags[0].Subject.Start.Line
		}
		return nil, &config.ParseError{Path: path, Line: line, Err: fmt.Errorf("invalid HCL: %s", diags.Error())}
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, &config.ParseError{Path: path, Err: errors.New("unexpected HCL body implementation")}
	}

	return flattenHCLBody(path, body, "")
}

// bodyItem pairs an attribute or block with its source position, so a body's
// members can be visited in source order. hclsyntax exposes attributes as a
// map, which would otherwise scramble the output.
type bodyItem struct {
	start int
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

func flattenHCLBody(path string, body *hclsyntax.Body, prefix string) ([]config.Entry, error) {
	items := make([]bodyItem, 0, len(body.Attributes)+len(body.Blocks))
	for _, attr := range body.Attributes {
		items = append(items, bodyItem{start: attr.SrcRange.Start.Byte, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, bodyItem{start: block.TypeRange.Start.Byte, block: block})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].start < items[j].start })

	var entries []config.Entry
	for _, item := range items {
		if item.attr != nil {
			val, diags := item.attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, &config.ParseError{
					Path: path,
					Line: item.attr.SrcRange.Start.Line,
					Err:  fmt.Errorf("cannot evaluate attribute %q: %s", item.attr.Name, diags.Error()),
				}
			}
			sub, err := flattenCtyValue(val, joinKey(prefix, item.attr.Name))
			if err != nil {
				return nil, &config.ParseError{Path: path, Line: item.attr.SrcRange.Start.Line, Err: err}
			}
			entries = append(entries, sub...)
			continue
		}

		key := item.block.Type
		for _, label := range item.block.Labels {
			key = joinKey(key, label)
		}
		sub, err := flattenHCLBody(path, item.block.Body, joinKey(prefix, key))
		if err != nil {
			return nil, err
		}
		entries = append(entries, sub...)
	}
	return entries, nil
}

// flattenCtyValue flattens an evaluated cty value. Objects and maps recurse
// with dot-joined keys, tuples and lists with `.<index>` suffixes.
func flattenCtyValue(val cty.Value, key string) ([]config.Entry, error) {
	if val.IsNull() {
		return []config.Entry{{Key: key, Value: ""}}, nil
	}

	ty := val.Type()
	switch {
	case ty.IsObjectType() || ty.IsMapType():
		var entries []config.Entry
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			sub, err := flattenCtyValue(v, joinKey(key, k.AsString()))
			if err != nil {
				return nil, err
			}
			entries = append(entries, sub...)
		}
		return entries, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var entries []config.Entry
		idx := 0
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			sub, err := flattenCtyValue(v, fmt.Sprintf("%s.%d", key, idx))
			if err != nil {
				return nil, err
			}
			entries = append(entries, sub...)
			idx++
		}
		return entries, nil
	}

	s, err := ctyScalarString(val)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", key, err)
	}
	return []config.Entry{{Key: key, Value: s}}, nil
}

func ctyScalarString(val cty.Value) (string, error) {
	switch val.Type() {
	case cty.String:
		return val.AsString(), nil
	case cty.Bool:
		return strconv.FormatBool(val.True()), nil
	case cty.Number:
		return val.AsBigFloat().Text('f', -1), nil
	}
	return "", fmt.Errorf("unsupported value type %s", val.Type().FriendlyName())
}
