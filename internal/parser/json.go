package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vk/explainmyconfig/internal/config"
)

// parseJSON flattens a JSON document into dot-joined entries. It walks the
// decoder's token stream instead of unmarshalling into a map, because Go
// maps would lose the object key order that the output must preserve.
func parseJSON(path string, src []byte) ([]config.Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, &config.ParseError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &config.ParseError{Path: path, Err: errors.New("document root must be a JSON object")}
	}

	entries, err := flattenJSONObject(dec, "")
	if err != nil {
		return nil, &config.ParseError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &config.ParseError{Path: path, Err: errors.New("unexpected data after document root")}
	}

	return entries, nil
}

// flattenJSONObject consumes an object's members up to and including its
// closing brace. The opening brace must already have been consumed.
func flattenJSONObject(dec *json.Decoder, prefix string) ([]config.Entry, error) {
	var entries []config.Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", tok)
		}

		sub, err := flattenJSONValue(dec, joinKey(prefix, key))
		if err != nil {
			return nil, err
		}
		entries = append(entries, sub...)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return entries, nil
}

// flattenJSONValue consumes one value. Objects recurse with dot-joined
// keys, arrays with `.<index>` suffixes, and scalars terminate.
func flattenJSONValue(dec *json.Decoder, key string) ([]config.Entry, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return []config.Entry{{Key: key, Value: scalarString(tok)}}, nil
	}

	switch delim {
	case '{':
		return flattenJSONObject(dec, key)
	case '[':
		var entries []config.Entry
		for idx := 0; dec.More(); idx++ {
			sub, err := flattenJSONValue(dec, fmt.Sprintf("%s.%d", key, idx))
			if err != nil {
				return nil, err
			}
			entries = append(entries, sub...)
		}
		if _, err := dec.Token(); err != nil { // closing ']'
			return nil, err
		}
		return entries, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}
