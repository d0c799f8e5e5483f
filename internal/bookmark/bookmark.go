// Package bookmark loads the curated bookmark collection.
package bookmark

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Keys every bookmark record must carry.
const (
	KeyURL  = "url"
	KeyTags = "tags"
)

// Bookmark is one record of the collection.
// Fields holds every key other than url and tags, exactly as decoded.
type Bookmark struct {
	URL    string
	Tags   []string
	Fields map[string]any
}

// ParseError reports a malformed or structurally invalid bookmark document.
type ParseError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "bookmarks"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", loc, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", loc, e.Msg)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the YAML document at path into an ordered list of bookmarks.
func Load(path string) ([]*Bookmark, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: "opening bookmarks file", Err: err}
	}
	defer file.Close() //nolint:errcheck // read-only file

	bookmarks, err := Decode(file)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}
	return bookmarks, nil
}

// Decode parses a YAML sequence of bookmark mappings from r.
// The stream must hold exactly one document.
func Decode(r io.Reader) ([]*Bookmark, error) {
	dec := yaml.NewDecoder(r)
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Msg: "document is empty"}
		}
		return nil, &ParseError{Msg: "malformed YAML", Err: err}
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == nil:
		line := extra.Line
		if len(extra.Content) > 0 {
			line = extra.Content[0].Line
		}
		return nil, &ParseError{Line: line, Msg: "expected a single YAML document"}
	case !errors.Is(err, io.EOF):
		return nil, &ParseError{Msg: "malformed YAML", Err: err}
	}

	seq := &root
	if seq.Kind == yaml.DocumentNode && len(seq.Content) > 0 {
		seq = seq.Content[0]
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, &ParseError{Line: seq.Line, Msg: "document root must be a sequence of bookmarks"}
	}

	bookmarks := make([]*Bookmark, 0, len(seq.Content))
	for _, item := range seq.Content {
		if item.Kind == yaml.AliasNode && item.Alias != nil {
			item = item.Alias
		}
		if item.Kind != yaml.MappingNode {
			return nil, &ParseError{Line: item.Line, Msg: "bookmark must be a mapping"}
		}
		bm := &Bookmark{}
		if err := item.Decode(bm); err != nil {
			var parseErr *ParseError
			if errors.As(err, &parseErr) {
				return nil, err
			}
			return nil, &ParseError{Line: item.Line, Msg: "invalid bookmark", Err: err}
		}
		bookmarks = append(bookmarks, bm)
	}
	return bookmarks, nil
}

// UnmarshalYAML decodes a bookmark mapping, keeping unknown keys in Fields.
func (b *Bookmark) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return &ParseError{Line: value.Line, Msg: "bookmark must be a mapping"}
	}

	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return &ParseError{Line: value.Line, Msg: "invalid bookmark", Err: err}
	}

	rawURL, ok := raw[KeyURL]
	if !ok {
		return &ParseError{Line: value.Line, Msg: fmt.Sprintf("bookmark is missing required key %q", KeyURL)}
	}
	url, ok := rawURL.(string)
	if !ok {
		return &ParseError{Line: value.Line, Msg: fmt.Sprintf("bookmark key %q must be a string", KeyURL)}
	}

	rawTags, ok := raw[KeyTags]
	if !ok {
		return &ParseError{Line: value.Line, Msg: fmt.Sprintf("bookmark %s is missing required key %q", url, KeyTags)}
	}
	tags, err := toTags(rawTags)
	if err != nil {
		return &ParseError{Line: value.Line, Msg: fmt.Sprintf("bookmark %s: %v", url, err)}
	}

	delete(raw, KeyURL)
	delete(raw, KeyTags)
	for key, val := range raw {
		norm, err := normalizeValue(val)
		if err != nil {
			return &ParseError{Line: value.Line, Msg: fmt.Sprintf("bookmark %s key %q: %v", url, key, err)}
		}
		raw[key] = norm
	}

	b.URL = url
	b.Tags = tags
	b.Fields = raw
	return nil
}

// toTags converts a decoded tags value into a string slice.
func toTags(value any) ([]string, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("key %q must be a sequence of strings", KeyTags)
	}
	tags := make([]string, 0, len(items))
	for i, item := range items {
		tag, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("tag #%d must be a string, got %T", i+1, item)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// normalizeValue rewrites mappings with non-string keys so they encode as JSON
// objects, and rejects numbers JSON cannot represent.
func normalizeValue(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-finite number %v has no JSON form", v)
		}
		return v, nil
	case map[string]any:
		for key, val := range v {
			norm, err := normalizeValue(val)
			if err != nil {
				return nil, err
			}
			v[key] = norm
		}
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			norm, err := normalizeValue(val)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(key)] = norm
		}
		return out, nil
	case []any:
		for i, val := range v {
			norm, err := normalizeValue(val)
			if err != nil {
				return nil, err
			}
			v[i] = norm
		}
		return v, nil
	default:
		return v, nil
	}
}

// MarshalJSON emits the record with its original key set and the current tag order.
func (b *Bookmark) MarshalJSON() ([]byte, error) {
	record := make(map[string]any, len(b.Fields)+2)
	for key, val := range b.Fields {
		record[key] = val
	}
	record[KeyURL] = b.URL
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	record[KeyTags] = tags

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(record); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
