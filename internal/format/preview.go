package format

import (
	"encoding/json"
	"sort"
)

const (
	previewLimit    = 100
	previewMinLen   = 10
	previewMaxDepth = 3

	// NoContentMarker is rendered when an item has neither content nor metadata.
	NoContentMarker = "No content"
	// ComplexDataMarker is rendered when no usable string could be found.
	ComplexDataMarker = "Complex data structure"
)

// previewKeys is the field priority order for preview extraction. It is
// pinned by downstream behavior; do not reorder.
var previewKeys = []string{"text", "content", "message", "description", "summary", "value"}

// PreviewFromRaw extracts a preview from raw JSON content and metadata.
func PreviewFromRaw(content, metadata json.RawMessage) string {
	return ContentPreview(decodeLoose(content), decodeLoose(metadata))
}

func decodeLoose(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

// ContentPreview summarizes arbitrarily-shaped content/metadata into a short
// display string. Best effort: priority keys first (top level, then one level
// under "content"), then the first string longer than 10 characters found in
// a depth-limited scan, then a literal complex-data marker.
func ContentPreview(content, metadata any) string {
	if content == nil && metadata == nil {
		return NoContentMarker
	}
	sources := []any{content, metadata}

	for _, src := range sources {
		if s, ok := priorityKeyString(src); ok {
			return Truncate(s, previewLimit)
		}
	}
	for _, src := range sources {
		m, ok := src.(map[string]any)
		if !ok {
			continue
		}
		if s, ok := priorityKeyString(m["content"]); ok {
			return Truncate(s, previewLimit)
		}
	}
	for _, src := range sources {
		if s, ok := scanString(src, 0); ok {
			return Truncate(s, previewLimit)
		}
	}
	return ComplexDataMarker
}

func priorityKeyString(v any) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	for _, k := range previewKeys {
		if s, ok := m[k].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// scanString walks maps (in sorted key order, for deterministic output) and
// arrays looking for the first string longer than previewMinLen. Depth counts
// map nesting only; array hops are free, so list-wrapped payloads such as
// conversational event bodies scan like their elements.
func scanString(v any, depth int) (string, bool) {
	switch t := v.(type) {
	case string:
		if len(t) > previewMinLen {
			return t, true
		}
	case map[string]any:
		if depth >= previewMaxDepth {
			return "", false
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if s, ok := scanString(t[k], depth+1); ok {
				return s, true
			}
		}
	case []any:
		for _, e := range t {
			if s, ok := scanString(e, depth); ok {
				return s, true
			}
		}
	}
	return "", false
}
