// Package encode converts tables to and from YAML and JSON bytes.
// Tables keyed exactly 1..Len encode as sequences; everything else
// encodes as a mapping with stringified keys.
package encode

import (
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/signadot/tracked"
)

// MarshalYAML encodes t as YAML.
func MarshalYAML(t *tracked.Table) ([]byte, error) {
	return yaml.Marshal(t.ToAny())
}

// UnmarshalYAML decodes YAML (or JSON, which it subsumes) into a fresh
// Table.
func UnmarshalYAML(data []byte) (*tracked.Table, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return tracked.FromAny(v)
}

// MarshalJSON encodes t as JSON, the byte form the patch package
// hands to RFC 6902/7386 operations.
func MarshalJSON(t *tracked.Table) ([]byte, error) {
	return json.Marshal(t.ToAny())
}

// UnmarshalJSON decodes JSON into a fresh Table.
func UnmarshalJSON(data []byte) (*tracked.Table, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return tracked.FromAny(v)
}
