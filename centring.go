// Package oav provides loading of the OAV centring JSON document.
package oav

import (
	"encoding/json"
	"os"
)

// loadCentringFile reads the OAV centring JSON document from disk and splits
// it into global parameters and named context maps.
func loadCentringFile(path string) (map[string]any, map[string]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &FileAccessError{Path: path, Op: "read", Err: err}
	}
	globals, contexts, err := parseCentringDocument(data)
	if err != nil {
		return nil, nil, &FileAccessError{Path: path, Op: "parse", Err: err}
	}
	return globals, contexts, nil
}

// parseCentringDocument decodes the centring document and partitions its
// top-level entries: JSON objects become named contexts, everything else
// (numbers, strings, booleans, arrays, null) is a global default.
func parseCentringDocument(data []byte) (map[string]any, map[string]map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}
	globals := make(map[string]any)
	contexts := make(map[string]map[string]any)
	for key, value := range raw {
		if sub, ok := value.(map[string]any); ok {
			contexts[key] = sub
		} else {
			globals[key] = value
		}
	}
	return globals, contexts, nil
}

// paramView is the layered lookup over the active context: the context layer
// is consulted first, the global layer second.
type paramView struct {
	context map[string]any
	global  map[string]any
}

// lookup returns the value for name from the context layer, falling back to
// the global layer. The second return reports whether name was found at all.
func (v paramView) lookup(name string) (any, bool) {
	if val, ok := v.context[name]; ok {
		return val, true
	}
	val, ok := v.global[name]
	return val, ok
}
