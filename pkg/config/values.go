package config

// Raw configuration trees are map[string]any values exactly as the YAML and
// JSON parsers produce them. These helpers normalize the handful of shapes
// each option may legally take, defaulting anything else.

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// boolValue reports whether v holds boolean true. Any other value,
// including a missing one, counts as false.
func boolValue(v any) bool {
	b, _ := v.(bool)
	return b
}

func mapValue(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// anyMap returns v as a mapping, defaulting to an empty one.
func anyMap(v any) map[string]any {
	if m := mapValue(v); m != nil {
		return m
	}
	return map[string]any{}
}

// stringSlice normalizes a sequence of scalars to strings. A bare string
// counts as a single-element sequence; non-string elements are dropped.
func stringSlice(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []string:
		return append([]string(nil), val...)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// boolMap normalizes a mapping of name to enablement flag.
func boolMap(v any) map[string]bool {
	switch m := v.(type) {
	case map[string]bool:
		out := make(map[string]bool, len(m))
		for k, b := range m {
			out[k] = b
		}
		return out
	case map[string]any:
		out := make(map[string]bool, len(m))
		for k, val := range m {
			out[k] = boolValue(val)
		}
		return out
	}
	return map[string]bool{}
}

// patternMap normalizes a mapping of dependency type to pattern sequence.
func patternMap(v any) map[string][]string {
	switch m := v.(type) {
	case map[string][]string:
		out := make(map[string][]string, len(m))
		for k, patterns := range m {
			out[k] = append([]string(nil), patterns...)
		}
		return out
	case map[string]any:
		out := make(map[string][]string, len(m))
		for k, val := range m {
			out[k] = stringSlice(val)
		}
		return out
	}
	return map[string][]string{}
}

// cloneTree shallow-copies a raw tree.
func cloneTree(tree map[string]any) map[string]any {
	out := make(map[string]any, len(tree))
	for k, v := range tree {
		out[k] = v
	}
	return out
}
