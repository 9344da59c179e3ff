package hh

// Navigation helpers for the loosely-typed page state. The source schema
// wraps every resume field in a {"value": ...} envelope and mixes scalars,
// mappings and lists freely, so all extractors go through these instead of
// asserting types at call sites.

// dig walks nested mappings by key path, returning nil as soon as a step is
// missing or the current value is not a mapping.
func dig(v any, path ...string) any {
	for _, key := range path {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v, ok = m[key]
		if !ok {
			return nil
		}
	}
	return v
}

// field reads resume.<key>.value from the page state. A field present as a
// bare scalar without the envelope reads as nil: it is treated as absent,
// not used.
func field(state PageState, key string) any {
	return dig(map[string]any(state), "resume", key, "value")
}

// str returns v as a string, or "" when it is not one.
func str(v any) string {
	s, _ := v.(string)
	return s
}

// asMap returns v as a mapping, or nil.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asList returns v as a list, or nil.
func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

// intval coerces JSON numbers (decoded as float64) to int.
func intval(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// titleOrString unwraps mappings that carry their display value under
// "title"; plain values pass through unchanged.
func titleOrString(v any) any {
	if m, ok := v.(map[string]any); ok {
		if t, ok := m["title"]; ok {
			return t
		}
	}
	return v
}

// mapSection runs one field-group extractor and contains any fault inside it
// to that section's empty mapping. Schema drift in one group must never
// blank out its siblings.
func mapSection(fn func() map[string]any) (out map[string]any) {
	defer func() {
		if recover() != nil {
			out = map[string]any{}
		}
	}()
	out = fn()
	if out == nil {
		out = map[string]any{}
	}
	return out
}

// listSection is mapSection for sequence-shaped sections.
func listSection[T any](fn func() []T) (out []T) {
	defer func() {
		if recover() != nil {
			out = []T{}
		}
	}()
	out = fn()
	if out == nil {
		out = []T{}
	}
	return out
}
