package argparse

// Values maps descriptor names to parsed results. A normal option holds
// a string (or nil when absent without a default), a switch holds a
// bool, a positional holds a string or a []string depending on its
// arity. The help entry never appears.
type Values map[string]any

// String returns the value under name, or "" when it is absent or not a
// string.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Bool returns the value under name, or false when it is absent or not
// a bool.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Strings returns the value under name, or nil when it is absent or not
// a slice.
func (v Values) Strings(name string) []string {
	s, _ := v[name].([]string)
	return s
}

// IsSet reports whether name resolved to a non-nil value.
func (v Values) IsSet(name string) bool {
	val, ok := v[name]
	return ok && val != nil
}
