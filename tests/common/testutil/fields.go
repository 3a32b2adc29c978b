//go:build unit

package testutil

// Field overrides one key in a payload map; a nil value removes the key
// so required-field cases can be built from a valid baseline.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
