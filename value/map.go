package value

import "strings"

// Map is a string-keyed, insertion-ordered mapping. Later writes to an
// existing key overwrite the value in place without disturbing order;
// lookup of a missing key yields Nil rather than failing.
type Map struct {
	keys   []string
	values map[string]Value
}

func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

func (*Map) Type() string { return "map" }

func (m *Map) String() string {
	parts := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		parts = append(parts, k+": "+displayOf(m.values[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Set writes key to value, appending key to the insertion order only the
// first time it is written.
func (m *Map) Set(key string, val Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = val
}

// Get returns the value bound to key, or Nil if key was never set.
func (m *Map) Get(key string) Value {
	if v, ok := m.values[key]; ok {
		return v
	}
	return Nil{}
}

// Has reports whether key has been set.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. Callers must not mutate it.
func (m *Map) Keys() []string { return m.keys }
