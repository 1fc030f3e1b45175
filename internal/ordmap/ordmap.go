// Package ordmap implements an insertion-ordered string multimap. It backs the
// public ErrorMap type; keys keep first-insertion order and values keep append
// order.
package ordmap

// Map is an ordered mapping from key to a list of values. The zero value is
// not usable; construct with New.
type Map struct {
	keys   []string
	values map[string][]string
}

// New returns an empty ordered multimap.
func New() *Map {
	return &Map{values: make(map[string][]string)}
}

// Append adds values to the list stored under key, creating the key at the end
// of the key order when it is new. Appending zero values is a no-op so a key is
// never created with an empty list.
func (m *Map) Append(key string, vals ...string) {
	if len(vals) == 0 {
		return
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(m.values[key], vals...)
}

// PopLast removes and returns the most recently appended value under key.
// When the list becomes empty the key is removed entirely, preserving the
// relative order of the remaining keys.
func (m *Map) PopLast(key string) (string, bool) {
	vals, ok := m.values[key]
	if !ok {
		return "", false
	}
	last := vals[len(vals)-1]
	vals = vals[:len(vals)-1]
	if len(vals) == 0 {
		delete(m.values, key)
		for i, k := range m.keys {
			if k == key {
				m.keys = append(m.keys[:i], m.keys[i+1:]...)
				break
			}
		}
		return last, true
	}
	m.values[key] = vals
	return last, true
}

// SetLast overwrites the most recently appended value under key. It reports
// whether the key existed.
func (m *Map) SetLast(key, val string) bool {
	vals, ok := m.values[key]
	if !ok {
		return false
	}
	vals[len(vals)-1] = val
	return true
}

// Get returns a copy of the list stored under key, or nil.
func (m *Map) Get(key string) []string {
	vals, ok := m.values[key]
	if !ok {
		return nil
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Map) Len() int { return len(m.keys) }

// Total returns the number of stored values across all keys.
func (m *Map) Total() int {
	n := 0
	for _, vals := range m.values {
		n += len(vals)
	}
	return n
}

// Range calls fn for each key in insertion order with the stored list. The
// list must not be mutated by fn. Iteration stops when fn returns false.
func (m *Map) Range(fn func(key string, vals []string) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns a deep copy.
func (m *Map) Clone() *Map {
	out := New()
	out.keys = make([]string, len(m.keys))
	copy(out.keys, m.keys)
	for k, vals := range m.values {
		cp := make([]string, len(vals))
		copy(cp, vals)
		out.values[k] = cp
	}
	return out
}
