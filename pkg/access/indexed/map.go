// Package indexed provides array-backed associative containers with
// stable insertion order and ordinal lookup. They are the building
// blocks of the access state aggregate: every nested container is
// copied structurally through Copy, which is what makes snapshot
// copies independent of each other.
package indexed

// Map is an insertion-ordered map. Iteration order is the order keys
// were first inserted and is preserved by Copy.
type Map[K comparable, V any] struct {
	keys   []K
	values []V
	index  map[K]int
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]int),
	}
}

func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.values[i], true
}

func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.index[key]
	return ok
}

func (m *Map[K, V]) KeyAt(i int) K {
	return m.keys[i]
}

func (m *Map[K, V]) ValueAt(i int) V {
	return m.values[i]
}

// Put inserts or replaces. Replacing a value keeps the key's original
// position.
func (m *Map[K, V]) Put(key K, value V) {
	if i, ok := m.index[key]; ok {
		m.values[i] = value
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Remove deletes the key and reports whether it was present. Later
// keys shift down one position.
func (m *Map[K, V]) Remove(key K) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}

	last := len(m.keys) - 1
	copy(m.keys[i:], m.keys[i+1:])
	copy(m.values[i:], m.values[i+1:])

	var zeroK K
	var zeroV V
	m.keys[last] = zeroK
	m.values[last] = zeroV
	m.keys = m.keys[:last]
	m.values = m.values[:last]

	delete(m.index, key)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}

	return true
}

// GetOrPut returns the value for key, inserting newValue() first if
// the key is absent.
func (m *Map[K, V]) GetOrPut(key K, newValue func() V) V {
	if i, ok := m.index[key]; ok {
		return m.values[i]
	}
	value := newValue()
	m.Put(key, value)
	return value
}

func (m *Map[K, V]) Each(fn func(i int, key K, value V)) {
	for i, key := range m.keys {
		fn(i, key, m.values[i])
	}
}

func (m *Map[K, V]) EachKey(fn func(i int, key K)) {
	for i, key := range m.keys {
		fn(i, key)
	}
}

func (m *Map[K, V]) EachValue(fn func(i int, value V)) {
	for i := range m.keys {
		fn(i, m.values[i])
	}
}

func (m *Map[K, V]) Any(pred func(i int, key K, value V) bool) bool {
	for i, key := range m.keys {
		if pred(i, key, m.values[i]) {
			return true
		}
	}
	return false
}

func (m *Map[K, V]) All(pred func(i int, key K, value V) bool) bool {
	for i, key := range m.keys {
		if !pred(i, key, m.values[i]) {
			return false
		}
	}
	return true
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Copy returns a new map with the same keys in the same order. A nil
// transform copies values as-is; a non-nil transform is applied to
// every value, which is how nested containers are deep-copied.
func (m *Map[K, V]) Copy(transform func(V) V) *Map[K, V] {
	c := &Map[K, V]{
		keys:   make([]K, len(m.keys)),
		values: make([]V, len(m.values)),
		index:  make(map[K]int, len(m.index)),
	}
	copy(c.keys, m.keys)
	for i, value := range m.values {
		if transform != nil {
			value = transform(value)
		}
		c.values[i] = value
	}
	for key, i := range m.index {
		c.index[key] = i
	}
	return c
}
