// Package orderedmap provides a small generic insertion-ordered map. The
// command tree uses it for the subcommand registry, where registration
// order is significant for help display.
package orderedmap

// OrderedMap stores key-value pairs in insertion order. Overwriting an
// existing key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	index  map[K]int
	keys   []K
	values []V
}

// New creates an empty OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: map[K]int{}}
}

// Set stores a key-value pair, overwriting the value when the key exists.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if i, exists := o.index[key]; exists {
		o.values[i] = val
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, val)
}

// Get returns the value associated with key; the second return value is
// false when the key is absent.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	i, exists := o.index[key]
	if !exists {
		return *new(V), false
	}

	return o.values[i], true
}

// Has reports whether key is present.
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.index[key]

	return exists
}

// Count returns the number of stored pairs.
func (o *OrderedMap[K, V]) Count() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(o.keys))
	copy(keys, o.keys)

	return keys
}

// Iterator returns a generator over the pairs in insertion order. Each call
// to Iterator produces an independent generator.
func (o *OrderedMap[K, V]) Iterator() func() (K, V, bool) {
	i := 0

	return func() (K, V, bool) {
		if i >= len(o.keys) {
			return *new(K), *new(V), false
		}
		k, v := o.keys[i], o.values[i]
		i++

		return k, v, true
	}
}
