package types

// DefaultMap is a map wrapper that initializes missing keys with a value
// produced by a user-defined function.
//
//	byAddress := NewDefaultMap[string](func() []Wallet { return nil })
//	byAddress.Update(w.Address, func(ws []Wallet) []Wallet { return append(ws, w) })
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap creates an empty DefaultMap using defaultFunc for missing keys.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value stored under key, storing and returning a default
// value when the key is absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Update replaces the value under key with fn applied to its current (or
// default) value.
func (d *DefaultMap[K, V]) Update(key K, fn func(V) V) {
	d.data[key] = fn(d.Get(key))
}

// ToMap returns the underlying map.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
