// Package types mirrors the data model of the vendor surface library: the
// result code taxonomy, the classification enumerations, and the fixed-layout
// object header the library fills in place.
package types

// unrecognized is the name reported for integer values outside an enumeration.
const unrecognized = "unrecognized"

type enumEntry[T ~int16 | ~int32] struct {
	value T
	name  string
}

// enumTable is a reverse lookup from wire value to canonical name.
// Vendor tables alias several names onto one value; the first declared
// name for a value is canonical and later aliases never replace it.
type enumTable[T ~int16 | ~int32] struct {
	names map[T]string
	order []T
}

func newEnumTable[T ~int16 | ~int32](entries ...enumEntry[T]) *enumTable[T] {
	t := &enumTable[T]{names: make(map[T]string, len(entries))}
	for _, e := range entries {
		if _, seen := t.names[e.value]; seen {
			continue
		}
		t.names[e.value] = e.name
		t.order = append(t.order, e.value)
	}
	return t
}

func (t *enumTable[T]) lookup(v int) (T, bool) {
	val := T(v)
	if int(val) != v {
		// out of range for the wire width
		return val, false
	}
	_, ok := t.names[val]
	return val, ok
}

func (t *enumTable[T]) name(v T) string {
	if n, ok := t.names[v]; ok {
		return n
	}
	return unrecognized
}

func (t *enumTable[T]) known(v T) bool {
	_, ok := t.names[v]
	return ok
}

// values returns the distinct canonical values in declaration order.
func (t *enumTable[T]) values() []T {
	out := make([]T, len(t.order))
	copy(out, t.order)
	return out
}
