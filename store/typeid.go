package store

import (
	"reflect"
	"unsafe"
)

// TypeID returns an opaque, process-stable identifier for t, derived from
// the pointer identity of the *reflect.rtype* backing t. It is used by
// Storage.Type to implement the sparse set's type() operation (the
// registry-facing dispatch tag spec.md calls for) and as the key into the
// per-type trait registry.
func TypeID(t reflect.Type) uint64 {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return uint64(uintptr(ptr))
}

// typeIDFor is the generic convenience form of TypeID.
func typeIDFor[T any]() uint64 {
	return TypeID(reflect.TypeOf((*T)(nil)).Elem())
}
