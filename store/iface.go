package store

import "unsafe"

// iface mirrors the internal memory layout of an interface value, letting
// us recover the pointer identity of a reflect.Type without paying for a
// map[reflect.Type]X lookup on every call.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
