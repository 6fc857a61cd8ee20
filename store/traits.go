package store

import (
	"github.com/kamstrup/intmap"
)

// DefaultPageSize is used by any type that has not been configured
// through ConfigureTraits or an explicit TraitOption.
const DefaultPageSize = 4096

// Traits holds the per-type constants that govern a Storage[T]: the
// dense/sparse page size and the active deletion policy. In a systems
// language these would be compile-time template parameters; here they
// are resolved once, at construction, either from an explicit
// TraitOption or from a prior ConfigureTraits[T] call.
type Traits struct {
	PageSize          int
	InPlaceDelete     bool
	NotMoveAssignable bool
}

func defaultTraits() Traits {
	return Traits{PageSize: DefaultPageSize, InPlaceDelete: false}
}

// TraitOption mutates a Traits value; used both by ConfigureTraits and by
// NewStorage's variadic options.
type TraitOption func(*Traits)

// WithPageSize overrides the page size used for both the sparse index
// pages and the dense value pages.
func WithPageSize(n int) TraitOption {
	return func(t *Traits) {
		assertf(n > 0, "store: page size must be positive, got %d", n)
		t.PageSize = n
	}
}

// WithInPlaceDelete selects PolicyInPlace: erase destroys the value in
// place and threads the slot into a free list instead of swapping the
// last live element into it.
func WithInPlaceDelete() TraitOption {
	return func(t *Traits) {
		t.InPlaceDelete = true
	}
}

// WithSwapAndPopDelete selects PolicySwapAndPop (the default). It exists
// so ConfigureTraits registrations can be overridden back to the default
// without callers needing to know what the default is.
func WithSwapAndPopDelete() TraitOption {
	return func(t *Traits) {
		t.InPlaceDelete = false
	}
}

// WithNotMoveAssignable marks T as a value type that must never be
// relocated in memory once emplaced — e.g. because it embeds a pointer
// into itself. Compact, Sort, SortN, and SwapElements all require
// relocating values between packed slots, so a Storage[T] configured
// this way panics (NotMoveAssignableError) if any of them is called.
func WithNotMoveAssignable() TraitOption {
	return func(t *Traits) {
		t.NotMoveAssignable = true
	}
}

// traitRegistry caches per-type trait defaults keyed by TypeID, the same
// shape as a component-id registry keyed by reflect.Type, but collapsed
// to an open-addressed int->value map since TypeID is already a uint64.
var traitRegistry = intmap.New[uint64, Traits](64)

// ConfigureTraits registers default traits for T, to be picked up by any
// later NewStorage[T] call that does not itself pass conflicting
// options. Calling it more than once for the same T replaces the prior
// registration.
func ConfigureTraits[T any](opts ...TraitOption) {
	t := defaultTraits()
	for _, opt := range opts {
		opt(&t)
	}
	traitRegistry.Put(typeIDFor[T](), t)
}

// resolveTraits computes the effective traits for T: the registered
// default (or the package default if none was registered), with opts
// applied on top.
func resolveTraits[T any](opts ...TraitOption) Traits {
	t := defaultTraits()
	if registered, ok := traitRegistry.Get(typeIDFor[T]()); ok {
		t = registered
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// policy reports the deletion policy implied by these traits.
func (t Traits) policy() policy {
	if t.InPlaceDelete {
		return policyInPlace
	}
	return policySwapAndPop
}
