// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Witness marks a type as a container-shape identifier.
//
// A witness stands in for an unapplied container type ("type
// constructor"). Go generics only support fully applied types, so the
// package pairs an opaque witness type with the generic [Slot] box:
// Slot[W, A] plays the role of the applied form W<A>. Two witnesses
// denote the same shape iff they are the same type; witness types are
// empty comparable structs, and their zero values serve as registry
// keys.
//
// Composite witnesses ([SumW], [NestedW]) carry their component
// witnesses as type parameters, so a composite witness uniquely
// determines its components and composite instances dispatch using only
// the witness, never runtime type inspection.
type Witness interface {
	// ShapeName returns a stable human-readable name for the shape,
	// used in diagnostics.
	ShapeName() string
}

// Capability identifies one algebraic contract a container shape may
// support.
type Capability uint8

const (
	CapFunctor Capability = iota + 1
	CapApplicative
	CapMonad
	CapComonad
	CapFoldable
	CapTraverse
)

// String returns the lowercase capability name.
func (c Capability) String() string {
	switch c {
	case CapFunctor:
		return "functor"
	case CapApplicative:
		return "applicative"
	case CapMonad:
		return "monad"
	case CapComonad:
		return "comonad"
	case CapFoldable:
		return "foldable"
	case CapTraverse:
		return "traverse"
	default:
		return "unknown"
	}
}

// Slot is the applied form of the shape W holding elements of type A.
// Every concrete container converts to its slot form at no
// representational cost: the slot stores the container value itself,
// type-erased. Concrete element types are recovered at narrowing
// boundaries via checked type assertions, mirroring the type-erasure
// boundary of defunctionalized frame chains.
//
// Narrowing a slot actually produced by a container C[A] returns that
// exact value unchanged. Narrowing with a mismatched witness is a
// caller defect and panics; correctness is a construction-time
// discipline (only narrow slots produced by a witness-matching
// factory), not a runtime recovery point.
type Slot[W Witness, A any] struct {
	repr any
}

// MakeSlot wraps a concrete container value as a slot of shape W.
// Pairing W with the dynamic type of repr correctly is the caller's
// obligation; container packages expose WidenX/NarrowX pairs that keep
// the pairing by construction. External containers hook into the
// package through this function and [Slot.Repr].
func MakeSlot[W Witness, A any](repr any) Slot[W, A] {
	return Slot[W, A]{repr: repr}
}

// Repr returns the concrete container held by s.
func (s Slot[W, A]) Repr() any {
	return s.repr
}

// mustNarrow recovers a concrete container from its erased form.
// A mismatch means the slot was built with the wrong witness pairing.
func mustNarrow[C any](repr any, shape string) C {
	c, ok := repr.(C)
	if !ok {
		panic("hkt: narrow " + shape + ": slot does not hold this container shape")
	}
	return c
}
