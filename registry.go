// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Instance registry: maps (capability, witness, fixed element params)
// to a capability instance. The registry is an explicit value passed to
// free generic functions — there is no package-level ambient registry,
// so plain dependency injection of instances remains equally supported.
//
// Keys are built from zero values: the witness type's zero value and an
// empty generic elemKey struct identify the (witness, element types)
// pair without reflection. Instances are immutable; register everything
// before concurrent reads and resolution is a pure map lookup safe to
// share.

// UnsupportedError is the typed absence returned when no instance is
// registered for a (capability, witness, params) combination. Callers
// must branch on it; the engine never skips it silently.
type UnsupportedError struct {
	Capability Capability
	Shape      string
}

func (e *UnsupportedError) Error() string {
	return "hkt: no " + e.Capability.String() + " instance registered for shape " + e.Shape
}

type instanceKey struct {
	cap     Capability
	witness any
	elems   any
}

// elemKey identifies a pair of fixed element types.
type elemKey[A, B any] struct{}

// traverseElemKey additionally fixes the effect shape G.
type traverseElemKey[G Witness, A, B any] struct{}

// Registry holds capability instances keyed by witness identity.
// The zero value is not usable; construct with [NewRegistry].
type Registry struct {
	instances map[instanceKey]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{instances: make(map[instanceKey]any)}
}

func witnessKey[W Witness]() (any, string) {
	var w W
	return w, w.ShapeName()
}

// put registers an instance. Registering two instances for the same
// (capability, witness, params) is an integration defect, not a
// recoverable condition.
func (r *Registry) put(cap Capability, wit any, shape string, elems any, inst any) {
	k := instanceKey{cap: cap, witness: wit, elems: elems}
	if _, dup := r.instances[k]; dup {
		panic("hkt: conflicting " + cap.String() + " instance registered for shape " + shape)
	}
	r.instances[k] = inst
}

func (r *Registry) get(cap Capability, wit any, elems any) (any, bool) {
	inst, ok := r.instances[instanceKey{cap: cap, witness: wit, elems: elems}]
	return inst, ok
}

// RegisterFunctor records a Functor instance for shape W at element
// types A, B.
func RegisterFunctor[W Witness, A, B any](r *Registry, inst Functor[W, A, B]) {
	wit, shape := witnessKey[W]()
	r.put(CapFunctor, wit, shape, elemKey[A, B]{}, inst)
}

// ResolveFunctor returns the Functor instance for shape W at element
// types A, B, or an [UnsupportedError].
func ResolveFunctor[W Witness, A, B any](r *Registry) (Functor[W, A, B], error) {
	wit, shape := witnessKey[W]()
	inst, ok := r.get(CapFunctor, wit, elemKey[A, B]{})
	if !ok {
		return nil, &UnsupportedError{Capability: CapFunctor, Shape: shape}
	}
	return inst.(Functor[W, A, B]), nil
}

// RegisterApplicative records an Applicative instance for shape W.
func RegisterApplicative[W Witness, A, B any](r *Registry, inst Applicative[W, A, B]) {
	wit, shape := witnessKey[W]()
	r.put(CapApplicative, wit, shape, elemKey[A, B]{}, inst)
}

// ResolveApplicative returns the Applicative instance for shape W, or
// an [UnsupportedError].
func ResolveApplicative[W Witness, A, B any](r *Registry) (Applicative[W, A, B], error) {
	wit, shape := witnessKey[W]()
	inst, ok := r.get(CapApplicative, wit, elemKey[A, B]{})
	if !ok {
		return nil, &UnsupportedError{Capability: CapApplicative, Shape: shape}
	}
	return inst.(Applicative[W, A, B]), nil
}

// RegisterMonad records a Monad instance for shape W.
func RegisterMonad[W Witness, A, B any](r *Registry, inst Monad[W, A, B]) {
	wit, shape := witnessKey[W]()
	r.put(CapMonad, wit, shape, elemKey[A, B]{}, inst)
}

// ResolveMonad returns the Monad instance for shape W, or an
// [UnsupportedError].
func ResolveMonad[W Witness, A, B any](r *Registry) (Monad[W, A, B], error) {
	wit, shape := witnessKey[W]()
	inst, ok := r.get(CapMonad, wit, elemKey[A, B]{})
	if !ok {
		return nil, &UnsupportedError{Capability: CapMonad, Shape: shape}
	}
	return inst.(Monad[W, A, B]), nil
}

// RegisterComonad records a Comonad instance for shape W.
func RegisterComonad[W Witness, A, B any](r *Registry, inst Comonad[W, A, B]) {
	wit, shape := witnessKey[W]()
	r.put(CapComonad, wit, shape, elemKey[A, B]{}, inst)
}

// ResolveComonad returns the Comonad instance for shape W, or an
// [UnsupportedError].
func ResolveComonad[W Witness, A, B any](r *Registry) (Comonad[W, A, B], error) {
	wit, shape := witnessKey[W]()
	inst, ok := r.get(CapComonad, wit, elemKey[A, B]{})
	if !ok {
		return nil, &UnsupportedError{Capability: CapComonad, Shape: shape}
	}
	return inst.(Comonad[W, A, B]), nil
}

// RegisterFoldable records a Foldable instance for shape W at element
// type A and accumulator type Z.
func RegisterFoldable[W Witness, A, Z any](r *Registry, inst Foldable[W, A, Z]) {
	wit, shape := witnessKey[W]()
	r.put(CapFoldable, wit, shape, elemKey[A, Z]{}, inst)
}

// ResolveFoldable returns the Foldable instance for shape W, or an
// [UnsupportedError].
func ResolveFoldable[W Witness, A, Z any](r *Registry) (Foldable[W, A, Z], error) {
	wit, shape := witnessKey[W]()
	inst, ok := r.get(CapFoldable, wit, elemKey[A, Z]{})
	if !ok {
		return nil, &UnsupportedError{Capability: CapFoldable, Shape: shape}
	}
	return inst.(Foldable[W, A, Z]), nil
}

// RegisterTraverse records a Traverse instance for shape W with effect
// shape G.
func RegisterTraverse[W, G Witness, A, B any](r *Registry, inst Traverse[W, G, A, B]) {
	wit, shape := witnessKey[W]()
	r.put(CapTraverse, wit, shape, traverseElemKey[G, A, B]{}, inst)
}

// ResolveTraverse returns the Traverse instance for shape W with effect
// shape G, or an [UnsupportedError].
func ResolveTraverse[W, G Witness, A, B any](r *Registry) (Traverse[W, G, A, B], error) {
	wit, shape := witnessKey[W]()
	inst, ok := r.get(CapTraverse, wit, traverseElemKey[G, A, B]{})
	if !ok {
		return nil, &UnsupportedError{Capability: CapTraverse, Shape: shape}
	}
	return inst.(Traverse[W, G, A, B]), nil
}
