// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

// Lens focuses on a V-shaped slice of a larger S.
//
// Get reads the focus without modifying s. Set returns s with the focus
// replaced by v. Every Lens, primitive or composed, must satisfy:
//
//	Set(s, Get(s)) == s // get-put
//	Get(Set(s, v)) == v // put-get
//
// The laws are not checked at runtime; see package lenstest.
type Lens[S, V any] interface {
	Get(s S) V
	Set(s S, v V) S
}

// Func is a Lens built from a pair of functions.
type Func[S, V any] struct {
	get func(S) V
	set func(S, V) S
}

// New creates a Lens from get and set functions.
func New[S, V any](get func(S) V, set func(S, V) S) Func[S, V] {
	return Func[S, V]{get: get, set: set}
}

// Get implements Lens.
func (l Func[S, V]) Get(s S) V {
	return l.get(s)
}

// Set implements Lens.
func (l Func[S, V]) Set(s S, v V) S {
	return l.set(s, v)
}

// Field creates a Lens from a projection onto a field of S.
// ref is applied to a private copy of s, so Set never writes through to
// the caller's value unless S itself is a reference type.
func Field[S, V any](ref func(*S) *V) Func[S, V] {
	return Func[S, V]{
		get: func(s S) V { return *ref(&s) },
		set: func(s S, v V) S {
			*ref(&s) = v
			return s
		},
	}
}

// identityGet and identitySet back Identity.
// Named generic functions produce a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func identityGet[S any](s S) S      { return s }
func identitySet[S any](_ S, v S) S { return v }

// Identity returns the Lens that focuses on the whole of S.
func Identity[S any]() Func[S, S] {
	return Func[S, S]{get: identityGet[S], set: identitySet[S]}
}

// composed focuses through outer, then inner.
type composed[S, A, B any] struct {
	outer Lens[S, A]
	inner Lens[A, B]
}

func (l composed[S, A, B]) Get(s S) B {
	return l.inner.Get(l.outer.Get(s))
}

// Set reads the outer focus once, writes into it, then writes it back.
func (l composed[S, A, B]) Set(s S, b B) S {
	return l.outer.Set(s, l.inner.Set(l.outer.Get(s), b))
}

// Compose focuses through outer and then inner.
// Compose(outer, inner) satisfies the laws whenever outer and inner do.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) composed[S, A, B] {
	return composed[S, A, B]{outer: outer, inner: inner}
}

// Modify applies f to the focus of l in s.
func Modify[S, V any](l Lens[S, V], s S, f func(V) V) S {
	return l.Set(s, f(l.Get(s)))
}

// With runs f against a view of the focus and returns its result.
func With[S, V, R any](l Lens[S, V], s S, f func(V) R) R {
	return f(l.Get(s))
}

// WithMut runs f against a mutable view of the focus, then writes the view
// back into *s. The view is written back even if f leaves it unchanged.
func WithMut[S, V, R any](l Lens[S, V], s *S, f func(*V) R) R {
	v := l.Get(*s)
	r := f(&v)
	*s = l.Set(*s, v)
	return r
}
