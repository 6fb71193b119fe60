// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

// Ctx pairs a payload with the context it is viewed in.
//
// A Ctx read through a Lens is a fresh view: both fields are cloned from
// the source and owned by the caller.
type Ctx[C, T any] struct {
	Ctx  C
	Data T
}

// NewCtx creates a Ctx from a context and a payload.
func NewCtx[C, T any](c C, t T) Ctx[C, T] {
	return Ctx[C, T]{Ctx: c, Data: t}
}

// ctxMake views two independent slices of S as one Ctx.
type ctxMake[S, C, T any] struct {
	cl Lens[S, C]
	tl Lens[S, T]
}

// Get reads both slices from the same unmodified s.
func (l ctxMake[S, C, T]) Get(s S) Ctx[C, T] {
	return Ctx[C, T]{Ctx: Clone(l.cl.Get(s)), Data: Clone(l.tl.Get(s))}
}

// Set writes the context first and the payload on top of it, into a single
// working copy of s.
func (l ctxMake[S, C, T]) Set(s S, v Ctx[C, T]) S {
	s = l.cl.Set(s, v.Ctx)
	return l.tl.Set(s, v.Data)
}

// MakeCtx creates a Lens from S to Ctx[C, T] out of a context Lens and a
// payload Lens into the same S.
//
// cl and tl must focus on disjoint parts of S. Overlapping lenses break
// get-put and put-get; this is not detected.
func MakeCtx[S, C, T any](cl Lens[S, C], tl Lens[S, T]) ctxMake[S, C, T] {
	return ctxMake[S, C, T]{cl: cl, tl: tl}
}

type ctxField[C, T any] struct{}

func (ctxField[C, T]) Get(c Ctx[C, T]) C { return c.Ctx }

func (ctxField[C, T]) Set(c Ctx[C, T], v C) Ctx[C, T] {
	c.Ctx = v
	return c
}

// CtxOf returns the Lens onto the context of a Ctx.
func CtxOf[C, T any]() ctxField[C, T] {
	return ctxField[C, T]{}
}

type dataField[C, T any] struct{}

func (dataField[C, T]) Get(c Ctx[C, T]) T { return c.Data }

func (dataField[C, T]) Set(c Ctx[C, T], v T) Ctx[C, T] {
	c.Data = v
	return c
}

// DataOf returns the Lens onto the payload of a Ctx.
func DataOf[C, T any]() dataField[C, T] {
	return dataField[C, T]{}
}

// ctxMap focuses inside the payload and carries the context along.
type ctxMap[C, T, U any] struct {
	inner Lens[T, U]
}

func (l ctxMap[C, T, U]) Get(c Ctx[C, T]) Ctx[C, U] {
	return Ctx[C, U]{Ctx: Clone(c.Ctx), Data: Clone(l.inner.Get(c.Data))}
}

// Set takes the context from u, not from c: a write may replace both.
func (l ctxMap[C, T, U]) Set(c Ctx[C, T], u Ctx[C, U]) Ctx[C, T] {
	return Ctx[C, T]{Ctx: u.Ctx, Data: l.inner.Set(c.Data, u.Data)}
}

// MapCtx lifts a Lens on payloads to a Lens on Ctx values.
// The context is never inspected by inner.
//
// Usage: MapCtx[C](inner), with T and U inferred from inner.
func MapCtx[C, T, U any](inner Lens[T, U]) ctxMap[C, T, U] {
	return ctxMap[C, T, U]{inner: inner}
}

// ctxOutcome distributes the context of a Ctx into the cases of its
// Outcome payload.
type ctxOutcome[C, A, B, E any] struct{}

// Get pairs the context with whichever payload is present.
// Empty carries no payload, so the context is not surfaced.
func (ctxOutcome[C, A, B, E]) Get(c Ctx[C, Outcome[A, B, E]]) Outcome[Ctx[C, A], Ctx[C, B], Ctx[C, E]] {
	return MapOutcome(c.Data,
		func(a A) Ctx[C, A] { return Ctx[C, A]{Ctx: Clone(c.Ctx), Data: Clone(a)} },
		func(b B) Ctx[C, B] { return Ctx[C, B]{Ctx: Clone(c.Ctx), Data: Clone(b)} },
		func(e E) Ctx[C, E] { return Ctx[C, E]{Ctx: Clone(c.Ctx), Data: Clone(e)} },
	)
}

// Set adopts the case of o. For every case but Empty the context carried
// inside o replaces c.Ctx; Empty leaves c.Ctx as it was.
func (ctxOutcome[C, A, B, E]) Set(c Ctx[C, Outcome[A, B, E]], o Outcome[Ctx[C, A], Ctx[C, B], Ctx[C, E]]) Ctx[C, Outcome[A, B, E]] {
	return MatchOutcome(o,
		func() Ctx[C, Outcome[A, B, E]] {
			c.Data = Empty[A, B, E]()
			return c
		},
		func(pb Ctx[C, B]) Ctx[C, Outcome[A, B, E]] {
			return Ctx[C, Outcome[A, B, E]]{Ctx: pb.Ctx, Data: Deferred[A, E](pb.Data)}
		},
		func(pa Ctx[C, A]) Ctx[C, Outcome[A, B, E]] {
			return Ctx[C, Outcome[A, B, E]]{Ctx: pa.Ctx, Data: Resolved[B, E](pa.Data)}
		},
		func(pe Ctx[C, E]) Ctx[C, Outcome[A, B, E]] {
			return Ctx[C, Outcome[A, B, E]]{Ctx: pe.Ctx, Data: Rejected[A, B](pe.Data)}
		},
	)
}

// InOutcome returns the Lens that moves the context of a
// Ctx[C, Outcome[A, B, E]] inside each case of the Outcome.
func InOutcome[C, A, B, E any]() ctxOutcome[C, A, B, E] {
	return ctxOutcome[C, A, B, E]{}
}
