// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lens provides composable bidirectional accessors for nested,
// value-typed state, with first-class support for pairing a focus with a
// context value and for pushing that context through an asynchronous
// outcome.
//
// The core type [Lens] reads a V out of an S and writes a V back into an S.
// Application state trees are navigated by composing small lenses rather
// than writing a getter/setter pair for every nested field and every
// "field plus sibling context" combination.
//
// # Laws
//
// Every lens, primitive or composed, must satisfy:
//
//   - get-put: Set(s, Get(s)) == s
//   - put-get: Get(Set(s, v)) == v
//
// All combinators in this package preserve the laws of their inputs.
// Law violations are not detected at runtime; package lenstest checks them
// in tests.
//
// # Primitives
//
//   - [New]: Lens from a get and a set function
//   - [Field]: Lens from a pointer projection onto a field
//   - [Identity]: Lens onto the whole value
//   - [Compose]: Focus through one lens, then another
//
// Helpers:
//
//   - [Modify]: Apply a function to the focus
//   - [With]: Run a function against a view of the focus
//   - [WithMut]: Run a function against a mutable view, then write it back
//
// # Context Pairing
//
// [Ctx] pairs a payload with a context value. Views are fresh on every
// read; values implementing [Cloner] are deep-copied through [Clone].
//
//   - [NewCtx]: Construct a Ctx
//   - [MakeCtx]: Lens S → Ctx[C, T] from two disjoint lenses S → C and S → T
//   - [CtxOf], [DataOf]: Lenses onto the two fields of a Ctx
//   - [MapCtx]: Lift a Lens T → U to Ctx[C, T] → Ctx[C, U], carrying the context
//
// MakeCtx writes the context first and the payload second into one working
// copy of S. MapCtx takes the written context from the value being written,
// so an inner write may replace it.
//
// # Outcomes
//
// [Outcome] is a closed four-case sum for the state of asynchronous work:
// Empty, Deferred (in flight, with a request token), Resolved (with a
// result) and Rejected (with an error). The zero value is Empty.
//
//   - [Empty], [Deferred], [Resolved], [Rejected]: Constructors
//   - [Outcome.Kind]: Discriminant
//   - [MatchOutcome]: Exhaustive pattern matching
//   - [MapOutcome]: Rewrap the present payload, preserving the case
//
// [InOutcome] moves the context of a Ctx[C, Outcome[A, B, E]] into each case,
// producing Outcome[Ctx[C, A], Ctx[C, B], Ctx[C, E]]:
//
//	Empty        ↔ Empty (context retained, not surfaced)
//	Deferred(b)  ↔ Deferred(Ctx(c, b))
//	Resolved(a)  ↔ Resolved(Ctx(c, a))
//	Rejected(e)  ↔ Rejected(Ctx(c, e))
//
// Writing any non-Empty case replaces the context with the one it carries.
// Writing Empty leaves the context unchanged.
//
// # Example
//
//	type Album struct{ Title string }
//	type State struct {
//		User  string
//		Album lens.Outcome[Album, string, error]
//	}
//
//	user := lens.Field(func(s *State) *string { return &s.User })
//	album := lens.Field(func(s *State) *lens.Outcome[Album, string, error] { return &s.Album })
//
//	view := lens.Compose(lens.MakeCtx(user, album), lens.InOutcome[string, Album, string, error]())
//	if pc, ok := view.Get(state).GetResolved(); ok {
//		// pc.Ctx == state.User, pc.Data is the album
//	}
package lens
