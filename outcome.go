// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

// OutcomeKind is the discriminant of an Outcome.
type OutcomeKind uint8

const (
	// KindEmpty means no operation has started.
	KindEmpty OutcomeKind = iota
	// KindDeferred means the operation is in flight.
	KindDeferred
	// KindResolved means the operation succeeded.
	KindResolved
	// KindRejected means the operation failed.
	KindRejected
)

// String returns the lower-case name of the kind.
func (k OutcomeKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindDeferred:
		return "deferred"
	case KindResolved:
		return "resolved"
	case KindRejected:
		return "rejected"
	default:
		return "invalid"
	}
}

func invalidKind() {
	panic("lens: invalid outcome kind")
}

// Outcome is the state of an asynchronous operation: Empty, Deferred with a
// request token B, Resolved with a result A, or Rejected with an error E.
//
// The zero value is Empty. Exactly one payload is meaningful, selected by Kind.
type Outcome[A, B, E any] struct {
	kind     OutcomeKind
	resolved A
	deferred B
	rejected E
}

// Empty creates an Empty outcome.
func Empty[A, B, E any]() Outcome[A, B, E] {
	return Outcome[A, B, E]{kind: KindEmpty}
}

// Deferred creates a Deferred outcome carrying b.
// Type parameters are ordered so that B is inferred: Deferred[A, E](b).
func Deferred[A, E, B any](b B) Outcome[A, B, E] {
	return Outcome[A, B, E]{kind: KindDeferred, deferred: b}
}

// Resolved creates a Resolved outcome carrying a.
// Type parameters are ordered so that A is inferred: Resolved[B, E](a).
func Resolved[B, E, A any](a A) Outcome[A, B, E] {
	return Outcome[A, B, E]{kind: KindResolved, resolved: a}
}

// Rejected creates a Rejected outcome carrying e.
func Rejected[A, B, E any](e E) Outcome[A, B, E] {
	return Outcome[A, B, E]{kind: KindRejected, rejected: e}
}

// Kind returns the discriminant.
func (o Outcome[A, B, E]) Kind() OutcomeKind {
	return o.kind
}

// IsEmpty returns true if no operation has started.
func (o Outcome[A, B, E]) IsEmpty() bool { return o.kind == KindEmpty }

// IsDeferred returns true if the operation is in flight.
func (o Outcome[A, B, E]) IsDeferred() bool { return o.kind == KindDeferred }

// IsResolved returns true if the operation succeeded.
func (o Outcome[A, B, E]) IsResolved() bool { return o.kind == KindResolved }

// IsRejected returns true if the operation failed.
func (o Outcome[A, B, E]) IsRejected() bool { return o.kind == KindRejected }

// GetDeferred returns the request token and true, or zero and false.
func (o Outcome[A, B, E]) GetDeferred() (B, bool) {
	if o.kind == KindDeferred {
		return o.deferred, true
	}
	var zero B
	return zero, false
}

// GetResolved returns the result and true, or zero and false.
func (o Outcome[A, B, E]) GetResolved() (A, bool) {
	if o.kind == KindResolved {
		return o.resolved, true
	}
	var zero A
	return zero, false
}

// GetRejected returns the error and true, or zero and false.
func (o Outcome[A, B, E]) GetRejected() (E, bool) {
	if o.kind == KindRejected {
		return o.rejected, true
	}
	var zero E
	return zero, false
}

// MatchOutcome pattern matches on the Outcome, calling exactly one of the
// four case functions. Every case must be supplied.
func MatchOutcome[A, B, E, R any](
	o Outcome[A, B, E],
	onEmpty func() R,
	onDeferred func(B) R,
	onResolved func(A) R,
	onRejected func(E) R,
) R {
	switch o.kind {
	case KindEmpty:
		return onEmpty()
	case KindDeferred:
		return onDeferred(o.deferred)
	case KindResolved:
		return onResolved(o.resolved)
	case KindRejected:
		return onRejected(o.rejected)
	}
	invalidKind()
	var zero R
	return zero
}

// MapOutcome rewraps the payload of whichever case is present.
// The discriminant is preserved; Empty maps to Empty.
func MapOutcome[A, B, E, A2, B2, E2 any](
	o Outcome[A, B, E],
	fa func(A) A2,
	fb func(B) B2,
	fe func(E) E2,
) Outcome[A2, B2, E2] {
	return MatchOutcome(o,
		Empty[A2, B2, E2],
		func(b B) Outcome[A2, B2, E2] { return Deferred[A2, E2](fb(b)) },
		func(a A) Outcome[A2, B2, E2] { return Resolved[B2, E2](fa(a)) },
		func(e E) Outcome[A2, B2, E2] { return Rejected[A2, B2](fe(e)) },
	)
}
