// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lenstest checks the lens laws for use in tests.
//
// Equality is structural, through go-cmp. Unexported fields of types from
// package lens (Ctx, Outcome) are compared automatically; other types with
// unexported fields need the usual cmp options (cmp.AllowUnexported,
// cmpopts.EquateErrors, ...), passed as the trailing opts.
package lenstest

import (
	"fmt"
	"reflect"
	"testing"

	"code.hybscloud.com/lens"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
)

// Law names a lens law.
type Law string

const (
	// GetPut is Set(s, Get(s)) == s.
	GetPut Law = "get-put"
	// PutGet is Get(Set(s, v)) == v.
	PutGet Law = "put-get"
	// PutPut is Set(Set(s, v), w) == Set(s, w).
	PutPut Law = "put-put"
)

// LawError reports a violated law with a cmp diff (-want +got).
type LawError struct {
	Law  Law
	Diff string
}

func (e *LawError) Error() string {
	return fmt.Sprintf("lenstest: %s law violated (-want +got):\n%s", e.Law, e.Diff)
}

var lensPkgPath = reflect.TypeFor[lens.Ctx[int, int]]().PkgPath()

func options(opts []cmp.Option) []cmp.Option {
	out := make([]cmp.Option, 0, len(opts)+1)
	out = append(out, cmp.Exporter(func(t reflect.Type) bool {
		return t.PkgPath() == lensPkgPath
	}))
	return append(out, opts...)
}

func check[T any](law Law, want, got T, opts []cmp.Option) error {
	if diff := cmp.Diff(want, got, options(opts)...); diff != "" {
		return &LawError{Law: law, Diff: diff}
	}
	return nil
}

// CheckGetPut reports whether writing back what was read leaves s unchanged.
func CheckGetPut[S, V any](l lens.Lens[S, V], s S, opts ...cmp.Option) error {
	return check(GetPut, s, l.Set(s, l.Get(s)), opts)
}

// CheckPutGet reports whether reading after writing v returns v.
func CheckPutGet[S, V any](l lens.Lens[S, V], s S, v V, opts ...cmp.Option) error {
	return check(PutGet, v, l.Get(l.Set(s, v)), opts)
}

// CheckPutPut reports whether a write of w fully supersedes a prior write of v.
//
// PutPut is not required of a lawful lens. lens.InOutcome does not satisfy
// it: writing Empty keeps whatever context an earlier write left behind.
func CheckPutPut[S, V any](l lens.Lens[S, V], s S, v, w V, opts ...cmp.Option) error {
	return check(PutPut, l.Set(s, w), l.Set(l.Set(s, v), w), opts)
}

// CheckLaws checks get-put on s and put-get of v on s.
// All violations are returned, combined; multierr.Errors splits them.
func CheckLaws[S, V any](l lens.Lens[S, V], s S, v V, opts ...cmp.Option) error {
	return multierr.Combine(
		CheckGetPut(l, s, opts...),
		CheckPutGet(l, s, v, opts...),
	)
}

// Verify reports every law CheckLaws finds violated as a test error.
func Verify[S, V any](tb testing.TB, l lens.Lens[S, V], s S, v V, opts ...cmp.Option) {
	tb.Helper()
	if err := CheckLaws(l, s, v, opts...); err != nil {
		tb.Error(err)
	}
}
