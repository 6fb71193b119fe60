// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens_test

import (
	"testing"

	"code.hybscloud.com/lens"
)

// BenchmarkFieldSet measures a single field write through Field.
func BenchmarkFieldSet(b *testing.B) {
	l := recordA()
	r := record{A: 1, B: "b"}
	for b.Loop() {
		r = l.Set(r, r.A+1)
	}
}

// BenchmarkMakeCtxGet measures pairing two fields into a Ctx.
func BenchmarkMakeCtxGet(b *testing.B) {
	l := lens.MakeCtx(recordA(), recordB())
	r := record{A: 1, B: "b"}
	for b.Loop() {
		_ = l.Get(r)
	}
}

// BenchmarkMakeCtxSet measures the two-phase write of MakeCtx.
func BenchmarkMakeCtxSet(b *testing.B) {
	l := lens.MakeCtx(recordA(), recordB())
	r := record{A: 1, B: "b"}
	v := lens.NewCtx(int32(2), "c")
	for b.Loop() {
		r = l.Set(r, v)
	}
}

// BenchmarkMapCtxSet measures a payload write that carries the context.
func BenchmarkMapCtxSet(b *testing.B) {
	l := lens.MapCtx[string](recordB())
	pv := lens.NewCtx("u1", record{A: 1, B: "b"})
	pu := lens.NewCtx("u2", "c")
	for b.Loop() {
		pv = l.Set(pv, pu)
	}
}

// BenchmarkInOutcomeGet measures distributing the context into an Outcome.
func BenchmarkInOutcomeGet(b *testing.B) {
	l := lens.InOutcome[string, int, string, string]()
	pv := lens.NewCtx("u1", lens.Resolved[string, string](42))
	for b.Loop() {
		_ = l.Get(pv)
	}
}

// BenchmarkDeepGetSet measures a read-modify-write three levels deep.
func BenchmarkDeepGetSet(b *testing.B) {
	l := libraryTracks()
	s := library{
		Owner: "u1",
		Album: album{Title: "t", Tracks: lens.Resolved[string, string](1)},
	}
	for b.Loop() {
		s = l.Set(s, l.Get(s))
	}
}
