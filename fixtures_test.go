// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens_test

import (
	"math/rand/v2"

	"code.hybscloud.com/lens"
)

// record is a two-field state with disjoint lenses.
type record struct {
	A int32
	B string
}

func recordA() lens.Func[record, int32] {
	return lens.Field(func(r *record) *int32 { return &r.A })
}

func recordB() lens.Func[record, string] {
	return lens.Field(func(r *record) *string { return &r.B })
}

// wrapper nests a record one level down.
type wrapper struct {
	Inner record
	Tag   string
}

func wrapperInner() lens.Func[wrapper, record] {
	return lens.Field(func(w *wrapper) *record { return &w.Inner })
}

// Status is Outcome[int result, string request, string error].
type Status = lens.Outcome[int, string, string]

// album holds a load status next to unrelated data.
type album struct {
	Title  string
	Tracks Status
}

// library is the root state: the owner is paired as context with the album.
type library struct {
	Owner string
	Album album
	Plays int
}

func libraryOwner() lens.Func[library, string] {
	return lens.Field(func(l *library) *string { return &l.Owner })
}

func libraryAlbum() lens.Func[library, album] {
	return lens.Field(func(l *library) *album { return &l.Album })
}

func albumTracks() lens.Func[album, Status] {
	return lens.Field(func(a *album) *Status { return &a.Tracks })
}

// tags is a reference-typed payload that deep-copies on read.
type tags []string

func (t tags) Clone() tags {
	if t == nil {
		return nil
	}
	out := make(tags, len(t))
	copy(out, t)
	return out
}

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// randStatus returns a Status of a random kind with a random payload.
func randStatus(rng *rand.Rand) Status {
	switch lens.OutcomeKind(rng.IntN(4)) {
	case lens.KindDeferred:
		return lens.Deferred[int, string](randString(rng))
	case lens.KindResolved:
		return lens.Resolved[string, string](randInt(rng))
	case lens.KindRejected:
		return lens.Rejected[int, string](randString(rng))
	default:
		return lens.Empty[int, string, string]()
	}
}

// randCtxStatus returns a Status-shaped view of a random kind.
func randCtxStatus(rng *rand.Rand) lens.Outcome[lens.Ctx[string, int], lens.Ctx[string, string], lens.Ctx[string, string]] {
	return lens.MapOutcome(randStatus(rng),
		func(a int) lens.Ctx[string, int] { return lens.NewCtx(randString(rng), a) },
		func(b string) lens.Ctx[string, string] { return lens.NewCtx(randString(rng), b) },
		func(e string) lens.Ctx[string, string] { return lens.NewCtx(randString(rng), e) },
	)
}

func randLibrary(rng *rand.Rand) library {
	return library{
		Owner: randString(rng),
		Album: album{Title: randString(rng), Tracks: randStatus(rng)},
		Plays: randInt(rng),
	}
}
