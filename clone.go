// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lens

// Cloner is implemented by values that own reference-typed storage
// (slices, maps, pointers) and must be deep-copied on read.
type Cloner[T any] interface {
	Clone() T
}

// Clone returns an independent copy of v.
// Values implementing Cloner[T] are copied with their Clone method;
// all other values are copied by assignment.
func Clone[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
