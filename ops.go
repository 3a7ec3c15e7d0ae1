package arrx

import (
	"fmt"
	"slices"
)

// The type-changing operations live here as package functions: Go methods
// cannot introduce type parameters beyond the receiver's.

// Fold reduces the sequence to a single value by applying f cumulatively
// to an accumulator and each element, in index order starting from init.
// The empty sequence yields init unchanged.
func Fold[T, A any](s Seq[T], init A, f func(A, T) A) A {
	acc := init
	for _, v := range s.elems {
		acc = f(acc, v)
	}
	return acc
}

// FoldR is Fold with the elements visited in reverse index order.
func FoldR[T, A any](s Seq[T], init A, f func(A, T) A) A {
	acc := init
	for i := len(s.elems) - 1; i >= 0; i-- {
		acc = f(acc, s.elems[i])
	}
	return acc
}

// MapTo returns a new sequence of the same length whose i-th element is
// f applied to the i-th element of s.
func MapTo[T, U any](s Seq[T], f func(T) U) Seq[U] {
	out := make([]U, len(s.elems))
	for i, v := range s.elems {
		out[i] = f(v)
	}
	return Seq[U]{elems: out}
}

// ZipWith combines a and b element-wise: the i-th element of the result
// is f(a[i], b[i]). The sequences must have equal length; a mismatch is a
// programmer error and panics.
func ZipWith[T, U, V any](a Seq[T], b Seq[U], f func(T, U) V) Seq[V] {
	if len(a.elems) != len(b.elems) {
		panic(fmt.Sprintf("arrx: ZipWith length mismatch (%d != %d)", len(a.elems), len(b.elems)))
	}
	out := make([]V, len(a.elems))
	for i, v := range a.elems {
		out[i] = f(v, b.elems[i])
	}
	return Seq[V]{elems: out}
}

// Zip3With is ZipWith over three equal-length sequences.
func Zip3With[T, U, V, W any](a Seq[T], b Seq[U], c Seq[V], f func(T, U, V) W) Seq[W] {
	if len(a.elems) != len(b.elems) || len(a.elems) != len(c.elems) {
		panic(fmt.Sprintf("arrx: Zip3With length mismatch (%d, %d, %d)",
			len(a.elems), len(b.elems), len(c.elems)))
	}
	out := make([]W, len(a.elems))
	for i, v := range a.elems {
		out[i] = f(v, b.elems[i], c.elems[i])
	}
	return Seq[W]{elems: out}
}

// Equal reports whether a and b have the same length and equal elements
// at every index.
func Equal[T comparable](a, b Seq[T]) bool {
	return slices.Equal(a.elems, b.elems)
}

// EqualFunc is Equal with a caller-supplied element comparison, which
// also allows the two sequences to differ in element type.
func EqualFunc[T, U any](a Seq[T], b Seq[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.elems, b.elems, eq)
}
