// Package arrx provides generic operations over fixed-length sequences:
// construction, access, folds, maps and zips. Every operation is pure and
// returns a new value; a Seq never changes after it is built.
package arrx

import (
	"fmt"
	"iter"
	"slices"
)

// Seq is a fixed-length sequence of elements of type T.
//
// The length is set at construction and never changes. The zero value is
// the valid empty sequence. The backing storage is never shared: all
// constructors copy their input and Slice returns a copy, so no caller can
// alias or mutate a sequence after the fact.
type Seq[T any] struct {
	elems []T
}

// Of returns a sequence holding the given elements.
func Of[T any](elems ...T) Seq[T] {
	return Seq[T]{elems: slices.Clone(elems)}
}

// FromSlice returns a sequence holding a copy of s.
func FromSlice[T any](s []T) Seq[T] {
	return Seq[T]{elems: slices.Clone(s)}
}

// FromFunc returns a sequence of length n whose i-th element is f(i).
// It panics if n is negative.
func FromFunc[T any](n int, f func(int) T) Seq[T] {
	if n < 0 {
		panic(fmt.Sprintf("arrx: FromFunc with negative length %d", n))
	}
	elems := make([]T, n)
	for i := range elems {
		elems[i] = f(i)
	}
	return Seq[T]{elems: elems}
}

// Repeat returns a sequence of n copies of v. It panics if n is negative.
func Repeat[T any](n int, v T) Seq[T] {
	if n < 0 {
		panic(fmt.Sprintf("arrx: Repeat with negative length %d", n))
	}
	elems := make([]T, n)
	for i := range elems {
		elems[i] = v
	}
	return Seq[T]{elems: elems}
}

// Collect builds a sequence of length n from the first n values of the
// iterator. It reports false when the iterator yields fewer than n values;
// values past the n-th are left unconsumed.
func Collect[T any](n int, it iter.Seq[T]) (Seq[T], bool) {
	if n < 0 {
		panic(fmt.Sprintf("arrx: Collect with negative length %d", n))
	}
	if n == 0 {
		return Seq[T]{}, true
	}
	elems := make([]T, 0, n)
	for v := range it {
		elems = append(elems, v)
		if len(elems) == n {
			return Seq[T]{elems: elems}, true
		}
	}
	return Seq[T]{}, false
}

// Len returns the number of elements.
func (s Seq[T]) Len() int { return len(s.elems) }

// IsEmpty reports whether the sequence has length zero.
func (s Seq[T]) IsEmpty() bool { return len(s.elems) == 0 }

// First returns the first element, or ok=false for the empty sequence.
func (s Seq[T]) First() (T, bool) {
	if len(s.elems) == 0 {
		var zero T
		return zero, false
	}
	return s.elems[0], true
}

// Last returns the last element, or ok=false for the empty sequence.
func (s Seq[T]) Last() (T, bool) {
	if len(s.elems) == 0 {
		var zero T
		return zero, false
	}
	return s.elems[len(s.elems)-1], true
}

// At returns the element at index i, or ok=false when i is out of range.
func (s Seq[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.elems) {
		var zero T
		return zero, false
	}
	return s.elems[i], true
}

// Slice returns a copy of the elements, nil for the empty sequence. The
// caller owns the result and may modify it freely.
func (s Seq[T]) Slice() []T {
	if len(s.elems) == 0 {
		return nil
	}
	return slices.Clone(s.elems)
}

// Values returns an iterator over the elements in index order.
func (s Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.elems {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over index/element pairs in index order.
func (s Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Map returns a new sequence whose i-th element is f applied to the i-th
// element of s. Length and element type are unchanged and s itself is
// untouched. Use MapTo when f changes the element type.
func (s Seq[T]) Map(f func(T) T) Seq[T] {
	out := make([]T, len(s.elems))
	for i, v := range s.elems {
		out[i] = f(v)
	}
	return Seq[T]{elems: out}
}
