package arrx

import "fmt"

// Resize returns a sequence of length n: a prefix of s when n is smaller,
// s extended with copies of fill when n is larger. It panics if n is
// negative.
func (s Seq[T]) Resize(n int, fill T) Seq[T] {
	if n < 0 {
		panic(fmt.Sprintf("arrx: Resize with negative length %d", n))
	}
	out := make([]T, n)
	for i := copy(out, s.elems); i < n; i++ {
		out[i] = fill
	}
	return Seq[T]{elems: out}
}

// ResizeWith is Resize with generated fill: each element of the extension
// is f(i), where i is its index in the result.
func (s Seq[T]) ResizeWith(n int, f func(int) T) Seq[T] {
	if n < 0 {
		panic(fmt.Sprintf("arrx: ResizeWith with negative length %d", n))
	}
	out := make([]T, n)
	for i := copy(out, s.elems); i < n; i++ {
		out[i] = f(i)
	}
	return Seq[T]{elems: out}
}

// Concat returns the elements of s followed by the elements of o.
func (s Seq[T]) Concat(o Seq[T]) Seq[T] {
	out := make([]T, 0, len(s.elems)+len(o.elems))
	out = append(out, s.elems...)
	out = append(out, o.elems...)
	return Seq[T]{elems: out}
}

// Split returns the first i elements and the remaining Len()-i elements
// as two independent sequences. It panics when i is outside [0, Len()].
func (s Seq[T]) Split(i int) (Seq[T], Seq[T]) {
	if i < 0 || i > len(s.elems) {
		panic(fmt.Sprintf("arrx: Split index %d out of range [0, %d]", i, len(s.elems)))
	}
	return FromSlice(s.elems[:i]), FromSlice(s.elems[i:])
}
