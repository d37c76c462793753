// Package list implements a generic persistent list.
//
// A list is a chain of immutable nodes, each holding one element and the rest
// of the list. A nil *List is the empty list, so the zero value is ready to use
// and every method may be called on it. Operations that "modify" a list return
// a new list instead; the receiver is never changed, which makes lists safe for
// concurrent use by any number of readers.
//
// All traversals are iterative, so long lists do not grow the goroutine stack.
package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/elves/conslist/pkg/persistent/hash"
)

// List is a persistent list. The nil value is a valid empty list.
type List[T any] struct {
	first T
	rest  *List[T]
	count int
}

// Empty returns the empty list of T. It is always nil.
func Empty[T any]() *List[T] {
	return nil
}

// Of returns a list of the given values, with values[0] as the first element.
func Of[T any](values ...T) *List[T] {
	return fromSlice(values)
}

func fromSlice[T any](values []T) *List[T] {
	var l *List[T]
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Cons(values[i])
	}
	return l
}

// Cons returns a new list with val in the front, followed by the receiver.
func (l *List[T]) Cons(val T) *List[T] {
	return &List[T]{val, l, l.Len() + 1}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// IsEmpty returns whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l == nil
}

// First returns the first element of the list. The second return value is
// false if the list is empty.
func (l *List[T]) First() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return l.first, true
}

// Last returns the last element of the list. The second return value is false
// if the list is empty.
func (l *List[T]) Last() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	for l.rest != nil {
		l = l.rest
	}
	return l.first, true
}

// Rest returns the list after the first element. The rest of an empty list is
// the empty list.
func (l *List[T]) Rest() *List[T] {
	if l == nil {
		return nil
	}
	return l.rest
}

// Init returns a new list with all the elements of the receiver except the
// last one. The receiver shares no nodes with the result.
func (l *List[T]) Init() *List[T] {
	if l.Len() <= 1 {
		return nil
	}
	values := make([]T, 0, l.Len()-1)
	for ; l.rest != nil; l = l.rest {
		values = append(values, l.first)
	}
	return fromSlice(values)
}

// Filter returns a new list with the elements for which f returns true, in
// their original order.
func (l *List[T]) Filter(f func(T) bool) *List[T] {
	var values []T
	for ; l != nil; l = l.rest {
		if f(l.first) {
			values = append(values, l.first)
		}
	}
	return fromSlice(values)
}

// Find returns the first element for which f returns true. The second return
// value is false if there is no such element. The function is not called on
// elements after the first match.
func (l *List[T]) Find(f func(T) bool) (T, bool) {
	for ; l != nil; l = l.rest {
		if f(l.first) {
			return l.first, true
		}
	}
	var zero T
	return zero, false
}

// Foldl folds the list from the left: for [a, b, c] it returns
// f(f(f(z, a), b), c).
func (l *List[T]) Foldl(z T, f func(acc, elem T) T) T {
	return FoldLeft(l, z, f)
}

// Foldr folds the list from the right: for [a, b, c] it returns
// f(f(f(z, c), b), a). Note that the accumulated value is always the first
// argument to f.
func (l *List[T]) Foldr(z T, f func(acc, elem T) T) T {
	return FoldRight(l, z, f)
}

// All returns an iterator over the elements, from first to last.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := l; p != nil; p = p.rest {
			if !yield(p.first) {
				return
			}
		}
	}
}

// Slice returns the elements of the list in a newly allocated slice. It
// returns nil for the empty list.
func (l *List[T]) Slice() []T {
	if l == nil {
		return nil
	}
	values := make([]T, 0, l.count)
	for ; l != nil; l = l.rest {
		values = append(values, l.first)
	}
	return values
}

// String returns the elements formatted with fmt's %v verb, separated by
// spaces and surrounded by brackets, like a slice.
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for p := l; p != nil; p = p.rest {
		if p != l {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, p.first)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Map returns a new list with f applied to each element of l. The function is
// called exactly once for each element, from first to last.
func Map[T, U any](l *List[T], f func(T) U) *List[U] {
	if l == nil {
		return nil
	}
	values := make([]U, 0, l.count)
	for ; l != nil; l = l.rest {
		values = append(values, f(l.first))
	}
	return fromSlice(values)
}

// FoldLeft is like (*List).Foldl, but allows the accumulator to have a
// different type from the elements.
func FoldLeft[T, A any](l *List[T], z A, f func(acc A, elem T) A) A {
	acc := z
	for ; l != nil; l = l.rest {
		acc = f(acc, l.first)
	}
	return acc
}

// FoldRight is like (*List).Foldr, but allows the accumulator to have a
// different type from the elements.
func FoldRight[T, A any](l *List[T], z A, f func(acc A, elem T) A) A {
	values := l.Slice()
	acc := z
	for i := len(values) - 1; i >= 0; i-- {
		acc = f(acc, values[i])
	}
	return acc
}

// Equal returns whether two lists have the same length and equal elements in
// the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for ; a != nil; a, b = a.rest, b.rest {
		if !eq(a.first, b.first) {
			return false
		}
	}
	return true
}

// Hash returns a hash of the list, computed by combining the hash of each
// element with h. The result depends on the order of elements; lists that are
// equal under an equality consistent with h have the same hash.
func Hash[T any](l *List[T], h func(T) uint32) uint32 {
	acc := hash.DJBInit
	for ; l != nil; l = l.rest {
		acc = hash.DJBCombine(acc, h(l.first))
	}
	return acc
}
