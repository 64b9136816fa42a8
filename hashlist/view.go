package hashlist

import "context"

// View is the read-only side of a List
type View[T comparable] interface {
	Len() int
	Contains(value T) bool
	Find(value T) (Position[T], bool)
	Begin() Position[T]
	End() Position[T]
	Front() (T, bool)
	Back() (T, bool)
	Items() []T
	ForEach(f ForEachFn[T])
	Values(ctx context.Context) <-chan T
}

var _ View[int] = (*List[int])(nil)

type view[T comparable] struct {
	l *List[T]
}

func (v view[T]) Len() int { return v.l.Len() }
func (v view[T]) Contains(value T) bool { return v.l.Contains(value) }
func (v view[T]) Find(value T) (Position[T], bool) { return v.l.Find(value) }
func (v view[T]) Begin() Position[T] { return v.l.Begin() }
func (v view[T]) End() Position[T] { return v.l.End() }
func (v view[T]) Front() (T, bool) { return v.l.Front() }
func (v view[T]) Back() (T, bool) { return v.l.Back() }
func (v view[T]) Items() []T { return v.l.Items() }
func (v view[T]) ForEach(f ForEachFn[T]) { v.l.ForEach(f) }
func (v view[T]) Values(ctx context.Context) <-chan T { return v.l.Values(ctx) }

// View wraps the list so that it can be handed out without exposing
// the methods that modify it. The view follows later changes to the list.
func (l *List[T]) View() View[T] {
	return view[T]{l: l}
}
