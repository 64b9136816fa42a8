// Package hashlist implements an ordered collection of unique values.
//
// A List keeps its values in a doubly linked sequence and indexes every
// value to its node in a hash map, so inserting at any position, removing
// and looking up a value all take O(1) expected time while the order of the
// values is fully controlled by the caller.
//
// Inserting a value that is already present moves it instead of adding a
// second copy. A List is not safe for concurrent use.
package hashlist

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sunfirefox/hash-accelerated-list/linkedlist"
	"github.com/sunfirefox/hash-accelerated-list/utils"
)

type (
	List[T comparable] struct {
		seq   *linkedlist.List[T]
		index map[T]*linkedlist.Element[T]
	}

	ForEachFn[T comparable]      func(value T, order int)
	ForEachUntilFn[T comparable] func(value T, order int) bool
	LessFn[T comparable]         func(a, b T) (less bool)

	config struct {
		capacity int
	}

	Option func(c *config)
)

// WithCapacity presizes the index for n values
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func New[T comparable](options ...Option) *List[T] {
	var cfg config
	for _, o := range options {
		o(&cfg)
	}

	return &List[T]{
		seq:   linkedlist.New[T](),
		index: make(map[T]*linkedlist.Element[T], cfg.capacity),
	}
}

// FromSlice inserts items at the back one by one,
// a repeated item ends up where its last occurrence is.
func FromSlice[T comparable](items []T, options ...Option) *List[T] {
	l := New[T](append([]Option{WithCapacity(len(items))}, options...)...)
	for _, item := range items {
		l.InsertBack(item)
	}
	return l
}

func (l *List[T]) Len() int {
	return len(l.index)
}

func (l *List[T]) Contains(value T) bool {
	_, found := l.index[value]
	return found
}

// Find returns the position of value
func (l *List[T]) Find(value T) (Position[T], bool) {
	el, found := l.index[value]
	if !found {
		return l.End(), false
	}
	return Position[T]{list: l, el: el}, true
}

func (l *List[T]) Begin() Position[T] {
	return Position[T]{list: l, el: l.seq.Front()}
}

func (l *List[T]) End() Position[T] {
	return Position[T]{list: l}
}

func (l *List[T]) Front() (T, bool) {
	if el := l.seq.Front(); el != nil {
		return el.Value, true
	}
	return utils.GetZero[T](), false
}

func (l *List[T]) Back() (T, bool) {
	if el := l.seq.Back(); el != nil {
		return el.Value, true
	}
	return utils.GetZero[T](), false
}

// InsertBefore puts value right before pos, or at the back when pos is End.
// A value that is already in the list is moved rather than duplicated.
// Inserting a value before its own position leaves the list as it is.
func (l *List[T]) InsertBefore(pos Position[T], value T) (Position[T], error) {
	if !l.owns(pos) {
		return l.End(), errors.Wrapf(ErrInvalidPosition, "could not insert %v", value)
	}

	return l.insertBefore(pos.el, value), nil
}

// InsertAfter puts value right after pos, pos must not be End.
func (l *List[T]) InsertAfter(pos Position[T], value T) (Position[T], error) {
	if !l.owns(pos) || pos.el == nil {
		return l.End(), errors.Wrapf(ErrInvalidPosition, "could not insert %v after", value)
	}

	existing, found := l.index[value]
	if !found {
		el := l.seq.InsertAfter(value, pos.el)
		l.index[value] = el
		return Position[T]{list: l, el: el}, nil
	}

	l.seq.MoveAfter(existing, pos.el)
	return Position[T]{list: l, el: existing}, nil
}

func (l *List[T]) InsertFront(value T) Position[T] {
	return l.insertBefore(l.seq.Front(), value)
}

func (l *List[T]) InsertBack(value T) Position[T] {
	return l.insertBefore(nil, value)
}

// Remove is a no-op for a value that is not in the list
func (l *List[T]) Remove(value T) bool {
	el, found := l.index[value]
	if !found {
		return false
	}

	l.seq.Remove(el)
	delete(l.index, value)
	return true
}

// Erase removes the element at pos and returns the position that followed it,
// so elements can be dropped while traversing.
func (l *List[T]) Erase(pos Position[T]) (Position[T], error) {
	if !l.owns(pos) || pos.el == nil {
		return l.End(), errors.Wrap(ErrInvalidPosition, "could not erase")
	}

	next := pos.Next()
	l.seq.Remove(pos.el)
	delete(l.index, pos.el.Value)
	return next, nil
}

func (l *List[T]) Clear() {
	l.seq.Init()
	l.index = make(map[T]*linkedlist.Element[T])
}

func (l *List[T]) Items() []T {
	items := make([]T, 0, l.Len())
	for curr := l.seq.Front(); curr != nil; curr = curr.Next() {
		items = append(items, curr.Value)
	}
	return items
}

func (l *List[T]) ForEach(f ForEachFn[T]) {
	order := 0
	for curr := l.seq.Front(); curr != nil; curr = curr.Next() {
		f(curr.Value, order)
		order++
	}
}

func (l *List[T]) ForEachUntil(f ForEachUntilFn[T]) *List[T] {
	order := 0
	for curr := l.seq.Front(); curr != nil; curr = curr.Next() {
		if canGoOn := f(curr.Value, order); !canGoOn {
			break
		}
		order++
	}
	return l
}

// Values streams the list in order until it is exhausted or ctx is done.
// The list must not be modified before the channel is closed.
func (l *List[T]) Values(ctx context.Context) <-chan T {
	resultCh := make(chan T)

	go func() {
		defer close(resultCh)

		for curr := l.seq.Front(); curr != nil; curr = curr.Next() {
			select {
			case <-ctx.Done():
				return
			case resultCh <- curr.Value:
			}
		}
	}()

	return resultCh
}

func (l *List[T]) Clone() *List[T] {
	result := New[T](WithCapacity(l.Len()))
	for curr := l.seq.Front(); curr != nil; curr = curr.Next() {
		result.InsertBack(curr.Value)
	}
	return result
}

// SortBy - sorts a clone of the list and returns it
func (l *List[T]) SortBy(lessFn LessFn[T]) *List[T] {
	clone := l.Clone()
	clone.seq.Sort(linkedlist.LessFn[T](lessFn))
	return clone
}

// SortInPlaceBy - sorts the list in place, positions remain valid
func (l *List[T]) SortInPlaceBy(lessFn LessFn[T]) *List[T] {
	l.seq.Sort(linkedlist.LessFn[T](lessFn))
	return l
}

// insertBefore expects mark to be either nil (the end) or owned by l.
// The target is captured in mark before anything is unlinked, and a
// relocation only relinks the existing node, so the index never changes
// for a value that is already present.
func (l *List[T]) insertBefore(mark *linkedlist.Element[T], value T) Position[T] {
	existing, found := l.index[value]
	if found {
		switch {
		case existing == mark:
		case mark == nil:
			l.seq.MoveToBack(existing)
		default:
			l.seq.MoveBefore(existing, mark)
		}
		return Position[T]{list: l, el: existing}
	}

	var el *linkedlist.Element[T]
	if mark == nil {
		el = l.seq.PushBack(value)
	} else {
		el = l.seq.InsertBefore(value, mark)
	}
	l.index[value] = el
	return Position[T]{list: l, el: el}
}

func (l *List[T]) owns(pos Position[T]) bool {
	if pos.list != l {
		return false
	}
	if pos.el == nil {
		return true
	}

	el, found := l.index[pos.el.Value]
	return found && el == pos.el
}
