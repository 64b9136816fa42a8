package hashlist

import (
	"github.com/sunfirefox/hash-accelerated-list/linkedlist"
	"github.com/sunfirefox/hash-accelerated-list/utils"
)

// Position is a read-only handle to a slot of a List, or to the end marker
// right after the last element. It stays valid until the element it points
// to is removed; inserting or removing other elements does not affect it.
// Positions are comparable, so p == l.End() is the usual loop condition.
type Position[T comparable] struct {
	list *List[T]
	el   *linkedlist.Element[T]
}

// Value of the element, zero value for the end marker
func (p Position[T]) Value() T {
	if p.el == nil {
		return utils.GetZero[T]()
	}
	return p.el.Value
}

func (p Position[T]) IsEnd() bool {
	return p.list != nil && p.el == nil
}

// Valid reports whether p still points into its list
func (p Position[T]) Valid() bool {
	return p.list != nil && p.list.owns(p)
}

// Next returns the following position, End after the last element
func (p Position[T]) Next() Position[T] {
	if p.el == nil {
		return p
	}
	return Position[T]{list: p.list, el: p.el.Next()}
}

// Prev returns the preceding position. Prev of End is the last element,
// Prev of the first element is End.
func (p Position[T]) Prev() Position[T] {
	if p.list == nil {
		return p
	}
	if p.el == nil {
		return Position[T]{list: p.list, el: p.list.seq.Back()}
	}
	return Position[T]{list: p.list, el: p.el.Prev()}
}
