package set

import (
	"github.com/sunfirefox/hash-accelerated-list/hashlist"
)

// OrderedSet keeps items in the order they were first inserted
type OrderedSet[T comparable] struct {
	list *hashlist.List[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		list: hashlist.New[T](),
	}
}

// Insert does not move an item that is already in the set
func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if !s.list.Contains(item) {
		s.list.InsertBack(item)
		modified = true
	}

	return modified
}

// Touch moves the item to the back of the set, inserting it when missing
func (s *OrderedSet[T]) Touch(item T) (existed bool) {
	existed = s.list.Contains(item)
	s.list.InsertBack(item)
	return existed
}

func (s *OrderedSet[T]) Clear() {
	s.list.Clear()
}

func (s *OrderedSet[T]) Remove(item T) bool {
	return s.list.Remove(item)
}

func (s *OrderedSet[T]) Items() []T {
	return s.list.Items()
}

func (s *OrderedSet[T]) Has(item T) bool {
	return s.list.Contains(item)
}

func (s *OrderedSet[T]) Len() int {
	return s.list.Len()
}

// Oldest returns the item that has been in the set the longest
// without being touched
func (s *OrderedSet[T]) Oldest() (T, bool) {
	return s.list.Front()
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

// View exposes the set in order without letting callers modify it
func (s *OrderedSet[T]) View() hashlist.View[T] {
	return s.list.View()
}
