package linkedlist

type (
	// Element is a node of the List. A pointer to an element stays valid
	// until the element itself is removed, no matter what happens to the rest
	// of the list.
	Element[T any] struct {
		next, prev *Element[T]
		list       *List[T]
		Value      T
	}

	// List is a doubly linked list built around a sentinel root element.
	// The zero value must be initialized with Init before use.
	List[T any] struct {
		root Element[T]
		len  int
	}

	LessFn[T any] func(a, b T) (less bool)
)

func (e *Element[T]) Next() *Element[T] {
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

func New[T any]() *List[T] {
	return new(List[T]).Init()
}

// Init clears the list
func (l *List[T]) Init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// Owns reports whether e is currently linked into l
func (l *List[T]) Owns(e *Element[T]) bool {
	return e != nil && e.list == l
}

func (l *List[T]) PushFront(v T) *Element[T] {
	l.lazyInit()
	return l.insertValue(v, &l.root)
}

func (l *List[T]) PushBack(v T) *Element[T] {
	l.lazyInit()
	return l.insertValue(v, l.root.prev)
}

// InsertBefore returns nil when mark does not belong to l
func (l *List[T]) InsertBefore(v T, mark *Element[T]) *Element[T] {
	if !l.Owns(mark) {
		return nil
	}
	return l.insertValue(v, mark.prev)
}

// InsertAfter returns nil when mark does not belong to l
func (l *List[T]) InsertAfter(v T, mark *Element[T]) *Element[T] {
	if !l.Owns(mark) {
		return nil
	}
	return l.insertValue(v, mark)
}

func (l *List[T]) Remove(e *Element[T]) (v T) {
	if e == nil {
		return v
	}
	if l.Owns(e) {
		l.remove(e)
	}
	return e.Value
}

func (l *List[T]) MoveToFront(e *Element[T]) {
	if !l.Owns(e) || l.root.next == e {
		return
	}
	l.move(e, &l.root)
}

func (l *List[T]) MoveToBack(e *Element[T]) {
	if !l.Owns(e) || l.root.prev == e {
		return
	}
	l.move(e, l.root.prev)
}

func (l *List[T]) MoveBefore(e, mark *Element[T]) {
	if e == mark || !l.Owns(e) || !l.Owns(mark) {
		return
	}
	l.move(e, mark.prev)
}

func (l *List[T]) MoveAfter(e, mark *Element[T]) {
	if e == mark || !l.Owns(e) || !l.Owns(mark) {
		return
	}
	l.move(e, mark)
}

// Sort is a stable merge sort over the links. Elements are relinked,
// never copied, so outstanding handles keep pointing at the same values.
func (l *List[T]) Sort(less LessFn[T]) {
	if l.len < 2 {
		return
	}

	head := l.root.next
	l.root.prev.next = nil
	head = mergeSort(head, less)

	prev := &l.root
	for curr := head; curr != nil; curr = curr.next {
		curr.prev = prev
		prev = curr
	}
	prev.next = &l.root
	l.root.prev = prev
	l.root.next = head
}

func (l *List[T]) insertValue(v T, at *Element[T]) *Element[T] {
	return l.insert(&Element[T]{Value: v}, at)
}

// insert links e right after at
func (l *List[T]) insert(e, at *Element[T]) *Element[T] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

func (l *List[T]) remove(e *Element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--
}

func (l *List[T]) move(e, at *Element[T]) {
	if e == at {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev

	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
}

// mergeSort works on a nil terminated chain linked through next only
func mergeSort[T any](head *Element[T], less LessFn[T]) *Element[T] {
	if head == nil || head.next == nil {
		return head
	}

	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	second := slow.next
	slow.next = nil

	return merge(mergeSort(head, less), mergeSort(second, less), less)
}

func merge[T any](a, b *Element[T], less LessFn[T]) *Element[T] {
	var dummy Element[T]
	tail := &dummy
	for a != nil && b != nil {
		// take from b only when strictly less to keep equal values in order
		if less(b.Value, a.Value) {
			tail.next = b
			b = b.next
		} else {
			tail.next = a
			a = a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return dummy.next
}
