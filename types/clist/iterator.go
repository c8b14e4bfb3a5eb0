package clist

// Iterator with ability to validate himself when current element is
// unlinked from the list. Only the current element may be unlinked
// between two Next calls; unlinking any other element invalidates the
// iterator.
type Iterator[T any] struct {
	list    *List[T]
	prev    *Node[T]
	current *Node[T]
	next    *Node[T]
}

// Iterator creates an iterator over l. The iterator is not positioned
// until the first Next() call.
func (l *List[T]) Iterator() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{
		list:    l,
		prev:    &l.root,
		current: nil,
		next:    nil,
	}
}

func (it *Iterator[T]) Current() *Node[T] {
	return it.current
}

func (it *Iterator[T]) Next() bool {
	// 1. start iteration
	if it.prev == &it.list.root && it.current == nil {
		it.current = it.list.Front()
	} else // 2. check first element is unlinked
	if it.prev == &it.list.root && it.current != it.list.Front() {
		it.current = it.list.Front()
	} else // 3. check middle element is unlinked
	if it.prev != &it.list.root && it.prev.next != it.current {
		it.current = it.prev.next
		if it.current == &it.list.root {
			it.current = nil
		}
	} else { // 4. no changes in list
		it.prev = it.current
		it.current = it.next
	}

	if it.current == nil {
		return false
	}
	it.next = it.current.next
	if it.next == &it.list.root {
		it.next = nil
	}
	return true
}

func (it *Iterator[T]) Valid() bool {
	return it.current != nil
}
