package clist

// Node is a single link record of a circular doubly linked list.
// Every node of a chain is a Node, the sentinel included: element nodes
// carry a payload in Value, the sentinel's Value stays zero. Once a node
// is linked, next and prev are never nil; a detached node references
// itself both ways.
type Node[T any] struct {
	Value      T
	next, prev *Node[T]
}

// Init makes n a detached singleton referencing itself both ways,
// safe to link, reuse or release independently.
func (n *Node[T]) Init() {
	n.next = n
	n.prev = n
}

// Next returns the successor of n in the ring. At the last element it
// returns the sentinel, never nil.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the predecessor of n in the ring. At the first element it
// returns the sentinel, never nil.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List represents a circular doubly linked list anchored by a
// payload-less sentinel node.
//
// The sentinel's next is the first element and its prev is the last
// element; an empty list is a sentinel referencing itself. The list
// keeps no element count: Len is a full traversal. That is what keeps
// CutPosition and SpliceTail O(1), since no bookkeeping has to follow a
// moved segment between two sentinels.
//
// The zero value is an empty list ready to use.
// NOTE: Not thread-safe.
type List[T any] struct {
	root Node[T] // sentinel list element, only &root, root.prev, and root.next are used
}

// Init resets l to the empty state. Nodes linked before the call are
// abandoned, not detached.
func (l *List[T]) Init() {
	l.root.Init()
}

// lazyInit lazily initializes a zero List value.
func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.Init()
	}
}

// IsEmpty reports whether l holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.root.next == nil || l.root.next == &l.root
}

// IsSingular reports whether l holds exactly one element.
func (l *List[T]) IsSingular() bool {
	return !l.IsEmpty() && l.root.next == l.root.prev
}

// Front returns the first element of list l or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	if l.IsEmpty() {
		return nil
	}
	return l.root.next
}

// Back returns the last element of list l or nil if the list is empty.
func (l *List[T]) Back() *Node[T] {
	if l.IsEmpty() {
		return nil
	}
	return l.root.prev
}

// End returns the sentinel of l. Ring walks terminate on it:
//
//	for n := l.Front(); n != l.End(); n = n.Next() { ... }
func (l *List[T]) End() *Node[T] {
	l.lazyInit()
	return &l.root
}

// Len counts the elements of l by full traversal. No count is cached,
// so this is O(n).
func (l *List[T]) Len() int {
	count := 0
	for n := l.root.next; n != nil && n != &l.root; n = n.next {
		count++
	}
	return count
}

// insert splices detached node n between at and at.next.
func (l *List[T]) insert(n, at *Node[T]) {
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
}

// PushFront links detached node n as the first element of l.
func (l *List[T]) PushFront(n *Node[T]) {
	l.lazyInit()
	l.insert(n, &l.root)
}

// PushBack links detached node n as the last element of l.
func (l *List[T]) PushBack(n *Node[T]) {
	l.lazyInit()
	l.insert(n, l.root.prev)
}

// InsertAfter splices detached node n immediately after at, which must
// be linked into l (the sentinel counts).
func (l *List[T]) InsertAfter(n, at *Node[T]) {
	l.lazyInit()
	l.insert(n, at)
}

// InsertBefore splices detached node n immediately before at, which
// must be linked into l (the sentinel counts).
func (l *List[T]) InsertBefore(n, at *Node[T]) {
	l.lazyInit()
	l.insert(n, at.prev)
}

// Unlink removes n from the ring, reconnecting its former neighbors,
// and reinitializes n to a detached singleton. The payload is retained:
// ownership of the node moves to the caller.
func (l *List[T]) Unlink(n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.Init()
}

// MoveBefore unlinks n from wherever it is linked and reinserts it
// immediately before at. Both chains stay circular across the move.
func (l *List[T]) MoveBefore(n, at *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	l.insert(n, at.prev)
}

// CutPosition detaches the segment from at through the last element of
// l and re-homes it under dst, which must be empty. l keeps the prefix
// up to at's predecessor. O(1): only the four boundary references
// change. No-op when l is empty or at is l's sentinel.
func (l *List[T]) CutPosition(dst *List[T], at *Node[T]) {
	l.lazyInit()
	dst.lazyInit()
	if l.IsEmpty() || at == &l.root {
		return
	}
	last := l.root.prev
	// Close l around the removed segment
	l.root.prev = at.prev
	at.prev.next = &l.root
	// Home the segment under dst's sentinel
	dst.root.next = at
	at.prev = &dst.root
	dst.root.prev = last
	last.next = &dst.root
}

// SpliceTail appends every element of src to the back of l in one
// splice, leaving src empty. O(1).
func (l *List[T]) SpliceTail(src *List[T]) {
	l.lazyInit()
	src.lazyInit()
	if src.IsEmpty() {
		return
	}
	first, last := src.root.next, src.root.prev
	at := l.root.prev
	at.next = first
	first.prev = at
	last.next = &l.root
	l.root.prev = last
	src.root.Init()
}
