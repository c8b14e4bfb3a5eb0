package clist

// This file holds the in-place structural algorithms over the ring.
// None of them allocate or move payloads; they work by pointer surgery
// alone, and every one of them leaves the chain circular and doubly
// consistent on return.

// Middle returns the structural middle of l, or nil if l is empty.
//
// Two cursors start at the first and the last element and step toward
// each other until they meet or become adjacent. For n elements the
// returned node sits at 0-based index (n-1)/2 from the front: the sole
// element for n=1, the first of the two central elements for even n.
func (l *List[T]) Middle() *Node[T] {
	if l.IsEmpty() {
		return nil
	}
	if l.IsSingular() {
		return l.root.next
	}
	forward, backward := l.root.next, l.root.prev
	for forward != backward && forward.next != backward {
		forward = forward.next
		backward = backward.prev
	}
	return forward
}

// Reverse reverses the element order of l in one pass by swapping the
// next/prev references of every node, then of the sentinel itself.
// No-op on an empty list.
func (l *List[T]) Reverse() {
	if l.IsEmpty() {
		return
	}
	for n := l.root.next; n != &l.root; {
		next := n.next
		n.next, n.prev = n.prev, next
		n = next
	}
	l.root.next, l.root.prev = l.root.prev, l.root.next
}

// SwapPairs relinks every two adjacent elements (1st with 2nd, 3rd with
// 4th, ...). An odd final element stays in place. No-op on an empty or
// singular list.
func (l *List[T]) SwapPairs() {
	if l.IsEmpty() {
		return
	}
	n1 := l.root.next
	n2 := n1.next
	for n1 != &l.root && n2 != &l.root {
		n1.prev.next = n2
		n2.prev = n1.prev
		n2.next.prev = n1
		n1.next = n2.next
		n2.next = n1
		n1.prev = n2
		n1 = n1.next
		n2 = n1.next
	}
}

// Merge merges sorted list other into sorted list l, consuming other
// (it ends empty). The comparator is expected to return 0 if a == b,
// a negative value if a < b, and a positive value if a > b.
//
// The scan in l advances only while strictly less than other's current
// head, so an element of other that ties with an element of l is
// inserted before it. Once the scan reaches l's sentinel the remainder
// of other is spliced onto the tail in one O(1) operation. O(n+m).
func (l *List[T]) Merge(other *List[T], compare func(a, b T) int) {
	l.lazyInit()
	other.lazyInit()
	n1 := l.root.next
	for !other.IsEmpty() {
		n2 := other.root.next
		for n1 != &l.root && compare(n1.Value, n2.Value) < 0 {
			n1 = n1.next
		}
		if n1 == &l.root {
			l.SpliceTail(other)
			return
		}
		l.MoveBefore(n2, n1)
	}
}

// Sort sorts l in place with a recursive merge sort: locate the middle,
// cut the back half under a stack-local sentinel, sort both halves and
// merge them back. No-op on an empty or singular list.
//
// The split point is found by the two-cursor walk at every level, so
// each level costs O(n); total O(n log n), recursion depth O(log n).
func (l *List[T]) Sort(compare func(a, b T) int) {
	if l.IsEmpty() || l.IsSingular() {
		return
	}
	var back List[T]
	l.CutPosition(&back, l.Middle().next)
	l.Sort(compare)
	back.Sort(compare)
	l.Merge(&back, compare)
}
