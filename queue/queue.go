// Package queue implements a sortable queue of ordered values backed by
// a circular sentinel-based doubly linked list, together with a set of
// in-place structural mutators: middle deletion, duplicate collapsing,
// pairwise swapping, reversal and merge sort. All mutators work by
// relinking nodes; payloads are never copied or reallocated.
package queue

import (
	"gopkg.in/typ.v4"

	"github.com/cryptonstudio/crypton-queue-engine/types/clist"
)

// Queue is a queue of ordered values. A nil *Queue is a valid "absent"
// handle: every method treats it as a queue that does not exist and
// reports absence instead of panicking, so callers may pass handles
// around without existence checks.
// NOTE: Not thread-safe.
type Queue[T typ.Ordered] struct {
	list  clist.List[T]
	alloc Allocator[T]
}

// New creates an empty queue with a dedicated element pool.
func New[T typ.Ordered]() *Queue[T] {
	return NewPooled[T](NewPooledAllocator[T]())
}

// NewPooled creates an empty queue using the given allocator for
// element creating/releasing.
func NewPooled[T typ.Ordered](alloc Allocator[T]) *Queue[T] {
	q := new(Queue[T])
	q.alloc = alloc
	q.list.Init()
	return q
}

// InsertHead inserts value v at the head of the queue.
// It reports ErrAllocationFailed if the allocator cannot supply an
// element; the queue is left exactly as it was in that case.
func (q *Queue[T]) InsertHead(v T) error {
	if q == nil {
		return ErrQueueNotExist
	}
	n, err := q.alloc.GetElement()
	if err != nil || n == nil {
		return ErrAllocationFailed
	}
	n.Value = v
	q.list.PushFront(n)
	return nil
}

// InsertTail inserts value v at the tail of the queue.
// Failure contract is the same as InsertHead.
func (q *Queue[T]) InsertTail(v T) error {
	if q == nil {
		return ErrQueueNotExist
	}
	n, err := q.alloc.GetElement()
	if err != nil || n == nil {
		return ErrAllocationFailed
	}
	n.Value = v
	q.list.PushBack(n)
	return nil
}

// RemoveHead unlinks the first element and returns it.
//
// Remove is not delete: the payload stays allocated and ownership of
// the element moves to the caller, who hands it back with
// ReleaseElement once done with the value.
func (q *Queue[T]) RemoveHead() (*clist.Node[T], error) {
	if q == nil {
		return nil, ErrQueueNotExist
	}
	n := q.list.Front()
	if n == nil {
		return nil, ErrQueueEmpty
	}
	q.list.Unlink(n)
	return n, nil
}

// RemoveTail unlinks the last element and returns it.
// Ownership contract is the same as RemoveHead.
func (q *Queue[T]) RemoveTail() (*clist.Node[T], error) {
	if q == nil {
		return nil, ErrQueueNotExist
	}
	n := q.list.Back()
	if n == nil {
		return nil, ErrQueueEmpty
	}
	q.list.Unlink(n)
	return n, nil
}

// Size returns the number of queued elements by full traversal,
// 0 for an absent or empty queue.
func (q *Queue[T]) Size() int {
	if q == nil {
		return 0
	}
	return q.list.Len()
}

// Values returns the queued values from head to tail. Used by harnesses
// and tests to inspect ordering.
func (q *Queue[T]) Values() []T {
	if q == nil {
		return nil
	}
	values := make([]T, 0, 8)
	for n := q.list.Front(); n != nil && n != q.list.End(); n = n.Next() {
		values = append(values, n.Value)
	}
	return values
}

// DeleteMiddle deletes the middle element, the one at 0-based index
// (n-1)/2 from the head, and releases it. It reports ErrQueueEmpty on
// an empty queue.
func (q *Queue[T]) DeleteMiddle() error {
	if q == nil {
		return ErrQueueNotExist
	}
	mid := q.list.Middle()
	if mid == nil {
		return ErrQueueEmpty
	}
	q.list.Unlink(mid)
	q.alloc.PutElement(mid)
	return nil
}

// DeleteDuplicates collapses every run of equal adjacent values to the
// run's last element, releasing the earlier ones. The queue must
// already be sorted ascending; the precondition is not verified.
// An empty queue is a valid no-op.
func (q *Queue[T]) DeleteDuplicates() error {
	if q == nil {
		return ErrQueueNotExist
	}
	it := q.list.Iterator()
	for it.Next() {
		n := it.Current()
		next := n.Next()
		if next != q.list.End() && typ.Compare(n.Value, next.Value) == 0 {
			q.list.Unlink(n)
			q.alloc.PutElement(n)
		}
	}
	return nil
}

// SwapPairs swaps every two adjacent elements by relinking them.
// With an odd element count the final element stays in place. No-op on
// an absent, empty or singular queue.
func (q *Queue[T]) SwapPairs() {
	if q == nil {
		return
	}
	q.list.SwapPairs()
}

// Reverse reverses the element order in place without allocating or
// moving payloads. No-op on an absent or empty queue.
func (q *Queue[T]) Reverse() {
	if q == nil {
		return
	}
	q.list.Reverse()
}

// Sort sorts the queue ascending with an in-place merge sort. No-op on
// an absent, empty or singular queue.
func (q *Queue[T]) Sort() {
	if q == nil {
		return
	}
	q.list.Sort(typ.Compare[T])
}

// ReleaseElement releases a detached element obtained from RemoveHead
// or RemoveTail. Releasing an element still linked into a queue
// corrupts the ring; use Free for whole-queue teardown.
func (q *Queue[T]) ReleaseElement(n *clist.Node[T]) {
	if q == nil || n == nil {
		return
	}
	q.alloc.PutElement(n)
}

// Free releases every queued element and resets the queue to empty.
// Safe to call on an absent queue.
func (q *Queue[T]) Free() {
	if q == nil {
		return
	}
	it := q.list.Iterator()
	for it.Next() {
		n := it.Current()
		q.list.Unlink(n)
		q.alloc.PutElement(n)
	}
	q.list.Init()
}

// CopyValue copies s into dst the way the remove contract promises a
// bounded caller: at most len(dst)-1 bytes followed by a zero byte.
// It returns the number of payload bytes copied. A zero-length dst
// stays untouched.
func CopyValue(dst []byte, s string) int {
	if len(dst) == 0 {
		return 0
	}
	n := copy(dst[:len(dst)-1], s)
	dst[n] = 0
	return n
}
