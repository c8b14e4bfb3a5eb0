package queue

import (
	"sync"

	"github.com/cryptonstudio/crypton-queue-engine/types/clist"
)

// Allocator abstracts queue element allocation so that elements can be
// pooled and allocation exhaustion can be simulated by tests.
// GetElement returns a detached node ready to link; PutElement takes
// back a node that is no longer linked anywhere.
type Allocator[T any] interface {
	GetElement() (*clist.Node[T], error)
	PutElement(n *clist.Node[T])
}

// PooledAllocator is an Allocator encapsulating element allocation
// using sync.Pool internally. GetElement never fails.
type PooledAllocator[T any] struct {
	elements sync.Pool
}

// NewPooledAllocator creates and returns new PooledAllocator instance.
func NewPooledAllocator[T any]() *PooledAllocator[T] {
	a := new(PooledAllocator[T])
	a.elements = sync.Pool{New: func() any {
		return new(clist.Node[T])
	}}
	return a
}

// GetElement allocates a detached element node.
func (a *PooledAllocator[T]) GetElement() (*clist.Node[T], error) {
	n := a.elements.Get().(*clist.Node[T])
	n.Init()
	return n, nil
}

// PutElement releases an element node.
func (a *PooledAllocator[T]) PutElement(n *clist.Node[T]) {
	// Clean up the released node so the payload does not outlive it
	var zero T
	n.Value = zero
	n.Init()
	// Put back to the pool
	a.elements.Put(n)
}
