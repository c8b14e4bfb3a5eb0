package queue

import (
	"errors"
)

// Errors used by the package.
var (
	ErrQueueNotExist    = errors.New("queue does not exist")
	ErrQueueEmpty       = errors.New("queue is empty")
	ErrAllocationFailed = errors.New("could not allocate element")
)
