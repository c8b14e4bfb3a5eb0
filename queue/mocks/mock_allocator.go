// Package mocks provides a gomock mock of the queue.Allocator
// interface. It follows the MockGen layout but is maintained by hand:
// mockgen does not handle generic interfaces.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	clist "github.com/cryptonstudio/crypton-queue-engine/types/clist"
)

// MockAllocator is a mock of Allocator interface.
type MockAllocator[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockAllocatorMockRecorder[T]
}

// MockAllocatorMockRecorder is the mock recorder for MockAllocator.
type MockAllocatorMockRecorder[T any] struct {
	mock *MockAllocator[T]
}

// NewMockAllocator creates a new mock instance.
func NewMockAllocator[T any](ctrl *gomock.Controller) *MockAllocator[T] {
	mock := &MockAllocator[T]{ctrl: ctrl}
	mock.recorder = &MockAllocatorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAllocator[T]) EXPECT() *MockAllocatorMockRecorder[T] {
	return m.recorder
}

// GetElement mocks base method.
func (m *MockAllocator[T]) GetElement() (*clist.Node[T], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetElement")
	ret0, _ := ret[0].(*clist.Node[T])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetElement indicates an expected call of GetElement.
func (mr *MockAllocatorMockRecorder[T]) GetElement() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetElement", reflect.TypeOf((*MockAllocator[T])(nil).GetElement))
}

// PutElement mocks base method.
func (m *MockAllocator[T]) PutElement(n *clist.Node[T]) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "PutElement", n)
}

// PutElement indicates an expected call of PutElement.
func (mr *MockAllocatorMockRecorder[T]) PutElement(n interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PutElement", reflect.TypeOf((*MockAllocator[T])(nil).PutElement), n)
}
