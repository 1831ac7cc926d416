package list

import (
	"errors"
	"iter"
)

// Note that the unrolled list is not thread safe.
// Cursors are short-lived views. Any structural change made through the
// list (insert, erase, push, pop, clear, assign, swap) invalidates them.

var (
	ErrUnrolledListPlacementFailed  = errors.New("[unrolled-list] element placement failed")
	ErrUnrolledListForeignPosition  = errors.New("[unrolled-list] position does not belong to this list")
	ErrUnrolledListInvalidPosition  = errors.New("[unrolled-list] invalid position")
	ErrUnrolledListCountViolation   = errors.New("[unrolled-list] cached counter violation")
	ErrUnrolledListLinkViolation    = errors.New("[unrolled-list] node link violation")
	ErrUnrolledListBalanceViolation = errors.New("[unrolled-list] node balance violation")
)

// ElementCopier places a value into the list. It is the only fallible step
// of a mutation and it always runs before the chain is touched.
type ElementCopier[T any] func(v T) (T, error)

// Position is an insertion or erasure point, either a Cursor or a ConstCursor.
type Position[T any] interface {
	pos() position[T]
}

// UnrolledList is a sequence container storing its elements in a doubly
// linked chain of fixed-capacity array nodes.
type UnrolledList[T any] interface {
	// Len returns the number of elements.
	Len() int64
	// NodeCount returns the number of nodes in the chain, at least 1.
	NodeCount() int64
	// NodeCapacity returns the fixed number of slots per node.
	NodeCapacity() int
	// MaxSize returns the capacity of the current chain, NodeCapacity() * NodeCount().
	MaxSize() int64
	IsEmpty() bool
	// Front returns the first element, false if the list is empty.
	Front() (T, bool)
	// Back returns the last element, false if the list is empty.
	Back() (T, bool)
	GetAllocator() NodeAllocator[T]

	Begin() Cursor[T]
	End() Cursor[T]
	CBegin() ConstCursor[T]
	CEnd() ConstCursor[T]
	RBegin() ReverseCursor[T]
	REnd() ReverseCursor[T]
	CRBegin() ConstReverseCursor[T]
	CREnd() ConstReverseCursor[T]
	// All iterates front to back.
	All() iter.Seq[T]
	// Backward iterates back to front.
	Backward() iter.Seq[T]
	// Foreach iterates front to back until fn returns false.
	Foreach(fn func(idx int64, v T) bool)

	PushBack(v T) error
	PushFront(v T) error
	// PopBack removes the last element. It never fails, an empty list is left as is.
	PopBack() (T, bool)
	// PopFront removes the first element. It never fails, an empty list is left as is.
	PopFront() (T, bool)

	// Insert inserts v before pos and returns a cursor to the new element.
	Insert(pos Position[T], v T) (Cursor[T], error)
	// InsertN inserts n copies of v before pos and returns a cursor to the
	// first inserted element, or to pos if n <= 0.
	InsertN(pos Position[T], n int, v T) (Cursor[T], error)
	// InsertValues inserts vs before pos, keeping their order.
	InsertValues(pos Position[T], vs ...T) (Cursor[T], error)
	// InsertSeq inserts every value of seq before pos.
	InsertSeq(pos Position[T], seq iter.Seq[T]) (Cursor[T], error)
	// InsertRange inserts the elements of [first, last) before pos. The range
	// may belong to any unrolled list, this one included.
	InsertRange(pos Position[T], first, last Position[T]) (Cursor[T], error)
	// Erase removes the element at pos and returns a cursor to its successor.
	Erase(pos Position[T]) Cursor[T]
	// EraseRange removes [first, last) and returns a cursor to the element
	// that followed the range.
	EraseRange(first, last Position[T]) Cursor[T]
	// Clear drops every element and keeps a single empty node.
	Clear()
	Assign(vs ...T) error
	AssignN(n int, v T) error
	AssignSeq(seq iter.Seq[T]) error
	AssignRange(first, last Position[T]) error
	// Swap exchanges the contents of two lists.
	Swap(other UnrolledList[T])

	// Clone copies the list by pushing every element to the back of a new
	// list with the same options. Node boundaries may differ from the source.
	Clone() (UnrolledList[T], error)
	// EqualFunc reports whether both lists hold equal sequences.
	EqualFunc(other UnrolledList[T], eq func(a, b T) bool) bool
}
