package list

import (
	"strings"

	"go.uber.org/zap"
)

const (
	defaultUnrolledNodeCapacity = 10
	// A split keeps capacity/2+1 elements and must leave at least one
	// element for the new node.
	minUnrolledNodeCapacity = 3
)

type unrolledListOptions[T any] struct {
	capacity    int
	copier      ElementCopier[T]
	alloc       NodeAllocator[T]
	logger      *zap.Logger
	statsName   string
	stats       *unrolledListStats
	enableStats bool
}

func (opts *unrolledListOptions[T]) validate() {
	if opts.logger == nil {
		opts.logger = zap.NewNop()
	}
	if opts.capacity == 0 {
		opts.capacity = defaultUnrolledNodeCapacity
	} else if opts.capacity < minUnrolledNodeCapacity {
		opts.logger.Warn("[unrolled-list options] adjust the node capacity",
			zap.Int("from", opts.capacity),
			zap.Int("to", minUnrolledNodeCapacity),
		)
		opts.capacity = minUnrolledNodeCapacity
	}
	if opts.alloc == nil {
		opts.alloc = NewHeapNodeAllocator[T]()
	}
	if opts.enableStats && opts.stats == nil {
		opts.stats = newUnrolledListStats(opts.statsName)
	}
}

type UnrolledListOption[T any] func(opts *unrolledListOptions[T])

// WithNodeCapacity sets the number of slots of every node.
// Capacities lower than 3 are raised to 3.
func WithNodeCapacity[T any](capacity int) UnrolledListOption[T] {
	return func(opts *unrolledListOptions[T]) {
		opts.capacity = capacity
	}
}

// WithElementCopier installs the hook that places every inserted value.
// A non-nil error aborts the whole mutation and leaves the list unchanged.
func WithElementCopier[T any](copier ElementCopier[T]) UnrolledListOption[T] {
	return func(opts *unrolledListOptions[T]) {
		opts.copier = copier
	}
}

func WithNodeAllocator[T any](alloc NodeAllocator[T]) UnrolledListOption[T] {
	return func(opts *unrolledListOptions[T]) {
		if alloc == nil {
			panic("unrolled-list node allocator must not be nil")
		}
		opts.alloc = alloc
	}
}

func WithLogger[T any](logger *zap.Logger) UnrolledListOption[T] {
	return func(opts *unrolledListOptions[T]) {
		opts.logger = logger
	}
}

// WithUnrolledListStats enables the otel instruments of the list, reported
// under the meter "xunrolled/list/<name>".
func WithUnrolledListStats[T any](name string) UnrolledListOption[T] {
	return func(opts *unrolledListOptions[T]) {
		if len(strings.TrimSpace(name)) <= 0 {
			panic("unrolled-list stats name must not be empty or blank")
		}
		opts.statsName = name
		opts.enableStats = true
	}
}
