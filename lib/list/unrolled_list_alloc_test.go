package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapNodeAllocator(t *testing.T) {
	alloc := NewHeapNodeAllocator[int]()
	node := alloc.allocate(4)
	require.Equal(t, 4, node.capacity())
	require.True(t, node.isEmpty())

	node.pushBack(1)
	node.linkForward(alloc.allocate(4))
	alloc.reclaim(node)
	require.True(t, node.isEmpty())
	require.Nil(t, node.next)
	require.Equal(t, []int{0, 0, 0, 0}, node.slots)
	alloc.reclaim(nil)
}

func TestArenaNodeAllocator(t *testing.T) {
	alloc := NewArenaNodeAllocator[int](2).(*arenaNodeAllocator[int])
	a, b := alloc.allocate(4), alloc.allocate(4)
	require.Equal(t, 1, alloc.batches)
	require.Equal(t, 4, cap(a.slots))
	require.Equal(t, 4, cap(b.slots))
	require.NotSame(t, a, b)

	a.pushBack(1)
	a.pushBack(2)
	require.Equal(t, 0, b.slots[0])

	c := alloc.allocate(4)
	require.Equal(t, 2, alloc.batches)
	require.True(t, c.isEmpty())

	alloc.reclaim(a)
	require.Equal(t, 1, alloc.recycledLen())
	reused := alloc.allocate(4)
	require.Same(t, a, reused)
	require.True(t, reused.isEmpty())
	require.Equal(t, []int{0, 0, 0, 0}, reused.slots)
	require.Equal(t, 0, alloc.recycledLen())

	// A request of another capacity is served aside from the current batch.
	wide := alloc.allocate(8)
	require.Equal(t, 8, wide.capacity())
	require.Equal(t, 2, alloc.batches)
	require.Equal(t, 4, alloc.allocate(4).capacity())

	alloc.reclaim(nil)
	require.Equal(t, 0, alloc.recycledLen())

	single := NewArenaNodeAllocator[int](0).(*arenaNodeAllocator[int])
	require.Equal(t, 1, single.perBatch)
}

func TestArenaNodeAllocator_WithUnrolledList(t *testing.T) {
	alloc := NewArenaNodeAllocator[int](4)
	l := NewUnrolledList[int](WithNodeCapacity[int](4), WithNodeAllocator[int](alloc))
	for i := 0; i < 100; i++ {
		require.NoError(t, l.PushBack(i))
	}
	nodes := l.NodeCount()
	require.Same(t, alloc, l.GetAllocator())

	l.Clear()
	arena := alloc.(*arenaNodeAllocator[int])
	require.Equal(t, int(nodes)-1, arena.recycledLen())

	for i := 0; i < 100; i++ {
		require.NoError(t, l.PushFront(i))
	}
	require.NoError(t, UnrolledListValidate[int](l))
	require.Equal(t, int64(100), l.Len())

	require.Panics(t, func() {
		NewUnrolledList[int](WithNodeAllocator[int](nil))
	})
}
