package list

// NodeAllocator is the node factory of an unrolled list. Nodes are created
// only through allocate and handed back through reclaim once unlinked.
// It is sealed, the implementations are provided by this package.
type NodeAllocator[T any] interface {
	allocate(capacity int) *unrolledNode[T]
	reclaim(node *unrolledNode[T])
}

var (
	_ NodeAllocator[struct{}] = heapNodeAllocator[struct{}]{}
	_ NodeAllocator[struct{}] = (*arenaNodeAllocator[struct{}])(nil)
)

type heapNodeAllocator[T any] struct{}

// NewHeapNodeAllocator returns the default allocator, every node is a fresh
// heap object left to the GC once reclaimed.
func NewHeapNodeAllocator[T any]() NodeAllocator[T] {
	return heapNodeAllocator[T]{}
}

func (heapNodeAllocator[T]) allocate(capacity int) *unrolledNode[T] {
	return newUnrolledNode[T](capacity)
}

func (heapNodeAllocator[T]) reclaim(node *unrolledNode[T]) {
	if node == nil {
		return
	}
	node.reset()
}

// arenaNodeAllocator hands out nodes from batches allocated together and
// keeps reclaimed nodes on a free list for reuse. The slots of one batch
// share a single backing array.
type arenaNodeAllocator[T any] struct {
	batch    []unrolledNode[T]
	recycled []*unrolledNode[T]
	perBatch int
	batches  int
}

// NewArenaNodeAllocator returns an allocator that allocates nodesPerBatch
// nodes at a time (at least 1) and recycles reclaimed nodes.
// An arena is meant to serve a single node capacity: a request of another
// capacity while the current batch is not exhausted is served from the heap.
func NewArenaNodeAllocator[T any](nodesPerBatch int) NodeAllocator[T] {
	if nodesPerBatch < 1 {
		nodesPerBatch = 1
	}
	return &arenaNodeAllocator[T]{
		perBatch: nodesPerBatch,
		recycled: make([]*unrolledNode[T], 0, nodesPerBatch),
	}
}

func (arena *arenaNodeAllocator[T]) grow(capacity int) {
	arena.batch = make([]unrolledNode[T], arena.perBatch)
	slots := make([]T, arena.perBatch*capacity)
	for i := range arena.batch {
		arena.batch[i].slots = slots[i*capacity : (i+1)*capacity : (i+1)*capacity]
	}
	arena.batches++
}

func (arena *arenaNodeAllocator[T]) allocate(capacity int) *unrolledNode[T] {
	if l := len(arena.recycled); l > 0 {
		node := arena.recycled[l-1]
		if node.capacity() == capacity {
			arena.recycled[l-1] = nil
			arena.recycled = arena.recycled[:l-1]
			return node
		}
	}
	if len(arena.batch) == 0 {
		arena.grow(capacity)
	} else if arena.batch[0].capacity() != capacity {
		return newUnrolledNode[T](capacity)
	}
	node := &arena.batch[0]
	arena.batch = arena.batch[1:]
	return node
}

func (arena *arenaNodeAllocator[T]) reclaim(node *unrolledNode[T]) {
	if node == nil {
		return
	}
	node.reset()
	arena.recycled = append(arena.recycled, node)
}

func (arena *arenaNodeAllocator[T]) recycledLen() int {
	return len(arena.recycled)
}
