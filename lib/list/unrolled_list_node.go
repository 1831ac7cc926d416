package list

import "slices"

// unrolledNode is a fixed-capacity block of the unrolled list.
// Elements live in the contiguous prefix [0, occupied) of slots; the
// remaining slots always hold the zero value of T so a node never keeps
// references that are no longer part of the list.
//
// prev and next are plain back/forward links. The list owns every node
// through its head->next chain and the allocator is the only place nodes
// are created or reclaimed.
type unrolledNode[T any] struct {
	prev, next *unrolledNode[T]
	slots      []T
	occupied   int
}

func newUnrolledNode[T any](capacity int) *unrolledNode[T] {
	return &unrolledNode[T]{
		slots: make([]T, capacity),
	}
}

func (node *unrolledNode[T]) capacity() int {
	return len(node.slots)
}

func (node *unrolledNode[T]) isFull() bool {
	return node.occupied == len(node.slots)
}

func (node *unrolledNode[T]) isEmpty() bool {
	return node.occupied == 0
}

// at has no bounds check against occupied, the caller owns it.
func (node *unrolledNode[T]) at(i int) T {
	return node.slots[i]
}

func (node *unrolledNode[T]) ref(i int) *T {
	return &node.slots[i]
}

func (node *unrolledNode[T]) set(i int, v T) {
	node.slots[i] = v
}

func (node *unrolledNode[T]) front() T {
	return node.slots[0]
}

func (node *unrolledNode[T]) back() T {
	return node.slots[node.occupied-1]
}

func (node *unrolledNode[T]) pushBack(v T) {
	node.slots[node.occupied] = v
	node.occupied++
}

// pushFront rotates the backing array right by one, bringing the free last
// slot to index 0. The node must not be full.
func (node *unrolledNode[T]) pushFront(v T) {
	node.rotateRight(1)
	node.slots[0] = v
	node.occupied++
}

func (node *unrolledNode[T]) popBack() (v T) {
	if node.occupied <= 0 {
		return
	}
	node.occupied--
	v = node.slots[node.occupied]
	node.slots[node.occupied] = *new(T)
	return v
}

// popFront costs O(capacity) whatever the occupancy, the whole backing
// array is rotated left by one.
func (node *unrolledNode[T]) popFront() (v T) {
	if node.occupied <= 0 {
		return
	}
	v = node.slots[0]
	node.slots[0] = *new(T)
	node.rotateLeft(1)
	node.occupied--
	return v
}

// rotateLeft rotates the full backing array by n mod capacity with the
// "reverse prefix, reverse suffix, reverse whole" identity.
func (node *unrolledNode[T]) rotateLeft(n int) {
	c := len(node.slots)
	if c == 0 {
		return
	}
	if n %= c; n < 0 {
		n += c
	}
	if n == 0 {
		return
	}
	slices.Reverse(node.slots[:n])
	slices.Reverse(node.slots[n:])
	slices.Reverse(node.slots)
}

func (node *unrolledNode[T]) rotateRight(n int) {
	c := len(node.slots)
	if c == 0 {
		return
	}
	node.rotateLeft(c - n%c)
}

// openGap shifts [i, occupied) one slot to the right so that slot i can
// take a new element. The node must not be full.
func (node *unrolledNode[T]) openGap(i int) {
	// Rotating [i, occupied] right by one moves the free slot at occupied to i.
	slices.Reverse(node.slots[i:node.occupied])
	slices.Reverse(node.slots[i : node.occupied+1])
}

func (node *unrolledNode[T]) insertAt(i int, v T) {
	node.openGap(i)
	node.slots[i] = v
	node.occupied++
}

// erase removes the local range [from, to) and closes the gap by rotating
// the remainder into place.
func (node *unrolledNode[T]) erase(from, to int) {
	if from < 0 {
		from = 0
	}
	if to > node.occupied {
		to = node.occupied
	}
	if from >= to {
		return
	}
	clear(node.slots[from:to])
	// [from, to) holds zero values now; rotating [from, occupied) left by
	// (to-from) moves them behind the survivors.
	slices.Reverse(node.slots[from:to])
	slices.Reverse(node.slots[to:node.occupied])
	slices.Reverse(node.slots[from:node.occupied])
	node.occupied -= to - from
}

// linkForward sets node.next = other and other.prev = node. A nil other
// clears node.next only.
func (node *unrolledNode[T]) linkForward(other *unrolledNode[T]) {
	node.next = other
	if other != nil {
		other.prev = node
	}
}

// linkBack sets node.prev = other and other.next = node. A nil other
// clears node.prev only.
func (node *unrolledNode[T]) linkBack(other *unrolledNode[T]) {
	node.prev = other
	if other != nil {
		other.next = node
	}
}

// threadForward splits a full node: the elements at [capacity/2+1, capacity)
// move into the empty node buffer, which is linked right after node.
func (node *unrolledNode[T]) threadForward(buffer *unrolledNode[T]) {
	node.moveTail(node.capacity()/2+1, buffer)
}

// threadBack is the mirror split keeping only capacity/2 elements: the back
// half [capacity/2, capacity) moves into buffer.
func (node *unrolledNode[T]) threadBack(buffer *unrolledNode[T]) {
	node.moveTail(node.capacity()/2, buffer)
}

// moveTail moves [keep, occupied) to the end of buffer and links buffer
// between node and its old successor.
func (node *unrolledNode[T]) moveTail(keep int, buffer *unrolledNode[T]) {
	if keep < node.occupied {
		n := copy(buffer.slots[buffer.occupied:], node.slots[keep:node.occupied])
		buffer.occupied += n
		clear(node.slots[keep:node.occupied])
		node.occupied = keep
	}
	buffer.linkForward(node.next)
	node.linkForward(buffer)
}

// moveFrontTo appends the first n elements of node to dst.
func (node *unrolledNode[T]) moveFrontTo(dst *unrolledNode[T], n int) {
	copy(dst.slots[dst.occupied:], node.slots[:n])
	dst.occupied += n
	node.erase(0, n)
}

// moveBackTo prepends the last n elements of node to dst.
func (node *unrolledNode[T]) moveBackTo(dst *unrolledNode[T], n int) {
	dst.rotateRight(n)
	copy(dst.slots[:n], node.slots[node.occupied-n:node.occupied])
	dst.occupied += n
	clear(node.slots[node.occupied-n : node.occupied])
	node.occupied -= n
}

// reset drops every element and both links.
func (node *unrolledNode[T]) reset() {
	clear(node.slots)
	node.occupied = 0
	node.prev, node.next = nil, nil
}
