package list

import (
	"iter"

	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xunrolled/lib/infra"
)

// References:
// https://en.wikipedia.org/wiki/Unrolled_linked_list
// https://github.com/gostl/gostl/tree/master/ds/deque
//
// head                                          tail
// +---------+       +---------+       +---------+
// |1|2|3|_|_|<----->|4|5|6|_|_|<----->|7|8|_|_|_|
// +---------+       +---------+       +---------+
//
// Elements of a node occupy a contiguous prefix of its slots. A full node is
// split into two before it takes a new element, and an interior node never
// holds fewer than capacity/2 elements once a mutation completes.

var (
	_ UnrolledList[struct{}] = (*unrolledList[struct{}])(nil)
)

type unrolledList[T any] struct {
	head    *unrolledNode[T]
	tail    *unrolledNode[T]
	len     int64
	nodeLen int64
	opts    unrolledListOptions[T]
}

func newUnrolledList[T any](opts unrolledListOptions[T]) *unrolledList[T] {
	l := &unrolledList[T]{opts: opts}
	l.head = l.allocNode()
	l.tail = l.head
	return l
}

func newUnrolledListWithOptions[T any](opts ...UnrolledListOption[T]) *unrolledList[T] {
	o := unrolledListOptions[T]{}
	for _, opt := range opts {
		opt(&o)
	}
	o.validate()
	return newUnrolledList[T](o)
}

// NewUnrolledList creates an empty list, a single empty node.
func NewUnrolledList[T any](opts ...UnrolledListOption[T]) UnrolledList[T] {
	return newUnrolledListWithOptions[T](opts...)
}

// NewUnrolledListFill creates a list of n copies of v.
func NewUnrolledListFill[T any](n int, v T, opts ...UnrolledListOption[T]) (UnrolledList[T], error) {
	l := newUnrolledListWithOptions[T](opts...)
	if err := l.AssignN(n, v); err != nil {
		l.release()
		return nil, err
	}
	return l, nil
}

// NewUnrolledListFrom creates a list holding values in order.
func NewUnrolledListFrom[T any](values []T, opts ...UnrolledListOption[T]) (UnrolledList[T], error) {
	l := newUnrolledListWithOptions[T](opts...)
	if err := l.Assign(values...); err != nil {
		l.release()
		return nil, err
	}
	return l, nil
}

func NewUnrolledListFromSeq[T any](seq iter.Seq[T], opts ...UnrolledListOption[T]) (UnrolledList[T], error) {
	l := newUnrolledListWithOptions[T](opts...)
	if err := l.AssignSeq(seq); err != nil {
		l.release()
		return nil, err
	}
	return l, nil
}

// NewUnrolledListFromRange creates a list from the elements of [first, last),
// which may belong to any unrolled list.
func NewUnrolledListFromRange[T any](first, last Position[T], opts ...UnrolledListOption[T]) (UnrolledList[T], error) {
	l := newUnrolledListWithOptions[T](opts...)
	if err := l.AssignRange(first, last); err != nil {
		l.release()
		return nil, err
	}
	return l, nil
}

// NewUnrolledListMoved creates a list that takes over the elements of src and
// leaves src empty. The chain is stolen when both lists share the allocator
// and the node capacity, otherwise the elements are moved one by one into
// nodes of the new list. The element copier is not involved.
func NewUnrolledListMoved[T any](src UnrolledList[T], opts ...UnrolledListOption[T]) UnrolledList[T] {
	l := newUnrolledListWithOptions[T](opts...)
	if src == nil {
		return l
	}
	s, ok := src.(*unrolledList[T])
	if !ok {
		for v := range src.All() {
			l.pushBack(v)
		}
		src.Clear()
		return l
	}
	if s.opts.alloc != l.opts.alloc || s.opts.capacity != l.opts.capacity {
		for v := range s.All() {
			l.pushBack(v)
		}
		s.Clear()
		return l
	}

	l.reclaimNode(l.head)
	l.head, l.tail = s.head, s.tail
	l.len, l.nodeLen = s.len, s.nodeLen
	l.opts.stats.RecordElementCount(s.len)
	l.opts.stats.RecordNodeCount(s.nodeLen)

	s.opts.stats.RecordElementCount(-s.len)
	s.opts.stats.RecordNodeCount(-s.nodeLen)
	s.len, s.nodeLen = 0, 0
	s.head = s.allocNode()
	s.tail = s.head
	l.opts.logger.Debug("[unrolled-list] chain moved", zap.Int64("nodes", l.nodeLen))
	return l
}

func (l *unrolledList[T]) Len() int64 {
	return l.len
}

func (l *unrolledList[T]) NodeCount() int64 {
	return l.nodeLen
}

func (l *unrolledList[T]) NodeCapacity() int {
	return l.opts.capacity
}

func (l *unrolledList[T]) MaxSize() int64 {
	return int64(l.opts.capacity) * l.nodeLen
}

func (l *unrolledList[T]) IsEmpty() bool {
	return l.len == 0
}

func (l *unrolledList[T]) GetAllocator() NodeAllocator[T] {
	return l.opts.alloc
}

func (l *unrolledList[T]) Front() (v T, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.head.front(), true
}

func (l *unrolledList[T]) Back() (v T, ok bool) {
	if l.len == 0 {
		return v, false
	}
	return l.tail.back(), true
}

func (l *unrolledList[T]) begin() position[T] {
	return position[T]{list: l, node: l.head, idx: 0}
}

func (l *unrolledList[T]) end() position[T] {
	return position[T]{list: l, node: l.tail, idx: l.tail.occupied}
}

func (l *unrolledList[T]) rbegin() position[T] {
	return position[T]{list: l, node: l.tail, idx: l.tail.occupied - 1}
}

func (l *unrolledList[T]) rend() position[T] {
	return position[T]{list: l, node: l.head, idx: -1}
}

func (l *unrolledList[T]) Begin() Cursor[T]               { return Cursor[T]{p: l.begin()} }
func (l *unrolledList[T]) End() Cursor[T]                 { return Cursor[T]{p: l.end()} }
func (l *unrolledList[T]) CBegin() ConstCursor[T]         { return ConstCursor[T]{p: l.begin()} }
func (l *unrolledList[T]) CEnd() ConstCursor[T]           { return ConstCursor[T]{p: l.end()} }
func (l *unrolledList[T]) RBegin() ReverseCursor[T]       { return ReverseCursor[T]{p: l.rbegin()} }
func (l *unrolledList[T]) REnd() ReverseCursor[T]         { return ReverseCursor[T]{p: l.rend()} }
func (l *unrolledList[T]) CRBegin() ConstReverseCursor[T] { return ConstReverseCursor[T]{p: l.rbegin()} }
func (l *unrolledList[T]) CREnd() ConstReverseCursor[T]   { return ConstReverseCursor[T]{p: l.rend()} }

func (l *unrolledList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			for i := 0; i < node.occupied; i++ {
				if !yield(node.at(i)) {
					return
				}
			}
		}
	}
}

func (l *unrolledList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.tail; node != nil; node = node.prev {
			for i := node.occupied - 1; i >= 0; i-- {
				if !yield(node.at(i)) {
					return
				}
			}
		}
	}
}

func (l *unrolledList[T]) Foreach(fn func(idx int64, v T) bool) {
	if fn == nil {
		return
	}
	idx := int64(0)
	for v := range l.All() {
		if !fn(idx, v) {
			return
		}
		idx++
	}
}

func (l *unrolledList[T]) PushBack(v T) error {
	placed, err := l.place(v)
	if err != nil {
		return err
	}
	l.pushBack(placed)
	return nil
}

func (l *unrolledList[T]) pushBack(v T) {
	if l.tail.isFull() {
		l.splitForward(l.tail)
	}
	l.tail.pushBack(v)
	l.addLen(1)
}

func (l *unrolledList[T]) PushFront(v T) error {
	placed, err := l.place(v)
	if err != nil {
		return err
	}
	if l.head.isFull() {
		l.splitBack(l.head)
	}
	l.head.pushFront(placed)
	l.addLen(1)
	return nil
}

func (l *unrolledList[T]) PopBack() (v T, ok bool) {
	for l.tail.isEmpty() && l.tail != l.head {
		l.unlink(l.tail)
	}
	if l.tail.isEmpty() {
		return v, false
	}
	v = l.tail.popBack()
	l.addLen(-1)
	if l.tail.isEmpty() && l.tail != l.head {
		l.unlink(l.tail)
	}
	return v, true
}

func (l *unrolledList[T]) PopFront() (v T, ok bool) {
	for l.head.isEmpty() && l.head != l.tail {
		l.unlink(l.head)
	}
	if l.head.isEmpty() {
		return v, false
	}
	v = l.head.popFront()
	l.addLen(-1)
	if l.head.isEmpty() && l.head != l.tail {
		l.unlink(l.head)
	}
	return v, true
}

func (l *unrolledList[T]) Insert(pos Position[T], v T) (Cursor[T], error) {
	p, err := l.resolve(pos)
	if err != nil {
		return l.End(), err
	}
	placed, err := l.place(v)
	if err != nil {
		return l.End(), err
	}
	return Cursor[T]{p: l.insert(p, placed)}, nil
}

func (l *unrolledList[T]) InsertN(pos Position[T], n int, v T) (Cursor[T], error) {
	p, err := l.resolve(pos)
	if err != nil {
		return l.End(), err
	}
	if n <= 0 {
		return Cursor[T]{p: p}, nil
	}
	values := make([]T, n)
	for i := range values {
		if values[i], err = l.place(v); err != nil {
			return l.End(), err
		}
	}
	return Cursor[T]{p: l.insertValues(p, values)}, nil
}

func (l *unrolledList[T]) InsertValues(pos Position[T], vs ...T) (Cursor[T], error) {
	p, err := l.resolve(pos)
	if err != nil {
		return l.End(), err
	}
	values, err := l.placeAll(vs)
	if err != nil {
		return l.End(), err
	}
	return Cursor[T]{p: l.insertValues(p, values)}, nil
}

func (l *unrolledList[T]) InsertSeq(pos Position[T], seq iter.Seq[T]) (Cursor[T], error) {
	p, err := l.resolve(pos)
	if err != nil {
		return l.End(), err
	}
	values, err := l.placeSeq(seq)
	if err != nil {
		return l.End(), err
	}
	return Cursor[T]{p: l.insertValues(p, values)}, nil
}

func (l *unrolledList[T]) InsertRange(pos Position[T], first, last Position[T]) (Cursor[T], error) {
	p, err := l.resolve(pos)
	if err != nil {
		return l.End(), err
	}
	values, err := collectRange(first, last)
	if err != nil {
		return l.End(), err
	}
	if values, err = l.placeAll(values); err != nil {
		return l.End(), err
	}
	return Cursor[T]{p: l.insertValues(p, values)}, nil
}

// insert places v before p. A full target is split first and v goes to the
// half that holds the pre-split index.
func (l *unrolledList[T]) insert(p position[T], v T) position[T] {
	node, idx := p.node, p.idx
	var split *unrolledNode[T]
	if node.isFull() {
		kept := l.opts.capacity/2 + 1
		split = l.splitForward(node)
		if idx > kept {
			node, idx = split, idx-kept
		}
	}
	node.insertAt(idx, v)
	l.addLen(1)

	track := position[T]{list: l, node: node, idx: idx}
	if split != nil {
		l.repair(split, &track)
	}
	return track.canonical()
}

// insertValues splices the placed values before p as a run of half-filled
// nodes built off the chain. It returns the position of the first value.
func (l *unrolledList[T]) insertValues(p position[T], values []T) position[T] {
	switch len(values) {
	case 0:
		return p
	case 1:
		return l.insert(p, values[0])
	}

	half := l.opts.capacity / 2
	var first, last *unrolledNode[T]
	for _, chunk := range lo.Chunk(values, half) {
		if last != nil && len(chunk) < half {
			copy(last.slots[last.occupied:], chunk)
			last.occupied += len(chunk)
			continue
		}
		node := l.allocNode()
		node.occupied = copy(node.slots, chunk)
		if first == nil {
			first = node
		} else {
			last.linkForward(node)
		}
		last = node
	}

	wasEmpty := l.len == 0
	l.addLen(int64(len(values)))
	track := position[T]{list: l, node: first, idx: 0}
	if wasEmpty {
		sole := l.head
		l.head, l.tail = first, last
		l.reclaimNode(sole)
		l.repairSpan(first, last, &track)
		return track.canonical()
	}

	node, idx := p.node, p.idx
	var left, right *unrolledNode[T]
	switch {
	case idx <= 0:
		left, right = node.prev, node
	case idx >= node.occupied:
		left, right = node, node.next
	default:
		right = l.allocNode()
		node.moveTail(idx, right)
		if l.tail == node {
			l.tail = right
		}
		left = node
	}
	if left == nil {
		l.head = first
	} else {
		left.linkForward(first)
	}
	if right == nil {
		l.tail = last
	} else {
		last.linkForward(right)
	}
	l.opts.logger.Debug("[unrolled-list] run spliced",
		zap.Int("elements", len(values)),
		zap.Int64("nodes", l.nodeLen),
	)

	l.repairSpan(lo.Ternary(left != nil, left, first), lo.Ternary(right != nil, right, last), &track)
	return track.canonical()
}

func (l *unrolledList[T]) Erase(pos Position[T]) Cursor[T] {
	p, err := l.resolve(pos)
	if err != nil || !p.valid() {
		return l.End()
	}
	return Cursor[T]{p: l.erase(p, 1)}
}

func (l *unrolledList[T]) EraseRange(first, last Position[T]) Cursor[T] {
	from, err := l.resolve(first)
	if err != nil {
		return l.End()
	}
	to, err := l.resolve(last)
	if err != nil {
		return l.End()
	}
	count := from.distance(to, false)
	if count <= 0 {
		return Cursor[T]{p: from}
	}
	return Cursor[T]{p: l.erase(from, count)}
}

// erase removes count elements starting at p, unlinks the nodes left empty
// and repairs the two nodes around the gap. It returns the position of the
// element that followed the removed ones.
func (l *unrolledList[T]) erase(p position[T], count int) position[T] {
	left, before := p.node, p.node.prev
	node, idx := p.node, p.idx
	for remaining := count; remaining > 0 && node != nil; {
		take := min(node.occupied-idx, remaining)
		node.erase(idx, idx+take)
		l.addLen(-int64(take))
		remaining -= take

		next := node.next
		if node.isEmpty() && l.nodeLen > 1 {
			l.unlink(node)
		}
		node, idx = next, 0
	}

	var track position[T]
	var from *unrolledNode[T]
	switch {
	case l.linked(left):
		track = position[T]{list: l, node: left, idx: p.idx}
		from = left
	case before != nil:
		track = position[T]{list: l, node: before, idx: before.occupied}
		from = before.next
	default:
		track = position[T]{list: l, node: l.head, idx: 0}
		from = l.head
	}
	if from != nil {
		l.repair(from, &track)
		if next := from.next; next != nil {
			l.repair(next, &track)
		}
	}
	return track.canonical()
}

// Clear reclaims every node and leaves a single fresh empty node.
func (l *unrolledList[T]) Clear() {
	if l.len == 0 && l.nodeLen == 1 {
		return
	}
	l.release()
	l.head = l.allocNode()
	l.tail = l.head
}

// release hands every node back to the allocator and leaves the list
// without a chain.
func (l *unrolledList[T]) release() {
	for node := l.head; node != nil; {
		next := node.next
		l.reclaimNode(node)
		node = next
	}
	l.addLen(-l.len)
	l.head, l.tail = nil, nil
}

func (l *unrolledList[T]) Assign(vs ...T) error {
	values, err := l.placeAll(vs)
	if err != nil {
		return err
	}
	l.reassign(values)
	return nil
}

func (l *unrolledList[T]) AssignN(n int, v T) error {
	values := make([]T, max(n, 0))
	var err error
	for i := range values {
		if values[i], err = l.place(v); err != nil {
			return err
		}
	}
	l.reassign(values)
	return nil
}

func (l *unrolledList[T]) AssignSeq(seq iter.Seq[T]) error {
	values, err := l.placeSeq(seq)
	if err != nil {
		return err
	}
	l.reassign(values)
	return nil
}

// AssignRange replaces the content with [first, last), the range may
// belong to this list.
func (l *unrolledList[T]) AssignRange(first, last Position[T]) error {
	values, err := collectRange(first, last)
	if err != nil {
		return err
	}
	if values, err = l.placeAll(values); err != nil {
		return err
	}
	l.reassign(values)
	return nil
}

func (l *unrolledList[T]) reassign(values []T) {
	l.Clear()
	for _, v := range values {
		l.pushBack(v)
	}
}

// Swap exchanges the chains and the configurations of both lists.
// Lists of other implementations are left untouched.
func (l *unrolledList[T]) Swap(other UnrolledList[T]) {
	o, ok := other.(*unrolledList[T])
	if !ok || o == nil || o == l {
		return
	}
	l.head, o.head = o.head, l.head
	l.tail, o.tail = o.tail, l.tail
	l.len, o.len = o.len, l.len
	l.nodeLen, o.nodeLen = o.nodeLen, l.nodeLen
	l.opts, o.opts = o.opts, l.opts
}

func (l *unrolledList[T]) Clone() (UnrolledList[T], error) {
	clone := newUnrolledList[T](l.opts)
	for v := range l.All() {
		placed, err := clone.place(v)
		if err != nil {
			clone.release()
			return nil, err
		}
		clone.pushBack(placed)
	}
	return clone, nil
}

func (l *unrolledList[T]) EqualFunc(other UnrolledList[T], eq func(a, b T) bool) bool {
	if other == nil || eq == nil || l.Len() != other.Len() {
		return false
	}
	for a, b := l.CBegin(), other.CBegin(); a.Valid(); a, b = a.Next(), b.Next() {
		if !eq(a.Value(), b.Value()) {
			return false
		}
	}
	return true
}

// resolve checks that pos belongs to this list and folds it into the
// canonical form of an insertion point.
func (l *unrolledList[T]) resolve(pos Position[T]) (position[T], error) {
	if pos == nil {
		return position[T]{}, ErrUnrolledListInvalidPosition
	}
	p := pos.pos()
	if p.list != l {
		return p, ErrUnrolledListForeignPosition
	}
	if p.node == nil {
		return p, ErrUnrolledListInvalidPosition
	}
	if p = p.canonical(); p.idx < 0 || p.idx > p.node.occupied {
		return p, ErrUnrolledListInvalidPosition
	}
	return p, nil
}

func collectRange[T any](first, last Position[T]) ([]T, error) {
	if first == nil || last == nil {
		return nil, ErrUnrolledListInvalidPosition
	}
	from, to := first.pos().canonical(), last.pos().canonical()
	if from.node == nil || to.node == nil || from.list != to.list {
		return nil, ErrUnrolledListInvalidPosition
	}
	values := make([]T, 0)
	for cur := from; cur.node != to.node || cur.idx != to.idx; cur = cur.forward() {
		if !cur.valid() {
			return nil, ErrUnrolledListInvalidPosition
		}
		values = append(values, cur.value())
	}
	return values, nil
}

func (l *unrolledList[T]) place(v T) (T, error) {
	if l.opts.copier == nil {
		return v, nil
	}
	placed, err := l.opts.copier(v)
	if err != nil {
		return placed, l.placementFailed(err)
	}
	return placed, nil
}

func (l *unrolledList[T]) placeAll(vs []T) ([]T, error) {
	values := make([]T, len(vs))
	if l.opts.copier == nil {
		copy(values, vs)
		return values, nil
	}
	var err error
	for i, v := range vs {
		if values[i], err = l.place(v); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func (l *unrolledList[T]) placeSeq(seq iter.Seq[T]) ([]T, error) {
	values := make([]T, 0)
	if seq == nil {
		return values, nil
	}
	for v := range seq {
		placed, err := l.place(v)
		if err != nil {
			return nil, err
		}
		values = append(values, placed)
	}
	return values, nil
}

func (l *unrolledList[T]) placementFailed(cause error) error {
	err := infra.WrapErrorStackWithMessage(
		multierr.Combine(cause, ErrUnrolledListPlacementFailed),
		"[unrolled-list] unable to place element, list unchanged",
	)
	l.opts.stats.IncreasePlacementFailedCount()
	l.opts.logger.Debug("[unrolled-list] placement failed", zap.Inline(err))
	return err
}

func (l *unrolledList[T]) addLen(delta int64) {
	l.len += delta
	l.opts.stats.RecordElementCount(delta)
}

func (l *unrolledList[T]) allocNode() *unrolledNode[T] {
	node := l.opts.alloc.allocate(l.opts.capacity)
	l.nodeLen++
	l.opts.stats.RecordNodeCount(1)
	return node
}

func (l *unrolledList[T]) reclaimNode(node *unrolledNode[T]) {
	l.opts.alloc.reclaim(node)
	l.nodeLen--
	l.opts.stats.RecordNodeCount(-1)
}

// linked reports whether node is still part of the chain. Reclaimed nodes
// have both links cleared.
func (l *unrolledList[T]) linked(node *unrolledNode[T]) bool {
	return node != nil && (node == l.head || node.prev != nil)
}

// unlink detaches node from the chain and reclaims it. The sole node is
// never unlinked.
func (l *unrolledList[T]) unlink(node *unrolledNode[T]) {
	prev, next := node.prev, node.next
	switch {
	case prev == nil && next == nil:
		return
	case prev == nil:
		next.linkBack(nil)
		l.head = next
	case next == nil:
		prev.linkForward(nil)
		l.tail = prev
	default:
		prev.linkForward(next)
	}
	l.opts.stats.IncreaseNodeMergeCount()
	l.opts.logger.Debug("[unrolled-list] node unlinked",
		zap.Int("occupied", node.occupied),
		zap.Int64("nodes", l.nodeLen-1),
	)
	l.reclaimNode(node)
}

// splitForward splits a full node, keeping capacity/2+1 elements, and
// returns the new successor.
func (l *unrolledList[T]) splitForward(node *unrolledNode[T]) *unrolledNode[T] {
	buffer := l.allocNode()
	node.threadForward(buffer)
	if l.tail == node {
		l.tail = buffer
	}
	l.opts.stats.IncreaseNodeSplitCount()
	l.opts.logger.Debug("[unrolled-list] node split forward",
		zap.Int("kept", node.occupied),
		zap.Int("moved", buffer.occupied),
	)
	return buffer
}

// splitBack splits a full node, keeping capacity/2 elements, and returns the
// new successor.
func (l *unrolledList[T]) splitBack(node *unrolledNode[T]) *unrolledNode[T] {
	buffer := l.allocNode()
	node.threadBack(buffer)
	if l.tail == node {
		l.tail = buffer
	}
	l.opts.stats.IncreaseNodeSplitCount()
	l.opts.logger.Debug("[unrolled-list] node split back",
		zap.Int("kept", node.occupied),
		zap.Int("moved", buffer.occupied),
	)
	return buffer
}

func (l *unrolledList[T]) underflow(node *unrolledNode[T]) bool {
	return node.prev != nil && node.next != nil && node.occupied < l.opts.capacity/2
}

// repair rebalances node until it is no longer an underflowing interior node.
func (l *unrolledList[T]) repair(node *unrolledNode[T], track *position[T]) {
	for l.underflow(node) {
		l.rebalance(node, track)
	}
}

// repairSpan repairs every node from `from` up to `to`, stopping early if
// `to` gets absorbed by its predecessor.
func (l *unrolledList[T]) repairSpan(from, to *unrolledNode[T], track *position[T]) {
	for node := from; node != nil; node = node.next {
		l.repair(node, track)
		if node == to || !l.linked(to) {
			return
		}
	}
}

// rebalance lifts an underflowing interior node to capacity/2 elements by
// borrowing from the predecessor, else from the successor, as long as the
// donor keeps capacity/2 itself. Otherwise the successor is merged into node.
// track keeps pointing at the same element, or the same one-past position.
func (l *unrolledList[T]) rebalance(node *unrolledNode[T], track *position[T]) {
	half := l.opts.capacity / 2
	prev, next := node.prev, node.next
	if prev.occupied+node.occupied >= 2*half {
		k := half - node.occupied
		if track != nil {
			switch {
			case track.node == node:
				track.idx += k
			case track.node == prev && track.idx >= prev.occupied-k:
				track.node, track.idx = node, track.idx-(prev.occupied-k)
			}
		}
		prev.moveBackTo(node, k)
		l.opts.logger.Debug("[unrolled-list] node borrowed from predecessor", zap.Int("moved", k))
		return
	}
	if next.occupied+node.occupied >= 2*half {
		k := half - node.occupied
		if track != nil && track.node == next {
			if track.idx < k {
				track.node, track.idx = node, node.occupied+track.idx
			} else {
				track.idx -= k
			}
		}
		next.moveFrontTo(node, k)
		l.opts.logger.Debug("[unrolled-list] node borrowed from successor", zap.Int("moved", k))
		return
	}
	if track != nil && track.node == next {
		track.node, track.idx = node, node.occupied+track.idx
	}
	next.moveFrontTo(node, next.occupied)
	l.unlink(next)
}
