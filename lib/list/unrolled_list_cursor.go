package list

// position is the (node, index) pair shared by every cursor kind.
// Index -1 is the before-begin position of the head and index occupied is
// the one-past-end position of the tail. Both only exist on the terminal
// nodes in canonical form.
type position[T any] struct {
	list *unrolledList[T]
	node *unrolledNode[T]
	idx  int
}

// canonical folds a one-past-end index into the successor's first slot and a
// negative index into the predecessor's last slot.
func (p position[T]) canonical() position[T] {
	if p.node == nil {
		return p
	}
	for p.idx >= p.node.occupied && p.node.next != nil {
		p.idx -= p.node.occupied
		p.node = p.node.next
	}
	for p.idx < 0 && p.node.prev != nil {
		p.node = p.node.prev
		p.idx += p.node.occupied
	}
	return p
}

func (p position[T]) forward() position[T] {
	if p.node == nil {
		return p
	}
	if p.idx < p.node.occupied-1 || p.node.next == nil {
		p.idx++
		return p
	}
	p.node, p.idx = p.node.next, 0
	return p
}

func (p position[T]) backward() position[T] {
	if p.node == nil {
		return p
	}
	if p.idx > 0 || p.node.prev == nil {
		p.idx--
		return p
	}
	p.node = p.node.prev
	p.idx = p.node.occupied - 1
	return p
}

func (p position[T]) valid() bool {
	return p.node != nil && p.idx >= 0 && p.idx < p.node.occupied
}

func (p position[T]) isEnd() bool {
	return p.node == nil || (p.node.next == nil && p.idx >= p.node.occupied)
}

func (p position[T]) isREnd() bool {
	return p.node == nil || (p.node.prev == nil && p.idx < 0)
}

func (p position[T]) equal(o position[T]) bool {
	p, o = p.canonical(), o.canonical()
	return p.node == o.node && p.idx == o.idx
}

func (p position[T]) advance(n int) position[T] {
	for ; n > 0; n-- {
		p = p.forward()
	}
	for ; n < 0; n++ {
		p = p.backward()
	}
	return p
}

// distance counts single steps from p to o, walking backward when reverse is
// set. It returns -1 if o is not reached before the walk runs off the chain.
func (p position[T]) distance(o position[T], reverse bool) int {
	from, to := p.canonical(), o.canonical()
	for n := 0; ; n++ {
		if from.node == to.node && from.idx == to.idx {
			return n
		}
		if (!reverse && from.isEnd()) || (reverse && from.isREnd()) {
			return -1
		}
		if reverse {
			from = from.backward()
		} else {
			from = from.forward()
		}
	}
}

func (p position[T]) mustValid() {
	if !p.valid() {
		panic(ErrUnrolledListInvalidPosition)
	}
}

func (p position[T]) value() T {
	p.mustValid()
	return p.node.at(p.idx)
}

func (p position[T]) ref() *T {
	p.mustValid()
	return p.node.ref(p.idx)
}

var (
	_ Position[struct{}] = Cursor[struct{}]{}
	_ Position[struct{}] = ConstCursor[struct{}]{}
)

// Cursor is a mutable forward cursor.
type Cursor[T any] struct {
	p position[T]
}

func (c Cursor[T]) pos() position[T]          { return c.p }
func (c Cursor[T]) Next() Cursor[T]           { return Cursor[T]{p: c.p.forward()} }
func (c Cursor[T]) Prev() Cursor[T]           { return Cursor[T]{p: c.p.backward()} }
func (c Cursor[T]) Advance(n int) Cursor[T]   { return Cursor[T]{p: c.p.advance(n)} }
func (c Cursor[T]) Retreat(n int) Cursor[T]   { return Cursor[T]{p: c.p.advance(-n)} }
func (c Cursor[T]) Equal(o Cursor[T]) bool    { return c.p.equal(o.p) }
func (c Cursor[T]) Valid() bool               { return c.p.valid() }
func (c Cursor[T]) Value() T                  { return c.p.value() }
func (c Cursor[T]) Ref() *T                   { return c.p.ref() }
func (c Cursor[T]) Set(v T)                   { *c.p.ref() = v }
func (c Cursor[T]) Const() ConstCursor[T]     { return ConstCursor[T]{p: c.p} }
func (c Cursor[T]) Distance(to Cursor[T]) int { return c.p.distance(to.p, false) }
func (c Cursor[T]) Reverse() ReverseCursor[T] { return ReverseCursor[T]{p: c.p.backward()} }

// ConstCursor is a read-only forward cursor.
type ConstCursor[T any] struct {
	p position[T]
}

func (c ConstCursor[T]) pos() position[T]               { return c.p }
func (c ConstCursor[T]) Next() ConstCursor[T]           { return ConstCursor[T]{p: c.p.forward()} }
func (c ConstCursor[T]) Prev() ConstCursor[T]           { return ConstCursor[T]{p: c.p.backward()} }
func (c ConstCursor[T]) Advance(n int) ConstCursor[T]   { return ConstCursor[T]{p: c.p.advance(n)} }
func (c ConstCursor[T]) Retreat(n int) ConstCursor[T]   { return ConstCursor[T]{p: c.p.advance(-n)} }
func (c ConstCursor[T]) Equal(o ConstCursor[T]) bool    { return c.p.equal(o.p) }
func (c ConstCursor[T]) Valid() bool                    { return c.p.valid() }
func (c ConstCursor[T]) Value() T                       { return c.p.value() }
func (c ConstCursor[T]) Distance(to ConstCursor[T]) int { return c.p.distance(to.p, false) }
func (c ConstCursor[T]) Reverse() ConstReverseCursor[T] { return ConstReverseCursor[T]{p: c.p.backward()} }

// ReverseCursor is a mutable cursor walking from the back to the front.
// It dereferences the element it sits on. Base returns the forward cursor
// one step after it, so c.Reverse().Base() equals c.
type ReverseCursor[T any] struct {
	p position[T]
}

func (c ReverseCursor[T]) Next() ReverseCursor[T]           { return ReverseCursor[T]{p: c.p.backward()} }
func (c ReverseCursor[T]) Prev() ReverseCursor[T]           { return ReverseCursor[T]{p: c.p.forward()} }
func (c ReverseCursor[T]) Advance(n int) ReverseCursor[T]   { return ReverseCursor[T]{p: c.p.advance(-n)} }
func (c ReverseCursor[T]) Retreat(n int) ReverseCursor[T]   { return ReverseCursor[T]{p: c.p.advance(n)} }
func (c ReverseCursor[T]) Equal(o ReverseCursor[T]) bool    { return c.p.equal(o.p) }
func (c ReverseCursor[T]) Valid() bool                      { return c.p.valid() }
func (c ReverseCursor[T]) Value() T                         { return c.p.value() }
func (c ReverseCursor[T]) Ref() *T                          { return c.p.ref() }
func (c ReverseCursor[T]) Set(v T)                          { *c.p.ref() = v }
func (c ReverseCursor[T]) Const() ConstReverseCursor[T]     { return ConstReverseCursor[T]{p: c.p} }
func (c ReverseCursor[T]) Distance(to ReverseCursor[T]) int { return c.p.distance(to.p, true) }
func (c ReverseCursor[T]) Base() Cursor[T]                  { return Cursor[T]{p: c.p.forward().canonical()} }

// ConstReverseCursor is a read-only cursor walking from the back to the front.
type ConstReverseCursor[T any] struct {
	p position[T]
}

func (c ConstReverseCursor[T]) Next() ConstReverseCursor[T]           { return ConstReverseCursor[T]{p: c.p.backward()} }
func (c ConstReverseCursor[T]) Prev() ConstReverseCursor[T]           { return ConstReverseCursor[T]{p: c.p.forward()} }
func (c ConstReverseCursor[T]) Advance(n int) ConstReverseCursor[T]   { return ConstReverseCursor[T]{p: c.p.advance(-n)} }
func (c ConstReverseCursor[T]) Retreat(n int) ConstReverseCursor[T]   { return ConstReverseCursor[T]{p: c.p.advance(n)} }
func (c ConstReverseCursor[T]) Equal(o ConstReverseCursor[T]) bool    { return c.p.equal(o.p) }
func (c ConstReverseCursor[T]) Valid() bool                           { return c.p.valid() }
func (c ConstReverseCursor[T]) Value() T                              { return c.p.value() }
func (c ConstReverseCursor[T]) Distance(to ConstReverseCursor[T]) int { return c.p.distance(to.p, true) }
func (c ConstReverseCursor[T]) Base() ConstCursor[T] {
	return ConstCursor[T]{p: c.p.forward().canonical()}
}
