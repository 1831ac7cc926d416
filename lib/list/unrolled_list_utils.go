package list

import (
	"fmt"

	"go.uber.org/multierr"
)

// Equal reports whether both lists hold the same elements in the same order.
func Equal[T comparable](a, b UnrolledList[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.EqualFunc(b, func(x, y T) bool {
		return x == y
	})
}

// unrolled list structure validation utilities.

// UnrolledListValidate walks the chain and reports every broken structural
// rule: cached counters, link symmetry, terminal nodes, empty nodes and the
// capacity/2 lower bound of interior nodes.
func UnrolledListValidate[T any](l UnrolledList[T]) error {
	ul, ok := l.(*unrolledList[T])
	if !ok || ul == nil {
		return nil
	}

	var merr error
	if ul.head == nil || ul.tail == nil {
		return fmt.Errorf("%w: missing head or tail", ErrUnrolledListLinkViolation)
	}
	if ul.head.prev != nil {
		merr = multierr.Append(merr, fmt.Errorf("%w: head has a predecessor", ErrUnrolledListLinkViolation))
	}
	if ul.tail.next != nil {
		merr = multierr.Append(merr, fmt.Errorf("%w: tail has a successor", ErrUnrolledListLinkViolation))
	}

	half := ul.opts.capacity / 2
	var (
		elements, nodes int64
		last            *unrolledNode[T]
	)
	for node, i := ul.head, 0; node != nil; node, i = node.next, i+1 {
		nodes++
		elements += int64(node.occupied)
		last = node
		if node.capacity() != ul.opts.capacity {
			merr = multierr.Append(merr, fmt.Errorf("%w: node %d capacity %d, expected %d",
				ErrUnrolledListBalanceViolation, i, node.capacity(), ul.opts.capacity))
		}
		if node.occupied < 0 || node.occupied > node.capacity() {
			merr = multierr.Append(merr, fmt.Errorf("%w: node %d occupied %d out of [0, %d]",
				ErrUnrolledListCountViolation, i, node.occupied, node.capacity()))
		}
		if node.next != nil && node.next.prev != node {
			merr = multierr.Append(merr, fmt.Errorf("%w: node %d is not the predecessor of its successor",
				ErrUnrolledListLinkViolation, i))
		}
		if node.isEmpty() && (node.prev != nil || node.next != nil) {
			merr = multierr.Append(merr, fmt.Errorf("%w: node %d is empty in a chain of many nodes",
				ErrUnrolledListBalanceViolation, i))
		}
		if node.prev != nil && node.next != nil && node.occupied < half {
			merr = multierr.Append(merr, fmt.Errorf("%w: interior node %d holds %d, less than %d",
				ErrUnrolledListBalanceViolation, i, node.occupied, half))
		}
		if nodes > ul.nodeLen+1 {
			// A cycle or a chain longer than recorded, stop walking.
			break
		}
	}
	if last != ul.tail {
		merr = multierr.Append(merr, fmt.Errorf("%w: tail is not reachable from head", ErrUnrolledListLinkViolation))
	}
	if elements != ul.len {
		merr = multierr.Append(merr, fmt.Errorf("%w: counted %d elements, recorded %d",
			ErrUnrolledListCountViolation, elements, ul.len))
	}
	if nodes != ul.nodeLen {
		merr = multierr.Append(merr, fmt.Errorf("%w: counted %d nodes, recorded %d",
			ErrUnrolledListCountViolation, nodes, ul.nodeLen))
	}
	return merr
}
