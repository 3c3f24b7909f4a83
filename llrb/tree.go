package llrb

import (
	"github.com/ajw170/llrbmap/compare"
	"github.com/ajw170/llrbmap/diag"
)

/*
rotateLeft makes n.right the new subtree root, moving its left child to
become n's right child and making n the new root's left child. n's color
transfers to the new root and n is forced red. n.right must be red; a
call on a black pivot is a programming error and is reported to sink
without mutating the tree.

	     |                         |
	     n                         p
	    / \     rotateLeft(n)     / \
	   L   p    =============>   n   Pr
	      / \                   / \
	    Pl   Pr                L   Pl
*/
func rotateLeft[K any, V any](n *node[K, V], sink diag.Sink) *node[K, V] {
	if n == nil || !n.hasRightRedChild() {
		sink.RotateLeftMisuse()
		return n
	}
	p := n.right
	n.right = p.left
	p.left = n

	if n.isRed() {
		p.setRed()
	} else {
		p.setBlack()
	}
	n.setRed()
	return p
}

// rotateRight is the mirror image of rotateLeft: n.left must be red.
func rotateRight[K any, V any](n *node[K, V], sink diag.Sink) *node[K, V] {
	if n == nil || !n.hasLeftRedChild() {
		sink.RotateRightMisuse()
		return n
	}
	p := n.left
	n.left = p.right
	p.right = n

	if n.isRed() {
		p.setRed()
	} else {
		p.setBlack()
	}
	n.setRed()
	return p
}

// repair restores the left-leaning invariants at n bottom-up, in the
// exact order required: rotate left if the right child is red and the
// left isn't, then rotate right if two reds run down the left spine,
// then flip colors if both children ended up red. The order matters —
// each step's precondition can be produced by the step before it.
func repair[K any, V any](n *node[K, V], sink diag.Sink) *node[K, V] {
	if n.hasRightRedChild() && !n.hasLeftRedChild() {
		n = rotateLeft(n, sink)
	}
	if n.hasLeftRedChild() && n.left.hasLeftRedChild() {
		n = rotateRight(n, sink)
	}
	if n.hasLeftRedChild() && n.hasRightRedChild() {
		colorFlip(n)
	}
	return n
}

// colorFlip sets n red and both of its children black, preserving the
// path's black-balance while resolving the local red-red conflict.
func colorFlip[K any, V any](n *node[K, V]) {
	n.setRed()
	n.left.setBlack()
	n.right.setBlack()
}

// rget is the recursive left-leaning get: if the subtree is empty it
// allocates a new RED, ALIVE node holding a zero value and reports its
// location; on an exact match it resurrects the node (without touching
// the value) and reports its location; otherwise it recurses toward the
// match and repairs on the way back up.
func rget[K any, V any](n *node[K, V], key K, less compare.Less[K], location **node[K, V], sink diag.Sink) *node[K, V] {
	if n == nil {
		n = newNode(key, *new(V))
		*location = n
		return n
	}
	switch {
	case less(key, n.key):
		n.left = rget(n.left, key, less, location, sink)
	case less(n.key, key):
		n.right = rget(n.right, key, less, location, sink)
	default:
		*location = n
		n.setAlive()
		return n
	}
	return repair(n, sink)
}

// rinsert is the recursive left-leaning insert: on an exact match it
// overwrites the value and resurrects the node; otherwise behaves like
// rget.
func rinsert[K any, V any](n *node[K, V], key K, val V, less compare.Less[K], sink diag.Sink) *node[K, V] {
	if n == nil {
		return newNode(key, val)
	}
	switch {
	case less(key, n.key):
		n.left = rinsert(n.left, key, val, less, sink)
	case less(n.key, key):
		n.right = rinsert(n.right, key, val, less, sink)
	default:
		n.val = val
		n.setAlive()
		return n
	}
	return repair(n, sink)
}

// erase performs a plain BST descent and flips the matching node's
// liveness bit to DEAD. No rebalancing occurs. A missing key is a silent
// no-op.
func erase[K any, V any](n *node[K, V], key K, less compare.Less[K]) {
	for n != nil {
		switch {
		case less(key, n.key):
			n = n.left
		case less(n.key, key):
			n = n.right
		default:
			n.setDead()
			return
		}
	}
}

// height returns the edge-count of the longest root-to-leaf path, or -1
// for an empty subtree. O(n) by design — see SPEC_FULL.md §3.
func height[K any, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	lh, rh := height(n.left), height(n.right)
	if lh < rh {
		return 1 + rh
	}
	return 1 + lh
}

// size counts alive nodes only. O(n).
func size[K any, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	count := 0
	if n.isAlive() {
		count = 1
	}
	return count + size(n.left) + size(n.right)
}

// numNodes counts alive and dead nodes. O(n).
func numNodes[K any, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + numNodes(n.left) + numNodes(n.right)
}

// release unlinks every descendant of n so a large subtree can be
// collected promptly instead of waiting on a single dropped root
// reference, mirroring the teacher's own iterative Release().
func release[K any, V any](n *node[K, V]) {
	if n == nil {
		return
	}
	release(n.left)
	release(n.right)
	n.left, n.right = nil, nil
}
