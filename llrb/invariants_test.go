package llrb

import "errors"

// checkBST walks the structural in-order sequence and confirms it is
// strictly ascending under less, i.e. invariant 1 (BST order).
func checkBST[K any, V any](t *Tree[K, V]) error {
	it := t.StructuralIterator()
	if !it.Next() {
		return nil
	}
	prev := it.Key()
	for it.Next() {
		if !t.less(prev, it.Key()) {
			return errors.New("llrb: bst order violated")
		}
		prev = it.Key()
	}
	return nil
}

// checkLeftLeaning confirms invariants 2 and 3: no red right child with
// a black left sibling, and no two consecutive reds down the left
// spine.
func checkLeftLeaning[K any, V any](t *Tree[K, V]) error {
	var walk func(n *node[K, V]) error
	walk = func(n *node[K, V]) error {
		if n == nil {
			return nil
		}
		if n.hasRightRedChild() && !n.hasLeftRedChild() {
			return errors.New("llrb: right-leaning red edge")
		}
		if n.hasLeftRedChild() && n.left.hasLeftRedChild() {
			return errors.New("llrb: consecutive reds on left spine")
		}
		if err := walk(n.left); err != nil {
			return err
		}
		return walk(n.right)
	}
	return walk(t.root)
}

// checkBlackBalance confirms invariant 4: every root-to-nil-leaf path
// carries the same number of black edges.
func checkBlackBalance[K any, V any](t *Tree[K, V]) error {
	var blackHeight func(n *node[K, V]) (int, error)
	blackHeight = func(n *node[K, V]) (int, error) {
		if n == nil {
			return 0, nil
		}
		lh, err := blackHeight(n.left)
		if err != nil {
			return 0, err
		}
		rh, err := blackHeight(n.right)
		if err != nil {
			return 0, err
		}
		if lh != rh {
			return 0, errors.New("llrb: black-height mismatch")
		}
		if n.isBlack() {
			return lh + 1, nil
		}
		return lh, nil
	}
	_, err := blackHeight(t.root)
	return err
}

// checkRootBlack confirms invariant 5.
func checkRootBlack[K any, V any](t *Tree[K, V]) error {
	if t.root != nil && t.root.isRed() {
		return errors.New("llrb: root is red")
	}
	return nil
}

// checkInvariants runs all five structural invariant checks.
func checkInvariants[K any, V any](t *Tree[K, V]) error {
	for _, check := range []func(*Tree[K, V]) error{
		checkBST[K, V], checkLeftLeaning[K, V], checkBlackBalance[K, V], checkRootBlack[K, V],
	} {
		if err := check(t); err != nil {
			return err
		}
	}
	return nil
}
