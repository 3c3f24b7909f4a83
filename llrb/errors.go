package llrb

import "errors"

// ErrCapacityExceeded is returned by Put and GetSlot when the tree was
// built with WithMaxNodes and the ceiling would be exceeded by
// allocating a new node. The tree is left untouched.
var ErrCapacityExceeded = errors.New("llrb: node capacity exceeded")
