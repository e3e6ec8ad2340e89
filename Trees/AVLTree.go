package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by checking the heights of subtrees, so the
// height of the tree is at most 1.44*log2(n+2).
// Every node also keeps the sizes of its two subtrees, which makes Select,
// RankOf and the Count* queries O(log n) instead of a full traversal.
// The tree caches its size, minimum and maximum; the cached extremes are
// only meaningful while Size()>0.
// The zero value is an empty tree ready to use. An AVLTree isn't safe for
// concurrent use, callers must serialize access themselves.
// T must be totally ordered, so NaN values of floating point types are not allowed.
type AVLTree[T constraints.Ordered] struct {
	root     nodePtr[T]
	size     int
	min, max T
}

// New returns an empty AVLTree.
func New[T constraints.Ordered]() *AVLTree[T] {
	return new(AVLTree[T])
}

// From builds an AVLTree from the given sorted slice recursively. This is faster than
// repeatedly calling Insert. The given slice must be sorted in ascending order and
// mustn't contain duplicate elements, otherwise the tree will be corrupt.
// The tree has the minimum possible height ceil(log2(n+1)).
// Time: O(n).
func From[T constraints.Ordered](sli []T) *AVLTree[T] {
	var build func([]T) nodePtr[T]
	build = func(s []T) nodePtr[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		var n nodePtr[T] = &node[T]{v: s[mid], l: build(s[:mid]), r: build(s[mid+1:]), lc: mid, rc: len(s) - mid - 1}
		fixHeight(n)
		return n
	}
	u := &AVLTree[T]{root: build(sli), size: len(sli)}
	if len(sli) > 0 {
		u.min, u.max = sli[0], sli[len(sli)-1]
	}
	return u
}

// FromChecked is From but checks that sli is strictly ascending first. The first
// pair out of order is reported as an InvalidSliceError.
// Time: O(n).
func FromChecked[T constraints.Ordered](sli []T) (*AVLTree[T], error) {
	for i := 1; i < len(sli); i++ {
		if !(sli[i-1] < sli[i]) {
			return nil, InvalidSliceError[T]{sli[i-1], sli[i], i}
		}
	}
	return From(sli), nil
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Size() int {
	return u.size
}

// Height is the number of edges on the longest path from the root to a leaf,
// -1 for an empty tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Height() int {
	return height(u.root) - 1
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case nothing is modified.
func (u *AVLTree[T]) insert(curPtr *nodePtr[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &node[T]{v: v, h: 1}
		return true
	}
	if v < cur.v {
		if !u.insert(&cur.l, v) {
			return false
		}
		cur.lc++
	} else if v == cur.v {
		return false
	} else {
		if !u.insert(&cur.r, v) {
			return false
		}
		cur.rc++
	}
	fixHeight(cur)
	// the new leaf is in the heavy child's subtree, comparing v with that child
	// tells whether it went to the outer or the inner grandchild.
	switch bf := balanceFactor(cur); {
	case bf < -1 && v > cur.r.v:
		countedLeft(curPtr)
	case bf < -1 && v < cur.r.v:
		countedRight(&cur.r)
		countedLeft(curPtr)
	case bf > 1 && v < cur.l.v:
		countedRight(curPtr)
	case bf > 1 && v > cur.l.v:
		countedLeft(&cur.l)
		countedRight(curPtr)
	}
	return true
}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert that also maintains the cached size and extremes.
// Time: O(log n)
func (u *AVLTree[T]) Insert(v T) bool {
	if !u.insert(&u.root, v) {
		return false
	}
	if u.size == 0 || v > u.max {
		u.max = v
	}
	if u.size == 0 || v < u.min {
		u.min = v
	}
	u.size++
	return true
}

// remove an element v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if the removal failed(v doesn't exist in u),
// in which case nothing is modified. A node with two children takes the value of
// its in-order successor, which is then removed from the right subtree.
func (u *AVLTree[T]) remove(curPtr *nodePtr[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if v < cur.v {
		if !u.remove(&cur.l, v) {
			return false
		}
		cur.lc--
	} else if v > cur.v {
		if !u.remove(&cur.r, v) {
			return false
		}
		cur.rc--
	} else if cur.l == nil {
		*curPtr = cur.r
		cur.r = nil
		return true
	} else if cur.r == nil {
		*curPtr = cur.l
		cur.l = nil
		return true
	} else {
		cur.v = leftmost(cur.r).v
		u.remove(&cur.r, cur.v)
		cur.rc--
	}
	fixHeight(cur)
	rebalance(curPtr)
	return true
}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove that also maintains the cached size and extremes.
// Time: O(log n)
func (u *AVLTree[T]) Remove(v T) bool {
	if !u.remove(&u.root, v) {
		return false
	}
	if u.size--; u.size == 0 {
		u.min, u.max = *new(T), *new(T)
		return true
	}
	if v == u.max {
		u.max = rightmost(u.root).v
	}
	if v == u.min {
		u.min = leftmost(u.root).v
	}
	return true
}

// Clear the tree. Every node is released in postorder.
// Time: O(n)
func (u *AVLTree[T]) Clear() {
	release(u.root)
	u.root, u.size = nil, 0
	u.min, u.max = *new(T), *new(T)
}

// Has [Tree.Has]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Minimum() (T, bool) {
	return u.min, u.size > 0
}

// Maximum [Tree.Maximum]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Maximum() (T, bool) {
	return u.max, u.size > 0
}

// Predecessor [Tree.Predecessor]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Predecessor(v T) (r T, has bool) {
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			r, has = cur.v, true
			cur = cur.r
		}
	}
	return
}

// Successor [Tree.Successor]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Successor(v T) (r T, has bool) {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			r, has = cur.v, true
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return
}
