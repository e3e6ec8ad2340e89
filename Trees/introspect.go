package Trees

import (
	"github.com/g-m-twostay/ordset/Queues"
)

// ToSlice returns all the elements in ascending order.
// Time: O(n)
func (u *AVLTree[T]) ToSlice() []T {
	s := make([]T, 0, u.size)
	for next := u.InOrder(); ; {
		v, ok := next()
		if !ok {
			return s
		}
		s = append(s, v)
	}
}

// InOrder [Tree.InOrder]
// The iterator keeps a stack of the pending left spine.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(log n)
func (u *AVLTree[T]) InOrder() func() (T, bool) {
	st := make([]nodePtr[T], 0, height(u.root))
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := cur.r; c != nil; c = c.l {
			st = append(st, c)
		}
		return cur.v, true
	}
}

// LeafCount is the number of nodes without children.
// Time: O(n)
func (u *AVLTree[T]) LeafCount() int {
	var count func(nodePtr[T]) int
	count = func(c nodePtr[T]) int {
		if c == nil {
			return 0
		} else if c.l == nil && c.r == nil {
			return 1
		}
		return count(c.l) + count(c.r)
	}
	return count(u.root)
}

// walkLevels visits the tree level by level, root at level 0, calling f with each
// level's nodes left to right. It stops early when f returns false.
func (u *AVLTree[T]) walkLevels(f func(level int, ns []nodePtr[T]) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[nodePtr[T]](uint(u.size/2 + 1))
	q.Push(u.root)
	var ns []nodePtr[T]
	for level := 0; !q.Empty(); level++ {
		ns = ns[:0]
		for range q.Size() {
			c, _ := q.Pop()
			ns = append(ns, c)
			if c.l != nil {
				q.Push(c.l)
			}
			if c.r != nil {
				q.Push(c.r)
			}
		}
		if !f(level, ns) {
			return
		}
	}
}

// LevelCount is the number of nodes at depth level, where the root is at level 0.
// Time: O(n)
func (u *AVLTree[T]) LevelCount(level int) (c int) {
	if level < 0 || level >= height(u.root) {
		return 0
	}
	u.walkLevels(func(l int, ns []nodePtr[T]) bool {
		if l == level {
			c = len(ns)
			return false
		}
		return true
	})
	return
}

// Levels returns the elements level by level, each level from left to right.
// Time: O(n)
func (u *AVLTree[T]) Levels() (r [][]T) {
	u.walkLevels(func(_ int, ns []nodePtr[T]) bool {
		vs := make([]T, len(ns))
		for i, n := range ns {
			vs[i] = n.v
		}
		r = append(r, vs)
		return true
	})
	return
}

// corrupt checks the subtree at c, whose values must lie strictly between *lo and
// *hi when those are non nil. It returns the size of the subtree counted node by
// node, and whether anything is wrong.
func corrupt[T any](c nodePtr[T], less func(a, b T) bool, lo, hi *T) (int, bool) {
	if c == nil {
		return 0, false
	}
	if (lo != nil && !less(*lo, c.v)) || (hi != nil && !less(c.v, *hi)) {
		return 0, true
	}
	ls, bad := corrupt(c.l, less, lo, &c.v)
	if bad {
		return 0, true
	}
	rs, bad := corrupt(c.r, less, &c.v, hi)
	if bad {
		return 0, true
	}
	if ls != c.lc || rs != c.rc || c.h != max(height(c.l), height(c.r))+1 {
		return 0, true
	}
	if bf := balanceFactor(c); bf < -1 || bf > 1 {
		return 0, true
	}
	return ls + rs + 1, false
}

// Corrupt [Tree.Corrupt]
// Checks the ordering, the absence of duplicates, the AVL balance, the cached
// heights and subtree sizes of every node, and the cached size, minimum and
// maximum of the tree against a full recount.
// Time: O(n)
func (u *AVLTree[T]) Corrupt() bool {
	sz, bad := corrupt(u.root, func(a, b T) bool { return a < b }, nil, nil)
	if bad || sz != u.size {
		return true
	}
	if u.size > 0 {
		return leftmost(u.root).v != u.min || rightmost(u.root).v != u.max
	}
	return false
}
