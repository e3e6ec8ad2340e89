package Trees

// Select [Tree.Select]
// Returns (x,true) if 1<=k<=Size(), otherwise (0,false).
// Every step moves into a subtree whose size is known from lc and rc.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Select(k int) (T, bool) {
	if k < 1 || k > u.size {
		return *new(T), false
	}
	cur := u.root
	for cur != nil {
		if k <= cur.lc {
			cur = cur.l
		} else if k == cur.lc+1 {
			return cur.v, true
		} else {
			k -= cur.lc + 1
			cur = cur.r
		}
	}
	return *new(T), false
}

// RankOf [Tree.RankOf]
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) RankOf(v T) int {
	ra := 0
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return ra + cur.lc + 1
		} else {
			ra += cur.lc + 1
			cur = cur.r
		}
	}
	return 0
}

// CountGEq [Tree.CountGEq]
// A node greater than v counts together with its whole right subtree, then the
// search continues left. Values outside [min,max] are answered from the cache.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) CountGEq(v T) int {
	if u.size == 0 || v > u.max {
		return 0
	} else if v <= u.min {
		return u.size
	}
	c := 0
	for cur := u.root; cur != nil; {
		if v < cur.v {
			c += cur.rc + 1
			cur = cur.l
		} else if v == cur.v {
			return c + cur.rc + 1
		} else {
			cur = cur.r
		}
	}
	return c
}

// CountLEq [Tree.CountLEq]
// Mirror of CountGEq.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) CountLEq(v T) int {
	if u.size == 0 || v < u.min {
		return 0
	} else if v >= u.max {
		return u.size
	}
	c := 0
	for cur := u.root; cur != nil; {
		if v > cur.v {
			c += cur.lc + 1
			cur = cur.r
		} else if v == cur.v {
			return c + cur.lc + 1
		} else {
			cur = cur.l
		}
	}
	return c
}

// CountRange [Tree.CountRange]
// Both ends are inclusive. CountGEq(lo)-CountGEq(hi) leaves out hi itself, so it is
// added back when present. Returns 0 if lo>hi.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) CountRange(lo, hi T) int {
	if lo > hi {
		return 0
	}
	c := u.CountGEq(lo) - u.CountGEq(hi)
	if u.Has(hi) {
		c++
	}
	return c
}
