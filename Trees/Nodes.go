package Trees

// A node in the AVLTree.
// lc and rc are the number of nodes strictly inside the left and right
// subtrees. h is the height of the subtree rooted here, a leaf has h=1.
type node[T any] struct {
	v      T
	l, r   nodePtr[T]
	lc, rc int
	h      int
}

// Pointer to a node. A nil nodePtr is an empty subtree, its height and size are 0.
type nodePtr[T any] *node[T]

// height of the subtree at n, 0 for nil.
func height[T any](n nodePtr[T]) int {
	if n == nil {
		return 0
	}
	return n.h
}

// sizeOf the subtree at n, 0 for nil.
func sizeOf[T any](n nodePtr[T]) int {
	if n == nil {
		return 0
	}
	return n.lc + n.rc + 1
}

// balanceFactor is height(n.l)-height(n.r). The AVL invariant keeps it in [-1,1].
func balanceFactor[T any](n nodePtr[T]) int {
	if n == nil {
		return 0
	}
	return height(n.l) - height(n.r)
}

// fixHeight recomputes n.h from its children.
func fixHeight[T any](n nodePtr[T]) {
	n.h = max(height(n.l), height(n.r)) + 1
}

// fixCounts recomputes n.lc and n.rc from its children, which must be correct already.
func fixCounts[T any](n nodePtr[T]) {
	n.lc, n.rc = sizeOf(n.l), sizeOf(n.r)
}

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference in order
// to modify its content. Heights are recomputed child first; lc and rc are not touched.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n *nodePtr[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	fixHeight(r)
	fixHeight(rc)
	*n = rc
}

// rotateRight is the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T any](n *nodePtr[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	fixHeight(r)
	fixHeight(lc)
	*n = lc
}

// countedLeft is rotateLeft followed by recounting the two nodes whose subtrees changed.
func countedLeft[T any](n *nodePtr[T]) {
	old := *n
	rotateLeft(n)
	fixCounts(old)
	fixCounts(*n)
}

// countedRight is the mirror of countedLeft.
func countedRight[T any](n *nodePtr[T]) {
	old := *n
	rotateRight(n)
	fixCounts(old)
	fixCounts(*n)
}

// rebalance restores the AVL invariant at *n, assuming both subtrees satisfy it and
// the heights differ by at most 2. The double rotation is chosen by the balance
// factor of the heavy child.
func rebalance[T any](n *nodePtr[T]) {
	cur := *n
	switch bf := balanceFactor(cur); {
	case bf > 1:
		if balanceFactor(cur.l) < 0 {
			countedLeft(&cur.l)
		}
		countedRight(n)
	case bf < -1:
		if balanceFactor(cur.r) > 0 {
			countedRight(&cur.r)
		}
		countedLeft(n)
	}
}

// leftmost node of the non-nil subtree n.
func leftmost[T any](n nodePtr[T]) nodePtr[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the non-nil subtree n.
func rightmost[T any](n nodePtr[T]) nodePtr[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// release every node under n in postorder, dropping all links.
func release[T any](n nodePtr[T]) {
	if n == nil {
		return
	}
	release(n.l)
	release(n.r)
	*n = node[T]{}
}
