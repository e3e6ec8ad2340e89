package Trees

import (
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Linear time versions of the order statistic queries. They only walk the tree
// and never look at lc, rc or the cached extremes, so they check the fast paths.

func selectSlow[T any](c nodePtr[T], k int, sofar *int) (r T, ok bool) {
	if c == nil {
		return
	}
	if r, ok = selectSlow(c.l, k, sofar); ok {
		return
	}
	if *sofar++; *sofar == k {
		return c.v, true
	}
	return selectSlow(c.r, k, sofar)
}

func countSlow[T any](c nodePtr[T], keep func(T) bool) int {
	if c == nil {
		return 0
	}
	total := countSlow(c.l, keep) + countSlow(c.r, keep)
	if keep(c.v) {
		total++
	}
	return total
}

func (u *AVLTree[T]) selectSlow(k int) (T, bool) {
	sofar := 0
	return selectSlow(u.root, k, &sofar)
}

func (u *AVLTree[T]) countGEqSlow(v T) int {
	return countSlow(u.root, func(e T) bool { return e >= v })
}

func (u *AVLTree[T]) countLEqSlow(v T) int {
	return countSlow(u.root, func(e T) bool { return e <= v })
}

func (u *AVLTree[T]) countRangeSlow(lo, hi T) int {
	return countSlow(u.root, func(e T) bool { return lo <= e && e <= hi })
}

func TestAVLTreeMatchesSlowQueries(t *testing.T) {
	const valRange = 600
	tree := New[int]()
	for round := range 300 {
		v := rg.Intn(valRange) - valRange/2
		if rg.Intn(3) == 0 {
			tree.Remove(v)
		} else {
			tree.Insert(v)
		}
		require.False(t, tree.Corrupt(), "corrupt after round %d", round)

		q := rg.Intn(valRange+20) - valRange/2 - 10
		assert.Equal(t, tree.countGEqSlow(q), tree.CountGEq(q), "CountGEq(%d)", q)
		assert.Equal(t, tree.countLEqSlow(q), tree.CountLEq(q), "CountLEq(%d)", q)
		hi := q + rg.Intn(valRange/4) - 10
		assert.Equal(t, tree.countRangeSlow(q, hi), tree.CountRange(q, hi), "CountRange(%d,%d)", q, hi)
		for k := 0; k <= tree.Size()+1; k++ {
			a, aok := tree.Select(k)
			b, bok := tree.selectSlow(k)
			require.Equal(t, bok, aok, "Select(%d)", k)
			require.Equal(t, b, a, "Select(%d)", k)
		}
	}
}

func TestAVLTreeMatchesTreeSet(t *testing.T) {
	tree := New[int]()
	set := treeset.NewWithIntComparator()
	for range 20000 {
		v := rg.Intn(5000)
		if rg.Intn(2) == 0 {
			assert.Equal(t, !set.Contains(v), tree.Insert(v))
			set.Add(v)
		} else {
			assert.Equal(t, set.Contains(v), tree.Remove(v))
			set.Remove(v)
		}
	}
	require.Equal(t, set.Size(), tree.Size())
	vs := set.Values()
	got := tree.ToSlice()
	for i := range vs {
		require.Equal(t, vs[i].(int), got[i])
	}
	if set.Size() > 0 {
		mi, _ := tree.Minimum()
		ma, _ := tree.Maximum()
		assert.Equal(t, vs[0].(int), mi)
		assert.Equal(t, vs[len(vs)-1].(int), ma)
	}
	assert.False(t, tree.Corrupt())
}
