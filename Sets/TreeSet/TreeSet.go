package TreeSet

import (
	"github.com/g-m-twostay/ordset/Sets"
	"github.com/g-m-twostay/ordset/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is a Sets.Set kept in ascending order by a Trees.AVLTree.
// Range visits elements in ascending order and Take removes the minimum.
// The zero value is an empty set. It isn't safe for concurrent use.
type TreeSet[E constraints.Ordered] struct {
	t Trees.AVLTree[E]
}

var (
	_ Sets.Set[int]         = (*TreeSet[int])(nil)
	_ Sets.ExtendedSet[int] = (*TreeSet[int])(nil)
)

// New TreeSet holding es, which may be in any order and contain duplicates.
func New[E constraints.Ordered](es ...E) *TreeSet[E] {
	u := new(TreeSet[E])
	for _, e := range es {
		u.t.Insert(e)
	}
	return u
}

// FromSorted builds the set in O(n) from a strictly ascending slice.
func FromSorted[E constraints.Ordered](sorted []E) (*TreeSet[E], error) {
	t, err := Trees.FromChecked(sorted)
	if err != nil {
		return nil, err
	}
	return &TreeSet[E]{*t}, nil
}

// Tree gives direct access to the underlying tree.
func (u *TreeSet[E]) Tree() *Trees.AVLTree[E] {
	return &u.t
}

func (u *TreeSet[E]) Put(e E) bool {
	return u.t.Insert(e)
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Remove(e)
}

func (u *TreeSet[E]) Size() uint {
	return uint(u.t.Size())
}

// Take removes and returns the minimum.
func (u *TreeSet[E]) Take() E {
	e, ok := u.t.Minimum()
	if ok {
		u.t.Remove(e)
	}
	return e
}

func (u *TreeSet[E]) Range(f func(E) bool) {
	for next := u.t.InOrder(); ; {
		e, ok := next()
		if !ok || !f(e) {
			return
		}
	}
}

// Select the k-th smallest element, 1<=k<=Size().
func (u *TreeSet[E]) Select(k int) (E, bool) {
	return u.t.Select(k)
}

// CountRange counts the elements in [lo,hi].
func (u *TreeSet[E]) CountRange(lo, hi E) int {
	return u.t.CountRange(lo, hi)
}

// Slice of the elements in ascending order.
func (u *TreeSet[E]) Slice() []E {
	return u.t.ToSlice()
}

func (u *TreeSet[E]) PutAll(o Sets.Set[E]) (c uint) {
	o.Range(func(e E) bool {
		if u.t.Insert(e) {
			c++
		}
		return true
	})
	return
}

func (u *TreeSet[E]) RemoveAll(o Sets.Set[E]) (c uint) {
	// o may be u itself, so collect first.
	var rm []E
	o.Range(func(e E) bool {
		rm = append(rm, e)
		return true
	})
	for _, e := range rm {
		if u.t.Remove(e) {
			c++
		}
	}
	return
}

func (u *TreeSet[E]) Eq(o Sets.Set[E]) bool {
	if u.Size() != o.Size() {
		return false
	}
	eq := true
	u.Range(func(e E) bool {
		eq = o.Has(e)
		return eq
	})
	return eq
}

func (u *TreeSet[E]) Union(o Sets.Set[E]) {
	u.PutAll(o)
}

func (u *TreeSet[E]) Intersect(o Sets.Set[E]) {
	var rm []E
	u.Range(func(e E) bool {
		if !o.Has(e) {
			rm = append(rm, e)
		}
		return true
	})
	for _, e := range rm {
		u.t.Remove(e)
	}
}

// Filter returns a new TreeSet with the elements for which f is true.
// The elements arrive sorted, so the result is built without rebalancing.
func (u *TreeSet[E]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	var keep []E
	u.Range(func(e E) bool {
		if f(e) {
			keep = append(keep, e)
		}
		return true
	})
	return &TreeSet[E]{*Trees.From(keep)}
}
