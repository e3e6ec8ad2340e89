package Trees

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))
var cache [2]uint

func (u *AVLTree[T]) _depth(cur nodePtr[T], d uint) {
	if cur.l != nil {
		u._depth(cur.l, d+1)
	}
	if cur.r != nil {
		u._depth(cur.r, d+1)
	}
	if cur.l == nil && cur.r == nil {
		cache[0]++
		cache[1] += d
	}
}

// depth is the average depth of the leaves.
func (u *AVLTree[T]) depth() float32 {
	if u.root == nil {
		return 0
	}
	cache[0], cache[1] = 0, 0
	u._depth(u.root, 1)
	return float32(cache[1]) / float32(cache[0])
}

const (
	tAddN        = 40000
	tAddValRange = 80000
)

func TestTree_Insert(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	{
		a := make([]int, tAddN)
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
		}
		for _, b := range a {
			_, in := content[b]
			if c := tree.Insert(b); c == in {
				t.Errorf("insert key %v returned %v", b, c)
			}
			content[b] = struct{}{}
		}
	}
	if tree.Size() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("depth: %f, size: %d.\n", tree.depth(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for _, v := range tree.ToSlice() {
		if _, in := content[v]; !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

func TestTree_Remove(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	if tree.Remove(0) != false {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	{
		a := make([]int, tAddN)
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
		}
		for _, b := range a {
			tree.Insert(b)
			content[b] = struct{}{}
		}
		for i := range rg.Intn(len(a)) {
			_, in := content[a[i]]
			if b := tree.Remove(a[i]); b != in {
				t.Errorf("failed to delete key %v", a[i])
			}
			if tree.Remove(a[i]) {
				t.Errorf("can delete a second time key %v", a[i])
			}
			delete(content, a[i])
		}
	}
	if tree.Size() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("depth: %f, size: %d.\n", tree.depth(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for _, v := range tree.ToSlice() {
		if _, in := content[v]; !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

func TestTree_InsertRemove(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for range 4 {
		a := make([]int, rg.Intn(tAddN)+1)
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
		}
		for _, b := range a {
			_, in := content[b]
			if c := tree.Insert(b); c == in {
				t.Errorf("insert key %v returned %v", b, c)
			}
			content[b] = struct{}{}
		}
		for i := range rg.Intn(len(a)) {
			_, in := content[a[i]]
			if b := tree.Remove(a[i]); b != in {
				t.Errorf("failed to delete key %v", a[i])
			}
			delete(content, a[i])
		}
		if tree.Corrupt() {
			t.Fatalf("tree is corrupt")
		}
	}
	if tree.Size() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("depth: %f, size: %d.\n", tree.depth(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
}

func TestTree_InOrder(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		tree.Insert(b)
		content[b] = struct{}{}
	}
	var s []int
	for next := tree.InOrder(); ; {
		v, ok := next()
		if !ok {
			break
		}
		s = append(s, v)
	}
	if len(s) != len(content) {
		t.Errorf("sorted size is %d, want %d", len(s), len(content))
	}
	for _, v := range s {
		if _, in := content[v]; !in {
			t.Errorf("sorted has non existent key %v", v)
		}
	}
	if !slices.IsSorted(s) {
		t.Errorf("sorted is not sorted")
	}
	if !slices.Equal(s, tree.ToSlice()) {
		t.Errorf("ToSlice differs from InOrder")
	}
	if _, ok := New[int]().InOrder()(); ok {
		t.Errorf("empty tree iterator yields a value")
	}
}

func TestTree_From(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 8, 100, 1023, 1024} {
		s := make([]int, n)
		for i := range s {
			s[i] = 2*i - n
		}
		tree := From(s)
		if tree.Corrupt() {
			t.Errorf("tree from %d elements is corrupt", n)
		}
		if !slices.Equal(tree.ToSlice(), s) {
			t.Errorf("tree from %d elements doesn't give back its input", n)
		}
		for i, v := range s {
			if r, ok := tree.Select(i + 1); !ok || r != v {
				t.Errorf("Select(%d)=%v,%v, want %v", i+1, r, ok, v)
			}
		}
		// a complete build reaches the minimum height ceil(log2(n+1)) nodes.
		want := -1
		for m := n; m > 0; m >>= 1 {
			want++
		}
		if tree.Height() != want {
			t.Errorf("height of tree from %d elements is %d, want %d", n, tree.Height(), want)
		}
	}
}
