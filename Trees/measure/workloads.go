package main

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/g-m-twostay/ordset/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// container is the part of a set every measured implementation offers.
type container interface {
	insert(int)
	remove(int)
	has(int) bool
}

type avlC struct{ t Trees.AVLTree[int] }

func (u *avlC) insert(v int)   { u.t.Insert(v) }
func (u *avlC) remove(v int)   { u.t.Remove(v) }
func (u *avlC) has(v int) bool { return u.t.Has(v) }

type godsAVLC struct{ t *avltree.Tree }

func (u godsAVLC) insert(v int) { u.t.Put(v, struct{}{}) }
func (u godsAVLC) remove(v int) { u.t.Remove(v) }
func (u godsAVLC) has(v int) bool {
	_, ok := u.t.Get(v)
	return ok
}

type godsSetC struct{ s *treeset.Set }

func (u godsSetC) insert(v int)   { u.s.Add(v) }
func (u godsSetC) remove(v int)   { u.s.Remove(v) }
func (u godsSetC) has(v int) bool { return u.s.Contains(v) }

type btreeC struct{ t *btree.BTreeG[int] }

func (u btreeC) insert(v int)   { u.t.ReplaceOrInsert(v) }
func (u btreeC) remove(v int)   { u.t.Delete(v) }
func (u btreeC) has(v int) bool { return u.t.Has(v) }

type llrbC struct{ t *llrb.LLRB }

func (u llrbC) insert(v int)   { u.t.ReplaceOrInsert(llrb.Int(v)) }
func (u llrbC) remove(v int)   { u.t.Delete(llrb.Int(v)) }
func (u llrbC) has(v int) bool { return u.t.Has(llrb.Int(v)) }

type hashmapC struct{ m *hashmap.Map[int, struct{}] }

func (u hashmapC) insert(v int) { u.m.Set(v, struct{}{}) }
func (u hashmapC) remove(v int) { u.m.Del(v) }
func (u hashmapC) has(v int) bool {
	_, ok := u.m.Get(v)
	return ok
}

type haxmapC struct{ m *haxmap.Map[int, struct{}] }

func (u haxmapC) insert(v int) { u.m.Set(v, struct{}{}) }
func (u haxmapC) remove(v int) { u.m.Del(v) }
func (u haxmapC) has(v int) bool {
	_, ok := u.m.Get(v)
	return ok
}

// impls by name. hashmap and haxmap are unordered and only serve as a
// membership baseline.
var impls = map[string]func() container{
	"avl":          func() container { return new(avlC) },
	"gods-avl":     func() container { return godsAVLC{avltree.NewWithIntComparator()} },
	"gods-treeset": func() container { return godsSetC{treeset.NewWithIntComparator()} },
	"btree":        func() container { return btreeC{btree.NewOrderedG[int](32)} },
	"llrb":         func() container { return llrbC{llrb.New()} },
	"hashmap":      func() container { return hashmapC{hashmap.New[int, struct{}]()} },
	"haxmap":       func() container { return haxmapC{haxmap.New[int, struct{}]()} },
}

func implNames() []string {
	names := make([]string, 0, len(impls))
	for name := range impls {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// keys returns n pseudo random elements and the bound used for the random queries.
func keys(n int, seed int64) (all []int, bound int) {
	r := rand.New(rand.NewSource(seed))
	all = make([]int, n)
	for i := range all {
		all[i] = r.Intn(n * 4)
	}
	return all, n * 4
}

var sideEff bool

// delQry is the benchmark of one step: fill a fresh container with all, remove
// the first rmv of them, then query every element and as many random values.
func delQry(newC func() container, all []int, rmv, bound int, seed int64) func(b *testing.B) {
	return func(b *testing.B) {
		r := rand.New(rand.NewSource(seed))
		for range b.N {
			b.StopTimer()
			c := newC()
			for _, v := range all {
				c.insert(v)
			}
			b.StartTimer()
			for _, v := range all[:rmv] {
				c.remove(v)
			}
			for _, v := range all {
				sideEff = c.has(v)
			}
			for range len(all) {
				sideEff = c.has(r.Intn(bound))
			}
		}
	}
}
