package Trees

// Tree represents an ordered set implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and should not be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is
	//already in the tree.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v
	//isn't in the tree.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Select finds the k-th smallest element.
	//1<=k<=Size().
	Select(k int) (T, bool)
	//RankOf v in the tree according to in-order.
	//1<=r<=Size(), 0 if v isn't in the tree.
	RankOf(v T) int
	//CountGEq counts the elements that are >= v.
	CountGEq(v T) int
	//CountLEq counts the elements that are <= v.
	CountLEq(v T) int
	//CountRange counts the elements e with lo <= e <= hi.
	CountRange(lo, hi T) int
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() int
	//InOrder returns a closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

var _ Tree[int] = (*AVLTree[int])(nil)
