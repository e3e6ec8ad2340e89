package Sets

// Set of unique elements.
// Take removes and returns some element, the zero value if the set is empty.
// Range calls f on the elements until f returns false.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}

// ExtendedSet are the operations between two sets. PutAll and RemoveAll return
// how many elements were actually added or removed. Union and Intersect modify
// the receiver in place.
type ExtendedSet[E any] interface {
	PutAll(Set[E]) uint
	RemoveAll(Set[E]) uint
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
	Filter(func(E) bool) ExtendedSet[E]
}
