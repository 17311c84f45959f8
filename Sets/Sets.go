package Sets

// Set of unique elements.
type Set[E any] interface {
	//Put e into the set. Returns true if e wasn't in the set before.
	Put(E) bool
	Has(E) bool
	//Remove e from the set. Returns true if e was in the set.
	Remove(E) bool
	Size() uint
	//Take an element out of the set. Returns the zero value when the set is empty.
	Take() E
	//Range over the elements until f returns false.
	Range(func(E) bool)
}

// ExtendedSet adds bulk operations on top of Set.
type ExtendedSet[E any] interface {
	Set[E]
	//PutAll elements of s. Returns the number of elements that were new.
	PutAll(Set[E]) uint
	//RemoveAll elements of s. Returns the number of elements removed.
	RemoveAll(Set[E]) uint
	//Eq returns true if both sets have the same elements.
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
	//Filter returns a new set with the elements for which f is true.
	Filter(func(E) bool) ExtendedSet[E]
}

// SortedSet is a Set that keeps its elements in ascending order. Range visits
// elements in that order and Take removes the smallest one.
type SortedSet[E any] interface {
	ExtendedSet[E]
	Minimum() (E, bool)
	Maximum() (E, bool)
	Values() []E
}
