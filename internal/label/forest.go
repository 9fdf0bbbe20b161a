package label

// Label identifies a provisional or final component.
type Label uint32

// Forest is a union-find structure over labels stored as an index arena:
// parent[i] is the parent label of label i, and roots are their own parent.
//
// Find does not compress paths and Union always keeps the numerically smaller
// root, so the representative of a class is its smallest label no matter in
// which order merges happen. A Forest is built for one labelling run and then
// discarded.
type Forest struct {
	parent []Label
}

// NewForest returns an empty forest with room for capacity labels.
func NewForest(capacity int) *Forest {
	return &Forest{parent: make([]Label, 0, capacity)}
}

// MakeSet creates a singleton class and returns its label, which is the next
// unused integer starting at 0.
func (f *Forest) MakeSet() Label {
	l := Label(len(f.parent))
	f.parent = append(f.parent, l)
	return l
}

// Find returns the representative of l's class. l must have been returned by
// MakeSet.
func (f *Forest) Find(l Label) Label {
	for f.parent[l] != l {
		l = f.parent[l]
	}
	return l
}

// Union merges the classes of a and b. The root with the larger label is
// re-parented under the smaller one; unions of already equivalent labels do
// nothing.
func (f *Forest) Union(a, b Label) {
	ra, rb := f.Find(a), f.Find(b)
	switch {
	case ra == rb:
	case ra < rb:
		f.parent[rb] = ra
	default:
		f.parent[ra] = rb
	}
}

// Len returns the number of labels created so far.
func (f *Forest) Len() int {
	return len(f.parent)
}
