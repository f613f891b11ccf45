package basisfactor

// DenseVector is the external collaborator described in the spec's HVector
// contract (§6): a dense array of dimension m, an index list of its
// nonzeros, a count, and a flag recording whether that index list is
// trustworthy ("packed"). Ftran/Btran operate on it in place.
//
// The simplex driver that owns the surrounding solve is expected to
// construct one per right-hand side and reuse it across iterations; the
// engine never allocates a DenseVector itself.
type DenseVector struct {
	// Array holds the dense values, one per row/basic-column position.
	Array []float64
	// Index lists the positions of (believed) nonzero entries in Array.
	// Only the first Count entries are meaningful.
	Index []int
	// Count is the number of valid entries in Index.
	Count int
	// Packed is true when Index is known to enumerate exactly the
	// nonzeros of Array (no stale or missing entries). Operations that
	// touch Array directly without maintaining Index must clear this.
	Packed bool
}

// NewDenseVector allocates a zeroed DenseVector of dimension n.
func NewDenseVector(n int) *DenseVector {
	return &DenseVector{
		Array: make([]float64, n),
		Index: make([]int, 0, n),
		Packed: true,
	}
}

// Clear zeroes the dense array and empties the index list.
func (v *DenseVector) Clear() {
	for _, i := range v.Index[:v.Count] {
		v.Array[i] = 0
	}
	if v.Count == 0 || !v.Packed {
		// Array may have been written to directly (e.g. by a dense
		// caller) without updating Index; be conservative.
		for i := range v.Array {
			v.Array[i] = 0
		}
	}
	v.Index = v.Index[:0]
	v.Count = 0
	v.Packed = true
}

// Mark records index i as a (possibly new) nonzero without touching
// Array[i] itself; callers set the value first, then Mark.
func (v *DenseVector) Mark(i int) {
	if v.Count < len(v.Index) {
		v.Index = v.Index[:v.Count]
	}
	v.Index = append(v.Index, i)
	v.Count++
	if v.Count > len(v.Array) {
		v.Packed = false
	}
}

// Pack rebuilds Index by scanning Array, discarding any stale or
// duplicate entries. Used after an operation wrote Array directly.
func (v *DenseVector) Pack() {
	v.Index = v.Index[:0]
	for i, x := range v.Array {
		if x != 0 {
			v.Index = append(v.Index, i)
		}
	}
	v.Count = len(v.Index)
	v.Packed = true
}

// Saxpy computes Array += alpha*x.Array, densely, and marks the result
// unpacked (the caller should Pack before relying on Index again).
func (v *DenseVector) Saxpy(alpha float64, x *DenseVector) {
	for i, xv := range x.Array {
		if xv != 0 {
			v.Array[i] += alpha * xv
		}
	}
	v.Packed = false
}

// density reports the fraction of Array entries believed nonzero,
// consulting Index when packed and falling back to a full scan
// otherwise. Used to pick between the sparse and dense solve paths.
func (v *DenseVector) density() float64 {
	n := len(v.Array)
	if n == 0 {
		return 0
	}
	if v.Packed {
		return float64(v.Count) / float64(n)
	}
	nz := 0
	for _, x := range v.Array {
		if x != 0 {
			nz++
		}
	}
	return float64(nz) / float64(n)
}
