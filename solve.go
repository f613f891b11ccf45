package basisfactor

// Ftran solves B x = rhs in place (C6): rhs is read indexed by row and
// overwritten with the solution indexed by basic-column position,
// following spec.md §4.5's HVector contract. Any applied rank-one
// updates (C7) are applied after the L and U stages, in the order they
// were applied.
func (e *Engine) Ftran(rhs *DenseVector) error {
	if !e.IsFactored() {
		return ErrNotFactored
	}
	m := e.numRow
	y := e.dwork[:m]
	for i := range y {
		y[i] = 0
	}

	if rhs.Packed && rhs.density() < 0.5 {
		for _, row := range rhs.Index[:rhs.Count] {
			y[e.lPivotLookup[row]] = rhs.Array[row]
		}
	} else {
		for row, v := range rhs.Array {
			if v != 0 {
				y[e.lPivotLookup[row]] = v
			}
		}
	}

	e.solveLForward(y)
	e.solveUBackward(y)
	e.applyUpdatesForward(y)

	rhs.Clear()
	for k, v := range y {
		if v != 0 {
			rhs.Array[k] = v
			rhs.Mark(k)
		}
	}
	return nil
}

// Btran solves B^T x = rhs in place: rhs is read indexed by
// basic-column position and overwritten with the solution indexed by
// row.
func (e *Engine) Btran(rhs *DenseVector) error {
	if !e.IsFactored() {
		return ErrNotFactored
	}
	m := e.numRow
	c := e.dwork[:m]
	for i := range c {
		c[i] = 0
	}
	if rhs.Packed && rhs.density() < 0.5 {
		for _, k := range rhs.Index[:rhs.Count] {
			c[k] = rhs.Array[k]
		}
	} else {
		copy(c, rhs.Array[:m])
	}

	e.applyUpdatesBackward(c)
	e.solveUTransposeForward(c)
	e.solveLTransposeBackward(c)

	rhs.Clear()
	for k, v := range c {
		if v != 0 {
			row := e.lPivotIndex[k]
			rhs.Array[row] = v
			rhs.Mark(row)
		}
	}
	return nil
}

// solveLForward applies L^-1 in place: L is unit lower triangular in
// pivot order, stored column-wise, column k holding multipliers for
// rows pivoted after k.
func (e *Engine) solveLForward(y []float64) {
	for k := 0; k < len(y); k++ {
		if y[k] == 0 {
			continue
		}
		for p := e.lStart[k]; p < e.lStart[k+1]; p++ {
			y[e.lIndex[p]] -= e.lValue[p] * y[k]
		}
	}
}

// solveUBackward applies U^-1 in place: U is upper triangular in pivot
// order, column k holding entries at rows pivoted before k plus the
// diagonal uPivotValue[k].
func (e *Engine) solveUBackward(y []float64) {
	for k := len(y) - 1; k >= 0; k-- {
		if y[k] == 0 {
			continue
		}
		z := y[k] / e.uPivotValue[k]
		y[k] = z
		if z == 0 {
			continue
		}
		for p := e.uStart[k]; p < e.uLastP[k]; p++ {
			y[e.uIndex[p]] -= e.uValue[p] * z
		}
	}
}

// solveUTransposeForward applies (U^T)^-1 in place by forward
// accumulation: row k of U^T is column k of U, so t[k] only needs
// t[r] for r<k, already computed.
func (e *Engine) solveUTransposeForward(c []float64) {
	for k := 0; k < len(c); k++ {
		sum := c[k]
		for p := e.uStart[k]; p < e.uLastP[k]; p++ {
			sum -= e.uValue[p] * c[e.uIndex[p]]
		}
		c[k] = sum / e.uPivotValue[k]
	}
}

// solveLTransposeBackward applies (L^T)^-1 in place by back
// substitution: row k of L^T is column k of L, so w[k] only needs
// w[r] for r>k, already computed.
func (e *Engine) solveLTransposeBackward(c []float64) {
	for k := len(c) - 1; k >= 0; k-- {
		sum := c[k]
		for p := e.lStart[k]; p < e.lStart[k+1]; p++ {
			sum -= e.lValue[p] * c[e.lIndex[p]]
		}
		c[k] = sum
	}
}
