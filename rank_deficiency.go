package basisfactor

// resolveRankDeficiency (C5) pairs the columns and rows buildKernel
// could not pivot structurally or numerically and substitutes a logical
// (slack) pivot for each pair, so the returned factorization stays
// square and nonsingular. By the usual rank argument for a square basis,
// the two lists end up the same length: every genuine pivot in
// buildKernel retires exactly one row and one column together, so
// whatever is left over splits evenly between "no column fits this
// row" and "no row fits this column".
func (e *Engine) resolveRankDeficiency(s *simpleResult, pendingCols, pendingRows []int, stepsTaken int) int {
	k := &e.kernel
	n := len(pendingCols)
	if len(pendingRows) < n {
		n = len(pendingRows)
	}

	for idx := 0; idx < n; idx++ {
		bestCol := pendingCols[idx]
		bestRow := pendingRows[idx]
		origRow := k.rowOrig[bestRow]
		pos := k.colOrig[bestCol]

		pivotOrder := s.numSimple + stepsTaken
		stepsTaken++

		e.lPivotIndex = append(e.lPivotIndex, origRow)
		e.lPivotLookup[origRow] = pivotOrder
		e.lStart = append(e.lStart, len(e.lIndex))

		e.uPivotIndex = append(e.uPivotIndex, -1)
		e.uPivotValue = append(e.uPivotValue, 1.0)
		e.uStart = append(e.uStart, len(e.uIndex))
		e.uLastP = append(e.uLastP, len(e.uIndex))
		e.permute = append(e.permute, -1)

		e.RowWithNoPivot = append(e.RowWithNoPivot, origRow)
		e.ColWithNoPivot = append(e.ColWithNoPivot, pos)
		e.VarWithNoPivot = append(e.VarWithNoPivot, e.basicIndexAt(pos))
	}

	// An uneven split would mean the lockstep retirement in buildKernel
	// missed a pairing opportunity; fail loudly rather than silently
	// under-report the deficiency.
	if len(pendingCols) != len(pendingRows) {
		violate("resolveRankDeficiency", "column deficiency %d != row deficiency %d", len(pendingCols), len(pendingRows))
	}

	return n
}
