package basisfactor

import "os"

// Build forms PBQ = LU for the basis matrix B selected by basicIndex, or
// reports the degree of rank deficiency. It rewrites L, U and the
// permutation, clears the update buffer, and reorders basicIndex in
// place to match pivot order (the caller observes this reordering).
//
// Returns (rankDeficiency, nil) on success. rankDeficiency > 0 means
// rankDeficiency basis columns had no acceptable pivot; RowWithNoPivot/
// ColWithNoPivot/VarWithNoPivot name them and the engine has substituted
// logical (slack) columns so the returned factorization is still
// nonsingular. A non-nil error means Build could not proceed at all
// (ErrNotConfigured, ErrAMatrixInvalidated, ErrRectangularBasisUnsupported,
// ErrBuildTimedOut).
func (e *Engine) Build() (int, error) {
	if e.state == stateUnconfigured {
		return 0, ErrNotConfigured
	}
	if !e.aMatrixValid {
		return 0, ErrAMatrixInvalidated
	}
	if e.numBasic != e.numRow {
		return 0, ErrRectangularBasisUnsupported
	}

	e.luClear()
	e.BuildStats = BuildStats{NumRow: e.numRow, NumCol: e.numCol, NumBasic: e.numBasic}

	if ok := e.checkTimeBudget(); !ok {
		e.state = stateConfigured
		return 0, ErrBuildTimedOut
	}

	simple := e.buildSimple()

	deficiency, err := e.buildKernel(simple)
	if err != nil {
		e.state = stateConfigured
		return 0, err
	}

	e.buildFinish(simple)

	e.RankDeficiency = deficiency
	if deficiency > 0 {
		e.state = stateFactoredDeficient
	} else {
		e.state = stateFactored
	}
	e.DebugReportBuild(os.Stderr)
	return deficiency, nil
}

// luClear resets L, U, the permutation and the update buffer ahead of a
// fresh Build, per spec.md §3 lifecycle: "each Build rewrites L, U, and
// permutations, and clears update buffers".
func (e *Engine) luClear() {
	e.lPivotIndex = e.lPivotIndex[:0]
	for i := range e.lPivotLookup {
		e.lPivotLookup[i] = -1
	}
	e.lStart = e.lStart[:1]
	e.lStart[0] = 0
	e.lIndex = e.lIndex[:0]
	e.lValue = e.lValue[:0]
	e.lrStart = e.lrStart[:1]
	e.lrStart[0] = 0
	e.lrIndex = e.lrIndex[:0]
	e.lrValue = e.lrValue[:0]

	e.uPivotIndex = e.uPivotIndex[:0]
	e.uPivotValue = e.uPivotValue[:0]
	e.uStart = e.uStart[:0]
	e.uLastP = e.uLastP[:0]
	e.uIndex = e.uIndex[:0]
	e.uValue = e.uValue[:0]
	e.urStart = e.urStart[:1]
	e.urStart[0] = 0
	e.urLastP = e.urLastP[:0]
	e.urSpace = e.urSpace[:0]
	e.urIndex = e.urIndex[:0]
	e.urValue = e.urValue[:0]

	e.permute = e.permute[:0]

	e.pfPivotIndex = e.pfPivotIndex[:0]
	e.pfPivotValue = e.pfPivotValue[:0]
	e.pfStart = []int{0}
	e.pfIndex = e.pfIndex[:0]
	e.pfValue = e.pfValue[:0]

	e.RowWithNoPivot = e.RowWithNoPivot[:0]
	e.ColWithNoPivot = e.ColWithNoPivot[:0]
	e.VarWithNoPivot = e.VarWithNoPivot[:0]

	e.refactorInfo.clear()
	e.refactorInfo.PivotRow = make([]int, 0, e.numRow)
	e.refactorInfo.PivotVar = make([]int, 0, e.numRow)
	e.refactorInfo.PivotValue = make([]float64, 0, e.numRow)
}

// checkTimeBudget is the cooperative time-budget check from spec.md §5.
// The engine carries no wall-clock timer of its own (timing is an
// external collaborator's concern, per §1); a caller-supplied timer would
// plug in here. The only checkpoint is at the start of Build, before any
// work has been done, so the budget counts as exceeded there only when
// BuildTimeLimit is not positive.
func (e *Engine) checkTimeBudget() bool {
	return e.Config.BuildTimeLimit > 0
}

// columnEntries returns the (row, value) pairs of basis position pos's
// column: either the single unit entry of a logical/slack column
// (basicIndex[pos] >= numCol), or the stored A-matrix column.
func (e *Engine) columnEntries(pos int) (rows []int, values []float64) {
	col := e.basicIndex[pos]
	if col >= e.numCol {
		row := col - e.numCol
		return []int{row}, []float64{1.0}
	}
	lo, hi := e.aStart[col], e.aStart[col+1]
	return e.aIndex[lo:hi], e.aValue[lo:hi]
}

func (e *Engine) columnNnz(pos int) int {
	col := e.basicIndex[pos]
	if col >= e.numCol {
		return 1
	}
	return e.aStart[col+1] - e.aStart[col]
}

// buildFinish builds the row-wise mirrors of L and U, permutes
// basicIndex into pivot order, and snapshots the refactor-replay
// information (C8).
func (e *Engine) buildFinish(s *simpleResult) {
	// L's column entries were recorded against original row ids (the
	// companion row's final pivot order is not known until that row is
	// itself chosen, which can happen after the entry is written); remap
	// them now that every row has a pivot order.
	for idx, origRow := range e.lIndex {
		e.lIndex[idx] = e.lPivotLookup[origRow]
	}

	// Permute basicIndex in place: position permute[k] holds the
	// basis-column that became the k-th pivot, or -1 for a rank-deficient
	// slot substituted with the row's logical/slack column.
	newBasic := make([]int, e.numBasic)
	for k, pos := range e.permute {
		if pos < 0 {
			newBasic[k] = e.numCol + e.lPivotIndex[k]
			continue
		}
		newBasic[k] = e.basicIndexAt(pos)
	}
	copy(e.basicIndex, newBasic)

	e.buildRowWiseL()
	e.buildRowWiseU()

	e.refactorInfo.Valid = true
	for k := 0; k < len(e.uPivotIndex); k++ {
		e.refactorInfo.PivotRow = append(e.refactorInfo.PivotRow, e.lPivotIndex[k])
		e.refactorInfo.PivotVar = append(e.refactorInfo.PivotVar, e.basicIndex[k])
		e.refactorInfo.PivotValue = append(e.refactorInfo.PivotValue, e.uPivotValue[k])
	}

	if e.Config.CollectStats {
		e.BuildStats.InvertNumNz = len(e.lIndex) + len(e.uIndex)
	}
	_ = s
}

// basicIndexAt returns the basis-column value at basis position pos,
// before basicIndex has been permuted by this Build.
func (e *Engine) basicIndexAt(pos int) int {
	return e.preBuildBasicIndex[pos]
}

func (e *Engine) buildRowWiseL() {
	n := e.numRow
	count := make([]int, n)
	for _, r := range e.lIndex {
		count[r]++
	}
	e.lrStart = e.lrStart[:1]
	e.lrStart[0] = 0
	for i := 0; i < n; i++ {
		e.lrStart = append(e.lrStart, e.lrStart[i]+count[i])
	}
	total := e.lrStart[n]
	e.lrIndex = make([]int, total)
	e.lrValue = make([]float64, total)
	fill := make([]int, n)
	for k := 0; k < n; k++ {
		for p := e.lStart[k]; p < e.lStart[k+1]; p++ {
			r := e.lIndex[p]
			put := e.lrStart[r] + fill[r]
			fill[r]++
			e.lrIndex[put] = k
			e.lrValue[put] = e.lValue[p]
		}
	}
}

func (e *Engine) buildRowWiseU() {
	n := e.numRow
	count := make([]int, n)
	for k := 0; k < n; k++ {
		for p := e.uStart[k]; p < e.uLastP[k]; p++ {
			count[e.uIndex[p]]++
		}
	}
	e.urStart = e.urStart[:1]
	e.urStart[0] = 0
	for i := 0; i < n; i++ {
		e.urStart = append(e.urStart, e.urStart[i]+count[i])
	}
	total := e.urStart[n]
	e.urIndex = make([]int, total)
	e.urValue = make([]float64, total)
	e.urLastP = make([]int, n)
	e.urSpace = make([]int, n)
	fill := make([]int, n)
	for k := 0; k < n; k++ {
		for p := e.uStart[k]; p < e.uLastP[k]; p++ {
			r := e.uIndex[p]
			put := e.urStart[r] + fill[r]
			fill[r]++
			e.urIndex[put] = k
			e.urValue[put] = e.uValue[p]
		}
	}
	for i := 0; i < n; i++ {
		e.urLastP[i] = e.urStart[i+1]
		e.urSpace[i] = e.urStart[i+1] - e.urStart[i]
	}
}
