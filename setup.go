package basisfactor

// Setup attaches a square-basis problem to the engine: A is m x n sparse
// in column-major CSC form (aStart has numCol+1 entries), basicIndex
// selects m column indices naming B (entries in [numCol, numCol+numRow)
// denote slack/logical columns). Setup only copies pointers; it does no
// factorization work.
func (e *Engine) Setup(numCol, numRow int, aStart, aIndex []int, aValue []float64, basicIndex []int, pivotThreshold, pivotTolerance float64, debugLevel int) {
	e.SetupGeneral(numCol, numRow, numRow, aStart, aIndex, aValue, basicIndex, pivotThreshold, pivotTolerance, debugLevel, kUpdateMethodFt)
}

// SetupGeneral is the rectangular-basis variant (numBasic >= numRow
// allowed for an augmented system). See SPEC_FULL.md for the open
// question around numBasic != numRow solve semantics: Build rejects that
// case rather than guessing at it.
func (e *Engine) SetupGeneral(numCol, numRow, numBasic int, aStart, aIndex []int, aValue []float64, basicIndex []int, pivotThreshold, pivotTolerance float64, debugLevel, updateMethod int) {
	if numRow < 0 || numCol < 0 || numBasic < numRow {
		violate("SetupGeneral", "invalid dimensions numCol=%d numRow=%d numBasic=%d", numCol, numRow, numBasic)
	}
	e.numCol = numCol
	e.numRow = numRow
	e.numBasic = numBasic

	e.aStart = aStart
	e.aIndex = aIndex
	e.aValue = aValue
	e.basicIndex = basicIndex
	e.aMatrixValid = true

	e.Config = DefaultConfig()
	if pivotThreshold > 0 {
		e.Config.PivotThreshold = clampThreshold(pivotThreshold)
	}
	if pivotTolerance > 0 {
		e.Config.PivotTolerance = pivotTolerance
	}
	e.Config.DebugLevel = debugLevel
	if updateMethod != 0 {
		e.Config.UpdateMethod = updateMethod
	}

	e.iwork = make([]int, numRow+1)
	e.dwork = make([]float64, numRow+1)

	e.lPivotIndex = make([]int, 0, numRow)
	e.lPivotLookup = make([]int, numRow)
	e.lStart = make([]int, 1, numRow+1)
	e.lrStart = make([]int, 1, numRow+1)
	e.uPivotIndex = make([]int, 0, numRow)
	e.uPivotValue = make([]float64, 0, numRow)
	e.uStart = make([]int, 1, numRow+1)
	e.uLastP = make([]int, 0, numRow)
	e.urStart = make([]int, 1, numRow+1)
	e.urLastP = make([]int, 0, numRow)
	e.urSpace = make([]int, 0, numRow)
	e.permute = make([]int, 0, numRow)

	e.refactorInfo.clear()
	e.state = stateConfigured
}

// SetupMatrix refreshes the borrowed A-matrix pointers without a full
// Setup. AddCols/AddRows do not call it; the caller calls it after such a
// structural edit, and after AddRows Build refuses to run until it has
// (see SPEC_FULL.md's supplemented setupMatrix overload).
func (e *Engine) SetupMatrix(aStart, aIndex []int, aValue []float64) {
	e.aStart = aStart
	e.aIndex = aIndex
	e.aValue = aValue
	e.aMatrixValid = true
}

// SetPivotThreshold sets the relative pivoting threshold tau, accepted
// only within (0, 0.5]. Returns false (and leaves the prior value) if
// newPivotThreshold is outside that range.
func (e *Engine) SetPivotThreshold(newPivotThreshold float64) bool {
	if newPivotThreshold <= kMinPivotThreshold || newPivotThreshold > kMaxPivotThreshold {
		return false
	}
	e.Config.PivotThreshold = newPivotThreshold
	return true
}

// SetMinAbsPivot sets the minimum acceptable absolute pivot magnitude
// sigma used as an abort criterion, accepted only within (0, 0.5].
// Returns false (and leaves the prior value) if newPivotTolerance is
// outside that range.
func (e *Engine) SetMinAbsPivot(newPivotTolerance float64) bool {
	if newPivotTolerance <= kMinPivotThreshold || newPivotTolerance > kMaxPivotThreshold {
		return false
	}
	e.Config.PivotTolerance = newPivotTolerance
	return true
}

func clampThreshold(v float64) float64 {
	if v <= kMinPivotThreshold {
		return kDefaultPivotThreshold
	}
	return min(v, kMaxPivotThreshold)
}

// AddCols updates the engine's size metadata for k new nonbasic columns
// appended to A. Structural edits of this kind affect only the nonbasic
// portion of A and never invalidate the current L/U.
func (e *Engine) AddCols(numNewCol int) {
	e.numCol += numNewCol
}

// AddRows updates the engine's size metadata for new rows (with their
// slacks assumed basic), supplying the transposed arMatrix describing the
// new rows' nonbasic entries. The caller's structural edit to A
// invalidates the borrowed A-matrix view; the engine requires SetupMatrix
// and then a fresh Build before the next solve.
func (e *Engine) AddRows(arStart, arIndex []int, arValue []float64) {
	e.numRow += len(arStart) - 1
	e.invalidAMatrixAction()
}

// DeleteNonbasicCols updates size metadata after k nonbasic columns are
// removed from A, assuming the basis itself is unchanged.
func (e *Engine) DeleteNonbasicCols(numDeletedCol int) {
	e.numCol -= numDeletedCol
	if e.numCol < 0 {
		violate("DeleteNonbasicCols", "numCol would go negative")
	}
}

// invalidAMatrixAction demotes the engine to require a full Build before
// the next solve, per spec.md §4.7: the borrowed A pointers may no longer
// describe the same layout after a structural edit.
func (e *Engine) invalidAMatrixAction() {
	e.aMatrixValid = false
	if e.state == stateFactored || e.state == stateFactoredDeficient {
		e.state = stateConfigured
	}
}

// BasicIndex returns the (possibly Build-permuted) basic column indices.
func (e *Engine) BasicIndex() []int { return e.basicIndex }

// AStart, AIndex, AValue expose the borrowed A-matrix view.
func (e *Engine) AStart() []int     { return e.aStart }
func (e *Engine) AIndex() []int     { return e.aIndex }
func (e *Engine) AValue() []float64 { return e.aValue }

// NumRow, NumCol, NumBasic report the configured problem size.
func (e *Engine) NumRow() int   { return e.numRow }
func (e *Engine) NumCol() int   { return e.numCol }
func (e *Engine) NumBasic() int { return e.numBasic }

// IsFactored reports whether the engine currently holds a valid
// factorization usable for Ftran/Btran/Update.
func (e *Engine) IsFactored() bool {
	return (e.state == stateFactored || e.state == stateFactoredDeficient) && e.aMatrixValid
}
