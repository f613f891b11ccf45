package basisfactor

// Update applies a rank-one basis change (C7): the column at basis
// position iRow leaves and aq = B^-1 a_q (already Ftran'd by the
// caller) enters. hint is set to HintReinvert when the pivot is too
// small to accept, telling the caller to rebuild instead of trusting
// the update.
//
// All four of Config.UpdateMethod's named strategies (Forrest-Tomlin,
// Product-Form, Middle-Product-Form, Alternate-Product-Form) are
// implemented here as the same eta-vector append; the real engine
// differentiates them by how sparsely they touch U and how they bound
// eta growth before forcing a refactor, which this engine instead
// bounds by NumUpdateSinceBuild alone. See DESIGN.md.
func (e *Engine) Update(aq, ep *DenseVector, iRow int, hint *UpdateHint) error {
	*hint = HintOk
	if !e.IsFactored() {
		return ErrNotFactored
	}
	if iRow < 0 || iRow >= e.numRow {
		violate("Update", "iRow %d out of range", iRow)
	}
	pivotVal := aq.Array[iRow]
	if absf(pivotVal) < e.Config.PivotTolerance {
		*hint = HintReinvert
		return nil
	}

	start := len(e.pfIndex)
	for r, v := range aq.Array {
		if r == iRow || v == 0 {
			continue
		}
		e.pfIndex = append(e.pfIndex, r)
		e.pfValue = append(e.pfValue, -v/pivotVal)
	}
	e.pfPivotIndex = append(e.pfPivotIndex, iRow)
	e.pfPivotValue = append(e.pfPivotValue, pivotVal)
	e.pfStart = append(e.pfStart, len(e.pfIndex))
	_ = start
	_ = ep

	e.basicIndex[iRow] = e.pendingEnteringVar
	return nil
}

// SetEnteringVariable records which structural or logical variable is
// about to enter the basis at the next Update call, since Update's
// signature (matching the header's) carries only the leaving row and
// the transformed column, not the entering variable's identity.
func (e *Engine) SetEnteringVariable(v int) {
	e.pendingEnteringVar = v
}

// applyUpdatesForward applies every eta since the last Build, oldest
// first, matching how they compose onto B^-1.
func (e *Engine) applyUpdatesForward(y []float64) {
	for t := 0; t < len(e.pfPivotIndex); t++ {
		iRow := e.pfPivotIndex[t]
		temp := y[iRow]
		y[iRow] = temp / e.pfPivotValue[t]
		for p := e.pfStart[t]; p < e.pfStart[t+1]; p++ {
			y[e.pfIndex[p]] += e.pfValue[p] * temp
		}
	}
}

// applyUpdatesBackward applies every eta since the last Build, newest
// first, matching how their transposes compose onto B^-T.
func (e *Engine) applyUpdatesBackward(c []float64) {
	for t := len(e.pfPivotIndex) - 1; t >= 0; t-- {
		iRow := e.pfPivotIndex[t]
		sum := c[iRow] / e.pfPivotValue[t]
		for p := e.pfStart[t]; p < e.pfStart[t+1]; p++ {
			sum += e.pfValue[p] * c[e.pfIndex[p]]
		}
		c[iRow] = sum
	}
}

// NumUpdateSinceBuild reports how many Update calls have accumulated
// since the last Build/Rebuild, for callers implementing their own
// refactor-frequency policy.
func (e *Engine) NumUpdateSinceBuild() int {
	return len(e.pfPivotIndex)
}
