package basisfactor

// buildKernel runs Markowitz-threshold Gaussian elimination (C4) over
// the submatrix BuildSimple left behind, maintaining the active-kernel
// containers and count buckets from kernel.go (C1/C2), and hands any
// structurally or numerically unpivotable rows/columns to
// resolveRankDeficiency (C5). It returns the rank deficiency count.
func (e *Engine) buildKernel(s *simpleResult) (int, error) {
	n := e.numRow - s.numSimple
	k := &e.kernel
	if n == 0 {
		return 0, nil
	}

	rowKernelIdx := make([]int, e.numRow)
	colKernelIdx := make([]int, e.numBasic)
	for i := range rowKernelIdx {
		rowKernelIdx[i] = -1
	}
	for i := range colKernelIdx {
		colKernelIdx[i] = -1
	}
	k.rowOrig = make([]int, n)
	k.colOrig = make([]int, n)
	ii := 0
	for row := 0; row < e.numRow; row++ {
		if !s.rowPivoted[row] {
			k.rowOrig[ii] = row
			rowKernelIdx[row] = ii
			ii++
		}
	}
	jj := 0
	for pos := 0; pos < e.numBasic; pos++ {
		if !s.colPivoted[pos] {
			k.colOrig[jj] = pos
			colKernelIdx[pos] = jj
			jj++
		}
	}

	nnzEstimate := 0
	for _, pos := range k.colOrig {
		nnzEstimate += e.columnNnz(pos)
	}
	k.init(n, nnzEstimate)
	e.uMeritX = 0
	e.uTotalX = 0

	initialNz := 0
	for jjIdx, pos := range k.colOrig {
		rows, values := e.columnEntries(pos)
		for idx, origRow := range rows {
			v := values[idx]
			if v == 0 {
				continue
			}
			k.colGrow(jjIdx)
			if s.rowPivoted[origRow] {
				k.colStoreN(jjIdx, e.lPivotLookup[origRow], v)
				continue
			}
			iiIdx := rowKernelIdx[origRow]
			k.colInsert(jjIdx, iiIdx, v)
			k.rowGrow(iiIdx)
			k.rowInsert(jjIdx, iiIdx)
			initialNz++
		}
		k.colFixMax(jjIdx, e.Config.PivotThreshold)
	}
	for jjIdx := 0; jjIdx < n; jjIdx++ {
		k.colLinkAdd(jjIdx, k.mcCountA[jjIdx])
	}
	for iiIdx := 0; iiIdx < n; iiIdx++ {
		k.rowLinkAdd(iiIdx, k.mrCount[iiIdx])
	}
	if e.Config.CollectStats {
		e.BuildStats.KernelInitialNumNz = initialNz
	}

	colRetired := make([]bool, n)
	rowRetired := make([]bool, n)
	var pendingCols, pendingRows []int

	colsLeft, rowsLeft := n, n
	step := 0
	touchedCol := make([]bool, n)
	touchedRow := make([]bool, n)
	var touchedColList, touchedRowList []int

	for colsLeft > 0 && rowsLeft > 0 {
		if head := k.colLinkFirst[0]; head != -1 {
			k.colLinkDel(head)
			colRetired[head] = true
			pendingCols = append(pendingCols, head)
			colsLeft--
			continue
		}
		if head := k.rowLinkFirst[0]; head != -1 {
			k.rowLinkDel(head)
			rowRetired[head] = true
			pendingRows = append(pendingRows, head)
			rowsLeft--
			continue
		}

		bestCol, bestRow, bestVal, merit, found := e.findKernelPivot(k)
		if !found {
			// Every remaining entry fails the relative threshold test at
			// its column's current max: treat the whole remainder as
			// deficient rather than loop forever.
			break
		}
		e.uTotalX++
		e.uMeritX += merit
		if e.Config.CollectStats {
			e.BuildStats.SumMerit += float64(merit)
			e.BuildStats.NumKernelPivot++
		}

		pivotOrder := s.numSimple + step
		step++
		colsLeft--
		rowsLeft--

		origRow := k.rowOrig[bestRow]
		pos := k.colOrig[bestCol]
		k.colLinkDel(bestCol)
		k.rowLinkDel(bestRow)

		// Scatter the pivot column's active entries (the elimination
		// workspace, mwz_column_*).
		k.mwzIndex = k.mwzIndex[:0]
		for p := k.mcStart[bestCol]; p < k.mcStart[bestCol]+k.mcCountA[bestCol]; p++ {
			r := k.mcIndex[p]
			k.mwzArray[r] = k.mcValue[p]
			k.mwzMark[r] = true
			k.mwzIndex = append(k.mwzIndex, r)
		}

		e.lPivotIndex = append(e.lPivotIndex, origRow)
		e.lPivotLookup[origRow] = pivotOrder
		for _, r := range k.mwzIndex {
			if r == bestRow {
				continue
			}
			m := k.mwzArray[r] / bestVal
			e.lIndex = append(e.lIndex, k.rowOrig[r]) // remapped to pivot order in buildFinish
			e.lValue = append(e.lValue, m)
		}
		e.lStart = append(e.lStart, len(e.lIndex))

		e.uPivotIndex = append(e.uPivotIndex, pos)
		e.uPivotValue = append(e.uPivotValue, bestVal)
		e.uStart = append(e.uStart, len(e.uIndex))
		for idx := 0; idx < k.mcCountN[bestCol]; idx++ {
			p := k.mcStart[bestCol] + k.mcSpace[bestCol] - 1 - idx
			e.uIndex = append(e.uIndex, k.mcIndex[p])
			e.uValue = append(e.uValue, k.mcValue[p])
		}
		e.uLastP = append(e.uLastP, len(e.uIndex))
		e.permute = append(e.permute, pos)

		// Remove the pivot column from the kernel: every row it touched
		// (other than the pivot row itself, already retired) loses it.
		for _, r := range k.mwzIndex {
			if r == bestRow {
				continue
			}
			k.rowDelete(bestCol, r)
			k.rowLinkDel(r)
			k.rowLinkAdd(r, k.mrCount[r])
		}
		k.mcCountA[bestCol] = 0
		k.mcCountN[bestCol] = 0

		// Schur-complement update: other columns with a live entry at
		// the pivot row lose that entry (it becomes their own future U
		// row-i value, parked now that row i's pivot order is known)
		// and gain -((value/pivot)) * (pivot column) at the pivot
		// column's other rows.
		touchedColList = touchedColList[:0]
		touchedRowList = touchedRowList[:0]
		rowStart := k.mrStart[bestRow]
		rowEnd := rowStart + k.mrCount[bestRow]
		others := append([]int(nil), k.mrIndex[rowStart:rowEnd]...)
		for _, jj2 := range others {
			if jj2 == bestCol {
				continue
			}
			w := k.colDelete(jj2, bestRow)
			if !touchedCol[jj2] {
				touchedCol[jj2] = true
				touchedColList = append(touchedColList, jj2)
			}
			k.colGrow(jj2)
			k.colStoreN(jj2, pivotOrder, w)

			m := w / bestVal
			for _, r := range k.mwzIndex {
				if r == bestRow {
					continue
				}
				delta := -m * k.mwzArray[r]
				if delta == 0 {
					continue
				}
				pos2, ok := k.colFind(jj2, r)
				if ok {
					newVal := k.mcValue[pos2] + delta
					if absf(newVal) < kHighsTiny {
						k.colDelete(jj2, r)
						k.rowDelete(jj2, r)
						if !touchedRow[r] {
							touchedRow[r] = true
							touchedRowList = append(touchedRowList, r)
						}
					} else {
						k.mcValue[pos2] = newVal
					}
					continue
				}
				if absf(delta) < kHighsTiny {
					continue
				}
				k.colGrow(jj2)
				k.colInsert(jj2, r, delta)
				k.rowGrow(r)
				k.rowInsert(jj2, r)
				if !touchedRow[r] {
					touchedRow[r] = true
					touchedRowList = append(touchedRowList, r)
				}
			}
		}
		for _, jj2 := range touchedColList {
			touchedCol[jj2] = false
			if colRetired[jj2] {
				continue
			}
			k.colLinkDel(jj2)
			k.colFixMax(jj2, e.Config.PivotThreshold)
			k.colLinkAdd(jj2, k.mcCountA[jj2])
		}
		for _, r := range touchedRowList {
			touchedRow[r] = false
			if rowRetired[r] || r == bestRow {
				continue
			}
			k.rowLinkDel(r)
			k.rowLinkAdd(r, k.mrCount[r])
		}

		for _, r := range k.mwzIndex {
			k.mwzMark[r] = false
		}
		k.mwzIndex = k.mwzIndex[:0]
		if e.Config.CollectStats {
			e.BuildStats.KernelFinalNumNz = len(e.lIndex) + len(e.uIndex)
		}
	}

	for colsLeft > 0 {
		head := k.colLinkFirst[0]
		for c := 1; head == -1 && c <= n; c++ {
			head = k.colLinkFirst[c]
		}
		if head == -1 {
			break
		}
		k.colLinkDel(head)
		colRetired[head] = true
		pendingCols = append(pendingCols, head)
		colsLeft--
	}
	for rowsLeft > 0 {
		head := k.rowLinkFirst[0]
		for c := 1; head == -1 && c <= n; c++ {
			head = k.rowLinkFirst[c]
		}
		if head == -1 {
			break
		}
		k.rowLinkDel(head)
		rowRetired[head] = true
		pendingRows = append(pendingRows, head)
		rowsLeft--
	}

	deficiency := e.resolveRankDeficiency(s, pendingCols, pendingRows, step)
	return deficiency, nil
}

// colFind linear-scans column j's active region for row, used by the
// Schur update to decide fill-in vs. update-in-place. Columns touched by
// elimination stay small in the common LP-basis case this engine
// targets, so a scan beats maintaining a second lookup structure.
func (k *kernelState) colFind(j, row int) (int, bool) {
	start := k.mcStart[j]
	for p := start; p < start+k.mcCountA[j]; p++ {
		if k.mcIndex[p] == row {
			return p, true
		}
	}
	return 0, false
}

// findKernelPivot scans column-count buckets in increasing order,
// bounded by kMaxKernelSearch nonempty buckets, looking for the
// smallest Markowitz merit (rowCount-1)*(colCount-1) among entries that
// clear their column's relative pivot threshold. Ties favour the larger
// magnitude pivot.
func (e *Engine) findKernelPivot(k *kernelState) (bestCol, bestRow int, bestVal float64, merit int, found bool) {
	merit = -1
	scanned := 0
	for c := 1; c <= k.n && scanned < kMaxKernelSearch; c++ {
		if k.colLinkFirst[c] == -1 {
			continue
		}
		scanned++
		for jj := k.colLinkFirst[c]; jj != -1; jj = k.colLinkNext[jj] {
			start := k.mcStart[jj]
			for p := start; p < start+k.mcCountA[jj]; p++ {
				row := k.mcIndex[p]
				val := k.mcValue[p]
				if absf(val) < k.mcMinPivot[jj] || absf(val) < kHighsTiny {
					continue
				}
				rowCount := k.mrCount[row]
				candidateMerit := (c - 1) * (rowCount - 1)
				if !found || candidateMerit < merit ||
					(candidateMerit == merit && absf(val) > absf(bestVal)) {
					bestCol, bestRow, bestVal, merit, found = jj, row, val, candidateMerit, true
				}
			}
		}
		if found && merit == 0 {
			break
		}
	}
	return
}
