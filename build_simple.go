package basisfactor

// simpleResult carries BuildSimple's outcome into BuildKernel: which
// basis positions and rows it already pivoted, so the kernel is loaded
// with only what remains.
type simpleResult struct {
	rowPivoted []bool // len numRow
	colPivoted []bool // len numBasic
	numSimple  int
}

// buildSimple extracts the triangular prefix of pivots that need no
// Markowitz search (spec.md §4.2): a logical/slack basis column pivots
// immediately on its own row, and a basis column whose entire nonzero
// pattern is a single entry pivots on that entry. Both are taken in
// waves until a pass makes no further progress, since taking one such
// pivot can turn another column into a would-be singleton only in the
// (unhandled) restricted sense of spec.md's general description - this
// engine restricts BuildSimple to true structural/singleton columns and
// leaves restricted-singleton detection to BuildKernel's Markowitz
// search, where it is found naturally at merit 0.
func (e *Engine) buildSimple() *simpleResult {
	s := &simpleResult{
		rowPivoted: make([]bool, e.numRow),
		colPivoted: make([]bool, e.numBasic),
	}

	e.preBuildBasicIndex = append(e.preBuildBasicIndex[:0], e.basicIndex...)

	for {
		progress := false
		for pos := 0; pos < e.numBasic; pos++ {
			if s.colPivoted[pos] {
				continue
			}
			col := e.basicIndexAt(pos)
			if col >= e.numCol {
				row := col - e.numCol
				if s.rowPivoted[row] {
					violate("buildSimple", "logical column for row %d already pivoted", row)
				}
				e.takeSimplePivot(s, pos, row, 1.0)
				progress = true
				continue
			}
			if e.columnNnz(pos) != 1 {
				continue
			}
			rows, values := e.columnEntries(pos)
			row := rows[0]
			if s.rowPivoted[row] {
				continue
			}
			e.takeSimplePivot(s, pos, row, values[0])
			progress = true
		}
		if !progress {
			break
		}
	}

	if e.Config.CollectStats {
		e.BuildStats.NumSimplePivot = s.numSimple
	}
	return s
}

// takeSimplePivot records position pos (original row row, pivot value
// val) as the s.numSimple-th pivot. Since BuildSimple only ever chooses
// columns with a single nonzero, there is nothing above the diagonal to
// park and no elimination to propagate: L's column is empty and U's
// column is just the pivot itself.
func (e *Engine) takeSimplePivot(s *simpleResult, pos, row int, val float64) {
	k := s.numSimple
	s.numSimple++
	s.rowPivoted[row] = true
	s.colPivoted[pos] = true

	e.lPivotIndex = append(e.lPivotIndex, row)
	e.lPivotLookup[row] = k
	e.lStart = append(e.lStart, e.lStart[k])

	e.uPivotIndex = append(e.uPivotIndex, pos)
	e.uPivotValue = append(e.uPivotValue, val)
	e.uStart = append(e.uStart, len(e.uIndex))
	e.uLastP = append(e.uLastP, len(e.uIndex))

	e.permute = append(e.permute, pos)
}
