package basisfactor

import (
	"fmt"
	"io"
)

// ReportLu writes a textual dump of the current factorization to w,
// grounded in the teacher's WriteStatus: which selects kReportLuL,
// kReportLuU or kReportLuBoth, and full switches between a two-line
// summary and a per-pivot entry listing.
func (e *Engine) ReportLu(w io.Writer, which int, full bool) {
	fmt.Fprintf(w, "basisfactor: numRow=%d numCol=%d numBasic=%d rankDeficiency=%d\n",
		e.numRow, e.numCol, e.numBasic, e.RankDeficiency)
	if !e.IsFactored() {
		fmt.Fprintf(w, "  not factored\n")
		return
	}
	fmt.Fprintf(w, "  simplePivot=%d kernelPivot=%d invertNz=%d updatesSinceBuild=%d\n",
		e.BuildStats.NumSimplePivot, e.BuildStats.NumKernelPivot, e.BuildStats.InvertNumNz, e.NumUpdateSinceBuild())

	if !full {
		return
	}

	if which == kReportLuL || which == kReportLuBoth {
		fmt.Fprintf(w, "  L (unit lower triangular, pivot order):\n")
		for k := 0; k < len(e.lPivotIndex); k++ {
			fmt.Fprintf(w, "    col %d (row %d):", k, e.lPivotIndex[k])
			for p := e.lStart[k]; p < e.lStart[k+1]; p++ {
				fmt.Fprintf(w, " (%d,%g)", e.lIndex[p], e.lValue[p])
			}
			fmt.Fprintln(w)
		}
	}
	if which == kReportLuU || which == kReportLuBoth {
		fmt.Fprintf(w, "  U (upper triangular, pivot order):\n")
		for k := 0; k < len(e.uPivotIndex); k++ {
			basisPos := e.uPivotIndex[k]
			fmt.Fprintf(w, "    col %d (basisPos %d, pivot %g):", k, basisPos, e.uPivotValue[k])
			for p := e.uStart[k]; p < e.uLastP[k]; p++ {
				fmt.Fprintf(w, " (%d,%g)", e.uIndex[p], e.uValue[p])
			}
			fmt.Fprintln(w)
		}
	}
	if len(e.RowWithNoPivot) > 0 {
		fmt.Fprintf(w, "  rowWithNoPivot=%v colWithNoPivot=%v varWithNoPivot=%v\n",
			e.RowWithNoPivot, e.ColWithNoPivot, e.VarWithNoPivot)
	}
}

// DebugReportBuild writes a one-line build annotation to w when
// Config.DebugLevel > 0, following the teacher's verbosity-gated
// Annotate convention. It reports the running merit counters
// (uTotalX/uMeritX) the header uses to decide when to dump the
// factorization on its own, and notes when a non-default Markowitz
// search strategy fell back to strategy 0.
func (e *Engine) DebugReportBuild(w io.Writer) {
	if e.Config.DebugLevel <= 0 {
		return
	}
	fmt.Fprintf(w, "basisfactor: build uTotalX=%d uMeritX=%d", e.uTotalX, e.uMeritX)
	if e.Config.SearchStrategy != kMarkowitzSearchStrategyOg {
		fmt.Fprintf(w, " searchStrategy=%d (falls back to strategy 0)", e.Config.SearchStrategy)
	}
	fmt.Fprintln(w)
}
