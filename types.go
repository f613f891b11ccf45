package basisfactor

// Config groups the engine's tunable policy: pivot thresholds, the update
// representation, the Markowitz search strategy, and diagnostic
// verbosity. It is set once through Setup/SetupGeneral and mutated only
// through SetPivotThreshold/SetMinAbsPivot afterwards - never ambient
// package state, mirroring the teacher's Configuration struct.
type Config struct {
	PivotThreshold   float64
	PivotTolerance   float64
	DebugLevel       int
	UpdateMethod     int
	SearchStrategy   int
	BuildTimeLimit   float64
	CollectStats     bool
}

// DefaultConfig returns the engine's default policy.
func DefaultConfig() Config {
	return Config{
		PivotThreshold: kDefaultPivotThreshold,
		PivotTolerance: kDefaultPivotTolerance,
		DebugLevel:     0,
		UpdateMethod:   kUpdateMethodFt,
		SearchStrategy: kMarkowitzSearchStrategyOg,
		BuildTimeLimit: kHighsInf,
		CollectStats:   true,
	}
}

// BuildStats records build-time telemetry (the header's AnalyseBuild),
// populated only when Config.CollectStats is set so the hot path pays
// nothing when it is not wanted.
type BuildStats struct {
	NumRow             int
	NumCol             int
	NumBasic           int
	BasicNumNz         int
	NumSimplePivot     int
	NumKernelPivot     int
	KernelInitialNumNz int
	KernelFinalNumNz   int
	InvertNumNz        int
	SumMerit           float64
}

// RefactorInfo records the pivot sequence of the last successful Build.
// Rebuild consults only Valid; it does not replay the recorded sequence
// (see refactor.go).
type RefactorInfo struct {
	Valid       bool
	PivotRow    []int
	PivotVar    []int
	PivotValue  []float64
}

func (r *RefactorInfo) clear() {
	r.Valid = false
	r.PivotRow = r.PivotRow[:0]
	r.PivotVar = r.PivotVar[:0]
	r.PivotValue = r.PivotValue[:0]
}

// engineState is the lifecycle described in spec.md §4.7: Unconfigured ->
// Configured -> Factored -> Updated* -> Factored (refactor). It exists
// purely so operations can assert their own preconditions; callers never
// observe it directly.
type engineState int

const (
	stateUnconfigured engineState = iota
	stateConfigured
	stateFactored
	stateFactoredDeficient
)

// Engine is the sparse basis-matrix factorization and update engine.
// It is single-threaded and non-reentrant (spec §5): all scratch buffers
// are instance-owned and reused across Build calls.
type Engine struct {
	Config Config

	// Problem size. numBasic == numRow for the square-basis path; the
	// rectangular (numBasic != numRow) path is structurally sized but
	// Build rejects it (see SPEC_FULL.md Open Question resolutions).
	numRow   int
	numCol   int
	numBasic int

	state engineState

	// Borrowed A-matrix view (column-major CSC) and basic_index. Never
	// owned; the caller guarantees they outlive the next Build/Update.
	aMatrixValid bool
	aStart       []int
	aIndex       []int
	aValue       []float64
	basicIndex   []int

	// Rank deficiency outcome of the last Build.
	RankDeficiency  int
	RowWithNoPivot  []int
	ColWithNoPivot  []int
	VarWithNoPivot  []int

	// Permutation produced by Build: permute[k] is the basis-column
	// position that became the k-th pivot.
	permute []int

	// preBuildBasicIndex snapshots basicIndex at the start of Build,
	// before it is permuted into pivot order in place.
	preBuildBasicIndex []int

	// pendingEnteringVar is set by SetEnteringVariable ahead of Update,
	// since Update's own signature has no room for the entering
	// variable's identity.
	pendingEnteringVar int

	// --- L factor: unit lower triangular, column-wise and row-wise ---
	lPivotIndex  []int // l_pivot_index[k] = row of the k-th pivot
	lPivotLookup []int // inverse of lPivotIndex, indexed by row

	lStart []int
	lIndex []int
	lValue []float64

	lrStart []int
	lrIndex []int
	lrValue []float64

	// --- U factor: upper triangular with explicit pivots ---
	uPivotIndex []int // basis-column position of the k-th pivot
	uPivotValue []float64

	uStart  []int // column-wise, with per-column gaps (u_last_p marks the live end)
	uLastP  []int
	uIndex  []int
	uValue  []float64

	urStart  []int // row-wise mirror
	urLastP  []int
	urSpace  []int
	urIndex  []int
	urValue  []float64

	// --- Update buffer (Product-Form / Forrest-Tomlin eta factors) ---
	pfPivotIndex []int
	pfPivotValue []float64
	pfStart      []int
	pfIndex      []int
	pfValue      []float64

	// --- Active kernel (transient, only meaningful during Build) ---
	kernel kernelState

	refactorInfo RefactorInfo
	BuildStats   BuildStats

	// uMeritX/uTotalX mirror the header's running merit counters, kept
	// separately from BuildStats.SumMerit/NumKernelPivot because they are
	// updated whether or not Config.CollectStats is set; buildKernel
	// resets them and DebugReportBuild reports them.
	uMeritX int
	uTotalX int

	// Working buffers reused across Build/Ftran/Btran calls.
	iwork []int
	dwork []float64
}
