package basisfactor

// Numerical policy constants, named after the originating HiGHS header
// (original_source/src/util/HFactor.h) that this engine's data model is
// grounded on.
const (
	// kDefaultPivotThreshold is the default relative threshold tau used by
	// threshold pivoting: a candidate pivot is accepted only if
	// |v| >= tau * max|entry in its column|.
	kDefaultPivotThreshold = 0.1

	// kDefaultPivotTolerance is the default minimum acceptable absolute
	// pivot magnitude used as an abort criterion.
	kDefaultPivotTolerance = 1e-9

	// kHighsTiny is the drop tolerance: entries with |value| below this
	// are dropped from the kernel rather than stored as explicit zeros.
	kHighsTiny = 1e-14

	// kHighsInf stands in for an unbounded time budget or magnitude.
	kHighsInf = 1e200

	// kMaxKernelSearch bounds how many nonempty count buckets BuildKernel
	// scans before accepting the best candidate found so far.
	kMaxKernelSearch = 8

	// kMinPivotThreshold and kMaxPivotThreshold bound the accepted range
	// for SetPivotThreshold/SetMinAbsPivot, per the spec's (0, 0.5] range.
	kMinPivotThreshold = 0.0
	kMaxPivotThreshold = 0.5
)

// Markowitz pivot search strategies. Strategy 0 is canonical; see
// DESIGN.md for why 1-3 are accepted but not distinctly implemented.
const (
	kMarkowitzSearchStrategyOg           = 0
	kMarkowitzSearchStrategyRefinedOg    = 1
	kMarkowitzSearchStrategySwitchedOg   = 2
	kMarkowitzSearchStrategyAlternateBest = 3
)

// Update methods accepted by SetupGeneral/Setup and stored in
// Config.UpdateMethod. Update applies the same product-form eta for all
// four.
const (
	kUpdateMethodFt  = 1 // Forrest-Tomlin
	kUpdateMethodPf  = 2 // Product-Form
	kUpdateMethodMpf = 3 // Middle Product-Form
	kUpdateMethodApf = 4 // Alternate Product-Form
)

// UpdateMethodFt, UpdateMethodPf, UpdateMethodMpf and UpdateMethodApf
// are the exported update-method selectors for SetupGeneral.
const (
	UpdateMethodFt  = kUpdateMethodFt
	UpdateMethodPf  = kUpdateMethodPf
	UpdateMethodMpf = kUpdateMethodMpf
	UpdateMethodApf = kUpdateMethodApf
)

// ReportLu selectors.
const (
	kReportLuL    = 1
	kReportLuU    = 2
	kReportLuBoth = 3
)

// ReportLuL, ReportLuU and ReportLuBoth are ReportLu's exported which
// selectors.
const (
	ReportLuL    = kReportLuL
	ReportLuU    = kReportLuU
	ReportLuBoth = kReportLuBoth
)

// UpdateHint values returned by Update via its *hint output parameter.
type UpdateHint int

const (
	// HintOk means the update was applied in place; no further action
	// is required before the next Ftran/Btran.
	HintOk UpdateHint = iota
	// HintReinvert means the update could not be safely applied (the
	// pivot element was below Config.PivotTolerance); the caller must
	// call Build before the next solve.
	HintReinvert
)
