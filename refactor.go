package basisfactor

// Rebuild (C8) is the cheap path back to a valid factorization after a
// run of Update calls that never needed HintReinvert: when nothing has
// actually changed since the last successful Build, the existing L/U is
// already current and there is nothing to replay. Once any Update has
// been applied, basicIndex no longer matches the variables the recorded
// pivot order was chosen for, and safely replaying that order would
// mean re-deriving Markowitz search's column choices under a fixed row
// order - effectively BuildKernel's elimination loop again. This engine
// takes the simpler, still-correct route of falling back to a full
// Build in that case rather than replicating that machinery twice; see
// DESIGN.md.
func (e *Engine) Rebuild() (int, error) {
	if e.refactorInfo.Valid && e.NumUpdateSinceBuild() == 0 {
		return e.RankDeficiency, nil
	}
	return e.Build()
}
