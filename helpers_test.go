package basisfactor

// basisMatVec computes B*x for the engine's current (post-Build)
// basicIndex ordering: x is indexed by pivot order/basis position, the
// result by original row.
func basisMatVec(e *Engine, x []float64) []float64 {
	result := make([]float64, e.NumRow())
	basic := e.BasicIndex()
	for k, v := range x {
		if v == 0 {
			continue
		}
		col := basic[k]
		if col >= e.NumCol() {
			result[col-e.NumCol()] += v
			continue
		}
		lo, hi := e.AStart()[col], e.AStart()[col+1]
		for p := lo; p < hi; p++ {
			result[e.AIndex()[p]] += e.AValue()[p] * v
		}
	}
	return result
}

// basisMatVecTranspose computes B^T*x: x is indexed by row, the result
// by pivot order/basis position.
func basisMatVecTranspose(e *Engine, x []float64) []float64 {
	result := make([]float64, e.NumBasic())
	basic := e.BasicIndex()
	for k := 0; k < e.NumBasic(); k++ {
		col := basic[k]
		if col >= e.NumCol() {
			result[k] = x[col-e.NumCol()]
			continue
		}
		lo, hi := e.AStart()[col], e.AStart()[col+1]
		sum := 0.0
		for p := lo; p < hi; p++ {
			sum += e.AValue()[p] * x[e.AIndex()[p]]
		}
		result[k] = sum
	}
	return result
}

func closeVectors(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}
