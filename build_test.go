package basisfactor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIdentityBasisAllSlack(t *testing.T) {
	var e Engine
	e.Setup(0, 3, []int{0}, nil, nil, []int{0, 1, 2}, 0, 0, 0)

	deficiency, err := e.Build()
	require.NoError(t, err)
	require.Equal(t, 0, deficiency)
	require.Equal(t, 3, e.BuildStats.NumSimplePivot)
	require.True(t, e.IsFactored())

	rhs := NewDenseVector(3)
	rhs.Array = []float64{1, 2, 3}
	rhs.Pack()
	want := append([]float64(nil), rhs.Array...)

	require.NoError(t, e.Ftran(rhs))
	require.True(t, closeVectors(rhs.Array, want, 1e-9))
}

func TestBuildLowerTriangular2x2(t *testing.T) {
	// col0 = (row0:2, row1:1), col1 = (row1:2.5)
	aStart := []int{0, 2, 3}
	aIndex := []int{0, 1, 1}
	aValue := []float64{2, 1, 2.5}
	basicIndex := []int{0, 1}

	var e Engine
	e.Setup(2, 2, aStart, aIndex, aValue, basicIndex, 0, 0, 0)

	deficiency, err := e.Build()
	require.NoError(t, err)
	require.Equal(t, 0, deficiency)

	pivots := append([]float64(nil), e.uPivotValue...)
	require.ElementsMatch(t, []float64{2, 2.5}, pivots)

	rhs := NewDenseVector(2)
	rhs.Array = []float64{1, 1}
	rhs.Pack()
	want := append([]float64(nil), rhs.Array...)

	require.NoError(t, e.Ftran(rhs))
	got := basisMatVec(&e, rhs.Array)
	require.True(t, closeVectors(got, want, 1e-9))
}

func TestBuildSingularBasisReportsDeficiency(t *testing.T) {
	// Two identical rows: col0=(row0:1,row1:1), col1=(row0:1,row1:1).
	// B is singular; a logical substitution must be made for one row.
	aStart := []int{0, 2, 4}
	aIndex := []int{0, 1, 0, 1}
	aValue := []float64{1, 1, 1, 1}
	basicIndex := []int{0, 1}

	var e Engine
	e.Setup(2, 2, aStart, aIndex, aValue, basicIndex, 0, 0, 0)

	deficiency, err := e.Build()
	require.NoError(t, err)
	require.Equal(t, 1, deficiency)
	require.Len(t, e.RowWithNoPivot, 1)
	require.Len(t, e.ColWithNoPivot, 1)
	require.True(t, e.IsFactored())
}

func TestFtranBtranRoundTrip4x4(t *testing.T) {
	// A well-conditioned 4x4 sparse basis with some fill-generating
	// structure (not triangular under the natural order).
	aStart := []int{0, 2, 4, 6, 8}
	aIndex := []int{0, 1, 1, 2, 0, 2, 3, 2}
	aValue := []float64{4, 1, 3, 1, 1, 2, 5, 1}
	basicIndex := []int{0, 1, 2, 3}

	var e Engine
	e.Setup(4, 4, aStart, aIndex, aValue, basicIndex, 0, 0, 0)
	deficiency, err := e.Build()
	require.NoError(t, err)
	require.Equal(t, 0, deficiency)

	rhs := NewDenseVector(4)
	rhs.Array = []float64{1, 2, 3, 4}
	rhs.Pack()
	want := append([]float64(nil), rhs.Array...)
	require.NoError(t, e.Ftran(rhs))
	got := basisMatVec(&e, rhs.Array)
	require.True(t, closeVectors(got, want, 1e-6))

	c := NewDenseVector(4)
	c.Array = []float64{1, 0, 0, 2}
	c.Pack()
	wantC := append([]float64(nil), c.Array...)
	require.NoError(t, e.Btran(c))
	gotC := basisMatVecTranspose(&e, c.Array)
	require.True(t, closeVectors(gotC, wantC, 1e-6))
}

func TestUpdateThenFtranSolvesUpdatedBasis(t *testing.T) {
	aStart := []int{0, 2, 4, 6, 8}
	aIndex := []int{0, 1, 1, 2, 0, 2, 3, 2}
	aValue := []float64{4, 1, 3, 1, 1, 2, 5, 1}
	basicIndex := []int{0, 1, 2, 3}

	var e Engine
	e.Setup(4, 4, aStart, aIndex, aValue, basicIndex, 0, 0, 0)
	_, err := e.Build()
	require.NoError(t, err)

	// Bring in logical column for row 0 in place of whichever basis
	// position currently occupies row 0's pivot slot.
	entering := NewDenseVector(4)
	entering.Array[0] = 1
	entering.Pack()
	require.NoError(t, e.Ftran(entering))

	iRow := e.lPivotLookup[0]
	e.SetEnteringVariable(e.NumCol() + 0)
	var hint UpdateHint
	require.NoError(t, e.Update(entering, nil, iRow, &hint))
	require.Equal(t, HintOk, hint)

	rhs := NewDenseVector(4)
	rhs.Array = []float64{2, 1, 0, 3}
	rhs.Pack()
	want := append([]float64(nil), rhs.Array...)
	require.NoError(t, e.Ftran(rhs))
	got := basisMatVec(&e, rhs.Array)
	require.True(t, closeVectors(got, want, 1e-6))
}
