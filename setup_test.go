package basisfactor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupConfiguresDefaults(t *testing.T) {
	aStart := []int{0, 1, 2}
	aIndex := []int{0, 1}
	aValue := []float64{1, 1}
	basicIndex := []int{0, 1}

	var e Engine
	e.Setup(2, 2, aStart, aIndex, aValue, basicIndex, 0, 0, 0)

	require.Equal(t, stateConfigured, e.state)
	require.Equal(t, kDefaultPivotThreshold, e.Config.PivotThreshold)
	require.Equal(t, kDefaultPivotTolerance, e.Config.PivotTolerance)
	require.False(t, e.IsFactored())
}

func TestSetPivotThresholdRejectsOutOfRange(t *testing.T) {
	var e Engine
	e.Setup(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1, 1}, []int{0, 1}, 0, 0, 0)

	require.False(t, e.SetPivotThreshold(0))
	require.False(t, e.SetPivotThreshold(0.6))
	require.True(t, e.SetPivotThreshold(0.25))
	require.Equal(t, 0.25, e.Config.PivotThreshold)
}

func TestAddRowsInvalidatesAMatrix(t *testing.T) {
	var e Engine
	e.Setup(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1, 1}, []int{0, 1}, 0, 0, 0)
	e.state = stateFactored
	e.aMatrixValid = true

	e.AddRows([]int{0, 0}, nil, nil)

	require.False(t, e.aMatrixValid)
	require.Equal(t, stateConfigured, e.state)
	require.Equal(t, 3, e.numRow)
}

func TestBuildBeforeSetupFails(t *testing.T) {
	var e Engine
	_, err := e.Build()
	require.ErrorIs(t, err, ErrNotConfigured)
}
