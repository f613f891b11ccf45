package basisfactor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountBucketLinksRoundTrip(t *testing.T) {
	var k kernelState
	k.init(4, 8)

	k.colLinkAdd(0, 2)
	k.colLinkAdd(1, 2)
	k.colLinkAdd(2, 0)

	require.Equal(t, 2, k.colLinkFirst[0])
	require.Equal(t, 1, k.colLinkFirst[2])
	require.Equal(t, 0, k.colLinkNext[1])

	k.colLinkDel(1)
	require.Equal(t, 0, k.colLinkFirst[2])
	require.Equal(t, -1, k.colLinkNext[0])

	k.colLinkDel(0)
	require.Equal(t, -1, k.colLinkFirst[2])

	k.colLinkDel(2)
	require.Equal(t, -1, k.colLinkFirst[0])
}

func TestColInsertDeleteKeepsCountDense(t *testing.T) {
	var k kernelState
	k.init(3, 8)

	k.colGrow(0)
	k.colInsert(0, 0, 5.0)
	k.colGrow(0)
	k.colInsert(0, 1, 7.0)
	k.colGrow(0)
	k.colInsert(0, 2, 9.0)
	require.Equal(t, 3, k.mcCountA[0])

	removed := k.colDelete(0, 1)
	require.Equal(t, 7.0, removed)
	require.Equal(t, 2, k.mcCountA[0])

	start := k.mcStart[0]
	seen := map[int]float64{}
	for p := start; p < start+k.mcCountA[0]; p++ {
		seen[k.mcIndex[p]] = k.mcValue[p]
	}
	require.Equal(t, map[int]float64{0: 5.0, 2: 9.0}, seen)
}

func TestColInsertRejectsSubTinyValue(t *testing.T) {
	var k kernelState
	k.init(2, 4)
	k.colGrow(0)
	require.Panics(t, func() {
		k.colInsert(0, 0, kHighsTiny/10)
	})
}
