package grid

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConnectedComponents_Conn4 tests ConnectedComponents on a 4×4 grid
// with orthogonal connectivity.
//
// Grid (1 = filled, 0 = gap):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//	0 0 0 1
//
// Expected: 2 regions of sizes 4 and 3.
func TestConnectedComponents_Conn4(t *testing.T) {
	g := MustNew([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
	})

	comps := g.ConnectedComponents(Conn4)
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	require.Equal(t, []int{3, 4}, sizes)
	require.Equal(t, 7, g.Filled())
}

// TestConnectedComponents_Conn8 joins diagonal neighbours into one region.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestConnectedComponents_Conn8(t *testing.T) {
	g := MustNew([][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})

	require.Len(t, g.ConnectedComponents(Conn4), 9)

	comps := g.ConnectedComponents(Conn8)
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 9)
}

func TestConnectedComponents_Empty(t *testing.T) {
	g := MustNew([][]int{{0, 0}, {0, 0}})
	require.Empty(t, g.ConnectedComponents(Conn4))
}

func TestCoordinate(t *testing.T) {
	g := MustNew([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	r, c := g.Coordinate(g.index(2, 1))
	require.Equal(t, 2, r)
	require.Equal(t, 1, c)
}

func TestConnectivity_String(t *testing.T) {
	require.Equal(t, "conn4", Conn4.String())
	require.Equal(t, "conn8", Conn8.String())
}
