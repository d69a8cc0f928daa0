package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/happycube/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged and rectangular inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"Ragged", [][]int{{1, 2}, {3}}, grid.ErrNonSquare},
		{"Rectangular", [][]int{{1, 2, 3}, {4, 5, 6}}, grid.ErrNonSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.grid)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_DeepCopy checks that mutating the input after New has no effect.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]int{{1, 0}, {0, 1}}
	g, err := grid.New(in)
	require.NoError(t, err)

	in[0][0] = 9
	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	out := g.Cells()
	out[1][1] = 7
	require.Equal(t, [][]int{{1, 0}, {0, 1}}, g.Cells())
}

// TestAt_OutOfRange checks bounds handling on a 3×3 grid.
func TestAt_OutOfRange(t *testing.T) {
	g := grid.MustNew([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	for _, rc := range [][2]int{{-1, 0}, {3, 0}, {0, 3}, {2, -1}} {
		require.False(t, g.InBounds(rc[0], rc[1]), "InBounds(%d,%d)", rc[0], rc[1])
		_, err := g.At(rc[0], rc[1])
		require.ErrorIs(t, err, grid.ErrOutOfRange)
	}
	v, err := g.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 8, v)
}

func TestRowColumn(t *testing.T) {
	g := grid.MustNew([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.Equal(t, []int{4, 5, 6}, g.Row(1))
	require.Equal(t, []int{3, 6, 9}, g.Column(2))
	require.Nil(t, g.Row(3))
	require.Nil(t, g.Column(-1))
}

func TestEqual(t *testing.T) {
	a := grid.MustNew([][]int{{1, 0}, {0, 1}})
	require.True(t, a.Equal(a.Clone()))
	require.False(t, a.Equal(grid.MustNew([][]int{{1, 0}, {1, 1}})))
	require.False(t, a.Equal(grid.MustNew([][]int{{1}})))
	require.False(t, a.Equal(nil))

	var nilGrid *grid.Grid
	require.True(t, nilGrid.Equal(nil))
}

func TestMustNew_Panics(t *testing.T) {
	require.Panics(t, func() { grid.MustNew(nil) })
}
