package hashlife

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_EmptyLevel3Root(t *testing.T) {
	u := New()
	require.EqualValues(t, 0, u.Generation())
	require.Equal(t, Level(3), u.Root().Level())
	require.EqualValues(t, 0, u.Root().Population())
}

func TestSetCell_GetCell_RoundTrip(t *testing.T) {
	cases := []Position{
		{X: 0, Y: 0},
		{X: 3, Y: -4},
		{X: -1000, Y: 1000},
		{X: 1_000_000, Y: -1_000_000},
	}

	for _, pos := range cases {
		u := New()
		u.SetCell(pos, Alive)
		require.Equal(t, Alive, u.GetCell(pos), "pos=%v", pos)
	}
}

func TestSetCell_Idempotent(t *testing.T) {
	u1 := New()
	u1.SetCell(Position{X: 5, Y: 5}, Alive)
	root1 := u1.Root()

	u2 := New()
	u2.SetCell(Position{X: 5, Y: 5}, Alive)
	u2.SetCell(Position{X: 5, Y: 5}, Alive)
	root2 := u2.Root()

	require.Same(t, root1, root2)
}

func TestSetCell_SameSequenceSameRootAndGeneration(t *testing.T) {
	seq := []struct {
		pos  Position
		cell Cell
	}{
		{Position{0, 0}, Alive},
		{Position{1, 0}, Alive},
		{Position{2, 0}, Alive},
		{Position{-5, 5}, Alive},
		{Position{2, 0}, Dead},
	}

	u1 := New()
	u2 := New()
	for _, step := range seq {
		u1.SetCell(step.pos, step.cell)
		u2.SetCell(step.pos, step.cell)
	}

	require.Same(t, u1.Root(), u2.Root())
	require.Equal(t, u1.Generation(), u2.Generation())
}

func TestGetCell_OutOfBoundsIsDead(t *testing.T) {
	u := New()
	require.Equal(t, Dead, u.GetCell(Position{X: 1_000_000, Y: 1_000_000}))
}

func TestExpand_PreservesPreviouslySetCells(t *testing.T) {
	u := New()
	u.SetCell(Position{X: 1, Y: 1}, Alive)
	levelBefore := u.Root().Level()

	u.Expand()

	require.Equal(t, levelBefore+1, u.Root().Level())
	require.Equal(t, Alive, u.GetCell(Position{X: 1, Y: 1}))
	require.Equal(t, Dead, u.GetCell(Position{X: 0, Y: 0}))
}

// ceilLog2 returns ceil(log2(n)) for n >= 1, matching the bound used by §8
// scenario 6: "Root level must equal ceil(log2(1_000_001)) + 1".
func ceilLog2(n uint64) int {
	if n <= 1 {
		return 0
	}
	return bits.Len64(n - 1)
}

func TestSetCell_FarCoordinate_MatchesExpectedRootLevel(t *testing.T) {
	u := New()
	u.SetCell(Position{X: 1_000_000, Y: -1_000_000}, Alive)

	require.Equal(t, Alive, u.GetCell(Position{X: 1_000_000, Y: -1_000_000}))
	require.Equal(t, Dead, u.GetCell(Position{X: 0, Y: 0}))

	wantLevel := Level(ceilLog2(1_000_001) + 1)
	require.Equal(t, wantLevel, u.Root().Level())
}

// checkPopulationInvariant walks the tree and asserts that every Inode's
// population equals the sum of its children's populations (§8).
func checkPopulationInvariant(t *testing.T, n Node) {
	t.Helper()
	if n.isLeaf() {
		return
	}
	want := n.NW().Population() + n.NE().Population() + n.SW().Population() + n.SE().Population()
	require.Equal(t, want, n.Population())
	checkPopulationInvariant(t, n.NW())
	checkPopulationInvariant(t, n.NE())
	checkPopulationInvariant(t, n.SW())
	checkPopulationInvariant(t, n.SE())
}

func TestUniverse_PopulationInvariantAfterSets(t *testing.T) {
	u := New()
	positions := []Position{
		{0, 0}, {1, 0}, {2, 0}, {-3, -3}, {100, -100}, {-1, 1},
	}
	for _, p := range positions {
		u.SetCell(p, Alive)
	}
	checkPopulationInvariant(t, u.Root())
}

func TestUniverse_ChildLevelInvariant(t *testing.T) {
	u := New()
	u.SetCell(Position{X: 10, Y: -10}, Alive)

	var walk func(n Node)
	walk = func(n Node) {
		if n.isLeaf() {
			return
		}
		require.Equal(t, n.Level()-1, n.NW().Level())
		require.Equal(t, n.Level()-1, n.NE().Level())
		require.Equal(t, n.Level()-1, n.SW().Level())
		require.Equal(t, n.Level()-1, n.SE().Level())
		walk(n.NW())
		walk(n.NE())
		walk(n.SW())
		walk(n.SE())
	}
	walk(u.Root())
}
