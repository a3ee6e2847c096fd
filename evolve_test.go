package hashlife

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvolve_BlockIsStillLife(t *testing.T) {
	u := New()
	for _, p := range []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		u.SetCell(p, Alive)
	}

	for i := 0; i < 4; i++ {
		u.Evolve()

		for _, p := range []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
			require.Equal(t, Alive, u.GetCell(p), "tick %d pos %v", i, p)
		}
		require.EqualValues(t, 4, u.Root().Population(), "tick %d", i)
	}
}

func TestEvolve_BlinkerReturnsAfterEvenRawSteps(t *testing.T) {
	u := New()
	for _, p := range []Position{{0, 0}, {1, 0}, {2, 0}} {
		u.SetCell(p, Alive)
	}

	// Every Evolve() call advances the universe by 2^(rootLevel-2) raw
	// generations, where rootLevel is the level of the padded root that
	// evolve_tree runs on; padding keeps that level >= 3 (one above the
	// post-Evolve root), so a single call always advances an even number
	// of raw generations. A period-2
	// oscillator must therefore be back in its original state (§8
	// scenario 2: "tests must ... probe after matched numbers of raw
	// steps").
	u.Evolve()

	for _, p := range []Position{{0, 0}, {1, 0}, {2, 0}} {
		require.Equal(t, Alive, u.GetCell(p))
	}
	require.Equal(t, Dead, u.GetCell(Position{1, -1}))
	require.Equal(t, Dead, u.GetCell(Position{1, 1}))
	require.EqualValues(t, 3, u.Root().Population())
}

func TestEvolve_Acorn_StabilizesAt633(t *testing.T) {
	u := New()
	// "bo5b$3bo3b$2o2b3o!"
	alive := []Position{
		{1, 0},
		{3, 1},
		{0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2},
	}
	for _, p := range alive {
		u.SetCell(p, Alive)
	}

	const targetRawGenerations = 5206

	var raw uint64
	for raw < targetRawGenerations {
		u.Evolve()
		// The padded root one level above the post-Evolve root is what
		// evolve_tree actually advanced by, i.e. 2^((newLevel+1)-2).
		raw += uint64(1) << (u.Root().Level() - 1)
	}

	require.EqualValues(t, 633, u.Root().Population())
}

func TestEvolveTree_PanicsBelowLevel2(t *testing.T) {
	u := New()
	leaf := u.table.InternLeaf(Dead)
	level1 := u.table.InternInode(leaf, leaf, leaf, leaf)

	require.Panics(t, func() {
		u.evolveTree(level1)
	})
}

func TestEvolveTree_MemoizesResult(t *testing.T) {
	u := New()
	for _, p := range []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		u.SetCell(p, Alive)
	}

	root, ok := u.Root().(*Inode)
	require.True(t, ok)

	first := u.evolveTree(root)
	second := u.evolveTree(root)
	require.Same(t, first, second)

	cached, ok := root.Result()
	require.True(t, ok)
	require.Same(t, first, cached)
}
