package game

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"hanoi/meta"
)

func TestNewGameState(t *testing.T) {
	t.Run("all disks start on rod A", func(t *testing.T) {
		gs, err := NewGameState(3)
		require.NoError(t, err)

		require.Equal(t, []Disk{3, 2, 1}, gs.Towers[RodA].Disks())
		require.Equal(t, 0, gs.Height(RodB))
		require.Equal(t, 0, gs.Height(RodC))
		require.Equal(t, uint64(0), gs.Moves)
		require.Equal(t, int64(7), gs.Optimal.Int64())
		_, holding := gs.Holding()
		require.False(t, holding)
		require.NoError(t, gs.Validate())
	})

	t.Run("minimum size", func(t *testing.T) {
		gs, err := NewGameState(meta.MinDisks)
		require.NoError(t, err)
		require.Equal(t, int64(3), gs.Optimal.Int64())
		require.NoError(t, gs.Validate())
	})

	t.Run("maximum size", func(t *testing.T) {
		gs, err := NewGameState(meta.MaxDisks)
		require.NoError(t, err)

		expected := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), meta.MaxDisks), big.NewInt(1))
		require.Equal(t, 0, expected.Cmp(gs.Optimal), "Optimal count should be exact at the ceiling")
		require.Equal(t, meta.MaxDisks, gs.Optimal.BitLen())
		require.Equal(t, meta.MaxDisks, gs.Height(RodA))
		require.NoError(t, gs.Validate())
	})

	t.Run("rejects sizes out of range", func(t *testing.T) {
		for _, n := range []int{-1, 0, 1, meta.MaxDisks + 1, 70000} {
			_, err := NewGameState(n)
			require.ErrorIs(t, err, ErrDiskCount, "size %d should be rejected", n)
		}
	})
}

func TestOptimalMoves(t *testing.T) {
	require.Equal(t, "3", OptimalMoves(2).String())
	require.Equal(t, "1023", OptimalMoves(10).String())
	require.Equal(t, "18446744073709551615", OptimalMoves(64).String(), "Should not overflow 64 bits")
}

func TestEfficiency(t *testing.T) {
	gs, err := NewGameState(3)
	require.NoError(t, err)

	require.Equal(t, 0, gs.Efficiency(), "No moves yet")

	gs.Moves = 7
	require.Equal(t, 100, gs.Efficiency())

	gs.Moves = 9
	require.Equal(t, 78, gs.Efficiency(), "7/9 should round to 78%")

	gs.Moves = 14
	require.Equal(t, 50, gs.Efficiency())
}

func TestSolved(t *testing.T) {
	gs, err := NewGameState(2)
	require.NoError(t, err)
	require.False(t, gs.Solved())

	gs.Towers[RodA].disks = nil
	gs.Towers[RodC].disks = []Disk{2, 1}
	require.True(t, gs.Solved())

	gs.Towers[RodC].disks = []Disk{2}
	gs.Towers[RodB].disks = []Disk{1}
	require.False(t, gs.Solved(), "Rod C must hold all disks")
}

func TestStateValidate(t *testing.T) {
	gs, err := NewGameState(3)
	require.NoError(t, err)

	gs.Towers[RodA].disks = []Disk{3, 2}
	require.Error(t, gs.Validate(), "Missing disk 1")

	gs.InHand = 1
	require.NoError(t, gs.Validate(), "Disk in hand counts")

	gs.Towers[RodB].disks = []Disk{1}
	require.Error(t, gs.Validate(), "Duplicate disk 1")
}

func TestInvalidRodPanics(t *testing.T) {
	gs, err := NewGameState(2)
	require.NoError(t, err)

	require.Panics(t, func() { gs.Play(NumRods) })
	require.Panics(t, func() { gs.Peek(Rod(-1)) })
}
