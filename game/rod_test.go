package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTowerPeekPop(t *testing.T) {
	t.Run("empty tower has no top", func(t *testing.T) {
		tower := newTower(3)

		d, ok := tower.Peek()
		require.False(t, ok)
		require.Equal(t, Disk(0), d, "Peek on an empty rod should return the zero disk")

		d, ok = tower.Pop()
		require.False(t, ok)
		require.Equal(t, Disk(0), d, "Pop on an empty rod should return the zero disk")
		require.Equal(t, 0, tower.Height())
	})

	t.Run("pop removes the top", func(t *testing.T) {
		tower := Tower{disks: []Disk{3, 2, 1}}

		d, ok := tower.Pop()
		require.True(t, ok)
		require.Equal(t, Disk(1), d)
		require.Equal(t, 2, tower.Height())

		top, ok := tower.Peek()
		require.True(t, ok)
		require.Equal(t, Disk(2), top)
		require.Equal(t, 2, tower.Height(), "Peek should not change the height")
	})
}

func TestTowerPush(t *testing.T) {
	t.Run("empty tower accepts any disk", func(t *testing.T) {
		tower := newTower(3)

		top, ok := tower.Push(3)
		require.True(t, ok)
		require.Equal(t, Disk(3), top)
	})

	t.Run("smaller disk is accepted", func(t *testing.T) {
		tower := Tower{disks: []Disk{3}}

		top, ok := tower.Push(2)
		require.True(t, ok)
		require.Equal(t, Disk(2), top)
		require.Equal(t, []Disk{3, 2}, tower.Disks())
	})

	t.Run("larger disk is rejected with the existing top", func(t *testing.T) {
		tower := Tower{disks: []Disk{4, 2}}

		top, ok := tower.Push(3)
		require.False(t, ok)
		require.Equal(t, Disk(2), top, "Rejected push should report the existing top")
		require.Equal(t, []Disk{4, 2}, tower.Disks(), "Rejected push should not change the tower")
	})

	t.Run("equal disk is rejected", func(t *testing.T) {
		tower := Tower{disks: []Disk{2}}

		_, ok := tower.Push(2)
		require.False(t, ok)
	})

	t.Run("panics on the empty disk", func(t *testing.T) {
		tower := newTower(1)
		require.Panics(t, func() { tower.Push(0) })
	})
}

func TestTowerValidate(t *testing.T) {
	require.NoError(t, (&Tower{disks: []Disk{5, 3, 1}}).Validate())
	require.Error(t, (&Tower{disks: []Disk{3, 5}}).Validate())
	require.Error(t, (&Tower{disks: []Disk{3, 3}}).Validate())
	require.Error(t, (&Tower{disks: []Disk{3, 0}}).Validate())
}

func TestRodString(t *testing.T) {
	require.Equal(t, "A", RodA.String())
	require.Equal(t, "C", RodC.String())
	require.Equal(t, "Rod(7)", Rod(7).String())
	require.False(t, NumRods.Valid())
	require.False(t, Rod(-1).Valid())
}
