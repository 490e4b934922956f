package disjointset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mgraph/disjointset"
)

// TestNew_Singletons verifies that every element starts as its own representative.
func TestNew_Singletons(t *testing.T) {
	d := disjointset.New(4)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 4, d.Count())
	for i := 0; i < 4; i++ {
		r, err := d.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, r)

		sz, err := d.SizeOf(i)
		require.NoError(t, err)
		assert.Equal(t, 1, sz)
	}
}

func TestNew_NegativeIsEmpty(t *testing.T) {
	d := disjointset.New(-3)
	assert.Zero(t, d.Len())
	assert.Zero(t, d.Count())
	assert.Empty(t, d.Components())
}

// TestUnion_MergesAndCounts checks merge reporting, component count and sizes.
func TestUnion_MergesAndCounts(t *testing.T) {
	d := disjointset.New(5)

	merged, err := d.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = d.Union(1, 0)
	require.NoError(t, err)
	assert.False(t, merged, "second union of the same pair is a no-op")

	_, err = d.Union(2, 3)
	require.NoError(t, err)
	_, err = d.Union(3, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, d.Count())

	ok, err := d.Connected(0, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Connected(0, 4)
	require.NoError(t, err)
	assert.False(t, ok)

	sz, err := d.SizeOf(3)
	require.NoError(t, err)
	assert.Equal(t, 4, sz)

	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4}}, d.Components())
}

// TestFind_SharedRepresentative ensures all members of a chain report one root.
func TestFind_SharedRepresentative(t *testing.T) {
	const n = 64
	d := disjointset.New(n)
	for i := 1; i < n; i++ {
		_, err := d.Union(i-1, i)
		require.NoError(t, err)
	}
	want, err := d.Find(0)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		got, err := d.Find(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 1, d.Count())
}

func TestOutOfRange(t *testing.T) {
	d := disjointset.New(2)

	_, err := d.Find(2)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)

	_, err = d.Find(-1)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)

	_, err = d.Union(0, 5)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)

	_, err = d.Connected(7, 0)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)

	_, err = d.SizeOf(3)
	assert.ErrorIs(t, err, disjointset.ErrOutOfRange)
}

func BenchmarkUnionFind(b *testing.B) {
	const n = 1 << 12
	for i := 0; i < b.N; i++ {
		d := disjointset.New(n)
		for j := 1; j < n; j++ {
			_, _ = d.Union(j, j/2)
		}
		for j := 0; j < n; j++ {
			_, _ = d.Find(j)
		}
	}
}
