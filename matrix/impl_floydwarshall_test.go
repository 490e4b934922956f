package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mgraph/matrix"
)

const x = matrix.NoEdge

// abcTable is the undirected triangle A–B=2, B–C=3, A–C=10.
func abcTable() [][]int64 {
	return [][]int64{
		{x, 2, 10},
		{2, x, 3},
		{10, 3, x},
	}
}

func TestFloydWarshall_PrefersTwoHop(t *testing.T) {
	dist, err := matrix.FloydWarshall(abcTable())
	require.NoError(t, err)
	assert.Equal(t, [][]int64{
		{0, 2, 5},
		{2, 0, 3},
		{5, 3, 0},
	}, dist)
}

// TestFloydWarshall_InputUntouched guards against in-place mutation of the caller's table.
func TestFloydWarshall_InputUntouched(t *testing.T) {
	w := abcTable()
	_, err := matrix.FloydWarshall(w)
	require.NoError(t, err)
	assert.Equal(t, abcTable(), w)
}

func TestFloydWarshall_UnreachableStaysNoEdge(t *testing.T) {
	// 0→1 only; 2 is isolated; near-max weight must not wrap.
	w := [][]int64{
		{x, matrix.NoEdge - 1, x},
		{x, x, x},
		{x, x, x},
	}
	dist, err := matrix.FloydWarshall(w)
	require.NoError(t, err)
	assert.Equal(t, matrix.NoEdge-1, dist[0][1])
	assert.Equal(t, x, dist[1][0])
	assert.Equal(t, x, dist[0][2])
	assert.Equal(t, int64(0), dist[2][2])
}

func TestFloydWarshall_Errors(t *testing.T) {
	_, err := matrix.FloydWarshall(nil)
	assert.ErrorIs(t, err, matrix.ErrEmptyMatrix)

	_, err = matrix.FloydWarshall([][]int64{{0, 1}})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	neg := [][]int64{
		{x, 1},
		{-3, x},
	}
	_, err = matrix.FloydWarshall(neg)
	assert.ErrorIs(t, err, matrix.ErrNegativeCycle)

	// A negative self-loop is a cycle of its own.
	loop := [][]int64{
		{-5, 1},
		{x, x},
	}
	_, err = matrix.FloydWarshall(loop)
	assert.ErrorIs(t, err, matrix.ErrNegativeCycle)
}

// TestFloydWarshall_OverflowIsNotUnreachable feeds a raw chain whose true cost
// exceeds int64; the result must be an error, not a NoEdge distance.
func TestFloydWarshall_OverflowIsNotUnreachable(t *testing.T) {
	big := matrix.NoEdge - 1
	w := [][]int64{
		{x, big, x},
		{big, x, big},
		{x, big, x},
	}
	_, err := matrix.FloydWarshall(w)
	assert.ErrorIs(t, err, matrix.ErrWeightOverflow)
	_, err = matrix.AllPairs(w)
	assert.ErrorIs(t, err, matrix.ErrWeightOverflow)
}

func TestAllPairs_PathAndCostAgree(t *testing.T) {
	sp, err := matrix.AllPairs(abcTable())
	require.NoError(t, err)
	assert.Equal(t, 3, sp.Len())

	path, err := sp.Path(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	cost, err := sp.Cost(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cost)

	self, err := sp.Path(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, self)
}

func TestAllPairs_Errors(t *testing.T) {
	sp, err := matrix.AllPairs([][]int64{
		{x, 4},
		{x, x},
	})
	require.NoError(t, err)

	_, err = sp.Path(1, 0)
	assert.ErrorIs(t, err, matrix.ErrNoPath)
	_, err = sp.Cost(1, 0)
	assert.ErrorIs(t, err, matrix.ErrNoPath)
	_, err = sp.Path(0, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = sp.Cost(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestFloydWarshall_TriangleInequality checks dist[i][j] <= dist[i][k] + dist[k][j]
// and path/cost consistency on seeded random directed tables.
func TestFloydWarshall_TriangleInequality(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const n = 12
	for round := 0; round < 20; round++ {
		w := matrix.NewTable(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && r.Float64() < 0.3 {
					w[i][j] = int64(r.Intn(50))
				}
			}
		}
		sp, err := matrix.AllPairs(w)
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				for k := 0; k < n; k++ {
					via := matrix.AddWeights(sp.Dist[i][k], sp.Dist[k][j])
					assert.LessOrEqual(t, sp.Dist[i][j], via, "i=%d j=%d k=%d", i, j, k)
				}
				if sp.Dist[i][j] == matrix.NoEdge {
					continue
				}
				path, err := sp.Path(i, j)
				require.NoError(t, err)
				var sum int64
				for p := 1; p < len(path); p++ {
					sum += w[path[p-1]][path[p]]
				}
				assert.Equal(t, sp.Dist[i][j], sum, "path %v", path)
			}
		}
	}
}

func BenchmarkFloydWarshall(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	const n = 100
	w := matrix.NewTable(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && r.Float64() < 0.2 {
				w[i][j] = int64(1 + r.Intn(100))
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.FloydWarshall(w)
	}
}
