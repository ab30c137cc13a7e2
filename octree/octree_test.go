// SPDX-License-Identifier: MIT
// Package octree_test contains unit tests for construction, insertion,
// queries and logging of the point octree.
package octree_test

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/spatiumgl/bounds"
	"github.com/katalvlaran/spatiumgl/matrix"
	"github.com/katalvlaran/spatiumgl/octree"
	"github.com/katalvlaran/spatiumgl/vector"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type vol3 = bounds.Volume[float64, [3]float64]

// cloud returns n deterministic points in [-scale, scale)³.
func cloud(seed int64, n int, scale float64) []vector.Vector3 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]vector.Vector3, n)
	for i := range pts {
		pts[i] = vector.V3(
			(rng.Float64()*2-1)*scale,
			(rng.Float64()*2-1)*scale,
			(rng.Float64()*2-1)*scale,
		)
	}

	return pts
}

// quietLogger returns a debug-level logger that records entries in memory.
func quietLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return logger, hook
}

// unitTree builds an empty tree over the cube of half-edge 1 at the origin.
func unitTree(t *testing.T, opts ...octree.Option) *octree.Octree[float64] {
	t.Helper()
	root, err := bounds.NewCube(vector.Vector3{}, 1)
	require.NoError(t, err)

	return octree.New(root, opts...)
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()
	logger, _ := quietLogger()
	tree := unitTree(t, octree.WithLogger(logger))

	require.Equal(t, 0, tree.Len())
	require.Equal(t, 0, tree.Depth())
	require.Equal(t, 1, tree.NodeCount())
	require.Equal(t, 1.0, tree.Bounds().Radius())
	require.Empty(t, tree.Query(tree.Bounds()))
}

func TestInsert_Rejects(t *testing.T) {
	t.Parallel()
	logger, hook := quietLogger()
	tree := unitTree(t, octree.WithLogger(logger))

	err := tree.Insert(vector.V3(2.0, 0, 0))
	require.ErrorIs(t, err, octree.ErrOutOfBounds)
	require.Equal(t, "octree: rejected point", hook.LastEntry().Message)
	require.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)

	err = tree.Insert(vector.V3(math.NaN(), 0, 0))
	require.ErrorIs(t, err, octree.ErrNonFinite)
	require.True(t, errors.Is(hook.LastEntry().Data[logrus.ErrorKey].(error), octree.ErrNonFinite))

	require.Equal(t, 0, tree.Len())
}

func TestInsert_BoundaryIsInside(t *testing.T) {
	t.Parallel()
	logger, _ := quietLogger()
	tree := unitTree(t, octree.WithLogger(logger))

	require.NoError(t, tree.Insert(vector.V3(1.0, -1.0, 1.0)))
	require.Equal(t, 1, tree.Len())
}

func TestInsert_SplitsAndLogs(t *testing.T) {
	t.Parallel()
	logger, hook := quietLogger()
	tree := unitTree(t, octree.WithLogger(logger), octree.WithLeafCapacity(2))

	pts := []vector.Vector3{
		vector.V3(-0.5, -0.5, -0.5),
		vector.V3(0.5, 0.5, 0.5),
		vector.V3(0.5, -0.5, 0.5),
	}
	for _, p := range pts {
		require.NoError(t, tree.Insert(p))
	}

	require.Equal(t, 3, tree.Len())
	require.Equal(t, 1, tree.Depth())
	require.Equal(t, 9, tree.NodeCount())

	entry := hook.LastEntry()
	require.Equal(t, "octree: split node", entry.Message)
	require.Equal(t, 0, entry.Data["depth"])
	require.Equal(t, 3, entry.Data["points"])
	require.Equal(t, 0, entry.Data["kept"])

	// each point lands in the child its octant names
	leaves := map[int]int{}
	tree.Walk(func(cube bounds.Cube[float64], depth int, points []vector.Vector3) bool {
		if depth == 1 {
			for _, p := range points {
				require.True(t, cube.Contains(p))
			}
			leaves[len(points)]++
		}
		return true
	})
	require.Equal(t, map[int]int{0: 5, 1: 3}, leaves)
}

func TestInsert_MaxDepthCapsSplitting(t *testing.T) {
	t.Parallel()
	logger, _ := quietLogger()
	tree := unitTree(t, octree.WithLogger(logger), octree.WithLeafCapacity(1), octree.WithMaxDepth(3))

	p := vector.V3(0.3, 0.3, 0.3)
	for i := 0; i < 10; i++ {
		require.NoError(t, tree.Insert(p))
	}
	require.Equal(t, 10, tree.Len())
	require.Equal(t, 3, tree.Depth())
	require.Equal(t, 1+3*8, tree.NodeCount())
	require.Len(t, tree.Query(tree.Bounds()), 10)
}

func TestWalk_SkipSubtree(t *testing.T) {
	t.Parallel()
	logger, _ := quietLogger()
	tree, err := octree.FromPoints(cloud(3, 200, 1), octree.WithLogger(logger), octree.WithLeafCapacity(4))
	require.NoError(t, err)

	var visited, stored int
	tree.Walk(func(_ bounds.Cube[float64], depth int, points []vector.Vector3) bool {
		visited++
		stored += len(points)
		return depth < 1
	})
	require.Equal(t, 9, visited)
	require.LessOrEqual(t, stored, tree.Len())

	visited, stored = 0, 0
	tree.Walk(func(_ bounds.Cube[float64], _ int, points []vector.Vector3) bool {
		visited++
		stored += len(points)
		return true
	})
	require.Equal(t, tree.NodeCount(), visited)
	require.Equal(t, tree.Len(), stored)
}

func TestFromPoints(t *testing.T) {
	t.Parallel()
	logger, hook := quietLogger()
	pts := cloud(1, 500, 10)

	tree, err := octree.FromPoints(pts, octree.WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, len(pts), tree.Len())
	require.Greater(t, tree.Depth(), 0)
	require.Equal(t, "octree: built", hook.LastEntry().Message)
	for _, p := range pts {
		require.True(t, tree.Bounds().Contains(p))
	}
	require.ElementsMatch(t, pts, tree.Query(tree.Bounds()))
}

func TestFromPoints_NonFinite(t *testing.T) {
	t.Parallel()
	logger, _ := quietLogger()
	pts := []vector.Vector3{vector.V3(0.0, 0, 0), vector.V3(math.Inf(1), 0, 0)}

	_, err := octree.FromPoints(pts, octree.WithLogger(logger))
	require.ErrorIs(t, err, bounds.ErrInvalidGeometry)
	require.ErrorIs(t, err, bounds.ErrNonFinite)
}

func TestFromPoints_Empty(t *testing.T) {
	t.Parallel()
	logger, _ := quietLogger()

	tree, err := octree.FromPoints[float64](nil, octree.WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, 0, tree.Len())
	require.Equal(t, 1, tree.NodeCount())
}

// TestQuery_MatchesBruteForce checks pruned queries against a linear scan
// for every volume family.
func TestQuery_MatchesBruteForce(t *testing.T) {
	t.Parallel()
	logger, _ := quietLogger()
	pts := cloud(7, 2000, 5)
	tree, err := octree.FromPoints(pts, octree.WithLogger(logger), octree.WithLeafCapacity(8))
	require.NoError(t, err)

	box, err := bounds.NewBox(vector.V3(1.0, -1.0, 0.5), vector.V3(2.0, 1.0, 3.0))
	require.NoError(t, err)
	sphere, err := bounds.NewSphere(vector.V3(-2.0, 2.0, 0.0), 2.5)
	require.NoError(t, err)
	cube, err := bounds.NewCube(vector.V3(3.0, 3.0, 3.0), 1.5)
	require.NoError(t, err)
	axes := matrix.Linear3(matrix.Rotate3(0.7, vector.V3(1.0, 1.0, 0.0)))
	ellipsoid, err := bounds.NewEllipsoid(vector.V3(0.0, 0.0, -1.0), vector.V3(4.0, 1.0, 0.5), axes)
	require.NoError(t, err)
	far, err := bounds.NewSphere(vector.V3(50.0, 0.0, 0.0), 1)
	require.NoError(t, err)

	tests := []struct {
		name string
		v    vol3
	}{
		{"box", box},
		{"sphere", sphere},
		{"cube", cube},
		{"ellipsoid", ellipsoid},
		{"far away", far},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := bounds.ContainedPoints(tc.v, pts)
			require.ElementsMatch(t, want, tree.Query(tc.v))
		})
	}
}

func TestConcurrentInsertAndQuery(t *testing.T) {
	t.Parallel()
	logger, _ := quietLogger()
	root, err := bounds.NewCube(vector.Vector3{}, 10)
	require.NoError(t, err)
	tree := octree.New(root, octree.WithLogger(logger), octree.WithLeafCapacity(4))
	sphere, err := bounds.NewSphere(vector.Vector3{}, 5)
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			for _, p := range cloud(seed, 100, 10) {
				require.NoError(t, tree.Insert(p))
				_ = tree.Query(sphere)
			}
		}(int64(w))
	}
	wg.Wait()

	require.Equal(t, workers*100, tree.Len())
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	require.PanicsWithValue(t, octree.ErrBadMaxDepth.Error(), func() { octree.WithMaxDepth(-1) })
	require.PanicsWithValue(t, octree.ErrBadLeafCapacity.Error(), func() { octree.WithLeafCapacity(0) })
	require.PanicsWithValue(t, octree.ErrNilLogger.Error(), func() { octree.WithLogger(nil) })
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()
	o := octree.DefaultOptions()
	require.Equal(t, octree.DefaultMaxDepth, o.MaxDepth)
	require.Equal(t, octree.DefaultLeafCapacity, o.LeafCapacity)
	require.Same(t, logrus.StandardLogger(), o.Logger)
}
