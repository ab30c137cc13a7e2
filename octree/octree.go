// SPDX-License-Identifier: MIT

package octree

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/spatiumgl/bounds"
	"github.com/katalvlaran/spatiumgl/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

const (
	opInsert     = "Insert"
	opFromPoints = "FromPoints"
)

// node is one cube of the tree. children is nil for leaves.
type node[T constraints.Float] struct {
	cube     bounds.Cube[T]
	depth    int
	points   []vector.Vec3[T]
	children *[8]*node[T]
}

// Octree is a concurrency-safe point octree over a fixed root cube.
type Octree[T constraints.Float] struct {
	mu    sync.RWMutex // guards everything below
	root  *node[T]
	opts  Options
	size  int
	nodes int
	depth int
}

// New returns an empty tree covering root.
func New[T constraints.Float](root bounds.Cube[T], opts ...Option) *Octree[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Octree[T]{
		root:  &node[T]{cube: root},
		opts:  o,
		nodes: 1,
	}
}

// FromPoints sizes the root with bounds.CubeFromPoints and inserts every
// point.
//
// Errors:
//   - bounds.ErrInvalidGeometry (wrapping bounds.ErrNonFinite) for NaN/Inf
//     input, from the cube construction.
func FromPoints[T constraints.Float](points []vector.Vec3[T], opts ...Option) (*Octree[T], error) {
	root, err := bounds.CubeFromPoints(points)
	if err != nil {
		return nil, fmt.Errorf("octree.%s: %w", opFromPoints, err)
	}
	t := New(root, opts...)
	for _, p := range points {
		if err = t.Insert(p); err != nil {
			return nil, fmt.Errorf("octree.%s: %w", opFromPoints, err)
		}
	}
	t.opts.Logger.WithFields(logrus.Fields{
		"points": t.size,
		"nodes":  t.nodes,
		"depth":  t.depth,
	}).Debug("octree: built")

	return t, nil
}

// Insert stores p in the deepest node whose cube contains it, splitting a
// full leaf when MaxDepth allows.
//
// Errors:
//   - ErrNonFinite, ErrOutOfBounds.
func (t *Octree[T]) Insert(p vector.Vec3[T]) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var err error
	switch {
	case !p.IsFinite():
		err = fmt.Errorf("octree.%s: %v: %w", opInsert, p, ErrNonFinite)
	case !t.root.cube.Contains(p):
		err = fmt.Errorf("octree.%s: %v not in %v: %w", opInsert, p, t.root.cube, ErrOutOfBounds)
	}
	if err != nil {
		t.opts.Logger.WithError(err).WithField("point", p.String()).Debug("octree: rejected point")
		return err
	}

	n := descend(t.root, p)
	n.points = append(n.points, p)
	t.size++
	if n.children == nil {
		t.maybeSplit(n)
	}

	return nil
}

// descend follows child cubes that contain p and returns the last one.
func descend[T constraints.Float](n *node[T], p vector.Vec3[T]) *node[T] {
	for n.children != nil {
		child := n.children[n.cube.ChildIndex(p)]
		if !child.cube.Contains(p) {
			break
		}
		n = child
	}

	return n
}

// maybeSplit subdivides leaf n when it is over capacity and above
// MaxDepth, then recurses into children that are still over capacity.
func (t *Octree[T]) maybeSplit(n *node[T]) {
	if len(n.points) <= t.opts.LeafCapacity || n.depth >= t.opts.MaxDepth {
		return
	}

	var kids [8]*node[T]
	for i := range kids {
		// i is always in range for a 3-D cube
		c, _ := n.cube.Child(i)
		kids[i] = &node[T]{cube: c, depth: n.depth + 1}
	}
	n.children = &kids
	t.nodes += len(kids)
	if n.depth+1 > t.depth {
		t.depth = n.depth + 1
	}

	held := n.points
	n.points = nil
	for _, p := range held {
		child := kids[n.cube.ChildIndex(p)]
		if child.cube.Contains(p) {
			child.points = append(child.points, p)
		} else {
			n.points = append(n.points, p)
		}
	}
	t.opts.Logger.WithFields(logrus.Fields{
		"depth":  n.depth,
		"points": len(held),
		"kept":   len(n.points),
		"center": n.cube.Center().String(),
	}).Debug("octree: split node")

	for _, child := range kids {
		t.maybeSplit(child)
	}
}

// Query returns every stored point that v contains. Subtrees whose cube
// does not intersect v are skipped. The order is unspecified.
func (t *Octree[T]) Query(v bounds.Volume[T, [3]T]) []vector.Vec3[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var (
		hits  []vector.Vec3[T]
		stack = []*node[T]{t.root}
		n     *node[T]
	)
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !bounds.Intersects[T, [3]T](n.cube, v) {
			continue
		}
		for _, p := range n.points {
			if v.Contains(p) {
				hits = append(hits, p)
			}
		}
		if n.children != nil {
			for _, child := range n.children {
				stack = append(stack, child)
			}
		}
	}

	return hits
}

// Walk visits nodes depth-first, parent before children, children in
// Child index order. Returning false from fn skips that node's subtree.
// fn must not call back into t.
func (t *Octree[T]) Walk(fn func(cube bounds.Cube[T], depth int, points []vector.Vec3[T]) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	walk(t.root, fn)
}

func walk[T constraints.Float](n *node[T], fn func(bounds.Cube[T], int, []vector.Vec3[T]) bool) {
	if !fn(n.cube, n.depth, n.points) || n.children == nil {
		return
	}
	for _, child := range n.children {
		walk(child, fn)
	}
}

// Len returns the number of stored points.
func (t *Octree[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.size
}

// Depth returns the depth of the deepest node (0 for an unsplit root).
func (t *Octree[T]) Depth() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.depth
}

// NodeCount returns the number of nodes, root included.
func (t *Octree[T]) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.nodes
}

// Bounds returns the root cube.
func (t *Octree[T]) Bounds() bounds.Cube[T] {
	return t.root.cube
}
