// SPDX-License-Identifier: MIT

// Package octree is a point octree built on bounds.Cube.
//
// 🚀 What it does
//
//	Stores 3-D points in a tree of nested cubes. A leaf splits into eight
//	children (bounds.Cube.Child) once it holds more than LeafCapacity
//	points, until MaxDepth is reached. Query walks only the nodes whose
//	cube intersects the query volume (bounds.Intersects) and returns the
//	stored points the volume contains.
//
// Points that round onto a child boundary and are not contained by the
// child cube stay in the parent node, so every stored point is inside the
// cube of the node that holds it. Pruning therefore never drops a match.
//
// Concurrency:
//
//	Octree is safe for concurrent use: Insert takes the write lock, every
//	read (Query, Len, Depth, NodeCount, Walk) the read lock.
//
// Options:
//
//	WithMaxDepth(d)       // default 8
//	WithLeafCapacity(n)   // default 16
//	WithLogger(l)         // default logrus.StandardLogger()
//
// Errors:
//
//	ErrOutOfBounds  - Insert outside the root cube.
//	ErrNonFinite    - Insert of a NaN/Inf point.
//
// Example usage:
//
//	tree, err := octree.FromPoints(cloud, octree.WithLeafCapacity(8))
//	if err != nil { ... }
//	sphere, _ := bounds.NewSphere(vector.V3(0.0, 0, 0), 1)
//	hits := tree.Query(sphere)
package octree
