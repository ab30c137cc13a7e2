// Package spatiumgl is a toolkit of bounding volumes for spatial queries,
// culling and collision broad phases.
//
// 🚀 What is spatiumgl?
//
//	A generic, allocation-free geometry core where the dimension is part of
//	the type:
//		• Vectors: Vec1…Vec4 over any integer or float scalar
//		• Matrices: column-major Mat2…Mat4 plus rectangular shapes,
//		  inverse, symmetric eigen-decomposition, spectral norm
//		• Bounds: Box/Rectangle, Sphere/Circle, Cube/Square,
//		  Ellipsoid/Ellipse with Contains, Merge, Include, Transform
//		  and Intersects
//		• Octree: a concurrency-safe point index over bounds.Cube
//
// Every shape is built from three traits, BoundsCenter, BoundsRadii and
// BoundsOrientation (plus BoundsExtent for a scalar radius), so a Box is a
// center and half-extents and an Ellipsoid is a center, radii and a frame.
//
// Under the hood, everything is organized under four subpackages:
//
//	vector/  — fixed-size generic vectors, mathgl interop
//	matrix/  — fixed-size generic matrices, homogeneous transforms
//	bounds/  — shapes, traits, intersection and collection queries,
//	           sdfx and gonum interop
//	octree/  — point octree with functional options and logrus logging
//
// Quick example:
//
//	box, _ := bounds.BoxFromPoints([]vector.Vector3{
//		vector.V3(0.0, 0, 0), vector.V3(2.0, 0, 0),
//		vector.V3(0.0, 2, 0), vector.V3(0.0, 0, 2),
//	})
//	// box.Center() == (1, 1, 1), box.Radii() == (1, 1, 1)
//
//	go get github.com/katalvlaran/spatiumgl/bounds
package spatiumgl
