// Package bounds provides dimension-generic bounding volumes.
//
// Every shape is composed from the traits it needs:
//
//	BoundsCenter       centroid (every shape)
//	BoundsRadii        per-axis half-widths (Box, Rectangle, Ellipsoid, Ellipse)
//	BoundsExtent       one scalar radius (Sphere, Circle, Cube, Square)
//	BoundsOrientation  rotation frame, columns are the axes (Ellipsoid, Ellipse)
//
// The generic shapes Orthotope, Ball, Hypercube and Hyperellipsoid carry the
// dimension in their array type parameter; Box, Sphere, Cube and Ellipsoid
// are their 3-D aliases, Rectangle, Circle, Square and Ellipse the 2-D ones.
// Combining a 3-D point with a 2-D shape does not compile.
//
// Queries:
//
//   - Contains(p): closed containment, the boundary is inside.
//   - Merge(o): smallest shape of the same family covering both operands
//     (exact for Orthotope, Ball and Hypercube; conservative for
//     Hyperellipsoid, which keeps the receiver's frame).
//   - Include(p): grows a shape in place to cover p.
//   - Transform*(v, m): applies an affine homogeneous matrix. Axis-aligned
//     shapes are re-fitted and only grow under rotation; balls scale by the
//     spectral norm; oriented shapes rotate their frame exactly.
//   - Intersects(a, b): volume-vs-volume overlap through the sealed Volume
//     interface. Mixed pairs involving an oriented shape are conservative.
//   - OverlappingPairs and Cull over collections of volumes.
//
// Validation policy: negative radii and non-finite components are rejected
// with an error wrapping ErrInvalidGeometry; nothing is clamped. Building
// from an empty point set yields the zero shape at the origin and no error.
//
// All shapes are plain comparable values with no internal synchronization.
// Concurrent reads are safe; concurrent mutation of one value is not.
package bounds
