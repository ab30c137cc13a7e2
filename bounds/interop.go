// SPDX-License-Identifier: MIT

// Package bounds - conversions to and from other geometry libraries.
//
//   - github.com/deadsy/sdfx: sdf.Box3 and sdf.Box2, the bounding boxes of
//     SDF solids and shapes.
//   - gonum.org/v1/gonum/spatial/r3: r3.Box.
//
// Both libraries store min/max corners in float64; conversions go through
// FromMinMax so malformed foreign boxes are rejected the same way.
package bounds

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/spatial/r3"
)

// BoxToSdf returns b as an sdf.Box3.
func BoxToSdf[T constraints.Float](b Box[T]) sdf.Box3 {
	lo, hi := b.Min(), b.Max()

	return sdf.Box3{
		Min: v3.Vec{X: float64(lo.X()), Y: float64(lo.Y()), Z: float64(lo.Z())},
		Max: v3.Vec{X: float64(hi.X()), Y: float64(hi.Y()), Z: float64(hi.Z())},
	}
}

// BoxFromSdf converts an sdf.Box3.
//
// Errors:
//   - as BoxFromMinMax.
func BoxFromSdf[T constraints.Float](s sdf.Box3) (Box[T], error) {
	return BoxFromMinMax(
		vector.V3(T(s.Min.X), T(s.Min.Y), T(s.Min.Z)),
		vector.V3(T(s.Max.X), T(s.Max.Y), T(s.Max.Z)),
	)
}

// RectangleToSdf returns r as an sdf.Box2.
func RectangleToSdf[T constraints.Float](r Rectangle[T]) sdf.Box2 {
	lo, hi := r.Min(), r.Max()

	return sdf.Box2{
		Min: v2.Vec{X: float64(lo.X()), Y: float64(lo.Y())},
		Max: v2.Vec{X: float64(hi.X()), Y: float64(hi.Y())},
	}
}

// RectangleFromSdf converts an sdf.Box2.
//
// Errors:
//   - as RectangleFromMinMax.
func RectangleFromSdf[T constraints.Float](s sdf.Box2) (Rectangle[T], error) {
	return RectangleFromMinMax(
		vector.V2(T(s.Min.X), T(s.Min.Y)),
		vector.V2(T(s.Max.X), T(s.Max.Y)),
	)
}

// BoxToR3 returns b as a gonum r3.Box.
func BoxToR3[T constraints.Float](b Box[T]) r3.Box {
	lo, hi := b.Min(), b.Max()

	return r3.Box{
		Min: r3.Vec{X: float64(lo.X()), Y: float64(lo.Y()), Z: float64(lo.Z())},
		Max: r3.Vec{X: float64(hi.X()), Y: float64(hi.Y()), Z: float64(hi.Z())},
	}
}

// BoxFromR3 converts a gonum r3.Box.
//
// Errors:
//   - as BoxFromMinMax.
func BoxFromR3[T constraints.Float](b r3.Box) (Box[T], error) {
	return BoxFromMinMax(
		vector.V3(T(b.Min.X), T(b.Min.Y), T(b.Min.Z)),
		vector.V3(T(b.Max.X), T(b.Max.Y), T(b.Max.Z)),
	)
}

// SdfBounds returns the bounding box of an SDF solid.
func SdfBounds(s sdf.SDF3) (Box[float64], error) {
	return BoxFromSdf[float64](s.BoundingBox())
}
