// SPDX-License-Identifier: MIT
package octree_test

import (
	"testing"

	"github.com/katalvlaran/spatiumgl/bounds"
	"github.com/katalvlaran/spatiumgl/octree"
	"github.com/katalvlaran/spatiumgl/vector"
	"github.com/sirupsen/logrus/hooks/test"
)

var sinkPoints []vector.Vector3

func BenchmarkFromPoints(b *testing.B) {
	logger, _ := test.NewNullLogger()
	pts := cloud(11, 10000, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := octree.FromPoints(pts, octree.WithLogger(logger)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQuery(b *testing.B) {
	logger, _ := test.NewNullLogger()
	pts := cloud(11, 10000, 100)
	tree, err := octree.FromPoints(pts, octree.WithLogger(logger))
	if err != nil {
		b.Fatal(err)
	}
	sphere, err := bounds.NewSphere(vector.V3(10.0, -20, 5), 15)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkPoints = tree.Query(sphere)
	}
}
