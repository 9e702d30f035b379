package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func triArea(a, b, c []float64) float64 {
	det := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	if det < 0 {
		det = -det
	}
	return det / 2.
}

func tetVolume(a, b, c, d []float64) float64 {
	var e [3][3]float64
	for i, p := range [][]float64{b, c, d} {
		for j := 0; j < 3; j++ {
			e[i][j] = p[j] - a[j]
		}
	}
	det := e[0][0]*(e[1][1]*e[2][2]-e[1][2]*e[2][1]) -
		e[0][1]*(e[1][0]*e[2][2]-e[1][2]*e[2][0]) +
		e[0][2]*(e[1][0]*e[2][1]-e[1][1]*e[2][0])
	if det < 0 {
		det = -det
	}
	return det / 6.
}

func TestPointTransforms(t *testing.T) {
	{ // Per-axis and uniform scaling
		m := UnitSquareTri().Scaled([]float64{2, 3})
		assert.Equal(t, []float64{2, 3}, m.Verts[3])
		m = UnitSquareTri().Scaled([]float64{2})
		assert.Equal(t, []float64{2, 2}, m.Verts[3])
		assert.Panics(t, func() { UnitSquareTri().Scaled([]float64{1, 2, 3}) })
	}
	{ // Translation
		m := UnitSquareTri().Translated([]float64{10, -1})
		assert.Equal(t, []float64{10, -1}, m.Verts[0])
		assert.Equal(t, []float64{11, 0}, m.Verts[3])
	}
	{ // Mirror across an axis plane is exact
		m := UnitTri().Mirrored([]float64{1, 0}, []float64{0, 0})
		assert.Equal(t, []float64{-1, 0}, m.Verts[1])
		assert.Equal(t, []float64{0, 1}, m.Verts[2])
	}
	{ // Mirror across an oblique plane
		m := UnitTri().Mirrored([]float64{1, 1}, []float64{0, 0})
		assert.InDeltaSlice(t, []float64{0, -1}, m.Verts[1], 1.e-15)
		assert.InDeltaSlice(t, []float64{-1, 0}, m.Verts[2], 1.e-15)
	}
	{ // Point transforms keep connectivity, topology and named sets
		named := UnitSquareTri().WithBoundaries(map[string][]int{"all": {0, 2, 3, 4}})
		m := named.Scaled([]float64{2}).Translated([]float64{1, 1})
		assert.Equal(t, named.Elements, m.Elements)
		assert.Equal(t, []int{0, 2, 3, 4}, m.Boundaries["all"])
		assert.Equal(t, []int{0, 2, 3, 4}, m.BoundaryFacets())
		// the source mesh coordinates are untouched
		assert.Equal(t, []float64{0, 0}, named.Verts[0])
	}
}

func TestJoin(t *testing.T) {
	{ // Unit triangle joined with its axis mirrors: shared vertices dedup
		m := UnitTri()
		mx := m.Mirrored([]float64{1, 0}, []float64{0, 0})
		my := m.Mirrored([]float64{0, 1}, []float64{0, 0})
		mxy := mx.Mirrored([]float64{0, 1}, []float64{0, 0})
		all := m.Join(mx).Join(my).Join(mxy)
		assert.Equal(t, 4, all.NumElements())
		assert.Equal(t, 5, all.NumVerts())
	}
	{ // Reference tet mirrored across the three axis planes
		m := UnitTet()
		all := m
		for _, normal := range [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
			all = all.Join(m.Mirrored(normal, []float64{0, 0, 0}))
		}
		assert.Equal(t, 4, all.NumElements())
		assert.Equal(t, 7, all.NumVerts())
	}
	{ // Joining with a translated copy does not duplicate the shared face
		m := UnitSquareTri()
		joined := m.Join(m.Translated([]float64{1, 0}))
		assert.Equal(t, 4, joined.NumElements())
		assert.Equal(t, 6, joined.NumVerts())
		assert.Equal(t, 6, len(joined.BoundaryFacets()))
	}
	{ // Cell types must match
		assert.Panics(t, func() { UnitSquareTri().Join(UnitSquareQuad()) })
	}
}

func TestRemoveElements(t *testing.T) {
	m := UnitSquareTri().RemoveElements([]int{0})
	assert.Equal(t, 1, m.NumElements())
	assert.Equal(t, 3, m.NumVerts())
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}, {1, 1}}, m.Verts)
	assert.Equal(t, [][]int{{0, 1, 2}}, m.Elements)
	assert.Panics(t, func() { UnitSquareTri().RemoveElements([]int{5}) })
}

func TestRefined(t *testing.T) {
	{ // Line bisection
		m := UnitLine().Refined(2)
		assert.Equal(t, 4, m.NumElements())
		assert.Equal(t, 5, m.NumVerts())
		assert.Equal(t, 2, len(m.BoundaryFacets()))
	}
	{ // Triangles split in four, vertices grow by the edge count
		m := UnitSquareTri().Refined(1)
		assert.Equal(t, 8, m.NumElements())
		assert.Equal(t, 9, m.NumVerts())
		assert.Equal(t, 8, len(m.BoundaryFacets()))

		m = UnitSquareTri().Refined(2)
		assert.Equal(t, 32, m.NumElements())
		assert.Equal(t, 25, m.NumVerts())
		assert.Equal(t, 16, len(m.BoundaryFacets()))

		var area float64
		for _, elem := range m.Elements {
			a := triArea(m.Verts[elem[0]], m.Verts[elem[1]], m.Verts[elem[2]])
			assert.InDelta(t, 1./32., a, 1.e-15)
			area += a
		}
		assert.InDelta(t, 1., area, 1.e-14)
	}
	{ // Quads split in four through edge midpoints and the centroid
		m := UnitSquareQuad().Refined(2)
		assert.Equal(t, 16, m.NumElements())
		assert.Equal(t, 25, m.NumVerts())
		assert.Equal(t, 16, len(m.BoundaryFacets()))
	}
	{ // Red tet refinement: eight children of equal volume
		m := UnitTet().Refined(1)
		assert.Equal(t, 8, m.NumElements())
		assert.Equal(t, 10, m.NumVerts())
		assert.Equal(t, 16, len(m.BoundaryFacets()))
		for _, elem := range m.Elements {
			v := tetVolume(m.Verts[elem[0]], m.Verts[elem[1]], m.Verts[elem[2]], m.Verts[elem[3]])
			assert.InDelta(t, 1./48., v, 1.e-15)
		}
	}
	{ // Five-tet cube keeps its volume through refinement
		m := UnitCubeTet().Refined(1)
		assert.Equal(t, 40, m.NumElements())
		assert.Equal(t, 26, m.NumVerts())
		assert.Equal(t, 48, len(m.BoundaryFacets()))
		var vol float64
		for _, elem := range m.Elements {
			vol += tetVolume(m.Verts[elem[0]], m.Verts[elem[1]], m.Verts[elem[2]], m.Verts[elem[3]])
		}
		assert.InDelta(t, 1., vol, 1.e-14)
	}
	{ // Hexahedra do not refine
		assert.Panics(t, func() { UnitCubeHex().Refined(1) })
	}
}
