package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementCatalog(t *testing.T) {
	{ // DOF bookkeeping is consistent for every element in the catalog
		for _, name := range Names() {
			e, err := ByName(name)
			assert.NoError(t, err)
			assert.Equal(t, e.NumDofs(), CountDofs(e.RefDom(), e.DofCounts()), name)
			assert.Equal(t, e.NumDofs(), len(e.DofLocs()), name)
			for _, loc := range e.DofLocs() {
				assert.Equal(t, e.RefDom().Dim, len(loc), name)
			}
			assert.Panics(t, func() { e.Eval(e.DofLocs()[0], e.NumDofs()) })
		}
		_, err := ByName("TriP99")
		assert.Error(t, err)
	}
	{ // H1 elements: partition of unity and Kronecker delta at DOF locations
		samples := map[string][][]float64{
			"LineP1": {{0.3}, {0.7}},
			"TriP1":  {{0.2, 0.3}, {0.1, 0.6}},
			"TriP2":  {{0.2, 0.3}, {0.1, 0.6}},
			"TriCR":  {{0.2, 0.3}, {0.1, 0.6}},
			"Quad1":  {{0.3, 0.8}, {0.5, 0.5}},
			"TetP1":  {{0.2, 0.3, 0.1}, {0.1, 0.1, 0.6}},
			"TetP2":  {{0.2, 0.3, 0.1}, {0.1, 0.1, 0.6}},
			"TetCR":  {{0.2, 0.3, 0.1}, {0.1, 0.1, 0.6}},
			"Hex1":   {{0.3, 0.8, 0.2}, {0.5, 0.5, 0.5}},
		}
		for name, pts := range samples {
			e, _ := ByName(name)
			dim := e.RefDom().Dim
			for _, x := range pts {
				var sum float64
				gradSum := make([]float64, dim)
				for i := 0; i < e.NumDofs(); i++ {
					v, g := e.Eval(x, i)
					assert.Equal(t, 1, len(v), name)
					assert.Equal(t, dim, len(g), name)
					sum += v[0]
					for d := 0; d < dim; d++ {
						gradSum[d] += g[d]
					}
				}
				assert.InDelta(t, 1., sum, 1.e-12, name)
				for d := 0; d < dim; d++ {
					assert.InDelta(t, 0., gradSum[d], 1.e-12, name)
				}
			}
			// Kronecker delta property
			for j, loc := range e.DofLocs() {
				for i := 0; i < e.NumDofs(); i++ {
					v, _ := e.Eval(loc, i)
					expected := 0.
					if i == j {
						expected = 1.
					}
					assert.InDelta(t, expected, v[0], 1.e-12, name)
				}
			}
		}
	}
}

func TestRaviartThomas(t *testing.T) {
	{ // TriRT0: unit flux through its own facet, zero through the others
		e := TriRT0{}
		// Outward normals scaled by facet length, per facet template
		normals := [][]float64{
			{0., -1.},
			{1., 1.},
			{-1., 0.},
		}
		midpoints := e.DofLocs()
		for i := 0; i < 3; i++ {
			for f := 0; f < 3; f++ {
				v, dv := e.Eval(midpoints[f], i)
				assert.InDelta(t, 2., dv[0], 1.e-12) // constant divergence
				flux := v[0]*normals[f][0] + v[1]*normals[f][1]
				if i == f {
					assert.InDelta(t, 1., flux, 1.e-12)
				} else {
					assert.InDelta(t, 0., flux, 1.e-12)
				}
			}
		}
	}
	{ // TetRT0: same property with area scaled normals
		e := TetRT0{}
		normals := [][]float64{
			{0., 0., -1.},
			{0., -1., 0.},
			{-1., 0., 0.},
			{1., 1., 1.},
		}
		// Facet centroids
		centroids := [][]float64{
			{1. / 3., 1. / 3., 0.},
			{1. / 3., 0., 1. / 3.},
			{0., 1. / 3., 1. / 3.},
			{1. / 3., 1. / 3., 1. / 3.},
		}
		for i := 0; i < 4; i++ {
			for f := 0; f < 4; f++ {
				v, dv := e.Eval(centroids[f], i)
				assert.InDelta(t, 3., dv[0], 1.e-12)
				flux := v[0]*normals[f][0] + v[1]*normals[f][1] + v[2]*normals[f][2]
				if i == f {
					assert.InDelta(t, 1., flux, 1.e-12)
				} else {
					assert.InDelta(t, 0., flux, 1.e-12)
				}
			}
		}
	}
}

func TestWhitneyEdge(t *testing.T) {
	e := TetN0{}
	verts := RefTet.Verts
	// Tangential moment along edge {a,b} evaluated at the edge midpoint:
	// one on its own edge, zero elsewhere
	for i := 0; i < 6; i++ {
		for j, eg := range RefTet.Edges {
			a, b := eg[0], eg[1]
			mid := []float64{
				(verts[a][0] + verts[b][0]) / 2.,
				(verts[a][1] + verts[b][1]) / 2.,
				(verts[a][2] + verts[b][2]) / 2.,
			}
			tangent := []float64{
				verts[b][0] - verts[a][0],
				verts[b][1] - verts[a][1],
				verts[b][2] - verts[a][2],
			}
			v, _ := e.Eval(mid, i)
			circ := v[0]*tangent[0] + v[1]*tangent[1] + v[2]*tangent[2]
			if i == j {
				assert.InDelta(t, 1., circ, 1.e-12)
			} else {
				assert.InDelta(t, 0., circ, 1.e-12)
			}
		}
	}
	// Constant curl: edge {0,1} has curl 2*grad(L0) x grad(L1)
	_, curl := e.Eval([]float64{0.2, 0.3, 0.1}, 0)
	assert.InDeltaSlice(t, []float64{0., -2., 2.}, curl, 1.e-12)
}

func TestRefDom(t *testing.T) {
	{ // Facet and edge templates index valid vertices
		for _, r := range []*RefDom{RefLine, RefTri, RefQuad, RefTet, RefHex} {
			for _, f := range r.Facets {
				for _, v := range f {
					assert.True(t, v >= 0 && v < r.NumVerts())
				}
			}
			for _, eg := range r.Edges {
				assert.Equal(t, 2, len(eg))
				for _, v := range eg {
					assert.True(t, v >= 0 && v < r.NumVerts())
				}
			}
		}
		assert.Equal(t, 4, len(RefTet.Facets))
		assert.Equal(t, 6, len(RefTet.Edges))
		assert.Equal(t, 6, len(RefHex.Facets))
		assert.Equal(t, 12, len(RefHex.Edges))
	}
	{ // Name lookup
		r, err := GetRefDom("tri")
		assert.NoError(t, err)
		assert.Equal(t, RefTri, r)
		r, err = GetRefDom("hexahedron")
		assert.NoError(t, err)
		assert.Equal(t, RefHex, r)
		_, err = GetRefDom("prism")
		assert.Error(t, err)
	}
}
