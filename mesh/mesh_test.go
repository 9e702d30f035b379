package mesh

import (
	"testing"

	"github.com/notargets/gofea/element"
	"github.com/stretchr/testify/assert"
)

func TestBuildEntities(t *testing.T) {
	{ // Two triangles sharing an edge: five unique edges in scan order
		elements := [][]int{{0, 1, 2}, {1, 2, 3}}
		entities, t2e := BuildEntities(elements, element.RefTri.Facets)
		assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 3}, {0, 2}, {1, 3}}, entities)
		assert.Equal(t, [][]int{{0, 1}, {1, 2}, {3, 4}}, t2e)

		f2t := BuildInverse(len(elements), t2e, len(entities))
		assert.Equal(t, []int{0, 1, 1, 0, 1}, f2t[0])
		assert.Equal(t, []int{-1, 0, -1, -1, -1}, f2t[1])
	}
	{ // Sub-entity tuples dedup regardless of presentation order
		elements := [][]int{{0, 1, 2, 3}, {1, 3, 2, 4}}
		templates := [][]int{{0, 1, 2}, {1, 2, 3}}
		entities, t2e := BuildEntities(elements, templates)
		assert.Equal(t, [][]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}, entities)
		assert.Equal(t, [][]int{{0, 1}, {1, 2}}, t2e)

		f2t := BuildInverse(len(elements), t2e, len(entities))
		assert.Equal(t, []int{0, 1, 1}, f2t[0])
		assert.Equal(t, []int{-1, 0, -1}, f2t[1])
	}
	{ // Single-vertex facets of 1D cells dedup through the same path
		elements := [][]int{{0, 1}, {1, 2}}
		entities, t2e := BuildEntities(elements, element.RefLine.Facets)
		assert.Equal(t, [][]int{{0}, {1}, {2}}, entities)
		f2t := BuildInverse(len(elements), t2e, len(entities))
		assert.Equal(t, []int{-1, 0, -1}, f2t[1])
	}
}

func TestMeshTopology(t *testing.T) {
	{ // Two-triangle unit square: facet enumeration and owners
		m := UnitSquareTri()
		assert.Equal(t, 2, m.Dim())
		assert.Equal(t, 4, m.NumVerts())
		assert.Equal(t, 2, m.NumElements())
		assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 3}, {0, 2}, {1, 3}}, m.Facets())
		assert.Equal(t, [][]int{{0, 1}, {1, 2}, {3, 4}}, m.T2F())
		assert.Equal(t, []int{0, 1, 1, 0, 1}, m.F2T()[0])
		assert.Equal(t, []int{-1, 0, -1, -1, -1}, m.F2T()[1])
		assert.Equal(t, []int{0, 2, 3, 4}, m.BoundaryFacets())
	}
	{ // Every facet of a single-element mesh is a boundary facet
		for _, m := range []*Mesh{UnitLine(), UnitTri(), UnitSquareQuad(), UnitTet(), UnitCubeHex()} {
			f2t := m.F2T()
			assert.Equal(t, len(m.Ref.Facets), len(m.Facets()), m.Ref.Name)
			for f := range f2t[1] {
				assert.Equal(t, 0, f2t[0][f], m.Ref.Name)
				assert.Equal(t, -1, f2t[1][f], m.Ref.Name)
			}
		}
	}
	{ // The -1 sentinel and BoundaryFacets always agree
		for _, m := range []*Mesh{UnitSquareTri(), UnitCubeTet(), UnitSquareQuad().Refined(2), UnitSquareTri().Refined(1)} {
			onBoundary := make(map[int]bool)
			for _, f := range m.BoundaryFacets() {
				onBoundary[f] = true
			}
			f2t := m.F2T()
			for f := range f2t[1] {
				assert.Equal(t, f2t[1][f] == -1, onBoundary[f])
			}
		}
	}
	{ // Five-tet cube: 16 facets of which 12 boundary, 18 edges
		m := UnitCubeTet()
		assert.Equal(t, 16, len(m.Facets()))
		assert.Equal(t, 12, len(m.BoundaryFacets()))
		assert.Equal(t, 18, len(m.Edges()))
		assert.Equal(t, 6, len(m.T2E()))
		// the four interior facets are the faces of the central tet
		var interior [][]int
		for f, verts := range m.Facets() {
			if m.F2T()[1][f] != -1 {
				interior = append(interior, verts)
			}
		}
		assert.ElementsMatch(t, [][]int{{1, 2, 4}, {1, 2, 7}, {1, 4, 7}, {2, 4, 7}}, interior)
	}
	{ // Hexahedral cube: 6 facets, 12 edges
		m := UnitCubeHex()
		assert.Equal(t, 6, len(m.Facets()))
		assert.Equal(t, 12, len(m.Edges()))
	}
	{ // Edge accessors reject 2D meshes
		assert.Panics(t, func() { UnitSquareTri().Edges() })
		assert.Panics(t, func() { UnitSquareTri().T2E() })
	}
}

func TestBoundarySets(t *testing.T) {
	{ // Boundary and interior nodes of refined unit square
		m := UnitSquareTri()
		assert.Equal(t, []int{0, 1, 2, 3}, m.BoundaryNodes())
		assert.Empty(t, m.InteriorNodes())

		r := m.Refined(1) // 9 vertices, center vertex interior
		assert.Equal(t, 8, len(r.BoundaryNodes()))
		assert.Equal(t, 1, len(r.InteriorNodes()))
	}
	{ // Predicate selectors
		m := UnitSquareTri()
		left := m.NodesSatisfying(func(x []float64) bool { return x[0] == 0 })
		assert.Equal(t, []int{0, 2}, left)
		leftFacets := m.FacetsSatisfying(func(x []float64) bool { return x[0] == 0 })
		assert.Equal(t, []int{3}, leftFacets)
		lower := m.ElementsSatisfying(func(x []float64) bool { return x[0]+x[1] < 1 })
		assert.Equal(t, []int{0}, lower)
	}
	{ // Named boundary override and lookup
		m := UnitSquareTri()
		named := m.WithBoundaries(map[string][]int{
			"left":  m.FacetsSatisfying(func(x []float64) bool { return x[0] == 0 }),
			"right": m.FacetsSatisfying(func(x []float64) bool { return x[0] == 1 }),
		})
		left, err := named.Boundary("left")
		assert.NoError(t, err)
		assert.Equal(t, []int{3}, left)
		_, err = named.Boundary("top")
		assert.Error(t, err)
		// the receiver is untouched
		assert.Empty(t, m.Boundaries)
	}
	{ // Subdomain override
		m := UnitSquareTri().WithSubdomains(map[string][]int{"lower": {0}})
		assert.Equal(t, []int{0}, m.Subdomains["lower"])
	}
}

func TestConstructors(t *testing.T) {
	{ // Simplex connectivity is canonicalized ascending
		m := NewTri([][]float64{{0, 0}, {1, 0}, {0, 1}}, [][]int{{2, 0, 1}})
		assert.Equal(t, [][]int{{0, 1, 2}}, m.Elements)
	}
	{ // Quad connectivity keeps its cyclic order
		m := UnitSquareQuad()
		assert.Equal(t, [][]int{{0, 1, 2, 3}}, m.Elements)
	}
	{ // Arity, index range and coordinate dimension are validated
		_, err := New(element.RefTri, [][]float64{{0, 0}, {1, 0}, {0, 1}}, [][]int{{0, 1}})
		assert.Error(t, err)
		_, err = New(element.RefTri, [][]float64{{0, 0}, {1, 0}, {0, 1}}, [][]int{{0, 1, 3}})
		assert.Error(t, err)
		_, err = New(element.RefTri, [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][]int{{0, 1, 2}})
		assert.Error(t, err)
		assert.Panics(t, func() { NewTri([][]float64{{0, 0}}, [][]int{{0, 1, 2}}) })
	}
	{ // Caller connectivity slices are not mutated by canonicalization
		elems := [][]int{{2, 0, 1}}
		NewTri([][]float64{{0, 0}, {1, 0}, {0, 1}}, elems)
		assert.Equal(t, []int{2, 0, 1}, elems[0])
	}
}
