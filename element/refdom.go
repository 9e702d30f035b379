package element

import "fmt"

/*
RefDom describes one reference cell topology: its dimension, the
coordinates of its vertices in the reference domain, and the local
vertex-index templates of its codimension-1 facets and, in 3D, its
one-dimensional edges. The topology builder extracts sub-entities by
instantiating these templates per element.

Facet template ordering is load bearing: elements that attach DOFs to
facets or edges list their DOF locations in template order.
*/
type RefDom struct {
	Name    string
	Dim     int
	Verts   [][]float64
	Facets  [][]int
	Edges   [][]int // 3D only
	Measure float64 // volume/area/length of the reference cell
}

func (r *RefDom) NumVerts() int { return len(r.Verts) }

func (r *RefDom) String() string { return r.Name }

var RefLine = &RefDom{
	Name: "line",
	Dim:  1,
	Verts: [][]float64{
		{0.},
		{1.},
	},
	Facets: [][]int{
		{0},
		{1},
	},
	Measure: 1.,
}

var RefTri = &RefDom{
	Name: "tri",
	Dim:  2,
	Verts: [][]float64{
		{0., 0.},
		{1., 0.},
		{0., 1.},
	},
	Facets: [][]int{
		{0, 1},
		{1, 2},
		{0, 2},
	},
	Measure: 0.5,
}

var RefQuad = &RefDom{
	Name: "quad",
	Dim:  2,
	Verts: [][]float64{
		{0., 0.},
		{1., 0.},
		{1., 1.},
		{0., 1.},
	},
	Facets: [][]int{
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 0},
	},
	Measure: 1.,
}

var RefTet = &RefDom{
	Name: "tet",
	Dim:  3,
	Verts: [][]float64{
		{0., 0., 0.},
		{1., 0., 0.},
		{0., 1., 0.},
		{0., 0., 1.},
	},
	Facets: [][]int{
		{0, 1, 2},
		{0, 1, 3},
		{0, 2, 3},
		{1, 2, 3},
	},
	Edges: [][]int{
		{0, 1},
		{1, 2},
		{0, 2},
		{0, 3},
		{1, 3},
		{2, 3},
	},
	Measure: 1. / 6.,
}

var RefHex = &RefDom{
	Name: "hex",
	Dim:  3,
	Verts: [][]float64{
		{0., 0., 0.},
		{1., 0., 0.},
		{1., 1., 0.},
		{0., 1., 0.},
		{0., 0., 1.},
		{1., 0., 1.},
		{1., 1., 1.},
		{0., 1., 1.},
	},
	Facets: [][]int{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{0, 3, 7, 4},
	},
	Edges: [][]int{
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 0},
		{4, 5},
		{5, 6},
		{6, 7},
		{7, 4},
		{0, 4},
		{1, 5},
		{2, 6},
		{3, 7},
	},
	Measure: 1.,
}

// GetRefDom resolves a cell type name as found in mesh files.
func GetRefDom(name string) (r *RefDom, err error) {
	switch name {
	case "line":
		r = RefLine
	case "tri", "triangle":
		r = RefTri
	case "quad":
		r = RefQuad
	case "tet", "tetra":
		r = RefTet
	case "hex", "hexahedron":
		r = RefHex
	default:
		err = fmt.Errorf("no matching cell type for name %q", name)
	}
	return
}
