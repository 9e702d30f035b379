package mapping

import (
	"fmt"

	"github.com/notargets/gofea/element"
	"github.com/notargets/gofea/mesh"
	"github.com/notargets/gofea/quadrature"
	"github.com/notargets/gofea/utils"
)

/*
Package mapping evaluates the reference-to-physical coordinate map of a
mesh at quadrature points: physical coordinates, Jacobian components and
determinants, stored as Nq x K matrices (quadrature rows, element
columns) so downstream assembly indexes everything the same way.

Straight-sided simplex meshes get the affine map with its constant
per-element Jacobian; quad and hex meshes get the isoparametric map
evaluated per point through their geometry basis.
*/

type Mapping interface {
	// F maps the rule's reference points into every element, one Nq x K
	// matrix per coordinate.
	F(rule *quadrature.Rule) (X []utils.Matrix)
	// Jacobians evaluates the map's Jacobian at the rule's points.
	Jacobians(rule *quadrature.Rule) *Jacobians
}

/*
Jacobians carries the map derivatives per (quadrature point, element):
J[i][j] holds dx_i/dxi_j, Jinv its inverse, Det the signed determinant.
Integration weights use |Det|; the sign participates in the Piola
push-forwards.
*/
type Jacobians struct {
	J    [][]utils.Matrix
	Jinv [][]utils.Matrix
	Det  utils.Matrix
}

// ApplyJ computes out = J v at one (point, element).
func (jc *Jacobians) ApplyJ(q, k int, v, out []float64) {
	for i := range out {
		out[i] = 0
		for j := range v {
			out[i] += jc.J[i][j].At(q, k) * v[j]
		}
	}
}

// ApplyJinvT computes out = J^{-T} v at one (point, element).
func (jc *Jacobians) ApplyJinvT(q, k int, v, out []float64) {
	for i := range out {
		out[i] = 0
		for j := range v {
			out[i] += jc.Jinv[j][i].At(q, k) * v[j]
		}
	}
}

/*
New selects the map strategy for a mesh: affine for line, triangle and
tet cells, isoparametric for quad and hex cells. elems restricts the
columns to an element subset; nil means all elements.
*/
func New(m *mesh.Mesh, elems []int) Mapping {
	if elems == nil {
		elems = make([]int, len(m.Elements))
		for k := range elems {
			elems[k] = k
		}
	}
	switch m.Ref {
	case element.RefLine, element.RefTri, element.RefTet:
		return newAffine(m, elems)
	case element.RefQuad, element.RefHex:
		return newIsoparametric(m, elems)
	}
	panic(fmt.Errorf("no mapping for %s cells", m.Ref.Name))
}

func newMatrices(n, nr, nc int) (ms []utils.Matrix) {
	ms = make([]utils.Matrix, n)
	for i := range ms {
		ms[i] = utils.NewMatrix(nr, nc)
	}
	return
}

func newJacobians(dim, nr, nc int) (jc *Jacobians) {
	jc = &Jacobians{
		J:    make([][]utils.Matrix, dim),
		Jinv: make([][]utils.Matrix, dim),
		Det:  utils.NewMatrix(nr, nc),
	}
	for i := 0; i < dim; i++ {
		jc.J[i] = newMatrices(dim, nr, nc)
		jc.Jinv[i] = newMatrices(dim, nr, nc)
	}
	return
}

// invert fills inv with the inverse of the dim x dim matrix j, given its
// determinant. Closed-form for dimensions 1 through 3.
func invert(dim int, j, inv *[3][3]float64, det float64) {
	switch dim {
	case 1:
		inv[0][0] = 1. / det
	case 2:
		inv[0][0] = j[1][1] / det
		inv[0][1] = -j[0][1] / det
		inv[1][0] = -j[1][0] / det
		inv[1][1] = j[0][0] / det
	case 3:
		inv[0][0] = (j[1][1]*j[2][2] - j[1][2]*j[2][1]) / det
		inv[0][1] = (j[0][2]*j[2][1] - j[0][1]*j[2][2]) / det
		inv[0][2] = (j[0][1]*j[1][2] - j[0][2]*j[1][1]) / det
		inv[1][0] = (j[1][2]*j[2][0] - j[1][0]*j[2][2]) / det
		inv[1][1] = (j[0][0]*j[2][2] - j[0][2]*j[2][0]) / det
		inv[1][2] = (j[0][2]*j[1][0] - j[0][0]*j[1][2]) / det
		inv[2][0] = (j[1][0]*j[2][1] - j[1][1]*j[2][0]) / det
		inv[2][1] = (j[0][1]*j[2][0] - j[0][0]*j[2][1]) / det
		inv[2][2] = (j[0][0]*j[1][1] - j[0][1]*j[1][0]) / det
	}
}

func determinant(dim int, j *[3][3]float64) (det float64) {
	switch dim {
	case 1:
		det = j[0][0]
	case 2:
		det = j[0][0]*j[1][1] - j[0][1]*j[1][0]
	case 3:
		det = j[0][0]*(j[1][1]*j[2][2]-j[1][2]*j[2][1]) -
			j[0][1]*(j[1][0]*j[2][2]-j[1][2]*j[2][0]) +
			j[0][2]*(j[1][0]*j[2][1]-j[1][1]*j[2][0])
	}
	return
}

/*
Affine is the constant-Jacobian map of straight-sided simplices:
x = v0 + J xi with column j of J the edge vector v_{j+1} - v0. The
per-element Jacobian is computed once and broadcast across quadrature
rows.
*/
type Affine struct {
	mesh  *mesh.Mesh
	elems []int
	dim   int
	j     [][3][3]float64 // per element
	jinv  [][3][3]float64
	det   []float64
}

func newAffine(m *mesh.Mesh, elems []int) (am *Affine) {
	var (
		dim = m.Ref.Dim
	)
	am = &Affine{
		mesh:  m,
		elems: elems,
		dim:   dim,
		j:     make([][3][3]float64, len(elems)),
		jinv:  make([][3][3]float64, len(elems)),
		det:   make([]float64, len(elems)),
	}
	for kk, k := range elems {
		var (
			elem = m.Elements[k]
			v0   = m.Verts[elem[0]]
		)
		for j := 0; j < dim; j++ {
			vj := m.Verts[elem[j+1]]
			for i := 0; i < dim; i++ {
				am.j[kk][i][j] = vj[i] - v0[i]
			}
		}
		am.det[kk] = determinant(dim, &am.j[kk])
		invert(dim, &am.j[kk], &am.jinv[kk], am.det[kk])
	}
	return
}

func (am *Affine) F(rule *quadrature.Rule) (X []utils.Matrix) {
	var (
		nq = rule.Len()
	)
	X = newMatrices(am.dim, nq, len(am.elems))
	for kk, k := range am.elems {
		v0 := am.mesh.Verts[am.mesh.Elements[k][0]]
		for q, xi := range rule.Points {
			for i := 0; i < am.dim; i++ {
				x := v0[i]
				for j := 0; j < am.dim; j++ {
					x += am.j[kk][i][j] * xi[j]
				}
				X[i].Set(q, kk, x)
			}
		}
	}
	return
}

func (am *Affine) Jacobians(rule *quadrature.Rule) (jc *Jacobians) {
	var (
		nq = rule.Len()
	)
	jc = newJacobians(am.dim, nq, len(am.elems))
	for kk := range am.elems {
		for q := 0; q < nq; q++ {
			for i := 0; i < am.dim; i++ {
				for j := 0; j < am.dim; j++ {
					jc.J[i][j].Set(q, kk, am.j[kk][i][j])
					jc.Jinv[i][j].Set(q, kk, am.jinv[kk][i][j])
				}
			}
			jc.Det.Set(q, kk, am.det[kk])
		}
	}
	return
}

/*
Isoparametric maps quad and hex cells through their geometry basis:
x(xi) = sum_m N_m(xi) x_m, J(xi) = sum_m x_m outer grad N_m(xi),
inverted pointwise.
*/
type Isoparametric struct {
	mesh  *mesh.Mesh
	elems []int
	dim   int
	geom  element.Element
}

func newIsoparametric(m *mesh.Mesh, elems []int) *Isoparametric {
	var geom element.Element
	switch m.Ref {
	case element.RefQuad:
		geom = element.Quad1{}
	case element.RefHex:
		geom = element.Hex1{}
	}
	return &Isoparametric{mesh: m, elems: elems, dim: m.Ref.Dim, geom: geom}
}

func (im *Isoparametric) F(rule *quadrature.Rule) (X []utils.Matrix) {
	var (
		nq = rule.Len()
		nv = im.mesh.Ref.NumVerts()
	)
	X = newMatrices(im.dim, nq, len(im.elems))
	for q, xi := range rule.Points {
		for m := 0; m < nv; m++ {
			val, _ := im.geom.Eval(xi, m)
			for kk, k := range im.elems {
				xm := im.mesh.Verts[im.mesh.Elements[k][m]]
				for i := 0; i < im.dim; i++ {
					X[i].Set(q, kk, X[i].At(q, kk)+val[0]*xm[i])
				}
			}
		}
	}
	return
}

func (im *Isoparametric) Jacobians(rule *quadrature.Rule) (jc *Jacobians) {
	var (
		nq = rule.Len()
		nv = im.mesh.Ref.NumVerts()
	)
	jc = newJacobians(im.dim, nq, len(im.elems))
	var j, inv [3][3]float64
	for q, xi := range rule.Points {
		grads := make([][]float64, nv)
		for m := 0; m < nv; m++ {
			_, grads[m] = im.geom.Eval(xi, m)
		}
		for kk, k := range im.elems {
			for a := 0; a < 3; a++ {
				j[a] = [3]float64{}
			}
			for m := 0; m < nv; m++ {
				xm := im.mesh.Verts[im.mesh.Elements[k][m]]
				for i := 0; i < im.dim; i++ {
					for d := 0; d < im.dim; d++ {
						j[i][d] += xm[i] * grads[m][d]
					}
				}
			}
			det := determinant(im.dim, &j)
			invert(im.dim, &j, &inv, det)
			for i := 0; i < im.dim; i++ {
				for d := 0; d < im.dim; d++ {
					jc.J[i][d].Set(q, kk, j[i][d])
					jc.Jinv[i][d].Set(q, kk, inv[i][d])
				}
			}
			jc.Det.Set(q, kk, det)
		}
	}
	return
}
