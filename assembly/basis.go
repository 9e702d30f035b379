package assembly

import (
	"fmt"
	"math"

	"github.com/notargets/gofea/element"
	"github.com/notargets/gofea/mapping"
	"github.com/notargets/gofea/mesh"
	"github.com/notargets/gofea/quadrature"
	"github.com/notargets/gofea/utils"
)

/*
Basis binds a mesh, an element and a quadrature rule and precomputes
everything assembly needs: every basis function pushed forward to every
element at every quadrature point, the integration weights, the physical
coordinates and the global dof map. All matrices are Nq x K (quadrature
rows, element columns) and read-only once built, so one Basis may feed
any number of concurrent assemblies.

Push-forward per family, with J the map Jacobian and detJ its signed
determinant:

	H1:    phi,            grad = J^{-T} grad_ref
	HDiv:  (J/|detJ|) phi, div = div_ref/|detJ|, oriented +1 for the
	       facet's first owner and -1 for the second
	HCurl: J^{-T} phi,     curl = (J/detJ) curl_ref, oriented along
	       ascending global edge direction

The divergence uses the absolute determinant so the facet flux a dof
carries is +1 regardless of the element's vertex ordering; the curl
keeps the signed determinant, which the covariant identity requires.
*/
type Basis struct {
	Mesh  *mesh.Mesh
	Elem  element.Element
	Rule  *quadrature.Rule
	Elems []int
	Dofs  *Dofs

	// N is the global dof count; columns cover Elems only.
	N           int
	X           []utils.Matrix
	DX          utils.Matrix
	H           utils.Matrix
	ElementDofs [][]int

	fields []DiscreteField
}

/*
NewBasis precomputes a basis. A nil rule selects the default rule of
order twice the element degree; nil elems covers the whole mesh. The
element must live on the mesh's cell type.
*/
func NewBasis(m *mesh.Mesh, e element.Element, rule *quadrature.Rule, elems []int) (b *Basis) {
	if e.RefDom() != m.Ref {
		panic(fmt.Errorf("element %T is defined on %s cells, mesh has %s cells",
			e, e.RefDom().Name, m.Ref.Name))
	}
	if rule == nil {
		rule = quadrature.Default(m.Ref, 2*e.MaxDegree())
	}
	if elems == nil {
		elems = make([]int, len(m.Elements))
		for k := range elems {
			elems[k] = k
		}
	}
	b = &Basis{Mesh: m, Elem: e, Rule: rule, Elems: elems}
	b.Dofs = NewDofs(m, e)
	b.N = b.Dofs.Total()

	var (
		mp = mapping.New(m, elems)
		jc = mp.Jacobians(rule)
		nq = rule.Len()
		K  = len(elems)
	)
	b.X = mp.F(rule)
	b.DX = utils.NewMatrix(nq, K)
	b.H = utils.NewMatrix(nq, K)
	var (
		dim    = m.Ref.Dim
		invDim = 1. / float64(dim)
	)
	for q := 0; q < nq; q++ {
		for kk := 0; kk < K; kk++ {
			adet := math.Abs(jc.Det.At(q, kk))
			b.DX.Set(q, kk, rule.Weights[q]*adet)
			b.H.Set(q, kk, math.Pow(adet, invDim))
		}
	}

	b.ElementDofs = make([][]int, e.NumDofs())
	for i := range b.ElementDofs {
		b.ElementDofs[i] = make([]int, K)
	}
	for kk, k := range elems {
		for i, dof := range b.Dofs.ElementDofs(k) {
			b.ElementDofs[i][kk] = dof
		}
	}

	b.buildFields(jc)

	for d := range b.X {
		b.X[d].SetReadOnly("Basis.X")
	}
	b.DX.SetReadOnly("Basis.DX")
	b.H.SetReadOnly("Basis.H")
	for i := range b.fields {
		for c := range b.fields[i].Value {
			b.fields[i].Value[c].SetReadOnly("Basis.Value")
		}
		for c := range b.fields[i].Grad {
			b.fields[i].Grad[c].SetReadOnly("Basis.Grad")
		}
	}
	return
}

// NumBasis is the local basis function count.
func (b *Basis) NumBasis() int { return b.Elem.NumDofs() }

// Field returns the precomputed push-forward of local basis function i.
func (b *Basis) Field(i int) *DiscreteField {
	if i < 0 || i >= len(b.fields) {
		panic(fmt.Errorf("basis function %d out of range, have %d", i, len(b.fields)))
	}
	return &b.fields[i]
}

func newFields(n, ncomp, nder, nq, K int) (fields []DiscreteField) {
	fields = make([]DiscreteField, n)
	for i := range fields {
		fields[i].Value = make([]utils.Matrix, ncomp)
		fields[i].Grad = make([]utils.Matrix, nder)
		for c := range fields[i].Value {
			fields[i].Value[c] = utils.NewMatrix(nq, K)
		}
		for c := range fields[i].Grad {
			fields[i].Grad[c] = utils.NewMatrix(nq, K)
		}
	}
	return
}

func (b *Basis) buildFields(jc *mapping.Jacobians) {
	var (
		nb  = b.Elem.NumDofs()
		nq  = b.Rule.Len()
		K   = len(b.Elems)
		dim = b.Mesh.Ref.Dim
	)
	// reference evaluations are element-independent
	refVal := make([][][]float64, nb)
	refDer := make([][][]float64, nb)
	for i := 0; i < nb; i++ {
		refVal[i] = make([][]float64, nq)
		refDer[i] = make([][]float64, nq)
		for q, xi := range b.Rule.Points {
			refVal[i][q], refDer[i][q] = b.Elem.Eval(xi, i)
		}
	}

	switch b.Elem.Family() {
	case element.H1:
		b.fields = newFields(nb, 1, dim, nq, K)
		for i := 0; i < nb; i++ {
			for q := 0; q < nq; q++ {
				for kk := 0; kk < K; kk++ {
					b.fields[i].Value[0].Set(q, kk, refVal[i][q][0])
					for d := 0; d < dim; d++ {
						var g float64
						for j := 0; j < dim; j++ {
							g += jc.Jinv[j][d].At(q, kk) * refDer[i][q][j]
						}
						b.fields[i].Grad[d].Set(q, kk, g)
					}
				}
			}
		}
	case element.HDiv:
		b.fields = newFields(nb, dim, 1, nq, K)
		for i := 0; i < nb; i++ {
			ti := b.facetTemplate(i)
			for kk, k := range b.Elems {
				sign := b.facetSign(ti, k)
				for q := 0; q < nq; q++ {
					adet := math.Abs(jc.Det.At(q, kk))
					for d := 0; d < dim; d++ {
						var v float64
						for j := 0; j < dim; j++ {
							v += jc.J[d][j].At(q, kk) * refVal[i][q][j]
						}
						b.fields[i].Value[d].Set(q, kk, sign*v/adet)
					}
					b.fields[i].Grad[0].Set(q, kk, sign*refDer[i][q][0]/adet)
				}
			}
		}
	case element.HCurl:
		b.fields = newFields(nb, dim, dim, nq, K)
		for i := 0; i < nb; i++ {
			ti := b.edgeTemplate(i)
			for kk, k := range b.Elems {
				sign := b.edgeSign(ti, k)
				for q := 0; q < nq; q++ {
					det := jc.Det.At(q, kk)
					for d := 0; d < dim; d++ {
						var v, c float64
						for j := 0; j < dim; j++ {
							v += jc.Jinv[j][d].At(q, kk) * refVal[i][q][j]
							c += jc.J[d][j].At(q, kk) * refDer[i][q][j]
						}
						b.fields[i].Value[d].Set(q, kk, sign*v)
						b.fields[i].Grad[d].Set(q, kk, sign*c/det)
					}
				}
			}
		}
	}
}

// facetTemplate maps a facet-block local dof to its facet template.
func (b *Basis) facetTemplate(i int) int {
	var (
		c     = b.Elem.DofCounts()
		start = c.Nodal*b.Mesh.Ref.NumVerts() + c.Edge*len(b.Mesh.Ref.Edges)
	)
	return (i - start) / c.Facet
}

// edgeTemplate maps an edge-block local dof to its edge template.
func (b *Basis) edgeTemplate(i int) int {
	c := b.Elem.DofCounts()
	return (i - c.Nodal*b.Mesh.Ref.NumVerts()) / c.Edge
}

// facetSign orients facet-normal dofs: +1 when element k is the shared
// facet's first owner, so both owners agree on the global flux direction.
func (b *Basis) facetSign(ti, k int) float64 {
	f := b.Mesh.T2F()[ti][k]
	if b.Mesh.F2T()[0][f] == k {
		return 1.
	}
	return -1.
}

// edgeSign orients edge-tangential dofs along ascending global vertex
// order. Sorted simplex connectivity makes this +1 throughout, but the
// general rule is kept for unsorted cell types.
func (b *Basis) edgeSign(ti, k int) float64 {
	var (
		tmpl = b.Mesh.Ref.Edges[ti]
		elem = b.Mesh.Elements[k]
	)
	if elem[tmpl[0]] < elem[tmpl[1]] {
		return 1.
	}
	return -1.
}

/*
Interpolate evaluates a global dof vector as a field on the quadrature
grid, for feeding back into kernels as an auxiliary field: value and
family derivative are dof-weighted sums of the precomputed basis fields.
*/
func (b *Basis) Interpolate(w []float64) (f *DiscreteField) {
	if len(w) != b.N {
		panic(fmt.Errorf("dof vector has %d entries, basis has %d dofs", len(w), b.N))
	}
	var (
		nq    = b.Rule.Len()
		K     = len(b.Elems)
		ncomp = len(b.fields[0].Value)
		nder  = len(b.fields[0].Grad)
	)
	f = &DiscreteField{
		Value: make([]utils.Matrix, ncomp),
		Grad:  make([]utils.Matrix, nder),
	}
	for c := range f.Value {
		f.Value[c] = utils.NewMatrix(nq, K)
	}
	for c := range f.Grad {
		f.Grad[c] = utils.NewMatrix(nq, K)
	}
	for i := range b.fields {
		dofs := b.ElementDofs[i]
		for c := range f.Value {
			var (
				dst = f.Value[c].DataP
				src = b.fields[i].Value[c].DataP
			)
			for n := range dst {
				dst[n] += w[dofs[n%K]] * src[n]
			}
		}
		for c := range f.Grad {
			var (
				dst = f.Grad[c].DataP
				src = b.fields[i].Grad[c].DataP
			)
			for n := range dst {
				dst[n] += w[dofs[n%K]] * src[n]
			}
		}
	}
	return
}

// fieldSet bundles the shared kernel arguments for one assembly pass.
func (b *Basis) fieldSet(extra map[string]*DiscreteField) *FieldSet {
	return &FieldSet{X: b.X, H: b.H, Fields: extra}
}
