package element

// TriP1 is the three node linear triangle.
type TriP1 struct{}

func (TriP1) RefDom() *RefDom      { return RefTri }
func (TriP1) Family() Family       { return H1 }
func (TriP1) MaxDegree() int       { return 1 }
func (TriP1) DofCounts() DofCounts { return DofCounts{Nodal: 1} }
func (TriP1) DofNames() []string   { return []string{"u"} }
func (TriP1) NumDofs() int         { return 3 }

func (TriP1) DofLocs() [][]float64 {
	return [][]float64{
		{0., 0.},
		{1., 0.},
		{0., 1.},
	}
}

func (e TriP1) Eval(x []float64, i int) (value, deriv []float64) {
	switch i {
	case 0:
		value = []float64{1. - x[0] - x[1]}
		deriv = []float64{-1., -1.}
	case 1:
		value = []float64{x[0]}
		deriv = []float64{1., 0.}
	case 2:
		value = []float64{x[1]}
		deriv = []float64{0., 1.}
	default:
		panic(badIndex("TriP1", i))
	}
	return
}

// TriP2 is the quadratic triangle: one DOF per vertex plus one per facet
// midpoint.
type TriP2 struct{}

func (TriP2) RefDom() *RefDom      { return RefTri }
func (TriP2) Family() Family       { return H1 }
func (TriP2) MaxDegree() int       { return 2 }
func (TriP2) DofCounts() DofCounts { return DofCounts{Nodal: 1, Facet: 1} }
func (TriP2) DofNames() []string   { return []string{"u", "u"} }
func (TriP2) NumDofs() int         { return 6 }

func (TriP2) DofLocs() [][]float64 {
	return [][]float64{
		{0., 0.},
		{1., 0.},
		{0., 1.},
		{0.5, 0.},
		{0.5, 0.5},
		{0., 0.5},
	}
}

func (e TriP2) Eval(x []float64, i int) (value, deriv []float64) {
	// Barycentric coordinates and their constant gradients
	var (
		L  = [3]float64{1. - x[0] - x[1], x[0], x[1]}
		dL = [3][2]float64{{-1., -1.}, {1., 0.}, {0., 1.}}
	)
	vertexFn := func(n int) ([]float64, []float64) {
		v := L[n] * (2.*L[n] - 1.)
		g := 4.*L[n] - 1.
		return []float64{v}, []float64{g * dL[n][0], g * dL[n][1]}
	}
	facetFn := func(a, b int) ([]float64, []float64) {
		v := 4. * L[a] * L[b]
		return []float64{v}, []float64{
			4. * (L[a]*dL[b][0] + L[b]*dL[a][0]),
			4. * (L[a]*dL[b][1] + L[b]*dL[a][1]),
		}
	}
	switch i {
	case 0, 1, 2:
		value, deriv = vertexFn(i)
	case 3, 4, 5:
		f := RefTri.Facets[i-3]
		value, deriv = facetFn(f[0], f[1])
	default:
		panic(badIndex("TriP2", i))
	}
	return
}

// TriCR is the nonconforming Crouzeix-Raviart triangle with one DOF per
// facet midpoint.
type TriCR struct{}

func (TriCR) RefDom() *RefDom      { return RefTri }
func (TriCR) Family() Family       { return H1 }
func (TriCR) MaxDegree() int       { return 1 }
func (TriCR) DofCounts() DofCounts { return DofCounts{Facet: 1} }
func (TriCR) DofNames() []string   { return []string{"u"} }
func (TriCR) NumDofs() int         { return 3 }

func (TriCR) DofLocs() [][]float64 {
	return [][]float64{
		{0.5, 0.},
		{0.5, 0.5},
		{0., 0.5},
	}
}

func (e TriCR) Eval(x []float64, i int) (value, deriv []float64) {
	switch i {
	case 0:
		value = []float64{1. - 2.*x[1]}
		deriv = []float64{0., -2.}
	case 1:
		value = []float64{2.*x[0] + 2.*x[1] - 1.}
		deriv = []float64{2., 2.}
	case 2:
		value = []float64{1. - 2.*x[0]}
		deriv = []float64{-2., 0.}
	default:
		panic(badIndex("TriCR", i))
	}
	return
}

// TriRT0 is the lowest order Raviart-Thomas triangle: one normal flux DOF
// per facet. Eval returns the vector field and its divergence; the basis
// evaluator applies the Piola transform and the facet orientation sign.
type TriRT0 struct{}

func (TriRT0) RefDom() *RefDom      { return RefTri }
func (TriRT0) Family() Family       { return HDiv }
func (TriRT0) MaxDegree() int       { return 1 }
func (TriRT0) DofCounts() DofCounts { return DofCounts{Facet: 1} }
func (TriRT0) DofNames() []string   { return []string{"u^n"} }
func (TriRT0) NumDofs() int         { return 3 }

func (TriRT0) DofLocs() [][]float64 {
	return [][]float64{
		{0.5, 0.},
		{0.5, 0.5},
		{0., 0.5},
	}
}

func (e TriRT0) Eval(x []float64, i int) (value, deriv []float64) {
	switch i {
	case 0:
		value = []float64{x[0], x[1] - 1.}
	case 1:
		value = []float64{x[0], x[1]}
	case 2:
		value = []float64{x[0] - 1., x[1]}
	default:
		panic(badIndex("TriRT0", i))
	}
	deriv = []float64{2.}
	return
}
