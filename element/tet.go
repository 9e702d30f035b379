package element

// Barycentric coordinates of the reference tetrahedron and their
// constant gradients, shared by the simplex elements below.
func tetBary(x []float64) (L [4]float64, dL [4][3]float64) {
	L = [4]float64{1. - x[0] - x[1] - x[2], x[0], x[1], x[2]}
	dL = [4][3]float64{
		{-1., -1., -1.},
		{1., 0., 0.},
		{0., 1., 0.},
		{0., 0., 1.},
	}
	return
}

// TetP1 is the four node linear tetrahedron.
type TetP1 struct{}

func (TetP1) RefDom() *RefDom      { return RefTet }
func (TetP1) Family() Family       { return H1 }
func (TetP1) MaxDegree() int       { return 1 }
func (TetP1) DofCounts() DofCounts { return DofCounts{Nodal: 1} }
func (TetP1) DofNames() []string   { return []string{"u"} }
func (TetP1) NumDofs() int         { return 4 }

func (TetP1) DofLocs() [][]float64 {
	return [][]float64{
		{0., 0., 0.},
		{1., 0., 0.},
		{0., 1., 0.},
		{0., 0., 1.},
	}
}

func (e TetP1) Eval(x []float64, i int) (value, deriv []float64) {
	if i < 0 || i > 3 {
		panic(badIndex("TetP1", i))
	}
	L, dL := tetBary(x)
	value = []float64{L[i]}
	deriv = []float64{dL[i][0], dL[i][1], dL[i][2]}
	return
}

// TetP2 is the quadratic tetrahedron: one DOF per vertex plus one per
// edge midpoint.
type TetP2 struct{}

func (TetP2) RefDom() *RefDom      { return RefTet }
func (TetP2) Family() Family       { return H1 }
func (TetP2) MaxDegree() int       { return 2 }
func (TetP2) DofCounts() DofCounts { return DofCounts{Nodal: 1, Edge: 1} }
func (TetP2) DofNames() []string   { return []string{"u", "u"} }
func (TetP2) NumDofs() int         { return 10 }

func (TetP2) DofLocs() [][]float64 {
	return [][]float64{
		{0., 0., 0.},
		{1., 0., 0.},
		{0., 1., 0.},
		{0., 0., 1.},
		{0.5, 0., 0.},
		{0.5, 0.5, 0.},
		{0., 0.5, 0.},
		{0., 0., 0.5},
		{0.5, 0., 0.5},
		{0., 0.5, 0.5},
	}
}

func (e TetP2) Eval(x []float64, i int) (value, deriv []float64) {
	L, dL := tetBary(x)
	switch {
	case i >= 0 && i < 4:
		g := 4.*L[i] - 1.
		value = []float64{L[i] * (2.*L[i] - 1.)}
		deriv = []float64{g * dL[i][0], g * dL[i][1], g * dL[i][2]}
	case i >= 4 && i < 10:
		eg := RefTet.Edges[i-4]
		a, b := eg[0], eg[1]
		value = []float64{4. * L[a] * L[b]}
		deriv = []float64{
			4. * (L[a]*dL[b][0] + L[b]*dL[a][0]),
			4. * (L[a]*dL[b][1] + L[b]*dL[a][1]),
			4. * (L[a]*dL[b][2] + L[b]*dL[a][2]),
		}
	default:
		panic(badIndex("TetP2", i))
	}
	return
}

// TetCR is the nonconforming Crouzeix-Raviart tetrahedron with one DOF
// per facet centroid.
type TetCR struct{}

func (TetCR) RefDom() *RefDom      { return RefTet }
func (TetCR) Family() Family       { return H1 }
func (TetCR) MaxDegree() int       { return 1 }
func (TetCR) DofCounts() DofCounts { return DofCounts{Facet: 1} }
func (TetCR) DofNames() []string   { return []string{"u"} }
func (TetCR) NumDofs() int         { return 4 }

func (TetCR) DofLocs() [][]float64 {
	third := 1. / 3.
	return [][]float64{
		{third, third, 0.},
		{third, 0., third},
		{0., third, third},
		{third, third, third},
	}
}

// Facet i is opposite vertex opp[i]; the basis function is 1 - 3*L_opp.
var tetCROpposite = [4]int{3, 2, 1, 0}

func (e TetCR) Eval(x []float64, i int) (value, deriv []float64) {
	if i < 0 || i > 3 {
		panic(badIndex("TetCR", i))
	}
	L, dL := tetBary(x)
	n := tetCROpposite[i]
	value = []float64{1. - 3.*L[n]}
	deriv = []float64{-3. * dL[n][0], -3. * dL[n][1], -3. * dL[n][2]}
	return
}

// TetRT0 is the lowest order Raviart-Thomas tetrahedron: one normal flux
// DOF per facet.
type TetRT0 struct{}

func (TetRT0) RefDom() *RefDom      { return RefTet }
func (TetRT0) Family() Family       { return HDiv }
func (TetRT0) MaxDegree() int       { return 1 }
func (TetRT0) DofCounts() DofCounts { return DofCounts{Facet: 1} }
func (TetRT0) DofNames() []string   { return []string{"u^n"} }
func (TetRT0) NumDofs() int         { return 4 }

func (TetRT0) DofLocs() [][]float64 {
	return [][]float64{
		{0.5, 0.5, 0.},
		{0.5, 0., 0.5},
		{0., 0.5, 0.5},
		{0.5, 0.5, 0.5},
	}
}

func (e TetRT0) Eval(x []float64, i int) (value, deriv []float64) {
	switch i {
	case 0:
		value = []float64{x[0], x[1], x[2] - 1.}
	case 1:
		value = []float64{x[0], x[1] - 1., x[2]}
	case 2:
		value = []float64{x[0] - 1., x[1], x[2]}
	case 3:
		value = []float64{x[0], x[1], x[2]}
	default:
		panic(badIndex("TetRT0", i))
	}
	deriv = []float64{3.}
	return
}

// TetN0 is the lowest order Nedelec (Whitney edge) tetrahedron: one
// tangential DOF per edge. For edge {a,b} the basis function is
// La*grad(Lb) - Lb*grad(La) with curl 2*grad(La) x grad(Lb).
type TetN0 struct{}

func (TetN0) RefDom() *RefDom      { return RefTet }
func (TetN0) Family() Family       { return HCurl }
func (TetN0) MaxDegree() int       { return 1 }
func (TetN0) DofCounts() DofCounts { return DofCounts{Edge: 1} }
func (TetN0) DofNames() []string   { return []string{"u^t"} }
func (TetN0) NumDofs() int         { return 6 }

func (TetN0) DofLocs() [][]float64 {
	return [][]float64{
		{0.5, 0., 0.},
		{0.5, 0.5, 0.},
		{0., 0.5, 0.},
		{0., 0., 0.5},
		{0.5, 0., 0.5},
		{0., 0.5, 0.5},
	}
}

func (e TetN0) Eval(x []float64, i int) (value, deriv []float64) {
	if i < 0 || i > 5 {
		panic(badIndex("TetN0", i))
	}
	L, dL := tetBary(x)
	eg := RefTet.Edges[i]
	a, b := eg[0], eg[1]
	value = []float64{
		L[a]*dL[b][0] - L[b]*dL[a][0],
		L[a]*dL[b][1] - L[b]*dL[a][1],
		L[a]*dL[b][2] - L[b]*dL[a][2],
	}
	deriv = []float64{
		2. * (dL[a][1]*dL[b][2] - dL[a][2]*dL[b][1]),
		2. * (dL[a][2]*dL[b][0] - dL[a][0]*dL[b][2]),
		2. * (dL[a][0]*dL[b][1] - dL[a][1]*dL[b][0]),
	}
	return
}
