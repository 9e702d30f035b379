package element

// Quad1 is the four node bilinear quadrilateral.
type Quad1 struct{}

func (Quad1) RefDom() *RefDom      { return RefQuad }
func (Quad1) Family() Family       { return H1 }
func (Quad1) MaxDegree() int       { return 2 }
func (Quad1) DofCounts() DofCounts { return DofCounts{Nodal: 1} }
func (Quad1) DofNames() []string   { return []string{"u"} }
func (Quad1) NumDofs() int         { return 4 }

func (Quad1) DofLocs() [][]float64 {
	return [][]float64{
		{0., 0.},
		{1., 0.},
		{1., 1.},
		{0., 1.},
	}
}

func (e Quad1) Eval(x []float64, i int) (value, deriv []float64) {
	var (
		xi, eta = x[0], x[1]
	)
	switch i {
	case 0:
		value = []float64{(1. - xi) * (1. - eta)}
		deriv = []float64{eta - 1., xi - 1.}
	case 1:
		value = []float64{xi * (1. - eta)}
		deriv = []float64{1. - eta, -xi}
	case 2:
		value = []float64{xi * eta}
		deriv = []float64{eta, xi}
	case 3:
		value = []float64{(1. - xi) * eta}
		deriv = []float64{-eta, 1. - xi}
	default:
		panic(badIndex("Quad1", i))
	}
	return
}
