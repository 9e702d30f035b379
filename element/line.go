package element

// LineP1 is the two node linear element on the unit interval.
type LineP1 struct{}

func (LineP1) RefDom() *RefDom      { return RefLine }
func (LineP1) Family() Family       { return H1 }
func (LineP1) MaxDegree() int       { return 1 }
func (LineP1) DofCounts() DofCounts { return DofCounts{Nodal: 1} }
func (LineP1) DofNames() []string   { return []string{"u"} }
func (LineP1) NumDofs() int         { return 2 }

func (LineP1) DofLocs() [][]float64 {
	return [][]float64{
		{0.},
		{1.},
	}
}

func (e LineP1) Eval(x []float64, i int) (value, deriv []float64) {
	switch i {
	case 0:
		value = []float64{1. - x[0]}
		deriv = []float64{-1.}
	case 1:
		value = []float64{x[0]}
		deriv = []float64{1.}
	default:
		panic(badIndex("LineP1", i))
	}
	return
}
