package element

// Hex1 is the eight node trilinear hexahedron.
type Hex1 struct{}

func (Hex1) RefDom() *RefDom      { return RefHex }
func (Hex1) Family() Family       { return H1 }
func (Hex1) MaxDegree() int       { return 3 }
func (Hex1) DofCounts() DofCounts { return DofCounts{Nodal: 1} }
func (Hex1) DofNames() []string   { return []string{"u"} }
func (Hex1) NumDofs() int         { return 8 }

func (Hex1) DofLocs() [][]float64 {
	return RefHex.Verts
}

func (e Hex1) Eval(x []float64, i int) (value, deriv []float64) {
	if i < 0 || i > 7 {
		panic(badIndex("Hex1", i))
	}
	var (
		v = RefHex.Verts[i]
		f = [3]float64{}
		d = [3]float64{}
	)
	// Per direction: f = x if the vertex coordinate is 1, 1-x otherwise
	for n := 0; n < 3; n++ {
		if v[n] == 1. {
			f[n] = x[n]
			d[n] = 1.
		} else {
			f[n] = 1. - x[n]
			d[n] = -1.
		}
	}
	value = []float64{f[0] * f[1] * f[2]}
	deriv = []float64{
		d[0] * f[1] * f[2],
		f[0] * d[1] * f[2],
		f[0] * f[1] * d[2],
	}
	return
}
