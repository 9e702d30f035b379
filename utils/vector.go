package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V        *mat.VecDense
	DataP    []float64
	readOnly bool
	name     string
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var (
		v *mat.VecDense
	)
	if len(dataO) != 0 {
		if len(dataO[0]) < n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, data length = %v",
				n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{
		V:     v,
		DataP: v.RawVector().Data,
	}
	return
}

func NewVectorConstant(n int, val float64) (R Vector) {
	R = NewVector(n, ConstArray(n, val))
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.DataP[i] }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v *Vector) SetReadOnly(name ...string) Vector {
	if len(name) != 0 {
		v.name = name[0]
	}
	v.readOnly = true
	return *v
}

func (v Vector) Copy() (R Vector) {
	R = NewVector(v.Len())
	copy(R.DataP, v.DataP)
	return
}

func (v Vector) Set(i int, val float64) Vector {
	v.checkWritable()
	v.DataP[i] = val
	return v
}

func (v Vector) Scale(a float64) Vector {
	v.checkWritable()
	for i := range v.DataP {
		v.DataP[i] *= a
	}
	return v
}

func (v Vector) AddScalar(a float64) Vector {
	v.checkWritable()
	for i := range v.DataP {
		v.DataP[i] += a
	}
	return v
}

func (v Vector) Add(a Vector) Vector {
	v.checkWritable()
	for i, val := range a.DataP {
		v.DataP[i] += val
	}
	return v
}

func (v Vector) Subtract(a Vector) Vector {
	v.checkWritable()
	for i, val := range a.DataP {
		v.DataP[i] -= val
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	v.checkWritable()
	for i, val := range v.DataP {
		v.DataP[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector {
	return v.Apply(func(x float64) float64 { return POW(x, p) })
}

func (v Vector) Dot(a Vector) (d float64) {
	for i, val := range v.DataP {
		d += val * a.DataP[i]
	}
	return
}

func (v Vector) Sum() (s float64) {
	for _, val := range v.DataP {
		s += val
	}
	return
}

func (v Vector) Min() (min float64) {
	min = v.DataP[0]
	for _, val := range v.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	max = v.DataP[0]
	for _, val := range v.DataP {
		if val > max {
			max = val
		}
	}
	return
}

// Subset gathers the elements of v at the indices in I.
func (v Vector) Subset(I Index) (R Vector) {
	R = NewVector(len(I))
	for i, ind := range I {
		R.DataP[i] = v.DataP[ind]
	}
	return
}

func (v Vector) Concat(a Vector) (R Vector) {
	var (
		n = v.Len() + a.Len()
	)
	R = NewVector(n)
	copy(R.DataP, v.DataP)
	copy(R.DataP[v.Len():], a.DataP)
	return
}

// Outer forms the outer product of v with a.
func (v Vector) Outer(a Vector) (R Matrix) {
	var (
		nr, nc = v.Len(), a.Len()
	)
	R = NewMatrix(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.DataP[i*nc+j] = v.DataP[i] * a.DataP[j]
		}
	}
	return
}

// ToMatrix lays v out as a single-column matrix.
func (v Vector) ToMatrix() (R Matrix) {
	R = NewMatrix(v.Len(), 1, v.DataP)
	return
}

func (v Vector) Print(msgI ...interface{}) (o string) {
	var (
		name = v.name
	)
	if len(msgI) != 0 {
		name = fmt.Sprintf("%v", msgI[0])
	}
	o = fmt.Sprintf("%s = \n%8.5f\n", name, mat.Formatted(v.V, mat.Squeeze()))
	return
}

func (v Vector) checkWritable() {
	if v.readOnly {
		err := fmt.Errorf("attempt to write to a read only vector named: \"%v\"", v.name)
		panic(err)
	}
}
