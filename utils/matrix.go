package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M        *mat.Dense
	DataP    []float64 // raw row-major backing store of M
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var (
		m *mat.Dense
	)
	if len(dataO) != 0 {
		if len(dataO[0]) < nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, data length = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, nil)
	}
	R = Matrix{
		M:     m,
		DataP: m.RawMatrix().Data,
	}
	return
}

func NewDiagMatrix(nr int, d []float64) (R Matrix) {
	R = NewMatrix(nr, nr)
	for i := 0; i < nr; i++ {
		R.Set(i, i, d[i])
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int) { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 {
	m.checkBounds(i, j)
	return m.DataP[i*m.NCols()+j]
}
func (m Matrix) T() mat.Matrix { return m.M.T() }

func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) NRows() int { r, _ := m.M.Dims(); return r }
func (m Matrix) NCols() int { _, c := m.M.Dims(); return c }

func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) IsEmpty() bool { return m.M == nil }

func (m Matrix) Copy() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	copy(R.DataP, m.DataP)
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix {
	m.checkWritable()
	m.checkBounds(i, j)
	m.DataP[i*m.NCols()+j] = val
	return m
}

// Accumulate adds val into element (i,j) in place.
func (m Matrix) Accumulate(i, j int, val float64) Matrix {
	m.checkWritable()
	m.checkBounds(i, j)
	m.DataP[i*m.NCols()+j] += val
	return m
}

func (m Matrix) Transpose() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			R.DataP[j*nr+i] = m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) {
	var (
		nrM, _ = m.Dims()
		_, ncA = A.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

// Add adds A to m in place and returns m for chaining.
func (m Matrix) Add(A Matrix) Matrix {
	m.checkWritable()
	for i, val := range A.DataP {
		m.DataP[i] += val
	}
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix {
	m.checkWritable()
	for i, val := range A.DataP {
		m.DataP[i] -= val
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix {
	m.checkWritable()
	for i := range m.DataP {
		m.DataP[i] *= a
	}
	return m
}

func (m Matrix) AddScalar(a float64) Matrix {
	m.checkWritable()
	for i := range m.DataP {
		m.DataP[i] += a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix {
	m.checkWritable()
	for i, val := range m.DataP {
		m.DataP[i] = f(val)
	}
	return m
}

func (m Matrix) Apply2(A Matrix, f func(x, y float64) float64) Matrix {
	m.checkWritable()
	for i, val := range m.DataP {
		m.DataP[i] = f(val, A.DataP[i])
	}
	return m
}

// ElMul multiplies m by A elementwise in place.
func (m Matrix) ElMul(A Matrix) Matrix {
	return m.Apply2(A, func(x, y float64) float64 { return x * y })
}

func (m Matrix) ElDiv(A Matrix) Matrix {
	return m.Apply2(A, func(x, y float64) float64 { return x / y })
}

func (m Matrix) POW(p int) Matrix {
	return m.Apply(func(x float64) float64 { return POW(x, p) })
}

func (m Matrix) AssignScalar(val float64) Matrix {
	m.checkWritable()
	for i := range m.DataP {
		m.DataP[i] = val
	}
	return m
}

func (m Matrix) Row(i int) (R Vector) {
	var (
		_, nc = m.Dims()
	)
	R = NewVector(nc)
	copy(R.DataP, m.DataP[i*nc:(i+1)*nc])
	return
}

func (m Matrix) Col(j int) (R Vector) {
	var (
		nr, nc = m.Dims()
	)
	R = NewVector(nr)
	for i := 0; i < nr; i++ {
		R.DataP[i] = m.DataP[i*nc+j]
	}
	return
}

func (m Matrix) SetCol(j int, data []float64) Matrix {
	m.checkWritable()
	var (
		nr, nc = m.Dims()
	)
	for i := 0; i < nr; i++ {
		m.DataP[i*nc+j] = data[i]
	}
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix {
	m.checkWritable()
	var (
		_, nc = m.Dims()
	)
	copy(m.DataP[i*nc:(i+1)*nc], data)
	return m
}

// SliceRows gathers the rows of m listed in I into a new matrix.
func (m Matrix) SliceRows(I Index) (R Matrix) {
	var (
		nr    = len(I)
		_, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	for i, ind := range I {
		if ind < 0 || ind > m.NRows()-1 {
			err := fmt.Errorf("unable to subset rows from matrix, index out of bounds: ind = %v", ind)
			panic(err)
		}
		copy(R.DataP[i*nc:(i+1)*nc], m.DataP[ind*nc:(ind+1)*nc])
	}
	return
}

// SliceCols gathers the columns of m listed in I into a new matrix.
func (m Matrix) SliceCols(I Index) (R Matrix) {
	var (
		nr, nc = m.Dims()
		ncR    = len(I)
	)
	R = NewMatrix(nr, ncR)
	for j, ind := range I {
		if ind < 0 || ind > nc-1 {
			err := fmt.Errorf("unable to subset cols from matrix, index out of bounds: ind = %v", ind)
			panic(err)
		}
		for i := 0; i < nr; i++ {
			R.DataP[i*ncR+j] = m.DataP[i*nc+ind]
		}
	}
	return
}

// SumCols sums each column over the rows, yielding one value per column.
func (m Matrix) SumCols() (R Vector) {
	var (
		nr, nc = m.Dims()
	)
	R = NewVector(nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.DataP[j] += m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) SumRows() (R Vector) {
	var (
		nr, nc = m.Dims()
	)
	R = NewVector(nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.DataP[i] += m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) Min() (min float64) {
	min = m.DataP[0]
	for _, val := range m.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	max = m.DataP[0]
	for _, val := range m.DataP {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("matrix is not square: nr, nc = %v, %v", nr, nc)
		return
	}
	R = m.Copy()
	iPiv := make([]int, nr)
	WORK := make([]float64, nr*nr)
	if ok := lapack64.Getrf(R.M.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
		return
	}
	if ok := lapack64.Getri(R.M.RawMatrix(), iPiv, WORK, nr*nr); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
	}
	return
}

func (m Matrix) InverseWithCheck() (R Matrix) {
	var (
		err error
	)
	if R, err = m.Inverse(); err != nil {
		panic(err)
	}
	return
}

func (m Matrix) Print(msgI ...interface{}) (o string) {
	var (
		name = m.name
	)
	if len(msgI) != 0 {
		name = fmt.Sprintf("%v", msgI[0])
	}
	formatString := "%s = \n%8.5f\n"
	o = fmt.Sprintf(formatString, name, mat.Formatted(m.M, mat.Squeeze()))
	return
}

// NewSymTriDiagonal builds a dense symmetric matrix from a main diagonal
// and first super diagonal, suitable for mat.EigenSym factorization.
func NewSymTriDiagonal(d0, d1 []float64) (J *mat.SymDense) {
	var (
		n = len(d0)
	)
	J = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		J.SetSym(i, i, d0[i])
		if i < n-1 {
			J.SetSym(i, i+1, d1[i])
		}
	}
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func (m Matrix) checkBounds(i, j int) {
	var (
		nr, nc = m.Dims()
	)
	if i < 0 || i > nr-1 || j < 0 || j > nc-1 {
		err := fmt.Errorf("index out of bounds: i, j = %v, %v, nr, nc = %v, %v", i, j, nr, nc)
		panic(err)
	}
}
