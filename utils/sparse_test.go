package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparse(t *testing.T) {
	// Accumulate sums repeated coordinates
	{
		D := NewDOK(3, 3)
		D.Accumulate(0, 0, 1.5)
		D.Accumulate(0, 0, 2.5)
		D.Accumulate(2, 1, -1)
		assert.Equal(t, 4., D.At(0, 0))
		assert.Equal(t, -1., D.At(2, 1))
		C := D.ToCSR()
		assert.Equal(t, 2, C.NNZ())
		assert.Equal(t, 4., C.At(0, 0))
	}
	// CSR to dense and matrix-vector product
	{
		D := NewDOK(2, 2)
		D.Set(0, 0, 2)
		D.Set(0, 1, 1)
		D.Set(1, 1, 3)
		C := D.ToCSR()
		A := C.ToDense()
		assert.Equal(t, []float64{2, 1, 0, 3}, A.DataP)
		V := NewVector(2, []float64{1, 2})
		R := C.MulVec(V)
		assert.Equal(t, []float64{4, 6}, R.DataP)
	}
	// Read only protection
	{
		D := NewDOK(2, 2)
		D.SetReadOnly("D")
		assert.Panics(t, func() { D.Set(0, 0, 1) })
	}
}
