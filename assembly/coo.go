package assembly

import (
	"fmt"

	"github.com/notargets/gofea/utils"
)

/*
COOMatrix is the assembler's output: unordered (row, col, value)
triplets with duplicates kept as produced. Duplicate entries are summed
only on conversion, which keeps assembly itself allocation-flat and
makes the triplet stream reproducible across thread counts.
*/
type COOMatrix struct {
	Rows, Cols []int
	Data       []float64
	Shape      [2]int
}

func (c COOMatrix) NNZ() int { return len(c.Data) }

// ToCSR sums duplicates and returns compressed sparse row storage.
func (c COOMatrix) ToCSR() utils.CSR {
	dok := utils.NewDOK(c.Shape[0], c.Shape[1])
	for n, v := range c.Data {
		dok.Accumulate(c.Rows[n], c.Cols[n], v)
	}
	return dok.ToCSR()
}

// ToDense sums duplicates into a dense matrix, for tests and small systems.
func (c COOMatrix) ToDense() (M utils.Matrix) {
	M = utils.NewMatrix(c.Shape[0], c.Shape[1])
	for n, v := range c.Data {
		i, j := c.Rows[n], c.Cols[n]
		M.Set(i, j, M.At(i, j)+v)
	}
	return
}

func (c COOMatrix) String() string {
	return fmt.Sprintf("COOMatrix{%dx%d, %d entries}", c.Shape[0], c.Shape[1], len(c.Data))
}

// COOVector is the linear-form analogue of COOMatrix.
type COOVector struct {
	Rows []int
	Data []float64
	N    int
}

// ToVector sums duplicates into a dense vector.
func (c COOVector) ToVector() (V utils.Vector) {
	V = utils.NewVector(c.N)
	for n, v := range c.Data {
		V.DataP[c.Rows[n]] += v
	}
	return
}
