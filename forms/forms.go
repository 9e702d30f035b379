/*
Package forms ships the stock weak-form kernels: the mass and stiffness
operators and the load functional. They are plain assembly kernels, the
same contract user-defined forms follow, summed over field components so
the one mass kernel serves scalar, HDiv and HCurl bases alike.
*/
package forms

import (
	"github.com/notargets/gofea/assembly"
	"github.com/notargets/gofea/utils"
)

// Mass is the L2 product kernel u.v.
func Mass() assembly.Kernel {
	return func(u, v *assembly.DiscreteField, w *assembly.FieldSet) (out utils.Matrix) {
		out = u.Value[0].Copy().ElMul(v.Value[0])
		for c := 1; c < len(u.Value); c++ {
			out.Add(u.Value[c].Copy().ElMul(v.Value[c]))
		}
		return
	}
}

// Laplace is the derivative product kernel: grad u . grad v for H1
// bases, div u div v for HDiv, curl u . curl v for HCurl.
func Laplace() assembly.Kernel {
	return func(u, v *assembly.DiscreteField, w *assembly.FieldSet) (out utils.Matrix) {
		out = u.Grad[0].Copy().ElMul(v.Grad[0])
		for c := 1; c < len(u.Grad); c++ {
			out.Add(u.Grad[c].Copy().ElMul(v.Grad[c]))
		}
		return
	}
}

// Load is the right-hand-side functional f v for a pointwise source f.
func Load(f func(x []float64) float64) assembly.LinearKernel {
	return func(v *assembly.DiscreteField, w *assembly.FieldSet) (out utils.Matrix) {
		var (
			nr, nc = v.Value[0].Dims()
			x      = make([]float64, len(w.X))
		)
		out = v.Value[0].Copy()
		for q := 0; q < nr; q++ {
			for k := 0; k < nc; k++ {
				for d := range x {
					x[d] = w.X[d].At(q, k)
				}
				out.Set(q, k, out.At(q, k)*f(x))
			}
		}
		return
	}
}

// UnitLoad is Load with a unit source, the plain test functional.
func UnitLoad() assembly.LinearKernel {
	return func(v *assembly.DiscreteField, w *assembly.FieldSet) utils.Matrix {
		return v.Value[0].Copy()
	}
}
