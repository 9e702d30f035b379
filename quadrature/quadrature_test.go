package quadrature

import (
	"math"
	"testing"

	"github.com/notargets/gofea/element"
	"github.com/stretchr/testify/assert"
)

func factorial(n int) (f float64) {
	f = 1.
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return
}

func integrate(q *Rule, f func(x []float64) float64) (sum float64) {
	for i, w := range q.Weights {
		sum += w * f(q.Points[i])
	}
	return
}

func TestJacobiGQ(t *testing.T) {
	{ // Legendre case alpha = beta = 0, two points
		X, W := JacobiGQ(0, 0, 1)
		assert.InDeltaSlice(t, []float64{-1. / math.Sqrt(3.), 1. / math.Sqrt(3.)}, X.DataP, 1.e-12)
		assert.InDeltaSlice(t, []float64{1., 1.}, W.DataP, 1.e-12)
	}
	{ // One point Gauss-Jacobi(1,0): node -1/3, weight integrates (1-x) over [-1,1]
		X, W := JacobiGQ(1, 0, 0)
		assert.InDelta(t, -1./3., X.DataP[0], 1.e-12)
		assert.InDelta(t, 2., W.DataP[0], 1.e-12)
	}
	{ // Weight sums match the moments of (1-x)^alpha over [-1,1]
		sums := func(alpha float64, N int) (s float64) {
			_, W := JacobiGQ(alpha, 0, N)
			return W.Sum()
		}
		for N := 0; N < 6; N++ {
			assert.InDelta(t, 2., sums(0, N), 1.e-12)
			assert.InDelta(t, 2., sums(1, N), 1.e-12)
			assert.InDelta(t, 8./3., sums(2, N), 1.e-12)
		}
	}
	{ // Nodes stay inside the open interval and come out sorted
		X, _ := JacobiGQ(1, 0, 4)
		for i, x := range X.DataP {
			assert.True(t, x > -1. && x < 1.)
			if i > 0 {
				assert.True(t, x > X.DataP[i-1])
			}
		}
	}
}

func TestRules(t *testing.T) {
	{ // Two point Gauss-Legendre on the unit interval
		q := Line(2)
		assert.Equal(t, 2, q.Len())
		h := 1. / (2. * math.Sqrt(3.))
		assert.InDeltaSlice(t, []float64{0.5 - h, 0.5 + h}, []float64{q.Points[0][0], q.Points[1][0]}, 1.e-12)
		assert.InDeltaSlice(t, []float64{0.5, 0.5}, q.Weights, 1.e-12)
	}
	{ // Line rules integrate x^p exactly up to the requested order
		for order := 0; order <= 9; order++ {
			q := Line(order)
			for p := 0; p <= order; p++ {
				got := integrate(q, func(x []float64) float64 { return math.Pow(x[0], float64(p)) })
				assert.InDelta(t, 1./float64(p+1), got, 1.e-12)
			}
		}
	}
	{ // Triangle rules: weights sum to the area, monomials x^p y^q exact
		for order := 0; order <= 6; order++ {
			q := Tri(order)
			var wsum float64
			for _, w := range q.Weights {
				assert.True(t, w > 0.)
				wsum += w
			}
			assert.InDelta(t, 0.5, wsum, 1.e-12)
			for p := 0; p <= order; p++ {
				for qq := 0; qq+p <= order; qq++ {
					exact := factorial(p) * factorial(qq) / factorial(p+qq+2)
					got := integrate(q, func(x []float64) float64 {
						return math.Pow(x[0], float64(p)) * math.Pow(x[1], float64(qq))
					})
					assert.InDelta(t, exact, got, 1.e-12)
				}
			}
		}
	}
	{ // Tetrahedron rules: weights sum to the volume, monomials exact
		for order := 0; order <= 5; order++ {
			q := Tet(order)
			var wsum float64
			for _, w := range q.Weights {
				assert.True(t, w > 0.)
				wsum += w
			}
			assert.InDelta(t, 1./6., wsum, 1.e-12)
			for p := 0; p <= order; p++ {
				for qq := 0; qq+p <= order; qq++ {
					for r := 0; r+qq+p <= order; r++ {
						exact := factorial(p) * factorial(qq) * factorial(r) / factorial(p+qq+r+3)
						got := integrate(q, func(x []float64) float64 {
							return math.Pow(x[0], float64(p)) * math.Pow(x[1], float64(qq)) * math.Pow(x[2], float64(r))
						})
						assert.InDelta(t, exact, got, 1.e-12)
					}
				}
			}
		}
	}
	{ // Tensor product rules on the square and cube
		q := Quad(3)
		assert.Equal(t, 4, q.Len())
		got := integrate(q, func(x []float64) float64 { return x[0] * x[0] * x[1] })
		assert.InDelta(t, 1./6., got, 1.e-12)

		q = Hex(3)
		assert.Equal(t, 8, q.Len())
		got = integrate(q, func(x []float64) float64 { return x[0] * x[1] * x[2] })
		assert.InDelta(t, 1./8., got, 1.e-12)
	}
	{ // Simplex points stay strictly inside the reference cell
		q := Tri(4)
		for _, p := range q.Points {
			assert.True(t, p[0] > 0. && p[1] > 0. && p[0]+p[1] < 1.)
		}
		q = Tet(4)
		for _, p := range q.Points {
			assert.True(t, p[0] > 0. && p[1] > 0. && p[2] > 0. && p[0]+p[1]+p[2] < 1.)
		}
	}
	{ // Default dispatches on the reference cell
		for _, r := range []*element.RefDom{element.RefLine, element.RefTri, element.RefQuad, element.RefTet, element.RefHex} {
			q := Default(r, 2)
			assert.Equal(t, r.Dim, len(q.Points[0]))
			var wsum float64
			for _, w := range q.Weights {
				wsum += w
			}
			assert.InDelta(t, r.Measure, wsum, 1.e-12)
		}
		assert.Panics(t, func() { Line(-1) })
		assert.Panics(t, func() { Default(&element.RefDom{}, 2) })
	}
}
