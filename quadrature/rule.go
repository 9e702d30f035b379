package quadrature

import (
	"fmt"

	"github.com/notargets/gofea/element"
	"gonum.org/v1/gonum/integrate/quad"
)

/*
Rule is a fixed quadrature rule on one reference cell: sample points in
reference coordinates and positive weights summing to the cell measure.
Rules integrate polynomials exactly up to total degree Order.

Simplex rules are collapsed (Duffy) tensor products: Gauss-Legendre in
the first direction crossed with Gauss-Jacobi rules whose weight
functions absorb the collapse factors, so no points land on the
singular vertex and the point count stays n^dim for exactness 2n-1.
*/
type Rule struct {
	Points  [][]float64
	Weights []float64
	Order   int
}

func (q *Rule) Len() int { return len(q.Weights) }

func nPoints(order int) int {
	if order < 0 {
		panic(fmt.Errorf("quadrature order must be non-negative, have %d", order))
	}
	return order/2 + 1
}

// legendre returns the n point Gauss-Legendre nodes and weights on [min,max].
func legendre(n int, min, max float64) (x, w []float64) {
	x = make([]float64, n)
	w = make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, min, max)
	return
}

// Line builds a Gauss-Legendre rule on the unit interval.
func Line(order int) (q *Rule) {
	var (
		n    = nPoints(order)
		x, w = legendre(n, 0, 1)
	)
	q = &Rule{Order: order}
	for i := 0; i < n; i++ {
		q.Points = append(q.Points, []float64{x[i]})
		q.Weights = append(q.Weights, w[i])
	}
	return
}

// Tri builds a collapsed rule on the unit triangle:
//
//	x = (1+a)/2 * (1-b)/2, y = (1+b)/2, w = wa * wb / 8
//
// with a Gauss-Legendre and b Gauss-Jacobi(1,0).
func Tri(order int) (q *Rule) {
	var (
		n      = nPoints(order)
		xa, wa = legendre(n, -1, 1)
		XB, WB = JacobiGQ(1, 0, n-1)
	)
	q = &Rule{Order: order}
	for j := 0; j < n; j++ {
		b, wb := XB.DataP[j], WB.DataP[j]
		for i := 0; i < n; i++ {
			a := xa[i]
			q.Points = append(q.Points, []float64{
				(1. + a) / 2. * (1. - b) / 2.,
				(1. + b) / 2.,
			})
			q.Weights = append(q.Weights, wa[i]*wb/8.)
		}
	}
	return
}

// Tet builds a collapsed rule on the unit tetrahedron:
//
//	x = (1+a)/2 * (1-b)/2 * (1-c)/2, y = (1+b)/2 * (1-c)/2, z = (1+c)/2
//	w = wa * wb * wc / 64
//
// with a Gauss-Legendre, b Gauss-Jacobi(1,0) and c Gauss-Jacobi(2,0).
func Tet(order int) (q *Rule) {
	var (
		n      = nPoints(order)
		xa, wa = legendre(n, -1, 1)
		XB, WB = JacobiGQ(1, 0, n-1)
		XC, WC = JacobiGQ(2, 0, n-1)
	)
	q = &Rule{Order: order}
	for k := 0; k < n; k++ {
		c, wc := XC.DataP[k], WC.DataP[k]
		for j := 0; j < n; j++ {
			b, wb := XB.DataP[j], WB.DataP[j]
			for i := 0; i < n; i++ {
				a := xa[i]
				q.Points = append(q.Points, []float64{
					(1. + a) / 2. * (1. - b) / 2. * (1. - c) / 2.,
					(1. + b) / 2. * (1. - c) / 2.,
					(1. + c) / 2.,
				})
				q.Weights = append(q.Weights, wa[i]*wb*wc/64.)
			}
		}
	}
	return
}

// Quad builds a tensor product Gauss-Legendre rule on the unit square.
func Quad(order int) (q *Rule) {
	var (
		n    = nPoints(order)
		x, w = legendre(n, 0, 1)
	)
	q = &Rule{Order: order}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			q.Points = append(q.Points, []float64{x[i], x[j]})
			q.Weights = append(q.Weights, w[i]*w[j])
		}
	}
	return
}

// Hex builds a tensor product Gauss-Legendre rule on the unit cube.
func Hex(order int) (q *Rule) {
	var (
		n    = nPoints(order)
		x, w = legendre(n, 0, 1)
	)
	q = &Rule{Order: order}
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				q.Points = append(q.Points, []float64{x[i], x[j], x[k]})
				q.Weights = append(q.Weights, w[i]*w[j]*w[k])
			}
		}
	}
	return
}

// Default builds the rule matching a reference cell at the given order.
func Default(r *element.RefDom, order int) (q *Rule) {
	switch r {
	case element.RefLine:
		q = Line(order)
	case element.RefTri:
		q = Tri(order)
	case element.RefQuad:
		q = Quad(order)
	case element.RefTet:
		q = Tet(order)
	case element.RefHex:
		q = Hex(order)
	default:
		panic(fmt.Errorf("no quadrature rule for reference cell %v", r))
	}
	return
}
