package element

import "fmt"

// Family selects the push-forward rule used when basis functions are
// mapped from the reference cell to a physical element.
type Family uint8

const (
	// H1 elements transform gradients by the Jacobian inverse transpose.
	H1 Family = iota
	// HDiv elements transform values by J/det(J) (contravariant Piola).
	HDiv
	// HCurl elements transform values by inv(J)^T (covariant Piola).
	HCurl
)

func (f Family) String() string {
	switch f {
	case H1:
		return "H1"
	case HDiv:
		return "Hdiv"
	case HCurl:
		return "Hcurl"
	}
	return "unknown"
}

// DofCounts gives the number of DOFs attached to each entity kind of the
// reference cell. Global numbering composes these with the mesh's entity
// counts, so DOFs on shared entities coincide across neighboring elements.
type DofCounts struct {
	Nodal, Edge, Facet, Interior int
}

/*
Element is the reference element contract consumed by the basis
evaluator:
  - RefDom supplies the cell topology templates;
  - MaxDegree sizes the default quadrature rule (2x the degree);
  - Eval returns the reference-domain basis value and derivative for one
    local index. For H1 elements value has length one and deriv is the
    gradient; for Hdiv value is the vector field and deriv holds the
    scalar divergence; for Hcurl value is the vector field and deriv the
    curl.

Elements are stateless lookup tables; all methods are safe for
concurrent use.
*/
type Element interface {
	RefDom() *RefDom
	Family() Family
	MaxDegree() int
	DofCounts() DofCounts
	DofNames() []string
	DofLocs() [][]float64
	NumDofs() int
	Eval(x []float64, i int) (value, deriv []float64)
}

// CountDofs composes per-entity DOF counts with the reference cell's
// entity counts.
func CountDofs(r *RefDom, c DofCounts) (n int) {
	n = c.Nodal*len(r.Verts) + c.Edge*len(r.Edges) + c.Facet*len(r.Facets) + c.Interior
	return
}

func badIndex(name string, i int) error {
	return fmt.Errorf("%s: local basis index %d out of range", name, i)
}
