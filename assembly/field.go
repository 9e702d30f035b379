package assembly

import "github.com/notargets/gofea/utils"

/*
DiscreteField is what a form kernel sees of one basis function, or of an
interpolated coefficient function: its components and its family
derivative sampled on the quadrature grid, each an Nq x K matrix. H1
fields have one value component and gradient derivatives, HDiv fields
carry vector values with the divergence, HCurl fields vector values with
the curl.
*/
type DiscreteField struct {
	Value []utils.Matrix
	Grad  []utils.Matrix
}

/*
FieldSet bundles the pointwise data shared by every kernel evaluation:
physical quadrature coordinates, the local mesh size, and any named
auxiliary fields the caller supplies (interpolated previous solutions,
coefficients).
*/
type FieldSet struct {
	X      []utils.Matrix
	H      utils.Matrix
	Fields map[string]*DiscreteField
}

// Field looks up a named auxiliary field, panicking when the kernel
// asks for one the caller never supplied.
func (w *FieldSet) Field(name string) *DiscreteField {
	f, ok := w.Fields[name]
	if !ok {
		panic("no auxiliary field named " + name)
	}
	return f
}
