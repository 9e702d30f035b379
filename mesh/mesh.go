package mesh

import (
	"fmt"
	"sort"
	"sync"

	"github.com/notargets/gofea/element"
)

/*
Mesh is an unstructured mesh of one cell type: vertex coordinates plus
fixed-arity element connectivity over a reference cell. It is read-only
after construction. Derived topology (facets, edges, owner maps) is
built on first access and cached; transforms return new meshes and never
mutate the receiver.

Simplex connectivity is canonicalized by ascending sort within each
element tuple, so that shared sub-entity templates agree across
neighboring elements. Tensor-product cells (quad, hex) keep the cyclic
vertex order their reference cell defines.
*/
type Mesh struct {
	Verts    [][]float64
	Elements [][]int
	Ref      *element.RefDom

	// informational named sets: facet indices and element indices.
	// Point transforms and the With* overrides carry them along; Join,
	// RemoveElements and Refined drop them since the numbering shifts.
	Boundaries map[string][]int
	Subdomains map[string][]int

	once sync.Once
	topo *topology
}

type topology struct {
	facets [][]int
	t2f    [][]int
	f2t    [2][]int
	edges  [][]int // 3D only
	t2e    [][]int // 3D only
}

/*
New builds a mesh over the given reference cell, validating vertex
dimension, element arity and index range. Simplex element tuples are
copied and sorted ascending; quad/hex tuples are copied as given.
*/
func New(ref *element.RefDom, verts [][]float64, elements [][]int) (m *Mesh, err error) {
	for i, v := range verts {
		if len(v) != ref.Dim {
			return nil, fmt.Errorf("vertex %d has %d coordinates, want %d for %s cells",
				i, len(v), ref.Dim, ref.Name)
		}
	}
	simplex := ref == element.RefLine || ref == element.RefTri || ref == element.RefTet
	elems := make([][]int, len(elements))
	for k, elem := range elements {
		if len(elem) != ref.NumVerts() {
			return nil, fmt.Errorf("element %d has %d vertices, want %d for %s cells",
				k, len(elem), ref.NumVerts(), ref.Name)
		}
		tuple := append([]int(nil), elem...)
		for _, n := range tuple {
			if n < 0 || n >= len(verts) {
				return nil, fmt.Errorf("element %d references vertex %d, have %d vertices",
					k, n, len(verts))
			}
		}
		if simplex {
			sort.Ints(tuple)
		}
		elems[k] = tuple
	}
	m = &Mesh{Verts: verts, Elements: elems, Ref: ref}
	return
}

func mustNew(ref *element.RefDom, verts [][]float64, elements [][]int) (m *Mesh) {
	var err error
	if m, err = New(ref, verts, elements); err != nil {
		panic(err)
	}
	return
}

// NewLine builds a 1D interval mesh. Panics on malformed input.
func NewLine(verts [][]float64, elements [][]int) *Mesh {
	return mustNew(element.RefLine, verts, elements)
}

// NewTri builds a triangle mesh. Panics on malformed input.
func NewTri(verts [][]float64, elements [][]int) *Mesh {
	return mustNew(element.RefTri, verts, elements)
}

// NewQuad builds a quadrilateral mesh with cyclic element vertex order.
// Panics on malformed input.
func NewQuad(verts [][]float64, elements [][]int) *Mesh {
	return mustNew(element.RefQuad, verts, elements)
}

// NewTet builds a tetrahedral mesh. Panics on malformed input.
func NewTet(verts [][]float64, elements [][]int) *Mesh {
	return mustNew(element.RefTet, verts, elements)
}

// NewHex builds a hexahedral mesh with the reference cell's vertex
// numbering. Panics on malformed input.
func NewHex(verts [][]float64, elements [][]int) *Mesh {
	return mustNew(element.RefHex, verts, elements)
}

func (m *Mesh) Dim() int         { return m.Ref.Dim }
func (m *Mesh) NumVerts() int    { return len(m.Verts) }
func (m *Mesh) NumElements() int { return len(m.Elements) }

func (m *Mesh) getTopology() *topology {
	m.once.Do(func() {
		if m.topo != nil {
			return // pre-seeded by a transform sharing the same connectivity
		}
		var tp topology
		tp.facets, tp.t2f = BuildEntities(m.Elements, m.Ref.Facets)
		tp.f2t = BuildInverse(len(m.Elements), tp.t2f, len(tp.facets))
		if m.Ref.Dim == 3 {
			tp.edges, tp.t2e = BuildEntities(m.Elements, m.Ref.Edges)
		}
		m.topo = &tp
	})
	return m.topo
}

// Facets returns the unique codim-1 entities as sorted node tuples.
func (m *Mesh) Facets() [][]int { return m.getTopology().facets }

// T2F maps [facet template][element] to the global facet index.
func (m *Mesh) T2F() [][]int { return m.getTopology().t2f }

/*
F2T maps each facet to its owning elements in scan order. The second
slot is -1 exactly when the facet lies on the boundary. The first owner
fixes the global orientation of facet-normal degrees of freedom.
*/
func (m *Mesh) F2T() [2][]int { return m.getTopology().f2t }

// Edges returns the unique vertex-pair entities of a 3D mesh.
func (m *Mesh) Edges() [][]int {
	if m.Ref.Dim != 3 {
		panic(fmt.Errorf("edges are a 3D entity, mesh has %s cells", m.Ref.Name))
	}
	return m.getTopology().edges
}

// T2E maps [edge template][element] to the global edge index, 3D only.
func (m *Mesh) T2E() [][]int {
	if m.Ref.Dim != 3 {
		panic(fmt.Errorf("edges are a 3D entity, mesh has %s cells", m.Ref.Name))
	}
	return m.getTopology().t2e
}

// BoundaryFacets returns the facets owned by a single element, ascending.
func (m *Mesh) BoundaryFacets() (facets []int) {
	f2t := m.F2T()
	for f := range f2t[1] {
		if f2t[1][f] == -1 {
			facets = append(facets, f)
		}
	}
	return
}

// BoundaryNodes returns the unique vertices of the boundary facets, ascending.
func (m *Mesh) BoundaryNodes() (nodes []int) {
	var (
		facets = m.Facets()
		seen   = make(map[int]bool)
	)
	for _, f := range m.BoundaryFacets() {
		for _, n := range facets[f] {
			if !seen[n] {
				seen[n] = true
				nodes = append(nodes, n)
			}
		}
	}
	sort.Ints(nodes)
	return
}

// InteriorNodes returns the vertices not on any boundary facet, ascending.
func (m *Mesh) InteriorNodes() (nodes []int) {
	onBoundary := make(map[int]bool)
	for _, n := range m.BoundaryNodes() {
		onBoundary[n] = true
	}
	for n := range m.Verts {
		if !onBoundary[n] {
			nodes = append(nodes, n)
		}
	}
	return
}

// NodesSatisfying returns the vertices whose coordinates satisfy pred.
func (m *Mesh) NodesSatisfying(pred func(x []float64) bool) (nodes []int) {
	for n, v := range m.Verts {
		if pred(v) {
			nodes = append(nodes, n)
		}
	}
	return
}

// FacetsSatisfying returns the facets whose midpoints satisfy pred.
func (m *Mesh) FacetsSatisfying(pred func(x []float64) bool) (facets []int) {
	for f, verts := range m.Facets() {
		if pred(m.centroid(verts)) {
			facets = append(facets, f)
		}
	}
	return
}

// ElementsSatisfying returns the elements whose centroids satisfy pred.
func (m *Mesh) ElementsSatisfying(pred func(x []float64) bool) (elems []int) {
	for k, verts := range m.Elements {
		if pred(m.centroid(verts)) {
			elems = append(elems, k)
		}
	}
	return
}

func (m *Mesh) centroid(verts []int) (x []float64) {
	x = make([]float64, m.Ref.Dim)
	for _, n := range verts {
		for d := range x {
			x[d] += m.Verts[n][d]
		}
	}
	for d := range x {
		x[d] /= float64(len(verts))
	}
	return
}

/*
WithBoundaries returns a mesh sharing this mesh's geometry and
connectivity with the named facet sets replaced. Facet indices refer to
the Facets() enumeration.
*/
func (m *Mesh) WithBoundaries(boundaries map[string][]int) (nm *Mesh) {
	nm = &Mesh{Verts: m.Verts, Elements: m.Elements, Ref: m.Ref,
		Boundaries: boundaries, Subdomains: m.Subdomains}
	nm.topo = m.topo
	return
}

// WithSubdomains returns a mesh with the named element sets replaced.
func (m *Mesh) WithSubdomains(subdomains map[string][]int) (nm *Mesh) {
	nm = &Mesh{Verts: m.Verts, Elements: m.Elements, Ref: m.Ref,
		Boundaries: m.Boundaries, Subdomains: subdomains}
	nm.topo = m.topo
	return
}

// Boundary looks up a named facet set.
func (m *Mesh) Boundary(name string) (facets []int, err error) {
	var ok bool
	if facets, ok = m.Boundaries[name]; !ok {
		return nil, fmt.Errorf("mesh has no boundary named %q", name)
	}
	return
}
