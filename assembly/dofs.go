package assembly

import (
	"fmt"
	"sort"

	"github.com/notargets/gofea/element"
	"github.com/notargets/gofea/mesh"
	"github.com/notargets/gofea/types"
)

/*
Dofs numbers the global degrees of freedom of one element type over one
mesh: a bijection from (element, local index) onto [0, Total). Globals
are laid out in entity blocks, nodal first, then edge (3D), then facet,
then interior; within a block, entity index times the per-entity count
plus the component. Elements sharing an entity therefore agree on its
global indices, which is what makes the assembled operator conforming.
*/
type Dofs struct {
	mesh   *mesh.Mesh
	elem   element.Element
	counts element.DofCounts

	nodalOff, edgeOff, facetOff, interiorOff, total int

	edgeIDs map[types.EdgeKey]int // sorted vertex pair -> edge index, 3D only
}

func NewDofs(m *mesh.Mesh, e element.Element) (d *Dofs) {
	if e.RefDom() != m.Ref {
		panic(fmt.Errorf("element %T is defined on %s cells, mesh has %s cells",
			e, e.RefDom().Name, m.Ref.Name))
	}
	d = &Dofs{mesh: m, elem: e, counts: e.DofCounts()}
	var (
		nEdges int
		c      = d.counts
	)
	if c.Edge > 0 {
		nEdges = len(m.Edges())
		d.edgeIDs = make(map[types.EdgeKey]int, nEdges)
		for e, ev := range m.Edges() {
			d.edgeIDs[types.NewEdgeKey([2]int{ev[0], ev[1]})] = e
		}
	}
	d.nodalOff = 0
	d.edgeOff = d.nodalOff + c.Nodal*len(m.Verts)
	d.facetOff = d.edgeOff + c.Edge*nEdges
	d.interiorOff = d.facetOff + c.Facet*len(m.Facets())
	d.total = d.interiorOff + c.Interior*len(m.Elements)
	return
}

// Total is the global degree-of-freedom count.
func (d *Dofs) Total() int { return d.total }

// ElementDofs returns element k's global indices in local order: nodal
// dofs vertex by vertex, then edge, facet and interior blocks in
// template order.
func (d *Dofs) ElementDofs(k int) (dofs []int) {
	var (
		c    = d.counts
		elem = d.mesh.Elements[k]
	)
	dofs = make([]int, 0, d.elem.NumDofs())
	for v := range elem {
		for i := 0; i < c.Nodal; i++ {
			dofs = append(dofs, d.nodalOff+elem[v]*c.Nodal+i)
		}
	}
	if c.Edge > 0 {
		t2e := d.mesh.T2E()
		for ti := range t2e {
			for i := 0; i < c.Edge; i++ {
				dofs = append(dofs, d.edgeOff+t2e[ti][k]*c.Edge+i)
			}
		}
	}
	if c.Facet > 0 {
		t2f := d.mesh.T2F()
		for ti := range t2f {
			for i := 0; i < c.Facet; i++ {
				dofs = append(dofs, d.facetOff+t2f[ti][k]*c.Facet+i)
			}
		}
	}
	for i := 0; i < c.Interior; i++ {
		dofs = append(dofs, d.interiorOff+k*c.Interior+i)
	}
	return
}

// FacetDofs returns the nodal, edge and facet dofs supported on facet f.
func (d *Dofs) FacetDofs(f int) (dofs []int) {
	var (
		c     = d.counts
		verts = d.mesh.Facets()[f]
	)
	for _, v := range verts {
		for i := 0; i < c.Nodal; i++ {
			dofs = append(dofs, d.nodalOff+v*c.Nodal+i)
		}
	}
	if c.Edge > 0 {
		// facet edges are the vertex pairs that exist as mesh edges
		for a := 0; a < len(verts); a++ {
			for b := a + 1; b < len(verts); b++ {
				if e, ok := d.edgeIDs[types.NewEdgeKey([2]int{verts[a], verts[b]})]; ok {
					for i := 0; i < c.Edge; i++ {
						dofs = append(dofs, d.edgeOff+e*c.Edge+i)
					}
				}
			}
		}
	}
	for i := 0; i < c.Facet; i++ {
		dofs = append(dofs, d.facetOff+f*c.Facet+i)
	}
	return
}

// BoundaryDofs returns the sorted union of FacetDofs over a facet set,
// typically BoundaryFacets or a named boundary. Interior dofs never
// appear, they have no facet support.
func (d *Dofs) BoundaryDofs(facets []int) (dofs []int) {
	seen := make(map[int]bool)
	for _, f := range facets {
		for _, dof := range d.FacetDofs(f) {
			if !seen[dof] {
				seen[dof] = true
				dofs = append(dofs, dof)
			}
		}
	}
	sort.Ints(dofs)
	return
}
