package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/gofea/element"
)

func (m *Mesh) copyVerts() (verts [][]float64) {
	verts = make([][]float64, len(m.Verts))
	for i, v := range m.Verts {
		verts[i] = append([]float64(nil), v...)
	}
	return
}

// pointTransformed shares connectivity (and its cached topology) with
// the receiver, replacing only the coordinates.
func (m *Mesh) pointTransformed(verts [][]float64) (nm *Mesh) {
	nm = &Mesh{Verts: verts, Elements: m.Elements, Ref: m.Ref,
		Boundaries: m.Boundaries, Subdomains: m.Subdomains}
	nm.topo = m.topo
	return
}

// Scaled returns a mesh with coordinates multiplied per axis. A single
// factor applies to every axis.
func (m *Mesh) Scaled(factors []float64) *Mesh {
	if len(factors) != 1 && len(factors) != m.Ref.Dim {
		panic(fmt.Errorf("want 1 or %d scale factors, have %d", m.Ref.Dim, len(factors)))
	}
	verts := m.copyVerts()
	for _, v := range verts {
		for d := range v {
			if len(factors) == 1 {
				v[d] *= factors[0]
			} else {
				v[d] *= factors[d]
			}
		}
	}
	return m.pointTransformed(verts)
}

// Translated returns a mesh with coordinates shifted by the given vector.
func (m *Mesh) Translated(shift []float64) *Mesh {
	if len(shift) != m.Ref.Dim {
		panic(fmt.Errorf("want %d shift components, have %d", m.Ref.Dim, len(shift)))
	}
	verts := m.copyVerts()
	for _, v := range verts {
		for d := range v {
			v[d] += shift[d]
		}
	}
	return m.pointTransformed(verts)
}

// Mirrored returns a mesh reflected across the plane through point with
// the given normal: p' = p - 2((p-p0).n)n with n normalized.
func (m *Mesh) Mirrored(normal, point []float64) *Mesh {
	if len(normal) != m.Ref.Dim || len(point) != m.Ref.Dim {
		panic(fmt.Errorf("want %d components for mirror normal and point", m.Ref.Dim))
	}
	var nrm float64
	for _, n := range normal {
		nrm += n * n
	}
	nrm = math.Sqrt(nrm)
	verts := m.copyVerts()
	for _, v := range verts {
		var dist float64
		for d := range v {
			dist += (v[d] - point[d]) * normal[d] / nrm
		}
		for d := range v {
			v[d] -= 2. * dist * normal[d] / nrm
		}
	}
	return m.pointTransformed(verts)
}

type vertKey [3]float64

func makeVertKey(v []float64) (key vertKey) {
	copy(key[:], v)
	return
}

/*
Join concatenates two meshes of the same cell type, deduplicating
vertices that coincide exactly. Named boundary and subdomain sets are
dropped since the facet and element numbering changes.
*/
func (m *Mesh) Join(other *Mesh) *Mesh {
	if m.Ref != other.Ref {
		panic(fmt.Errorf("cannot join %s mesh with %s mesh", m.Ref.Name, other.Ref.Name))
	}
	var (
		verts [][]float64
		seen  = make(map[vertKey]int)
	)
	index := func(v []float64) (n int) {
		key := makeVertKey(v)
		var ok bool
		if n, ok = seen[key]; !ok {
			n = len(verts)
			verts = append(verts, v)
			seen[key] = n
		}
		return
	}
	var elems [][]int
	for _, src := range []*Mesh{m, other} {
		remap := make([]int, len(src.Verts))
		for i, v := range src.Verts {
			remap[i] = index(v)
		}
		for _, elem := range src.Elements {
			tuple := make([]int, len(elem))
			for i, n := range elem {
				tuple[i] = remap[n]
			}
			elems = append(elems, tuple)
		}
	}
	return mustNew(m.Ref, verts, elems)
}

/*
RemoveElements returns a mesh without the listed elements, compacting
the vertex array to the vertices still referenced. Named sets are
dropped.
*/
func (m *Mesh) RemoveElements(drop []int) *Mesh {
	dropped := make(map[int]bool, len(drop))
	for _, k := range drop {
		if k < 0 || k >= len(m.Elements) {
			panic(fmt.Errorf("element %d out of range, have %d elements", k, len(m.Elements)))
		}
		dropped[k] = true
	}
	var (
		remap = make([]int, len(m.Verts))
		verts [][]float64
		elems [][]int
	)
	for i := range remap {
		remap[i] = -1
	}
	for k, elem := range m.Elements {
		if dropped[k] {
			continue
		}
		tuple := make([]int, len(elem))
		for i, n := range elem {
			if remap[n] == -1 {
				remap[n] = len(verts)
				verts = append(verts, m.Verts[n])
			}
			tuple[i] = remap[n]
		}
		elems = append(elems, tuple)
	}
	return mustNew(m.Ref, verts, elems)
}

/*
Refined returns the mesh uniformly refined the given number of times:
line elements bisect, triangles and quadrilaterals split into four
children through their edge midpoints (quads add the cell centroid),
tetrahedra split into four corner children plus four interior children
through the six edge midpoints. Hexahedral refinement is unsupported.
Named sets are dropped.
*/
func (m *Mesh) Refined(times int) (nm *Mesh) {
	nm = m
	for i := 0; i < times; i++ {
		nm = nm.refineOnce()
	}
	return
}

func (m *Mesh) refineOnce() *Mesh {
	switch m.Ref {
	case element.RefLine:
		return m.refineLine()
	case element.RefTri:
		return m.refineTri()
	case element.RefQuad:
		return m.refineQuad()
	case element.RefTet:
		return m.refineTet()
	}
	panic(fmt.Errorf("refinement of %s meshes is unsupported", m.Ref.Name))
}

// midpoints appends one midpoint vertex per entity to a copy of the
// vertex array; entity e becomes vertex len(m.Verts)+e.
func (m *Mesh) midpoints(entities [][]int) (verts [][]float64) {
	verts = append(make([][]float64, 0, len(m.Verts)+len(entities)), m.Verts...)
	for _, ent := range entities {
		verts = append(verts, m.centroid(ent))
	}
	return
}

func (m *Mesh) refineLine() *Mesh {
	var (
		nV    = len(m.Verts)
		verts = append(make([][]float64, 0, nV+len(m.Elements)), m.Verts...)
		elems = make([][]int, 0, 2*len(m.Elements))
	)
	for k, elem := range m.Elements {
		mid := nV + k
		verts = append(verts, m.centroid(elem))
		elems = append(elems, []int{elem[0], mid}, []int{mid, elem[1]})
	}
	return mustNew(m.Ref, verts, elems)
}

// localEdge maps a local vertex pair to its template slot, so midpoint
// lookups stay correct whatever order the templates list the pairs in.
func localEdge(templates [][]int) func(a, b int) int {
	slots := make(map[[2]int]int, len(templates))
	for i, tmpl := range templates {
		a, b := tmpl[0], tmpl[1]
		if a > b {
			a, b = b, a
		}
		slots[[2]int{a, b}] = i
	}
	return func(a, b int) int {
		if a > b {
			a, b = b, a
		}
		return slots[[2]int{a, b}]
	}
}

func (m *Mesh) refineTri() *Mesh {
	var (
		nV    = len(m.Verts)
		t2f   = m.T2F()
		verts = m.midpoints(m.Facets())
		edge  = localEdge(m.Ref.Facets)
		elems = make([][]int, 0, 4*len(m.Elements))
	)
	for k, elem := range m.Elements {
		v0, v1, v2 := elem[0], elem[1], elem[2]
		m01 := nV + t2f[edge(0, 1)][k]
		m12 := nV + t2f[edge(1, 2)][k]
		m02 := nV + t2f[edge(0, 2)][k]
		elems = append(elems,
			[]int{v0, m01, m02},
			[]int{v1, m01, m12},
			[]int{v2, m02, m12},
			[]int{m01, m12, m02},
		)
	}
	return mustNew(m.Ref, verts, elems)
}

func (m *Mesh) refineQuad() *Mesh {
	var (
		nV    = len(m.Verts)
		nE    = len(m.Facets())
		t2f   = m.T2F()
		verts = m.midpoints(m.Facets())
		edge  = localEdge(m.Ref.Facets)
		elems = make([][]int, 0, 4*len(m.Elements))
	)
	for k, elem := range m.Elements {
		verts = append(verts, m.centroid(elem))
		var (
			v0, v1, v2, v3 = elem[0], elem[1], elem[2], elem[3]
			m01            = nV + t2f[edge(0, 1)][k]
			m12            = nV + t2f[edge(1, 2)][k]
			m23            = nV + t2f[edge(2, 3)][k]
			m30            = nV + t2f[edge(3, 0)][k]
			c              = nV + nE + k
		)
		elems = append(elems,
			[]int{v0, m01, c, m30},
			[]int{m01, v1, m12, c},
			[]int{c, m12, v2, m23},
			[]int{m30, c, m23, v3},
		)
	}
	return mustNew(m.Ref, verts, elems)
}

// refineTet is the red refinement: four corner children plus four
// children tiling the interior octahedron around the m02-m13 diagonal,
// all with one eighth of the parent volume.
func (m *Mesh) refineTet() *Mesh {
	var (
		nV    = len(m.Verts)
		t2e   = m.T2E()
		verts = m.midpoints(m.Edges())
		edge  = localEdge(m.Ref.Edges)
		elems = make([][]int, 0, 8*len(m.Elements))
	)
	for k, elem := range m.Elements {
		var (
			v0, v1, v2, v3 = elem[0], elem[1], elem[2], elem[3]
			m01            = nV + t2e[edge(0, 1)][k]
			m02            = nV + t2e[edge(0, 2)][k]
			m03            = nV + t2e[edge(0, 3)][k]
			m12            = nV + t2e[edge(1, 2)][k]
			m13            = nV + t2e[edge(1, 3)][k]
			m23            = nV + t2e[edge(2, 3)][k]
		)
		elems = append(elems,
			[]int{v0, m01, m02, m03},
			[]int{v1, m01, m12, m13},
			[]int{v2, m02, m12, m23},
			[]int{v3, m03, m13, m23},
			[]int{m01, m02, m03, m13},
			[]int{m01, m02, m12, m13},
			[]int{m02, m03, m13, m23},
			[]int{m02, m12, m13, m23},
		)
	}
	return mustNew(m.Ref, verts, elems)
}
