package mesh

import (
	"fmt"
	"sort"
)

// BoundingBox returns the componentwise min and max of the vertex
// coordinates.
func (m *Mesh) BoundingBox() (lo, hi []float64) {
	lo = append([]float64(nil), m.Verts[0]...)
	hi = append([]float64(nil), m.Verts[0]...)
	for _, v := range m.Verts[1:] {
		for d, x := range v {
			if x < lo[d] {
				lo[d] = x
			}
			if x > hi[d] {
				hi[d] = x
			}
		}
	}
	return
}

// PrintStatistics prints a mesh summary
func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Cell type: %s\n", m.Ref.Name)
	fmt.Printf("  Vertices: %d\n", len(m.Verts))
	fmt.Printf("  Elements: %d\n", len(m.Elements))
	fmt.Printf("  Facets: %d\n", len(m.Facets()))
	fmt.Printf("  Boundary facets: %d\n", len(m.BoundaryFacets()))
	if m.Ref.Dim == 3 {
		fmt.Printf("  Edges: %d\n", len(m.Edges()))
	}
	lo, hi := m.BoundingBox()
	fmt.Printf("  Bounding box: %v - %v\n", lo, hi)
	if len(m.Boundaries) > 0 {
		names := make([]string, 0, len(m.Boundaries))
		for name := range m.Boundaries {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Printf("  Named boundaries:\n")
		for _, name := range names {
			fmt.Printf("    %s: %d facets\n", name, len(m.Boundaries[name]))
		}
	}
	if len(m.Subdomains) > 0 {
		names := make([]string, 0, len(m.Subdomains))
		for name := range m.Subdomains {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Printf("  Subdomains:\n")
		for _, name := range names {
			fmt.Printf("    %s: %d elements\n", name, len(m.Subdomains[name]))
		}
	}
}
