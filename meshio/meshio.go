/*
Package meshio reads and writes unstructured meshes. Three formats are
supported: Gambit neutral (.neu), SU2 ASCII (.su2, read and write) and a
generic YAML mesh dict (.yaml/.yml, read and write) that round-trips
every mesh attribute including named boundaries, subdomains and attached
point/cell data.

Boundary and subdomain tags are best-effort on import: a declared tag
section that is missing, a tag referencing an element or facet outside
the mesh, or a non-integer entry in a tag payload is reported as a
warning and the offending tag dropped, while the mesh itself is still
returned. Anything wrong with the mesh proper (counts, coordinates,
connectivity, unsupported cell types) aborts with an error.
*/
package meshio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/notargets/gofea/mesh"
	"github.com/notargets/gofea/types"
)

// Read loads a mesh, dispatching on the file extension: .neu Gambit
// neutral, .su2 SU2 ASCII, .yaml/.yml the YAML mesh dict.
func Read(path string) (*mesh.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".neu":
		return ReadGambit(path)
	case ".su2":
		return ReadSU2(path)
	case ".yaml", ".yml":
		d, err := ReadDict(path)
		if err != nil {
			return nil, err
		}
		return d.Mesh, nil
	}
	return nil, fmt.Errorf("no mesh reader for %s: want .neu, .su2, .yaml or .yml", path)
}

func warnf(format string, args ...interface{}) {
	fmt.Printf("warning: "+format+"\n", args...)
}

// facetIndex maps the canonicalized vertex tuple of each mesh facet to
// its facet id, for resolving file-side boundary references that name
// facets by their corner vertices.
func facetIndex(m *mesh.Mesh) map[types.FaceKey]int {
	facets := m.Facets()
	idx := make(map[types.FaceKey]int, len(facets))
	for f, verts := range facets {
		idx[types.NewFaceKey(verts)] = f
	}
	return idx
}
