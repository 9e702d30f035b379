package meshio

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/notargets/gofea/element"
	"github.com/notargets/gofea/mesh"
)

// Dict couples a mesh with named per-vertex and per-element data
// arrays. It is the unit the YAML dict format stores and round-trips.
type Dict struct {
	Mesh      *mesh.Mesh
	PointData map[string][]float64
	CellData  map[string][]float64
}

// dictFile is the on-disk YAML shape. ghodss/yaml converts YAML to JSON
// before decoding, so the keys are declared as json tags.
type dictFile struct {
	Dim        int                  `json:"dim"`
	Cell       string               `json:"cell"`
	Verts      [][]float64          `json:"verts"`
	Elements   [][]int              `json:"elements"`
	Boundaries map[string][]int     `json:"boundaries,omitempty"`
	Subdomains map[string][]int     `json:"subdomains,omitempty"`
	PointData  map[string][]float64 `json:"point_data,omitempty"`
	CellData   map[string][]float64 `json:"cell_data,omitempty"`
}

var dictCell = map[string]*element.RefDom{
	"line": element.RefLine,
	"tri":  element.RefTri,
	"quad": element.RefQuad,
	"tet":  element.RefTet,
	"hex":  element.RefHex,
}

// ReadDict reads the YAML mesh dict format: {dim, cell, verts,
// elements, boundaries, subdomains, point_data, cell_data}. Boundary
// facet ids and subdomain element ids outside the mesh are dropped with
// a warning; malformed data arrays abort.
func ReadDict(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var df dictFile
	if err = yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	ref, ok := dictCell[df.Cell]
	if !ok {
		return nil, fmt.Errorf("%s: unknown cell type %q", path, df.Cell)
	}
	if df.Dim != ref.Dim {
		return nil, fmt.Errorf("%s: dim %d does not match %s cells (dim %d)",
			path, df.Dim, ref.Name, ref.Dim)
	}
	m, err := mesh.New(ref, df.Verts, df.Elements)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if boundaries := filterIDs(df.Boundaries, len(m.Facets()), "boundary", "facet"); len(boundaries) > 0 {
		m = m.WithBoundaries(boundaries)
	}
	if subdomains := filterIDs(df.Subdomains, m.NumElements(), "subdomain", "element"); len(subdomains) > 0 {
		m = m.WithSubdomains(subdomains)
	}

	for name, vals := range df.PointData {
		if len(vals) != m.NumVerts() {
			return nil, fmt.Errorf("%s: point_data %q has %d values, want %d",
				path, name, len(vals), m.NumVerts())
		}
	}
	for name, vals := range df.CellData {
		if len(vals) != m.NumElements() {
			return nil, fmt.Errorf("%s: cell_data %q has %d values, want %d",
				path, name, len(vals), m.NumElements())
		}
	}
	return &Dict{Mesh: m, PointData: df.PointData, CellData: df.CellData}, nil
}

// filterIDs drops out-of-range entity ids from named tag sets, warning
// per skipped id and per fully emptied set.
func filterIDs(sets map[string][]int, n int, kind, entity string) map[string][]int {
	if len(sets) == 0 {
		return nil
	}
	out := make(map[string][]int, len(sets))
	for name, ids := range sets {
		var kept []int
		for _, id := range ids {
			if id < 0 || id >= n {
				warnf("%s %q: %s %d outside mesh (%d %ss); skipping entry", kind, name, entity, id, n, entity)
				continue
			}
			kept = append(kept, id)
		}
		if len(kept) > 0 {
			out[name] = kept
		} else {
			warnf("%s %q resolved to no %ss; dropped", kind, name, entity)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// WriteDict writes the YAML mesh dict form of d.
func WriteDict(path string, d *Dict) error {
	m := d.Mesh
	df := dictFile{
		Dim:        m.Dim(),
		Cell:       m.Ref.Name,
		Verts:      m.Verts,
		Elements:   m.Elements,
		Boundaries: m.Boundaries,
		Subdomains: m.Subdomains,
		PointData:  d.PointData,
		CellData:   d.CellData,
	}
	data, err := yaml.Marshal(&df)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}
