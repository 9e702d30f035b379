package meshio

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/notargets/gofea/element"
	"github.com/notargets/gofea/mesh"
	"github.com/notargets/gofea/types"
)

// SU2 element ids follow the VTK numbering.
var su2Cell = map[int]*element.RefDom{
	3:  element.RefLine,
	5:  element.RefTri,
	9:  element.RefQuad,
	10: element.RefTet,
	12: element.RefHex,
}

func su2CellID(ref *element.RefDom) int {
	for id, r := range su2Cell {
		if r == ref {
			return id
		}
	}
	panic(fmt.Errorf("no SU2 element id for %s cells", ref.Name))
}

// su2FacetID gives the VTK id of a boundary marker entity by its vertex
// count: point, line, triangle or quad.
func su2FacetID(nVerts int) int {
	switch nVerts {
	case 1:
		return 1
	case 2:
		return 3
	case 3:
		return 5
	}
	return 9
}

// ReadSU2 reads an SU2 ASCII (.su2) mesh. MARKER_TAG sections become
// named boundaries, their vertex tuples resolved through the mesh facet
// topology.
func ReadSU2(path string) (*mesh.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	var (
		ndime    int
		verts    [][]float64
		elements [][]int
		ref      *element.RefDom
		marks    []su2Marker
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "NDIME="):
			if _, err = fmt.Sscanf(line, "NDIME=%d", &ndime); err != nil {
				return nil, fmt.Errorf("%s: %q: %w", path, line, err)
			}
			if ndime < 1 || ndime > 3 {
				return nil, fmt.Errorf("%s: unsupported NDIME=%d", path, ndime)
			}

		case strings.HasPrefix(line, "NELEM="):
			var nelem int
			if _, err = fmt.Sscanf(line, "NELEM=%d", &nelem); err != nil {
				return nil, fmt.Errorf("%s: %q: %w", path, line, err)
			}
			elements = make([][]int, 0, nelem)
			for i := 0; i < nelem; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("%s: truncated element section at %d of %d", path, i, nelem)
				}
				fields := strings.Fields(scanner.Text())
				if len(fields) < 1 {
					return nil, fmt.Errorf("%s: empty element line", path)
				}
				vtkType, err := strconv.Atoi(fields[0])
				if err != nil {
					return nil, fmt.Errorf("%s: element %d: %w", path, i, err)
				}
				r, ok := su2Cell[vtkType]
				if !ok {
					return nil, fmt.Errorf("%s: unsupported SU2 element type %d", path, vtkType)
				}
				if ref == nil {
					ref = r
				} else if r != ref {
					return nil, fmt.Errorf("%s: mixed cell types %s and %s", path, ref.Name, r.Name)
				}
				nv := ref.NumVerts()
				if len(fields) < 1+nv {
					return nil, fmt.Errorf("%s: element %d has %d vertices, want %d",
						path, i, len(fields)-1, nv)
				}
				nodes := make([]int, nv)
				for j := 0; j < nv; j++ {
					if nodes[j], err = strconv.Atoi(fields[1+j]); err != nil {
						return nil, fmt.Errorf("%s: element %d: %w", path, i, err)
					}
				}
				elements = append(elements, nodes)
			}

		case strings.HasPrefix(line, "NPOIN="):
			var npoin int
			if _, err = fmt.Sscanf(line, "NPOIN=%d", &npoin); err != nil {
				return nil, fmt.Errorf("%s: %q: %w", path, line, err)
			}
			if ndime == 0 {
				return nil, fmt.Errorf("%s: NPOIN before NDIME", path)
			}
			verts = make([][]float64, npoin)
			for i := 0; i < npoin; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("%s: truncated point section at %d of %d", path, i, npoin)
				}
				fields := strings.Fields(scanner.Text())
				if len(fields) < ndime {
					return nil, fmt.Errorf("%s: point line %q too short", path, scanner.Text())
				}
				x := make([]float64, ndime)
				for d := 0; d < ndime; d++ {
					if x[d], err = strconv.ParseFloat(fields[d], 64); err != nil {
						return nil, fmt.Errorf("%s: point %d: %w", path, i, err)
					}
				}
				// Older files carry a trailing point index
				id := i
				if len(fields) > ndime {
					if id, err = strconv.Atoi(fields[len(fields)-1]); err != nil || id < 0 || id >= npoin {
						return nil, fmt.Errorf("%s: bad point id in %q", path, scanner.Text())
					}
				}
				verts[id] = x
			}

		case strings.HasPrefix(line, "NMARK="):
			var nmark int
			if _, err = fmt.Sscanf(line, "NMARK=%d", &nmark); err != nil {
				return nil, fmt.Errorf("%s: %q: %w", path, line, err)
			}
			marks, err = readSU2Markers(scanner, path, nmark)
			if err != nil {
				return nil, err
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if ref == nil {
		return nil, fmt.Errorf("%s: no element section found", path)
	}
	for i, v := range verts {
		if v == nil {
			return nil, fmt.Errorf("%s: point %d missing from point section", path, i)
		}
	}

	m, err := mesh.New(ref, verts, elements)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if boundaries := resolveSU2Markers(m, marks); len(boundaries) > 0 {
		m = m.WithBoundaries(boundaries)
	}
	return m, nil
}

type su2Marker struct {
	name   string
	tuples [][]int
}

// readSU2Markers parses nmark MARKER_TAG/MARKER_ELEMS blocks. A missing
// block is a dropped tag section, not an abort: the markers read so far
// are kept and a warning issued.
func readSU2Markers(scanner *bufio.Scanner, path string, nmark int) (marks []su2Marker, err error) {
	for i := 0; i < nmark; i++ {
		if !scanner.Scan() {
			warnf("%s declares %d markers, found %d; importing the rest without tags", path, nmark, i)
			return marks, nil
		}
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "MARKER_TAG=") {
			warnf("%s declares %d markers, found %d; importing the rest without tags", path, nmark, i)
			return marks, nil
		}
		mk := su2Marker{name: strings.TrimSpace(strings.TrimPrefix(line, "MARKER_TAG="))}

		if !scanner.Scan() {
			return nil, fmt.Errorf("%s: truncated marker %q", path, mk.name)
		}
		var nElems int
		if _, err = fmt.Sscanf(strings.TrimSpace(scanner.Text()), "MARKER_ELEMS=%d", &nElems); err != nil {
			return nil, fmt.Errorf("%s: marker %q: %w", path, mk.name, err)
		}
		for j := 0; j < nElems; j++ {
			if !scanner.Scan() {
				return nil, fmt.Errorf("%s: truncated marker %q at %d of %d", path, mk.name, j, nElems)
			}
			fields := strings.Fields(scanner.Text())
			tuple, ok := parseMarkerTuple(fields, mk.name)
			if !ok {
				continue
			}
			mk.tuples = append(mk.tuples, tuple)
		}
		marks = append(marks, mk)
	}
	return marks, nil
}

// parseMarkerTuple reads "vtkType v0 v1 ..." with the vertex count fixed
// by the type; malformed entries are skipped with a warning.
func parseMarkerTuple(fields []string, name string) ([]int, bool) {
	if len(fields) < 2 {
		warnf("marker %q: skipping malformed entry %q", name, strings.Join(fields, " "))
		return nil, false
	}
	vtkType, err := strconv.Atoi(fields[0])
	if err != nil {
		warnf("marker %q: skipping non-integer entry %q", name, strings.Join(fields, " "))
		return nil, false
	}
	var nv int
	switch vtkType {
	case 1:
		nv = 1
	case 3:
		nv = 2
	case 5:
		nv = 3
	case 9:
		nv = 4
	default:
		warnf("marker %q: skipping entry with unsupported type %d", name, vtkType)
		return nil, false
	}
	if len(fields) < 1+nv {
		warnf("marker %q: skipping short entry %q", name, strings.Join(fields, " "))
		return nil, false
	}
	tuple := make([]int, nv)
	for j := 0; j < nv; j++ {
		if tuple[j], err = strconv.Atoi(fields[1+j]); err != nil {
			warnf("marker %q: skipping non-integer entry %q", name, strings.Join(fields, " "))
			return nil, false
		}
	}
	return tuple, true
}

// resolveSU2Markers maps marker vertex tuples to facet ids, dropping
// tuples that do not name a mesh facet.
func resolveSU2Markers(m *mesh.Mesh, marks []su2Marker) map[string][]int {
	if len(marks) == 0 {
		return nil
	}
	var (
		byVerts    = facetIndex(m)
		boundaries = make(map[string][]int, len(marks))
	)
	for _, mk := range marks {
		var facets []int
		for _, tuple := range mk.tuples {
			f, found := byVerts[types.NewFaceKey(tuple)]
			if !found {
				warnf("marker %q: vertices %v are not a mesh facet; skipping entry", mk.name, tuple)
				continue
			}
			facets = append(facets, f)
		}
		if len(facets) > 0 {
			boundaries[mk.name] = facets
		} else {
			warnf("marker %q resolved to no facets; dropped", mk.name)
		}
	}
	if len(boundaries) == 0 {
		return nil
	}
	return boundaries
}

// WriteSU2 writes a mesh in SU2 ASCII form. Named boundaries become
// MARKER_TAG sections, emitted in name order.
func WriteSU2(path string, m *mesh.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	cellID := su2CellID(m.Ref)

	fmt.Fprintf(w, "NDIME= %d\n", m.Dim())
	fmt.Fprintf(w, "NELEM= %d\n", m.NumElements())
	for k, elem := range m.Elements {
		fmt.Fprintf(w, "%d", cellID)
		for _, v := range elem {
			fmt.Fprintf(w, " %d", v)
		}
		fmt.Fprintf(w, " %d\n", k)
	}
	fmt.Fprintf(w, "NPOIN= %d\n", m.NumVerts())
	for i, x := range m.Verts {
		for _, c := range x {
			fmt.Fprintf(w, "%s ", strconv.FormatFloat(c, 'g', -1, 64))
		}
		fmt.Fprintf(w, "%d\n", i)
	}

	names := make([]string, 0, len(m.Boundaries))
	for name := range m.Boundaries {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(w, "NMARK= %d\n", len(names))
	facets := m.Facets()
	for _, name := range names {
		fmt.Fprintf(w, "MARKER_TAG= %s\n", name)
		fmt.Fprintf(w, "MARKER_ELEMS= %d\n", len(m.Boundaries[name]))
		for _, f := range m.Boundaries[name] {
			if f < 0 || f >= len(facets) {
				return fmt.Errorf("boundary %q references facet %d, have %d facets", name, f, len(facets))
			}
			fmt.Fprintf(w, "%d", su2FacetID(len(facets[f])))
			for _, v := range facets[f] {
				fmt.Fprintf(w, " %d", v)
			}
			fmt.Fprintf(w, "\n")
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
