package meshio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/gofea/element"
	"github.com/notargets/gofea/mesh"
	"github.com/notargets/gofea/types"
)

// Gambit NTYPE codes for the supported cells.
var gambitCell = map[int]*element.RefDom{
	1: element.RefLine,
	2: element.RefQuad,
	3: element.RefTri,
	4: element.RefHex,
	6: element.RefTet,
}

// Gambit bricks number their corners in binary order (x fastest); remap
// to the cyclic bottom/top ordering the hex reference cell uses.
var gambitHexOrder = []int{0, 1, 3, 2, 4, 5, 7, 6}

// Local corner sets of the Gambit face numbers 1..NFACES, applied to the
// node ordering as it appears in the file. Orientation within a face is
// irrelevant here since faces resolve through sorted vertex tuples.
var gambitFace = map[int][][]int{
	3: {{0, 1}, {1, 2}, {2, 0}},
	2: {{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	6: {{0, 1, 2}, {0, 1, 3}, {1, 2, 3}, {0, 2, 3}},
	4: {{0, 1, 5, 4}, {1, 3, 7, 5}, {2, 3, 7, 6}, {0, 2, 6, 4}, {0, 1, 3, 2}, {4, 5, 7, 6}},
}

type gambitGroup struct {
	name  string
	elems []int // 1-based element ids as listed in the file
}

type gambitBC struct {
	name    string
	entries [][2]int // 1-based element id, 1-based face number
}

// ReadGambit reads a Gambit neutral (.neu) grid. Element groups become
// named subdomains and boundary condition sets of element/face type
// become named boundaries, resolved through the mesh facet topology.
func ReadGambit(path string) (*mesh.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	var (
		numnp, nelem, ngrps, nbsets, ndfcd int
		haveHeader                         bool
		verts                              [][]float64
		raw                                [][]int // file node ordering, for face resolution
		ntype                              = -1
		groups                             []gambitGroup
		bcs                                []gambitBC
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.Contains(line, "NUMNP") && strings.Contains(line, "NELEM"):
			// Next line holds NUMNP NELEM NGRPS NBSETS NDFCD NDFVL
			if !scanner.Scan() {
				return nil, fmt.Errorf("%s: truncated after problem size header", path)
			}
			fields := strings.Fields(scanner.Text())
			if len(fields) < 5 {
				return nil, fmt.Errorf("%s: malformed problem size line %q", path, scanner.Text())
			}
			counts := make([]int, 5)
			for i := range counts {
				if counts[i], err = strconv.Atoi(fields[i]); err != nil {
					return nil, fmt.Errorf("%s: problem size line: %w", path, err)
				}
			}
			numnp, nelem, ngrps, nbsets, ndfcd = counts[0], counts[1], counts[2], counts[3], counts[4]
			if ndfcd < 1 || ndfcd > 3 {
				return nil, fmt.Errorf("%s: unsupported dimension NDFCD=%d", path, ndfcd)
			}
			haveHeader = true

		case strings.Contains(line, "NODAL COORDINATES"):
			if !haveHeader {
				return nil, fmt.Errorf("%s: coordinates before problem size header", path)
			}
			verts = make([][]float64, numnp)
			for scanner.Scan() {
				line = strings.TrimSpace(scanner.Text())
				if line == "ENDOFSECTION" {
					break
				}
				fields := strings.Fields(line)
				if len(fields) < ndfcd+1 {
					return nil, fmt.Errorf("%s: malformed coordinate line %q", path, line)
				}
				id, err := strconv.Atoi(fields[0])
				if err != nil || id < 1 || id > numnp {
					return nil, fmt.Errorf("%s: bad node id in %q", path, line)
				}
				x := make([]float64, ndfcd)
				for d := 0; d < ndfcd; d++ {
					if x[d], err = strconv.ParseFloat(fields[1+d], 64); err != nil {
						return nil, fmt.Errorf("%s: node %d: %w", path, id, err)
					}
				}
				verts[id-1] = x
			}

		case strings.Contains(line, "ELEMENTS/CELLS"):
			if !haveHeader {
				return nil, fmt.Errorf("%s: elements before problem size header", path)
			}
			raw = make([][]int, 0, nelem)
			for scanner.Scan() {
				line = strings.TrimSpace(scanner.Text())
				if line == "ENDOFSECTION" {
					break
				}
				// NE NTYPE NDP NODE1 NODE2 ...
				fields := strings.Fields(line)
				if len(fields) < 3 {
					return nil, fmt.Errorf("%s: malformed element line %q", path, line)
				}
				et, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("%s: element line %q: %w", path, line, err)
				}
				if _, ok := gambitCell[et]; !ok {
					return nil, fmt.Errorf("%s: unsupported Gambit element type %d", path, et)
				}
				if ntype == -1 {
					ntype = et
				} else if et != ntype {
					return nil, fmt.Errorf("%s: mixed cell types %d and %d", path, ntype, et)
				}
				ndp, err := strconv.Atoi(fields[2])
				if err != nil || len(fields) < 3+ndp {
					return nil, fmt.Errorf("%s: malformed element line %q", path, line)
				}
				if ndp != gambitCell[et].NumVerts() {
					return nil, fmt.Errorf("%s: %s element with %d nodes, want %d",
						path, gambitCell[et].Name, ndp, gambitCell[et].NumVerts())
				}
				nodes := make([]int, ndp)
				for j := 0; j < ndp; j++ {
					v, err := strconv.Atoi(fields[3+j])
					if err != nil {
						return nil, fmt.Errorf("%s: element line %q: %w", path, line, err)
					}
					nodes[j] = v - 1
				}
				raw = append(raw, nodes)
			}

		case strings.Contains(line, "ELEMENT GROUP"):
			g, err := readGambitGroup(scanner, path)
			if err != nil {
				return nil, err
			}
			groups = append(groups, g)

		case strings.Contains(line, "BOUNDARY CONDITIONS"):
			bc, ok, err := readGambitBC(scanner, path)
			if err != nil {
				return nil, err
			}
			if ok {
				bcs = append(bcs, bc)
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !haveHeader {
		return nil, fmt.Errorf("%s: no problem size header found", path)
	}
	if len(raw) != nelem {
		return nil, fmt.Errorf("%s: read %d elements, header declares %d", path, len(raw), nelem)
	}
	for i, v := range verts {
		if v == nil {
			return nil, fmt.Errorf("%s: node %d missing from coordinate section", path, i+1)
		}
	}

	elements := raw
	if ntype == 4 {
		elements = make([][]int, len(raw))
		for k, nodes := range raw {
			remapped := make([]int, 8)
			for j, src := range gambitHexOrder {
				remapped[j] = nodes[src]
			}
			elements[k] = remapped
		}
	}
	m, err := mesh.New(gambitCell[ntype], verts, elements)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if nbsets > 0 && len(bcs) == 0 {
		warnf("%s declares %d boundary sets, found none; importing without boundaries", path, nbsets)
	}
	if ngrps > 0 && len(groups) == 0 {
		warnf("%s declares %d element groups, found none; importing without subdomains", path, ngrps)
	}

	if boundaries := resolveGambitBCs(m, raw, ntype, bcs); len(boundaries) > 0 {
		m = m.WithBoundaries(boundaries)
	}
	if subdomains := resolveGambitGroups(m, groups); len(subdomains) > 0 {
		m = m.WithSubdomains(subdomains)
	}
	return m, nil
}

// readGambitGroup parses one ELEMENT GROUP section: the GROUP:/ELEMENTS:
// header line, the group name line, a flags line, then element id lists
// up to ENDOFSECTION. Non-integer ids are skipped with a warning.
func readGambitGroup(scanner *bufio.Scanner, path string) (g gambitGroup, err error) {
	if !scanner.Scan() {
		return g, fmt.Errorf("%s: truncated element group section", path)
	}
	header := strings.Fields(scanner.Text())
	nElems := -1
	for i := 0; i < len(header)-1; i++ {
		if header[i] == "ELEMENTS:" {
			if nElems, err = strconv.Atoi(header[i+1]); err != nil {
				return g, fmt.Errorf("%s: element group header: %w", path, err)
			}
		}
	}
	if nElems < 0 {
		return g, fmt.Errorf("%s: element group header %q missing ELEMENTS:", path, scanner.Text())
	}
	if !scanner.Scan() {
		return g, fmt.Errorf("%s: truncated element group section", path)
	}
	g.name = strings.TrimSpace(scanner.Text())
	scanner.Scan() // flags line

	for len(g.elems) < nElems && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "ENDOFSECTION" {
			break
		}
		for _, field := range strings.Fields(line) {
			id, err := strconv.Atoi(field)
			if err != nil {
				warnf("group %q: skipping non-integer element id %q", g.name, field)
				continue
			}
			g.elems = append(g.elems, id)
		}
	}
	return g, nil
}

// readGambitBC parses one BOUNDARY CONDITIONS section header plus its
// NENTRY data lines. Node-type sets (ITYPE 0) cannot become facet sets
// and are skipped whole with a warning; ok reports whether the section
// produced a usable element/face set.
func readGambitBC(scanner *bufio.Scanner, path string) (bc gambitBC, ok bool, err error) {
	if !scanner.Scan() {
		return bc, false, fmt.Errorf("%s: truncated boundary conditions section", path)
	}
	header := strings.Fields(scanner.Text())
	if len(header) < 3 {
		return bc, false, fmt.Errorf("%s: malformed boundary header %q", path, scanner.Text())
	}
	bc.name = header[0]
	itype, err := strconv.Atoi(header[1])
	if err != nil {
		return bc, false, fmt.Errorf("%s: boundary header %q: %w", path, scanner.Text(), err)
	}
	nEntries, err := strconv.Atoi(header[2])
	if err != nil {
		return bc, false, fmt.Errorf("%s: boundary header %q: %w", path, scanner.Text(), err)
	}
	if itype != 1 {
		warnf("boundary set %q is node-typed (ITYPE %d); skipping", bc.name, itype)
		for i := 0; i < nEntries && scanner.Scan(); i++ {
		}
		return bc, false, nil
	}
	for i := 0; i < nEntries && scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "ENDOFSECTION" {
			break
		}
		// ELEM ETYPE FACE
		fields := strings.Fields(line)
		if len(fields) < 3 {
			warnf("boundary set %q: skipping malformed entry %q", bc.name, line)
			continue
		}
		elem, err1 := strconv.Atoi(fields[0])
		face, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil {
			warnf("boundary set %q: skipping non-integer entry %q", bc.name, line)
			continue
		}
		bc.entries = append(bc.entries, [2]int{elem, face})
	}
	return bc, true, nil
}

// resolveGambitBCs turns element/face references into facet id sets,
// dropping entries that point outside the mesh.
func resolveGambitBCs(m *mesh.Mesh, raw [][]int, ntype int, bcs []gambitBC) map[string][]int {
	if len(bcs) == 0 {
		return nil
	}
	var (
		faces      = gambitFace[ntype]
		byVerts    = facetIndex(m)
		boundaries = make(map[string][]int, len(bcs))
	)
	for _, bc := range bcs {
		var facets []int
		for _, entry := range bc.entries {
			elem, face := entry[0], entry[1]
			if elem < 1 || elem > len(raw) {
				warnf("boundary set %q: element %d outside mesh (%d elements); skipping entry",
					bc.name, elem, len(raw))
				continue
			}
			if face < 1 || face > len(faces) {
				warnf("boundary set %q: face %d outside 1..%d; skipping entry",
					bc.name, face, len(faces))
				continue
			}
			corners := make([]int, len(faces[face-1]))
			for i, c := range faces[face-1] {
				corners[i] = raw[elem-1][c]
			}
			f, found := byVerts[types.NewFaceKey(corners)]
			if !found {
				warnf("boundary set %q: element %d face %d is not a mesh facet; skipping entry",
					bc.name, elem, face)
				continue
			}
			facets = append(facets, f)
		}
		if len(facets) > 0 {
			boundaries[bc.name] = facets
		} else {
			warnf("boundary set %q resolved to no facets; dropped", bc.name)
		}
	}
	if len(boundaries) == 0 {
		return nil
	}
	return boundaries
}

func resolveGambitGroups(m *mesh.Mesh, groups []gambitGroup) map[string][]int {
	if len(groups) == 0 {
		return nil
	}
	subdomains := make(map[string][]int, len(groups))
	for _, g := range groups {
		var elems []int
		for _, id := range g.elems {
			if id < 1 || id > m.NumElements() {
				warnf("group %q: element %d outside mesh (%d elements); skipping entry",
					g.name, id, m.NumElements())
				continue
			}
			elems = append(elems, id-1)
		}
		if len(elems) > 0 {
			subdomains[g.name] = elems
		} else {
			warnf("group %q resolved to no elements; dropped", g.name)
		}
	}
	if len(subdomains) == 0 {
		return nil
	}
	return subdomains
}
