package meshio

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"
	"github.com/notargets/gofea/element"
	"github.com/notargets/gofea/mesh"
	"github.com/notargets/gofea/utils"
)

// TriMesh converts a 2D triangle mesh to the avs wire form.
func TriMesh(m *mesh.Mesh) (gm geometry.TriMesh, err error) {
	if m.Ref != element.RefTri {
		err = fmt.Errorf("plotting needs a triangle mesh, have %s cells", m.Ref.Name)
		return
	}
	gm = geometry.TriMesh{
		XY:       make([]float32, 2*m.NumVerts()),
		TriVerts: make([][3]int64, m.NumElements()),
	}
	for i, x := range m.Verts {
		gm.XY[2*i] = float32(x[0])
		gm.XY[2*i+1] = float32(x[1])
	}
	for k, elem := range m.Elements {
		for n := 0; n < 3; n++ {
			gm.TriVerts[k][n] = int64(elem[n])
		}
	}
	return
}

// Plot opens a chart window rendering a triangle mesh as a wireframe,
// overlaying named boundary sets as colored segments. The chart runs
// until the process exits; the caller decides how long to keep it up.
func Plot(m *mesh.Mesh) (*chart2d.Chart2D, error) {
	gm, err := TriMesh(m)
	if err != nil {
		return nil, err
	}
	lo, hi := m.BoundingBox()
	xMin, xMax, yMin, yMax := squareBoundingBox(
		float32(lo[0]), float32(hi[0]), float32(lo[1]), float32(hi[1]))
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax, 1920, 1080,
		utils2.WHITE, utils2.BLACK, 0.9)
	ch.AddTriMesh(gm)
	for col, line := range BoundaryLines(m) {
		ch.AddLine(line, col)
	}
	return ch, nil
}

// BoundaryLines packs the facet segments of each named boundary set
// into per-color line lists, cycling colors over set names in sorted
// order.
func BoundaryLines(m *mesh.Mesh) map[color.RGBA][]float32 {
	var (
		lines  = make(map[color.RGBA][]float32)
		colors = []utils.ColorName{utils.Red, utils.Green, utils.Blue}
		names  = make([]string, 0, len(m.Boundaries))
		facets = m.Facets()
	)
	for name := range m.Boundaries {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		col := utils.GetColor(colors[i%len(colors)])
		for _, f := range m.Boundaries[name] {
			v1, v2 := facets[f][0], facets[f][1]
			utils.AddLine(m.Verts[v1][0], m.Verts[v1][1],
				m.Verts[v2][0], m.Verts[v2][1], col, lines)
		}
	}
	return lines
}

// squareBoundingBox pads the shorter axis range so the mesh renders
// without aspect distortion.
func squareBoundingBox(xMin, xMax, yMin, yMax float32) (xBMin, xBMax, yBMin, yBMax float32) {
	xRange := xMax - xMin
	yRange := yMax - yMin
	if yRange > xRange {
		yBMin, yBMax = yMin, yMax
		xCent := xMin + xRange/2.
		xBMin = xCent - yRange/2.
		xBMax = xCent + yRange/2.
	} else {
		xBMin, xBMax = xMin, xMax
		yCent := yMin + yRange/2.
		yBMin = yCent - xRange/2.
		yBMax = yCent + xRange/2.
	}
	return
}
