package meshio

import (
	"path/filepath"
	"testing"

	"github.com/notargets/gofea/element"
	"github.com/notargets/gofea/mesh"
	"github.com/stretchr/testify/assert"
)

func TestReadSU2(t *testing.T) {
	{ // two-triangle square with markers
		su2 := `% square, two triangles
NDIME= 2
NELEM= 2
5 0 1 2 0
5 1 3 2 1
NPOIN= 4
0.0 0.0 0
1.0 0.0 1
0.0 1.0 2
1.0 1.0 3
NMARK= 2
MARKER_TAG= bottom
MARKER_ELEMS= 1
3 0 1
MARKER_TAG= right
MARKER_ELEMS= 1
3 1 3
`
		m, err := ReadSU2(writeTempFile(t, "square.su2", su2))
		assert.NoError(t, err)
		assert.Equal(t, element.RefTri, m.Ref)
		assert.Equal(t, [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, m.Verts)
		assert.Equal(t, [][]int{{0, 1, 2}, {1, 2, 3}}, m.Elements)
		assert.Equal(t, map[string][]int{"bottom": {0}, "right": {4}}, m.Boundaries)
	}
	{ // single tet, modern point lines without trailing ids
		su2 := `NDIME= 3
NELEM= 1
10 0 1 2 3
NPOIN= 4
0.0 0.0 0.0
1.0 0.0 0.0
0.0 1.0 0.0
0.0 0.0 1.0
NMARK= 1
MARKER_TAG= base
MARKER_ELEMS= 1
5 0 1 2
`
		m, err := ReadSU2(writeTempFile(t, "tet.su2", su2))
		assert.NoError(t, err)
		assert.Equal(t, element.RefTet, m.Ref)
		assert.Equal(t, 4, len(m.BoundaryFacets()))
		assert.Equal(t, map[string][]int{"base": {0}}, m.Boundaries)
	}
	{ // marker entries that do not name a facet are skipped
		su2 := `NDIME= 2
NELEM= 2
5 0 1 2 0
5 1 3 2 1
NPOIN= 4
0.0 0.0 0
1.0 0.0 1
0.0 1.0 2
1.0 1.0 3
NMARK= 2
MARKER_TAG= wall
MARKER_ELEMS= 2
3 0 3
3 0 1
MARKER_TAG= broken
MARKER_ELEMS= 1
3 x 1
`
		m, err := ReadSU2(writeTempFile(t, "tags.su2", su2))
		assert.NoError(t, err)
		assert.Equal(t, map[string][]int{"wall": {0}}, m.Boundaries)
	}
	{ // declared markers that never appear drop the remaining tags only
		su2 := `NDIME= 2
NELEM= 1
5 0 1 2 0
NPOIN= 3
0.0 0.0 0
1.0 0.0 1
0.0 1.0 2
NMARK= 3
MARKER_TAG= bottom
MARKER_ELEMS= 1
3 0 1
`
		m, err := ReadSU2(writeTempFile(t, "short.su2", su2))
		assert.NoError(t, err)
		assert.Equal(t, map[string][]int{"bottom": {0}}, m.Boundaries)
	}
	{ // structural problems abort
		mixed := `NDIME= 2
NELEM= 2
5 0 1 2 0
9 0 1 3 2 1
NPOIN= 4
0.0 0.0 0
1.0 0.0 1
0.0 1.0 2
1.0 1.0 3
`
		_, err := ReadSU2(writeTempFile(t, "mixed.su2", mixed))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "mixed cell types")

		_, err = ReadSU2(writeTempFile(t, "baddim.su2", "NDIME= 4\n"))
		assert.Error(t, err)

		truncated := `NDIME= 2
NELEM= 2
5 0 1 2 0
`
		_, err = ReadSU2(writeTempFile(t, "trunc.su2", truncated))
		assert.Error(t, err)
	}
}

func TestWriteSU2(t *testing.T) {
	{ // write and read back a tagged square
		square := mesh.UnitSquareTri().WithBoundaries(map[string][]int{
			"bottom": {0},
			"walls":  {2, 3, 4},
		})
		path := filepath.Join(t.TempDir(), "square.su2")
		assert.NoError(t, WriteSU2(path, square))

		m, err := ReadSU2(path)
		assert.NoError(t, err)
		assert.Equal(t, square.Verts, m.Verts)
		assert.Equal(t, square.Elements, m.Elements)
		assert.Equal(t, square.Boundaries, m.Boundaries)
	}
	{ // hex meshes round-trip too
		cube := mesh.UnitCubeHex()
		path := filepath.Join(t.TempDir(), "cube.su2")
		assert.NoError(t, WriteSU2(path, cube))

		m, err := ReadSU2(path)
		assert.NoError(t, err)
		assert.Equal(t, cube.Verts, m.Verts)
		assert.Equal(t, cube.Elements, m.Elements)
	}
	{ // boundaries referencing missing facets refuse to write
		bad := mesh.UnitTri().WithBoundaries(map[string][]int{"ghost": {7}})
		err := WriteSU2(filepath.Join(t.TempDir(), "bad.su2"), bad)
		assert.Error(t, err)
	}
}
