package meshio

import (
	"testing"

	"github.com/notargets/gofea/element"
	"github.com/stretchr/testify/assert"
)

const gambitSquare = `        CONTROL INFO 2.0.0
** GAMBIT NEUTRAL FILE
two triangles
PROGRAM:                Gambit     VERSION:  2.0.0
     NUMNP     NELEM     NGRPS    NBSETS     NDFCD     NDFVL
         4         2         1         3         2         2
ENDOFSECTION
   NODAL COORDINATES 2.0.0
         1   0.00000000000e+00   0.00000000000e+00
         2   1.00000000000e+00   0.00000000000e+00
         3   0.00000000000e+00   1.00000000000e+00
         4   1.00000000000e+00   1.00000000000e+00
ENDOFSECTION
      ELEMENTS/CELLS 2.0.0
         1  3  3         1       2       3
         2  3  3         2       4       3
ENDOFSECTION
       ELEMENT GROUP 2.0.0
GROUP:          1 ELEMENTS:          2 MATERIAL:          2 NFLAGS:          1
                           fluid
       0
         1         2
ENDOFSECTION
 BOUNDARY CONDITIONS 2.0.0
              bottom       1       1       0       6
         1       3       1
ENDOFSECTION
 BOUNDARY CONDITIONS 2.0.0
               right       1       1       0       6
         2       3       1
ENDOFSECTION
 BOUNDARY CONDITIONS 2.0.0
                 top       1       1       0       6
         2       3       2
ENDOFSECTION
`

func TestReadGambit(t *testing.T) {
	{ // two-triangle square with a group and boundary sets
		m, err := ReadGambit(writeTempFile(t, "square.neu", gambitSquare))
		assert.NoError(t, err)
		assert.Equal(t, element.RefTri, m.Ref)
		assert.Equal(t, [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, m.Verts)
		assert.Equal(t, [][]int{{0, 1, 2}, {1, 2, 3}}, m.Elements)

		// Facets number {0,1},{1,2},{2,3},{0,2},{1,3}: the file's
		// element/face pairs land on bottom, right and top edges
		assert.Equal(t, map[string][]int{
			"bottom": {0},
			"right":  {4},
			"top":    {2},
		}, m.Boundaries)
		assert.Equal(t, map[string][]int{"fluid": {0, 1}}, m.Subdomains)
	}
	{ // bricks arrive in binary corner order and get the cyclic ordering
		neu := `     NUMNP     NELEM     NGRPS    NBSETS     NDFCD     NDFVL
         8         1         0         1         3         3
ENDOFSECTION
   NODAL COORDINATES 2.0.0
         1   0.0   0.0   0.0
         2   1.0   0.0   0.0
         3   0.0   1.0   0.0
         4   1.0   1.0   0.0
         5   0.0   0.0   1.0
         6   1.0   0.0   1.0
         7   0.0   1.0   1.0
         8   1.0   1.0   1.0
ENDOFSECTION
      ELEMENTS/CELLS 2.0.0
         1  4  8         1       2       3       4       5       6       7       8
ENDOFSECTION
 BOUNDARY CONDITIONS 2.0.0
               floor       1       1       0       6
         1       4       5
ENDOFSECTION
`
		m, err := ReadGambit(writeTempFile(t, "cube.neu", neu))
		assert.NoError(t, err)
		assert.Equal(t, element.RefHex, m.Ref)
		assert.Equal(t, [][]int{{0, 1, 3, 2, 4, 5, 7, 6}}, m.Elements)
		assert.Equal(t, 6, len(m.BoundaryFacets()))
		assert.Equal(t, map[string][]int{"floor": {0}}, m.Boundaries)
	}
	{ // tag entries pointing outside the mesh are skipped, the rest kept
		neu := `     NUMNP     NELEM     NGRPS    NBSETS     NDFCD     NDFVL
         4         2         0         1         2         2
ENDOFSECTION
   NODAL COORDINATES 2.0.0
         1   0.0   0.0
         2   1.0   0.0
         3   0.0   1.0
         4   1.0   1.0
ENDOFSECTION
      ELEMENTS/CELLS 2.0.0
         1  3  3         1       2       3
         2  3  3         2       4       3
ENDOFSECTION
 BOUNDARY CONDITIONS 2.0.0
                wall       1       4       0       6
         1       3       1
        99       3       1
         1       3       9
         x       3       1
ENDOFSECTION
`
		m, err := ReadGambit(writeTempFile(t, "tags.neu", neu))
		assert.NoError(t, err)
		assert.Equal(t, map[string][]int{"wall": {0}}, m.Boundaries)
	}
	{ // declared boundary sets that never appear leave the mesh untagged
		neu := `     NUMNP     NELEM     NGRPS    NBSETS     NDFCD     NDFVL
         3         1         0         2         2         2
ENDOFSECTION
   NODAL COORDINATES 2.0.0
         1   0.0   0.0
         2   1.0   0.0
         3   0.0   1.0
ENDOFSECTION
      ELEMENTS/CELLS 2.0.0
         1  3  3         1       2       3
ENDOFSECTION
`
		m, err := ReadGambit(writeTempFile(t, "untagged.neu", neu))
		assert.NoError(t, err)
		assert.Equal(t, 0, len(m.Boundaries))
		assert.Equal(t, 3, len(m.BoundaryFacets()))
	}
	{ // structural problems abort
		mixed := `     NUMNP     NELEM     NGRPS    NBSETS     NDFCD     NDFVL
         4         2         0         0         2         2
ENDOFSECTION
      ELEMENTS/CELLS 2.0.0
         1  3  3         1       2       3
         2  2  4         1       2       4       3
ENDOFSECTION
`
		_, err := ReadGambit(writeTempFile(t, "mixed.neu", mixed))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "mixed cell types")

		badNode := `     NUMNP     NELEM     NGRPS    NBSETS     NDFCD     NDFVL
         3         1         0         0         2         2
ENDOFSECTION
   NODAL COORDINATES 2.0.0
         1   0.0   0.0
         2   1.0   0.0
         3   0.0   1.0
ENDOFSECTION
      ELEMENTS/CELLS 2.0.0
         1  3  3         1       2       9
ENDOFSECTION
`
		_, err = ReadGambit(writeTempFile(t, "badnode.neu", badNode))
		assert.Error(t, err)

		_, err = ReadGambit(writeTempFile(t, "empty.neu", "no header here\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no problem size header")
	}
}
