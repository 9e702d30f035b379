package mesh

// Default meshes of the unit domains, used by tests, examples and the
// CLI when no grid file is supplied.

// UnitLine is the unit interval as a single element.
func UnitLine() *Mesh {
	return NewLine(
		[][]float64{{0}, {1}},
		[][]int{{0, 1}},
	)
}

// UnitTri is the reference triangle as a single element.
func UnitTri() *Mesh {
	return NewTri(
		[][]float64{{0, 0}, {1, 0}, {0, 1}},
		[][]int{{0, 1, 2}},
	)
}

// UnitSquareTri is the unit square split into two triangles along the
// diagonal from (1,0) to (0,1).
func UnitSquareTri() *Mesh {
	return NewTri(
		[][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		[][]int{{0, 1, 2}, {1, 2, 3}},
	)
}

// UnitSquareQuad is the unit square as a single quadrilateral.
func UnitSquareQuad() *Mesh {
	return NewQuad(
		[][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][]int{{0, 1, 2, 3}},
	)
}

// UnitTet is the reference tetrahedron as a single element.
func UnitTet() *Mesh {
	return NewTet(
		[][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[][]int{{0, 1, 2, 3}},
	)
}

// UnitCubeTet is the unit cube split into five tetrahedra: four corner
// cells around the interior cell spanned by (1,0,0), (0,1,0), (0,0,1)
// and (1,1,1).
func UnitCubeTet() *Mesh {
	return NewTet(
		[][]float64{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
		},
		[][]int{
			{0, 1, 2, 4},
			{1, 2, 3, 7},
			{1, 4, 5, 7},
			{2, 4, 6, 7},
			{1, 2, 4, 7},
		},
	)
}

// UnitCubeHex is the unit cube as a single hexahedron.
func UnitCubeHex() *Mesh {
	return NewHex(
		[][]float64{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
		[][]int{{0, 1, 2, 3, 4, 5, 6, 7}},
	)
}
