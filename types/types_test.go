package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{ // Test packed int for edge labeling
		en := NewEdgeKey([2]int{1, 0})
		assert.Equal(t, EdgeKey(1<<32), en)
		assert.Equal(t, [2]int{0, 1}, en.GetVertices(false))

		en = NewEdgeKey([2]int{0, 1})
		assert.Equal(t, EdgeKey(1<<32), en)
		assert.Equal(t, [2]int{0, 1}, en.GetVertices(false))

		en = NewEdgeKey([2]int{0, 10})
		assert.Equal(t, EdgeKey(10*(1<<32)), en)
		assert.Equal(t, [2]int{0, 10}, en.GetVertices(false))

		en = NewEdgeKey([2]int{100, 0})
		assert.Equal(t, EdgeKey(100*(1<<32)), en)
		assert.Equal(t, [2]int{0, 100}, en.GetVertices(false))

		en = NewEdgeKey([2]int{100, 1})
		assert.Equal(t, EdgeKey(100*(1<<32)+1), en)
		assert.Equal(t, [2]int{1, 100}, en.GetVertices(false))

		en = NewEdgeKey([2]int{100, 100001})
		assert.Equal(t, EdgeKey(100001*(1<<32)+100), en)
		assert.Equal(t, [2]int{100, 100001}, en.GetVertices(false))

		// Test maximum/minimum indices
		en = NewEdgeKey([2]int{1, 1<<32 - 1})
		assert.Equal(t, EdgeKey((1<<32-1)<<32+1), en)
		assert.Equal(t, [2]int{1, 1<<32 - 1}, en.GetVertices(false))

		en = NewEdgeKey([2]int{1<<32 - 1, 1<<32 - 1})
		assert.Equal(t, EdgeKey(1<<64-1), en)
		assert.Equal(t, [2]int{1<<32 - 1, 1<<32 - 1}, en.GetVertices(false))

		en = NewEdgeKey([2]int{1<<32 - 1, 1})
		assert.Equal(t, EdgeKey((1<<32-1)<<32+1), en)
		assert.Equal(t, [2]int{1, 1<<32 - 1}, en.GetVertices(false))
	}
	{ // Test sorted face keys
		fk := NewFaceKey([]int{7, 2, 5})
		assert.Equal(t, FaceKey{2, 5, 7, -1}, fk)
		assert.Equal(t, []int{2, 5, 7}, fk.GetVertices())
		assert.Equal(t, 3, fk.NumVerts())

		// The same vertex set in any order produces the same key
		assert.Equal(t, fk, NewFaceKey([]int{5, 7, 2}))
		assert.Equal(t, fk, NewFaceKey([]int{2, 7, 5}))

		fk = NewFaceKey([]int{3, 1, 0, 2})
		assert.Equal(t, FaceKey{0, 1, 2, 3}, fk)
		assert.Equal(t, 4, fk.NumVerts())

		// Single vertex facet (1D meshes)
		fk = NewFaceKey([]int{9})
		assert.Equal(t, FaceKey{9, -1, -1, -1}, fk)
		assert.Equal(t, []int{9}, fk.GetVertices())

		assert.Panics(t, func() { NewFaceKey(nil) })
		assert.Panics(t, func() { NewFaceKey([]int{1, 2, 3, 4, 5}) })
	}
}
