package mesh

import (
	"sort"

	"github.com/notargets/gofea/types"
)

/*
BuildEntities extracts every templated sub-entity of every element,
canonicalizes each tuple by sorting its node indices, and deduplicates
globally: two elements presenting the same sorted tuple refer to the
same entity. Entities are numbered in first-occurrence order over the
template-major scan. t2e[template][element] records which unique entity
each occurrence resolved to.

Vertex pairs dedup through the packed EdgeKey, wider tuples (and the
single-vertex facets of line cells) through FaceKey.
*/
func BuildEntities(elements [][]int, templates [][]int) (entities [][]int, t2e [][]int) {
	var (
		nElems = len(elements)
		nLoc   = len(templates[0])
		lookup func(tuple []int) (id int, ok bool)
		insert func(tuple []int, id int)
	)
	t2e = make([][]int, len(templates))
	for i := range t2e {
		t2e[i] = make([]int, nElems)
	}
	if nLoc == 2 {
		keys := make(map[types.EdgeKey]int)
		lookup = func(tuple []int) (id int, ok bool) {
			id, ok = keys[types.NewEdgeKey([2]int{tuple[0], tuple[1]})]
			return
		}
		insert = func(tuple []int, id int) {
			keys[types.NewEdgeKey([2]int{tuple[0], tuple[1]})] = id
		}
	} else {
		keys := make(map[types.FaceKey]int)
		lookup = func(tuple []int) (id int, ok bool) {
			id, ok = keys[types.NewFaceKey(tuple)]
			return
		}
		insert = func(tuple []int, id int) {
			keys[types.NewFaceKey(tuple)] = id
		}
	}
	tuple := make([]int, nLoc)
	for ti, template := range templates {
		for k := 0; k < nElems; k++ {
			for i, loc := range template {
				tuple[i] = elements[k][loc]
			}
			sort.Ints(tuple)
			id, ok := lookup(tuple)
			if !ok {
				id = len(entities)
				entities = append(entities, append([]int(nil), tuple...))
				insert(tuple, id)
			}
			t2e[ti][k] = id
		}
	}
	return
}

/*
BuildInverse inverts an element-to-entity map: for every unique entity it
records the first and last owning element in template-major scan order.
Entities with a single owner get -1 in the second slot, which marks the
boundary when the entities are facets. Two sweeps over the incidences, no
adjacency counting.

An entity shared by more than two elements (non-manifold input) is not
validated against; the middle owners are simply dropped.
*/
func BuildInverse(nElems int, t2e [][]int, nEntities int) (e2t [2][]int) {
	e2t[0] = make([]int, nEntities)
	e2t[1] = make([]int, nEntities)
	for ti := range t2e {
		for k := 0; k < nElems; k++ {
			e2t[1][t2e[ti][k]] = k
		}
	}
	// reverse sweep, so the last write per entity is its first owner
	for ti := len(t2e) - 1; ti >= 0; ti-- {
		for k := nElems - 1; k >= 0; k-- {
			e2t[0][t2e[ti][k]] = k
		}
	}
	for e := range e2t[0] {
		if e2t[0][e] == e2t[1][e] {
			e2t[1][e] = -1
		}
	}
	return
}
