package element

import (
	"fmt"
	"sort"
)

var registry = map[string]Element{
	"LineP1": LineP1{},
	"TriP1":  TriP1{},
	"TriP2":  TriP2{},
	"TriCR":  TriCR{},
	"TriRT0": TriRT0{},
	"Quad1":  Quad1{},
	"TetP1":  TetP1{},
	"TetP2":  TetP2{},
	"TetCR":  TetCR{},
	"TetRT0": TetRT0{},
	"TetN0":  TetN0{},
	"Hex1":   Hex1{},
}

// ByName resolves an element from its catalog name, for config driven
// construction.
func ByName(name string) (e Element, err error) {
	var (
		ok bool
	)
	if e, ok = registry[name]; !ok {
		err = fmt.Errorf("no element named %q, have %v", name, Names())
	}
	return
}

func Names() (names []string) {
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
