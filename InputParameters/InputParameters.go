package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type AssemblyParameters struct {
	Title           string             `yaml:"Title"`
	MeshFile        string             `yaml:"MeshFile"`
	Element         string             `yaml:"Element"`
	Form            string             `yaml:"Form"`
	QuadratureOrder int                `yaml:"QuadratureOrder"` // 0 selects the element default
	Threads         int                `yaml:"Threads"`
	Coefficients    map[string]float64 `yaml:"Coefficients"` // named constants scaling the form
}

func (ap *AssemblyParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ap)
}

func (ap *AssemblyParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ap.Title)
	fmt.Printf("[%s]\t\t= MeshFile\n", ap.MeshFile)
	fmt.Printf("[%s]\t\t\t= Element\n", ap.Element)
	fmt.Printf("[%s]\t\t\t= Form\n", ap.Form)
	fmt.Printf("[%d]\t\t\t\t= QuadratureOrder\n", ap.QuadratureOrder)
	fmt.Printf("[%d]\t\t\t\t= Threads\n", ap.Threads)
	keys := make([]string, len(ap.Coefficients))
	i := 0
	for k := range ap.Coefficients {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Coefficients[%s] = %v\n", key, ap.Coefficients[key])
	}
}

// Scale multiplies the named coefficients together, defaulting to one
// so an absent section leaves the form unscaled.
func (ap *AssemblyParameters) Scale() (s float64) {
	s = 1.
	for _, v := range ap.Coefficients {
		s *= v
	}
	return
}
