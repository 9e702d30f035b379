package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"
	"github.com/notargets/gofea/InputParameters"
)

func TestAssemblyParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
MeshFile: square.su2
Element: TriP2
Form: laplace
QuadratureOrder: 4
Threads: 4
Coefficients:
  kappa: 2.5
  rho: 2.
`)
	var input InputParameters.AssemblyParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Element, "TriP2")
	assert.Equal(t, input.Coefficients["kappa"], 2.5)
	assert.Equal(t, input.Scale(), 5.)
	input.Print()
	assert.Equal(t, input.Threads, 4)
}
