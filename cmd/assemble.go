/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/notargets/gofea/InputParameters"
	"github.com/notargets/gofea/assembly"
	"github.com/notargets/gofea/element"
	"github.com/notargets/gofea/forms"
	"github.com/notargets/gofea/meshio"
	"github.com/notargets/gofea/quadrature"
	"github.com/notargets/gofea/utils"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ModelAssembly struct {
	MeshFile  string
	ParamFile string
	Plot      bool
	Delay     time.Duration
	Profile   string
}

// AssembleCmd represents the assemble command
var AssembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a weak form over a grid file into sparse triplets",
	Long: `
Reads a grid, discretizes it with the chosen element family and
assembles the chosen weak form, reporting operator shape, entry count
and wall time,

gofea assemble -F grid.neu --element TriP2 --form laplace --threads 4`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		ma := &ModelAssembly{}
		if ma.MeshFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			panic(err)
		}
		if ma.ParamFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		ma.Plot, _ = cmd.Flags().GetBool("plot")
		dr, _ := cmd.Flags().GetInt("delay")
		ma.Delay = time.Duration(dr) * time.Millisecond
		ma.Profile, _ = cmd.Flags().GetString("profile")
		ap := processAssemblyInput(cmd, ma)
		RunAssemble(ma, ap)
	},
}

// processAssemblyInput layers the run parameters: config file defaults,
// then the -I YAML file, then explicitly set flags.
func processAssemblyInput(cmd *cobra.Command, ma *ModelAssembly) (ap *InputParameters.AssemblyParameters) {
	var (
		err error
	)
	ap = &InputParameters.AssemblyParameters{
		Title:   "assembly",
		Element: "TriP1",
		Form:    "mass",
		Threads: 1,
	}
	for _, key := range []string{"element", "form", "meshfile"} {
		if viper.IsSet(key) {
			switch key {
			case "element":
				ap.Element = viper.GetString(key)
			case "form":
				ap.Form = viper.GetString(key)
			case "meshfile":
				ap.MeshFile = viper.GetString(key)
			}
		}
	}
	if len(ma.ParamFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(ma.ParamFile); err != nil {
			panic(err)
		}
		if err = ap.Parse(data); err != nil {
			panic(err)
		}
	}
	if len(ma.MeshFile) != 0 {
		ap.MeshFile = ma.MeshFile
	}
	if cmd.Flags().Changed("element") {
		ap.Element, _ = cmd.Flags().GetString("element")
	}
	if cmd.Flags().Changed("form") {
		ap.Form, _ = cmd.Flags().GetString("form")
	}
	if cmd.Flags().Changed("threads") {
		ap.Threads, _ = cmd.Flags().GetInt("threads")
	}
	if cmd.Flags().Changed("order") {
		ap.QuadratureOrder, _ = cmd.Flags().GetInt("order")
	}
	if len(ap.MeshFile) == 0 {
		err = fmt.Errorf("must supply a grid file (-F, --gridFile) in .neu, .su2 or .yaml format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Unit Square"
MeshFile: "square.su2"
Element: TriP2
Form: laplace
QuadratureOrder: 4
Threads: 4
########################################
`
		fmt.Printf("Example parameters file (-I):%s\n", exampleFile)
		os.Exit(1)
	}
	return
}

func RunAssemble(ma *ModelAssembly, ap *InputParameters.AssemblyParameters) {
	switch ma.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		fmt.Printf("error: unknown profile mode %q, want cpu or mem\n", ma.Profile)
		os.Exit(1)
	}
	ap.Print()

	m, err := meshio.Read(ap.MeshFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	elem, err := element.ByName(ap.Element)
	if err != nil {
		fmt.Printf("error: %s\nAvailable elements: %s\n",
			err.Error(), strings.Join(element.Names(), ", "))
		os.Exit(1)
	}
	var rule *quadrature.Rule
	if ap.QuadratureOrder > 0 {
		rule = quadrature.Default(m.Ref, ap.QuadratureOrder)
	}
	b := assembly.NewBasis(m, elem, rule, nil)
	fmt.Printf("%d elements, %d dofs, %d quadrature points per element\n",
		m.NumElements(), b.N, b.Rule.Len())

	start := time.Now()
	switch ap.Form {
	case "mass", "laplace":
		kernel := forms.Mass()
		if ap.Form == "laplace" {
			kernel = forms.Laplace()
		}
		if s := ap.Scale(); s != 1. {
			inner := kernel
			kernel = func(u, v *assembly.DiscreteField, w *assembly.FieldSet) utils.Matrix {
				return inner(u, v, w).Scale(s)
			}
		}
		bf := assembly.BilinearForm{Kernel: kernel, NThreads: ap.Threads}
		A := bf.Assemble(b, b, nil)
		fmt.Printf("%v assembled in %v\n", A, time.Since(start))
	case "load":
		lf := assembly.LinearForm{Kernel: forms.UnitLoad(), NThreads: ap.Threads}
		V := lf.Assemble(b, nil)
		fmt.Printf("load vector over %d dofs (%d entries) assembled in %v\n",
			V.N, len(V.Data), time.Since(start))
	default:
		fmt.Printf("error: unknown form %q, want mass, laplace or load\n", ap.Form)
		os.Exit(1)
	}
	fmt.Println(utils.GetMemUsage())

	if ma.Plot {
		if _, err = meshio.Plot(m); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		utils.SleepFor(int(ma.Delay.Milliseconds()))
	}
}

func init() {
	rootCmd.AddCommand(AssembleCmd)
	AssembleCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in Gambit (.neu), SU2 (.su2) or YAML dict (.yaml) format")
	AssembleCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file of run parameters like:\n\t- Element\n\t- Form\n\t- Threads")
	AssembleCmd.Flags().StringP("element", "e", "TriP1", "element family to discretize with, see gofea info for the list")
	AssembleCmd.Flags().StringP("form", "f", "mass", "weak form to assemble: mass, laplace or load")
	AssembleCmd.Flags().IntP("threads", "t", 1, "goroutines assembling element batches")
	AssembleCmd.Flags().Int("order", 0, "quadrature order override, 0 uses the element default")
	AssembleCmd.Flags().BoolP("plot", "g", false, "display the grid in a chart window (2D triangle grids)")
	AssembleCmd.Flags().IntP("delay", "d", 10000, "milliseconds to keep the plot window up")
	AssembleCmd.Flags().String("profile", "", "write a cpu or mem profile of the run")
}
