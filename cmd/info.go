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

	"github.com/notargets/gofea/element"
	"github.com/notargets/gofea/meshio"
	"github.com/spf13/cobra"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print mesh statistics for a grid file",
	Long: `
Reads a grid and prints cell type, entity counts, bounding box and any
named boundaries and subdomains,

gofea info -F grid.neu`,
	Run: func(cmd *cobra.Command, args []string) {
		gridFile, err := cmd.Flags().GetString("gridFile")
		if err != nil {
			panic(err)
		}
		if len(gridFile) == 0 {
			fmt.Printf("error: must supply a grid file (-F, --gridFile)\n")
			fmt.Printf("Available elements: %s\n", strings.Join(element.Names(), ", "))
			os.Exit(1)
		}
		m, err := meshio.Read(gridFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		m.PrintStatistics()
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	InfoCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in Gambit (.neu), SU2 (.su2) or YAML dict (.yaml) format")
}
