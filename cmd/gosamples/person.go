package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jchmurny/gosamples/internal/person"
)

// personCmd loads and validates a person record from a file.
var personCmd = &cobra.Command{
	Use:   "person <file>",
	Short: "Load a person record from a JSON or YAML file",
	Long: `Parse a person record from a JSON or YAML file, validate the
required fields and the birth date format, and print the result.

Example:
  gosamples person testdata/person.json
  gosamples person testdata/person.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPerson,
}

func init() {
	rootCmd.AddCommand(personCmd)
}

func runPerson(cmd *cobra.Command, args []string) error {
	p, err := person.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Println(p)
	return nil
}
