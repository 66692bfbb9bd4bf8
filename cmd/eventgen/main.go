// cmd/eventgen generates component event-emitter declarations from a Lattice
// component schema. It reads the schema (a JSON file or a CUE package
// directory), synthesizes per-component payload structs, string enums, and
// event method signatures, and writes EventEmitters.h to the output
// directory.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/latticeui/eventgen/internal/emitter"
	"github.com/latticeui/eventgen/internal/schema"
)

var (
	schemaPath         string
	outDir             string
	libraryName        string
	namespace          string
	nullablePrimitives bool
)

var rootCmd = &cobra.Command{
	Use:   "eventgen",
	Short: "Generate Lattice event-emitter declarations from a component schema",
	Long: `eventgen is the build-time generator for Lattice component events.

It reads a declarative component schema and emits one C++ header with a
per-component event-emitter class: nested payload structs, string enums with
reverse string lookup, and one method declaration per event.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&schemaPath, "schema", "", "component schema: a .json file or a CUE package directory")
	rootCmd.Flags().StringVar(&outDir, "out", "gen", "output directory")
	rootCmd.Flags().StringVar(&libraryName, "library", "", "library name recorded in the generated banner")
	rootCmd.Flags().StringVar(&namespace, "namespace", emitter.DefaultNamespace, "namespace wrapping the generated declarations")
	rootCmd.Flags().BoolVar(&nullablePrimitives, "nullable-primitives", false, "wrap primitive payload fields in std::optional")
	rootCmd.MarkFlagRequired("schema")
}

func run(cmd *cobra.Command, args []string) error {
	s, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}

	files, err := emitter.Generate(s, emitter.Options{
		LibraryName:        libraryName,
		Namespace:          namespace,
		NullablePrimitives: nullablePrimitives,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Printf("wrote %s", path)
	}
	return nil
}

func loadSchema(path string) (schema.Schema, error) {
	info, err := os.Stat(path)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("schema %s: %w", path, err)
	}
	if info.IsDir() {
		return schema.LoadCUE(path)
	}
	if strings.HasSuffix(path, ".json") {
		return schema.LoadJSON(path)
	}
	return schema.Schema{}, fmt.Errorf("schema %s: expected a .json file or a CUE package directory", path)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("eventgen: ")
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
