package cardforge_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/cardforge"
	"github.com/aretw0/cardforge/pkg/adapters/mapping"
	"github.com/aretw0/cardforge/pkg/core"
)

// Example_plan shows which renders a representative run would perform.
func Example_plan() {
	tmpDir, err := os.MkdirTemp("", "cardforge-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := cardforge.DefaultConfig()
	cfg.Mapping = filepath.Join(tmpDir, "mapping.json")
	cfg.OutputDir = "output"

	err = mapping.Save(cfg.Mapping, []core.Note{
		{Name: "C", LocalizedName: "Do", FontChar: "c", StaffPosition: -1.0},
		{Name: "C#", LocalizedName: "Do#", FontChar: "", StaffPosition: -1.0},
		{Name: "D#", LocalizedName: "Ré#", FontChar: "e", StaffPosition: -0.5},
		{Name: "A#²", LocalizedName: "La#²", FontChar: "h", StaffPosition: 1.5},
	})
	if err != nil {
		log.Fatal(err)
	}

	app, err := cardforge.New(cfg, nil)
	if err != nil {
		log.Fatal(err)
	}

	plan := app.Plan(core.ModeRepresentative)
	for _, v := range plan.Variants {
		fmt.Println("base:", v.ID)
	}
	for _, j := range plan.Jobs {
		fmt.Println("relief:", j)
	}
	// Output:
	// base: 12H_AltoC
	// relief: 12H_AltoC/C
	// relief: 12H_AltoC/D#
	// relief: 12H_AltoC/A#²
}
