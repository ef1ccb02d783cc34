package config_test

import (
	"fmt"
	"log"

	"github.com/ajitpratap0/rostergen/pkg/config"
)

// ExampleDefault shows the built-in defaults.
func ExampleDefault() {
	cfg := config.Default()

	fmt.Printf("Employees: %d\n", cfg.Generator.Employees)
	fmt.Printf("Seed: %d\n", cfg.Generator.Seed)
	fmt.Printf("Output: %s (%s)\n", cfg.Output.Path, cfg.Output.Format)

	// Output:
	// Employees: 1000
	// Seed: 42
	// Output: commercial_bank_hr_data.csv (csv)
}

// ExampleConfig_Validate shows validation of a modified configuration.
func ExampleConfig_Validate() {
	cfg := config.Default()
	cfg.Generator.Employees = 5000
	cfg.Output.Format = "jsonl"
	cfg.Output.Compression = "zstd"

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	fmt.Println("Configuration is valid!")

	cfg.Output.Format = "xlsx"
	fmt.Println(cfg.Validate())

	// Output:
	// Configuration is valid!
	// config: xlsx output cannot be compressed (compression=zstd)
}
