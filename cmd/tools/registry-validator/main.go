// registry-validator maintains the tool registry document: it verifies
// structural completeness and can exercise a tool's input schema against a
// sample argument payload.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"mortgage-prequal/pkg/registry"
)

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	validatePath := validateCmd.String("path", "configs/tool-registry.json", "Path to registry file")

	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listPath := listCmd.String("path", "configs/tool-registry.json", "Path to registry file")

	checkCmd := flag.NewFlagSet("check-input", flag.ExitOnError)
	checkPath := checkCmd.String("path", "configs/tool-registry.json", "Path to registry file")
	checkTool := checkCmd.String("tool", "", "Tool name to check against")
	checkArgs := checkCmd.String("args", "{}", "JSON argument object to validate")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		reg := load(*validatePath)
		if err := reg.Validate(); err != nil {
			fmt.Printf("Registry invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registry valid: %d tools\n", len(reg.Tools))

	case "list":
		listCmd.Parse(os.Args[2:])
		reg := load(*listPath)
		for _, t := range reg.Tools {
			fmt.Printf("%-28s %-12s %s\n", t.Name, t.Category, t.DisplayName)
		}

	case "check-input":
		checkCmd.Parse(os.Args[2:])
		if *checkTool == "" {
			fmt.Println("Error: -tool is required for check-input.")
			checkCmd.Usage()
			os.Exit(1)
		}
		reg := load(*checkPath)
		tool, ok := reg.Find(*checkTool)
		if !ok {
			fmt.Printf("Tool %q not found in registry\n", *checkTool)
			os.Exit(1)
		}
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(*checkArgs), &args); err != nil {
			fmt.Printf("Invalid -args JSON: %v\n", err)
			os.Exit(1)
		}
		if err := tool.ValidateInput(args); err != nil {
			fmt.Printf("Input rejected: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Input matches schema")

	default:
		help()
		os.Exit(1)
	}
}

func load(path string) *registry.ToolRegistry {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		fmt.Printf("Failed to load registry: %v\n", err)
		os.Exit(1)
	}
	return reg
}

func help() {
	fmt.Println("Usage: registry-validator <command> [flags]")
	fmt.Println("Commands:")
	fmt.Println("  validate     Verify the registry document is complete")
	fmt.Println("  list         Print the registered tools")
	fmt.Println("  check-input  Validate a JSON argument object against a tool's input schema")
}
