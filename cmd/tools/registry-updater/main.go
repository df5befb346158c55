// cmd/tools/registry-updater/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modalcopy/internal/common/validation"
	"modalcopy/pkg/registry"
)

const defaultRegistryPath = "pkg/registry/operations.json"

var registryPath string

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)

	for _, fs := range []*flag.FlagSet{addCmd, updateCmd, validateCmd, listCmd} {
		fs.StringVar(&registryPath, "path", defaultRegistryPath, "Path to registry file")
	}

	// Add command flags
	idAdd := addCmd.String("id", "", "Operation ID (e.g., generate-copy)")
	displayName := addCmd.String("displayName", "", "Display Name (e.g., Generate Copy)")
	description := addCmd.String("description", "", "Description")
	category := addCmd.String("category", "", "Category (e.g., copywriting)")
	method := addCmd.String("method", "POST", "HTTP method")
	route := addCmd.String("route", "", "HTTP route (e.g., /api/copy/generate)")
	version := addCmd.String("version", "1.0.0", "Version")
	implStatus := addCmd.String("status", "planned", "Implementation Status (planned, in-progress, completed, verified)")
	schemaFile := addCmd.String("schema", "", "Path to a JSON file holding the input schema")

	// Update command flags
	idUpdate := updateCmd.String("id", "", "Operation ID to update")
	field := updateCmd.String("field", "", "Field to update (status, version, etc.)")
	value := updateCmd.String("value", "", "New value for the field")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *idAdd == "" || *displayName == "" || *description == "" || *category == "" || *route == "" {
			fmt.Println("Error: id, displayName, description, category, and route are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		inputSchema := map[string]interface{}{}
		if *schemaFile != "" {
			var err error
			inputSchema, err = readSchema(*schemaFile)
			if err != nil {
				fmt.Printf("Error reading schema: %v\n", err)
				os.Exit(1)
			}
		}
		op := registry.Operation{
			ID:                   *idAdd,
			DisplayName:          *displayName,
			Description:          *description,
			Category:             *category,
			Version:              *version,
			Method:               strings.ToUpper(*method),
			Route:                *route,
			ImplementationStatus: *implStatus,
			InputSchema:          inputSchema,
			ErrorCodes:           []string{},
			Timeout:              "2s",
			Tags:                 []string{},
		}
		if err := addOperation(&op); err != nil {
			fmt.Printf("Error adding operation: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added operation: %s\n", *idAdd)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *idUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: id, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateOperation(*idUpdate, *field, *value); err != nil {
			fmt.Printf("Error updating operation: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated operation %s, field %s to %s\n", *idUpdate, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateRegistry(); err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}

	case "list":
		listCmd.Parse(os.Args[2:])
		if err := listOperations(); err != nil {
			fmt.Printf("Error listing operations: %v\n", err)
			os.Exit(1)
		}

	case "help":
		fallthrough
	default:
		help()
	}
}

func readSchema(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema map[string]interface{}
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", path, err)
	}
	return schema, nil
}

func addOperation(op *registry.Operation) error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		// If file doesn't exist, create new registry
		if os.IsNotExist(err) {
			reg = &registry.OperationRegistry{
				Version:     "1.0.0",
				LastUpdated: time.Now().Format(time.RFC3339),
				Operations:  []registry.Operation{},
			}
		} else {
			return fmt.Errorf("failed to load registry: %w", err)
		}
	}

	if _, exists := reg.Find(op.ID); exists {
		return fmt.Errorf("operation with ID %s already exists", op.ID)
	}

	reg.Operations = append(reg.Operations, *op)
	reg.LastUpdated = time.Now().Format(time.RFC3339)

	if _, err := validation.NewValidator(reg); err != nil {
		return err
	}
	return saveRegistry(reg, registryPath)
}

func updateOperation(id, field, value string) error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	op, found := reg.Find(id)
	if !found {
		return fmt.Errorf("operation with ID %s not found", id)
	}

	switch field {
	case "status":
		op.ImplementationStatus = value
	case "version":
		op.Version = value
	case "displayName":
		op.DisplayName = value
	case "description":
		op.Description = value
	case "category":
		op.Category = value
	case "method":
		op.Method = strings.ToUpper(value)
	case "route":
		op.Route = value
	case "timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout value: %w", err)
		}
		op.Timeout = value
	case "schema":
		schema, err := readSchema(value)
		if err != nil {
			return err
		}
		op.InputSchema = schema
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	if _, err := validation.NewValidator(reg); err != nil {
		return err
	}

	reg.LastUpdated = time.Now().Format(time.RFC3339)
	return saveRegistry(reg, registryPath)
}

func validateRegistry() error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if len(reg.Operations) == 0 {
		return fmt.Errorf("registry contains no operations")
	}

	ids := make(map[string]bool)
	routes := make(map[string]string)
	for _, op := range reg.Operations {
		if op.ID == "" {
			return fmt.Errorf("operation missing required field: ID")
		}
		if ids[op.ID] {
			return fmt.Errorf("duplicate operation ID: %s", op.ID)
		}
		ids[op.ID] = true

		if op.DisplayName == "" {
			return fmt.Errorf("operation %s missing required field: DisplayName", op.ID)
		}
		if op.Route == "" {
			return fmt.Errorf("operation %s missing required field: Route", op.ID)
		}
		if op.Method != "GET" && op.Method != "POST" {
			return fmt.Errorf("operation %s has unsupported method %q", op.ID, op.Method)
		}
		key := op.Method + " " + op.Route
		if other, dup := routes[key]; dup {
			return fmt.Errorf("operations %s and %s share route %s", other, op.ID, key)
		}
		routes[key] = op.ID
		if op.Timeout != "" {
			if _, err := time.ParseDuration(op.Timeout); err != nil {
				return fmt.Errorf("operation %s has invalid timeout: %w", op.ID, err)
			}
		}
	}

	if _, err := validation.NewValidator(reg); err != nil {
		return err
	}

	fmt.Printf("Registry validation passed. Found %d operations.\n", len(reg.Operations))
	return nil
}

func listOperations() error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	for _, op := range reg.Operations {
		fmt.Printf("%-22s %-5s %-28s %s\n", op.ID, op.Method, op.Route, op.ImplementationStatus)
	}
	return nil
}

// saveRegistry handles saving the registry to file
func saveRegistry(reg *registry.OperationRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}

	return nil
}

func help() {
	fmt.Print(`
Usage: registry-updater <command> [flags]

Commands:
  add      Add a new operation to the registry
  update   Update an existing operation's field
  validate Validate the registry file and compile every input schema
  list     Print the operations in the registry
  help     Show this help message

Examples:
  registry-updater add -id browse-symbols -displayName "Browse Symbols" -description "Lists special symbols" -category reference -method GET -route /api/reference/symbols
  registry-updater update -id generate-copy -field schema -value schemas/generate-copy.json
  registry-updater validate -path pkg/registry/operations.json

Use 'registry-updater <command> -h' for more information about a command.
` + "\n")
}
