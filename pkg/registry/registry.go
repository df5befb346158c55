// pkg/registry/registry.go
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

//go:embed operations.json
var builtinRegistry []byte

// LoadRegistry reads a registry file from disk.
func LoadRegistry(path string) (*OperationRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Builtin returns the registry compiled into the binary.
func Builtin() (*OperationRegistry, error) {
	return Parse(builtinRegistry)
}

// Load returns the registry at path, or the builtin one when path is empty.
func Load(path string) (*OperationRegistry, error) {
	if path == "" {
		return Builtin()
	}
	return LoadRegistry(path)
}

func Parse(data []byte) (*OperationRegistry, error) {
	var reg OperationRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	return &reg, nil
}

// Find looks up an operation by id.
func (r *OperationRegistry) Find(id string) (*Operation, bool) {
	for i := range r.Operations {
		if r.Operations[i].ID == id {
			return &r.Operations[i], true
		}
	}
	return nil, false
}

// TimeoutFor parses the operation timeout, returning fallback when unset or malformed.
func (r *OperationRegistry) TimeoutFor(id string, fallback time.Duration) time.Duration {
	op, ok := r.Find(id)
	if !ok || op.Timeout == "" {
		return fallback
	}
	d, err := time.ParseDuration(op.Timeout)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
