package blocks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformedRegistry reports an unreadable block registry document.
var ErrMalformedRegistry = errors.New("malformed block registry")

// registryDocument is the on-disk registry schema.
type registryDocument struct {
	Blocks []Block `json:"blocks"`
}

// ParseRegistry parses a block registry from JSON text.
func ParseRegistry(data []byte) (*Set, error) {
	var doc registryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRegistry, err)
	}

	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		if b.InternalName == "" {
			return nil, fmt.Errorf("%w: block %d has no internal name", ErrMalformedRegistry, i)
		}
		if b.ID < 0 || b.Meta < 0 || b.Meta >= MaxMetadata {
			return nil, fmt.Errorf("%w: block %s has id/meta (%d, %d) out of range",
				ErrMalformedRegistry, b.InternalName, b.ID, b.Meta)
		}
	}

	return NewSet(doc.Blocks), nil
}

// LoadRegistry reads and parses a block registry file.
func LoadRegistry(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading block registry: %w", err)
	}
	return ParseRegistry(data)
}
