package formats

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Blockstate format errors.
var (
	ErrMalformedBlockstate = errors.New("malformed blockstate document")
	ErrEmptyVariantList    = errors.New("empty variant candidate list")
)

// BlockstateDocument maps variant keys (derived from a block's
// resource variant string) to the model that renders them.
type BlockstateDocument struct {
	Variants map[string]Variant `json:"variants"`
}

// Variant names a model plus an optional rotation around each axis in
// degrees. UVLock and Weight are parsed for format compatibility but
// not interpreted.
type Variant struct {
	Model  string  `json:"model"`
	X      float32 `json:"x,omitempty"`
	Y      float32 `json:"y,omitempty"`
	Z      float32 `json:"z,omitempty"`
	UVLock bool    `json:"uvlock,omitempty"`
	Weight int     `json:"weight,omitempty"`
}

// UnmarshalJSON accepts both the single-object form and the
// candidate-list form of a variant. When a list is given the first
// candidate is used; selection is deterministic, never random.
func (v *Variant) UnmarshalJSON(data []byte) error {
	type plain Variant

	if len(data) > 0 && data[0] == '[' {
		var candidates []plain
		if err := json.Unmarshal(data, &candidates); err != nil {
			return err
		}
		if len(candidates) == 0 {
			return ErrEmptyVariantList
		}
		*v = Variant(candidates[0])
		return nil
	}

	var single plain
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*v = Variant(single)
	return nil
}

// Variant returns the variant for a key, or false if the key is not
// present in the document.
func (d *BlockstateDocument) Variant(key string) (Variant, bool) {
	v, ok := d.Variants[key]
	return v, ok
}

// ParseBlockstate parses a blockstate document from JSON text.
func ParseBlockstate(data []byte) (*BlockstateDocument, error) {
	var doc BlockstateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBlockstate, err)
	}
	return &doc, nil
}
