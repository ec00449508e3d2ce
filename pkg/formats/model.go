// Package formats provides parsers for block appearance description
// documents: block model JSON and blockstate variant JSON.
package formats

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Model format errors.
var (
	ErrMalformedModel = errors.New("malformed model document")
)

// ModelDocument describes a block's visual shape as a set of cuboid
// elements. A document may inherit textures and elements from a
// parent document; resolution of the parent chain happens outside
// this package. Documents are immutable once parsed.
type ModelDocument struct {
	Parent   string            `json:"parent,omitempty"`
	Textures map[string]string `json:"textures,omitempty"`
	Elements []Element         `json:"elements,omitempty"`
}

// Element is one axis-aligned box in the 16-unit model grid.
type Element struct {
	From     [3]float32          `json:"from"`
	To       [3]float32          `json:"to"`
	Rotation *ElementRotation    `json:"rotation,omitempty"`
	Shade    *bool               `json:"shade,omitempty"`
	Faces    map[string]FaceInfo `json:"faces"`
}

// Shaded reports whether the element receives per-face ambient
// shading. Defaults to true when the field is absent.
func (e *Element) Shaded() bool {
	return e.Shade == nil || *e.Shade
}

// ElementRotation rotates an element around an origin point in the
// 16-unit grid. Rescale is accepted for format compatibility but has
// no effect on baked geometry.
type ElementRotation struct {
	Origin  [3]float32 `json:"origin"`
	Axis    string     `json:"axis"`
	Angle   float32    `json:"angle"`
	Rescale bool       `json:"rescale,omitempty"`
}

// FaceInfo describes one face of an element.
type FaceInfo struct {
	Texture   string      `json:"texture"`
	UV        *[4]float32 `json:"uv,omitempty"`
	Cullface  string      `json:"cullface,omitempty"`
	TintIndex *int        `json:"tintindex,omitempty"`
	Rotation  int         `json:"rotation,omitempty"`
}

// UVRect returns the face's UV rectangle in the 0-16 texture domain,
// defaulting to the full square when no rectangle is given.
func (f FaceInfo) UVRect() [4]float32 {
	if f.UV != nil {
		return *f.UV
	}
	return [4]float32{0, 0, 16, 16}
}

// Tinted reports whether the face requests per-block tint coloring.
// The index value itself is not used; presence alone triggers it.
func (f FaceInfo) Tinted() bool {
	return f.TintIndex != nil
}

// ParseModel parses a block model document from JSON text.
func ParseModel(data []byte) (*ModelDocument, error) {
	var doc ModelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedModel, err)
	}
	return &doc, nil
}
