package bake

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Rect locates a texture inside the atlas, in atlas-pixel space
// (16 px = 1 texture unit). FrameHeight is the height of a single
// animation frame; for still textures it equals the texture height.
type Rect struct {
	Left        float32 `json:"left"`
	Top         float32 `json:"top"`
	FrameWidth  float32 `json:"frameWidth"`
	FrameHeight float32 `json:"frameHeight"`
}

// AtlasLookup resolves texture names to their atlas rectangles. The
// atlas itself is built externally, after the engine has reported
// which texture names it references.
type AtlasLookup interface {
	Lookup(name string) (Rect, bool)
}

// IndexAtlas is a map-backed AtlasLookup.
type IndexAtlas map[string]Rect

// Lookup returns the rectangle for a texture name.
func (a IndexAtlas) Lookup(name string) (Rect, bool) {
	r, ok := a[name]
	return r, ok
}

// ErrMalformedAtlasIndex reports an unreadable atlas index document.
var ErrMalformedAtlasIndex = errors.New("malformed atlas index")

// atlasIndexDocument is the on-disk index schema.
type atlasIndexDocument struct {
	Textures map[string]Rect `json:"textures"`
}

// ParseAtlasIndex parses an atlas index from JSON text.
func ParseAtlasIndex(data []byte) (IndexAtlas, error) {
	var doc atlasIndexDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAtlasIndex, err)
	}
	return IndexAtlas(doc.Textures), nil
}

// LoadAtlasIndex reads and parses an atlas index file.
func LoadAtlasIndex(path string) (IndexAtlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading atlas index: %w", err)
	}
	return ParseAtlasIndex(data)
}
