package bake

import (
	"errors"
	"testing"
)

func TestParseAtlasIndex(t *testing.T) {
	data := []byte(`{
		"textures": {
			"blocks/stone": {"left": 0, "top": 0, "frameWidth": 16, "frameHeight": 16},
			"blocks/water_still": {"left": 16, "top": 0, "frameWidth": 16, "frameHeight": 512}
		}
	}`)

	atlas, err := ParseAtlasIndex(data)
	if err != nil {
		t.Fatalf("ParseAtlasIndex failed: %v", err)
	}

	rect, ok := atlas.Lookup("blocks/water_still")
	if !ok {
		t.Fatal("water_still missing")
	}
	if rect.FrameHeight != 512 {
		t.Errorf("frameHeight = %v", rect.FrameHeight)
	}

	if _, ok := atlas.Lookup("blocks/unknown"); ok {
		t.Error("unknown texture should not resolve")
	}
}

func TestParseAtlasIndex_Malformed(t *testing.T) {
	_, err := ParseAtlasIndex([]byte(`[]`))
	if !errors.Is(err, ErrMalformedAtlasIndex) {
		t.Errorf("expected ErrMalformedAtlasIndex, got %v", err)
	}
}
