package formats

import (
	"errors"
	"testing"
)

func TestParseModel_Full(t *testing.T) {
	data := []byte(`{
		"parent": "block/block",
		"textures": {"all": "blocks/stone", "side": "#all"},
		"elements": [
			{
				"from": [0, 0, 0],
				"to": [16, 8, 16],
				"shade": false,
				"rotation": {"origin": [8, 8, 8], "axis": "y", "angle": 45, "rescale": true},
				"faces": {
					"up":    {"texture": "#side", "cullface": "up"},
					"north": {"texture": "#all", "uv": [0, 0, 16, 8], "rotation": 90, "tintindex": 0}
				}
			}
		]
	}`)

	doc, err := ParseModel(data)
	if err != nil {
		t.Fatalf("ParseModel failed: %v", err)
	}

	if doc.Parent != "block/block" {
		t.Errorf("parent = %q", doc.Parent)
	}
	if doc.Textures["side"] != "#all" {
		t.Errorf("textures[side] = %q", doc.Textures["side"])
	}
	if len(doc.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(doc.Elements))
	}

	elem := &doc.Elements[0]
	if elem.To != [3]float32{16, 8, 16} {
		t.Errorf("to = %v", elem.To)
	}
	if elem.Shaded() {
		t.Error("shade=false element reported as shaded")
	}
	if elem.Rotation == nil || elem.Rotation.Axis != "y" || elem.Rotation.Angle != 45 {
		t.Errorf("rotation = %+v", elem.Rotation)
	}
	if !elem.Rotation.Rescale {
		t.Error("rescale flag lost")
	}

	north := elem.Faces["north"]
	if north.UVRect() != [4]float32{0, 0, 16, 8} {
		t.Errorf("north uv = %v", north.UVRect())
	}
	if north.Rotation != 90 {
		t.Errorf("north rotation = %d", north.Rotation)
	}
	if !north.Tinted() {
		t.Error("north face should be tinted")
	}
}

func TestParseModel_Defaults(t *testing.T) {
	data := []byte(`{
		"elements": [
			{"from": [0,0,0], "to": [16,16,16], "faces": {"down": {"texture": "#bottom"}}}
		]
	}`)

	doc, err := ParseModel(data)
	if err != nil {
		t.Fatalf("ParseModel failed: %v", err)
	}

	elem := &doc.Elements[0]
	if !elem.Shaded() {
		t.Error("shade should default to true")
	}

	down := elem.Faces["down"]
	if down.UVRect() != [4]float32{0, 0, 16, 16} {
		t.Errorf("default uv = %v, want full square", down.UVRect())
	}
	if down.Tinted() {
		t.Error("face without tintindex reported as tinted")
	}
	if down.Cullface != "" {
		t.Errorf("cullface = %q", down.Cullface)
	}
}

func TestParseModel_TintindexZeroCountsAsTinted(t *testing.T) {
	data := []byte(`{
		"elements": [
			{"from": [0,0,0], "to": [16,16,16], "faces": {"up": {"texture": "#t", "tintindex": 0}}}
		]
	}`)

	doc, err := ParseModel(data)
	if err != nil {
		t.Fatalf("ParseModel failed: %v", err)
	}
	if !doc.Elements[0].Faces["up"].Tinted() {
		t.Error("tintindex 0 must still trigger tinting")
	}
}

func TestParseModel_Malformed(t *testing.T) {
	_, err := ParseModel([]byte(`{"parent": `))
	if !errors.Is(err, ErrMalformedModel) {
		t.Errorf("expected ErrMalformedModel, got %v", err)
	}
}
