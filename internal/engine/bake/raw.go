package bake

import (
	"fmt"

	"github.com/DragonQuiz/mcedit2/pkg/formats"
	"github.com/DragonQuiz/mcedit2/pkg/math"
)

// Rotation is an element-level rotation around an origin point in the
// 16-unit grid. Rescale is carried but has no effect on the baked
// geometry.
type Rotation struct {
	Origin  math.Vec3
	Axis    Axis
	Angle   float32
	Rescale bool
}

// RawQuad carries everything needed to bake one face of one element.
// No vertex positions are computed at this stage; exact geometry is
// deferred to baking so atlas coordinates are applied in one pass.
type RawQuad struct {
	// From and To span the element box in normalized 0-1 space.
	From, To math.Vec3

	// Face is the orientation the quad was declared for.
	Face Face

	// Texture is the resolved concrete texture identifier, used as
	// the atlas lookup key. Never a "#" placeholder.
	Texture string

	// UV is the face's texture rectangle in the 0-16 domain.
	UV [4]float32

	// Cullface is the adjacent-block direction that suppresses this
	// quad, or FaceNone.
	Cullface Face

	// Shade selects per-face ambient shading.
	Shade bool

	// Rotation is the optional element-level rotation.
	Rotation *Rotation

	// TextureRotation rotates the UV assignment in-place, in
	// multiples of 90 degrees.
	TextureRotation int

	// VariantX, VariantY, VariantZ are the blockstate variant
	// rotation angles in degrees.
	VariantX, VariantY, VariantZ float32

	// Tint is the per-block tint RGB, or nil when the face has no
	// tint index.
	Tint *[3]uint8
}

// gridScale converts 16-grid coordinates to normalized box space.
const gridScale = 1.0 / 16.0

// buildElementQuads converts one element into raw quads, one per
// declared face. resolve maps a texture reference to its concrete
// identifier (and may record it as a side effect).
func buildElementQuads(elem *formats.Element, variant formats.Variant, tint [3]uint8,
	resolve func(ref string) (string, error)) ([]RawQuad, error) {

	from := math.Vec3{X: elem.From[0], Y: elem.From[1], Z: elem.From[2]}.Scale(gridScale)
	to := math.Vec3{X: elem.To[0], Y: elem.To[1], Z: elem.To[2]}.Scale(gridScale)

	var rotation *Rotation
	if elem.Rotation != nil {
		axis, err := ParseAxis(elem.Rotation.Axis)
		if err != nil {
			return nil, err
		}
		rotation = &Rotation{
			Origin: math.Vec3{
				X: elem.Rotation.Origin[0],
				Y: elem.Rotation.Origin[1],
				Z: elem.Rotation.Origin[2],
			}.Scale(gridScale),
			Axis:    axis,
			Angle:   elem.Rotation.Angle,
			Rescale: elem.Rotation.Rescale,
		}
	}

	// Validate every declared face name before emitting, then walk
	// faces in canonical order so output is deterministic.
	for faceName := range elem.Faces {
		if _, err := ParseFace(faceName); err != nil {
			return nil, err
		}
	}

	quads := make([]RawQuad, 0, len(elem.Faces))
	for face := FaceNorth; face < faceCount; face++ {
		info, declared := elem.Faces[face.String()]
		if !declared {
			continue
		}

		var err error
		cullface := FaceNone
		if info.Cullface != "" {
			cullface, err = ParseFace(info.Cullface)
			if err != nil {
				return nil, fmt.Errorf("cullface: %w", err)
			}
		}

		texture, err := resolve(info.Texture)
		if err != nil {
			return nil, err
		}

		quad := RawQuad{
			From:            from,
			To:              to,
			Face:            face,
			Texture:         texture,
			UV:              info.UVRect(),
			Cullface:        cullface,
			Shade:           elem.Shaded(),
			Rotation:        rotation,
			TextureRotation: info.Rotation,
			VariantX:        variant.X,
			VariantY:        variant.Y,
			VariantZ:        variant.Z,
		}
		if info.Tinted() {
			t := tint
			quad.Tint = &t
		}
		quads = append(quads, quad)
	}
	return quads, nil
}
