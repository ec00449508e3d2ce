package bake

import (
	"github.com/DragonQuiz/mcedit2/pkg/math"
)

// CookedVertex is one corner of a baked quad: position in block
// space, UV in atlas-pixel space, and a packed RGBA color.
type CookedVertex struct {
	X, Y, Z float32
	U, V    float32
	Color   uint32
}

// CookedQuad is the packed render-ready form of one quad. Immutable
// after baking.
type CookedQuad struct {
	Vertices [4]CookedVertex
	// Cullface is the (variant-rotated) adjacent-block direction
	// that suppresses the quad, or FaceNone.
	Cullface Face
}

// CullDirection returns the unit direction of the cullface, and
// whether the quad has one.
func (q *CookedQuad) CullDirection() (math.Vec3, bool) {
	if q.Cullface == FaceNone {
		return math.Vec3{}, false
	}
	return q.Cullface.Direction(), true
}

// packColor packs RGB channels with full alpha, little-endian RGBA.
func packColor(r, g, b uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | 0xFF<<24
}

// cookQuad bakes one raw quad against its atlas rectangle.
//
// The arithmetic here mirrors the established baking conventions
// exactly; in particular:
//   - FrameHeight scales the UV rectangle on both axes. Animated
//     textures stack square frames vertically, so frame height is
//     the side length of one frame.
//   - Face/cullface identity rotates in order Z, X, Y with the raw
//     angles, while vertex positions rotate in order Y, X, Z with
//     negated angles. The asymmetry is required for culling to stay
//     correct under rotated variants.
func cookQuad(q *RawQuad, rect Rect) CookedQuad {
	// Map the 0-16 UV rectangle into atlas pixels. The vertical
	// axis flips: atlas origin is top-left, model UV origin is
	// bottom-left.
	scale := rect.FrameHeight / 16
	u1 := rect.Left + q.UV[0]*scale
	u2 := rect.Left + q.UV[2]*scale
	v1 := rect.Top + rect.FrameHeight - q.UV[1]*scale
	v2 := v1 - (q.UV[3]-q.UV[1])*scale

	// Canonical winding positions with UV corners attached, the UV
	// cycle optionally pre-rotated for in-place texture rotation.
	positions := q.Face.corners(q.From, q.To)
	uvCorners := [4][2]float32{{u1, v1}, {u2, v1}, {u2, v2}, {u1, v2}}
	uvShift := (q.TextureRotation / 90) % 4
	if uvShift < 0 {
		uvShift += 4
	}

	// Rotate the emitted face and cullface identities.
	face := q.Face
	cullface := q.Cullface
	for _, step := range [3]struct {
		axis    Axis
		degrees float32
	}{
		{AxisZ, q.VariantZ},
		{AxisX, q.VariantX},
		{AxisY, q.VariantY},
	} {
		if step.degrees == 0 {
			continue
		}
		face = face.Rotated(step.axis, step.degrees)
		if cullface != FaceNone {
			cullface = cullface.Rotated(step.axis, step.degrees)
		}
	}

	// Per-vertex color from the rotated face's shade byte.
	shade := uint8(0xFF)
	if q.Shade {
		shade = face.ShadeByte()
	}
	r, g, b := shade, shade, shade
	if q.Tint != nil {
		r = uint8(uint16(q.Tint[0]) * uint16(shade) / 256)
		g = uint8(uint16(q.Tint[1]) * uint16(shade) / 256)
		b = uint8(uint16(q.Tint[2]) * uint16(shade) / 256)
	}
	color := packColor(r, g, b)

	var elemRot math.Mat3
	if q.Rotation != nil {
		elemRot = math.AxisAngle(q.Rotation.Axis.Vector(), math.Radians(q.Rotation.Angle))
	}

	// Variant rotation about the block center composes Y, then X,
	// then Z, each with the negated angle.
	rotateVariant := q.VariantX != 0 || q.VariantY != 0 || q.VariantZ != 0
	variantRot := math.Identity3()
	if q.VariantY != 0 {
		variantRot = math.RotateY3(math.Radians(-q.VariantY)).Mul(variantRot)
	}
	if q.VariantX != 0 {
		variantRot = math.RotateX3(math.Radians(-q.VariantX)).Mul(variantRot)
	}
	if q.VariantZ != 0 {
		variantRot = math.RotateZ3(math.Radians(-q.VariantZ)).Mul(variantRot)
	}
	center := math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}

	var cooked CookedQuad
	cooked.Cullface = cullface
	for i := 0; i < 4; i++ {
		pos := positions[i]

		// Element-level rotation about its origin point.
		if q.Rotation != nil {
			pos = elemRot.Apply(pos.Sub(q.Rotation.Origin)).Add(q.Rotation.Origin)
		}

		if rotateVariant {
			pos = variantRot.Apply(pos.Sub(center)).Add(center)
		}

		uv := uvCorners[(i+uvShift)%4]
		cooked.Vertices[i] = CookedVertex{
			X: pos.X, Y: pos.Y, Z: pos.Z,
			U: uv[0], V: uv[1],
			Color: color,
		}
	}
	return cooked
}
