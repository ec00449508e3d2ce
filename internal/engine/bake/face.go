// Package bake compiles block model descriptions into flat,
// atlas-mapped quad geometry cached per block name+state and per
// (block-id, metadata) pair.
package bake

import (
	"errors"
	"fmt"

	"github.com/DragonQuiz/mcedit2/pkg/math"
)

// Identity errors.
var (
	ErrUnknownFace = errors.New("unknown face")
	ErrUnknownAxis = errors.New("unknown rotation axis")
)

// Face identifies one of the six cuboid face orientations.
// North is -Z, east is +X, up is +Y.
type Face int8

// FaceNone marks an absent face reference (no cullface).
const FaceNone Face = -1

const (
	FaceNorth Face = iota
	FaceSouth
	FaceEast
	FaceWest
	FaceUp
	FaceDown
	faceCount
)

var faceNames = [faceCount]string{"north", "south", "east", "west", "up", "down"}

// ParseFace maps a face name from a model document to its identity.
func ParseFace(name string) (Face, error) {
	for f, n := range faceNames {
		if n == name {
			return Face(f), nil
		}
	}
	return FaceNone, fmt.Errorf("%w: %q", ErrUnknownFace, name)
}

// String returns the document-format face name.
func (f Face) String() string {
	if f < 0 || f >= faceCount {
		return fmt.Sprintf("face(%d)", int8(f))
	}
	return faceNames[f]
}

// Direction returns the outward unit vector of the face.
func (f Face) Direction() math.Vec3 {
	switch f {
	case FaceNorth:
		return math.Vec3{Z: -1}
	case FaceSouth:
		return math.Vec3{Z: 1}
	case FaceEast:
		return math.Vec3{X: 1}
	case FaceWest:
		return math.Vec3{X: -1}
	case FaceUp:
		return math.Vec3{Y: 1}
	case FaceDown:
		return math.Vec3{Y: -1}
	}
	return math.Vec3{}
}

// faceShades holds the fixed ambient shade byte per face orientation.
var faceShades = [faceCount]uint8{
	FaceNorth: 0x99,
	FaceSouth: 0x99,
	FaceEast:  0xCC,
	FaceWest:  0xCC,
	FaceUp:    0xFF,
	FaceDown:  0x77,
}

// ShadeByte returns the ambient shade applied to shaded quads of this
// orientation.
func (f Face) ShadeByte() uint8 {
	return faceShades[f]
}

// Axis identifies a rotation axis.
type Axis int8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	axisCount
)

var axisNames = [axisCount]string{"x", "y", "z"}

// ParseAxis maps an axis name from a model document to its identity.
func ParseAxis(name string) (Axis, error) {
	for a, n := range axisNames {
		if n == name {
			return Axis(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
}

// String returns the document-format axis name.
func (a Axis) String() string {
	if a < 0 || a >= axisCount {
		return fmt.Sprintf("axis(%d)", int8(a))
	}
	return axisNames[a]
}

// Vector returns the unit vector of the axis.
func (a Axis) Vector() math.Vec3 {
	switch a {
	case AxisX:
		return math.Vec3{X: 1}
	case AxisY:
		return math.Vec3{Y: 1}
	case AxisZ:
		return math.Vec3{Z: 1}
	}
	return math.Vec3{}
}

// rotationCycles lists, per axis, the 4-face cycle stepped through
// when a variant rotation is applied. Faces not in the cycle (the two
// parallel to the axis) are left unchanged. The Z cycle follows the
// legacy table (Up -> North -> Down -> South) even though it names
// faces outside the geometric X/Y plane; cullface behavior depends on
// this table staying as-is.
var rotationCycles = [axisCount][4]Face{
	AxisX: {FaceUp, FaceSouth, FaceDown, FaceNorth},
	AxisY: {FaceNorth, FaceEast, FaceSouth, FaceWest},
	AxisZ: {FaceUp, FaceNorth, FaceDown, FaceSouth},
}

// Rotated returns the face identity after rotating by the given angle
// around an axis. The angle is interpreted in 90-degree steps through
// the axis cycle; faces parallel to the axis are unchanged.
func (f Face) Rotated(axis Axis, degrees float32) Face {
	steps := int(degrees/90) % 4
	if steps < 0 {
		steps += 4
	}
	if steps == 0 {
		return f
	}

	cycle := rotationCycles[axis]
	for i, c := range cycle {
		if c == f {
			return cycle[(i+steps)%4]
		}
	}
	return f
}

// corners returns the four vertex positions of a face of the box
// spanned by min and max, in the canonical winding order (counter-
// clockwise viewed from outside, starting at the face's lower-left
// corner). UV corners attach to these positions index by index.
func (f Face) corners(min, max math.Vec3) [4]math.Vec3 {
	x1, y1, z1 := min.X, min.Y, min.Z
	x2, y2, z2 := max.X, max.Y, max.Z

	switch f {
	case FaceNorth:
		return [4]math.Vec3{
			{X: x2, Y: y1, Z: z1},
			{X: x1, Y: y1, Z: z1},
			{X: x1, Y: y2, Z: z1},
			{X: x2, Y: y2, Z: z1},
		}
	case FaceSouth:
		return [4]math.Vec3{
			{X: x1, Y: y1, Z: z2},
			{X: x2, Y: y1, Z: z2},
			{X: x2, Y: y2, Z: z2},
			{X: x1, Y: y2, Z: z2},
		}
	case FaceEast:
		return [4]math.Vec3{
			{X: x2, Y: y1, Z: z2},
			{X: x2, Y: y1, Z: z1},
			{X: x2, Y: y2, Z: z1},
			{X: x2, Y: y2, Z: z2},
		}
	case FaceWest:
		return [4]math.Vec3{
			{X: x1, Y: y1, Z: z1},
			{X: x1, Y: y1, Z: z2},
			{X: x1, Y: y2, Z: z2},
			{X: x1, Y: y2, Z: z1},
		}
	case FaceUp:
		return [4]math.Vec3{
			{X: x1, Y: y2, Z: z2},
			{X: x2, Y: y2, Z: z2},
			{X: x2, Y: y2, Z: z1},
			{X: x1, Y: y2, Z: z1},
		}
	case FaceDown:
		return [4]math.Vec3{
			{X: x1, Y: y1, Z: z1},
			{X: x2, Y: y1, Z: z1},
			{X: x2, Y: y1, Z: z2},
			{X: x1, Y: y1, Z: z2},
		}
	}
	return [4]math.Vec3{}
}
