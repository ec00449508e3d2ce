package bake

import (
	"errors"
	"testing"

	"github.com/DragonQuiz/mcedit2/pkg/math"
)

func TestParseFace(t *testing.T) {
	for face := FaceNorth; face < faceCount; face++ {
		parsed, err := ParseFace(face.String())
		if err != nil {
			t.Fatalf("ParseFace(%q) failed: %v", face, err)
		}
		if parsed != face {
			t.Errorf("ParseFace(%q) = %v", face, parsed)
		}
	}

	_, err := ParseFace("sideways")
	if !errors.Is(err, ErrUnknownFace) {
		t.Errorf("expected ErrUnknownFace, got %v", err)
	}
}

func TestParseAxis(t *testing.T) {
	for _, name := range []string{"x", "y", "z"} {
		axis, err := ParseAxis(name)
		if err != nil {
			t.Fatalf("ParseAxis(%q) failed: %v", name, err)
		}
		if axis.String() != name {
			t.Errorf("ParseAxis(%q).String() = %q", name, axis)
		}
	}

	_, err := ParseAxis("w")
	if !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("expected ErrUnknownAxis, got %v", err)
	}
}

func TestFace_Rotated(t *testing.T) {
	tests := []struct {
		face    Face
		axis    Axis
		degrees float32
		want    Face
	}{
		{FaceUp, AxisZ, 90, FaceNorth},
		{FaceNorth, AxisZ, 90, FaceDown},
		{FaceUp, AxisZ, 180, FaceDown},
		{FaceUp, AxisZ, 270, FaceSouth},
		{FaceUp, AxisZ, 360, FaceUp},
		{FaceUp, AxisZ, 0, FaceUp},
		// Faces parallel to the axis are unchanged.
		{FaceEast, AxisZ, 90, FaceEast},
		{FaceWest, AxisZ, 270, FaceWest},
		{FaceNorth, AxisY, 90, FaceEast},
		{FaceEast, AxisY, 90, FaceSouth},
		{FaceUp, AxisY, 90, FaceUp},
		{FaceUp, AxisX, 90, FaceSouth},
		{FaceEast, AxisX, 180, FaceEast},
	}

	for _, tc := range tests {
		got := tc.face.Rotated(tc.axis, tc.degrees)
		if got != tc.want {
			t.Errorf("%v rotated %v about %v = %v, want %v",
				tc.face, tc.degrees, tc.axis, got, tc.want)
		}
	}
}

func TestFace_ShadeByte(t *testing.T) {
	tests := []struct {
		face Face
		want uint8
	}{
		{FaceNorth, 0x99},
		{FaceSouth, 0x99},
		{FaceEast, 0xCC},
		{FaceWest, 0xCC},
		{FaceUp, 0xFF},
		{FaceDown, 0x77},
	}

	for _, tc := range tests {
		if got := tc.face.ShadeByte(); got != tc.want {
			t.Errorf("%v.ShadeByte() = %#x, want %#x", tc.face, got, tc.want)
		}
	}
}

func TestFace_CornersWinding(t *testing.T) {
	// Every face's canonical winding must be counter-clockwise
	// viewed from outside: the winding normal must match the face
	// direction.
	min := math.Vec3{}
	max := math.Vec3{X: 1, Y: 1, Z: 1}

	for face := FaceNorth; face < faceCount; face++ {
		c := face.corners(min, max)
		normal := c[1].Sub(c[0]).Cross(c[2].Sub(c[0])).Normalize()
		want := face.Direction()
		if normal.Sub(want).Length() > 1e-5 {
			t.Errorf("%v winding normal = %v, want %v", face, normal, want)
		}
	}
}

func TestFace_CornersOnFacePlane(t *testing.T) {
	min := math.Vec3{X: 0.25, Y: 0, Z: 0.25}
	max := math.Vec3{X: 0.75, Y: 0.5, Z: 0.75}

	for face := FaceNorth; face < faceCount; face++ {
		for _, corner := range face.corners(min, max) {
			var got, want float32
			switch face {
			case FaceNorth:
				got, want = corner.Z, min.Z
			case FaceSouth:
				got, want = corner.Z, max.Z
			case FaceWest:
				got, want = corner.X, min.X
			case FaceEast:
				got, want = corner.X, max.X
			case FaceDown:
				got, want = corner.Y, min.Y
			case FaceUp:
				got, want = corner.Y, max.Y
			}
			if got != want {
				t.Errorf("%v corner %v off the face plane", face, corner)
			}
		}
	}
}
