package math

import "math"

// Mat3 is a 3x3 matrix in column-major order.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
type Mat3 [9]float32

// Identity3 returns an identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// AxisAngle creates a rotation matrix around an arbitrary axis
// (Rodrigues form). axis should be normalized, angle is in radians.
func AxisAngle(axis Vec3, angle float32) Mat3 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	t := 1 - c

	x, y, z := axis.X, axis.Y, axis.Z

	return Mat3{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c,
	}
}

// RotateX3 returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX3(angle float32) Mat3 {
	return AxisAngle(Vec3{X: 1}, angle)
}

// RotateY3 returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY3(angle float32) Mat3 {
	return AxisAngle(Vec3{Y: 1}, angle)
}

// RotateZ3 returns a rotation matrix around the Z axis.
// angle is in radians.
func RotateZ3(angle float32) Mat3 {
	return AxisAngle(Vec3{Z: 1}, angle)
}

// Mul multiplies this matrix by another (m * other).
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			result[col*3+row] =
				m[0*3+row]*other[col*3+0] +
					m[1*3+row]*other[col*3+1] +
					m[2*3+row]*other[col*3+2]
		}
	}
	return result
}

// Apply transforms a vector by this matrix.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}
