package vecmath

import "math"

// Mat4 is a column-major-indexed 4x4 matrix, row then column: m[row][col].
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero() Mat4 {
	return Mat4{}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	result := Mat4Zero()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	return v.MulMat(m)
}

// MulPoint transforms a point (w=1) and divides by the resulting w.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec(v.ToVec4(1.0)).ToVec3DivW()
}

// MulDirection transforms a direction (w=0); translation does not affect it.
func (m Mat4) MulDirection(v Vec3) Vec3 {
	return m.MulVec(v.ToVec4(0.0)).ToVec3()
}

func Mat4Translation(t Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = t.X
	m[3][1] = t.Y
	m[3][2] = t.Z
	return m
}

func Mat4RotationX(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationZ(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat4EulerXYZ builds the combined rotation for XYZ Euler order: Rz * Ry * Rx.
func Mat4EulerXYZ(euler Vec3) Mat4 {
	return Mat4RotationZ(euler.Z).Mul(Mat4RotationY(euler.Y)).Mul(Mat4RotationX(euler.X))
}

// Mat4TR composes translation and rotation: T * R, the camera's local-to-world transform.
func Mat4TR(translation Vec3, euler Vec3) Mat4 {
	return Mat4Translation(translation).Mul(Mat4EulerXYZ(euler))
}
