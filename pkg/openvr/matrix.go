package openvr

// HmdMatrix34 is the vendor row-major 3x4 affine transform.
type HmdMatrix34 [3][4]float32

// HmdMatrix44 is the vendor row-major 4x4 matrix.
type HmdMatrix44 [4][4]float32

// Mat4 is a column-major 4x4 matrix, laid out the way GPU APIs expect:
// element (row r, column c) lives at index c*4+r.
type Mat4 [16]float32

// At returns element (row, col).
func (m Mat4) At(row, col int) float32 { return m[col*4+row] }

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4 converts the vendor row-major matrix to column-major form.
func (m HmdMatrix44) Mat4() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r][c]
		}
	}
	return out
}

// Mat4 converts the vendor 3x4 affine transform to a full column-major
// matrix with an identity bottom row.
func (m HmdMatrix34) Mat4() Mat4 {
	out := Identity()
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r][c]
		}
	}
	return out
}

// Translation returns the translation column of the transform.
func (m HmdMatrix34) Translation() [3]float32 {
	return [3]float32{m[0][3], m[1][3], m[2][3]}
}
