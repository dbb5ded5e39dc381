package openvr

import "testing"

func TestHmdMatrix44ToMat4Transposes(t *testing.T) {
	// Row-major input: element (r, c) = r*10 + c.
	var in HmdMatrix44
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			in[r][c] = float32(r*10 + c)
		}
	}

	out := in.Mat4()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if got := out.At(r, c); got != in[r][c] {
				t.Fatalf("At(%d,%d) = %v, want %v", r, c, got, in[r][c])
			}
		}
	}
}

func TestHmdMatrix34ToMat4BottomRow(t *testing.T) {
	in := HmdMatrix34{
		{1, 0, 0, 10},
		{0, 1, 0, 20},
		{0, 0, 1, 30},
	}

	out := in.Mat4()
	for c := 0; c < 4; c++ {
		want := float32(0)
		if c == 3 {
			want = 1
		}
		if got := out.At(3, c); got != want {
			t.Fatalf("bottom row At(3,%d) = %v, want %v", c, got, want)
		}
	}

	// Translation lands in the last column.
	if out.At(0, 3) != 10 || out.At(1, 3) != 20 || out.At(2, 3) != 30 {
		t.Fatalf("translation column wrong: %v %v %v", out.At(0, 3), out.At(1, 3), out.At(2, 3))
	}

	if tr := in.Translation(); tr != [3]float32{10, 20, 30} {
		t.Fatalf("Translation() = %v", tr)
	}
}

func TestIdentity(t *testing.T) {
	id := Identity()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := float32(0)
			if r == c {
				want = 1
			}
			if id.At(r, c) != want {
				t.Fatalf("Identity At(%d,%d) = %v", r, c, id.At(r, c))
			}
		}
	}
}
