// This file implements the 4×4 homogeneous rigid-body transform that Segment
// uses as its pose representation.
package rigid

import "math"

// Transform is a 4×4 homogeneous rigid-body transformation stored row-major.
// The upper-left 3×3 block is the rotation, the right column the translation,
// and the bottom row is always (0, 0, 0, 1).
//
// Transform is a value type: every operation returns a new value and no
// method mutates its receiver.
type Transform [16]float64

// Identity returns the neutral transformation.
func Identity() Transform {
	return Transform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a pure translation by (x, y, z).
func Translate(x, y, z float64) Transform {
	return Transform{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// TranslateX returns a translation by d along the X axis.
func TranslateX(d float64) Transform { return Translate(d, 0, 0) }

// TranslateY returns a translation by d along the Y axis.
func TranslateY(d float64) Transform { return Translate(0, d, 0) }

// TranslateZ returns a translation by d along the Z axis.
func TranslateZ(d float64) Transform { return Translate(0, 0, d) }

// RotateX returns a rotation by angle (radians) about the X axis.
func RotateX(angle float64) Transform {
	s, c := math.Sincos(angle)

	return Transform{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation by angle (radians) about the Y axis.
func RotateY(angle float64) Transform {
	s, c := math.Sincos(angle)

	return Transform{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation by angle (radians) about the Z axis.
func RotateZ(angle float64) Transform {
	s, c := math.Sincos(angle)

	return Transform{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns t·o: the transformation that applies o first, then t.
func (t Transform) Mul(o Transform) Transform {
	var out Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += t[i*4+k] * o[k*4+j]
			}
			out[i*4+j] = sum
		}
	}

	return out
}

// Apply maps the point p through the transformation.
func (t Transform) Apply(p [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = t[i*4]*p[0] + t[i*4+1]*p[1] + t[i*4+2]*p[2] + t[i*4+3]
	}

	return out
}

// Rotate maps the direction d through the rotation part only; translation
// does not apply to directions.
func (t Transform) Rotate(d [3]float64) [3]float64 {
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = t[i*4]*d[0] + t[i*4+1]*d[1] + t[i*4+2]*d[2]
	}

	return out
}

// Position returns the translation part: the image of the origin.
func (t Transform) Position() [3]float64 {
	return [3]float64{t[3], t[7], t[11]}
}

// Invert returns the rigid-body inverse: rotation transposed, translation
// mapped to −Rᵀ·t. Valid only because the upper 3×3 block is orthonormal;
// no general 4×4 inversion is performed.
func (t Transform) Invert() Transform {
	var out Transform
	// Transpose the rotation block.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*4+j] = t[j*4+i]
		}
	}
	// Translation: −Rᵀ·t.
	for i := 0; i < 3; i++ {
		out[i*4+3] = -(out[i*4]*t[3] + out[i*4+1]*t[7] + out[i*4+2]*t[11])
	}
	out[15] = 1

	return out
}

// AlmostEqual reports whether every entry of t and o differs by at most eps.
func (t Transform) AlmostEqual(o Transform, eps float64) bool {
	for i := range t {
		if math.Abs(t[i]-o[i]) > eps {
			return false
		}
	}

	return true
}

// cross returns a × b.
func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
