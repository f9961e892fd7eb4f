// This file declares the joint axis conventions a Segment can articulate
// around: one revolute or prismatic degree of freedom per segment.
package rigid

// Axis identifies the single degree of freedom of a segment's joint: a
// rotation about, or a translation along, one of the parent frame's axes.
type Axis int

const (
	// RotationX rotates about the X axis (revolute joint).
	RotationX Axis = iota

	// RotationY rotates about the Y axis (revolute joint).
	RotationY

	// RotationZ rotates about the Z axis (revolute joint).
	RotationZ

	// TranslationX slides along the X axis (prismatic joint).
	TranslationX

	// TranslationY slides along the Y axis (prismatic joint).
	TranslationY

	// TranslationZ slides along the Z axis (prismatic joint).
	TranslationZ
)

// joint returns the joint transformation for the given parameter value:
// an angle in radians for rotations, a displacement for translations.
func (a Axis) joint(param float64) Transform {
	switch a {
	case RotationX:
		return RotateX(param)
	case RotationY:
		return RotateY(param)
	case RotationZ:
		return RotateZ(param)
	case TranslationX:
		return TranslateX(param)
	case TranslationY:
		return TranslateY(param)
	case TranslationZ:
		return TranslateZ(param)
	}

	return Identity()
}

// vector returns the axis direction in the joint's local frame.
func (a Axis) vector() [3]float64 {
	switch a {
	case RotationX, TranslationX:
		return [3]float64{1, 0, 0}
	case RotationY, TranslationY:
		return [3]float64{0, 1, 0}
	default:
		return [3]float64{0, 0, 1}
	}
}

// IsRotation reports whether the axis is revolute.
func (a Axis) IsRotation() bool {
	return a == RotationX || a == RotationY || a == RotationZ
}

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case RotationX:
		return "RotationX"
	case RotationY:
		return "RotationY"
	case RotationZ:
		return "RotationZ"
	case TranslationX:
		return "TranslationX"
	case TranslationY:
		return "TranslationY"
	case TranslationZ:
		return "TranslationZ"
	}

	return "Axis(?)"
}
