package rigid_test

import (
	"math"
	"testing"

	"github.com/mtreyden/armature/rigid"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got [3]float64, eps float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], eps, "component %d", i)
	}
}

// TestTransform_Rotations checks the axis conventions against hand values.
func TestTransform_Rotations(t *testing.T) {
	assertVec(t, [3]float64{0, 1, 0}, rigid.RotateZ(math.Pi/2).Apply([3]float64{1, 0, 0}), 1e-12)
	assertVec(t, [3]float64{0, 0, 1}, rigid.RotateX(math.Pi/2).Apply([3]float64{0, 1, 0}), 1e-12)
	assertVec(t, [3]float64{1, 0, 0}, rigid.RotateY(math.Pi/2).Apply([3]float64{0, 0, 1}), 1e-12)

	// A full turn is the identity.
	assert.True(t, rigid.RotateZ(2*math.Pi).AlmostEqual(rigid.Identity(), 1e-12))
}

// TestTransform_Translations checks the translation constructors and
// Position.
func TestTransform_Translations(t *testing.T) {
	assertVec(t, [3]float64{1, 2, 3}, rigid.Translate(1, 2, 3).Position(), 0)
	assertVec(t, [3]float64{5, 0, 0}, rigid.TranslateX(5).Position(), 0)
	assertVec(t, [3]float64{0, 5, 0}, rigid.TranslateY(5).Position(), 0)
	assertVec(t, [3]float64{0, 0, 5}, rigid.TranslateZ(5).Position(), 0)
}

// TestTransform_Compose verifies Mul applies its right operand first:
// translate-then-rotate differs from rotate-then-translate.
func TestTransform_Compose(t *testing.T) {
	rotate := rigid.RotateZ(math.Pi / 2)
	translate := rigid.TranslateX(10)

	// Rotation applied last spins the translated point around the origin.
	assertVec(t, [3]float64{0, 10, 0}, rotate.Mul(translate).Position(), 1e-12)

	// Translation applied last shifts the rotated frame.
	assertVec(t, [3]float64{10, 0, 0}, translate.Mul(rotate).Position(), 1e-12)
}

// TestTransform_Rotate maps directions without translation.
func TestTransform_Rotate(t *testing.T) {
	moved := rigid.Translate(3, 4, 5).Mul(rigid.RotateZ(math.Pi / 2))

	assertVec(t, [3]float64{0, 1, 0}, moved.Rotate([3]float64{1, 0, 0}), 1e-12)
}

// TestTransform_Invert checks the rigid-body inverse round trip.
func TestTransform_Invert(t *testing.T) {
	pose := rigid.Translate(3, -4, 5).Mul(rigid.RotateY(0.7)).Mul(rigid.RotateZ(-1.2))

	assert.True(t, pose.Mul(pose.Invert()).AlmostEqual(rigid.Identity(), 1e-12))
	assert.True(t, pose.Invert().Mul(pose).AlmostEqual(rigid.Identity(), 1e-12))
}

// TestTransform_AlmostEqual exercises the tolerance boundary.
func TestTransform_AlmostEqual(t *testing.T) {
	a := rigid.Identity()
	b := rigid.Translate(1e-9, 0, 0)

	assert.True(t, a.AlmostEqual(b, 1e-8))
	assert.False(t, a.AlmostEqual(b, 1e-10))
}

// TestAxis_Properties covers the enum helpers.
func TestAxis_Properties(t *testing.T) {
	assert.True(t, rigid.RotationX.IsRotation())
	assert.True(t, rigid.RotationZ.IsRotation())
	assert.False(t, rigid.TranslationY.IsRotation())

	assert.Equal(t, "RotationZ", rigid.RotationZ.String())
	assert.Equal(t, "TranslationX", rigid.TranslationX.String())
}
