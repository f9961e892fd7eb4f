// This file implements Segment, the rigid-body payload carried by every
// tree node: one link transform, one joint axis, and an optional effector
// tip. Segment satisfies the forward and jacobian payload capabilities.
package rigid

// Segment is one rigid link of an articulated body. link places the joint
// pivot in the parent frame; axis is the joint's single degree of freedom,
// applied after link; tip, when present, marks an effector point in the
// segment's own frame.
type Segment struct {
	link   Transform
	axis   Axis
	tip    Transform
	hasTip bool
}

// SegmentOption configures optional Segment features.
type SegmentOption func(*Segment)

// WithEffector marks the segment as an effector: tip is the effector point's
// transform in the segment frame. Use Identity() for the joint origin itself.
func WithEffector(tip Transform) SegmentOption {
	return func(s *Segment) {
		s.tip = tip
		s.hasTip = true
	}
}

// NewSegment builds a segment whose joint pivot sits at link in the parent
// frame and articulates around axis.
func NewSegment(link Transform, axis Axis, opts ...SegmentOption) Segment {
	s := Segment{link: link, axis: axis}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Axis returns the segment's joint axis.
func (s Segment) Axis() Axis { return s.axis }

// IsEffector reports whether the segment carries an effector tip.
func (s Segment) IsEffector() bool { return s.hasTip }

// LocalTransform returns the segment-to-parent transformation for the joint
// state params[joint]: the fixed link offset followed by the joint motion.
func (s Segment) LocalTransform(params []float64, joint int) Transform {
	return s.link.Mul(s.axis.joint(params[joint]))
}

// Compose concatenates two transformations, local applied first.
func (s Segment) Compose(parent, local Transform) Transform {
	return parent.Mul(local)
}

// Identity returns the neutral transformation.
func (s Segment) Identity() Transform {
	return Identity()
}

// EffectorSize returns the number of scalar outputs this segment contributes
// as an effector: 3 (a world position) when a tip is set, 0 otherwise.
func (s Segment) EffectorSize() int {
	if s.hasTip {
		return 3
	}

	return 0
}

// WriteEffector writes the tip's world position into dst, given the
// segment's pose in the root frame. dst has EffectorSize() elements.
func (s Segment) WriteEffector(pose Transform, dst []float64) {
	p := pose.Mul(s.tip).Position()
	dst[0], dst[1], dst[2] = p[0], p[1], p[2]
}

// WritePartialDerivative writes ∂(tip world position)/∂(joint parameter)
// into dst, for this segment's effector and the given joint segment.
//
// Revolute joints use the standard geometric column
//
//	axis_world × (tip_world − pivot_world)
//
// with axis_world the joint axis rotated into the root frame and pivot_world
// the joint pose's translation. Prismatic joints contribute axis_world
// directly: a unit displacement along the axis moves every descendant by
// exactly that direction.
func (s Segment) WritePartialDerivative(pose Transform, joint Segment, jointPose Transform, dst []float64) {
	axisWorld := jointPose.Rotate(joint.axis.vector())

	if !joint.axis.IsRotation() {
		dst[0], dst[1], dst[2] = axisWorld[0], axisWorld[1], axisWorld[2]

		return
	}

	tipWorld := pose.Mul(s.tip).Position()
	pivot := jointPose.Position()
	lever := [3]float64{tipWorld[0] - pivot[0], tipWorld[1] - pivot[1], tipWorld[2] - pivot[2]}

	d := cross(axisWorld, lever)
	dst[0], dst[1], dst[2] = d[0], d[1], d[2]
}
