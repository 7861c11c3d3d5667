// Package camera provides the first-person camera for the grove viewer.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement is an abstract movement direction, decoupled from the
// windowing system's key codes.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// Default camera values.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 5.0
	DefaultSensitivity = 0.001

	// Walk bobbing parameters. SpeedUp scales these for the run preset.
	DefaultBobbingSize  = 0.125
	DefaultBobbingSpeed = 5.0

	// The walkable area is a fixed square centered on the origin.
	boundary = 74.0

	// Run preset multipliers.
	runSpeedFactor   = 2.5
	runBobSizeFactor = 1.3
)

// Camera is a first-person camera driven by yaw/pitch Euler angles.
// Front, Right and Up are derived from Yaw/Pitch and WorldUp; they are
// recomputed on every orientation change and must not be set directly.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Euler angles, degrees
	Yaw   float32
	Pitch float32

	// Tuning
	MovementSpeed    float32
	MouseSensitivity float32

	// Bobbing state
	BobbingSize     float32
	BobbingSpeed    float32
	previousBobbing mgl32.Vec3
}

// New creates a camera at the given position with default orientation.
func New(position mgl32.Vec3) *Camera {
	return NewWithOrientation(position, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)
}

// NewWithOrientation creates a camera with an explicit world-up vector
// and initial yaw/pitch in degrees.
func NewWithOrientation(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          worldUp,
		Yaw:              yaw,
		Pitch:            pitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		BobbingSize:      DefaultBobbingSize,
		BobbingSpeed:     DefaultBobbingSpeed,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the look-at transform for the current camera state.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessMovement moves the camera along its basis vectors. deltaTime is
// the frame time in seconds; elapsed is total session time in seconds and
// drives the footstep bobbing so that tests can feed synthetic clocks.
//
// The bobbing delta is added for Forward/Right and subtracted for
// Backward/Left.
func (c *Camera) ProcessMovement(direction Movement, deltaTime, elapsed float32) {
	velocity := c.MovementSpeed * deltaTime

	cosBobbing := cos32(elapsed*c.BobbingSpeed) * c.BobbingSize
	sinBobbing := abs32(sin32(elapsed*c.BobbingSpeed) * c.BobbingSize)
	yawRad := mgl32.DegToRad(c.Yaw)
	bobbing := mgl32.Vec3{
		cosBobbing * sin32(yawRad),
		sinBobbing,
		(1 - cosBobbing) * cos32(yawRad),
	}
	deltaBobbing := c.previousBobbing.Sub(bobbing)
	c.previousBobbing = bobbing

	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity)).Add(deltaBobbing)
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity)).Sub(deltaBobbing)
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity)).Sub(deltaBobbing)
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity)).Add(deltaBobbing)
	}

	// Keep the viewer inside the walled square.
	if c.Position.X() > boundary {
		c.Position[0] = boundary
	}
	if c.Position.X() < -boundary {
		c.Position[0] = -boundary
	}
	if c.Position.Z() > boundary {
		c.Position[2] = boundary
	}
	if c.Position.Z() < -boundary {
		c.Position[2] = -boundary
	}

	// Ground height is 0; the eye rides on the bobbing offset alone.
	c.Position[1] = c.previousBobbing.Y()
}

// ProcessMouseMovement applies pointer deltas to yaw and pitch.
// Offsets are raw pixel-space values; sensitivity scaling happens here.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.MouseSensitivity
	yoffset *= c.MouseSensitivity

	c.Yaw += xoffset
	c.Pitch += yoffset

	// Keep pitch away from ±90 so Front never aligns with WorldUp,
	// which would flip the screen and degenerate the basis.
	if constrainPitch {
		if c.Pitch > 89.0 {
			c.Pitch = 89.0
		}
		if c.Pitch < -89.0 {
			c.Pitch = -89.0
		}
	}

	c.updateVectors()
}

// SpeedUp switches movement and bobbing to the run preset.
func (c *Camera) SpeedUp() {
	c.MovementSpeed = DefaultSpeed * runSpeedFactor
	c.BobbingSpeed = DefaultBobbingSpeed * runSpeedFactor
	c.BobbingSize = DefaultBobbingSize * runBobSizeFactor
}

// SlowDown restores the walk preset.
func (c *Camera) SlowDown() {
	c.MovementSpeed = DefaultSpeed
	c.BobbingSpeed = DefaultBobbingSpeed
	c.BobbingSize = DefaultBobbingSize
}

// Bobbing returns the last computed bobbing offset.
func (c *Camera) Bobbing() mgl32.Vec3 {
	return c.previousBobbing
}

// updateVectors recomputes Front, Right and Up from the Euler angles.
func (c *Camera) updateVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		cos32(yawRad) * cos32(pitchRad),
		sin32(pitchRad),
		sin32(yawRad) * cos32(pitchRad),
	}
	c.Front = front.Normalize()
	// Renormalize both: their length shrinks as the camera pitches
	// toward vertical, which would slow movement.
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

func sin32(x float32) float32 { return float32(gomath.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(gomath.Cos(float64(x))) }
func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
