// Package lighting provides the light types and the Phong shading model
// used by the grove scene. The shading functions here are the CPU
// reference for the fragment shader in internal/engine/scene/shaders;
// both must compute identical results.
package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// DirectionalLight is a light with uniform direction, like the sun.
// Direction and colors are recomputed each frame by Advance.
type DirectionalLight struct {
	Direction mgl32.Vec3

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// SpotLight is a cone light attached to the viewer (the flashlight).
// CutOff and OuterCutOff hold the cosine of the inner/outer half-angle,
// so the shader compares against dot products without an arccos.
type SpotLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3

	CutOff      float32
	OuterCutOff float32

	Constant  float32
	Linear    float32
	Quadratic float32

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// NewSun returns the directional light with its dawn starting values.
// Advance overwrites direction and diffuse/specular over time.
func NewSun() DirectionalLight {
	return DirectionalLight{
		Direction: mgl32.Vec3{-0.2, -1.0, -0.3},
		Ambient:   mgl32.Vec3{0.01, 0.01, 0.01},
		Diffuse:   mgl32.Vec3{0.5, 0.5, 0.5},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
	}
}

// NewFlashlight returns the viewer spotlight. Position and Direction are
// copied from the camera each frame.
func NewFlashlight() SpotLight {
	return SpotLight{
		CutOff:      cosDeg(12.5),
		OuterCutOff: cosDeg(15.0),
		Constant:    1.0,
		Linear:      0.09,
		Quadratic:   0.032,
		Ambient:     mgl32.Vec3{0, 0, 0},
		Diffuse:     mgl32.Vec3{1, 1, 1},
		Specular:    mgl32.Vec3{1, 1, 1},
	}
}

// Advance updates the sun for the day/night cycle at the given session
// time in seconds. During the day the sun sweeps an arc and its intensity
// follows sin(t/10); at night the direction collapses to zero, which
// disables directional shading. Diffuse/specular keep their last daytime
// values at night.
func (l *DirectionalLight) Advance(elapsed float32) {
	s := sin32(elapsed / 10)
	c := cos32(elapsed / 10)
	if s > 0 {
		l.Diffuse = mgl32.Vec3{0.5 * s, 0.5 * s, 0.5 * s}
		l.Specular = mgl32.Vec3{0.5 * s, 0.5 * s, 0.5 * s}
		l.Direction = mgl32.Vec3{-c, -s, -1 + c}
	} else {
		l.Direction = mgl32.Vec3{0, 0, 0}
	}
}

func cosDeg(deg float64) float32 {
	return float32(gomath.Cos(deg * gomath.Pi / 180))
}

func sin32(x float32) float32 { return float32(gomath.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(gomath.Cos(float64(x))) }
