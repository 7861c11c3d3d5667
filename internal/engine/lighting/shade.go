package lighting

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultShininess is the specular exponent used by the scene material.
const DefaultShininess = 8.0

// DefaultAlphaThreshold is the cut-out transparency threshold: fragments
// whose sampled alpha falls below it are discarded.
const DefaultAlphaThreshold = 0.1

// ShadeDirectional returns the directional light contribution for a
// surface point with the given unit normal and unit view direction.
// A zero light direction (the night state) contributes ambient only.
func ShadeDirectional(light DirectionalLight, normal, viewDir, surfaceColor mgl32.Vec3, shininess float32) mgl32.Vec3 {
	ambient := mulComponents(light.Ambient, surfaceColor)
	if light.Direction.Len() == 0 {
		return ambient
	}

	lightDir := light.Direction.Normalize()

	diff := max32(normal.Dot(lightDir.Mul(-1)), 0)

	reflectDir := reflect(lightDir, normal)
	spec := pow32(max32(viewDir.Dot(reflectDir), 0), shininess)

	diffuse := mulComponents(light.Diffuse.Mul(diff), surfaceColor)
	specular := mulComponents(light.Specular.Mul(spec), surfaceColor)

	return ambient.Add(diffuse).Add(specular)
}

// ShadeSpot returns the spotlight contribution for a surface point,
// including distance attenuation and the smooth cone falloff between the
// inner and outer cutoff angles.
func ShadeSpot(light SpotLight, normal, fragPos, viewDir, surfaceColor mgl32.Vec3, shininess float32) mgl32.Vec3 {
	toLight := light.Position.Sub(fragPos)
	distance := toLight.Len()
	if distance == 0 {
		return mgl32.Vec3{}
	}
	lightDir := toLight.Mul(1 / distance)

	diff := max32(normal.Dot(lightDir), 0)

	reflectDir := reflect(lightDir.Mul(-1), normal)
	spec := pow32(max32(viewDir.Dot(reflectDir), 0), shininess)

	attenuation := 1 / (light.Constant + light.Linear*distance + light.Quadratic*distance*distance)

	// Both cutoffs are cosines, so larger theta means closer to the axis.
	theta := lightDir.Dot(light.Direction.Normalize().Mul(-1))
	intensity := clamp32((theta-light.OuterCutOff)/(light.CutOff-light.OuterCutOff), 0, 1)

	scale := attenuation * intensity
	ambient := mulComponents(light.Ambient, surfaceColor).Mul(scale)
	diffuse := mulComponents(light.Diffuse.Mul(diff), surfaceColor).Mul(scale)
	specular := mulComponents(light.Specular.Mul(spec), surfaceColor).Mul(scale)

	return ambient.Add(diffuse).Add(specular)
}

// ConeIntensity returns the spotlight cone factor for a cosine theta
// between the fragment-to-light direction and the spot axis.
func (l SpotLight) ConeIntensity(theta float32) float32 {
	return clamp32((theta-l.OuterCutOff)/(l.CutOff-l.OuterCutOff), 0, 1)
}

// Shade composes the full fragment color: alpha cut-out first, then the
// directional contribution plus the spotlight when it is switched on.
// The second return value is false when the fragment is discarded.
func Shade(dir DirectionalLight, spot SpotLight, spotOn bool,
	normal, fragPos, viewPos mgl32.Vec3, surface mgl32.Vec4,
	shininess, alphaThreshold float32) (mgl32.Vec3, bool) {

	if surface.W() < alphaThreshold {
		return mgl32.Vec3{}, false
	}

	surfaceColor := surface.Vec3()
	viewDir := viewPos.Sub(fragPos).Normalize()

	result := ShadeDirectional(dir, normal, viewDir, surfaceColor, shininess)
	if spotOn {
		result = result.Add(ShadeSpot(spot, normal, fragPos, viewDir, surfaceColor, shininess))
	}
	return result, true
}

// reflect mirrors the GLSL built-in: i is the incident vector, n the
// surface normal, both assumed normalized.
func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

func mulComponents(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func pow32(base, exp float32) float32 {
	return float32(gomath.Pow(float64(base), float64(exp)))
}
