package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func vecNear(t *testing.T, got, want mgl32.Vec3, label string) {
	t.Helper()
	if got.Sub(want).Len() > epsilon {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func TestShadeDirectionalStraightDown(t *testing.T) {
	// Light straight down onto an up-facing surface, viewer straight
	// above: diffuse and specular factors are both exactly 1.
	light := DirectionalLight{
		Direction: mgl32.Vec3{0, -1, 0},
		Ambient:   mgl32.Vec3{0.5, 0.5, 0.5},
		Diffuse:   mgl32.Vec3{0.5, 0.5, 0.5},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
	}
	normal := mgl32.Vec3{0, 1, 0}
	viewDir := mgl32.Vec3{0, 1, 0}
	surface := mgl32.Vec3{1, 1, 1}

	got := ShadeDirectional(light, normal, viewDir, surface, 8)
	vecNear(t, got, mgl32.Vec3{1.5, 1.5, 1.5}, "ShadeDirectional")
}

func TestShadeDirectionalGrazing(t *testing.T) {
	// Light parallel to the surface: no diffuse, no specular.
	light := DirectionalLight{
		Direction: mgl32.Vec3{1, 0, 0},
		Ambient:   mgl32.Vec3{0.1, 0.1, 0.1},
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Specular:  mgl32.Vec3{1, 1, 1},
	}
	got := ShadeDirectional(light, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1}, 8)
	vecNear(t, got, mgl32.Vec3{0.1, 0.1, 0.1}, "grazing light")
}

func TestShadeDirectionalNight(t *testing.T) {
	// Zero direction (night): only ambient survives, whatever the
	// frozen diffuse/specular colors say.
	light := DirectionalLight{
		Direction: mgl32.Vec3{},
		Ambient:   mgl32.Vec3{0.01, 0.01, 0.01},
		Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
		Specular:  mgl32.Vec3{0.4, 0.4, 0.4},
	}
	got := ShadeDirectional(light, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1}, 8)
	vecNear(t, got, mgl32.Vec3{0.01, 0.01, 0.01}, "night shading")
}

func TestConeIntensityEndpoints(t *testing.T) {
	spot := NewFlashlight()

	if got := spot.ConeIntensity(spot.OuterCutOff); got != 0 {
		t.Errorf("intensity at outer cutoff = %v, want 0", got)
	}
	if got := spot.ConeIntensity(spot.CutOff); got != 1 {
		t.Errorf("intensity at inner cutoff = %v, want 1", got)
	}

	// Linear in between.
	mid := (spot.CutOff + spot.OuterCutOff) / 2
	if got := spot.ConeIntensity(mid); absf(got-0.5) > epsilon {
		t.Errorf("intensity at midpoint = %v, want 0.5", got)
	}
	quarter := spot.OuterCutOff + (spot.CutOff-spot.OuterCutOff)*0.25
	if got := spot.ConeIntensity(quarter); absf(got-0.25) > epsilon {
		t.Errorf("intensity at quarter = %v, want 0.25", got)
	}

	// Clamped outside the penumbra.
	if got := spot.ConeIntensity(1); got != 1 {
		t.Errorf("intensity inside cone = %v, want 1", got)
	}
	if got := spot.ConeIntensity(-1); got != 0 {
		t.Errorf("intensity behind light = %v, want 0", got)
	}
}

func TestShadeSpotAttenuation(t *testing.T) {
	spot := NewFlashlight()
	spot.Position = mgl32.Vec3{0, 2, 0}
	spot.Direction = mgl32.Vec3{0, -1, 0}

	normal := mgl32.Vec3{0, 1, 0}
	viewDir := mgl32.Vec3{0, 1, 0}
	surface := mgl32.Vec3{1, 1, 1}

	nearPoint := ShadeSpot(spot, normal, mgl32.Vec3{0, 0, 0}, viewDir, surface, 8)

	spot.Position = mgl32.Vec3{0, 10, 0}
	farPoint := ShadeSpot(spot, normal, mgl32.Vec3{0, 0, 0}, viewDir, surface, 8)

	if farPoint.X() >= nearPoint.X() {
		t.Errorf("expected attenuation: near %v, far %v", nearPoint, farPoint)
	}

	// On-axis fragment straight below the light at distance 2:
	// diffuse = specular = 1, intensity = 1.
	spot.Position = mgl32.Vec3{0, 2, 0}
	d := float32(2)
	att := 1 / (spot.Constant + spot.Linear*d + spot.Quadratic*d*d)
	want := (1 + 1) * att // diffuse + specular terms; ambient is zero
	if absf(nearPoint.X()-want) > epsilon {
		t.Errorf("on-axis spot = %v, want %v", nearPoint.X(), want)
	}
}

func TestShadeSpotOutsideCone(t *testing.T) {
	spot := NewFlashlight()
	spot.Position = mgl32.Vec3{0, 2, 0}
	spot.Direction = mgl32.Vec3{0, 0, -1} // aimed away from the fragment below

	got := ShadeSpot(spot, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1}, 8)
	vecNear(t, got, mgl32.Vec3{}, "spot outside cone")
}

func TestShadeAlphaDiscard(t *testing.T) {
	dir := NewSun()
	spot := NewFlashlight()

	surface := mgl32.Vec4{1, 1, 1, 0.05}
	_, kept := Shade(dir, spot, true,
		mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0},
		surface, DefaultShininess, DefaultAlphaThreshold)
	if kept {
		t.Error("fragment with alpha 0.05 should be discarded")
	}

	surface = mgl32.Vec4{1, 1, 1, 0.1}
	_, kept = Shade(dir, spot, false,
		mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0},
		surface, DefaultShininess, DefaultAlphaThreshold)
	if !kept {
		t.Error("fragment with alpha exactly at threshold should be kept")
	}
}

func TestShadeSpotToggle(t *testing.T) {
	dir := NewSun()
	spot := NewFlashlight()
	spot.Position = mgl32.Vec3{0, 2, 0}
	spot.Direction = mgl32.Vec3{0, -1, 0}

	normal := mgl32.Vec3{0, 1, 0}
	fragPos := mgl32.Vec3{0, 0, 0}
	viewPos := mgl32.Vec3{0, 3, 0}
	surface := mgl32.Vec4{1, 1, 1, 1}

	off, _ := Shade(dir, spot, false, normal, fragPos, viewPos, surface, DefaultShininess, DefaultAlphaThreshold)
	on, _ := Shade(dir, spot, true, normal, fragPos, viewPos, surface, DefaultShininess, DefaultAlphaThreshold)

	if on.X() <= off.X() {
		t.Errorf("flashlight on (%v) should be brighter than off (%v)", on, off)
	}

	spotOnly := ShadeSpot(spot, normal, fragPos, viewPos.Sub(fragPos).Normalize(), surface.Vec3(), DefaultShininess)
	vecNear(t, on.Sub(off), spotOnly, "spot contribution")
}

func TestAdvanceDayNight(t *testing.T) {
	sun := NewSun()

	// t = 5π: sin(t/10) = 1, full noon.
	noon := float32(5 * 3.14159265358979)
	sun.Advance(noon)
	if absf(sun.Diffuse.X()-0.5) > 1e-4 {
		t.Errorf("noon diffuse = %v, want 0.5", sun.Diffuse.X())
	}
	if absf(sun.Specular.X()-0.5) > 1e-4 {
		t.Errorf("noon specular = %v, want 0.5", sun.Specular.X())
	}
	if sun.Direction.Y() > -0.99 {
		t.Errorf("noon direction = %v, want pointing down", sun.Direction)
	}

	// t = 15π: sin(t/10) = -1, night. Direction zeroes out but the
	// colors keep their last daytime values.
	lastDiffuse := sun.Diffuse
	night := float32(15 * 3.14159265358979)
	sun.Advance(night)
	if sun.Direction.Len() != 0 {
		t.Errorf("night direction = %v, want zero", sun.Direction)
	}
	vecNear(t, sun.Diffuse, lastDiffuse, "night diffuse (frozen)")
}

func TestAdvanceSweepsSunArc(t *testing.T) {
	sun := NewSun()

	var prevX float32
	first := true
	// Morning through noon: direction x runs from ~-1 toward +1 as the
	// arc sweeps.
	for elapsed := float32(0.5); elapsed < 31; elapsed += 3 {
		sun.Advance(elapsed)
		s := sin32(elapsed / 10)
		if s <= 0 {
			continue
		}
		if !first && sun.Direction.X() <= prevX {
			t.Fatalf("elapsed=%v: sun arc not sweeping, x %v <= %v", elapsed, sun.Direction.X(), prevX)
		}
		prevX = sun.Direction.X()
		first = false
	}
}
