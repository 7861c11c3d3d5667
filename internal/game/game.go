// Package game implements the main viewer loop, tying input, camera,
// lighting and the scene together.
package game

import (
	"fmt"
	gomath "math"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/dusklight/grovewalk/internal/config"
	"github.com/dusklight/grovewalk/internal/engine/audio"
	"github.com/dusklight/grovewalk/internal/engine/camera"
	"github.com/dusklight/grovewalk/internal/engine/input"
	"github.com/dusklight/grovewalk/internal/engine/lighting"
	"github.com/dusklight/grovewalk/internal/engine/scene"
	"github.com/dusklight/grovewalk/internal/engine/window"
	"github.com/dusklight/grovewalk/internal/logger"
)

// Field of view and clip planes for the projection matrix.
const (
	fovDegrees = 45.0
	nearPlane  = 0.1
	farPlane   = 200.0
)

// Game owns all per-session state: the window, input, camera, lights,
// scene and audio. There are no package-level globals; the loop is the
// single writer of everything here.
type Game struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	scene  *scene.Scene
	cam    *camera.Camera
	audio  *audio.Manager

	sun        lighting.DirectionalLight
	flashlight lighting.SpotLight

	flashlightOn bool

	width  int
	height int
}

// New creates a new viewer instance.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{
		cfg:    cfg,
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	// Window first: it owns the OpenGL context everything else needs.
	var err error
	g.window, err = window.New(window.Config{
		Title:      "grovewalk",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := gl.Init(); err != nil {
		g.window.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	g.scene, err = scene.New(cfg.Assets)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	g.cam = camera.New(mgl32.Vec3{0, 0, 3})
	g.cam.MouseSensitivity = cfg.Controls.MouseSensitivity

	g.sun = lighting.NewSun()
	g.flashlight = lighting.NewFlashlight()

	g.input = input.New()
	g.window.CaptureMouse(true)

	g.audio = audio.New(cfg.Audio.MasterVolume, cfg.Audio.Muted)
	if err := g.audio.Init(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
	} else {
		g.audio.PlayAmbient(filepath.Join(cfg.Assets.Dir, cfg.Assets.AmbientTrack))
		g.audio.LoadFootstep(filepath.Join(cfg.Assets.Dir, cfg.Assets.FootstepSFX))
	}

	logger.Info("viewer initialized")
	return g, nil
}

// Run drives the frame loop until quit.
func (g *Game) Run() error {
	g.running = true

	start := time.Now()
	lastFrame := start
	frameCount := 0
	fpsTimer := start

	logger.Info("starting frame loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		elapsed := float32(now.Sub(start).Seconds())
		lastFrame = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()
		g.update(dt, elapsed)
		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if g.cfg.Graphics.ShowFPS {
				g.window.SetTitle(fmt.Sprintf("grovewalk — %d fps", frameCount))
			}
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents processes edge events: quit, resize and toggles.
func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.width = event.Width
			g.height = event.Height
			gl.Viewport(0, 0, int32(event.Width), int32(event.Height))

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_F:
				g.flashlightOn = !g.flashlightOn
				logger.Debug("flashlight toggled", zap.Bool("on", g.flashlightOn))
			}
		}
	}
}

// update applies held keys and mouse movement to the camera and
// advances the lights.
func (g *Game) update(dt, elapsed float32) {
	// Run while shift is held, walk otherwise.
	if g.input.IsKeyDown(sdl.SCANCODE_LSHIFT) {
		g.cam.SpeedUp()
	} else {
		g.cam.SlowDown()
	}

	moving := false
	if g.input.IsKeyDown(sdl.SCANCODE_W) {
		g.cam.ProcessMovement(camera.Forward, dt, elapsed)
		moving = true
	}
	if g.input.IsKeyDown(sdl.SCANCODE_S) {
		g.cam.ProcessMovement(camera.Backward, dt, elapsed)
		moving = true
	}
	if g.input.IsKeyDown(sdl.SCANCODE_A) {
		g.cam.ProcessMovement(camera.Left, dt, elapsed)
		moving = true
	}
	if g.input.IsKeyDown(sdl.SCANCODE_D) {
		g.cam.ProcessMovement(camera.Right, dt, elapsed)
		moving = true
	}

	if moving {
		// One step per bobbing bounce.
		interval := time.Duration(float64(gomath.Pi/g.cam.BobbingSpeed) * float64(time.Second))
		g.audio.Footstep(interval)
	}

	dx, dy := g.input.MouseDelta()
	if dx != 0 || dy != 0 {
		// SDL reports y down; the camera wants y up.
		yoff := -dy
		if g.cfg.Controls.InvertY {
			yoff = dy
		}
		g.cam.ProcessMouseMovement(dx, yoff, true)
	}

	g.sun.Advance(elapsed)
	g.flashlight.Position = g.cam.Position
	g.flashlight.Direction = g.cam.Front
}

// render draws the frame.
func (g *Game) render() {
	aspect := float32(g.width) / float32(g.height)
	projection := mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, nearPlane, farPlane)
	view := g.cam.ViewMatrix()

	g.scene.Render(projection, view, g.cam.Position, g.sun, g.flashlight, g.flashlightOn)
}

// Close cleans up all resources.
func (g *Game) Close() {
	logger.Info("closing viewer")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
}
