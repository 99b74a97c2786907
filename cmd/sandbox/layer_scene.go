package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove/engine/config"
	"github.com/hubastard/grove/engine/core"
	"github.com/hubastard/grove/engine/input"
	"github.com/hubastard/grove/engine/scene"
	"github.com/kataras/golog"
)

// pixels per world unit in the top-down map view
const mapScale = 40

// SceneLayer flies through the cube grid with an FPS camera, or looks down
// on it with an orthographic map camera. Tab switches between the two.
type SceneLayer struct {
	fps    *scene.FPSController
	ortho  *scene.OrthoController2D
	mapped bool
	paused bool // focus lost; the cursor stays free until focus returns

	// top-down: world XZ onto screen XY, height squashed into the depth range
	mapModel mgl32.Mat4
}

func NewSceneLayer(cc config.CameraConfig) *SceneLayer {
	cam := scene.NewFPSCamera(mgl32.Vec3{0, 1, 8}, -90, 0)
	cam.SetZoom(cc.FOV)
	fps := scene.NewFPSController(cam)
	fps.Speed = cc.Speed
	fps.Sensitivity = cc.Sensitivity
	fps.ConstrainPitch = cc.ConstrainPitch

	return &SceneLayer{
		fps:      fps,
		mapModel: mgl32.Scale3D(mapScale, mapScale, 0.1).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(90))),
	}
}

func (l *SceneLayer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.fps.Camera.SetViewportPixels(w, h)
	l.ortho = scene.NewOrthoController2D(scene.NewOrtho2D(w, h))
}

func (l *SceneLayer) OnDetach(e *core.Engine) {}

func (l *SceneLayer) OnInput(e *core.Engine) bool {
	in := e.Input
	if in.IsKeyPressed(input.KeyEscape) {
		in.RequestQuit()
		return true
	}
	if ev, ok := in.WindowEvent(input.WindowSizeChanged); ok && ev.Data1 > 0 && ev.Data2 > 0 {
		l.fps.Camera.SetViewportPixels(int(ev.Data1), int(ev.Data2))
		l.ortho.Camera.SetViewportPixels(int(ev.Data1), int(ev.Data2))
	}
	if in.HasWindowEvent(input.WindowFocusLost) {
		l.paused = true
	}
	if l.paused && (in.HasWindowEvent(input.WindowFocusGained) || in.IsButtonPressed(input.ButtonLeft)) {
		l.paused = false
	}
	if in.IsKeyPressed(input.KeyTab) {
		l.mapped = !l.mapped
		golog.Debugf("map view: %t", l.mapped)
	}
	if in.IsKeyPressed(input.KeyP) {
		l.fps.TogglePitchConstraint()
		golog.Infof("pitch constrained: %t", l.fps.ConstrainPitch)
	}

	if l.mapped || l.paused {
		in.ReleaseMouse()
	}
	if l.mapped {
		return l.ortho.HandleInput(in)
	}
	if !l.paused {
		l.fps.HandleInput(in)
	}
	return false
}

func (l *SceneLayer) OnUpdate(e *core.Engine, dt float64) {
	if l.mapped {
		l.ortho.Update(e.Input, float32(dt))
		return
	}
	l.fps.Update(e.Input, float32(dt))
}

func (l *SceneLayer) OnRender(e *core.Engine, alpha float64) {
	if l.mapped {
		e.Renderer.DrawScene(l.ortho.Camera.ViewProjection().Mul4(l.mapModel))
		return
	}
	e.Renderer.DrawScene(l.fps.Camera.ViewProjection())
}
