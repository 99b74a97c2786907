package scene

import "github.com/hubastard/grove/engine/input"

// OrthoController2D: WASD pan, Q/E rotate, mouse wheel zoom.
type OrthoController2D struct {
	MoveSpeed float32
	RotSpeed  float32
	ZoomSpeed float32
	Camera    *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{
		MoveSpeed: 200,
		RotSpeed:  2.0,
		ZoomSpeed: 1.2,
		Camera:    cam,
	}
}

// Update applies held keys; safe to call on every fixed tick.
func (cc *OrthoController2D) Update(in *input.Tracker, dt float32) {
	speed := cc.MoveSpeed * dt / cc.Camera.Zoom
	rot := cc.RotSpeed * dt

	if in.IsKeyHeld(input.KeyW) {
		cc.Camera.Move(0, speed)
	}
	if in.IsKeyHeld(input.KeyS) {
		cc.Camera.Move(0, -speed)
	}
	if in.IsKeyHeld(input.KeyA) {
		cc.Camera.Move(-speed, 0)
	}
	if in.IsKeyHeld(input.KeyD) {
		cc.Camera.Move(speed, 0)
	}
	if in.IsKeyHeld(input.KeyQ) {
		cc.Camera.Rotate(rot)
	}
	if in.IsKeyHeld(input.KeyE) {
		cc.Camera.Rotate(-rot)
	}
}

// HandleInput consumes this frame's scroll; call once per frame.
func (cc *OrthoController2D) HandleInput(in *input.Tracker) bool {
	if !in.HasScrolled() || in.YScroll() == 0 {
		return false
	}
	if in.YScroll() > 0 {
		cc.Camera.SetZoom(cc.Camera.Zoom * cc.ZoomSpeed)
	} else {
		cc.Camera.SetZoom(cc.Camera.Zoom / cc.ZoomSpeed)
	}
	return true
}
