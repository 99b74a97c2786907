package scene

import (
	"github.com/hubastard/grove/engine/input"
	"github.com/kataras/golog"
)

var logger = golog.Child("[scene]")

// FPSController flies an FPSCamera: WASD moves, LShift/LCtrl rise and sink,
// the mouse looks around while grabbed, the wheel zooms. Holding LAlt frees
// the cursor; letting go grabs it again.
type FPSController struct {
	Speed          float32 // units per second
	Sensitivity    float32 // degrees per pixel of relative motion
	ConstrainPitch bool
	Camera         *FPSCamera
}

func NewFPSController(cam *FPSCamera) *FPSController {
	logger.Debugf("fps camera at %.2f %.2f %.2f", cam.Position.X(), cam.Position.Y(), cam.Position.Z())
	return &FPSController{
		Speed:          6,
		Sensitivity:    1,
		ConstrainPitch: true,
		Camera:         cam,
	}
}

func (fc *FPSController) TogglePitchConstraint() { fc.ConstrainPitch = !fc.ConstrainPitch }

// Update applies held movement keys; safe to call on every fixed tick.
func (fc *FPSController) Update(in *input.Tracker, dt float32) {
	cam := fc.Camera
	step := fc.Speed * dt

	if in.IsKeyHeld(input.KeyW) {
		cam.Position = cam.Position.Add(cam.Forward().Mul(step))
	}
	if in.IsKeyHeld(input.KeyS) {
		cam.Position = cam.Position.Sub(cam.Forward().Mul(step))
	}
	if in.IsKeyHeld(input.KeyA) {
		cam.Position = cam.Position.Sub(cam.Right().Mul(step))
	}
	if in.IsKeyHeld(input.KeyD) {
		cam.Position = cam.Position.Add(cam.Right().Mul(step))
	}
	if in.IsKeyHeld(input.KeyLeftShift) {
		cam.Position = cam.Position.Add(cam.Up().Mul(step))
	}
	if in.IsKeyHeld(input.KeyLeftCtrl) {
		cam.Position = cam.Position.Sub(cam.Up().Mul(step))
	}
}

// HandleInput consumes this frame's mouse motion and scroll. It must run
// exactly once per frame, otherwise deltas are applied twice or lost.
func (fc *FPSController) HandleInput(in *input.Tracker) {
	if in.IsKeyHeld(input.KeyLeftAlt) {
		in.ReleaseMouse()
	} else if in.IsKeyReleased(input.KeyLeftAlt) {
		in.GrabMouse()
	}

	if !in.IsMouseGrabbed() {
		return
	}
	cam := fc.Camera
	if in.HasMouseMoved() {
		mm := in.MouseMove()
		cam.Yaw = wrapDegrees(cam.Yaw + float32(mm.XRel)*fc.Sensitivity)
		cam.Pitch -= float32(mm.YRel) * fc.Sensitivity
	}
	if fc.ConstrainPitch {
		if cam.Pitch > maxPitch {
			cam.Pitch = maxPitch
		}
		if cam.Pitch < -maxPitch {
			cam.Pitch = -maxPitch
		}
	}
	if in.HasScrolled() {
		cam.SetZoom(cam.Zoom + float32(in.YScroll()))
	}
	cam.UpdateVectors()
}
