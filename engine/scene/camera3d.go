package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	minFOV   = 1
	maxFOV   = 45
	maxPitch = 89
)

// FPSCamera is a perspective camera driven by yaw/pitch angles in degrees.
// Zoom is the vertical field of view, kept within [1, 45].
type FPSCamera struct {
	Position   mgl32.Vec3
	Yaw, Pitch float32
	Zoom       float32
	Aspect     float32
	Near, Far  float32

	worldUp mgl32.Vec3
	forward mgl32.Vec3
	right   mgl32.Vec3
	up      mgl32.Vec3
}

func NewFPSCamera(pos mgl32.Vec3, yaw, pitch float32) *FPSCamera {
	c := &FPSCamera{
		Position: pos,
		Yaw:      yaw,
		Pitch:    pitch,
		Zoom:     maxFOV,
		Aspect:   16.0 / 9.0,
		Near:     0.1,
		Far:      100,
		worldUp:  mgl32.Vec3{0, 1, 0},
	}
	c.UpdateVectors()
	return c
}

// UpdateVectors recomputes the basis from Yaw and Pitch.
func (c *FPSCamera) UpdateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.forward = front.Normalize()
	c.right = c.forward.Cross(c.worldUp).Normalize()
	// vertical movement stays on the world axis regardless of pitch
	c.up = c.worldUp
}

func (c *FPSCamera) Forward() mgl32.Vec3 { return c.forward }
func (c *FPSCamera) Right() mgl32.Vec3   { return c.right }
func (c *FPSCamera) Up() mgl32.Vec3      { return c.up }

func (c *FPSCamera) SetViewportPixels(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	c.Aspect = float32(w) / float32(h)
}

func (c *FPSCamera) SetZoom(z float32) {
	c.Zoom = mgl32.Clamp(z, minFOV, maxFOV)
}

func (c *FPSCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.forward), c.up)
}

func (c *FPSCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), c.Aspect, c.Near, c.Far)
}

func (c *FPSCamera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// wrapDegrees maps a into [0, 360).
func wrapDegrees(a float32) float32 {
	w := float32(math.Mod(float64(a), 360))
	if w < 0 {
		w += 360
	}
	return w
}
