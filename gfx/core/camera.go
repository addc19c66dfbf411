package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a backend-independent camera move direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45.0

	MinZoom  float32 = 1.0
	MaxZoom  float32 = 45.0
	MaxPitch float32 = 89.0
)

// Camera is a free-fly camera driven by Euler angles (degrees).
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32

	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32
}

func NewCamera(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		position:         position,
		front:            mgl32.Vec3{0, 0, -1},
		worldUp:          worldUp,
		yaw:              yaw,
		pitch:            pitch,
		movementSpeed:    DefaultSpeed,
		mouseSensitivity: DefaultSensitivity,
		zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

// NewDefaultCamera places a Y-up camera looking down -Z.
func NewDefaultCamera(position mgl32.Vec3) *Camera {
	return NewCamera(position, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// ProcessMovement moves the camera by MovementSpeed*dt. Forward and backward
// stay in the horizontal plane.
func (c *Camera) ProcessMovement(direction Movement, dt float32) {
	velocity := c.movementSpeed * dt
	flat := mgl32.Vec3{c.front.X(), 0, c.front.Z()}

	switch direction {
	case Forward:
		c.position = c.position.Add(flat.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(flat.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	case Up:
		c.position = c.position.Add(c.worldUp.Mul(velocity))
	case Down:
		c.position = c.position.Sub(c.worldUp.Mul(velocity))
	}
}

// ProcessLookDelta applies a mouse offset in pixels. With constrainPitch the
// pitch stays within [-89, 89] so the basis never flips at the poles.
func (c *Camera) ProcessLookDelta(dx, dy float32, constrainPitch bool) {
	c.yaw += dx * c.mouseSensitivity
	c.pitch += dy * c.mouseSensitivity

	if constrainPitch {
		if c.pitch > MaxPitch {
			c.pitch = MaxPitch
		}
		if c.pitch < -MaxPitch {
			c.pitch = -MaxPitch
		}
	}

	c.updateVectors()
}

// ProcessZoomDelta narrows (positive dy) or widens the field of view.
func (c *Camera) ProcessZoomDelta(dy float32) {
	c.zoom -= dy
	if c.zoom < MinZoom {
		c.zoom = MinZoom
	}
	if c.zoom > MaxZoom {
		c.zoom = MaxZoom
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix uses the current zoom as vertical field of view.
func (c *Camera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, near, far)
}

func (c *Camera) Position() mgl32.Vec3      { return c.position }
func (c *Camera) Front() mgl32.Vec3         { return c.front }
func (c *Camera) Up() mgl32.Vec3            { return c.up }
func (c *Camera) Right() mgl32.Vec3         { return c.right }
func (c *Camera) WorldUp() mgl32.Vec3       { return c.worldUp }
func (c *Camera) Yaw() float32              { return c.yaw }
func (c *Camera) Pitch() float32            { return c.pitch }
func (c *Camera) MovementSpeed() float32    { return c.movementSpeed }
func (c *Camera) MouseSensitivity() float32 { return c.mouseSensitivity }
func (c *Camera) Zoom() float32             { return c.zoom }

func (c *Camera) SetMovementSpeed(speed float32) {
	c.movementSpeed = speed
}

func (c *Camera) SetMouseSensitivity(sensitivity float32) {
	c.mouseSensitivity = sensitivity
}
