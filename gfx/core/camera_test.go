package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func assertVecNear(t *testing.T, expected, actual mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], actual[i], eps, msgAndArgs...)
	}
}

func assertBasis(t *testing.T, c *Camera) {
	t.Helper()
	assert.InDelta(t, 1, c.Front().Len(), eps, "front not unit")
	assert.InDelta(t, 1, c.Right().Len(), eps, "right not unit")
	assert.InDelta(t, 1, c.Up().Len(), eps, "up not unit")
	assert.InDelta(t, 0, c.Front().Dot(c.Right()), eps, "front.right")
	assert.InDelta(t, 0, c.Front().Dot(c.Up()), eps, "front.up")
	assert.InDelta(t, 0, c.Right().Dot(c.Up()), eps, "right.up")
	// right-handed: right x up == -front (front points into the screen)
	assertVecNear(t, c.Front().Mul(-1), c.Right().Cross(c.Up()), "handedness")
}

func TestCamera_Defaults(t *testing.T) {
	c := NewDefaultCamera(mgl32.Vec3{0, 0, 3})

	assert.Equal(t, DefaultYaw, c.Yaw())
	assert.Equal(t, DefaultPitch, c.Pitch())
	assert.Equal(t, DefaultSpeed, c.MovementSpeed())
	assert.Equal(t, DefaultSensitivity, c.MouseSensitivity())
	assert.Equal(t, DefaultZoom, c.Zoom())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.WorldUp())
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, c.Right())
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, c.Up())
}

func TestCamera_ViewMatrixMatchesLookAt(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, -90, 0)

	expected := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	view := c.ViewMatrix()
	for i := range expected {
		assert.InDelta(t, expected[i], view[i], eps, "element %d", i)
	}

	// pure: no state change
	assert.Equal(t, view, c.ViewMatrix())
}

func TestCamera_BasisStaysOrthonormal(t *testing.T) {
	c := NewDefaultCamera(mgl32.Vec3{})
	deltas := [][2]float32{
		{10, 5}, {-400, 300}, {3600, -2000}, {0.5, 0.25}, {-17, 900}, {123, -123}, {0, 0},
	}
	for _, d := range deltas {
		c.ProcessLookDelta(d[0], d[1], true)
		assertBasis(t, c)
	}
}

func TestCamera_PitchClamp(t *testing.T) {
	c := NewDefaultCamera(mgl32.Vec3{})
	for i := 0; i < 50; i++ {
		c.ProcessLookDelta(0, 1000, true)
		require.LessOrEqual(t, c.Pitch(), MaxPitch)
	}
	assert.Equal(t, MaxPitch, c.Pitch())

	for i := 0; i < 50; i++ {
		c.ProcessLookDelta(0, -1000, true)
		require.GreaterOrEqual(t, c.Pitch(), -MaxPitch)
	}
	assert.Equal(t, -MaxPitch, c.Pitch())
}

func TestCamera_PitchUnconstrained(t *testing.T) {
	c := NewDefaultCamera(mgl32.Vec3{})
	c.ProcessLookDelta(0, 1000, false)
	assert.InDelta(t, 100, c.Pitch(), eps)

	c.ProcessLookDelta(0, -5000, false)
	assert.InDelta(t, -400, c.Pitch(), eps)
}

func TestCamera_YawScaledBySensitivity(t *testing.T) {
	c := NewDefaultCamera(mgl32.Vec3{})
	c.SetMouseSensitivity(0.5)
	c.ProcessLookDelta(20, 0, true)
	assert.InDelta(t, -80, c.Yaw(), eps)
}

func TestCamera_ZoomClamp(t *testing.T) {
	c := NewDefaultCamera(mgl32.Vec3{})
	inputs := []float32{1000, -1000, 3, -2.5, 44, -44, 0.1, -0.1}
	for _, dy := range inputs {
		c.ProcessZoomDelta(dy)
		assert.GreaterOrEqual(t, c.Zoom(), MinZoom)
		assert.LessOrEqual(t, c.Zoom(), MaxZoom)
	}

	c.ProcessZoomDelta(-1000)
	assert.Equal(t, MaxZoom, c.Zoom())
	c.ProcessZoomDelta(1000)
	assert.Equal(t, MinZoom, c.Zoom())
}

func TestCamera_ZoomMonotonic(t *testing.T) {
	c := NewDefaultCamera(mgl32.Vec3{})
	c.ProcessZoomDelta(20) // 25
	before := c.Zoom()
	c.ProcessZoomDelta(2)
	assert.Less(t, c.Zoom(), before)

	before = c.Zoom()
	c.ProcessZoomDelta(-5)
	assert.Greater(t, c.Zoom(), before)
}

func TestCamera_ForwardBackwardRoundTrip(t *testing.T) {
	c := NewDefaultCamera(mgl32.Vec3{1, 2, 3})
	c.ProcessLookDelta(137, 211, true)
	start := c.Position()

	c.ProcessMovement(Forward, 0.016)
	assert.NotEqual(t, start, c.Position())
	assert.InDelta(t, start.Y(), c.Position().Y(), eps, "forward must stay horizontal")

	c.ProcessMovement(Backward, 0.016)
	assertVecNear(t, start, c.Position())
}

func TestCamera_UpDownOnlyVertical(t *testing.T) {
	c := NewDefaultCamera(mgl32.Vec3{1, 2, 3})
	c.ProcessLookDelta(45, -30, true)

	c.ProcessMovement(Up, 2)
	assertVecNear(t, mgl32.Vec3{1, 2 + 2*DefaultSpeed, 3}, c.Position())

	c.ProcessMovement(Down, 4)
	assertVecNear(t, mgl32.Vec3{1, 2 - 2*DefaultSpeed, 3}, c.Position())
}

func TestCamera_StrafeAlongRight(t *testing.T) {
	c := NewDefaultCamera(mgl32.Vec3{})
	c.SetMovementSpeed(10)

	c.ProcessMovement(Right, 0.5)
	assertVecNear(t, mgl32.Vec3{5, 0, 0}, c.Position())

	c.ProcessMovement(Left, 1)
	assertVecNear(t, mgl32.Vec3{-5, 0, 0}, c.Position())
}

func TestCamera_ProjectionUsesZoom(t *testing.T) {
	c := NewDefaultCamera(mgl32.Vec3{})
	c.ProcessZoomDelta(15)

	expected := mgl32.Perspective(mgl32.DegToRad(30), 16.0/9.0, 0.1, 100)
	assert.Equal(t, expected, c.ProjectionMatrix(16.0/9.0, 0.1, 100))
}

func TestMovement_String(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "unknown", Movement(42).String())
}
