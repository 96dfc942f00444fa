package camera

import (
	"errors"
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/chewxy/math32"
)

var ErrInvalidProjection = errors.New("invalid camera projection")

// Camera is a right-handed perspective camera.
// Fields may be changed freely; ViewProjection always works from their current values.
type Camera struct {
	Pos     gglm.Vec3
	Forward gglm.Vec3
	WorldUp gglm.Vec3

	NearClip    float32
	FarClip     float32
	FovRad      float32
	AspectRatio float32
}

func NewPerspective(pos, forward, worldUp *gglm.Vec3, nearClip, farClip, fovRad, aspectRatio float32) *Camera {
	return &Camera{
		Pos:         *pos,
		Forward:     *forward,
		WorldUp:     *worldUp,
		NearClip:    nearClip,
		FarClip:     farClip,
		FovRad:      fovRad,
		AspectRatio: aspectRatio,
	}
}

// SetViewportSize updates the aspect ratio. A zero-area viewport is stored as-is and
// reported by the next ViewProjection call.
func (c *Camera) SetViewportSize(width, height int32) {

	if height == 0 {
		c.AspectRatio = 0
		return
	}

	c.AspectRatio = float32(width) / float32(height)
}

// UpdateRotation points the camera using euler angles in radians.
// Yaw=0 looks down +X and pitch is clamped just short of straight up/down.
func (c *Camera) UpdateRotation(pitch, yaw float32) {

	const maxPitch = 1.55
	if pitch > maxPitch {
		pitch = maxPitch
	} else if pitch < -maxPitch {
		pitch = -maxPitch
	}

	c.Forward.Data = [3]float32{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
}

// Orbit places the camera distance units away from target, looking at it along the
// direction given by pitch and yaw (see UpdateRotation).
func (c *Camera) Orbit(target *gglm.Vec3, distance, pitch, yaw float32) {

	c.UpdateRotation(pitch, yaw)
	c.Pos.Data = [3]float32{
		target.Data[0] - c.Forward.Data[0]*distance,
		target.Data[1] - c.Forward.Data[1]*distance,
		target.Data[2] - c.Forward.Data[2]*distance,
	}
}

func (c *Camera) Validate() error {

	for _, v := range [...]float32{c.NearClip, c.FarClip, c.FovRad, c.AspectRatio} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite parameter (near=%v far=%v fov=%v aspect=%v)", ErrInvalidProjection, c.NearClip, c.FarClip, c.FovRad, c.AspectRatio)
		}
	}

	if c.AspectRatio <= 0 {
		return fmt.Errorf("%w: aspect ratio must be positive, got %v (zero-area viewport?)", ErrInvalidProjection, c.AspectRatio)
	}

	if c.NearClip <= 0 || c.FarClip <= c.NearClip {
		return fmt.Errorf("%w: need 0 < near < far, got near=%v far=%v", ErrInvalidProjection, c.NearClip, c.FarClip)
	}

	if c.FovRad <= 0 || c.FovRad >= math32.Pi {
		return fmt.Errorf("%w: field of view must be in (0, pi), got %v", ErrInvalidProjection, c.FovRad)
	}

	// Look-at breaks down when there is no forward or it is parallel to up
	f, u := c.Forward.Data, c.WorldUp.Data
	cross := [3]float32{
		f[1]*u[2] - f[2]*u[1],
		f[2]*u[0] - f[0]*u[2],
		f[0]*u[1] - f[1]*u[0],
	}

	if cross[0]*cross[0]+cross[1]*cross[1]+cross[2]*cross[2] < 1e-12 {
		return fmt.Errorf("%w: forward %v is zero or parallel to world up %v", ErrInvalidProjection, f, u)
	}

	return nil
}

// ViewMat returns the world to view transform
func (c *Camera) ViewMat() gglm.Mat4 {
	return gglm.LookAtRH(&c.Pos, c.Pos.Clone().Add(&c.Forward), &c.WorldUp).Mat4
}

// ViewProjection returns projection*view, computed from the current fields.
// The matrix is column-major, ready to be uploaded untransposed.
func (c *Camera) ViewProjection() (gglm.Mat4, error) {

	if err := c.Validate(); err != nil {
		return gglm.Mat4{}, err
	}

	projMat := gglm.Perspective(c.FovRad, c.AspectRatio, c.NearClip, c.FarClip)
	viewMat := c.ViewMat()

	return *projMat.Mul(&viewMat), nil
}
