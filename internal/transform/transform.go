// Package transform computes the per-frame projection, view and model
// matrices for the cube viewport.
//
// Matrices are column-major mgl32 values in a right-handed system with
// OpenGL clip conventions (NDC depth in [-1, 1]). Nothing is cached: a
// Set is derived from its inputs every time it is asked for.
package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the fixed camera and animation parameters.
type Camera struct {
	FovY   float32 // vertical field of view, radians
	Near   float32
	Far    float32
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	// Axis is the model rotation axis. It is normalized by Compute.
	Axis mgl32.Vec3
	// RadiansPerFrame is the rotation applied per animation frame.
	RadiansPerFrame float64
}

// DefaultCamera looks at the origin from (2, 2, 2) with a 45 degree
// field of view and rotates the model 0.01 rad per frame.
func DefaultCamera() Camera {
	return Camera{
		FovY:            mgl32.DegToRad(45),
		Near:            0.1,
		Far:             100,
		Eye:             mgl32.Vec3{2, 2, 2},
		Target:          mgl32.Vec3{0, 0, 0},
		Up:              mgl32.Vec3{0, 1, 0},
		Axis:            mgl32.Vec3{0.7, 1, 0},
		RadiansPerFrame: 0.01,
	}
}

// Set is the transform set for one frame.
type Set struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4
	MVP        mgl32.Mat4
}

// Aspect returns width/height, or 1 when either side is not positive.
func Aspect(width, height float32) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return width / height
}

// Angle returns the model rotation for a frame, reduced to [0, 2π).
// The reduction happens in float64 so large frame counts keep float32
// precision.
func (c Camera) Angle(frame uint64) float32 {
	a := math.Mod(float64(frame)*c.RadiansPerFrame, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return float32(a)
}

// Model returns the model rotation for a frame.
func (c Camera) Model(frame uint64) mgl32.Mat4 {
	axis := c.Axis
	if axis.Len() == 0 {
		return mgl32.Ident4()
	}
	return mgl32.HomogRotate3D(c.Angle(frame), axis.Normalize())
}

// Compute derives the transform set for the given aspect ratio and frame.
func Compute(aspect float32, frame uint64, cam Camera) Set {
	if aspect <= 0 || math.IsNaN(float64(aspect)) || math.IsInf(float64(aspect), 0) {
		aspect = 1
	}
	s := Set{
		Projection: mgl32.Perspective(cam.FovY, aspect, cam.Near, cam.Far),
		View:       mgl32.LookAtV(cam.Eye, cam.Target, cam.Up),
		Model:      cam.Model(frame),
	}
	s.MVP = s.Projection.Mul4(s.View).Mul4(s.Model)
	return s
}
