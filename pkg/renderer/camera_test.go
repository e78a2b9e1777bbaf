package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
)

func pixelCenterSampler() *seqSampler {
	return &seqSampler{twoD: []core.Vec2{core.NewVec2(0.5, 0.5)}, oneD: 0.25}
}

func TestCameraGetCameraForward(t *testing.T) {
	config := CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        45.0,
	}
	camera := NewCamera(config)

	forward := camera.GetCameraForward()
	expected := core.NewVec3(0, 0, -1)
	if forward.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected forward direction %v, got %v", expected, forward)
	}
}

func TestCameraImageHeight(t *testing.T) {
	tests := []struct {
		name           string
		width          int
		aspectRatio    float64
		expectedHeight int
	}{
		{"16:9", 400, 16.0 / 9.0, 225},
		{"Square", 100, 1.0, 100},
		{"Very wide clamps to one row", 5, 10.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(CameraConfig{
				LookAt:      core.NewVec3(0, 0, -1),
				Up:          core.NewVec3(0, 1, 0),
				Width:       tt.width,
				AspectRatio: tt.aspectRatio,
				VFov:        90,
			})
			if camera.ImageHeight() != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, camera.ImageHeight())
			}
		})
	}
}

func TestCameraCenterPixelLooksAtTarget(t *testing.T) {
	config := CameraConfig{
		Center:        core.NewVec3(3, 2, 5),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         101,
		AspectRatio:   1.0,
		VFov:          30.0,
		FocusDistance: 10,
	}
	camera := NewCamera(config)

	ray := camera.GetRay(50, 50, pixelCenterSampler())
	expected := config.LookAt.Subtract(config.Center).Normalize()
	if ray.Direction.Normalize().Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction.Normalize())
	}
	if ray.Origin != config.Center {
		t.Errorf("Expected pinhole origin %v, got %v", config.Center, ray.Origin)
	}
	if ray.Time != 0.25 {
		t.Errorf("Expected ray time 0.25, got %f", ray.Time)
	}
}

func TestCameraPixelOrientation(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	sampler := pixelCenterSampler()

	topLeft := camera.GetRay(0, 0, sampler).Direction
	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("Top-left pixel should look up and left, got %v", topLeft)
	}

	bottomRight := camera.GetRay(camera.ImageWidth()-1, camera.ImageHeight()-1, sampler).Direction
	if bottomRight.X <= 0 || bottomRight.Y >= 0 {
		t.Errorf("Bottom-right pixel should look down and right, got %v", bottomRight)
	}
}

func TestCameraFieldOfView(t *testing.T) {
	config := DefaultCameraConfig()
	config.AspectRatio = 1
	config.Width = 1000
	config.VFov = 90
	camera := NewCamera(config)

	// The top edge of a 90 degree view is 45 degrees above the axis
	ray := camera.GetRay(500, 0, &seqSampler{twoD: []core.Vec2{core.NewVec2(0.5, 0)}})
	angle := math.Atan2(ray.Direction.Y, -ray.Direction.Z)
	if math.Abs(angle-math.Pi/4) > 1e-6 {
		t.Errorf("Expected top edge at 45 degrees, got %f", angle*180/math.Pi)
	}
}

func TestCameraDefocusKeepsFocusPlaneSharp(t *testing.T) {
	config := CameraConfig{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         64,
		AspectRatio:   1.0,
		VFov:          40.0,
		DefocusAngle:  10.0,
		FocusDistance: 5.0,
	}
	pinholeConfig := config
	pinholeConfig.DefocusAngle = 0

	pinholeRay := NewCamera(pinholeConfig).GetRay(10, 20, pixelCenterSampler())
	focusPoint := pinholeRay.At(1)

	camera := NewCamera(config)
	radius := 5.0 * math.Tan(core.DegreesToRadians(5.0))
	disk := []core.Vec2{core.NewVec2(0.9, 0.5), core.NewVec2(0.5, 0.1), core.NewVec2(0.2, 0.8)}

	for _, d := range disk {
		sampler := &seqSampler{twoD: []core.Vec2{core.NewVec2(0.5, 0.5), d}}
		ray := camera.GetRay(10, 20, sampler)

		if ray.Origin.Length() > radius+1e-9 {
			t.Errorf("Origin %v lies outside the defocus disk of radius %f", ray.Origin, radius)
		}
		if ray.Origin.Z != 0 {
			t.Errorf("Origin %v should lie in the lens plane", ray.Origin)
		}
		if ray.At(1).Subtract(focusPoint).Length() > 1e-9 {
			t.Errorf("Expected ray through focus point %v, got %v", focusPoint, ray.At(1))
		}
	}
}

func TestCameraRaysStayInsidePixel(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Jittered rays from neighbouring pixels never cross each other's boundary
	center := camera.GetRay(100, 100, pixelCenterSampler()).At(1)
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(100, 100, sampler)
		if ray.At(1).Subtract(center).Length() > camera.pixelDeltaU.Length() {
			t.Errorf("Jittered sample %v strays more than a pixel from %v", ray.At(1), center)
		}
		if ray.Time < 0 || ray.Time >= 1 {
			t.Errorf("Expected ray time in [0, 1), got %f", ray.Time)
		}
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{Width: 800, VFov: 20})

	if merged.Width != 800 || merged.VFov != 20 {
		t.Errorf("Expected overrides to apply, got width %d vfov %f", merged.Width, merged.VFov)
	}
	if merged.Center != base.Center || merged.AspectRatio != base.AspectRatio || merged.FocusDistance != base.FocusDistance {
		t.Errorf("Expected zero overrides to keep base values, got %+v", merged)
	}
}

func TestCameraInvalidAspectRatioUsesDefault(t *testing.T) {
	tests := []struct {
		name   string
		aspect float64
	}{
		{"zero", 0},
		{"negative", -2},
		{"infinite", math.Inf(1)},
		{"nan", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.Width = 160
			config.AspectRatio = tt.aspect
			camera := NewCamera(config)

			if camera.ImageHeight() != 90 {
				t.Errorf("Expected height 90, got %d", camera.ImageHeight())
			}
			ray := camera.GetRay(80, 45, pixelCenterSampler())
			d := ray.Direction
			if math.IsNaN(d.X) || math.IsNaN(d.Y) || math.IsNaN(d.Z) {
				t.Errorf("Expected a finite ray direction, got %v", d)
			}
		})
	}
}
