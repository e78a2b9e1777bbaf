package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	UV           [2]float64             `json:"uv"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// pixelCenterSampler aims camera rays through the exact pixel center, from
// the lens center, at shutter open
type pixelCenterSampler struct{}

func (pixelCenterSampler) Get1D() float64 { return 0 }
func (pixelCenterSampler) Get2D() core.Vec2 {
	return core.NewVec2(0.5, 0.5)
}
func (pixelCenterSampler) Get3D() core.Vec3 {
	return core.NewVec3(0.5, 0.5, 0.5)
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	rgb := core.ColorToRGB(c)
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// extractTextureInfo describes a texture and, for solid colors, its value
func extractTextureInfo(texture material.Texture) map[string]interface{} {
	properties := make(map[string]interface{})

	switch t := texture.(type) {
	case *material.SolidColor:
		color := t.Evaluate(core.Vec2{}, core.Vec3{})
		properties["type"] = "solid"
		properties["albedo"] = vecArray(color)
		properties["color"] = hexColor(color)
	case *material.CheckerTexture:
		properties["type"] = "checker"
		properties["even"] = extractTextureInfo(t.Even)
		properties["odd"] = extractTextureInfo(t.Odd)
	case *material.ImageTexture:
		properties["type"] = "image"
		if t.Image != nil {
			properties["width"] = t.Image.Width()
			properties["height"] = t.Image.Height()
		}
	case *material.NoiseTexture:
		properties["type"] = "noise"
		properties["scale"] = t.Scale
		properties["style"] = t.Style.String()
	default:
		properties["type"] = "unknown"
	}
	return properties
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["texture"] = extractTextureInfo(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(object geometry.Hittable) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := object.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.CenterAt(0))
		properties["radius"] = geom.Radius
		if geom.IsMoving() {
			properties["centerAtShutterClose"] = vecArray(geom.CenterAt(1))
			return "moving_sphere", properties
		}
		return "sphere", properties

	default:
		return "unknown", properties
	}
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Object    geometry.Hittable // The top-level object that was hit, if it could be identified
}

// inspectPixel casts a ray through the center of pixel (x, y) and reports the first hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	ray := sceneObj.Camera.GetRay(pixelX, pixelY, pixelCenterSampler{})

	rayT := core.NewInterval(0.001, math.Inf(1))
	hit, isHit := sceneObj.GetWorld().Hit(ray, rayT)
	if !isHit {
		return InspectResult{Hit: false}
	}

	// The BVH returns only the hit record; find the object by repeating the
	// test against each top-level object
	for _, object := range sceneObj.Objects.Objects() {
		if objectHit, ok := object.Hit(ray, rayT); ok && objectHit.T == hit.T {
			return InspectResult{Hit: true, HitRecord: hit, Object: object}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &RenderRequest{Scene: query.Get("scene"), Seed: s.cfg.Seed}
	if req.Scene == "" {
		req.Scene = defaultScene
	}
	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minWidth, maxWidth); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(query.Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(query.Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}

	sceneObj, err := s.createScene(req, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if pixelX < 0 || pixelX >= sceneObj.Camera.ImageWidth() || pixelY < 0 || pixelY >= sceneObj.Camera.ImageHeight() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Object)

	hit := result.HitRecord
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		UV:           [2]float64{hit.UV.X, hit.UV.Y},
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
