package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/weekend-raytracer/pkg/config"
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/renderer"
	"github.com/df07/weekend-raytracer/pkg/scene"
)

// DefaultTileSize is the tile edge used for web renders
const DefaultTileSize = 32

// Server handles web requests for the progressive raytracer
type Server struct {
	addr      string
	cfg       config.Config
	staticDir string
}

// NewServer creates a new web server listening on addr
func NewServer(addr string, cfg config.Config) *Server {
	return &Server{addr: addr, cfg: cfg, staticDir: "static/"}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string `json:"scene"`      // Scene name (e.g., "bouncing-spheres")
	Width      int    `json:"width"`      // Image width; height follows the scene's aspect ratio
	MaxSamples int    `json:"maxSamples"` // Maximum samples per pixel
	MaxPasses  int    `json:"maxPasses"`  // Maximum number of passes
	MaxDepth   int    `json:"maxDepth"`   // Maximum ray bounces
	Seed       int64  `json:"seed"`
	Upload     bool   `json:"upload"` // Publish the final image to S3
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	log.Printf("Starting web server on %s", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes grouped by category
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleSceneConfig returns the default camera and sampling settings for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = defaultScene
	}

	sceneObj, err := s.createScene(&RenderRequest{Scene: sceneName, Seed: s.cfg.Seed}, core.NopLogger())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sampling := sceneObj.GetSamplingConfig()
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":           sceneObj.Camera.ImageWidth(),
			"height":          sceneObj.Camera.ImageHeight(),
			"samplesPerPixel": sampling.SamplesPerPixel,
			"maxDepth":        sampling.MaxDepth,
		},
		"camera": map[string]interface{}{
			"center":  vecArray(sceneObj.CameraConfig.Center),
			"lookAt":  vecArray(sceneObj.CameraConfig.LookAt),
			"forward": vecArray(sceneObj.Camera.GetCameraForward()),
			"vfov":    sceneObj.CameraConfig.VFov,
		},
		"limits": map[string]interface{}{
			"width":      map[string]int{"min": minWidth, "max": maxWidth},
			"maxSamples": map[string]int{"min": 1, "max": maxSamples},
			"maxPasses":  map[string]int{"min": 1, "max": maxPasses},
			"maxDepth":   map[string]int{"min": 1, "max": maxDepth},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

const (
	defaultScene = "bouncing-spheres"
	minWidth     = 16
	maxWidth     = 2000
	maxSamples   = 10000
	maxPasses    = 100
	maxDepth     = 200
)

// parseRenderRequest parses and validates request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = defaultScene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minWidth, maxWidth); err != nil {
		return nil, err
	}
	if req.MaxSamples, err = parseIntParam(query, "maxSamples", 50, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxPasses, err = parseIntParam(query, "maxPasses", 7, 1, maxPasses); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", 0, 0, maxDepth); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", int(s.cfg.Seed), 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)
	if value := query.Get("upload"); value != "" {
		if req.Upload, err = strconv.ParseBool(value); err != nil {
			return nil, fmt.Errorf("invalid upload: %s", value)
		}
	}

	// Performance warning
	if req.Width > 800 && req.MaxSamples > 100 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene with the request's overrides
func (s *Server) createScene(req *RenderRequest, logger core.Logger) (*scene.Scene, error) {
	return scene.Create(req.Scene, scene.Options{
		Camera:      renderer.CameraConfig{Width: req.Width},
		Sampling:    core.SamplingConfig{SamplesPerPixel: req.MaxSamples, MaxDepth: req.MaxDepth},
		TexturePath: s.cfg.TexturePath,
		Seed:        req.Seed,
		Logger:      logger,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
