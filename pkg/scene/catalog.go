package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
	Group       string `json:"group"` // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type sceneEntry struct {
	group       string
	description string
	build       func(Options) *Scene
}

const (
	groupBook     = "Ray Tracing: The Next Week"
	groupShowcase = "Showcase"
)

var catalog = map[string]sceneEntry{
	"bouncing-spheres": {
		group:       groupBook,
		description: "Random field of small moving spheres on a checkered ground",
		build:       NewBouncingSpheresScene,
	},
	"checkered-spheres": {
		group:       groupBook,
		description: "Two large spheres sharing a spatial checker texture",
		build:       NewCheckeredSpheresScene,
	},
	"earth": {
		group:       groupBook,
		description: "Globe with an image texture",
		build:       NewEarthScene,
	},
	"perlin-spheres": {
		group:       groupBook,
		description: "Marbled Perlin noise on a sphere and ground",
		build:       NewPerlinSpheresScene,
	},
	"simple": {
		group:       groupShowcase,
		description: "A single white diffuse sphere under the sky",
		build:       NewSimpleScene,
	},
	"glass": {
		group:       groupShowcase,
		description: "Diffuse, fuzzy metal and hollow glass spheres",
		build:       NewGlassScene,
	},
	"textures": {
		group:       groupShowcase,
		description: "Every texture type on a row of spheres",
		build:       NewTextureScene,
	},
	"sphere-grid": {
		group:       groupShowcase,
		description: "20x20 grid of OKLCH-colored metal spheres",
		build:       NewSphereGridScene,
	},
}

// Names returns the names accepted by Create in sorted order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the named scene and its BVH
func Create(name string, opts Options) (*Scene, error) {
	entry, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	s := entry.build(opts)
	s.Preprocess()
	return s, nil
}

// ListScenes returns the built-in scenes grouped by category, groups and
// scenes in alphabetical order
func ListScenes() ScenesResponse {
	groupMap := make(map[string][]SceneInfo)
	for _, name := range Names() {
		entry := catalog[name]
		groupMap[entry.group] = append(groupMap[entry.group], SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: entry.description,
			Group:       entry.group,
		})
	}

	groupNames := make([]string, 0, len(groupMap))
	for groupName := range groupMap {
		groupNames = append(groupNames, groupName)
	}
	sort.Strings(groupNames)

	var response ScenesResponse
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}
	return response
}

// titleCase converts a scene name to title case
// e.g., "bouncing-spheres" -> "Bouncing Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
