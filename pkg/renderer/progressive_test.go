package renderer

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
)

func TestProgressiveSampleCalculation(t *testing.T) {
	tests := []struct {
		name     string
		initial  int
		max      int
		passes   int
		expected []int
	}{
		// (50-1)/6 = 8 samples per middle pass, the last pass takes the rest
		{"Seven passes", 1, 50, 7, []int{1, 9, 17, 25, 33, 41, 50}},
		{"Single pass uses everything", 1, 50, 1, []int{50}},
		{"Two passes", 4, 10, 2, []int{4, 10}},
		{"More passes than samples", 1, 3, 5, []int{1, 1, 1, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := &ProgressiveRaytracer{config: ProgressiveConfig{
				InitialSamples:     tt.initial,
				MaxSamplesPerPixel: tt.max,
				MaxPasses:          tt.passes,
			}}
			for pass := 1; pass <= tt.passes; pass++ {
				if got := pr.getSamplesForPass(pass); got != tt.expected[pass-1] {
					t.Errorf("Pass %d: expected %d total samples, got %d", pass, tt.expected[pass-1], got)
				}
			}
		})
	}
}

func TestProgressiveConfig(t *testing.T) {
	config := DefaultProgressiveConfig()

	if config.TileSize != 64 {
		t.Errorf("Expected default tile size 64, got %d", config.TileSize)
	}
	if config.InitialSamples != 1 {
		t.Errorf("Expected default initial samples 1, got %d", config.InitialSamples)
	}
	if config.MaxSamplesPerPixel != 100 {
		t.Errorf("Expected default max samples 100, got %d", config.MaxSamplesPerPixel)
	}
	if config.MaxPasses != 7 {
		t.Errorf("Expected default max passes 7, got %d", config.MaxPasses)
	}
}

func TestNewTileGrid(t *testing.T) {
	// 400x225 image with 64x64 tiles
	width, height, tileSize := 400, 225, 64
	tiles := NewTileGrid(width, height, tileSize, 42)

	expectedTilesX := (width + tileSize - 1) / tileSize   // 7 tiles
	expectedTilesY := (height + tileSize - 1) / tileSize  // 4 tiles
	expectedTotalTiles := expectedTilesX * expectedTilesY // 28 tiles

	if len(tiles) != expectedTotalTiles {
		t.Errorf("Expected %d tiles, got %d", expectedTotalTiles, len(tiles))
	}

	// Tiles cover the entire image without gaps or overlaps
	covered := make([][]bool, height)
	for y := range covered {
		covered[y] = make([]bool, width)
	}

	for _, tile := range tiles {
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				if x >= width || y >= height {
					t.Errorf("Tile %d extends beyond image bounds at (%d,%d)", tile.ID, x, y)
					continue
				}
				if covered[y][x] {
					t.Errorf("Pixel (%d,%d) is covered by multiple tiles", x, y)
				}
				covered[y][x] = true
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !covered[y][x] {
				t.Errorf("Pixel (%d,%d) is not covered by any tile", x, y)
			}
		}
	}
}

func TestTileDeterministicRandom(t *testing.T) {
	bounds := image.Rect(0, 0, 64, 64)
	tile1 := NewTile(42, bounds, 42)
	tile2 := NewTile(42, bounds, 42)

	val1 := tile1.Sampler.Get1D()
	val2 := tile2.Sampler.Get1D()
	if val1 != val2 {
		t.Errorf("Tiles with same ID should produce same random values: %f != %f", val1, val2)
	}

	tile3 := NewTile(43, bounds, 42)
	if val1 == tile3.Sampler.Get1D() {
		t.Error("Tiles with different IDs should produce different random values")
	}
}

func newTestProgressive(numWorkers int) *ProgressiveRaytracer {
	scene := newTestScene(24)
	config := ProgressiveConfig{
		TileSize:           8,
		InitialSamples:     1,
		MaxSamplesPerPixel: 6,
		MaxPasses:          3,
		NumWorkers:         numWorkers,
		Seed:               42,
	}
	return NewProgressiveRaytracer(scene, 24, 24, config, core.NopLogger())
}

func TestProgressiveAccumulatesAcrossPasses(t *testing.T) {
	pr := newTestProgressive(2)
	passChan, _, errChan := pr.RenderProgressive(context.Background(), RenderOptions{})

	var results []PassResult
	for result := range passChan {
		results = append(results, result)
	}
	if err := <-errChan; err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Targets are 1, 3 and 6 samples per pixel
	expected := []float64{1, 3, 6}
	if len(results) != len(expected) {
		t.Fatalf("Expected %d passes, got %d", len(expected), len(results))
	}
	for i, result := range results {
		if result.Stats.AverageSamples != expected[i] {
			t.Errorf("Pass %d: expected %v samples per pixel, got %v", i+1, expected[i], result.Stats.AverageSamples)
		}
		if result.Image.Bounds() != image.Rect(0, 0, 24, 24) {
			t.Errorf("Pass %d: unexpected image bounds %v", i+1, result.Image.Bounds())
		}
		if result.IsLast != (i == len(results)-1) {
			t.Errorf("Pass %d: IsLast=%v", i+1, result.IsLast)
		}
	}
}

func TestProgressiveIsDeterministicAcrossWorkerCounts(t *testing.T) {
	single, _, err := newTestProgressive(1).Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	parallel, _, err := newTestProgressive(4).Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !bytes.Equal(single.Pix, parallel.Pix) {
		t.Error("Expected identical images regardless of worker count")
	}
}

func TestProgressiveTileUpdates(t *testing.T) {
	pr := newTestProgressive(2)
	passChan, tileChan, errChan := pr.RenderProgressive(context.Background(), RenderOptions{TileUpdates: true})

	// 9 tiles per pass, 3 passes; the tile buffer holds them all
	tileCount := 0
	done := make(chan struct{})
	go func() {
		for range tileChan {
			tileCount++
		}
		close(done)
	}()

	for range passChan {
	}
	<-done
	if err := <-errChan; err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tileCount != 27 {
		t.Errorf("Expected 27 tile updates, got %d", tileCount)
	}
}

func TestProgressiveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newTestProgressive(2).Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
