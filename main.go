package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/weekend-raytracer/pkg/config"
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/output"
	"github.com/df07/weekend-raytracer/pkg/renderer"
	"github.com/df07/weekend-raytracer/pkg/scene"
)

// cliOptions holds everything a render run needs after flags and
// environment have been merged
type cliOptions struct {
	Scene      string
	Width      int
	Samples    int
	MaxDepth   int
	Passes     int
	NumWorkers int
	Seed       int64
	Format     output.Format
	OutputPath string // Explicit output file; empty writes under OutputDir
	OutputDir  string
	Texture    string
	Upload     bool
}

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	opts, err := parseFlags(os.Args[1:], cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads command line flags, using cfg for their defaults
func parseFlags(args []string, cfg config.Config) (cliOptions, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)

	sceneName := fs.String("scene", "bouncing-spheres", "Scene to render (see -help)")
	width := fs.Int("width", cfg.Width, "Image width in pixels (0 = scene default)")
	samples := fs.Int("samples", cfg.SamplesPerPixel, "Samples per pixel (0 = scene default)")
	depth := fs.Int("depth", cfg.MaxDepth, "Maximum ray bounces (0 = scene default)")
	passes := fs.Int("passes", 1, "Progressive passes; intermediate passes are logged only")
	workers := fs.Int("workers", cfg.NumWorkers, "Worker goroutines (0 = all CPUs)")
	seed := fs.Int64("seed", cfg.Seed, "Base seed for scene layout and sampling")
	format := fs.String("format", cfg.OutputFormat, "Output format: png or ppm")
	out := fs.String("out", "", "Output file (default <output-dir>/<scene>/render_<timestamp>.<format>)")
	outputDir := fs.String("output-dir", cfg.OutputDir, "Directory for timestamped renders")
	texture := fs.String("texture", cfg.TexturePath, "Image for textured scenes")
	upload := fs.Bool("upload", false, "Upload the render to S3 (needs RAYTRACER_S3_* settings)")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Weekend Raytracer")
		fmt.Fprintln(fs.Output(), "Usage: raytracer [options]")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Available scenes:")
		for _, group := range scene.ListScenes().Groups {
			for _, info := range group.Scenes {
				fmt.Fprintf(fs.Output(), "  %-18s %s\n", info.ID, info.Description)
			}
		}
	}

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	parsedFormat, err := output.ParseFormat(*format)
	if err != nil {
		return cliOptions{}, err
	}
	if *out != "" {
		// An explicit file name decides the format
		if parsedFormat, err = output.ParseFormat(strings.TrimPrefix(filepath.Ext(*out), ".")); err != nil {
			return cliOptions{}, err
		}
	}
	if *passes < 1 {
		return cliOptions{}, fmt.Errorf("passes must be at least 1, got %d", *passes)
	}

	return cliOptions{
		Scene:      *sceneName,
		Width:      *width,
		Samples:    *samples,
		MaxDepth:   *depth,
		Passes:     *passes,
		NumWorkers: *workers,
		Seed:       *seed,
		Format:     parsedFormat,
		OutputPath: *out,
		OutputDir:  *outputDir,
		Texture:    *texture,
		Upload:     *upload,
	}, nil
}

// createScene builds the named scene with the command line overrides applied
func createScene(opts cliOptions, logger core.Logger) (*scene.Scene, error) {
	return scene.Create(opts.Scene, scene.Options{
		Camera:      renderer.CameraConfig{Width: opts.Width},
		Sampling:    core.SamplingConfig{SamplesPerPixel: opts.Samples, MaxDepth: opts.MaxDepth},
		TexturePath: opts.Texture,
		Seed:        opts.Seed,
		Logger:      logger,
	})
}

// outputPath returns where the render is written
func outputPath(opts cliOptions, now time.Time) string {
	if opts.OutputPath != "" {
		return opts.OutputPath
	}
	filename := fmt.Sprintf("render_%s%s", now.Format("20060102_150405"), opts.Format.Extension())
	return filepath.Join(opts.OutputDir, opts.Scene, filename)
}

func run(ctx context.Context, opts cliOptions, cfg config.Config, logger core.Logger) error {
	logger.Printf("Starting Weekend Raytracer...\n")

	selectedScene, err := createScene(opts, logger)
	if err != nil {
		return err
	}

	width := selectedScene.Camera.ImageWidth()
	height := selectedScene.Camera.ImageHeight()
	sampling := selectedScene.GetSamplingConfig()
	logger.Printf("Rendering %s (%d objects) at %dx%d, %d samples, depth %d\n",
		opts.Scene, selectedScene.ObjectCount(), width, height, sampling.SamplesPerPixel, sampling.MaxDepth)
	if bvhStats, ok := selectedScene.BVHStats(); ok {
		logger.Printf("BVH: %d nodes, %d leaf refs, max depth %d, avg depth %.1f\n",
			bvhStats.TotalNodes, bvhStats.LeafReferences, bvhStats.MaxDepth, bvhStats.AvgDepth)
	}

	progressiveConfig := renderer.DefaultProgressiveConfig()
	progressiveConfig.MaxSamplesPerPixel = sampling.SamplesPerPixel
	progressiveConfig.MaxPasses = opts.Passes
	progressiveConfig.NumWorkers = opts.NumWorkers
	progressiveConfig.Seed = opts.Seed

	raytracer := renderer.NewProgressiveRaytracer(selectedScene, width, height, progressiveConfig, logger)

	startTime := time.Now()
	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	renderTime := time.Since(startTime)

	logger.Printf("Render completed in %v\n", renderTime)
	logger.Printf("Samples per pixel: %.1f (range %d - %d)\n",
		stats.AverageSamples, stats.MinSamples, stats.MaxSamplesUsed)
	logger.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	path := outputPath(opts, time.Now())
	if err := output.SaveFile(path, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", path)

	if !opts.Upload {
		return nil
	}
	if !cfg.S3Enabled() {
		return errors.New("upload requested but RAYTRACER_S3_BUCKET, RAYTRACER_S3_ACCESS_KEY and RAYTRACER_S3_SECRET_KEY are not all set")
	}

	uploader, err := output.NewS3Uploader(output.S3Config{
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
	}, logger)
	if err != nil {
		return err
	}

	data, err := output.Encode(opts.Format, img)
	if err != nil {
		return err
	}
	key := filepath.ToSlash(filepath.Join(cfg.S3Prefix, opts.Scene, filepath.Base(path)))
	return uploader.Upload(ctx, key, data, opts.Format.ContentType())
}
