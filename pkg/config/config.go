// Package config gathers render and publishing settings from a .env file and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the CLI and the web server.
// Zero render settings keep the chosen scene's own defaults.
type Config struct {
	Width           int
	SamplesPerPixel int
	MaxDepth        int
	NumWorkers      int // 0 uses every logical CPU
	Seed            int64
	OutputDir       string
	OutputFormat    string
	TexturePath     string
	ListenAddr      string

	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Prefix    string
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Seed:         42,
		OutputDir:    "output",
		OutputFormat: "png",
		TexturePath:  "assets/earthmap.jpg",
		ListenAddr:   ":8080",
		S3Region:     "us-east-1",
		S3Prefix:     "renders",
	}
}

// Load reads <rootDir>/.env if it exists and then overlays RAYTRACER_*
// environment variables on the defaults. Variables already set in the
// environment win over the .env file.
func Load(rootDir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(rootDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Width, err = getEnvInt("RAYTRACER_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.SamplesPerPixel, err = getEnvInt("RAYTRACER_SAMPLES", cfg.SamplesPerPixel); err != nil {
		return Config{}, err
	}
	if cfg.MaxDepth, err = getEnvInt("RAYTRACER_MAX_DEPTH", cfg.MaxDepth); err != nil {
		return Config{}, err
	}
	if cfg.NumWorkers, err = getEnvInt("RAYTRACER_WORKERS", cfg.NumWorkers); err != nil {
		return Config{}, err
	}
	seed, err := getEnvInt("RAYTRACER_SEED", int(cfg.Seed))
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)

	cfg.OutputDir = getEnv("RAYTRACER_OUTPUT_DIR", cfg.OutputDir)
	cfg.OutputFormat = getEnv("RAYTRACER_OUTPUT_FORMAT", cfg.OutputFormat)
	cfg.TexturePath = getEnv("RAYTRACER_TEXTURE", cfg.TexturePath)
	cfg.ListenAddr = getEnv("RAYTRACER_LISTEN_ADDR", cfg.ListenAddr)

	cfg.S3Endpoint = getEnv("RAYTRACER_S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3Region = getEnv("RAYTRACER_S3_REGION", cfg.S3Region)
	cfg.S3Bucket = getEnv("RAYTRACER_S3_BUCKET", cfg.S3Bucket)
	cfg.S3AccessKey = getEnv("RAYTRACER_S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getEnv("RAYTRACER_S3_SECRET_KEY", cfg.S3SecretKey)
	cfg.S3Prefix = getEnv("RAYTRACER_S3_PREFIX", cfg.S3Prefix)

	return cfg, nil
}

// S3Enabled reports whether enough S3 settings are present to upload
func (c Config) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
