// Package config handles runtime configuration for the catalogue publisher.
//
// Values come from an optional YAML file, overridden by environment variables.
// A .env file in the working directory is honoured. The remote token is only
// ever read from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// RemoteConfig addresses the remote content host.
type RemoteConfig struct {
	// APIBase is the contents-API base URL including the repository path,
	// e.g. "https://api.github.com/repos/r21league/catalogue/contents/".
	APIBase string `yaml:"api_base"`
	// Branch is the branch the artifact is written to.
	Branch string `yaml:"branch"`
	// Token is the bearer token. Never read from the YAML file.
	Token string `yaml:"-"`
}

// Config holds everything one publish tick needs.
type Config struct {
	// AuctionDir is scanned for AuctionResult*.xlsx files in auction mode.
	AuctionDir string `yaml:"auction_dir"`
	// ListingPath is the fixed workbook path used in listing mode.
	ListingPath string `yaml:"listing_path"`
	// OutputDir receives the rendered artifact.
	OutputDir string `yaml:"output_dir"`
	// OutputFile is the artifact file name, also the logical remote path.
	OutputFile string `yaml:"output_file"`
	// AuctionMode selects auction rendering; false means listing mode.
	AuctionMode bool `yaml:"auction_mode"`
	// Upload enables the remote publish step.
	Upload bool `yaml:"upload"`
	// TestMode prefixes the artifact name with "Test".
	TestMode bool `yaml:"test_mode"`
	// RefreshEnabled emits the client auto-refresh script while the
	// auction is still in progress.
	RefreshEnabled bool `yaml:"refresh"`
	// Interval is the scheduler period.
	Interval time.Duration `yaml:"interval"`
	// RunFor bounds the scheduler lifetime; zero means no deadline.
	RunFor time.Duration `yaml:"run_for"`

	Remote RemoteConfig `yaml:"remote"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputFile: "RplPlayers.html",
		Interval:   60 * time.Second,
		Remote: RemoteConfig{
			Branch: "main",
		},
	}
}

// Load builds the configuration from the YAML file at path (optional, pass ""
// to skip), then applies environment overrides. A .env file is loaded first so
// both sources see it.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)

	if cfg.OutputFile == "" {
		cfg.OutputFile = Default().OutputFile
	}
	if cfg.Interval <= 0 {
		cfg.Interval = Default().Interval
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.AuctionDir, "AUCTIONPRESS_AUCTION_DIR")
	setString(&cfg.ListingPath, "AUCTIONPRESS_LISTING_PATH")
	setString(&cfg.OutputDir, "AUCTIONPRESS_OUTPUT_DIR")
	setString(&cfg.OutputFile, "AUCTIONPRESS_OUTPUT_FILE")
	setString(&cfg.Remote.APIBase, "AUCTIONPRESS_REMOTE_API_BASE")
	setString(&cfg.Remote.Branch, "AUCTIONPRESS_REMOTE_BRANCH")
	setString(&cfg.Remote.Token, "AUCTIONPRESS_TOKEN")
	setBool(&cfg.AuctionMode, "AUCTIONPRESS_AUCTION_MODE")
	setBool(&cfg.Upload, "AUCTIONPRESS_UPLOAD")
	setBool(&cfg.TestMode, "AUCTIONPRESS_TEST_MODE")
	setBool(&cfg.RefreshEnabled, "AUCTIONPRESS_REFRESH")
	setDuration(&cfg.Interval, "AUCTIONPRESS_INTERVAL")
	setDuration(&cfg.RunFor, "AUCTIONPRESS_RUN_FOR")
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

// ArtifactName returns the artifact file name, applying the test-mode prefix.
func (c Config) ArtifactName() string {
	if c.TestMode {
		return "Test" + c.OutputFile
	}
	return c.OutputFile
}

// ArtifactPath returns the local path the artifact is written to.
func (c Config) ArtifactPath() string {
	return filepath.Join(c.OutputDir, c.ArtifactName())
}
