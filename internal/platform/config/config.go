package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir     string `yaml:"data_dir"`
	DBPath      string `yaml:"db_path"`
	DefaultUser string `yaml:"default_user"`
	Learner     struct {
		Binary string `yaml:"binary"`
	} `yaml:"learner"`
}

func Default(dataDir string) Config {
	cfg := Config{
		DataDir:     dataDir,
		DefaultUser: "local",
	}
	cfg.DBPath = filepath.Join(dataDir, "tempo.db")
	return cfg
}

// Load builds the config from defaults plus an optional YAML file inside the
// data dir. A missing file is not an error.
func Load(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Default(dataDir)
	path := filepath.Join(dataDir, "tempo.yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "tempo.db")
	}
	if cfg.DefaultUser == "" {
		cfg.DefaultUser = "local"
	}
	return cfg, nil
}
