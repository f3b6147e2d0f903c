// Package config loads the optional dataprep config file, which
// supplies defaults for CLI flags. YAML on disk is merged with
// environment variables (prefix DATAPREP__, delimiter __), env winning.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type LogCfg struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

type CleaningCfg struct {
	FillValue string `koanf:"fill_value"`
}

type TextCfg struct {
	Stopwords string `koanf:"stopwords"` // comma-separated
}

type Config struct {
	Log      LogCfg      `koanf:"log"`
	Cleaning CleaningCfg `koanf:"cleaning"`
	Text     TextCfg     `koanf:"text"`
}

// Default returns the built-in defaults used when no file or env
// overrides are present.
func Default() Config {
	return Config{
		Log:      LogCfg{Level: "info"},
		Cleaning: CleaningCfg{FillValue: "0"},
	}
}

// Load merges YAML at path (if present) with DATAPREP__ env vars over
// the built-in defaults. A missing file is not an error; a malformed
// one is.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading config %s: %w", path, err)
		}
	}
	_ = k.Load(env.Provider("DATAPREP__", "__", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DATAPREP__"))
	}), nil)

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the parts of the config with a closed value set.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Level,
			validation.In("debug", "info", "warn", "error")),
	)
}
