// Package config reads the optional YAML configuration of mipmapgen.
// Every value left out of the file keeps its built-in default.
package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/srlehn/mipmapgen/internal/consts"
	"github.com/srlehn/mipmapgen/internal/errors"
	"github.com/srlehn/mipmapgen/mipmap"
)

// DefaultFileName is looked up in the working directory when no file is given.
const DefaultFileName = `mipmapgen.yaml`

// Config ...
type Config struct {
	Source    string           `yaml:"source"`
	ResDir    string           `yaml:"res_dir"`
	Resizer   string           `yaml:"resizer"`
	RoundMask bool             `yaml:"round_mask"`
	Densities mipmap.SizeTable `yaml:"densities"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source:    mipmap.DefaultSourcePath,
		ResDir:    mipmap.DefaultResDir,
		Resizer:   consts.ResizerDefaultName,
		Densities: mipmap.DefaultSizeTable(),
	}
}

// Load reads the file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapPrefix(err, `failed to read config file`, 0)
	}
	return Parse(data)
}

// LoadOptional is Load, but a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected. A
// densities list replaces the default table as a whole.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	var fileCfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// an empty document is io.EOF
	if err := dec.Decode(&fileCfg); err != nil && err != io.EOF {
		return nil, errors.WrapPrefix(err, `failed to parse config`, 0)
	}
	if len(fileCfg.Source) > 0 {
		cfg.Source = fileCfg.Source
	}
	if len(fileCfg.ResDir) > 0 {
		cfg.ResDir = fileCfg.ResDir
	}
	if len(fileCfg.Resizer) > 0 {
		cfg.Resizer = fileCfg.Resizer
	}
	if fileCfg.RoundMask {
		cfg.RoundMask = true
	}
	if fileCfg.Densities != nil {
		cfg.Densities = fileCfg.Densities
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapPrefix(err, `invalid config`, 0)
	}
	return cfg, nil
}

// Validate checks the required fields.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NilReceiver(nil)
	}
	if len(c.Source) == 0 {
		return errors.New(`source is required`)
	}
	if len(c.ResDir) == 0 {
		return errors.New(`res_dir is required`)
	}
	if len(c.Resizer) == 0 {
		return errors.New(`resizer is required`)
	}
	return c.Densities.Validate()
}
