package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// configFileName is the project config gqlast looks for in the current
// directory, in the teacher's own config/test-data format.
const configFileName = ".gqlast.yaml"

// fileConfig is the shape of .gqlast.yaml. Every field is optional; an
// absent file is not an error, it just means every flag keeps its
// built-in default.
type fileConfig struct {
	Limit  int    `yaml:"limit"`
	Debug  bool   `yaml:"debug"`
	Format string `yaml:"format"`
}

// loadConfig reads configFileName from fs's current directory. A missing
// file yields the zero fileConfig, not an error; a present but malformed
// file is an error, since the user clearly meant to configure something.
func loadConfig(fs afero.Fs) (fileConfig, error) {
	raw, err := afero.ReadFile(fs, configFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}

		return fileConfig{}, fmt.Errorf("gqlast: reading %s: %w", configFileName, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("gqlast: parsing %s: %w", configFileName, err)
	}

	return cfg, nil
}
