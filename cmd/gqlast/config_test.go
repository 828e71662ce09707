package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(afero.NewMemMapFs())
	require.NoError(t, err)
	assert.Equal(t, fileConfig{}, cfg)
}

func TestLoadConfigReadsLimitDebugFormat(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, configFileName, []byte("limit: 500\ndebug: true\nformat: json\n"), 0o644))

	cfg, err := loadConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, fileConfig{Limit: 500, Debug: true, Format: "json"}, cfg)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, configFileName, []byte("limit: [this is not an int"), 0o644))

	_, err := loadConfig(fs)
	assert.Error(t, err)
}
