package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "docs/", cfg.SourceDir)
	assert.Equal(t, "docs/public/en/", cfg.OutputPrefix)
	assert.Equal(t, "DOCS_VERSION", cfg.EnvVar)
	assert.Equal(t, "sphinx-build", cfg.Command)
	assert.Equal(t, []string{"-a"}, cfg.Args)
	require.Len(t, cfg.Mappings, 5)
	assert.Equal(t, "next", cfg.Mappings[0].Branch)
	assert.Equal(t, "latest", cfg.Mappings[1].Version)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Command, cfg.Command)
	assert.Equal(t, Default().OutputPrefix, cfg.OutputPrefix)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
command: mkdocs
output_prefix: site/
mappings:
  - branch: develop
    version: dev
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "mkdocs", cfg.Command)
	assert.Equal(t, "site/", cfg.OutputPrefix)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "docs/", cfg.SourceDir)
	assert.Equal(t, "DOCS_VERSION", cfg.EnvVar)

	require.Len(t, cfg.Mappings, 1)
	version, found := cfg.Resolver().Resolve("develop")
	assert.True(t, found)
	assert.Equal(t, "dev", version)
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("command: [unclosed"), 0o644))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvCommand, "mkdocs")
	t.Setenv(EnvEnvVar, "DOC_RELEASE")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mkdocs", cfg.Command)
	assert.Equal(t, "DOC_RELEASE", cfg.EnvVar)
	assert.Equal(t, "docs/", cfg.SourceDir)
}

func TestOutputDir_PlainConcatenation(t *testing.T) {
	cfg := Default()

	cases := []struct {
		version string
		want    string
	}{
		{"next", "docs/public/en/next"},
		{"latest", "docs/public/en/latest"},
		{"1.x", "docs/public/en/1.x"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, cfg.OutputDir(c.version))
	}
}
