package config

import (
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "litespec.yaml")

	err := os.WriteFile(path, []byte(`
version: 1
package:
  path: models
specs:
  - path: specs/*.lite
output:
  path: schemas
migrations:
  path: migrations
`), 0600)
	assert.NoError(t, err)

	cfg, err := Read(path)
	assert.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "models", cfg.Package.Path)
	assert.Equal(t, []Spec{{Path: "specs/*.lite"}}, cfg.Specs)
	assert.Equal(t, "schemas", cfg.Output.Path)
	assert.Equal(t, "migrations", cfg.Migrations.Path)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "litespec.yaml"))
	assert.Error(t, err)
}
