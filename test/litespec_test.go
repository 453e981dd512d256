package test

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	assert "github.com/stretchr/testify/require"

	"github.com/koskimas/litespec/internal/cmd"
)

func TestLitespec(t *testing.T) {
	wd := getWd(t, "tests/00001_customer")

	err := cmd.Run(cmd.Settings{
		WorkingDir: wd,
		Logger:     zerolog.Nop(),
	})
	assert.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(wd, "schemas", "customer.schema.json"))
	assert.NoError(t, err)

	var doc map[string]any
	assert.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "customer", doc["title"])
	assert.Equal(t, "object", doc["type"])

	defs := doc["$defs"].(map[string]any)
	assert.Contains(t, defs, "address")

	props := doc["properties"].(map[string]any)

	gender := props["gender"].(map[string]any)
	assert.Equal(t, []any{"male", "female"}, gender["enum"])

	address := props["address"].(map[string]any)
	assert.Equal(t, "#/$defs/address", address["$ref"])

	assert.Contains(t, doc, "allOf")
	assert.Contains(t, doc, "permissions")
	assert.Contains(t, doc, "ui")

	models, err := os.ReadFile(filepath.Join(wd, "models", "customer.go"))
	assert.NoError(t, err)
	assert.Contains(t, string(models), "type Customer struct")

	ddl, err := os.ReadFile(filepath.Join(wd, "migrations", "customer.sql"))
	assert.NoError(t, err)
	assert.Contains(t, string(ddl), `create table if not exists "customer"`)
}
