package gen

import (
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/koskimas/litespec/internal/config"
	"github.com/koskimas/litespec/internal/litespec"
)

func TestGenerateModels(t *testing.T) {
	doc, err := litespec.Compile(`
		def Address object {
			street: string @required
			city: string
		}

		model Customer object {
			name: string @required
			age: integer
			active: boolean @required
			balance: number
			address: @ref(Address)
			tags: array(string)
		}
	`)
	assert.NoError(t, err)

	wd := t.TempDir()
	cfg := config.Config{Package: config.Package{Path: "models"}}

	err = GenerateModels(cfg, wd, "customer", doc)
	assert.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(wd, "models", "customer.go"))
	assert.NoError(t, err)

	src := string(data)
	assert.Contains(t, src, "package models")
	assert.Contains(t, src, "type Address struct")
	assert.Contains(t, src, "type Customer struct")
	assert.Contains(t, src, "Name string")
	assert.Contains(t, src, "Active bool")
	assert.Contains(t, src, "Age *int")
	assert.Contains(t, src, "Balance *float64")
	assert.Contains(t, src, "Address *Address")
	assert.Contains(t, src, "Tags []string")
	assert.Contains(t, src, "City *string")
}

func TestGenerateArrayDef(t *testing.T) {
	doc, err := litespec.Compile(`
		def Drivers array {
			name: string @required
		}
	`)
	assert.NoError(t, err)

	wd := t.TempDir()
	cfg := config.Config{Package: config.Package{Path: "models"}}

	err = GenerateModels(cfg, wd, "drivers", doc)
	assert.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(wd, "models", "drivers.go"))
	assert.NoError(t, err)

	src := string(data)
	assert.Contains(t, src, "type DriversItem struct")
	assert.Contains(t, src, "type Drivers []DriversItem")
}

func TestGoName(t *testing.T) {
	assert.Equal(t, "HasPriorCoverage", goName("has_prior_coverage"))
	assert.Equal(t, "Name", goName("name"))
}
