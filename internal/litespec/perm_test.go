package litespec

import (
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/koskimas/litespec/internal/schema"
)

func TestCompilePermissions(t *testing.T) {
	perms, err := compilePermissions(`view: "admin || user", add: "admin", edit: "admin", delete: "admin"`)
	assert.NoError(t, err)

	assert.Equal(t, schema.Object{
		"view":   "admin || user",
		"add":    "admin",
		"edit":   "admin",
		"delete": "admin",
	}, perms)
}

func TestCompilePermissionsMalformed(t *testing.T) {
	_, err := compilePermissions("view admin")

	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrExpression, pe.Kind)
}

func TestCompileSort(t *testing.T) {
	assert.Equal(t, schema.Object{"name": "last_name", "order": "desc"}, compileSort("last_name,desc"))
	assert.Equal(t, schema.Object{"name": "last_name", "order": ""}, compileSort("last_name"))
}

func TestCompileBreadcrumb(t *testing.T) {
	assert.Equal(t, schema.Object{"name": "name", "suffix": "jr"}, compileBreadcrumb("name,jr"))
}
