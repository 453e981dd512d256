package litespec

import (
	"regexp"

	"github.com/koskimas/litespec/internal/schema"
)

var permissionRe = regexp.MustCompile(`(\w+)\s*:\s*"([^"]*)"`)

// compilePermissions parses a `key: "role expression"` list into a flat map.
// Serves both collection-level @can lines and field-level @can annotations.
func compilePermissions(expr string) (schema.Object, error) {
	pairs := permissionRe.FindAllStringSubmatch(expr, -1)
	if len(pairs) == 0 {
		return nil, parseErrorf(ErrExpression, `invalid permission expression "%s"`, expr)
	}

	perms := schema.Object{}
	for _, p := range pairs {
		perms[p[1]] = p[2]
	}

	return perms, nil
}

// compileSort parses a @sort(name,order) argument.
func compileSort(arg string) schema.Object {
	name, order := splitPair(arg)
	return schema.Object{"name": name, "order": order}
}

// compileBreadcrumb parses a @breadcrumb(name,suffix) argument.
func compileBreadcrumb(arg string) schema.Object {
	name, suffix := splitPair(arg)
	return schema.Object{"name": name, "suffix": suffix}
}

func splitPair(arg string) (string, string) {
	parts := splitTrim(arg)

	first := parts[0]
	second := ""
	if len(parts) > 1 {
		second = parts[1]
	}

	return first, second
}
