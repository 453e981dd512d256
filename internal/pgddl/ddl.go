// Package pgddl derives PostgreSQL migrations from compiled schema documents.
package pgddl

import (
	"sort"

	"github.com/koskimas/litespec/internal/schema"
)

// GenerateTable builds a CREATE TABLE statement for a compiled model
// document. The statement is parse-verified before it is returned, so a
// mapping bug here can never ship an unparseable migration. Documents without
// a model block produce no table and return "".
func GenerateTable(doc schema.Object) (string, error) {
	title, _ := doc["title"].(string)
	if title == "" {
		return "", nil
	}

	props, _ := doc["properties"].(schema.Object)
	required := requiredSet(doc)

	s := &sqlBuilder{}
	s.WriteString("create table if not exists ")
	s.WriteString(quoteIdent(title))
	s.WriteString(" (")
	s.WriteNewLine()
	s.Indent()

	names := sortedKeys(props)
	for i, n := range names {
		frag, _ := props[n].(schema.Object)

		s.WriteString(quoteIdent(n))
		s.WriteString(" ")
		s.WriteString(columnType(frag))

		if required[n] {
			s.WriteString(" not null")
		}

		if i != len(names)-1 {
			s.WriteString(",")
		}

		s.WriteNewLine()
	}

	s.DeIndent()
	s.WriteString(");")
	s.WriteNewLine()

	sql := s.String()
	if err := verifySql(sql); err != nil {
		return "", err
	}

	return sql, nil
}

// columnType maps a field fragment to a PostgreSQL column type. Structured
// values (objects, arrays, references, the date-time anyOf) land in jsonb.
func columnType(frag schema.Object) string {
	if _, ok := frag["$ref"]; ok {
		return "jsonb"
	}

	if _, ok := frag["anyOf"]; ok {
		return "jsonb"
	}

	if bson, _ := frag["bsonType"].(string); bson == "decimal" {
		return "numeric"
	}

	switch frag["type"] {
	case "string", "objectid":
		return "text"
	case "integer":
		return "bigint"
	case "number":
		return "double precision"
	case "boolean":
		return "boolean"
	}

	return "jsonb"
}

// quoteIdent quotes an identifier so field names that collide with SQL
// keywords stay valid.
func quoteIdent(name string) string {
	return `"` + name + `"`
}

func requiredSet(doc schema.Object) map[string]bool {
	set := make(map[string]bool)

	if names, ok := doc["required"].([]string); ok {
		for _, n := range names {
			set[n] = true
		}
	}

	return set
}

func sortedKeys(o schema.Object) []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}
