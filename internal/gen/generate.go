package gen

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/koskimas/litespec/internal/config"
	"github.com/koskimas/litespec/internal/schema"
)

// GenerateModels renders Go types for a compiled schema document: one struct
// per definition plus one for the model. Required fields are value-typed,
// optional scalar fields are pointers.
func GenerateModels(
	cfg config.Config,
	workingDir string,
	specName string,
	doc schema.Object,
) error {
	f := jen.NewFile(path.Base(cfg.Package.Path))

	defs := doc.Defs()
	for _, name := range sortedKeys(defs) {
		genDefType(f, name, defs[name].(schema.Object))
	}

	if title, ok := doc["title"].(string); ok {
		genStruct(f, goName(title), doc)
	}

	return writeModelsToFile(f, cfg, workingDir, specName)
}

func genDefType(f *jen.File, name string, def schema.Object) {
	if t, _ := def["type"].(string); t == "array" {
		items, _ := def["items"].(schema.Object)

		genStruct(f, goName(name)+"Item", items)
		f.Type().Id(goName(name)).Index().Id(goName(name) + "Item")
		f.Empty()

		return
	}

	genStruct(f, goName(name), def)
}

func genStruct(f *jen.File, name string, obj schema.Object) {
	props, _ := obj["properties"].(schema.Object)
	required := requiredSet(obj)

	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		for _, pn := range sortedKeys(props) {
			frag, _ := props[pn].(schema.Object)

			field := g.Id(goName(pn))
			if !required[pn] && !isCollection(frag) {
				field.Op("*")
			}
			field.Add(goType(frag))

			tag := pn
			if !required[pn] {
				tag += ",omitempty"
			}
			field.Tag(map[string]string{"json": tag})
		}
	})
	f.Empty()
}

func goType(frag schema.Object) *jen.Statement {
	if ref, ok := frag["$ref"].(string); ok {
		return jen.Id(goName(refName(ref)))
	}

	if _, ok := frag["anyOf"]; ok {
		// The date-time-or-empty special case; carried as a plain string.
		return jen.String()
	}

	if bson, _ := frag["bsonType"].(string); bson == "decimal" {
		// Decimals stay strings so precision survives a JSON round trip.
		return jen.String()
	}

	switch frag["type"] {
	case "string", "objectid":
		return jen.String()
	case "integer":
		return jen.Int()
	case "number":
		return jen.Float64()
	case "boolean":
		return jen.Bool()
	case "array":
		items, _ := frag["items"].(schema.Object)
		if items == nil {
			return jen.Index().Id("any")
		}
		return jen.Index().Add(goType(items))
	case "object":
		return jen.Map(jen.String()).Id("any")
	}

	return jen.Id("any")
}

func isCollection(frag schema.Object) bool {
	return frag["type"] == "array" || frag["type"] == "object"
}

func refName(ref string) string {
	return ref[strings.LastIndexByte(ref, '/')+1:]
}

func requiredSet(obj schema.Object) map[string]bool {
	set := make(map[string]bool)

	if names, ok := obj["required"].([]string); ok {
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

func goName(prop string) string {
	parts := strings.Split(prop, "_")

	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[0:1]) + p[1:]
		}
	}

	return strings.Join(parts, "")
}

func writeModelsToFile(f *jen.File, cfg config.Config, workingDir string, specName string) error {
	filePath := filepath.Join(workingDir, cfg.Package.Path, specName+".go")

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	return os.WriteFile(filePath, []byte(f.GoString()), 0600)
}
