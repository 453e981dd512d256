package litespec

import (
	"strconv"
	"strings"

	"github.com/koskimas/litespec/internal/schema"
)

// applyAttributes interprets a field's annotation tokens one by one, mutating
// the field fragment, the enclosing frame and the field permission list.
// rawType is the full type-and-annotations string the tokens came from; @enum
// and @pattern re-extract their arguments from it so values containing other
// annotation names or parentheses survive. Unrecognized annotations are
// ignored on purpose.
func applyAttributes(
	toks []string,
	field string,
	rawType string,
	frag schema.Object,
	fr *frame,
	fieldPerms *[]schema.Object,
) error {
	for _, tok := range toks {
		name, arg, hasArg := splitToken(tok)

		switch name {
		case "required":
			fr.required = append(fr.required, field)

		case "enum":
			values, err := enumValues(rawType)
			if err != nil {
				return err
			}
			frag["enum"] = values

		case "ref":
			frag["$ref"] = refTarget(arg)

		case "ui":
			fr.ui[field] = uiEntry(arg)

		case "minItems", "maxItems", "minLength", "maxLength",
			"minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum",
			"multipleOf":
			n, err := strconv.Atoi(strings.TrimSpace(arg))
			if err != nil {
				return parseErrorf(ErrAnnotation, `annotation @%s expects an integer argument, got "%s"`, name, arg)
			}
			frag[name] = n

		case "uniqueItems":
			frag["uniqueItems"] = true

		case "format":
			if !hasArg {
				return parseErrorf(ErrAnnotation, `annotation @format is missing its argument`)
			}
			applyFormat(frag, arg)

		case "uuid":
			frag["format"] = "uuid"

		case "email":
			frag["format"] = "email"

		case "pattern":
			p, err := patternValue(rawType)
			if err != nil {
				return err
			}
			frag["pattern"] = p

		case "default":
			declared, _ := frag["type"].(string)
			frag["default"] = coerceDefault(arg, declared)

		case "can":
			perms, err := compilePermissions(arg)
			if err != nil {
				return err
			}
			*fieldPerms = append(*fieldPerms, schema.Object{field: perms})
		}
	}

	return nil
}

// applyFormat sets the format keyword. date-time is special-cased: the type
// keyword is replaced with an anyOf that lets an empty string coexist with
// strict date-time validation.
func applyFormat(frag schema.Object, arg string) {
	if arg == "date-time" {
		delete(frag, "type")
		frag["anyOf"] = []schema.Object{
			{"type": "string", "format": "date-time"},
			{"type": "string", "enum": []string{""}},
		}

		return
	}

	frag["format"] = arg
}

// enumValues re-extracts the @enum argument from the raw type string and
// splits it into trimmed values.
func enumValues(rawType string) ([]string, error) {
	const marker = "@enum"

	i := strings.Index(rawType, marker)
	if i == -1 {
		return nil, parseErrorf(ErrAnnotation, `annotation @enum is missing its argument`)
	}

	arg, _, ok := balanced(rawType, i+len(marker))
	if !ok {
		return nil, parseErrorf(ErrAnnotation, `annotation @enum is missing its argument`)
	}

	return splitTrim(arg), nil
}

// patternValue extracts the @pattern argument greedily, up to the final
// closing parenthesis of the raw string, so parentheses inside the regex
// survive.
func patternValue(rawType string) (string, error) {
	const marker = "@pattern("

	i := strings.Index(rawType, marker)
	j := strings.LastIndexByte(rawType, ')')

	if i == -1 || j <= i+len(marker) {
		return "", parseErrorf(ErrAnnotation, `annotation @pattern is missing its argument`)
	}

	return rawType[i+len(marker) : j], nil
}

func refTarget(arg string) string {
	return "#/$defs/" + strings.ToLower(strings.TrimSpace(arg))
}

// uiEntry expands the positional @ui argument list. Missing slots default to
// the empty string; order is an integer.
func uiEntry(arg string) schema.Object {
	slots := make([]string, 8)

	for i, p := range strings.Split(arg, ",") {
		if i >= len(slots) {
			break
		}
		slots[i] = strings.TrimSpace(p)
	}

	order, _ := strconv.Atoi(slots[3])

	return schema.Object{
		"type":          slots[0],
		"listType":      slots[1],
		"group":         slots[2],
		"order":         order,
		"lookup":        slots[4],
		"collection":    slots[5],
		"displayMember": slots[6],
		"valueMember":   slots[7],
	}
}
