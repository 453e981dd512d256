package litespec

import (
	"strings"

	"github.com/koskimas/litespec/internal/schema"
)

// compileRule turns an @if line into an if/then rule:
//
//	@if(quote.insurance_type: @const("auto"), @required(vehicle_count))
//
// The property may be a dotted path into a referenced sub-object; condition
// and action segments are split at the first parenthesis-depth-0 comma since
// their own arguments may contain commas.
func compileRule(line string) (schema.Object, error) {
	body, ok := annotationBody(line, "@if(")
	if !ok {
		return nil, parseErrorf(ErrExpression, `invalid @if expression "%s"`, line)
	}

	colon := indexTopLevel(body, ':')
	if colon == -1 {
		return nil, parseErrorf(ErrExpression, `@if expression "%s" has no property`, line)
	}

	prop := strings.TrimSpace(body[:colon])
	rest := body[colon+1:]

	comma := indexTopLevel(rest, ',')
	if prop == "" || comma == -1 {
		return nil, parseErrorf(ErrExpression, `@if expression "%s" has no action segment`, line)
	}

	condToks := tokens(rest[:comma])
	actionToks := tokens(rest[comma+1:])

	if len(condToks) == 0 || len(actionToks) == 0 {
		return nil, parseErrorf(ErrExpression, `@if expression "%s" has an empty condition or action`, line)
	}

	segments := strings.Split(prop, ".")

	ifObj := schema.Object{}
	ifObj["properties"] = nestPath(segments, condLeaf(condToks, segments, ifObj))

	return schema.Object{
		"if":   ifObj,
		"then": thenFragment(actionToks),
	}, nil
}

// nestPath wraps leaf in one {properties: ...} layer per non-terminal path
// segment.
func nestPath(segments []string, leaf schema.Object) schema.Object {
	props := schema.Object{}
	cur := props

	for i, seg := range segments {
		if i == len(segments)-1 {
			cur[seg] = leaf
			break
		}

		inner := schema.Object{}
		cur[seg] = schema.Object{"properties": inner}
		cur = inner
	}

	return props
}

// condLeaf builds the condition keywords for the terminal path segment.
// @required conditions attach to the rule root instead of the leaf.
func condLeaf(toks []string, segments []string, ifObj schema.Object) schema.Object {
	leaf := schema.Object{}

	for _, t := range toks {
		name, arg, _ := splitToken(t)

		switch name {
		case "enum":
			leaf["enum"] = splitTrim(arg)
		case "required":
			target := strings.TrimSpace(arg)
			if target == "" {
				target = segments[len(segments)-1]
			}
			ifObj["required"] = appendName(ifObj["required"], target)
		default:
			leaf[name] = coerceLiteral(arg)
		}
	}

	return leaf
}

// thenFragment builds the action side. @required(name) collects required
// names; a target,value argument writes the keyword onto that target's
// property fragment; a plain argument keeps the old flat shape and writes the
// raw value at the root.
func thenFragment(toks []string) schema.Object {
	then := schema.Object{}

	for _, t := range toks {
		name, arg, _ := splitToken(t)

		if name == "required" {
			then["required"] = appendName(then["required"], strings.TrimSpace(arg))
			continue
		}

		if comma := indexTopLevel(arg, ','); comma != -1 {
			target := strings.TrimSpace(arg[:comma])

			props := then.Properties()
			frag, _ := props[target].(schema.Object)
			if frag == nil {
				frag = schema.Object{}
				props[target] = frag
			}

			frag[name] = coerceLiteral(arg[comma+1:])
			continue
		}

		then[name] = arg
	}

	return then
}

func appendName(v any, name string) []string {
	names, _ := v.([]string)
	return append(names, name)
}
