package litespec

import (
	"strconv"
	"strings"
)

// coerceLiteral converts a raw annotation value into its JSON form: quoted
// strings are unquoted, true/false become booleans, numeric text becomes a
// number, anything else stays a string. Used for @if condition and action
// values, which carry no declared type.
func coerceLiteral(raw string) any {
	raw = strings.TrimSpace(raw)

	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return raw[1 : len(raw)-1]
	}

	switch raw {
	case "true":
		return true
	case "false":
		return false
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}

	return raw
}

// coerceDefault applies the @default policy. Unlike coerceLiteral, numeric
// coercion only happens when the declared field type is numeric, so a string
// field whose default looks like a number keeps it as a string.
func coerceDefault(raw string, fieldType string) any {
	raw = strings.TrimSpace(raw)

	if raw == `""` {
		return ""
	}

	switch raw {
	case "true":
		return true
	case "false":
		return false
	}

	if fieldType == "number" || fieldType == "integer" {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return n
		}
	}

	return strings.Trim(raw, `"`)
}

// splitTrim splits a comma-separated argument list into trimmed values.
func splitTrim(arg string) []string {
	parts := strings.Split(arg, ",")

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
