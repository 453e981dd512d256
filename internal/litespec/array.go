package litespec

import (
	"strings"

	"github.com/koskimas/litespec/internal/schema"
)

// resolveArray handles `field: array(type)` and `field: array(@ref(Name))`
// lines. In the reference form the @ref token is consumed here and never
// reaches the generic attribute pass, which would otherwise apply it to the
// array wrapper instead of its items. A bare `field: array @ref(Name)` line
// doesn't get here at all; it goes down the ordinary field path where @ref is
// just another annotation.
func (c *compiler) resolveArray(fr *frame, line string) error {
	name, rest, ok := splitField(line)
	if !ok {
		return parseErrorf(ErrStructure, `invalid field line "%s"`, line)
	}

	open := strings.Index(rest, "array(")

	inner, after, ok := balanced(rest, open+len("array(")-1)
	if !ok {
		return parseErrorf(ErrStructure, `unterminated array type in "%s"`, line)
	}

	frag := schema.Object{"type": "array"}

	inner = strings.TrimSpace(inner)
	if refArg, isRef := strings.CutPrefix(inner, "@ref("); isRef {
		frag["items"] = schema.Object{"$ref": refTarget(strings.TrimSuffix(refArg, ")"))}
	} else {
		frag["items"] = schema.Object{"type": inner}
	}

	if err := applyAttributes(tokens(rest[after:]), name, rest, frag, fr, &fr.fieldPerms); err != nil {
		return err
	}

	fr.target.Properties()[name] = frag
	return nil
}
