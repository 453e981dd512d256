// Package litespec compiles the line-oriented LiteSpec model notation into a
// JSON-Schema-shaped document. Blocks (`def`, `model`) push scope frames onto
// a stack; field and annotation lines mutate the top frame; a closing `}`
// pops the frame and flushes what it accumulated onto its schema node.
package litespec

import (
	"strings"

	"github.com/koskimas/litespec/internal/schema"
)

// Compile parses a complete LiteSpec document and returns the compiled
// schema. Compilation is all-or-nothing: the first malformed line aborts with
// a ParseError carrying its line number.
func Compile(src string) (schema.Object, error) {
	c := &compiler{doc: schema.NewDocument()}

	for i, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if err := c.dispatch(line); err != nil {
			return nil, atLine(err, i+1)
		}
	}

	if len(c.stack) > 0 {
		return nil, parseErrorf(ErrStructure, "unclosed block at end of input")
	}

	return c.doc, nil
}

type compiler struct {
	doc   schema.Object
	stack []*frame
}

// frame is the per-block working state. Its target is the object currently
// receiving properties: the document root for a model, the definition for an
// object def, the items object for an array def. Accumulators are owned by
// the frame and flushed onto the target when the block closes, so nothing
// accumulated in one block can leak to a sibling or ancestor.
type frame struct {
	target     schema.Object
	required   []string
	ui         schema.Object
	rules      []schema.Object
	sort       schema.Object
	breadcrumb schema.Object
	collection schema.Object
	fieldPerms []schema.Object
}

func newFrame(target schema.Object) *frame {
	return &frame{
		target: target,
		ui:     schema.Object{},
	}
}

func (c *compiler) dispatch(line string) error {
	switch {
	case strings.HasPrefix(line, "def "):
		return c.openDef(line)
	case strings.HasPrefix(line, "model "):
		return c.openModel(line)
	case strings.HasPrefix(line, "}"):
		return c.closeBlock()
	}

	fr, err := c.top()
	if err != nil {
		return err
	}

	switch {
	case strings.HasPrefix(line, "@if("):
		rule, err := compileRule(line)
		if err != nil {
			return err
		}
		fr.rules = append(fr.rules, rule)

	case strings.HasPrefix(line, "@can("):
		body, _ := annotationBody(line, "@can(")
		perms, err := compilePermissions(body)
		if err != nil {
			return err
		}
		fr.collection = perms

	case strings.HasPrefix(line, "@sort("):
		body, _ := annotationBody(line, "@sort(")
		fr.sort = compileSort(body)

	case strings.HasPrefix(line, "@breadcrumb("):
		body, _ := annotationBody(line, "@breadcrumb(")
		fr.breadcrumb = compileBreadcrumb(body)

	case strings.Contains(line, "array("):
		return c.resolveArray(fr, line)

	default:
		return c.field(fr, line)
	}

	return nil
}

// openDef registers a new definition under $defs and pushes its frame. An
// object def receives properties directly; an array def receives them on its
// items object.
func (c *compiler) openDef(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return parseErrorf(ErrStructure, `invalid def header "%s"`, line)
	}

	name, kind := fields[1], fields[2]

	def := schema.Object{"type": kind}
	target := def

	switch kind {
	case "object":
		def["properties"] = schema.Object{}
	case "array":
		items := schema.Object{
			"type":       "object",
			"properties": schema.Object{},
		}
		def["items"] = items
		target = items
	default:
		return parseErrorf(ErrStructure, `def "%s" must be object or array, got "%s"`, name, kind)
	}

	c.doc.Defs()[strings.ToLower(name)] = def
	c.stack = append(c.stack, newFrame(target))

	return nil
}

// openModel pushes a frame wrapping the document root.
func (c *compiler) openModel(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return parseErrorf(ErrStructure, `invalid model header "%s"`, line)
	}

	c.doc["title"] = strings.ToLower(fields[1])
	c.doc["type"] = "object"
	c.doc["properties"] = schema.Object{}

	c.stack = append(c.stack, newFrame(c.doc))

	return nil
}

// closeBlock pops the top frame and flushes its accumulators onto the target,
// each only when non-empty.
func (c *compiler) closeBlock() error {
	if len(c.stack) == 0 {
		return parseErrorf(ErrStructure, `unmatched "}"`)
	}

	fr := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	if len(fr.required) > 0 {
		fr.target["required"] = fr.required
	}

	if len(fr.rules) > 0 {
		fr.target["allOf"] = fr.rules
	}

	if fr.sort != nil {
		fr.target["sort"] = fr.sort
	}

	if fr.breadcrumb != nil {
		fr.target["breadcrumb"] = fr.breadcrumb
	}

	perms := schema.Object{}
	if len(fr.collection) > 0 {
		perms["collection"] = fr.collection
	}
	if len(fr.fieldPerms) > 0 {
		perms["field"] = fr.fieldPerms
	}
	if len(perms) > 0 {
		fr.target["permissions"] = perms
	}

	if len(fr.ui) > 0 {
		fr.target["ui"] = fr.ui
	}

	return nil
}

// field handles an ordinary `name: type @attr...` line.
func (c *compiler) field(fr *frame, line string) error {
	name, rest, ok := splitField(line)
	if !ok {
		return parseErrorf(ErrStructure, `invalid field line "%s"`, line)
	}

	frag := schema.Object{}

	if t := typeName(rest); t != "" {
		if t == "decimal" {
			frag["bsonType"] = "decimal"
		} else {
			frag["type"] = t
		}
	}

	if err := applyAttributes(tokens(rest), name, rest, frag, fr, &fr.fieldPerms); err != nil {
		return err
	}

	fr.target.Properties()[name] = frag

	return nil
}

func (c *compiler) top() (*frame, error) {
	if len(c.stack) == 0 {
		return nil, parseErrorf(ErrStructure, "statement outside of a block")
	}

	return c.stack[len(c.stack)-1], nil
}

func splitField(line string) (name string, rest string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i == -1 {
		return "", "", false
	}

	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}

// typeName returns the declared type: the part of the raw type string before
// the first annotation.
func typeName(rest string) string {
	if i := strings.IndexByte(rest, '@'); i != -1 {
		rest = rest[:i]
	}

	return strings.TrimSpace(rest)
}
