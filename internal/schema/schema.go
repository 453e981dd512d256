package schema

// Object is a JSON-Schema-shaped fragment. The compiler builds documents by
// setting keywords on these maps one at a time, so the type stays an open map
// instead of a fixed struct: conditional rules and legacy flat actions may
// write keywords the compiler has no prior knowledge of.
type Object map[string]any

// NewDocument returns an empty schema document. A document with no blocks
// compiles to exactly this value.
func NewDocument() Object {
	return Object{"$defs": Object{}}
}

// Defs returns the document's definition map.
func (o Object) Defs() Object {
	return o["$defs"].(Object)
}

// Properties returns the object's property map, creating it when absent.
func (o Object) Properties() Object {
	if p, ok := o["properties"]; ok {
		return p.(Object)
	}

	p := Object{}
	o["properties"] = p

	return p
}

// Property returns the named property fragment, or nil.
func (o Object) Property(name string) Object {
	p, ok := o["properties"].(Object)
	if !ok {
		return nil
	}

	f, _ := p[name].(Object)
	return f
}
