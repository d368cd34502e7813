package modelfile

import (
	"alias-resolver/internal/model"
)

// Export converts a Bundle back into its file form. Type names are written
// fully qualified, so the result does not depend on short-name resolution.
func Export(b *Bundle) *File {
	f := &File{Version: DefaultVersion}

	for _, ref := range b.Graph.Types() {
		decl, _ := b.Graph.ResolveType(ref)

		def := TypeDef{Name: string(ref)}
		for _, attr := range decl.Attributes {
			def.Attributes = append(def.Attributes, AttributeDef{
				Name:     attr.Name,
				AliasFor: exportMarker(attr.Marker),
			})
		}

		f.Types = append(f.Types, def)
	}

	for _, e := range b.Elements {
		def := ElementDef{Name: e.Name, Annotations: make([]AnnotationDef, 0, len(e.Stack))}
		for _, inst := range e.Stack {
			def.Annotations = append(def.Annotations, exportInstance(inst))
		}

		f.Elements = append(f.Elements, def)
	}

	return f
}

func exportMarker(m *model.AliasMarker) *AliasForDef {
	if m == nil {
		return nil
	}

	return &AliasForDef{
		Annotation: string(m.Annotation),
		Attribute:  m.Attribute,
		Value:      m.Value,
	}
}

func exportInstance(inst *model.Instance) AnnotationDef {
	def := AnnotationDef{Type: string(inst.Type)}
	if inst.Len() == 0 {
		return def
	}

	def.Values = make(map[string]ValueDef, inst.Len())
	for _, name := range inst.Names() {
		v, _ := inst.Attribute(name)
		def.Values[name] = ValueDef{Value: v}
	}

	return def
}
