package ast

import (
	"fmt"
	"strings"
)

// Sprint renders one top-level Definition as an s-expression, in the
// teacher's parenthesize-and-concat style. It is not a general-purpose
// GraphQL printer (round-tripping back to source is explicitly out of
// scope) — it exists so golden tests and the REPL have something legible
// to diff and read.
func (d *Document) Sprint(n Node) string {
	switch n.Kind {
	case NodeOperationDefinition:
		return d.sprintOperation(d.Operations.Get(Ref[OperationDefinition](n.Ref)))
	case NodeFragmentDefinition:
		return d.sprintFragment(d.Fragments.Get(Ref[FragmentDefinition](n.Ref)))
	case NodeSchemaDefinition:
		return d.sprintSchema("schema", d.Schemas.Get(Ref[SchemaDefinition](n.Ref)).Directives, d.Schemas.Get(Ref[SchemaDefinition](n.Ref)).RootOperationTypes)
	case NodeSchemaExtension:
		e := d.SchemaExts.Get(Ref[SchemaExtension](n.Ref))
		return d.sprintSchema("extend schema", e.Directives, e.RootOperationTypes)
	case NodeScalarTypeDefinition:
		t := d.Scalars.Get(Ref[ScalarTypeDefinition](n.Ref))
		return parenthesize("scalar", name(t.Name), stringer(d.directives(t.Directives)))
	case NodeScalarTypeExtension:
		t := d.ScalarExts.Get(Ref[ScalarTypeExtension](n.Ref))
		return parenthesize("extend-scalar", name(t.Name), stringer(d.directives(t.Directives)))
	case NodeObjectTypeDefinition:
		t := d.Objects.Get(Ref[ObjectTypeDefinition](n.Ref))
		return d.sprintObjectLike("type", t.Name, t.Implements, t.Directives, t.Fields)
	case NodeObjectTypeExtension:
		t := d.ObjectExts.Get(Ref[ObjectTypeExtension](n.Ref))
		return d.sprintObjectLike("extend-type", t.Name, t.Implements, t.Directives, t.Fields)
	case NodeInterfaceTypeDefinition:
		t := d.Interfaces.Get(Ref[InterfaceTypeDefinition](n.Ref))
		return d.sprintObjectLike("interface", t.Name, t.Implements, t.Directives, t.Fields)
	case NodeInterfaceTypeExtension:
		t := d.InterfaceExts.Get(Ref[InterfaceTypeExtension](n.Ref))
		return d.sprintObjectLike("extend-interface", t.Name, t.Implements, t.Directives, t.Fields)
	case NodeUnionTypeDefinition:
		t := d.Unions.Get(Ref[UnionTypeDefinition](n.Ref))
		return parenthesize("union", name(t.Name), stringer(d.directives(t.Directives)), names(t.MemberTypes))
	case NodeUnionTypeExtension:
		t := d.UnionExts.Get(Ref[UnionTypeExtension](n.Ref))
		return parenthesize("extend-union", name(t.Name), stringer(d.directives(t.Directives)), names(t.MemberTypes))
	case NodeEnumTypeDefinition:
		t := d.Enums.Get(Ref[EnumTypeDefinition](n.Ref))
		return parenthesize("enum", name(t.Name), stringer(d.directives(t.Directives)), stringer(d.enumValues(t.Values)))
	case NodeEnumTypeExtension:
		t := d.EnumExts.Get(Ref[EnumTypeExtension](n.Ref))
		return parenthesize("extend-enum", name(t.Name), stringer(d.directives(t.Directives)), stringer(d.enumValues(t.Values)))
	case NodeInputObjectTypeDefinition:
		t := d.InputObjects.Get(Ref[InputObjectTypeDefinition](n.Ref))
		return parenthesize("input", name(t.Name), stringer(d.directives(t.Directives)), stringer(d.inputValues(t.Fields)))
	case NodeInputObjectTypeExtension:
		t := d.InputObjectExts.Get(Ref[InputObjectTypeExtension](n.Ref))
		return parenthesize("extend-input", name(t.Name), stringer(d.directives(t.Directives)), stringer(d.inputValues(t.Fields)))
	case NodeDirectiveDefinition:
		return d.sprintDirectiveDefinition(d.DirectiveDefs.Get(Ref[DirectiveDefinition](n.Ref)))
	default:
		return "(undefined)"
	}
}

func (d *Document) sprintOperation(op *OperationDefinition) string {
	head := op.Operation.String()
	nm := stringer("")
	if op.Name != nil {
		nm = name(op.Name)
	}

	return parenthesize(head, nm, stringer(d.directives(op.Directives)), stringer(d.selectionSet(op.SelectionSet)))
}

func (d *Document) sprintFragment(f *FragmentDefinition) string {
	return parenthesize("fragment", name(f.Name), stringer("on "+string(f.TypeCondition)), stringer(d.directives(f.Directives)), stringer(d.selectionSet(f.SelectionSet)))
}

func (d *Document) sprintSchema(head string, directiveRefs []Ref[Directive], rootRefs []Ref[RootOperationTypeDefinition]) string {
	roots := make([]string, len(rootRefs))
	for i, r := range rootRefs {
		root := d.RootOperations.Get(r)
		roots[i] = fmt.Sprintf("(%s %s)", root.OperationType, root.NamedType)
	}

	return parenthesize(head, stringer(d.directives(directiveRefs)), stringer(strings.Join(roots, " ")))
}

func (d *Document) sprintObjectLike(head string, nm []byte, implements [][]byte, directiveRefs []Ref[Directive], fieldRefs []Ref[FieldDefinition]) string {
	fields := make([]string, len(fieldRefs))
	for i, r := range fieldRefs {
		fd := d.FieldDefinitions.Get(r)
		fields[i] = fmt.Sprintf("(%s %s)", fd.Name, d.typeRef(fd.Type))
	}

	return parenthesize(head, name(nm), names(implements), stringer(d.directives(directiveRefs)), stringer(strings.Join(fields, " ")))
}

func (d *Document) sprintDirectiveDefinition(dd *DirectiveDefinition) string {
	locs := make([]string, len(dd.Locations))
	for i, l := range dd.Locations {
		locs[i] = l.String()
	}
	repeatable := ""
	if dd.Repeatable {
		repeatable = "repeatable "
	}

	return fmt.Sprintf("(directive @%s %son %s)", dd.Name, repeatable, strings.Join(locs, "|"))
}

func (d *Document) selectionSet(r Ref[SelectionSet]) string {
	if !r.Valid() {
		return ""
	}
	set := d.SelectionSets.Get(r)
	parts := make([]string, len(set.Selections))
	for i, s := range set.Selections {
		parts[i] = d.sprintSelection(s)
	}

	return parenthesize("select", stringer(strings.Join(parts, " ")))
}

func (d *Document) sprintSelection(s Selection) string {
	switch s.Kind {
	case SelectionField:
		f := d.Fields.Get(Ref[Field](s.Ref))
		alias := stringer("")
		if f.Alias != nil {
			alias = stringer(string(f.Alias) + ":")
		}

		return parenthesize("field", alias, name(f.Name), stringer(d.arguments(f.Arguments)), stringer(d.directives(f.Directives)), stringer(d.selectionSet(f.SelectionSet)))
	case SelectionFragmentSpread:
		fs := d.FragSpreads.Get(Ref[FragmentSpread](s.Ref))
		return parenthesize("spread", name(fs.FragmentName), stringer(d.directives(fs.Directives)))
	case SelectionInlineFragment:
		inf := d.InlineFrags.Get(Ref[InlineFragment](s.Ref))
		cond := stringer("")
		if inf.TypeCondition != nil {
			cond = stringer("on " + string(inf.TypeCondition))
		}

		return parenthesize("inline", cond, stringer(d.directives(inf.Directives)), stringer(d.selectionSet(inf.SelectionSet)))
	default:
		return "(undefined-selection)"
	}
}

func (d *Document) arguments(refs []Ref[Argument]) string {
	if len(refs) == 0 {
		return ""
	}
	parts := make([]string, len(refs))
	for i, r := range refs {
		a := d.Arguments.Get(r)
		parts[i] = fmt.Sprintf("(%s %s)", a.Name, d.value(a.Value))
	}

	return parenthesize("args", stringer(strings.Join(parts, " ")))
}

func (d *Document) directives(refs []Ref[Directive]) string {
	if len(refs) == 0 {
		return ""
	}
	parts := make([]string, len(refs))
	for i, r := range refs {
		dir := d.Directives.Get(r)
		parts[i] = fmt.Sprintf("(@%s %s)", dir.Name, d.arguments(dir.Arguments))
	}

	return parenthesize("directives", stringer(strings.Join(parts, " ")))
}

func (d *Document) enumValues(refs []Ref[EnumValueDefinition]) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = string(d.EnumValues.Get(r).Value)
	}

	return parenthesize("values", stringer(strings.Join(parts, " ")))
}

func (d *Document) inputValues(refs []Ref[InputValueDefinition]) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		iv := d.InputValues.Get(r)
		parts[i] = fmt.Sprintf("(%s %s)", iv.Name, d.typeRef(iv.Type))
	}

	return parenthesize("fields", stringer(strings.Join(parts, " ")))
}

func (d *Document) typeRef(r Ref[Type]) string {
	t := d.Types.Get(r)
	switch t.Kind {
	case TypeNamed:
		return string(t.Name)
	case TypeList:
		return "[" + d.typeRef(t.OfType) + "]"
	case TypeNonNull:
		return d.typeRef(t.OfType) + "!"
	default:
		return "?"
	}
}

func (d *Document) value(v Value) string {
	switch v.Kind {
	case ValueVariable:
		return "$" + string(v.Name)
	case ValueInt, ValueFloat, ValueString, ValueEnum:
		return string(v.Name)
	case ValueBoolean:
		return fmt.Sprintf("%t", v.Boolean)
	case ValueNull:
		return "null"
	case ValueList:
		lv := d.ListValues.Get(v.List)
		parts := make([]string, len(lv.Values))
		for i, item := range lv.Values {
			parts[i] = d.value(item)
		}

		return "[" + strings.Join(parts, " ") + "]"
	case ValueObject:
		ov := d.ObjectValues.Get(v.Object)
		parts := make([]string, len(ov.Fields))
		for i, f := range ov.Fields {
			parts[i] = fmt.Sprintf("%s: %s", f.Name, d.value(f.Value))
		}

		return "{" + strings.Join(parts, " ") + "}"
	default:
		return "?"
	}
}

// stringer/name/names adapt plain strings and byte slices to
// fmt.Stringer so parenthesize can treat them uniformly, the same
// role token.Token.String plays in the teacher's printer.
type stringer string

func (s stringer) String() string { return string(s) }

func name(b []byte) stringer { return stringer(b) }

func names(bs [][]byte) stringer {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = string(b)
	}

	return stringer(strings.Join(parts, " "))
}

func parenthesize(head string, elems ...fmt.Stringer) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(head)
	for _, e := range elems {
		s := e.String()
		if s == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(s)
	}
	b.WriteString(")")

	return b.String()
}
