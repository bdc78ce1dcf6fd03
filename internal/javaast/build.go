package javaast

import (
	"fmt"
	"strings"
)

// Expr is an expression node that can be rendered as Java source. cont is
// the prefix of continuation lines.
type Expr interface {
	render(sb *strings.Builder, cont string)
}

// StringLit is a string literal; its value is escaped on rendering.
type StringLit string

// Ident is a bare identifier or dotted name.
type Ident string

// Call is a method invocation on Recv, or an unqualified call when Recv is
// nil.
type Call struct {
	Recv Expr
	Name string
	Args []Expr
}

// Chain builds a fluent call chain: base.calls[0](...).calls[1](...)...
func Chain(base Expr, calls ...Call) Expr {
	e := base
	for _, c := range calls {
		c.Recv = e
		e = &c
	}
	return e
}

func (s StringLit) render(sb *strings.Builder, _ string) {
	sb.WriteString(Quote(string(s)))
}

func (i Ident) render(sb *strings.Builder, _ string) {
	sb.WriteString(string(i))
}

func (c *Call) render(sb *strings.Builder, cont string) {
	// Walk down to the chain head; calls after the first one in a chain of
	// two or more break onto continuation lines.
	var calls []*Call
	var base Expr = c
	for {
		cc, ok := base.(*Call)
		if !ok || cc.Recv == nil {
			break
		}
		calls = append([]*Call{cc}, calls...)
		base = cc.Recv
	}
	if bc, ok := base.(*Call); ok {
		bc.renderOne(sb, cont)
	} else {
		base.render(sb, cont)
	}
	for i, cc := range calls {
		if i > 0 {
			sb.WriteString("\n" + cont)
		}
		sb.WriteByte('.')
		cc.renderOne(sb, cont)
	}
}

func (c *Call) renderOne(sb *strings.Builder, cont string) {
	sb.WriteString(c.Name)
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		a.render(sb, cont)
	}
	sb.WriteByte(')')
}

// Quote renders s as a Java string literal.
func Quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04x`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Attr is one annotation element-value pair.
type Attr struct {
	Name  string
	Value Expr
}

// AnnotationNode is an annotation to be rendered.
type AnnotationNode struct {
	Name  string
	Attrs []Attr
}

// NewAnnotation builds an annotation. A single attribute named "value" is
// rendered in the shorthand form.
func NewAnnotation(name string, attrs ...Attr) *AnnotationNode {
	return &AnnotationNode{Name: name, Attrs: attrs}
}

// String renders the annotation.
func (a *AnnotationNode) String() string {
	var sb strings.Builder
	sb.WriteString("@" + a.Name)
	if len(a.Attrs) == 0 {
		return sb.String()
	}
	sb.WriteByte('(')
	if len(a.Attrs) == 1 && a.Attrs[0].Name == "value" {
		a.Attrs[0].Value.render(&sb, "")
	} else {
		for i, at := range a.Attrs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(at.Name + " = ")
			at.Value.render(&sb, "")
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// Stmt is a statement inside a synthesized method body.
type Stmt interface {
	renderStmt(sb *strings.Builder, indent, unit string)
}

// Return is a `return <expr>;` statement. Continuation lines of the value
// are indented two steps past the statement.
type Return struct {
	Value Expr
}

func (r Return) renderStmt(sb *strings.Builder, indent, unit string) {
	sb.WriteString(indent + "return ")
	r.Value.render(sb, indent+unit+unit)
	sb.WriteByte(';')
}

// ParamNode is a formal parameter of a synthesized method.
type ParamNode struct {
	Type string
	Name string
}

// MethodNode is a method declaration to be rendered.
type MethodNode struct {
	Annotations []*AnnotationNode
	Modifiers   []string
	ReturnType  string
	Name        string
	Params      []ParamNode
	Body        []Stmt
}

// Render prints the method with every line starting with indent; unit is
// the file's indentation step.
func (m *MethodNode) Render(indent, unit string) string {
	var sb strings.Builder
	for _, a := range m.Annotations {
		sb.WriteString(indent + a.String() + "\n")
	}
	sb.WriteString(indent)
	for _, mod := range m.Modifiers {
		sb.WriteString(mod + " ")
	}
	sb.WriteString(m.ReturnType + " " + m.Name + "(")
	for i, p := range m.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Type + " " + p.Name)
	}
	sb.WriteString(") {\n")
	for _, s := range m.Body {
		s.renderStmt(&sb, indent+unit, unit)
		sb.WriteByte('\n')
	}
	sb.WriteString(indent + "}")
	return sb.String()
}
