package javaast

import (
	"bytes"
)

// Span is a half-open byte range [Start, End) into the file source.
type Span struct {
	Start int
	End   int
}

// ClassKind distinguishes the class-like declaration forms.
type ClassKind int

const (
	KindClass ClassKind = iota
	KindInterface
	KindEnum
	KindRecord
	KindAnnotationType
)

func (k ClassKind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	case KindAnnotationType:
		return "@interface"
	default:
		return "class"
	}
}

// File is one parsed compilation unit.
type File struct {
	Path        string
	Src         []byte
	Package     string
	PackageSpan Span
	Imports     []*Import
	Types       []*ClassDecl
}

// Import is a single import declaration.
type Import struct {
	Path     string
	Static   bool
	Wildcard bool
	Span     Span
}

// Annotation is a decorator as written in the source. Args is the raw text
// between the parentheses; HasParens distinguishes `@A` from `@A()`.
type Annotation struct {
	Name      string
	Args      string
	HasParens bool
	Span      Span
}

// ClassDecl is a class-like declaration. Body is nil when the declaration
// could not be read up to its closing brace.
type ClassDecl struct {
	Kind        ClassKind
	Name        string
	Qualified   string
	Annotations []*Annotation
	Modifiers   []string
	Doc         *Javadoc
	Span        Span
	Body        *Body
	Methods     []*MethodDecl
	Types       []*ClassDecl
	Outer       *ClassDecl
}

// Body records the offsets of a class body's braces and the indentation
// used by its members.
type Body struct {
	Open        int
	Close       int
	CloseIndent string
}

// MethodDecl is a method or constructor declaration.
type MethodDecl struct {
	Name        string
	Annotations []*Annotation
	Modifiers   []string
	ReturnType  *TypeRef
	Params      []*Param
	Doc         *Javadoc
	Constructor bool
	Span        Span
	Indent      string
}

// Param is a formal parameter.
type Param struct {
	Annotations []*Annotation
	Modifiers   []string
	Type        *TypeRef
	Name        string
	Varargs     bool
	Span        Span
}

// TypeRef is a type as written. Name is the dotted base name without type
// arguments or array dimensions; Text is the whole reference with
// whitespace removed.
type TypeRef struct {
	Name string
	Text string
	Span Span
}

// Classes returns every class-like declaration in document order, nested
// declarations following their enclosing one.
func (f *File) Classes() []*ClassDecl {
	var out []*ClassDecl
	var walk func(cs []*ClassDecl)
	walk = func(cs []*ClassDecl) {
		for _, c := range cs {
			out = append(out, c)
			walk(c.Types)
		}
	}
	walk(f.Types)
	return out
}

// Line returns the 1-based line number of a byte offset.
func (f *File) Line(offset int) int {
	if offset > len(f.Src) {
		offset = len(f.Src)
	}
	return bytes.Count(f.Src[:offset], []byte{'\n'}) + 1
}

// Text returns the source text covered by a span.
func (f *File) Text(s Span) string {
	return string(f.Src[s.Start:s.End])
}

// lineIndent returns the whitespace between the start of the line holding
// offset and offset itself, or "" when other text precedes it on that line.
func lineIndent(src []byte, offset int) string {
	i := offset
	for i > 0 && (src[i-1] == ' ' || src[i-1] == '\t') {
		i--
	}
	if i > 0 && src[i-1] != '\n' {
		return ""
	}
	return string(src[i:offset])
}

// lineStart returns the offset of the first byte on offset's line.
func lineStart(src []byte, offset int) int {
	i := offset
	for i > 0 && src[i-1] != '\n' {
		i--
	}
	return i
}

// IndentAt returns the whitespace preceding offset on its line, or "" when
// other text precedes it.
func (f *File) IndentAt(offset int) string {
	return lineIndent(f.Src, offset)
}
