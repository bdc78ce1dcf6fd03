package javaast

import (
	"fmt"
	"strings"
)

var modifierWords = map[string]bool{
	"public":       true,
	"protected":    true,
	"private":      true,
	"static":       true,
	"final":        true,
	"abstract":     true,
	"native":       true,
	"synchronized": true,
	"transient":    true,
	"volatile":     true,
	"strictfp":     true,
	"default":      true,
	"sealed":       true,
}

type parser struct {
	src  []byte
	toks []token
	i    int
	file *File
}

// modifiers is the annotation/modifier prefix shared by every declaration.
type modifiers struct {
	annotations []*Annotation
	words       []string
	start       int
	doc         *rawDoc
}

// Parse builds the structural tree of one Java compilation unit. It fails
// only when the source cannot be tokenized; unknown constructs are skipped
// and declarations that end prematurely are recorded without a Body.
func Parse(path string, src []byte) (*File, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize %s: %w", path, err)
	}
	p := &parser{src: src, toks: toks, file: &File{Path: path, Src: src}}
	p.parseFile()
	return p.file, nil
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) peekN(k int) token {
	if p.i+k < len(p.toks) {
		return p.toks[p.i+k]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) eof() bool { return p.peek().kind == tokEOF }

func (p *parser) parseFile() {
	for !p.eof() {
		t := p.peek()
		switch {
		case t.is("package"):
			p.parsePackage()
		case t.is("import"):
			p.parseImport()
		case t.is(";"):
			p.next()
		default:
			before := p.i
			mods := p.parseModifiers()
			if kind, ok := p.classKeyword(); ok {
				p.file.Types = append(p.file.Types, p.parseTypeDecl(mods, kind, nil))
				continue
			}
			if p.i == before {
				p.next()
			}
		}
	}
}

func (p *parser) parsePackage() {
	start := p.next().pos
	name := p.qualifiedName()
	end := p.toks[p.i-1].end
	if p.peek().is(";") {
		end = p.next().end
	}
	p.file.Package = name
	p.file.PackageSpan = Span{Start: start, End: end}
}

func (p *parser) parseImport() {
	start := p.next().pos
	imp := &Import{}
	if p.peek().is("static") {
		p.next()
		imp.Static = true
	}
	var sb strings.Builder
	for !p.eof() && !p.peek().is(";") {
		t := p.next()
		if t.kind != tokIdent && !t.is(".") && !t.is("*") {
			break
		}
		sb.WriteString(t.text)
	}
	end := p.toks[p.i-1].end
	if p.peek().is(";") {
		end = p.next().end
	}
	path := sb.String()
	if strings.HasSuffix(path, ".*") {
		imp.Wildcard = true
		path = strings.TrimSuffix(path, ".*")
	}
	imp.Path = path
	imp.Span = Span{Start: start, End: end}
	p.file.Imports = append(p.file.Imports, imp)
}

func (p *parser) qualifiedName() string {
	if p.peek().kind != tokIdent {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p.next().text)
	for p.peek().is(".") && p.peekN(1).kind == tokIdent {
		p.next()
		sb.WriteByte('.')
		sb.WriteString(p.next().text)
	}
	return sb.String()
}

// skipBalanced consumes tokens from the current opener through its matching
// closer and returns the closer.
func (p *parser) skipBalanced(open, close string) (token, bool) {
	depth := 0
	for !p.eof() {
		t := p.next()
		switch {
		case t.is(open):
			depth++
		case t.is(close):
			depth--
			if depth == 0 {
				return t, true
			}
		}
	}
	return token{}, false
}

func (p *parser) parseModifiers() modifiers {
	m := modifiers{start: p.peek().pos, doc: p.peek().doc}
	for {
		t := p.peek()
		switch {
		case t.is("@") && !p.peekN(1).is("interface"):
			m.annotations = append(m.annotations, p.parseAnnotation())
		case t.kind == tokIdent && modifierWords[t.text]:
			m.words = append(m.words, p.next().text)
		case t.is("non") && p.peekN(1).is("-") && p.peekN(2).is("sealed"):
			p.next()
			p.next()
			p.next()
			m.words = append(m.words, "non-sealed")
		default:
			return m
		}
	}
}

func (p *parser) parseAnnotation() *Annotation {
	at := p.next()
	a := &Annotation{Name: p.qualifiedName()}
	a.Span = Span{Start: at.pos, End: p.toks[p.i-1].end}
	if p.peek().is("(") {
		open := p.peek()
		if closeTok, ok := p.skipBalanced("(", ")"); ok {
			a.Args = string(p.src[open.end:closeTok.pos])
			a.HasParens = true
			a.Span.End = closeTok.end
		}
	}
	return a
}

// classKeyword consumes the keyword introducing a class-like declaration.
func (p *parser) classKeyword() (ClassKind, bool) {
	t := p.peek()
	switch {
	case t.is("class"):
		p.next()
		return KindClass, true
	case t.is("interface"):
		p.next()
		return KindInterface, true
	case t.is("enum"):
		p.next()
		return KindEnum, true
	case t.is("@") && p.peekN(1).is("interface"):
		p.next()
		p.next()
		return KindAnnotationType, true
	case t.is("record") && p.peekN(1).kind == tokIdent && (p.peekN(2).is("(") || p.peekN(2).is("<")):
		p.next()
		return KindRecord, true
	}
	return 0, false
}

func (p *parser) parseTypeDecl(mods modifiers, kind ClassKind, outer *ClassDecl) *ClassDecl {
	cls := &ClassDecl{
		Kind:        kind,
		Annotations: mods.annotations,
		Modifiers:   mods.words,
		Doc:         parseJavadoc(mods.doc),
		Outer:       outer,
		Span:        Span{Start: mods.start},
	}
	if t := p.peek(); t.kind == tokIdent {
		cls.Name = p.next().text
	}
	switch {
	case outer != nil:
		cls.Qualified = outer.Qualified + "." + cls.Name
	case p.file.Package != "":
		cls.Qualified = p.file.Package + "." + cls.Name
	default:
		cls.Qualified = cls.Name
	}

	depth := 0
	for {
		t := p.peek()
		switch {
		case t.kind == tokEOF:
			cls.Span.End = t.pos
			return cls
		case t.is("("):
			depth++
		case t.is(")"):
			depth--
		case depth == 0 && t.is(";"):
			p.next()
			cls.Span.End = t.end
			return cls
		}
		if depth == 0 && t.is("{") {
			break
		}
		p.next()
	}
	p.parseClassBody(cls)
	return cls
}

func (p *parser) parseClassBody(cls *ClassDecl) {
	open := p.next()
	if cls.Kind == KindEnum {
		p.skipEnumConstants()
	}
	for {
		t := p.peek()
		switch {
		case t.kind == tokEOF:
			cls.Span.End = t.pos
			return
		case t.is("}"):
			p.next()
			cls.Body = &Body{Open: open.pos, Close: t.pos, CloseIndent: lineIndent(p.src, t.pos)}
			cls.Span.End = t.end
			return
		case t.is(";"):
			p.next()
		case t.is("{"):
			p.skipBalanced("{", "}")
		case t.is("static") && p.peekN(1).is("{"):
			p.next()
			p.skipBalanced("{", "}")
		default:
			before := p.i
			p.parseMember(cls)
			if p.i == before {
				p.next()
			}
		}
	}
}

// skipEnumConstants moves past the constant list of an enum body.
func (p *parser) skipEnumConstants() {
	depth := 0
	for !p.eof() {
		t := p.peek()
		switch {
		case t.is("(") || t.is("{") || t.is("["):
			depth++
		case t.is(")") || t.is("]"):
			depth--
		case t.is("}"):
			if depth == 0 {
				return
			}
			depth--
		case t.is(";") && depth == 0:
			p.next()
			return
		}
		p.next()
	}
}

func (p *parser) parseMember(cls *ClassDecl) {
	mods := p.parseModifiers()
	if kind, ok := p.classKeyword(); ok {
		cls.Types = append(cls.Types, p.parseTypeDecl(mods, kind, cls))
		return
	}
	if p.peek().is("<") {
		p.skipBalanced("<", ">")
	}

	t := p.peek()
	if t.kind == tokIdent && t.text == cls.Name {
		switch {
		case p.peekN(1).is("("):
			p.next()
			m := &MethodDecl{Name: t.text, Constructor: true}
			p.parseMethodRest(m, mods)
			cls.Methods = append(cls.Methods, m)
			return
		case cls.Kind == KindRecord && p.peekN(1).is("{"):
			p.next()
			p.skipBalanced("{", "}")
			return
		}
	}

	typ := p.parseType()
	if typ == nil || p.peek().kind != tokIdent {
		p.skipMember()
		return
	}
	name := p.next()
	if !p.peek().is("(") {
		p.skipMember()
		return
	}
	m := &MethodDecl{Name: name.text, ReturnType: typ}
	p.parseMethodRest(m, mods)
	cls.Methods = append(cls.Methods, m)
}

// skipMember skips a field or an unreadable member up to its terminating
// semicolon, stopping before the closing brace of the class.
func (p *parser) skipMember() {
	depth := 0
	for !p.eof() {
		t := p.peek()
		switch {
		case t.is("(") || t.is("{") || t.is("["):
			depth++
		case t.is(")") || t.is("]"):
			depth--
		case t.is("}"):
			if depth == 0 {
				return
			}
			depth--
		case t.is(";") && depth == 0:
			p.next()
			return
		}
		p.next()
	}
}

func (p *parser) parseMethodRest(m *MethodDecl, mods modifiers) {
	m.Annotations = mods.annotations
	m.Modifiers = mods.words
	m.Doc = parseJavadoc(mods.doc)
	m.Span.Start = mods.start
	m.Indent = lineIndent(p.src, mods.start)
	m.Params = p.parseParams()
	for {
		t := p.peek()
		switch {
		case t.is("{"):
			if closeTok, ok := p.skipBalanced("{", "}"); ok {
				m.Span.End = closeTok.end
			} else {
				m.Span.End = len(p.src)
			}
			return
		case t.is(";"):
			p.next()
			m.Span.End = t.end
			return
		case t.is("}") || t.kind == tokEOF:
			m.Span.End = t.pos
			return
		}
		p.next()
	}
}

func (p *parser) parseParams() []*Param {
	p.next()
	if p.peek().is(")") {
		p.next()
		return nil
	}
	var params []*Param
	for {
		mods := p.parseModifiers()
		typ := p.parseType()
		if typ == nil {
			p.recoverParams()
			return params
		}
		prm := &Param{
			Annotations: mods.annotations,
			Modifiers:   mods.words,
			Type:        typ,
			Span:        Span{Start: mods.start},
		}
		for p.peek().is("@") {
			p.parseAnnotation()
		}
		if p.peek().is("...") {
			p.next()
			prm.Varargs = true
		}
		nameTok := p.peek()
		if nameTok.kind != tokIdent {
			p.recoverParams()
			return params
		}
		p.next()
		prm.Name = nameTok.text
		prm.Span.End = nameTok.end
		for p.peek().is("[") && p.peekN(1).is("]") {
			p.next()
			prm.Span.End = p.next().end
		}
		params = append(params, prm)

		switch {
		case p.peek().is(","):
			p.next()
		case p.peek().is(")"):
			p.next()
			return params
		default:
			p.recoverParams()
			return params
		}
	}
}

// recoverParams skips to just past the parameter list's closing parenthesis.
func (p *parser) recoverParams() {
	depth := 1
	for !p.eof() {
		t := p.next()
		switch {
		case t.is("("):
			depth++
		case t.is(")"):
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

func (p *parser) parseType() *TypeRef {
	for p.peek().is("@") && !p.peekN(1).is("interface") {
		p.parseAnnotation()
	}
	first := p.peek()
	if first.kind != tokIdent {
		return nil
	}
	name := p.qualifiedName()
	last := p.toks[p.i-1]
	for p.peek().is("<") {
		closeTok, ok := p.skipBalanced("<", ">")
		if !ok {
			return nil
		}
		last = closeTok
		if p.peek().is(".") && p.peekN(1).kind == tokIdent {
			p.next()
			last = p.next()
			name += "." + last.text
		}
	}
	for p.peek().is("[") && p.peekN(1).is("]") {
		p.next()
		last = p.next()
	}
	span := Span{Start: first.pos, End: last.end}
	return &TypeRef{
		Name: name,
		Text: strings.Join(strings.Fields(string(p.src[span.Start:span.End])), " "),
		Span: span,
	}
}
