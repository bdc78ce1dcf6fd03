package javaast

import "strings"

// TypeIndex answers whether a fully qualified type name is known to exist.
// Wildcard imports are only expanded against names the index knows.
type TypeIndex interface {
	Has(fqn string) bool
}

// TypeSet is a TypeIndex backed by a set.
type TypeSet map[string]struct{}

// Has implements TypeIndex.
func (s TypeSet) Has(fqn string) bool {
	_, ok := s[fqn]
	return ok
}

// Add records names in the set.
func (s TypeSet) Add(fqns ...string) {
	for _, n := range fqns {
		s[n] = struct{}{}
	}
}

var javaLang = map[string]bool{
	"Object": true, "String": true, "Integer": true, "Long": true, "Short": true,
	"Byte": true, "Character": true, "Boolean": true, "Double": true, "Float": true,
	"Number": true, "Void": true, "Class": true, "Enum": true, "Record": true,
	"Iterable": true, "Comparable": true, "Runnable": true, "Thread": true,
	"Exception": true, "RuntimeException": true, "Error": true, "Throwable": true,
	"Math": true, "System": true, "StringBuilder": true, "CharSequence": true,
	"Override": true, "Deprecated": true, "FunctionalInterface": true, "SuppressWarnings": true,
}

// simpleName returns the last dotted segment.
func simpleName(fqn string) string {
	if i := strings.LastIndexByte(fqn, '.'); i >= 0 {
		return fqn[i+1:]
	}
	return fqn
}

// packageOf returns everything before the last dot.
func packageOf(fqn string) string {
	if i := strings.LastIndexByte(fqn, '.'); i >= 0 {
		return fqn[:i]
	}
	return ""
}

func (f *File) inPackage(name string) string {
	if f.Package == "" {
		return name
	}
	return f.Package + "." + name
}

// Resolve maps a type name as written in this file to a fully qualified
// name. Lookup order: single-type imports, types declared in the file,
// same-package types, wildcard imports (checked against idx), java.lang.
// Unresolvable simple names are assumed to live in the file's package and
// unresolvable dotted names are assumed to be fully qualified already.
func (f *File) Resolve(name string, idx TypeIndex) string {
	if name == "" {
		return ""
	}
	first, rest, dotted := strings.Cut(name, ".")
	suffix := func(base string) string {
		if dotted {
			return base + "." + rest
		}
		return base
	}
	for _, imp := range f.Imports {
		if !imp.Static && !imp.Wildcard && simpleName(imp.Path) == first {
			return suffix(imp.Path)
		}
	}
	for _, c := range f.Classes() {
		if c.Name == first {
			return suffix(c.Qualified)
		}
	}
	has := func(fqn string) bool { return idx != nil && idx.Has(fqn) }
	if local := f.inPackage(name); has(local) {
		return local
	}
	if dotted {
		return name
	}
	for _, imp := range f.Imports {
		if !imp.Static && imp.Wildcard && has(imp.Path+"."+name) {
			return imp.Path + "." + name
		}
	}
	if javaLang[name] {
		return "java.lang." + name
	}
	return f.inPackage(name)
}

// FindAnnotation returns the first annotation in anns that resolves to one
// of the given fully qualified names.
func (f *File) FindAnnotation(anns []*Annotation, idx TypeIndex, fqns ...string) *Annotation {
	for _, a := range anns {
		resolved := f.Resolve(a.Name, idx)
		for _, want := range fqns {
			if resolved == want {
				return a
			}
		}
	}
	return nil
}

// HasAnnotation reports whether any annotation in anns resolves to one of
// the given fully qualified names.
func (f *File) HasAnnotation(anns []*Annotation, idx TypeIndex, fqns ...string) bool {
	return f.FindAnnotation(anns, idx, fqns...) != nil
}

// CanUseSimple reports whether fqn may be referenced by its simple name once
// imported, that is, no other type visible in the file claims the same
// simple name.
func (f *File) CanUseSimple(fqn string, idx TypeIndex) bool {
	simple := simpleName(fqn)
	for _, imp := range f.Imports {
		if !imp.Static && !imp.Wildcard && simpleName(imp.Path) == simple && imp.Path != fqn {
			return false
		}
	}
	for _, c := range f.Classes() {
		if c.Name == simple && c.Qualified != fqn {
			return false
		}
	}
	if local := f.inPackage(simple); local != fqn && idx != nil && idx.Has(local) {
		return false
	}
	return true
}

// DeclaredTypes returns the qualified names of every class-like declaration
// in the file.
func (f *File) DeclaredTypes() []string {
	var out []string
	for _, c := range f.Classes() {
		out = append(out, c.Qualified)
	}
	return out
}
