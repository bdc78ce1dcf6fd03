// internal/qname/doc.go

/*
Package qname provides a structured representation for fully qualified Java
type names, based on the canonical dotted format `pkg.sub.Type`.

Nested types are written with dots as well (`pkg.Outer.Inner`), which is the
form used both in import declarations and in the tool registry.

This package centralizes parsing, formatting and ordering of those names so
that every component agrees on what "the same type" means.
*/
package qname
