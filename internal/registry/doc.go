// Package registry derives the set of tool classes from a project forest.
//
// A tool class is any class-like declaration with at least one method that
// carries the tool marker. The registry is rebuilt from scratch on every
// pass and never cached, so it always reflects the current source text.
// Its sorted form is the parameter order used by the provider method.
package registry
