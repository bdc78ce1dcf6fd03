// Package provider keeps the tool callback provider method of the
// application entry-point class in step with the tool registry.
//
// The provider method is the member of the entry-point class whose return
// type resolves to the provider type. A class without one gets a new method
// appended as its last member. A class with one whose parameter types
// already equal the registry is left alone; otherwise the method is replaced
// in place, keeping its name. A class with two or more is a fatal
// CardinalityError, and no class is rewritten when any class is in that
// state.
package provider
