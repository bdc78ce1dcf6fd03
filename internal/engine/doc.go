// Package engine runs the whole transformation over a project forest.
//
// One pass resolves the feature flag from the build descriptors, injects
// tool annotations, rebuilds the tool registry and reconciles the provider
// method. Passes repeat until one injects nothing. The server properties
// are merged once after that. The engine works on a clone of the caller's
// forest, so a failed run leaves the input untouched.
package engine
