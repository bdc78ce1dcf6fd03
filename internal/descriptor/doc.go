// Package descriptor decides whether a project declares the dependency that
// enables the rewrite. It recognises Maven `pom.xml` files and Gradle build
// scripts in Groovy or Kotlin form.
//
// Each scanner is a pure function from file content to a yes/no answer; the
// Resolver combines their answers into the run's feature flag, which only
// ever moves from false to true.
package descriptor
