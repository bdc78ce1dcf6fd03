// Package javaast is a lenient, span-preserving structural model of Java
// compilation units.
//
// It does not try to be a compiler front end. The parser recognizes the
// declaration skeleton a rewrite step needs (package, imports, type
// declarations, annotations, method signatures, parameters and javadoc) and
// records byte spans for each node. Method bodies, field initializers and
// expressions are skipped by bracket matching.
//
// Rewrites never print a whole file. New nodes are built structurally
// (NewAnnotation, MethodNode, ...), rendered by the printer, and spliced into
// the original source through Edit values, so untouched code keeps its exact
// bytes. After a batch of edits the file is parsed again.
package javaast
