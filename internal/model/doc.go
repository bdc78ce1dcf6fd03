// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory representation of a project being
// rewritten. Its core purpose is to hold every file of the project as a
// SourceUnit so the transformation stages can read and replace content
// without touching the disk.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Forest: The root container representing an entire project. It holds
//     one unit per file, ordered by path, and is the input and the output of
//     a transformation run.
//
//   - SourceUnit: One file of the project. It records the content it was
//     loaded with next to the current content, which lets the writer report
//     and persist only the files that actually changed.
//
//   - Format: The kind of a file as derived from its path. Stages pick the
//     units they care about by format: Java sources, Maven and Gradle build
//     descriptors, and properties or YAML configuration files.
//
// Why a separate model package?
//
// The stages of a run (descriptor resolution, annotation injection, registry
// scanning, provider synthesis and property merging) all work on the same
// set of files. Keeping that set in one package with no knowledge of the
// stages means each stage sees a plain tree of paths and bytes, and the
// filesystem layer only has to load a Forest and write back its changed
// units.
//
// Java units parse lazily and cache the syntax tree until their content is
// replaced, so a file that several stages inspect is parsed once per change.
package model
