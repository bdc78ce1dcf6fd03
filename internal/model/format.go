// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Format, the tag assigned to every source unit when it
// enters a forest. Later stages switch on the tag instead of re-inspecting
// file names.
package model

import (
	"path"
	"strings"
)

// Format classifies the content of a SourceUnit.
type Format int

const (
	FormatOther Format = iota
	FormatJava
	FormatXML
	FormatGradle
	FormatProperties
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJava:
		return "java"
	case FormatXML:
		return "xml"
	case FormatGradle:
		return "gradle"
	case FormatProperties:
		return "properties"
	case FormatYAML:
		return "yaml"
	default:
		return "other"
	}
}

// FormatForPath derives the format tag from a file's name.
func FormatForPath(p string) Format {
	base := path.Base(p)
	switch {
	case strings.HasSuffix(base, ".java"):
		return FormatJava
	case strings.HasSuffix(base, ".xml"):
		return FormatXML
	case strings.HasSuffix(base, ".gradle"), strings.HasSuffix(base, ".gradle.kts"):
		return FormatGradle
	case strings.HasSuffix(base, ".properties"):
		return FormatProperties
	case strings.HasSuffix(base, ".yml"), strings.HasSuffix(base, ".yaml"):
		return FormatYAML
	default:
		return FormatOther
	}
}
