// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines SourceUnit, one file of the project held in memory.
//
// A unit remembers the bytes it was created with so the caller can tell which
// files a run actually changed. Java units are parsed on first use and the
// tree is discarded whenever the content is replaced.
package model

import (
	"bytes"
	"path"
	"sync"

	"github.com/specialistvlad/webtomcp/internal/javaast"
)

// SourceUnit is a single file of the project forest. Path is a slash
// separated path relative to the project root.
type SourceUnit struct {
	Path   string
	Format Format

	mu       sync.Mutex
	original []byte
	content  []byte
	java     *javaast.File
	javaErr  error
	parsed   bool
}

// NewSourceUnit creates a unit and tags its format from the path.
func NewSourceUnit(p string, content []byte) *SourceUnit {
	p = path.Clean(p)
	return &SourceUnit{
		Path:     p,
		Format:   FormatForPath(p),
		original: content,
		content:  content,
	}
}

// Content returns the current bytes of the unit. Callers must not modify
// the returned slice.
func (u *SourceUnit) Content() []byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.content
}

// SetContent replaces the unit's bytes and drops any parsed tree.
func (u *SourceUnit) SetContent(b []byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.content = b
	u.java = nil
	u.javaErr = nil
	u.parsed = false
}

// Java returns the parsed tree of a Java unit. Non-Java units return nil
// without error.
func (u *SourceUnit) Java() (*javaast.File, error) {
	if u.Format != FormatJava {
		return nil, nil
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.parsed {
		u.java, u.javaErr = javaast.Parse(u.Path, u.content)
		u.parsed = true
	}
	return u.java, u.javaErr
}

// Changed reports whether the content differs from what the unit was
// created with.
func (u *SourceUnit) Changed() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return !bytes.Equal(u.original, u.content)
}

func (u *SourceUnit) clone() *SourceUnit {
	u.mu.Lock()
	defer u.mu.Unlock()
	return &SourceUnit{
		Path:     u.Path,
		Format:   u.Format,
		original: u.content,
		content:  u.content,
	}
}
