// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Forest, the ordered set of source units that make up one
// project.
//
// Units are kept sorted by path so every traversal of the forest visits
// files in the same order regardless of how the forest was assembled.
package model

import (
	"sort"
)

// Forest is the in-memory project tree.
type Forest struct {
	units  []*SourceUnit
	byPath map[string]*SourceUnit
}

// NewForest builds a forest from path to content pairs.
func NewForest(files map[string]string) *Forest {
	f := &Forest{byPath: make(map[string]*SourceUnit, len(files))}
	for p, content := range files {
		f.Add(NewSourceUnit(p, []byte(content)))
	}
	return f
}

// Add inserts a unit, replacing any unit with the same path.
func (f *Forest) Add(u *SourceUnit) {
	if f.byPath == nil {
		f.byPath = make(map[string]*SourceUnit)
	}
	if _, ok := f.byPath[u.Path]; ok {
		for i, existing := range f.units {
			if existing.Path == u.Path {
				f.units[i] = u
				break
			}
		}
		f.byPath[u.Path] = u
		return
	}
	i := sort.Search(len(f.units), func(i int) bool { return f.units[i].Path >= u.Path })
	f.units = append(f.units, nil)
	copy(f.units[i+1:], f.units[i:])
	f.units[i] = u
	f.byPath[u.Path] = u
}

// Units returns every unit in path order.
func (f *Forest) Units() []*SourceUnit {
	return f.units
}

// Len returns the number of units.
func (f *Forest) Len() int {
	return len(f.units)
}

// Lookup finds a unit by path.
func (f *Forest) Lookup(p string) (*SourceUnit, bool) {
	u, ok := f.byPath[p]
	return u, ok
}

// OfFormat returns the units tagged with the given format, in path order.
func (f *Forest) OfFormat(format Format) []*SourceUnit {
	var out []*SourceUnit
	for _, u := range f.units {
		if u.Format == format {
			out = append(out, u)
		}
	}
	return out
}

// Clone returns an independent copy whose units treat their current content
// as the original. Content slices are shared because units never modify
// bytes in place.
func (f *Forest) Clone() *Forest {
	c := &Forest{
		units:  make([]*SourceUnit, len(f.units)),
		byPath: make(map[string]*SourceUnit, len(f.units)),
	}
	for i, u := range f.units {
		cu := u.clone()
		c.units[i] = cu
		c.byPath[cu.Path] = cu
	}
	return c
}

// Changed returns the units whose content differs from the original.
func (f *Forest) Changed() []*SourceUnit {
	var out []*SourceUnit
	for _, u := range f.units {
		if u.Changed() {
			out = append(out, u)
		}
	}
	return out
}

// Files returns a snapshot of the forest as path to content pairs.
func (f *Forest) Files() map[string]string {
	out := make(map[string]string, len(f.units))
	for _, u := range f.units {
		out[u.Path] = string(u.Content())
	}
	return out
}
