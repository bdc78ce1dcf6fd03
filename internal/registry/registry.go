package registry

import (
	"maps"
	"slices"
)

// Registry is a set of fully qualified class names.
type Registry struct {
	members map[string]struct{}
}

// New creates a registry holding the given names.
func New(names ...string) *Registry {
	r := &Registry{members: make(map[string]struct{}, len(names))}
	for _, n := range names {
		r.add(n)
	}
	return r
}

func (r *Registry) add(name string) {
	r.members[name] = struct{}{}
}

// Len returns the number of members.
func (r *Registry) Len() int {
	return len(r.members)
}

// Contains reports whether name is a member.
func (r *Registry) Contains(name string) bool {
	_, ok := r.members[name]
	return ok
}

// Sorted returns the members in lexicographic order.
func (r *Registry) Sorted() []string {
	return slices.Sorted(maps.Keys(r.members))
}

// Equal reports whether the registry holds exactly the given names,
// ignoring order and duplicates.
func (r *Registry) Equal(names []string) bool {
	other := New(names...)
	return maps.Equal(r.members, other.members)
}
