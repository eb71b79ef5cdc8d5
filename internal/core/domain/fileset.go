package domain

import "slices"

// FileSet is a set of prefix-relative file paths. Paths always use forward
// slashes, so membership is separator-insensitive across platforms.
type FileSet map[string]struct{}

// NewFileSet creates a set holding the given paths.
func NewFileSet(paths ...string) FileSet {
	s := make(FileSet, len(paths))
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts a path into the set.
func (s FileSet) Add(path string) {
	s[path] = struct{}{}
}

// Has reports whether the set contains path.
func (s FileSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Diff returns the paths present in s but not in other.
func (s FileSet) Diff(other FileSet) FileSet {
	out := make(FileSet)
	for p := range s {
		if !other.Has(p) {
			out.Add(p)
		}
	}
	return out
}

// Sorted returns the members of the set in lexical order.
func (s FileSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
