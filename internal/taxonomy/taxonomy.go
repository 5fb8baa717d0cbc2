// Package taxonomy holds the catalog of recognized skill names grouped by category.
package taxonomy

import (
	"sort"
)

// Taxonomy maps a category name to an ordered list of skill names.
// It is never mutated after construction and is safe for concurrent reads.
type Taxonomy struct {
	categories map[string][]string
	flat       []string
}

// New builds a taxonomy from the provided category mapping. The input is copied.
func New(categories map[string][]string) *Taxonomy {
	t := &Taxonomy{categories: make(map[string][]string, len(categories))}

	names := make([]string, 0, len(categories))
	for name, skills := range categories {
		t.categories[name] = append([]string(nil), skills...)
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t.flat = append(t.flat, t.categories[name]...)
	}

	return t
}

// Empty returns a taxonomy without categories.
func Empty() *Taxonomy {
	return New(nil)
}

// Flat returns every skill of every category. Categories are visited in name order,
// skills keep their configured order; duplicates and case are preserved.
func (t *Taxonomy) Flat() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.flat...)
}

// Categories returns the sorted category names.
func (t *Taxonomy) Categories() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.categories))
	for name := range t.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Skills returns a copy of the skills configured for the category.
func (t *Taxonomy) Skills(category string) []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.categories[category]...)
}

// Len returns the number of entries in the flattened skill list.
func (t *Taxonomy) Len() int {
	if t == nil {
		return 0
	}
	return len(t.flat)
}
