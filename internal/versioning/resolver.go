// Package versioning maps source-control branch names to documentation
// version labels. The mapping table is fixed at construction time and
// matching is exact string equality: no normalization, case folding, or
// trimming is applied, so "Next" and " next" do not resolve.
package versioning

// DefaultMappings is the built-in branch-to-version table, in declaration
// order. Branches outside this set have no docs version.
func DefaultMappings() []Mapping {
	return []Mapping{
		{Branch: "next", Version: "next"},
		{Branch: "current", Version: "latest"},
		{Branch: "2.x", Version: "2.x"},
		{Branch: "1.x", Version: "1.x"},
		{Branch: "0.x", Version: "0.x"},
	}
}

// TableResolver implements Resolver over a fixed ordered mapping table.
type TableResolver struct {
	mappings []Mapping
	index    map[string]string
}

// NewResolver creates a resolver over the given mapping table. A nil or
// empty table falls back to DefaultMappings.
func NewResolver(mappings []Mapping) *TableResolver {
	if len(mappings) == 0 {
		mappings = DefaultMappings()
	}

	index := make(map[string]string, len(mappings))
	for _, m := range mappings {
		// First declaration wins so the table stays order-sensitive.
		if _, exists := index[m.Branch]; !exists {
			index[m.Branch] = m.Version
		}
	}

	return &TableResolver{mappings: mappings, index: index}
}

// Resolve returns the version label for a branch name using exact equality.
func (r *TableResolver) Resolve(branch string) (string, bool) {
	version, found := r.index[branch]
	return version, found
}

// Mappings returns a copy of the mapping table in declaration order.
func (r *TableResolver) Mappings() []Mapping {
	out := make([]Mapping, len(r.mappings))
	copy(out, r.mappings)
	return out
}
