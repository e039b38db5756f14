package versioning

// Mapping pairs a source-control branch name with the docs version label
// its builds are published under.
type Mapping struct {
	Branch  string `json:"branch" yaml:"branch"`
	Version string `json:"version" yaml:"version"`
}

// Resolution is the outcome of resolving a branch name against a mapping table.
type Resolution struct {
	Branch  string `json:"branch"`  // Branch name as queried (may be empty for detached HEAD)
	Version string `json:"version"` // Resolved version label, empty when Found is false
	Found   bool   `json:"found"`   // Whether the branch has a docs version
}

// Resolver resolves branch names to docs version labels.
type Resolver interface {
	// Resolve returns the version label for a branch, or found=false when
	// the branch has no docs version. Absence is not an error.
	Resolve(branch string) (version string, found bool)

	// Mappings returns the mapping table in declaration order.
	Mappings() []Mapping
}
