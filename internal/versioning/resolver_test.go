package versioning

import "testing"

func TestResolve_KnownBranches(t *testing.T) {
	resolver := NewResolver(nil)

	cases := []struct {
		branch  string
		version string
	}{
		{"next", "next"},
		{"current", "latest"},
		{"2.x", "2.x"},
		{"1.x", "1.x"},
		{"0.x", "0.x"},
	}

	for _, c := range cases {
		t.Run(c.branch, func(t *testing.T) {
			version, found := resolver.Resolve(c.branch)
			if !found {
				t.Fatalf("expected branch %q to resolve", c.branch)
			}
			if version != c.version {
				t.Errorf("expected version %q, got %q", c.version, version)
			}
		})
	}
}

func TestResolve_UnknownBranches(t *testing.T) {
	resolver := NewResolver(nil)

	// Exact equality only: case variants and padded names must not match.
	unknown := []string{"", "main", "master", "Next", "CURRENT", " next", "next ", "3.x", "1.X"}
	for _, branch := range unknown {
		if version, found := resolver.Resolve(branch); found {
			t.Errorf("expected branch %q to have no docs version, resolved to %q", branch, version)
		}
	}
}

func TestNewResolver_EmptyTableUsesDefaults(t *testing.T) {
	resolver := NewResolver([]Mapping{})

	mappings := resolver.Mappings()
	defaults := DefaultMappings()
	if len(mappings) != len(defaults) {
		t.Fatalf("expected %d default mappings, got %d", len(defaults), len(mappings))
	}
	for i, m := range mappings {
		if m != defaults[i] {
			t.Errorf("mapping %d: expected %+v, got %+v", i, defaults[i], m)
		}
	}
}

func TestNewResolver_CustomTable(t *testing.T) {
	resolver := NewResolver([]Mapping{
		{Branch: "develop", Version: "dev"},
		{Branch: "release", Version: "stable"},
	})

	if version, found := resolver.Resolve("develop"); !found || version != "dev" {
		t.Errorf("expected develop to resolve to dev, got (%q, %v)", version, found)
	}

	// Custom tables replace the defaults entirely.
	if _, found := resolver.Resolve("next"); found {
		t.Error("expected next to be unmapped when a custom table is supplied")
	}
}

func TestNewResolver_FirstDeclarationWins(t *testing.T) {
	resolver := NewResolver([]Mapping{
		{Branch: "current", Version: "latest"},
		{Branch: "current", Version: "shadowed"},
	})

	version, found := resolver.Resolve("current")
	if !found || version != "latest" {
		t.Errorf("expected first declaration to win, got (%q, %v)", version, found)
	}
}

func TestMappings_ReturnsCopy(t *testing.T) {
	resolver := NewResolver(nil)

	first := resolver.Mappings()
	first[0].Version = "mutated"

	second := resolver.Mappings()
	if second[0].Version == "mutated" {
		t.Error("Mappings should return a copy, not the internal slice")
	}
}
