package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docsdispatch/internal/config"
)

// MappingsCmd implements the 'mappings' command.
type MappingsCmd struct{}

func (m *MappingsCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Declaration order is meaningful, so no sorting here.
	for _, mapping := range cfg.Resolver().Mappings() {
		fmt.Printf("%-12s -> %s\n", mapping.Branch, mapping.Version)
	}
	return nil
}
