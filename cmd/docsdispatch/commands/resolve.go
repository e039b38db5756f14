package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docsdispatch/internal/builder"
	"git.home.luguber.info/inful/docsdispatch/internal/config"
)

// ResolveCmd implements the 'resolve' command: the diagnostic counterpart
// of build. It never builds and always exits successfully.
type ResolveCmd struct {
	Branch string `short:"b" help:"Branch name override; skips querying git"`
}

func (r *ResolveCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	branch := resolveBranch(r.Branch)

	res := builder.NewDispatcher(cfg).Resolve(branch)
	if !res.Found {
		fmt.Println(builder.NoopNotice)
		return nil
	}

	fmt.Println(res.Version)
	return nil
}
