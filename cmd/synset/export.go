package main

import (
	"fmt"

	"github.com/king8fisher/synset"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	opts := synset.ExportOptions{
		Overwrite: c.Force,
		Progress: func(p synset.ExportProgress) {
			if p.Current == p.Total {
				fmt.Fprintf(deps.Stdout, "%s %d/%d\n", p.Phase, p.Current, p.Total)
			}
		},
	}

	if err := deps.Exporter.Export(deps.Ctx, deps.Index, opts); err != nil {
		if synset.ErrorCode(err) == synset.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "Hint: pass --force to overwrite the existing database\n")
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", synset.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported to %s\n", c.Dest)
	return nil
}
