package main

import (
	"fmt"

	"github.com/king8fisher/synset"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	url := c.URL
	if url == "" {
		url = defaultSourceURL
	}

	path, err := deps.Fetcher.Fetch(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", synset.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
	return nil
}
