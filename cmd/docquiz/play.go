package main

import (
	"fmt"

	"github.com/fwojciec/docquiz"
	"github.com/fwojciec/docquiz/quiz"
)

// Run loads the link set from the index page once, then plays the game.
func (c *PlayCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.IndexURL)
	if err != nil {
		return fmt.Errorf("loading documentation index: %w", err)
	}

	links, err := deps.Links.ExtractLinks(html, c.BaseURL)
	if err != nil {
		return fmt.Errorf("loading documentation index: %w", err)
	}
	if len(links) == 0 {
		return docquiz.Errorf(docquiz.ENOTFOUND, "no internal reference links found at %s", c.IndexURL)
	}
	deps.Logger.Info("index loaded", "url", c.IndexURL, "links", len(links))

	game := quiz.NewGame(deps.Generator, deps.Stdin, deps.Stdout)
	return game.Play(deps.Ctx, deps.Session, links)
}
