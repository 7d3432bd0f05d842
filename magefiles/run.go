//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

func bin() string { return filepath.Join(binDir, binName) }

// Search builds the CLI and caches arXiv results for topic.
func Search(topic string) error {
	mg.Deps(Init, Build)
	return sh.RunV(bin(), "search", topic)
}

// Ask builds the CLI and routes one input (paper ID or question).
func Ask(input string) error {
	mg.Deps(Build)
	return sh.RunV(bin(), "ask", input)
}

// Serve builds the CLI and starts the HTTP API.
func Serve() error {
	mg.Deps(Init, Build)
	return sh.RunV(bin(), "serve")
}
