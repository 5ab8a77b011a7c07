//go:build !cli

package main

import (
	"iconforge/internal/cli"
	"iconforge/internal/ui"
)

// run is the GUI+CLI entry point.
// It first checks for CLI subcommands, and if none are found, launches the GUI.
func run() {
	// Check for CLI mode first (convert/inspect subcommands)
	if cli.Execute(version) {
		return
	}

	// Initialize and run the graphical user interface.
	// The UI handles drag-and-drop file selection, conversion options,
	// progress reporting, and all user interactions.
	ui.NewApp(version).Run()
}
