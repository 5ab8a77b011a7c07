//go:build cli

package main

import (
	"fmt"
	"os"

	"iconforge/internal/cli"
)

// run is the CLI-only entry point.
// This build excludes all GUI dependencies (Fyne, OpenGL, etc.) and can run
// on headless systems without graphics hardware.
func run() {
	if !cli.Execute(version) {
		fmt.Fprintf(os.Stderr, "IconForge %s (CLI-only build)\n", version)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: iconforge <command> [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  convert    Convert images into .ico files")
		fmt.Fprintln(os.Stderr, "  inspect    List the entries inside .ico files")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run 'iconforge <command> --help' for more information.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Note: This is a CLI-only build without GUI support.")
		fmt.Fprintln(os.Stderr, "For GUI version, build without the 'cli' tag.")
		os.Exit(0)
	}
}
