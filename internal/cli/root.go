package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is set by main.go
var Version = "dev"

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "iconforge",
	Short: "Convert images into Windows .ico icons",
	Long: `IconForge converts raster images into Windows .ico icon files:
  - Reads PNG, JPEG, BMP, GIF, TGA, WebP, and ICO images
  - Embeds multiple resolutions (16 to 256 pixels) in one icon
  - Optional rounded corners with an antialiased mask
  - 32-bit entries with full transparency, or 8-bit palettized
    entries with a 1-bit mask for legacy consumers`,
	Version: Version,
}

// Global reporter for signal handling
var globalReporter *Reporter

// Execute runs the CLI application.
// Returns true if CLI mode was activated, false if GUI should run instead.
func Execute(version string) bool {
	Version = version
	rootCmd.Version = version

	// Check if we're in CLI mode (have subcommands)
	if len(os.Args) < 2 {
		return false
	}

	// Check if first arg is a known subcommand
	cmd := os.Args[1]
	if cmd != "convert" && cmd != "inspect" && cmd != "help" && cmd != "--help" && cmd != "-h" && cmd != "version" && cmd != "--version" && cmd != "-v" {
		return false
	}

	// Set up signal handling for graceful cancellation
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		if globalReporter != nil {
			globalReporter.Cancel()
			fmt.Fprintln(os.Stderr, "\nCancelling operation...")
		} else {
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	return true
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
