package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"iconforge/internal/ico"
	"iconforge/internal/util"

	"github.com/spf13/cobra"
)

func init() {
	inspectCmd.SilenceErrors = true
	inspectCmd.SilenceUsage = true
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.ico> [more.ico ...]",
	Short: "List the entries inside .ico files",
	Long: `Inspect prints the directory of one or more .ico files: every
embedded resolution with its bit depth, storage format, and size.

Example:
  iconforge inspect app.ico`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	var failed bool
	for i, path := range args {
		if i > 0 {
			fmt.Println()
		}
		if err := inspectOne(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("some files could not be inspected")
	}
	return nil
}

func inspectOne(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rd, err := ico.NewReader(f)
	if err != nil {
		return err
	}

	entries := rd.Entries()
	fmt.Printf("%s: %d entries\n", path, len(entries))

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tRESOLUTION\tDEPTH\tSTORED\tSIZE")
	for i, e := range entries {
		format := "BMP"
		if e.PNG {
			format = "PNG"
		}
		fmt.Fprintf(w, "  %d\t%d x %d\t%d-bit\t%s\t%s\n",
			i, e.Width, e.Height, e.BitCount, format, util.Sizeify(int64(e.Size)))
	}
	return w.Flush()
}
