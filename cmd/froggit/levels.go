package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julialudwig/froggit/internal/levels"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows built-in levels, or the levels found in a directory.

Examples:
  froggit levels
  froggit levels --dir ./my-levels`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "dir", "", "Directory to scan for level files")
}

func runLevels(cmd *cobra.Command, args []string) {
	var (
		lvls []levels.Level
		err  error
	)

	if flagLevelsDir != "" {
		lvls, err = levels.NewLoader(flagLevelsDir).LoadAll()
	} else {
		lvls, err = levels.Builtin()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels found.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "--", "----", "----")

	// Print levels
	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, l.ID, size, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'froggit play --level <id>' to play a level.")
}
