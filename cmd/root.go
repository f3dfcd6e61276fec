// Package cmd implements the command-line surface (spec.md §6), wiring
// github.com/spf13/cobra the way goalign's own cmd package does:
// package-level commands registered onto a shared RootCmd in each
// file's init.
package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

// RootCmd is the base command every subcommand registers itself onto.
var RootCmd = &cobra.Command{
	Use:   "brawn",
	Short: "Merges a query alignment into a reference alignment",
	Long: `brawn merges a query multiple sequence alignment into a reference
alignment via profile-profile alignment, preserving every column of
both inputs and inserting gap columns so the two line up.`,
}

var (
	outputColumns int
	outputPath    string
)

func init() {
	RootCmd.PersistentFlags().IntVar(&outputColumns, "output-columns", 60,
		"Output FASTA wrap width; <= 0 means no wrapping")
	RootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "",
		"Output file path (default stdout)")
}

// Execute runs the CLI, rewriting MUSCLE-compatible arguments first.
func Execute() {
	RootCmd.SetArgs(swapMuscleArgs(os.Args[1:]))
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// swapMuscleArgs rewrites the MUSCLE-style flags accepted for
// compatibility into brawn's native flag names (spec.md §6):
// -profile and -quiet are stripped, -in1 becomes the positional query
// path, -in2 becomes --reference-alignment. When -in1 or -in2 is
// rewritten and the merge subcommand is not named, it is prepended.
func swapMuscleArgs(args []string) []string {
	out := make([]string, 0, len(args)+1)
	rewrote := false
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-profile", "-quiet":
			continue
		case "-in1":
			rewrote = true
			if i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		case "-in2":
			rewrote = true
			if i+1 < len(args) {
				i++
				out = append(out, "--reference-alignment", args[i])
			}
		default:
			out = append(out, args[i])
		}
	}
	if rewrote && !slices.Contains(out, mergeCmd.Name()) {
		out = append([]string{mergeCmd.Name()}, out...)
	}
	return out
}
