package cmd

import (
	"errors"
	"os"

	"github.com/SJShaw/brawn/align"
	"github.com/SJShaw/brawn/cache"
	brawnio "github.com/SJShaw/brawn/io"
	"github.com/spf13/cobra"
)

var referenceAlignmentPath string

var mergeCmd = &cobra.Command{
	Use:   "merge [query fasta]",
	Short: "Merge a query sequence or alignment into a reference alignment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runMerge(args[0])
	},
}

func init() {
	mergeCmd.Flags().StringVar(&referenceAlignmentPath, "reference-alignment", "",
		"Path to the reference alignment: a cache file, or a FASTA file")
	mergeCmd.MarkFlagRequired("reference-alignment")
	RootCmd.AddCommand(mergeCmd)
}

func runMerge(queryPath string) {
	queryFile, err := os.Open(queryPath)
	if err != nil {
		brawnio.ExitWithMessage(err)
	}
	defer queryFile.Close()

	queryNames, queryRaw, err := brawnio.ReadFASTA(queryFile)
	if err != nil {
		brawnio.ExitWithMessage(err)
	}
	query, err := align.NewAlignment(queryNames, queryRaw)
	if err != nil {
		brawnio.ExitWithMessage(err)
	}

	reference, err := loadReference()
	if err != nil {
		brawnio.ExitWithMessage(err)
	}
	query.SetAlphabet(reference.Alphabet())

	result, err := align.CombineAlignments(query, reference)
	if err != nil {
		brawnio.ExitWithMessage(err)
	}

	writer := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			brawnio.ExitWithMessage(err)
		}
		defer f.Close()
		writer = f
	}
	if err := brawnio.WriteFASTA(writer, result.Names(), result.Sequences(), outputColumns); err != nil {
		brawnio.ExitWithMessage(err)
	}
}

// loadReference builds the reference Alignment from --reference-alignment,
// trying it as a cache file first and falling back to FASTA if it isn't
// one, per spec.md §6.
func loadReference() (*align.Alignment, error) {
	f, err := os.Open(referenceAlignmentPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	al, err := cache.Load(f)
	if err == nil {
		return al, nil
	}
	if !errors.Is(err, align.ErrInvalidCacheFormat) {
		return nil, err
	}

	if _, err := f.Seek(0, os.SEEK_SET); err != nil {
		return nil, err
	}
	names, raw, err := brawnio.ReadFASTA(f)
	if err != nil {
		return nil, err
	}
	return align.NewAlignment(names, raw)
}
