package cmd

import (
	"os"

	"github.com/SJShaw/brawn/align"
	"github.com/SJShaw/brawn/cache"
	brawnio "github.com/SJShaw/brawn/io"
	"github.com/spf13/cobra"
)

var buildCacheOutput string

var buildCacheCmd = &cobra.Command{
	Use:   "build-cache [reference alignment fasta]",
	Short: "Precompute a reference alignment's weights and profiles to a cache file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBuildCache(args[0])
	},
}

func init() {
	buildCacheCmd.Flags().StringVarP(&buildCacheOutput, "build-cache", "c", "",
		"Path to write the cache file to")
	buildCacheCmd.MarkFlagRequired("build-cache")
	RootCmd.AddCommand(buildCacheCmd)
}

func runBuildCache(referencePath string) {
	in, err := os.Open(referencePath)
	if err != nil {
		brawnio.ExitWithMessage(err)
	}
	defer in.Close()

	names, raw, err := brawnio.ReadFASTA(in)
	if err != nil {
		brawnio.ExitWithMessage(err)
	}
	reference, err := align.NewAlignment(names, raw)
	if err != nil {
		brawnio.ExitWithMessage(err)
	}

	out, err := os.Create(buildCacheOutput)
	if err != nil {
		brawnio.ExitWithMessage(err)
	}
	defer out.Close()

	if err := cache.Save(out, reference); err != nil {
		brawnio.ExitWithMessage(err)
	}
}
