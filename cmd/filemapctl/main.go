package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/akmistry/filemap/internal/app/filemapctl"
)

var (
	sizeFlag      string
	verboseFlag   bool
	checkEachFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "filemapctl --size SIZE [OP...]",
	Short: "Print the data and hole map of a sparse file",
	Long: `filemapctl applies a sequence of writes and hole punches to an empty
sparse file and prints the resulting map, one "<type>: <length>" line
per section.

Each OP is "data:OFF:LEN" or "hole:OFF:LEN". SIZE, OFF and LEN are unit
counts with an optional K, M, G, T or P suffix.

Example: filemapctl --size 100 data:0:10 data:50:25 hole:60:5`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&sizeFlag, "size", "s", "", "File size")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().BoolVar(&checkEachFlag, "check-each", false,
		"Check for errors after every operation and report the first one rejected")
	rootCmd.MarkFlagRequired("size")
}

func run(cmd *cobra.Command, args []string) error {
	if verboseFlag {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	size, err := filemapctl.ParseSizeString(sizeFlag)
	if err != nil {
		return fmt.Errorf("invalid size flag %q: %w", sizeFlag, err)
	}
	ops, err := filemapctl.ParseOps(args)
	if err != nil {
		return err
	}

	return filemapctl.Run(cmd.OutOrStdout(), filemapctl.Options{
		Size:      size,
		Ops:       ops,
		CheckEach: checkEachFlag,
	})
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
