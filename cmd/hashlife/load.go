package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelsim/hashlife"
	"github.com/kestrelsim/hashlife/pkg/rle"
)

func init() {
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load <file.rle>",
	Short: "Parse an RLE file into a fresh universe and print its population, root level and generation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := loadUniverse(args[0])
		if err != nil {
			return err
		}

		stats := u.Stats()
		fmt.Printf("population=%d root_level=%d generation=%d\n", stats.Population, stats.RootLevel, stats.Generation)
		return nil
	},
}

// loadUniverse opens path, parses its RLE body into a fresh universe, and
// returns it. Shared by load/run/render so every subcommand parses the
// same way.
func loadUniverse(path string) (*hashlife.Universe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pattern file %q: %w", path, err)
	}
	defer f.Close()

	u := hashlife.New()
	if err := rle.Load(f, u, 0, 0); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return u, nil
}
