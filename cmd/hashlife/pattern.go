package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kestrelsim/hashlife/pkg/patternstore"
)

func init() {
	rootCmd.AddCommand(patternCmd)
	patternCmd.AddCommand(patternPutCmd, patternGetCmd, patternListCmd, patternRmCmd)

	patternPutCmd.Flags().StringVar(&patternDescription, "description", "", "human-readable description of the pattern")
}

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Manage the sqlite-backed catalogue of named RLE patterns",
}

func openStore() (*patternstore.Store, error) {
	return patternstore.Open(cfg.Store.Path)
}

var patternDescription string

var patternPutCmd = &cobra.Command{
	Use:   "put <name> <file.rle>",
	Short: "Catalogue an RLE file under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", args[1], err)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		p, err := store.Put(args[0], patternDescription, string(body))
		if err != nil {
			return err
		}

		fmt.Printf("stored pattern %q as id %s\n", p.Name, p.ID)
		return nil
	},
}

var patternGetCmd = &cobra.Command{
	Use:   "get <name-or-id>",
	Short: "Print a catalogued pattern's RLE source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		p, err := store.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Print(p.RLE)
		return nil
	},
}

var patternListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogued patterns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		patterns, err := store.List()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Name", "ID", "Description", "Created"})
		for _, p := range patterns {
			t.AppendRow(table.Row{p.Name, p.ID, p.Description, p.CreatedAt.Format("2006-01-02 15:04:05")})
		}
		t.Render()
		return nil
	},
}

var patternRmCmd = &cobra.Command{
	Use:   "rm <name-or-id>",
	Short: "Remove a catalogued pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(args[0]); err != nil {
			return err
		}

		fmt.Printf("removed pattern %q\n", args[0])
		return nil
	},
}
