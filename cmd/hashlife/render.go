package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kestrelsim/hashlife/pkg/render"
)

var renderRect string

func init() {
	renderCmd.Flags().StringVar(&renderRect, "rect", "-8,-8,7,7", "viewport rectangle as x0,y0,x1,y1 (inclusive)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <file.rle>",
	Short: "Load a pattern and print an ASCII viewport of it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rect, err := parseRect(renderRect)
		if err != nil {
			return err
		}

		u, err := loadUniverse(args[0])
		if err != nil {
			return err
		}

		vp := render.NewViewport(64)
		fmt.Print(vp.Render(u, rect))
		return nil
	},
}

// parseRect parses "x0,y0,x1,y1" into a render.Rect.
func parseRect(s string) (render.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return render.Rect{}, fmt.Errorf("invalid --rect %q: expected x0,y0,x1,y1", s)
	}

	vals := make([]int64, 4)
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return render.Rect{}, fmt.Errorf("invalid --rect %q: %w", s, err)
		}
		vals[i] = v
	}

	return render.Rect{X0: vals[0], Y0: vals[1], X1: vals[2], Y1: vals[3]}, nil
}
