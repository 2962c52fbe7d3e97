package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardpress/pkg/card"
	"github.com/matzehuels/cardpress/pkg/render"
)

// newRenderCmd creates the render command that turns a card JSON file into
// an SVG preview on disk, without needing a running server.
func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a card JSON file to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var c card.Card
			if err := json.Unmarshal(data, &c); err != nil {
				return fmt.Errorf("parse card file: %w", err)
			}
			if err := c.Validate(); err != nil {
				return err
			}

			out := output
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
			}
			if err := os.WriteFile(out, render.Preview(c), 0o644); err != nil {
				return err
			}

			p.done(fmt.Sprintf("Rendered %q", c.Name))
			printSuccess("card rendered")
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output SVG path (default: input path with .svg)")
	return cmd
}
