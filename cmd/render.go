package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dstairlines/flightwatch/internal/graphviz"
)

var (
	renderInDir     string
	renderOutDir    string
	renderRecursive bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render Graphviz .dot diagrams to PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := graphviz.EnsureInstalled(); err != nil {
			return err
		}

		rendered, err := graphviz.RenderDir(cmd.Context(), renderInDir, renderOutDir, renderRecursive)
		for _, path := range rendered {
			out("rendered %s\n", path)
		}
		if err != nil {
			return err
		}
		if len(rendered) == 0 && !quiet {
			out("No .dot files found in %s\n", renderInDir)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderInDir, "in-dir", "docs/architecture", "Directory containing .dot files")
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", "docs/architecture/rendered", "Output directory for PDFs")
	renderCmd.Flags().BoolVar(&renderRecursive, "recursive", false, "Recurse into subdirectories")
}
